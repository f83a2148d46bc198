// Package domain contains the core domain types for the prime checker.
package domain

// PrimeRequest is the input to the prime checker.
// Number is a pointer so that a missing or null field can be told apart from zero.
type PrimeRequest struct {
	Number *int64 `json:"number"`
}

// PrimeResponse is the output for a successfully evaluated number.
type PrimeResponse struct {
	Number  int64  `json:"number"`
	IsPrime bool   `json:"isPrime"`
	Message string `json:"message"`
}

// ErrorResponse is the body returned for any rejected request.
type ErrorResponse struct {
	Error string `json:"error"`
}
