// Package prime implements the trial-division primality test.
package prime

import (
	"fmt"
	"math"

	"github.com/pricofy/prime-checker/internal/domain"
)

// IsPrime reports whether n is prime.
// Even numbers are rejected up front, then odd divisors are tried up to isqrt(n).
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	limit := isqrt(n)
	for i := int64(3); i <= limit; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// isqrt returns floor(sqrt(n)) for n >= 0.
// The float estimate can be off by one for large n, so it is corrected with
// division instead of r*r to stay clear of overflow.
func isqrt(n int64) int64 {
	if n < 2 {
		return n
	}
	r := int64(math.Sqrt(float64(n)))
	for r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}

// Message formats the human-readable verdict for n.
func Message(n int64, isPrime bool) string {
	if isPrime {
		return fmt.Sprintf("%d is a prime number", n)
	}
	return fmt.Sprintf("%d is not a prime number", n)
}

// Evaluate runs the primality test and builds the response for n.
func Evaluate(n int64) domain.PrimeResponse {
	p := IsPrime(n)
	return domain.PrimeResponse{
		Number:  n,
		IsPrime: p,
		Message: Message(n, p),
	}
}
