// Package request decodes raw Lambda invocation payloads into prime check requests.
package request

import (
	"bytes"
	"encoding/base64"
	"encoding/json"

	"github.com/pricofy/prime-checker/internal/domain"
)

// Messages returned to the caller for each failure point.
const (
	MsgInvalidFormat = "Invalid request format"
	MsgInvalidBody   = "Invalid request body"
	MsgInvalidNumber = "Invalid input. Please provide a valid number."
)

// Kind is the outcome of parsing a payload.
type Kind int

const (
	// KindValid carries a decoded PrimeRequest.
	KindValid Kind = iota
	// KindPreflight is a CORS OPTIONS request.
	KindPreflight
)

func (k Kind) String() string {
	switch k {
	case KindValid:
		return "valid"
	case KindPreflight:
		return "preflight"
	default:
		return "unknown"
	}
}

// Result is a successfully parsed payload.
type Result struct {
	Kind   Kind
	Number int64
}

// BadRequestError is returned for any payload that cannot be turned into a request.
type BadRequestError struct {
	Message string
	Err     error
}

func (e *BadRequestError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *BadRequestError) Unwrap() error {
	return e.Err
}

func badRequest(msg string, err error) *BadRequestError {
	return &BadRequestError{Message: msg, Err: err}
}

// fields holds the top-level members of an event. Only body and number are
// strict; everything else is read leniently and a wrong type counts as absent.
type fields map[string]json.RawMessage

func (f fields) str(key string) (string, bool) {
	var v string
	if err := json.Unmarshal(f[key], &v); err != nil {
		return "", false
	}
	return v, true
}

func (f fields) flag(key string) bool {
	var v bool
	_ = json.Unmarshal(f[key], &v)
	return v
}

// method returns the HTTP method of a REST (v1) or HTTP API (v2) proxy event.
func (f fields) method() string {
	if m, ok := f.str("httpMethod"); ok && m != "" {
		return m
	}
	var rc struct {
		HTTP struct {
			Method string `json:"method"`
		} `json:"http"`
	}
	if err := json.Unmarshal(f["requestContext"], &rc); err != nil {
		return ""
	}
	return rc.HTTP.Method
}

// Parse decodes a raw invocation payload.
// It accepts API Gateway proxy events carrying a JSON string body, CORS preflight
// events, and bare {"number": n} objects. Every failure is a *BadRequestError.
func Parse(raw []byte) (Result, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Result{}, badRequest(MsgInvalidFormat, nil)
	}

	var ev fields
	if err := json.Unmarshal(trimmed, &ev); err != nil {
		return Result{}, badRequest(MsgInvalidFormat, err)
	}

	if ev.method() == "OPTIONS" {
		return Result{Kind: KindPreflight}, nil
	}

	rawBody, hasBody := ev["body"]
	if !hasBody {
		if _, ok := ev["number"]; ok {
			return decodeNumber(trimmed)
		}
		return Result{}, badRequest(MsgInvalidBody, nil)
	}

	body, err := bodyBytes(rawBody, ev.flag("isBase64Encoded"))
	if err != nil {
		return Result{}, err
	}
	return decodeNumber(body)
}

// bodyBytes extracts the body string, decoding base64 when flagged.
func bodyBytes(raw json.RawMessage, base64Encoded bool) ([]byte, error) {
	if bytes.Equal(raw, []byte("null")) {
		return nil, badRequest(MsgInvalidBody, nil)
	}
	var body string
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, badRequest(MsgInvalidBody, err)
	}

	if !base64Encoded {
		return []byte(body), nil
	}
	decoded, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, badRequest(MsgInvalidBody, err)
	}
	return decoded, nil
}

// decodeNumber decodes a PrimeRequest and requires an integer number.
func decodeNumber(data []byte) (Result, error) {
	var req domain.PrimeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return Result{}, badRequest(MsgInvalidNumber, err)
	}
	if req.Number == nil {
		return Result{}, badRequest(MsgInvalidNumber, nil)
	}
	return Result{Kind: KindValid, Number: *req.Number}, nil
}
