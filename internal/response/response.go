// Package response builds the API Gateway proxy envelopes returned by the function.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/pricofy/prime-checker/internal/domain"
)

// CORS and content headers attached to every envelope.
const (
	HeaderContentType  = "Content-Type"
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
)

// MsgEncodingError is returned when a success body cannot be serialized.
const MsgEncodingError = "Encoding error"

// Headers returns a fresh copy of the headers sent with every response.
func Headers() map[string]string {
	return map[string]string{
		HeaderContentType:  "application/json",
		HeaderAllowOrigin:  "*",
		HeaderAllowHeaders: "Content-Type",
		HeaderAllowMethods: "POST, OPTIONS",
	}
}

// OK returns a 200 envelope with v encoded as the JSON body.
// An encoding failure yields a 500 envelope rather than an error.
func OK(v any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		return Error(http.StatusInternalServerError, MsgEncodingError)
	}
	return envelope(http.StatusOK, string(body))
}

// Error returns an envelope with the given status and {"error": msg} as body.
func Error(status int, msg string) events.APIGatewayProxyResponse {
	// ErrorResponse holds a single string field; Marshal cannot fail.
	body, _ := json.Marshal(domain.ErrorResponse{Error: msg})
	return envelope(status, string(body))
}

// BadRequest returns a 400 envelope carrying msg.
func BadRequest(msg string) events.APIGatewayProxyResponse {
	return Error(http.StatusBadRequest, msg)
}

// Preflight returns the empty 200 envelope for CORS OPTIONS requests.
func Preflight() events.APIGatewayProxyResponse {
	return envelope(http.StatusOK, "")
}

func envelope(status int, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    Headers(),
		Body:       body,
	}
}
