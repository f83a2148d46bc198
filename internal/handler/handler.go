// Package handler provides the Lambda handler for the prime checker.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog/log"

	"github.com/pricofy/prime-checker/internal/prime"
	"github.com/pricofy/prime-checker/internal/request"
	"github.com/pricofy/prime-checker/internal/response"
)

// Handle processes a single invocation and always returns a well-formed envelope.
// Client faults become 400 envelopes, never Go errors.
func Handle(ctx context.Context, raw json.RawMessage) events.APIGatewayProxyResponse {
	logger := log.With().Logger()
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.With().Str("requestId", lc.AwsRequestID).Logger()
	}

	req, err := request.Parse(raw)
	if err != nil {
		var badReq *request.BadRequestError
		if !errors.As(err, &badReq) {
			// Parse only returns *BadRequestError; keep the envelope contract regardless.
			badReq = &request.BadRequestError{Message: request.MsgInvalidFormat, Err: err}
		}
		logger.Info().
			Str("outcome", "client_error").
			Int("statusCode", http.StatusBadRequest).
			AnErr("cause", badReq.Err).
			Msg(badReq.Message)
		return response.BadRequest(badReq.Message)
	}

	if req.Kind == request.KindPreflight {
		logger.Debug().
			Str("outcome", "preflight").
			Int("statusCode", http.StatusOK).
			Msg("answered CORS preflight")
		return response.Preflight()
	}

	result := prime.Evaluate(req.Number)
	resp := response.OK(result)
	logger.Info().
		Str("outcome", "success").
		Int64("number", result.Number).
		Bool("isPrime", result.IsPrime).
		Int("statusCode", resp.StatusCode).
		Msg("evaluated number")
	return resp
}
