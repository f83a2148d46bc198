// Package main is the entry point for the prime checker Lambda function.
package main

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/pricofy/prime-checker/internal/config"
	"github.com/pricofy/prime-checker/internal/handler"
	"github.com/pricofy/prime-checker/internal/logx"
	"github.com/pricofy/prime-checker/internal/warmup"
)

func main() {
	cfg := config.MustLoad()
	logx.Init(cfg.Log, cfg.Environment)

	warmer := &warmup.Warmer{
		FunctionName:   cfg.FunctionName,
		Delay:          cfg.Warmup.Delay,
		MaxConcurrency: cfg.Warmup.MaxConcurrency,
	}

	lambda.Start(func(ctx context.Context, event json.RawMessage) (interface{}, error) {
		return handleRequest(ctx, warmer, event)
	})
}

func handleRequest(ctx context.Context, warmer *warmup.Warmer, event json.RawMessage) (interface{}, error) {
	ctx = log.Logger.WithContext(ctx)

	// Warmup detection (MUST be first - before any other processing)
	if ev, ok := warmup.Detect(event); ok {
		return warmer.Handle(ctx, ev)
	}

	return handler.Handle(ctx, event), nil
}
