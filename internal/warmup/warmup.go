// Package warmup handles scheduled warmup events that keep Lambda instances initialised.
// CloudWatch Events trigger the function periodically with {"source":"warmup"}.
package warmup

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/rs/zerolog/log"
)

const (
	// Source identifies warmup events from CloudWatch
	Source = "warmup"

	// DefaultDelay ensures instances overlap to create true concurrency
	DefaultDelay = 75 * time.Millisecond

	// DefaultMaxConcurrency caps self-invocations when MaxConcurrency is unset
	DefaultMaxConcurrency = 10
)

// Event represents the CloudWatch Event payload for warmup
type Event struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

// Response is the response returned by warmup operations
type Response struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instancesWarmed"`
}

// Invoker is the part of the Lambda client used for self-invocation.
type Invoker interface {
	Invoke(ctx context.Context, params *lambdasdk.InvokeInput, optFns ...func(*lambdasdk.Options)) (*lambdasdk.InvokeOutput, error)
}

// Detect checks if the raw event is a warmup event.
func Detect(raw json.RawMessage) (*Event, bool) {
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false
	}

	source, ok := fields["source"].(string)
	if !ok || source != Source {
		return nil, false
	}

	ev := &Event{Source: source}
	// Concurrency is optional and defaults to 0
	if concurrency, ok := fields["concurrency"].(float64); ok && concurrency > 0 {
		ev.Concurrency = int(concurrency)
	}
	return ev, true
}

// Warmer answers warmup events and fans out to extra instances.
type Warmer struct {
	FunctionName   string
	Delay          time.Duration
	MaxConcurrency int

	// NewInvoker builds the Lambda client on first use. Defaults to the AWS SDK client.
	NewInvoker func(ctx context.Context) (Invoker, error)

	once       sync.Once
	invoker    Invoker
	invokerErr error
}

// Handle processes a warmup event and optionally self-invokes
// to maintain multiple warm instances.
func (w *Warmer) Handle(ctx context.Context, ev *Event) (Response, error) {
	instancesWarmed := 1 // This instance counts as 1

	maxConcurrency := w.MaxConcurrency
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}
	count := ev.Concurrency
	if count > maxConcurrency {
		count = maxConcurrency
	}

	if count > 0 {
		invoked, err := w.selfInvoke(ctx, count)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Int("requested", count).Int("invoked", invoked).Msg("warmup self-invocation incomplete")
		}
		instancesWarmed += invoked
	}

	// Brief delay to ensure instances overlap
	delay := w.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	select {
	case <-time.After(delay):
	case <-ctx.Done():
	}

	return Response{Status: "warm", InstancesWarmed: instancesWarmed}, nil
}

func (w *Warmer) client(ctx context.Context) (Invoker, error) {
	w.once.Do(func() {
		newInvoker := w.NewInvoker
		if newInvoker == nil {
			newInvoker = newLambdaInvoker
		}
		w.invoker, w.invokerErr = newInvoker(ctx)
	})
	return w.invoker, w.invokerErr
}

func newLambdaInvoker(ctx context.Context) (Invoker, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return lambdasdk.NewFromConfig(cfg), nil
}

// selfInvoke invokes this function count times asynchronously and
// returns how many invocations were accepted.
func (w *Warmer) selfInvoke(ctx context.Context, count int) (int, error) {
	if w.FunctionName == "" {
		return 0, fmt.Errorf("function name is not set")
	}

	client, err := w.client(ctx)
	if err != nil {
		return 0, err
	}

	// Child invocations carry concurrency=0 to prevent an infinite loop
	payload, err := json.Marshal(Event{Source: Source, Concurrency: 0})
	if err != nil {
		return 0, err
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		firstErr  error
	)

	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := client.Invoke(ctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(w.FunctionName),
				InvocationType: types.InvocationTypeEvent, // Async invocation
				Payload:        payload,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("failed to invoke %s: %w", w.FunctionName, err)
				}
				return
			}
			succeeded++
		}()
	}

	wg.Wait()
	return succeeded, firstErr
}
