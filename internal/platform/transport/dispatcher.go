// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/taibuivan/plusgroup/internal/platform/apperr"
	"github.com/taibuivan/plusgroup/internal/platform/config"
	"github.com/taibuivan/plusgroup/internal/platform/constants"
	"github.com/taibuivan/plusgroup/internal/platform/ctxutil"
	"github.com/taibuivan/plusgroup/internal/platform/observability"
	"github.com/taibuivan/plusgroup/internal/platform/sec"
)

// Options configures an [HTTPDispatcher].
type Options struct {
	BaseURL      string
	DefaultQuery map[string]string
	UserAgent    string
	// Tokens supplies the bearer token. Nil sends every request anonymously.
	Tokens sec.TokenSource
	// Limiter throttles outbound requests. Nil disables throttling.
	Limiter *rate.Limiter
	Logger  *slog.Logger
	// Now is used for token expiry checks. Defaults to time.Now.
	Now func() time.Time
}

// HTTPDispatcher implements [Dispatcher] over a [Doer].
//
// # Concurrency
//
// HTTPDispatcher is safe for concurrent use. It keeps no per-call state.
type HTTPDispatcher struct {
	doer         Doer
	baseURL      string
	defaultQuery url.Values
	userAgent    string
	tokens       sec.TokenSource
	limiter      *rate.Limiter
	logger       *slog.Logger
	now          func() time.Time
}

// New constructs a dispatcher. The base URL must be absolute.
func New(doer Doer, options Options) (*HTTPDispatcher, error) {
	parsed, err := url.Parse(options.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("transport: base URL must be absolute, got %q", options.BaseURL)
	}

	defaults := url.Values{}
	for key, value := range options.DefaultQuery {
		defaults.Set(key, value)
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	now := options.Now
	if now == nil {
		now = time.Now
	}

	return &HTTPDispatcher{
		doer:         doer,
		baseURL:      strings.TrimRight(options.BaseURL, "/"),
		defaultQuery: defaults,
		userAgent:    options.UserAgent,
		tokens:       options.Tokens,
		limiter:      options.Limiter,
		logger:       logger,
		now:          now,
	}, nil
}

// FromConfig builds a dispatcher backed by an [http.Client] with the configured timeout.
func FromConfig(cfg *config.Config, tokens sec.TokenSource, logger *slog.Logger) (*HTTPDispatcher, error) {
	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateLimitBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), burst)
	}

	return New(&http.Client{Timeout: cfg.RequestTimeout}, Options{
		BaseURL:      cfg.BaseURL,
		DefaultQuery: cfg.DefaultQuery,
		UserAgent:    cfg.UserAgent,
		Tokens:       tokens,
		Limiter:      limiter,
		Logger:       logger,
	})
}

/*
Do sends request and validates the received status against request.Expect.

Parameters:
  - ctx: context.Context (cancellation, request id, logger)
  - request: Request

Returns:
  - *Response: Fully-read response with an accepted status
  - error: apperr CONTRACT_VIOLATION, TRANSPORT_FAILURE, UNAUTHORIZED or VALIDATION_ERROR
*/
func (dispatcher *HTTPDispatcher) Do(ctx context.Context, request Request) (*Response, error) {
	start := time.Now()
	method := strings.ToUpper(request.Method)

	ctx, span := observability.Tracer.Start(ctx, "plusgroup "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", request.Path),
		),
	)
	defer span.End()

	response, err := dispatcher.roundTrip(ctx, method, request)

	outcome, status := classify(response, err)
	observability.ObserveRequest(method, outcome, status, start)
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}

	ctxutil.GetLogger(ctx, dispatcher.logger).DebugContext(ctx, "plus_request_finished",
		slog.String("method", method),
		slog.String("path", request.Path),
		slog.Int("status", status),
		slog.String("outcome", outcome),
		slog.Int64("latency_ms", time.Since(start).Milliseconds()),
	)

	if err != nil {
		return nil, err
	}
	return response, nil
}

func (dispatcher *HTTPDispatcher) roundTrip(ctx context.Context, method string, request Request) (*Response, error) {
	httpRequest, err := dispatcher.build(ctx, method, request)
	if err != nil {
		return nil, err
	}

	// 1. Throttle before the request leaves the process
	if dispatcher.limiter != nil {
		if err := dispatcher.limiter.Wait(ctx); err != nil {
			return nil, apperr.TransportFailure(method, request.Path, err)
		}
	}

	// 2. Round trip
	httpResponse, err := dispatcher.doer.Do(httpRequest)
	if err != nil {
		return nil, apperr.TransportFailure(method, request.Path, err)
	}
	defer httpResponse.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResponse.Body, constants.MaxResponseBytes))
	if err != nil {
		return nil, apperr.TransportFailure(method, request.Path, err)
	}

	response := &Response{
		Status: httpResponse.StatusCode,
		Header: httpResponse.Header,
		Body:   body,
	}

	// 3. Exact status contract
	if !Accepts(request.Expect, response.Status) {
		return response, apperr.ContractViolation(method, request.Path, request.Expect, response.Status)
	}

	return response, nil
}

func (dispatcher *HTTPDispatcher) build(ctx context.Context, method string, request Request) (*http.Request, error) {
	target := dispatcher.baseURL + request.Path
	if query := dispatcher.mergeQuery(request.Query); len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if request.Body != nil {
		encoded, err := json.Marshal(request.Body)
		if err != nil {
			return nil, apperr.ValidationError(fmt.Sprintf("request body is not JSON-encodable: %v", err))
		}
		body = bytes.NewReader(encoded)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, apperr.TransportFailure(method, request.Path, err)
	}

	httpRequest.Header.Set("Accept", "application/json")
	if body != nil {
		httpRequest.Header.Set("Content-Type", "application/json")
	}
	if dispatcher.userAgent != "" {
		httpRequest.Header.Set("User-Agent", dispatcher.userAgent)
	}
	httpRequest.Header.Set(constants.HeaderXRequestID, requestID(ctx))

	authorization, err := sec.Bearer(ctx, dispatcher.tokens, dispatcher.now())
	if err != nil {
		return nil, err
	}
	if authorization != "" {
		httpRequest.Header.Set(constants.HeaderAuthorization, authorization)
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpRequest.Header))

	return httpRequest, nil
}

// mergeQuery layers call parameters over the configured defaults.
func (dispatcher *HTTPDispatcher) mergeQuery(query url.Values) url.Values {
	merged := url.Values{}
	for key, values := range dispatcher.defaultQuery {
		merged[key] = append([]string(nil), values...)
	}
	for key, values := range query {
		merged[key] = append([]string(nil), values...)
	}
	return merged
}

// requestID reuses the caller's correlation id or mints a time-sortable one.
func requestID(ctx context.Context) string {
	if id := ctxutil.GetRequestID(ctx); id != "" {
		return id
	}

	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func classify(response *Response, err error) (string, int) {
	status := 0
	if response != nil {
		status = response.Status
	}

	if err == nil {
		return observability.OutcomeOK, status
	}

	var ae *apperr.AppError
	if errors.As(err, &ae) {
		switch ae.Code {
		case apperr.CodeContractViolation:
			return observability.OutcomeContractMismatch, status
		case apperr.CodeTransportFailure:
			return observability.OutcomeTransportFailure, status
		}
	}

	return observability.OutcomeRejected, status
}
