// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package transport dispatches JSON requests to the plus-group REST service.

It is the only package that touches net/http on the outbound side. Every call
declares the exact status it expects; the dispatcher compares the received
status after the round trip and turns a mismatch into a typed
CONTRACT_VIOLATION, and a missing response into a TRANSPORT_FAILURE.

Per-request duties:

  - Address: base URL + path, default query merged under call query.
  - Identify: X-Request-ID (from context or a fresh UUIDv7), User-Agent, bearer token.
  - Throttle: optional token-bucket limiter shared by all calls.
  - Observe: one span and one metrics sample per request.
*/
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/taibuivan/plusgroup/internal/platform/apperr"
)

// Doer executes a prepared HTTP request. [*http.Client] satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Dispatcher is the contract the domain client depends on.
type Dispatcher interface {
	Do(ctx context.Context, request Request) (*Response, error)
}

// Request describes one outbound call.
type Request struct {
	Method string
	// Path is appended to the base URL, e.g. "/plus-group/groups/1".
	Path  string
	Query url.Values
	// Body is JSON-encoded when non-nil.
	Body any
	// Expect is the only status accepted as success. Zero accepts any 2xx.
	Expect int
}

// Response is a fully-read response whose status already satisfied the request.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Empty reports whether the response carried no body.
func (r *Response) Empty() bool {
	return len(bytes.TrimSpace(r.Body)) == 0
}

// Decode unmarshals the body into target. An empty body leaves target untouched.
func (r *Response) Decode(target any) error {
	if r.Empty() {
		return nil
	}
	if err := json.Unmarshal(r.Body, target); err != nil {
		return apperr.MalformedResponse(err)
	}
	return nil
}

// Accepts reports whether status satisfies expect.
func Accepts(expect, status int) bool {
	if expect == 0 {
		return status >= 200 && status < 300
	}
	return status == expect
}
