// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package testkit provides an in-process stand-in for the plus-group REST service.

A [Stub] is an httptest server routed by chi. Tests register canned replies per
method and route pattern, point the client at [Stub.URL], and then inspect the
recorded [Call] list to assert what went over the wire.

Unregistered routes answer 404 so that a wrong path surfaces as a status
mismatch rather than a hang.
*/
package testkit

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Call is one request received by the stub.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// JSON decodes the recorded body into a generic map.
func (call Call) JSON(t testing.TB) map[string]any {
	t.Helper()

	payload := map[string]any{}
	if len(call.Body) == 0 {
		return payload
	}
	if err := json.Unmarshal(call.Body, &payload); err != nil {
		t.Fatalf("testkit: recorded body is not a JSON object: %v", err)
	}
	return payload
}

// Stub is a programmable fake of the remote service.
type Stub struct {
	server *httptest.Server
	router chi.Router

	mu    sync.Mutex
	calls []Call
}

// NewStub starts a stub server that is closed when the test ends.
func NewStub(t testing.TB) *Stub {
	t.Helper()

	stub := &Stub{router: chi.NewRouter()}
	stub.router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(writer, http.StatusNotFound, map[string]string{"message": "not found"})
	})
	stub.router.MethodNotAllowed(func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(writer, http.StatusMethodNotAllowed, map[string]string{"message": "method not allowed"})
	})

	// Recording wraps the router so that unmatched routes are captured too.
	stub.server = httptest.NewServer(stub.record(stub.router))
	t.Cleanup(stub.server.Close)

	return stub
}

// URL returns the stub's base URL.
func (stub *Stub) URL() string {
	return stub.server.URL
}

/*
Reply registers a canned response.

Parameters:
  - method: HTTP verb
  - pattern: chi route pattern, e.g. "/plus-group/groups/{id}"
  - status: status code to answer with
  - body: nil for no body, string or []byte for raw text, anything else is JSON-encoded
*/
func (stub *Stub) Reply(method, pattern string, status int, body any) {
	stub.router.Method(method, pattern, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		switch raw := body.(type) {
		case nil:
			writer.WriteHeader(status)
		case string:
			writeRaw(writer, status, []byte(raw))
		case []byte:
			writeRaw(writer, status, raw)
		default:
			writeJSON(writer, status, raw)
		}
	}))
}

// Drop registers a route that closes the connection without answering,
// which the client observes as a transport failure.
func (stub *Stub) Drop(method, pattern string) {
	stub.router.Method(method, pattern, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		hijacker, ok := writer.(http.Hijacker)
		if !ok {
			panic("testkit: response writer does not support hijacking")
		}
		conn, _, err := hijacker.Hijack()
		if err != nil {
			panic(err)
		}
		_ = conn.Close()
	}))
}

// Calls returns a copy of every recorded request in arrival order.
func (stub *Stub) Calls() []Call {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	return append([]Call(nil), stub.calls...)
}

// LastCall returns the most recent request, failing the test if there is none.
func (stub *Stub) LastCall(t testing.TB) Call {
	t.Helper()

	calls := stub.Calls()
	if len(calls) == 0 {
		t.Fatal("testkit: no request was received")
	}
	return calls[len(calls)-1]
}

func (stub *Stub) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, _ := io.ReadAll(request.Body)
		request.Body = io.NopCloser(bytes.NewReader(body))

		stub.mu.Lock()
		stub.calls = append(stub.calls, Call{
			Method: request.Method,
			Path:   request.URL.Path,
			Query:  request.URL.Query(),
			Header: request.Header.Clone(),
			Body:   body,
		})
		stub.mu.Unlock()

		next.ServeHTTP(writer, request)
	})
}

func writeJSON(writer http.ResponseWriter, status int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(payload)
}

func writeRaw(writer http.ResponseWriter, status int, body []byte) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(status)
	_, _ = writer.Write(body)
}
