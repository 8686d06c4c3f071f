// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package group

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/taibuivan/plusgroup/internal/platform/observability"
	"github.com/taibuivan/plusgroup/internal/platform/transport"
	"github.com/taibuivan/plusgroup/internal/platform/validate"
)

// basePath prefixes every route of the service.
const basePath = "/plus-group"

// Client is the data-access layer for the plus-group service.
//
// # Concurrency
//
// Client is stateless and safe for concurrent use. Cancellation and deadlines
// come from the context passed to each method.
type Client struct {
	transport transport.Dispatcher
	logger    *slog.Logger
}

// NewClient builds a [Client] over the given dispatcher.
func NewClient(dispatcher transport.Dispatcher, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{transport: dispatcher, logger: logger}
}

// # Dispatch Helpers

func (client *Client) send(context context.Context, method, path string, query url.Values, body any, expect int) (*transport.Response, error) {
	return client.transport.Do(context, transport.Request{
		Method: method,
		Path:   path,
		Query:  query,
		Body:   body,
		Expect: expect,
	})
}

// raw dispatches a mutation whose response body is handed back undecoded.
func (client *Client) raw(context context.Context, method, path string, body any, expect int) (json.RawMessage, error) {
	response, err := client.send(context, method, path, nil, body, expect)
	if err != nil {
		return nil, err
	}
	if response.Empty() {
		return nil, nil
	}
	return json.RawMessage(response.Body), nil
}

// status dispatches a call whose only result is its status.
func (client *Client) status(context context.Context, method, path string, body any, expect int) error {
	_, err := client.send(context, method, path, nil, body, expect)
	return err
}

/*
decodeList unmarshals a list response.

The service answers list routes either with a bare JSON array or with an
object wrapping the array under "data". An empty body, a null, or an object
without "data" all decode to an empty, non-nil slice.
*/
func decodeList[T any](response *transport.Response) ([]T, error) {
	items := []T{}
	if response.Empty() {
		return items, nil
	}

	if bytes.TrimSpace(response.Body)[0] == '[' {
		if err := response.Decode(&items); err != nil {
			return []T{}, err
		}
		return items, nil
	}

	var envelope struct {
		Data []T `json:"data"`
	}
	if err := response.Decode(&envelope); err != nil {
		return []T{}, err
	}
	if envelope.Data != nil {
		items = envelope.Data
	}
	return items, nil
}

// getList fetches and decodes a list route that answers 200.
func getList[T any](context context.Context, client *Client, path string, query url.Values) ([]T, error) {
	response, err := client.send(context, http.MethodGet, path, query, nil, http.StatusOK)
	if err != nil {
		return []T{}, err
	}
	return decodeList[T](response)
}

// fallback swallows err and returns substitute in its place. Swallowed errors
// are counted per operation but never logged.
func fallback[T any](operation string, value T, err error, substitute T) T {
	if err != nil {
		observability.RecordFallback(operation)
		return substitute
	}
	return value
}

// checkID rejects a negative owning id before anything is sent.
func checkID(field string, value int64) *validate.Validator {
	return (&validate.Validator{}).NonNegative(field, value)
}

/*
payload flattens a typed request body into a fresh map so that fixed fields
can be added without touching the caller's value.

Keys in extra are copied first; declared fields of v always win.
*/
func payload(v any, extra map[string]any) (map[string]any, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	declared := map[string]any{}
	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()
	if err := decoder.Decode(&declared); err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	body := make(map[string]any, len(extra)+len(declared))
	for key, value := range extra {
		body[key] = value
	}
	for key, value := range declared {
		body[key] = value
	}
	return body, nil
}

// # Paths

func groupPath(groupID int64) string {
	return fmt.Sprintf("%s/groups/%d", basePath, groupID)
}

func postPath(postID int64) string {
	return fmt.Sprintf("%s/group-posts/%d", basePath, postID)
}
