// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the client.

Categories:

  - Metadata: application name and version reported in logs and traces.
  - Transport: header names, body size limits and startup deadlines.
  - Redis: key prefixes for stored credentials.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "plusgroup"
	AppVersion = "0.1.0-dev"
)

// # Transport

const (
	// HeaderXRequestID carries the correlation id of an outbound request.
	HeaderXRequestID = "X-Request-ID"

	// HeaderAuthorization carries the bearer token.
	HeaderAuthorization = "Authorization"

	// MaxResponseBytes caps how much of a response body is read into memory.
	MaxResponseBytes = 8 << 20

	// StartupTimeout bounds connection checks performed by cmd/plusgroup.
	StartupTimeout = 10 * time.Second

	// ShutdownTimeout bounds tracer flushing on exit.
	ShutdownTimeout = 5 * time.Second
)

// # Redis Prefixes

const (
	RedisPrefixAccessToken = "plusgroup:access_token:"
)
