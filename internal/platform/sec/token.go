// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec resolves and inspects the bearer token attached to outbound requests.
//
// # Architecture
//
// The plus-group service issues JWT access tokens. The client never verifies
// their signature (it does not hold the key); it only reads the registered
// claims so that an expired token is rejected locally instead of producing a
// round trip that is guaranteed to fail.
package sec

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taibuivan/plusgroup/internal/platform/apperr"
)

// TokenSource yields the access token for the next request.
// An empty token means the request is sent anonymously.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a [TokenSource] that always returns the same token.
type StaticToken string

// Token implements [TokenSource].
func (s StaticToken) Token(context.Context) (string, error) {
	return string(s), nil
}

// Inspect parses token without verifying its signature and returns its registered claims.
func Inspect(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, &apperr.AppError{
			Code:    apperr.CodeUnauthorized,
			Message: "access token is not a valid JWT",
			Cause:   err,
		}
	}

	return claims, nil
}

// CheckUsable rejects a token that has already expired at now.
// Tokens without an exp claim are accepted.
func CheckUsable(token string, now time.Time) error {
	claims, err := Inspect(token)
	if err != nil {
		return err
	}

	if claims.ExpiresAt != nil && !now.Before(claims.ExpiresAt.Time) {
		return apperr.Unauthorized("access token expired")
	}

	return nil
}

/*
Bearer resolves the Authorization header value for one request.

Parameters:
  - ctx: context.Context
  - source: TokenSource (nil means anonymous)
  - now: time.Time used for the expiry check

Returns:
  - string: "Bearer <token>", or empty for anonymous requests
  - error: source failures or apperr UNAUTHORIZED
*/
func Bearer(ctx context.Context, source TokenSource, now time.Time) (string, error) {
	if source == nil {
		return "", nil
	}

	token, err := source.Token(ctx)
	if err != nil {
		return "", err
	}

	if token == "" {
		return "", nil
	}

	if err := CheckUsable(token, now); err != nil {
		return "", err
	}

	return "Bearer " + token, nil
}
