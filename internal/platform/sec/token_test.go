// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/plusgroup/internal/platform/apperr"
	"github.com/taibuivan/plusgroup/internal/platform/sec"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

/*
TestBearer covers anonymous, valid, expired and malformed tokens.
*/
func TestBearer(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("nil_source", func(t *testing.T) {
		header, err := sec.Bearer(ctx, nil, now)
		require.NoError(t, err)
		assert.Empty(t, header)
	})

	t.Run("empty_token", func(t *testing.T) {
		header, err := sec.Bearer(ctx, sec.StaticToken(""), now)
		require.NoError(t, err)
		assert.Empty(t, header)
	})

	t.Run("valid_token", func(t *testing.T) {
		token := signedToken(t, now.Add(time.Hour))

		header, err := sec.Bearer(ctx, sec.StaticToken(token), now)
		require.NoError(t, err)
		assert.Equal(t, "Bearer "+token, header)
	})

	t.Run("expired_token", func(t *testing.T) {
		token := signedToken(t, now.Add(-time.Minute))

		_, err := sec.Bearer(ctx, sec.StaticToken(token), now)
		require.Error(t, err)
		assert.Equal(t, apperr.CodeUnauthorized, apperr.As(err).Code)
	})

	t.Run("malformed_token", func(t *testing.T) {
		_, err := sec.Bearer(ctx, sec.StaticToken("not-a-jwt"), now)
		require.Error(t, err)
		assert.Equal(t, apperr.CodeUnauthorized, apperr.As(err).Code)
	})
}

/*
TestInspect reads claims without the signing key.
*/
func TestInspect(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))

	claims, err := sec.Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
}
