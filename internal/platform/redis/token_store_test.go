// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/plusgroup/internal/platform/redis"
)

/*
TestTokenStore_RoundTrip saves, reads, expires and clears a token.
*/
func TestTokenStore_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := redis.NewClient(ctx, "redis://"+mr.Addr(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store := redis.NewTokenStore(client, "alice")

	// 1. Missing key is anonymous, not an error
	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	// 2. Save and read back
	require.NoError(t, store.Save(ctx, "tok-1", time.Minute))
	token, err = store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.True(t, mr.Exists("plusgroup:access_token:alice"))

	// 3. TTL expiry
	mr.FastForward(2 * time.Minute)
	token, err = store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	// 4. Clear
	require.NoError(t, store.Save(ctx, "tok-2", 0))
	require.NoError(t, store.Clear(ctx))
	token, err = store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

/*
TestNewClient_InvalidURL rejects unparseable URLs before dialing.
*/
func TestNewClient_InvalidURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := redis.NewClient(context.Background(), "://nope", logger)
	assert.Error(t, err)
}

