// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/plusgroup/internal/platform/constants"
)

// TokenStore keeps one access token per account in Redis.
// It implements [sec.TokenSource].
type TokenStore struct {
	client  *redis.Client
	account string
}

// NewTokenStore creates a store bound to a single account name.
func NewTokenStore(client *redis.Client, account string) *TokenStore {
	return &TokenStore{client: client, account: account}
}

func (store *TokenStore) key() string {
	return constants.RedisPrefixAccessToken + store.account
}

/*
Token returns the stored access token.

Description: A missing or expired key yields an empty token, which the
transport treats as an anonymous request.

Parameters:
  - context: context.Context

Returns:
  - string: Access token or empty
  - error: Connectivity errors
*/
func (store *TokenStore) Token(context context.Context) (string, error) {
	token, err := store.client.Get(context, store.key()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis_token_get_failed: %w", err)
	}

	return token, nil
}

/*
Save stores the access token with its TTL.

Parameters:
  - context: context.Context
  - token: string
  - ttl: time.Duration (zero keeps the key until overwritten)

Returns:
  - error: Execution errors
*/
func (store *TokenStore) Save(context context.Context, token string, ttl time.Duration) error {
	if err := store.client.Set(context, store.key(), token, ttl).Err(); err != nil {
		return fmt.Errorf("redis_token_set_failed: %w", err)
	}
	return nil
}

// Clear removes the stored token, e.g. after logout.
func (store *TokenStore) Clear(context context.Context) error {
	if err := store.client.Del(context, store.key()).Err(); err != nil {
		return fmt.Errorf("redis_token_delete_failed: %w", err)
	}
	return nil
}
