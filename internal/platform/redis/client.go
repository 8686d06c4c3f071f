// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis provides shared credential storage for plus-group clients.

Several client processes (a CLI, a background syncer) can share one login by
reading the access token from Redis instead of each holding a static copy.
The token is written by whatever performs the login and expires with its TTL.
*/
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout = 3 * time.Second
	ioTimeout   = time.Second
)

/*
NewClient connects to the token store and checks it answers.

Parameters:
  - context: bounds the connectivity check
  - redisURL: redis:// or rediss:// URL
  - logger: receives the connection event

Returns:
  - *redis.Client: a small pool; only token reads go through it
  - error: invalid URL or unreachable server
*/
func NewClient(context stdctx.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	options.PoolSize = 2
	options.DialTimeout = dialTimeout
	options.ReadTimeout = ioTimeout
	options.WriteTimeout = ioTimeout

	client := redis.NewClient(options)
	if err := client.Ping(context).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: %s unreachable: %w", options.Addr, err)
	}

	logger.Debug("token_store_connected",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
	)
	return client, nil
}
