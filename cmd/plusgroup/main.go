// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command plusgroup queries the plus-group service from the terminal.
//
// # Startup Sequence
//
//  1. Initialize structured logger (JSON on stderr).
//  2. Load configuration from environment variables.
//  3. Install the tracer provider (spans go to stderr, indented in development).
//  4. Resolve credentials: static token, else the Redis token store.
//  5. Build the dispatcher and the group client.
//  6. Run one subcommand and print its result as JSON on stdout.
//
// Usage:
//
//	plusgroup [-timeout 30s] <command> [args]
//
// Commands: count, categories, recommend, search <keyword>,
// feed <group-id> [type], members <group-id>, protocol.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/plusgroup/internal/core/group"
	"github.com/taibuivan/plusgroup/internal/platform/config"
	"github.com/taibuivan/plusgroup/internal/platform/constants"
	"github.com/taibuivan/plusgroup/internal/platform/observability"
	redisstore "github.com/taibuivan/plusgroup/internal/platform/redis"
	"github.com/taibuivan/plusgroup/internal/platform/sec"
	"github.com/taibuivan/plusgroup/internal/platform/transport"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// stdout is reserved for command output.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	timeout := flag.Duration("timeout", 30*time.Second, "deadline for the whole command")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	if err := launch(log, *timeout, flag.Args()); err != nil {
		os.Exit(1)
	}
}

// launch wires the client and runs one command. Every failure is logged here.
func launch(log *slog.Logger, timeout time.Duration, args []string) error {
	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return startupFailure(log, err, "load configuration")
	}

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Debug("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("base_url", cfg.BaseURL),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── 3. Tracing ────────────────────────────────────────────────────────
	shutdownTracing, err := observability.InitTracing(tracingConfig(cfg))
	if err != nil {
		return startupFailure(log, err, "initialize tracing")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Error("tracer_shutdown_failed", slog.Any("error", err))
		}
	}()

	// ── 4. Credentials ────────────────────────────────────────────────────
	tokens, closeTokens, err := tokenSource(ctx, cfg, log)
	if err != nil {
		return startupFailure(log, err, "resolve credentials")
	}
	defer closeTokens()

	// ── 5. Client ─────────────────────────────────────────────────────────
	dispatcher, err := transport.FromConfig(cfg, tokens, log)
	if err != nil {
		return startupFailure(log, err, "build dispatcher")
	}
	client := group.NewClient(dispatcher, log)

	// ── 6. Command ────────────────────────────────────────────────────────
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := run(runCtx, client, args, os.Stdout); err != nil {
		log.Error("command_failed",
			slog.String("command", args[0]),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// tracingConfig keeps spans on stderr; stdout carries only command output.
func tracingConfig(cfg *config.Config) observability.TracingConfig {
	return observability.TracingConfig{
		ServiceName:    constants.AppName,
		ServiceVersion: constants.AppVersion,
		Environment:    cfg.Environment,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSampler,
		Writer:         os.Stderr,
		Pretty:         cfg.IsDevelopment(),
	}
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

/*
tokenSource picks where bearer tokens come from.

A static PLUS_ACCESS_TOKEN wins. Otherwise, when REDIS_URL is set, tokens are
read from the shared store on every request. With neither, requests go out
anonymously.
*/
func tokenSource(ctx context.Context, cfg *config.Config, log *slog.Logger) (sec.TokenSource, func(), error) {
	noop := func() {}

	if cfg.AccessToken != "" {
		return sec.StaticToken(cfg.AccessToken), noop, nil
	}
	if cfg.RedisURL == "" {
		return nil, noop, nil
	}

	startupCtx, cancel := context.WithTimeout(ctx, constants.StartupTimeout)
	defer cancel()

	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	if err != nil {
		return nil, noop, err
	}

	closeRedis := func() {
		if err := rdb.Close(); err != nil {
			log.Error("redis_close_failed", slog.Any("error", err))
		}
	}
	return redisstore.NewTokenStore(rdb, cfg.TokenAccount), closeRedis, nil
}

func usage() {
	fmt.Fprint(flag.CommandLine.Output(), `usage: plusgroup [-timeout 30s] <command> [args]

commands:
  count                     total number of groups
  categories                list group categories
  recommend                 random recommended groups
  search <keyword>          search groups by keyword
  feed <group-id> [type]    group timeline (latest_post, latest_reply, excellent)
  members <group-id>        first page of a group's members
  protocol                  group creation rules

flags:
`)
	flag.PrintDefaults()
}

// startupFailure logs a wiring error and hands it back for the exit path.
func startupFailure(log *slog.Logger, err error, context string) error {
	log.Error("startup_failure",
		slog.String("context", context),
		slog.Any("error", err),
	)
	return err
}
