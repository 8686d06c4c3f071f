// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/taibuivan/plusgroup/internal/core/group"
)

// errUsage marks a command line that could not be understood.
var errUsage = errors.New("usage")

// command runs against the client and returns the value to print.
type command func(ctx context.Context, client *group.Client, args []string) (any, error)

var commands = map[string]command{
	"count": func(ctx context.Context, client *group.Client, _ []string) (any, error) {
		return map[string]int{"count": client.CountGroups(ctx)}, nil
	},
	"categories": func(ctx context.Context, client *group.Client, _ []string) (any, error) {
		return client.ListCategories(ctx)
	},
	"recommend": func(ctx context.Context, client *group.Client, _ []string) (any, error) {
		return client.ListRecommendedGroups(ctx), nil
	},
	"search": func(ctx context.Context, client *group.Client, args []string) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: search <keyword>", errUsage)
		}
		return client.SearchGroups(ctx, group.GroupSearch{Keyword: args[0]})
	},
	"feed": func(ctx context.Context, client *group.Client, args []string) (any, error) {
		if len(args) < 1 || len(args) > 2 {
			return nil, fmt.Errorf("%w: feed <group-id> [type]", errUsage)
		}
		groupID, err := parseID(args[0])
		if err != nil {
			return nil, err
		}

		query := group.FeedQuery{}
		if len(args) == 2 {
			query.Type = group.FeedType(args[1])
		}
		return client.GroupFeed(ctx, groupID, query), nil
	},
	"members": func(ctx context.Context, client *group.Client, args []string) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: members <group-id>", errUsage)
		}
		groupID, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return client.ListMembers(ctx, groupID, group.MemberQuery{})
	},
	"protocol": func(ctx context.Context, client *group.Client, _ []string) (any, error) {
		return client.Protocol(ctx)
	},
}

/*
run dispatches args[0] to its command and writes the result to out as
indented JSON.

Returns:
  - error: errUsage for unknown commands or bad arguments, otherwise the
    client error unchanged
*/
func run(ctx context.Context, client *group.Client, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	result, err := cmd(ctx, client, args[1:])
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(result)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a numeric id", errUsage, raw)
	}
	return id, nil
}
