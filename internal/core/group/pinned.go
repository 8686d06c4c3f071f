// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package group

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/taibuivan/plusgroup/internal/platform/validate"
	"github.com/taibuivan/plusgroup/pkg/pagination"
)

// # Applications

// ApplyPinnedPost bids to pin a post at the top of its group.
func (client *Client) ApplyPinnedPost(context context.Context, postID int64, application PinnedApplication) (json.RawMessage, error) {
	if err := checkID("post_id", postID).Err(); err != nil {
		return nil, err
	}
	if err := validate.Struct(application); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/currency-pinned/posts/%d", basePath, postID)
	return client.raw(context, http.MethodPost, path, application, http.StatusCreated)
}

/*
ApplyPinnedComment bids to pin a comment at the top of a post.

The body is a new map holding application's fields plus post_id; application
itself is not modified.
*/
func (client *Client) ApplyPinnedComment(context context.Context, postID, commentID int64, application PinnedApplication) (json.RawMessage, error) {
	err := checkID("post_id", postID).
		NonNegative("comment_id", commentID).
		Err()
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(application); err != nil {
		return nil, err
	}

	body, err := payload(application, nil)
	if err != nil {
		return nil, err
	}
	body["post_id"] = postID

	path := fmt.Sprintf("%s/currency-pinned/comments/%d", basePath, commentID)
	return client.raw(context, http.MethodPost, path, body, http.StatusCreated)
}

// # Audit Queues

// PostAudits lists pending post pin applications. A groupID of 0 covers every
// group the user manages.
func (client *Client) PostAudits(context context.Context, cursor pagination.Cursor, groupID int64) ([]PinnedRecord, error) {
	return client.audits(context, "/pinned/posts", "group", cursor, groupID)
}

// CommentAudits lists pending comment pin applications. A postID of 0 covers
// every post the user owns.
func (client *Client) CommentAudits(context context.Context, cursor pagination.Cursor, postID int64) ([]PinnedRecord, error) {
	return client.audits(context, "/pinned/comments", "post", cursor, postID)
}

func (client *Client) audits(context context.Context, route, scope string, cursor pagination.Cursor, scopeID int64) ([]PinnedRecord, error) {
	if err := checkID(scope, scopeID).Err(); err != nil {
		return []PinnedRecord{}, err
	}

	query := url.Values{}
	cursor.Apply(query)
	query.Set(scope, strconv.FormatInt(scopeID, 10))

	response, err := client.send(context, http.MethodGet, basePath+route, query, nil, 0)
	if err != nil {
		return []PinnedRecord{}, err
	}
	return decodeList[PinnedRecord](response)
}
