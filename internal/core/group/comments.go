// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package group

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/taibuivan/plusgroup/internal/platform/validate"
	"github.com/taibuivan/plusgroup/pkg/pagination"
)

/*
ListPostComments returns one cursor page of a post's comments.

The service answers {"pinneds": [...], "comments": [...]}; a bare array is
read as the comments with no pinned entries. Both slices are never nil.
*/
func (client *Client) ListPostComments(context context.Context, postID int64, cursor pagination.Cursor) (CommentPage, error) {
	if err := checkID("post_id", postID).Err(); err != nil {
		return emptyCommentPage(), err
	}

	query := url.Values{}
	cursor.Apply(query)

	response, err := client.send(context, http.MethodGet, postPath(postID)+"/comments", query, nil, http.StatusOK)
	if err != nil {
		return emptyCommentPage(), err
	}

	page := emptyCommentPage()
	if !response.Empty() && bytes.TrimSpace(response.Body)[0] == '[' {
		if err := response.Decode(&page.Comments); err != nil {
			return emptyCommentPage(), err
		}
	} else if err := response.Decode(&page); err != nil {
		return emptyCommentPage(), err
	}

	if page.Pinneds == nil {
		page.Pinneds = []Comment{}
	}
	if page.Comments == nil {
		page.Comments = []Comment{}
	}
	return page, nil
}

func emptyCommentPage() CommentPage {
	return CommentPage{Pinneds: []Comment{}, Comments: []Comment{}}
}

/*
PostComment replies to a post.

The service wraps the created record as {"comment": {...}}. A successful
response without that key returns the zero Comment and no error.
*/
func (client *Client) PostComment(context context.Context, postID int64, comment NewComment) (Comment, error) {
	if err := checkID("post_id", postID).Err(); err != nil {
		return Comment{}, err
	}
	if err := validate.Struct(comment); err != nil {
		return Comment{}, err
	}

	response, err := client.send(context, http.MethodPost, postPath(postID)+"/comments", nil, comment, http.StatusCreated)
	if err != nil {
		return Comment{}, err
	}

	var envelope struct {
		Comment Comment `json:"comment"`
	}
	if err := response.Decode(&envelope); err != nil {
		return Comment{}, err
	}
	return envelope.Comment, nil
}

// DeleteComment removes a comment from a post.
func (client *Client) DeleteComment(context context.Context, postID, commentID int64) error {
	err := checkID("post_id", postID).
		NonNegative("comment_id", commentID).
		Err()
	if err != nil {
		return err
	}

	path := fmt.Sprintf("%s/comments/%d", postPath(postID), commentID)
	return client.status(context, http.MethodDelete, path, nil, http.StatusNoContent)
}
