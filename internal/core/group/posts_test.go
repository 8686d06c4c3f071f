// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package group_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/plusgroup/internal/core/group"
	"github.com/taibuivan/plusgroup/internal/platform/apperr"
	"github.com/taibuivan/plusgroup/internal/testkit"
	"github.com/taibuivan/plusgroup/pkg/pagination"
)

/*
TestToggleCollect picks method and route from the caller's current state.
*/
func TestToggleCollect(t *testing.T) {
	stub := testkit.NewStub(t)
	stub.Reply(http.MethodDelete, "/plus-group/group-posts/{id}/uncollect", http.StatusNoContent, nil)
	stub.Reply(http.MethodPost, "/plus-group/group-posts/{id}/collections", http.StatusCreated, map[string]string{"message": "ok"})
	client := newClient(t, stub, nil)

	require.NoError(t, client.ToggleCollect(context.Background(), 7, true))
	assert.Equal(t, http.MethodDelete, stub.LastCall(t).Method)
	assert.Equal(t, "/plus-group/group-posts/7/uncollect", stub.LastCall(t).Path)

	require.NoError(t, client.ToggleCollect(context.Background(), 7, false))
	assert.Equal(t, http.MethodPost, stub.LastCall(t).Method)
	assert.Equal(t, "/plus-group/group-posts/7/collections", stub.LastCall(t).Path)

	assert.Len(t, stub.Calls(), 2)
}

/*
TestToggleLike uses one route with DELETE/204 to unlike and POST/201 to like.
*/
func TestToggleLike(t *testing.T) {
	cases := []struct {
		name   string
		liked  bool
		method string
		status int
	}{
		{"Unlike", true, http.MethodDelete, http.StatusNoContent},
		{"Like", false, http.MethodPost, http.StatusCreated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := testkit.NewStub(t)
			stub.Reply(tc.method, "/plus-group/group-posts/{id}/likes", tc.status, nil)

			err := newClient(t, stub, nil).ToggleLike(context.Background(), 3, tc.liked)

			require.NoError(t, err)
			call := stub.LastCall(t)
			assert.Equal(t, tc.method, call.Method)
			assert.Equal(t, "/plus-group/group-posts/3/likes", call.Path)
		})
	}

	t.Run("WrongStatus", func(t *testing.T) {
		stub := testkit.NewStub(t)
		stub.Reply(http.MethodPost, "/plus-group/group-posts/{id}/likes", http.StatusOK, nil)

		err := newClient(t, stub, nil).ToggleLike(context.Background(), 3, false)

		assert.True(t, apperr.IsContractViolation(err))
	})
}

/*
TestGroupFeed checks the default query and nil-list normalization.
*/
func TestGroupFeed(t *testing.T) {
	stub := testkit.NewStub(t)
	stub.Reply(http.MethodGet, "/plus-group/groups/{id}/posts", http.StatusOK,
		`{"pinneds":null,"posts":[{"id":1,"title":"hi","images":[{"id":4,"size":"1x1"},5],"feed_from":3}]}`)
	client := newClient(t, stub, nil)

	feed := client.GroupFeed(context.Background(), 11, group.FeedQuery{})

	assert.NotNil(t, feed.Pinneds)
	assert.Empty(t, feed.Pinneds)
	require.Len(t, feed.Posts, 1)
	assert.Equal(t, "hi", feed.Posts[0].Title)
	assert.Equal(t, group.ImageIDs{4, 5}, feed.Posts[0].Images)
	assert.JSONEq(t, `3`, string(feed.Posts[0].Extra["feed_from"]))

	call := stub.LastCall(t)
	assert.Equal(t, "/plus-group/groups/11/posts", call.Path)
	assert.Equal(t, url.Values{"type": {"latest_post"}, "limit": {"15"}, "offset": {"0"}}, call.Query)

	client.GroupFeed(context.Background(), 11, group.FeedQuery{Type: group.FeedExcellent, Page: pagination.Page{Offset: 15}})
	assert.Equal(t, url.Values{"type": {"excellent"}, "limit": {"15"}, "offset": {"15"}}, stub.LastCall(t).Query)
}

func TestGroupFeed_AnySuccessStatus(t *testing.T) {
	stub := testkit.NewStub(t)
	stub.Reply(http.MethodGet, "/plus-group/groups/{id}/posts", http.StatusAccepted, `{"pinneds":[{"id":2}]}`)

	feed := newClient(t, stub, nil).GroupFeed(context.Background(), 1, group.FeedQuery{})

	require.Len(t, feed.Pinneds, 1)
	assert.NotNil(t, feed.Posts)
	assert.Empty(t, feed.Posts)
}

/*
TestGroupFeed_Fallback returns two empty lists for every failure.
*/
func TestGroupFeed_Fallback(t *testing.T) {
	for name, arrange := range map[string]func(*testkit.Stub){
		"ServerError": func(stub *testkit.Stub) {
			stub.Reply(http.MethodGet, "/plus-group/groups/{id}/posts", http.StatusInternalServerError, nil)
		},
		"Malformed": func(stub *testkit.Stub) {
			stub.Reply(http.MethodGet, "/plus-group/groups/{id}/posts", http.StatusOK, `{"posts":"nope"}`)
		},
		"Dropped": func(stub *testkit.Stub) {
			stub.Drop(http.MethodGet, "/plus-group/groups/{id}/posts")
		},
	} {
		t.Run(name, func(t *testing.T) {
			stub := testkit.NewStub(t)
			arrange(stub)

			feed := newClient(t, stub, nil).GroupFeed(context.Background(), 1, group.FeedQuery{})

			assert.Equal(t, group.Feed{Pinneds: []group.Post{}, Posts: []group.Post{}}, feed)
		})
	}
}

/*
TestCreatePost stamps the provenance tag on a fresh payload.
*/
func TestCreatePost(t *testing.T) {
	stub := testkit.NewStub(t)
	stub.Reply(http.MethodPost, "/plus-group/groups/{id}/posts", http.StatusCreated, map[string]any{"post": map[string]int{"id": 99}})
	client := newClient(t, stub, nil)

	post := group.NewPost{
		Title:    "Morning run",
		Body:     "10k done",
		Summary:  "10k",
		Images:   []int64{8},
		SyncFeed: 1,
		FeedFrom: 5,
		Extra:    map[string]any{"feed_from": 4, "location": "park"},
	}

	body, err := client.CreatePost(context.Background(), 21, post)
	require.NoError(t, err)
	assert.JSONEq(t, `{"post":{"id":99}}`, string(body))

	sent := stub.LastCall(t).JSON(t)
	assert.Equal(t, float64(group.OriginFeedFrom), sent["feed_from"])
	assert.Equal(t, "Morning run", sent["title"])
	assert.Equal(t, float64(1), sent["sync_feed"])
	assert.Equal(t, "park", sent["location"])
	assert.Equal(t, "/plus-group/groups/21/posts", stub.LastCall(t).Path)

	// The caller's value is untouched.
	assert.Equal(t, 5, post.FeedFrom)
	assert.Equal(t, 4, post.Extra["feed_from"])
}

/*
TestOwningIDs rejects negative ids before dispatch.
*/
func TestOwningIDs(t *testing.T) {
	stub := testkit.NewStub(t)
	client := newClient(t, stub, nil)
	ctx := context.Background()

	checks := map[string]func() error{
		"CreatePost": func() error {
			_, err := client.CreatePost(ctx, -1, group.NewPost{Title: "t"})
			return err
		},
		"DeletePost":    func() error { return client.DeletePost(ctx, 1, -2) },
		"DeleteComment": func() error { return client.DeleteComment(ctx, -1, 2) },
		"PostComment": func() error {
			_, err := client.PostComment(ctx, -4, group.NewComment{Body: "hi"})
			return err
		},
		"ToggleCollect": func() error { return client.ToggleCollect(ctx, -1, false) },
		"ToggleLike":    func() error { return client.ToggleLike(ctx, -1, true) },
		"JoinGroup": func() error {
			_, err := client.JoinGroup(ctx, -3)
			return err
		},
		"ApplyPinnedComment": func() error {
			_, err := client.ApplyPinnedComment(ctx, -1, 2, group.PinnedApplication{Amount: 1, Day: 1})
			return err
		},
		"PostAudits": func() error {
			_, err := client.PostAudits(ctx, pagination.Cursor{}, -1)
			return err
		},
	}

	for name, call := range checks {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
		})
	}

	assert.Empty(t, stub.Calls())
}

func TestDeletePost(t *testing.T) {
	stub := testkit.NewStub(t)
	stub.Reply(http.MethodDelete, "/plus-group/groups/{gid}/posts/{pid}", http.StatusNoContent, nil)

	require.NoError(t, newClient(t, stub, nil).DeletePost(context.Background(), 2, 40))
	assert.Equal(t, "/plus-group/groups/2/posts/40", stub.LastCall(t).Path)
}

func TestSearchPosts(t *testing.T) {
	stub := testkit.NewStub(t)
	stub.Reply(http.MethodGet, "/plus-group/group-posts", http.StatusOK, `[{"id":1,"group_id":3,"title":"x"}]`)

	posts, err := newClient(t, stub, nil).SearchPosts(context.Background(), group.PostSearch{Keyword: "x", GroupID: 3})

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(3), posts[0].GroupID)
	assert.Equal(t, url.Values{"keyword": {"x"}, "group_id": {"3"}}, stub.LastCall(t).Query)
}

func TestRewardPost(t *testing.T) {
	stub := testkit.NewStub(t)
	stub.Reply(http.MethodPost, "/plus-group/group-posts/{id}/new-rewards", http.StatusCreated, nil)
	client := newClient(t, stub, nil)

	body, err := client.RewardPost(context.Background(), 5, group.Reward{Amount: 100})
	require.NoError(t, err)
	assert.Nil(t, body)
	assert.Equal(t, map[string]any{"amount": float64(100)}, stub.LastCall(t).JSON(t))

	_, err = client.RewardPost(context.Background(), 5, group.Reward{})
	assert.True(t, apperr.IsValidation(err))
	assert.Len(t, stub.Calls(), 1)
}
