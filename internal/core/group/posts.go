// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package group

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/taibuivan/plusgroup/internal/platform/validate"
)

// # Feed

/*
GroupFeed returns one page of a group's timeline.

The zero [FeedQuery] asks for the newest posts with the default page. Any
failure yields a Feed with two empty slices, as do missing or null lists in
an otherwise successful response.
*/
func (client *Client) GroupFeed(context context.Context, groupID int64, query FeedQuery) Feed {
	feed, err := client.groupFeed(context, groupID, query)
	return fallback("group_feed", feed, err, emptyFeed())
}

func (client *Client) groupFeed(context context.Context, groupID int64, query FeedQuery) (Feed, error) {
	if err := checkID("group_id", groupID).Err(); err != nil {
		return Feed{}, err
	}

	response, err := client.send(context, http.MethodGet, groupPath(groupID)+"/posts", query.values(), nil, 0)
	if err != nil {
		return Feed{}, err
	}

	feed := emptyFeed()
	if err := response.Decode(&feed); err != nil {
		return Feed{}, err
	}
	if feed.Pinneds == nil {
		feed.Pinneds = []Post{}
	}
	if feed.Posts == nil {
		feed.Posts = []Post{}
	}
	return feed, nil
}

func emptyFeed() Feed {
	return Feed{Pinneds: []Post{}, Posts: []Post{}}
}

// SearchPosts finds posts across groups. Only the filters set on search are sent.
func (client *Client) SearchPosts(context context.Context, search PostSearch) ([]Post, error) {
	return getList[Post](context, client, basePath+"/group-posts", search.values())
}

// # Authoring

/*
CreatePost publishes a post in a group.

The request body is a new map built from post and post.Extra; feed_from is
always [OriginFeedFrom] whatever post.FeedFrom holds. The caller's value is
not modified.
*/
func (client *Client) CreatePost(context context.Context, groupID int64, post NewPost) (json.RawMessage, error) {
	if err := checkID("group_id", groupID).Err(); err != nil {
		return nil, err
	}

	body, err := payload(post, post.Extra)
	if err != nil {
		return nil, err
	}
	body["feed_from"] = OriginFeedFrom

	return client.raw(context, http.MethodPost, groupPath(groupID)+"/posts", body, http.StatusCreated)
}

// DeletePost removes a post from its group.
func (client *Client) DeletePost(context context.Context, groupID, postID int64) error {
	err := checkID("group_id", groupID).
		NonNegative("post_id", postID).
		Err()
	if err != nil {
		return err
	}

	path := fmt.Sprintf("%s/posts/%d", groupPath(groupID), postID)
	return client.status(context, http.MethodDelete, path, nil, http.StatusNoContent)
}

// RewardPost tips the author of a post.
func (client *Client) RewardPost(context context.Context, postID int64, reward Reward) (json.RawMessage, error) {
	if err := checkID("post_id", postID).Err(); err != nil {
		return nil, err
	}
	if err := validate.Struct(reward); err != nil {
		return nil, err
	}
	return client.raw(context, http.MethodPost, postPath(postID)+"/new-rewards", reward, http.StatusCreated)
}

// # Toggles

/*
ToggleCollect flips the collected state of a post.

collected is the state the caller currently shows: true removes the post from
the collection (DELETE, 204), false adds it (POST, 201). The client does not
look the state up first.
*/
func (client *Client) ToggleCollect(context context.Context, postID int64, collected bool) error {
	if collected {
		return client.UncollectPost(context, postID)
	}
	return client.CollectPost(context, postID)
}

// CollectPost adds a post to the current user's collection.
func (client *Client) CollectPost(context context.Context, postID int64) error {
	if err := checkID("post_id", postID).Err(); err != nil {
		return err
	}
	return client.status(context, http.MethodPost, postPath(postID)+"/collections", nil, http.StatusCreated)
}

// UncollectPost removes a post from the current user's collection.
func (client *Client) UncollectPost(context context.Context, postID int64) error {
	if err := checkID("post_id", postID).Err(); err != nil {
		return err
	}
	return client.status(context, http.MethodDelete, postPath(postID)+"/uncollect", nil, http.StatusNoContent)
}

// ToggleLike flips the like on a post. liked true unlikes, false likes.
func (client *Client) ToggleLike(context context.Context, postID int64, liked bool) error {
	if err := checkID("post_id", postID).Err(); err != nil {
		return err
	}

	path := postPath(postID) + "/likes"
	if liked {
		return client.status(context, http.MethodDelete, path, nil, http.StatusNoContent)
	}
	return client.status(context, http.MethodPost, path, nil, http.StatusCreated)
}
