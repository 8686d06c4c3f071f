// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package group is the client for the plus-group community service.

It covers groups and their categories, membership, the group post feed,
comments, collect/like toggles and paid pinned ("top") placement.

# Core Responsibility

  - Translation: one [Client] method per remote operation, mapping typed
    arguments onto a method, path, query and JSON body.
  - Contract: every call declares the exact status that counts as success.
  - Normalization: list envelopes, the comment envelope and the feed shape are
    unwrapped into stable Go values; selected read operations return a fixed
    fallback instead of an error.

The client holds no state between calls and never caches.
*/
package group

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/taibuivan/plusgroup/pkg/pagination"
	"github.com/taibuivan/plusgroup/pkg/textnorm"
)

// # Constants

// RecommendedCategory selects the recommendation listing in [Client.ListGroupsByCategory].
const RecommendedCategory int64 = -1

// OriginFeedFrom is the provenance tag stamped on every post created through
// this client. The service reads feed_from=2 as "mobile web".
const OriginFeedFrom = 2

// FeedType orders the posts returned by [Client.GroupFeed].
type FeedType string

const (
	FeedLatestPost  FeedType = "latest_post"
	FeedLatestReply FeedType = "latest_reply"
	FeedExcellent   FeedType = "excellent"
)

// MemberType filters the roster returned by [Client.ListMembers].
type MemberType string

const (
	MembersAll       MemberType = "all"
	MembersManager   MemberType = "manager"
	MembersMember    MemberType = "member"
	MembersBlacklist MemberType = "blacklist"
	MembersAudit     MemberType = "audit"
)

// # Wire Entities

// Group is a community. Unknown fields are kept in Extra and re-emitted on marshal.
type Group struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	UserID     int64           `json:"user_id"`
	CategoryID int64           `json:"category_id"`
	Avatar     json.RawMessage `json:"avatar,omitempty"`
	Extra      Extra           `json:"-"`
}

// Category groups communities by topic.
type Category struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	SortBy int    `json:"sort_by"`
	Extra  Extra  `json:"-"`
}

// Post is a group post.
type Post struct {
	ID      int64    `json:"id"`
	GroupID int64    `json:"group_id"`
	UserID  int64    `json:"user_id"`
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Body    string   `json:"body,omitempty"`
	Images  ImageIDs `json:"images,omitempty"`
	Extra   Extra    `json:"-"`
}

// Comment is a reply to a group post. ReplyUser is zero for top-level comments.
type Comment struct {
	ID        int64  `json:"id,omitempty"`
	PostID    int64  `json:"post_id,omitempty"`
	UserID    int64  `json:"user_id,omitempty"`
	Body      string `json:"body,omitempty"`
	ReplyUser int64  `json:"reply_user,omitempty"`
	Extra     Extra  `json:"-"`
}

// Member is one roster entry of a group.
type Member struct {
	ID      int64           `json:"id"`
	UserID  int64           `json:"user_id"`
	GroupID int64           `json:"group_id"`
	Role    string          `json:"role"`
	Audit   int             `json:"audit"`
	User    json.RawMessage `json:"user,omitempty"`
	Extra   Extra           `json:"-"`
}

// Feed is the group timeline: pinned posts first, then the ordered page.
// Both slices are never nil.
type Feed struct {
	Pinneds []Post `json:"pinneds"`
	Posts   []Post `json:"posts"`
}

// CommentPage is one page of a post's comments with pinned comments listed
// separately. Both slices are never nil.
type CommentPage struct {
	Pinneds  []Comment `json:"pinneds"`
	Comments []Comment `json:"comments"`
}

// Protocol is the community rules text shown before creating a group.
type Protocol struct {
	Protocol string `json:"protocol"`
	Extra    Extra  `json:"-"`
}

// PinnedRecord is a pending pinned-placement application awaiting review.
type PinnedRecord struct {
	ID     int64 `json:"id"`
	Amount int64 `json:"amount"`
	Day    int   `json:"day"`
	Extra  Extra `json:"-"`
}

// # Outbound Payloads

// NewGroup is the body of [Client.CreateGroup]. Extra carries additional fields verbatim.
type NewGroup struct {
	Name      string         `json:"name"                validate:"required,max=20"`
	Summary   string         `json:"summary,omitempty"`
	Notice    string         `json:"notice,omitempty"`
	Mode      string         `json:"mode,omitempty"      validate:"omitempty,oneof=public private paid"`
	Money     int64          `json:"money,omitempty"     validate:"gte=0"`
	AllowFeed int            `json:"allow_feed,omitempty"`
	Location  string         `json:"location,omitempty"`
	Latitude  string         `json:"latitude,omitempty"`
	Longitude string         `json:"longitude,omitempty"`
	GeoHash   string         `json:"geo_hash,omitempty"`
	Tags      []int64        `json:"tags,omitempty"`
	Extra     map[string]any `json:"-"`
}

// NewPost is the body of [Client.CreatePost]. FeedFrom is always replaced
// by [OriginFeedFrom] on the wire.
type NewPost struct {
	Title    string         `json:"title"`
	Body     string         `json:"body"`
	Summary  string         `json:"summary"`
	Images   []int64        `json:"images,omitempty"`
	SyncFeed int            `json:"sync_feed,omitempty"`
	FeedFrom int            `json:"feed_from,omitempty"`
	Extra    map[string]any `json:"-"`
}

// NewComment is the body of [Client.PostComment].
type NewComment struct {
	Body      string `json:"body"                 validate:"required"`
	ReplyUser int64  `json:"reply_user,omitempty" validate:"gte=0"`
}

// PinnedApplication bids Amount currency units to pin a post or comment for Day days.
type PinnedApplication struct {
	Amount int64 `json:"amount" validate:"gt=0"`
	Day    int   `json:"day"    validate:"gt=0"`
}

// Reward tips the author of a post.
type Reward struct {
	Amount int64 `json:"amount" validate:"gt=0"`
}

// # Query Arguments

// FeedQuery selects one page of a group feed. The zero value is the first
// page of the latest posts.
type FeedQuery struct {
	Type FeedType
	Page pagination.Page
}

func (query FeedQuery) values() url.Values {
	values := url.Values{}

	feedType := query.Type
	if feedType == "" {
		feedType = FeedLatestPost
	}
	values.Set("type", string(feedType))
	query.Page.Apply(values)

	return values
}

// GroupSearch filters [Client.SearchGroups]. Only set fields are sent.
type GroupSearch struct {
	Keyword    string
	CategoryID int64
	Limit      int
	Offset     int
}

func (search GroupSearch) values() url.Values {
	values := url.Values{}
	setKeyword(values, search.Keyword)
	setPositive(values, "category_id", search.CategoryID)
	setPositive(values, "limit", int64(search.Limit))
	setPositive(values, "offset", int64(search.Offset))
	return values
}

// PostSearch filters [Client.SearchPosts]. Only set fields are sent.
type PostSearch struct {
	Keyword string
	GroupID int64
	Limit   int
	Offset  int
}

func (search PostSearch) values() url.Values {
	values := url.Values{}
	setKeyword(values, search.Keyword)
	setPositive(values, "group_id", search.GroupID)
	setPositive(values, "limit", int64(search.Limit))
	setPositive(values, "offset", int64(search.Offset))
	return values
}

// MemberQuery pages through a group roster. Limit and after always go out
// with their defaults; Name and Type only when set.
type MemberQuery struct {
	Cursor pagination.Cursor
	Name   string
	Type   MemberType
}

func (query MemberQuery) values() url.Values {
	values := url.Values{}
	query.Cursor.Apply(values)
	if name := textnorm.Keyword(query.Name); name != "" {
		values.Set("name", name)
	}
	if query.Type != "" {
		values.Set("type", string(query.Type))
	}
	return values
}

func setKeyword(values url.Values, keyword string) {
	if normalized := textnorm.Keyword(keyword); normalized != "" {
		values.Set("keyword", normalized)
	}
}

func setPositive(values url.Values, key string, value int64) {
	if value > 0 {
		values.Set(key, strconv.FormatInt(value, 10))
	}
}
