// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package group

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/taibuivan/plusgroup/internal/platform/ctxutil"
	"github.com/taibuivan/plusgroup/internal/platform/observability"
	"github.com/taibuivan/plusgroup/internal/platform/validate"
	"github.com/taibuivan/plusgroup/pkg/pagination"
)

// # Discovery

/*
CountGroups returns the total number of groups.

Any failure is logged once at warn level and reported as 0, so the result
never distinguishes "no groups" from "service unreachable".
*/
func (client *Client) CountGroups(context context.Context) int {
	var counted struct {
		Count int `json:"count"`
	}

	response, err := client.send(context, http.MethodGet, basePath+"/groups/count", nil, nil, http.StatusOK)
	if err == nil {
		err = response.Decode(&counted)
	}
	if err != nil {
		ctxutil.GetLogger(context, client.logger).WarnContext(context, "group_count_failed",
			slog.Any("error", err),
		)
		observability.RecordFallback("count_groups")
		return 0
	}

	return counted.Count
}

// ListCategories returns every group category.
func (client *Client) ListCategories(context context.Context) ([]Category, error) {
	return getList[Category](context, client, basePath+"/categories", nil)
}

// ListMyGroups returns the groups the current user has joined.
func (client *Client) ListMyGroups(context context.Context) ([]Group, error) {
	return getList[Group](context, client, basePath+"/user-groups", nil)
}

// ListRecommendedGroups returns a random selection of groups, or an empty
// slice on any failure including a body that is not a list.
func (client *Client) ListRecommendedGroups(context context.Context) []Group {
	groups, err := client.recommended(context, url.Values{"type": {"random"}})
	return fallback("list_recommended_groups", groups, err, []Group{})
}

func (client *Client) recommended(context context.Context, query url.Values) ([]Group, error) {
	return getList[Group](context, client, basePath+"/recommend/groups", query)
}

/*
ListGroupsByUser returns one page of the groups a user belongs to.

Failures of any kind yield an empty slice.
*/
func (client *Client) ListGroupsByUser(context context.Context, userID int64, page pagination.Page) []Group {
	groups, err := client.groupsByUser(context, userID, page)
	return fallback("list_groups_by_user", groups, err, []Group{})
}

func (client *Client) groupsByUser(context context.Context, userID int64, page pagination.Page) ([]Group, error) {
	if err := checkID("user_id", userID).Err(); err != nil {
		return []Group{}, err
	}

	query := url.Values{"user_id": {strconv.FormatInt(userID, 10)}}
	page.Apply(query)

	return getList[Group](context, client, basePath+"/groups/users", query)
}

/*
ListGroupsByCategory returns one page of a category's groups.

A category of [RecommendedCategory] (or any negative value) lists the
recommendation feed instead. Failures of any kind yield an empty slice.
*/
func (client *Client) ListGroupsByCategory(context context.Context, categoryID int64, page pagination.Page) []Group {
	query := url.Values{}
	page.Apply(query)

	var (
		groups []Group
		err    error
	)
	if categoryID > RecommendedCategory {
		query.Set("category_id", strconv.FormatInt(categoryID, 10))
		groups, err = getList[Group](context, client, basePath+"/groups", query)
	} else {
		groups, err = client.recommended(context, query)
	}

	return fallback("list_groups_by_category", groups, err, []Group{})
}

// SearchGroups finds groups. Only the filters set on search are sent.
func (client *Client) SearchGroups(context context.Context, search GroupSearch) ([]Group, error) {
	return getList[Group](context, client, basePath+"/groups", search.values())
}

// GroupInfo returns the full record of a single group.
func (client *Client) GroupInfo(context context.Context, groupID int64) (Group, error) {
	if err := checkID("group_id", groupID).Err(); err != nil {
		return Group{}, err
	}

	response, err := client.send(context, http.MethodGet, groupPath(groupID), nil, nil, http.StatusOK)
	if err != nil {
		return Group{}, err
	}

	var group Group
	if err := response.Decode(&group); err != nil {
		return Group{}, err
	}
	return group, nil
}

// Protocol returns the rules a user accepts before creating a group.
func (client *Client) Protocol(context context.Context) (Protocol, error) {
	response, err := client.send(context, http.MethodGet, basePath+"/groups/protocol", nil, nil, http.StatusOK)
	if err != nil {
		return Protocol{}, err
	}

	var protocol Protocol
	if err := response.Decode(&protocol); err != nil {
		return Protocol{}, err
	}
	return protocol, nil
}

// # Lifecycle

/*
CreateGroup creates a group inside a category.

Parameters:
  - categoryID: owning category, must not be negative
  - group: validated before dispatch; group.Extra is merged into the body
    without overriding declared fields

Returns:
  - json.RawMessage: the service's response body as received
  - error: VALIDATION_ERROR, or the dispatch error unchanged
*/
func (client *Client) CreateGroup(context context.Context, categoryID int64, group NewGroup) (json.RawMessage, error) {
	if err := checkID("category_id", categoryID).Err(); err != nil {
		return nil, err
	}
	if err := validate.Struct(group); err != nil {
		return nil, err
	}

	body, err := payload(group, group.Extra)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/categories/%d/groups", basePath, categoryID)
	return client.raw(context, http.MethodPost, path, body, http.StatusOK)
}

// JoinGroup requests membership. Paid or private groups may queue the request for review.
func (client *Client) JoinGroup(context context.Context, groupID int64) (json.RawMessage, error) {
	if err := checkID("group_id", groupID).Err(); err != nil {
		return nil, err
	}
	return client.raw(context, http.MethodPut, groupPath(groupID), nil, http.StatusCreated)
}

// ExitGroup leaves a group.
func (client *Client) ExitGroup(context context.Context, groupID int64) error {
	if err := checkID("group_id", groupID).Err(); err != nil {
		return err
	}
	return client.status(context, http.MethodDelete, groupPath(groupID)+"/exit", nil, http.StatusNoContent)
}

// TransferGroup hands ownership of a group to the target user.
func (client *Client) TransferGroup(context context.Context, groupID, targetUserID int64) (json.RawMessage, error) {
	err := checkID("group_id", groupID).
		Positive("target", targetUserID).
		Err()
	if err != nil {
		return nil, err
	}

	body := map[string]any{"target": targetUserID}
	return client.raw(context, http.MethodPatch, groupPath(groupID)+"/owner", body, http.StatusCreated)
}

// ListMembers returns one cursor page of a group's roster.
func (client *Client) ListMembers(context context.Context, groupID int64, query MemberQuery) ([]Member, error) {
	if err := checkID("group_id", groupID).Err(); err != nil {
		return []Member{}, err
	}
	return getList[Member](context, client, groupPath(groupID)+"/members", query.values())
}
