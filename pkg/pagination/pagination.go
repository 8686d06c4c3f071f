// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides the paging arguments sent by list operations.
//
// # Overview
//
// The remote service supports two styles: offset paging (limit + offset) for
// group listings and cursor paging (after + limit) for members, comments and
// audit queues. Callers own the cursor and advance it between calls; nothing
// here remembers the previous page.
package pagination

import (
	"net/url"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 15
	// DefaultOffset is the starting offset.
	DefaultOffset = 0
	// DefaultAfter is the starting cursor id.
	DefaultAfter = 0
)

// Page holds offset-style paging arguments.
type Page struct {
	Limit  int
	Offset int
}

// Normalize replaces unset or invalid values with the defaults.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Offset < 0 {
		p.Offset = DefaultOffset
	}
	return p
}

// Next returns the page that follows p, given how many items p returned.
func (p Page) Next(received int) Page {
	p = p.Normalize()
	p.Offset += received
	return p
}

// Apply writes the normalized "limit" and "offset" into values.
func (p Page) Apply(values url.Values) {
	p = p.Normalize()
	values.Set("limit", strconv.Itoa(p.Limit))
	values.Set("offset", strconv.Itoa(p.Offset))
}

// Cursor holds id-cursor paging arguments.
type Cursor struct {
	After int64
	Limit int
}

// Normalize replaces unset or invalid values with the defaults.
func (c Cursor) Normalize() Cursor {
	if c.Limit <= 0 {
		c.Limit = DefaultLimit
	}
	if c.After < 0 {
		c.After = DefaultAfter
	}
	return c
}

// Apply writes the normalized "after" and "limit" into values.
func (c Cursor) Apply(values url.Values) {
	c = c.Normalize()
	values.Set("after", strconv.FormatInt(c.After, 10))
	values.Set("limit", strconv.Itoa(c.Limit))
}
