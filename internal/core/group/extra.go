// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package group

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

// Extra holds response fields the client does not model. They survive a
// decode/encode round trip unchanged.
type Extra map[string]json.RawMessage

// knownFields caches the JSON names declared by each entity type.
var knownFields sync.Map // reflect.Type -> map[string]struct{}

func fieldNames(t reflect.Type) map[string]struct{} {
	if cached, ok := knownFields.Load(t); ok {
		return cached.(map[string]struct{})
	}

	names := make(map[string]struct{}, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = field.Name
		}
		names[name] = struct{}{}
	}

	knownFields.Store(t, names)
	return names
}

/*
unmarshalWithExtra decodes data into known and collects every key that known
does not declare into extra.

Parameters:
  - data: raw JSON object
  - known: pointer to a method-less alias of the entity
  - extra: destination for undeclared keys; left nil when there are none
*/
func unmarshalWithExtra(data []byte, known any, extra *Extra) error {
	if err := json.Unmarshal(data, known); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}

	declared := fieldNames(reflect.TypeOf(known).Elem())
	for name := range declared {
		delete(all, name)
	}

	*extra = nil
	if len(all) > 0 {
		*extra = all
	}
	return nil
}

// marshalWithExtra encodes known and appends extra keys it did not emit itself.
func marshalWithExtra(known any, extra Extra) ([]byte, error) {
	encoded, err := json.Marshal(known)
	if err != nil || len(extra) == 0 {
		return encoded, err
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &merged); err != nil {
		return nil, err
	}
	for key, value := range extra {
		if _, taken := merged[key]; !taken {
			merged[key] = value
		}
	}
	return json.Marshal(merged)
}

// # Entity Codecs

func (g *Group) UnmarshalJSON(data []byte) error {
	type plain Group
	return unmarshalWithExtra(data, (*plain)(g), &g.Extra)
}

func (g Group) MarshalJSON() ([]byte, error) {
	type plain Group
	return marshalWithExtra(plain(g), g.Extra)
}

func (c *Category) UnmarshalJSON(data []byte) error {
	type plain Category
	return unmarshalWithExtra(data, (*plain)(c), &c.Extra)
}

func (c Category) MarshalJSON() ([]byte, error) {
	type plain Category
	return marshalWithExtra(plain(c), c.Extra)
}

func (p *Post) UnmarshalJSON(data []byte) error {
	type plain Post
	return unmarshalWithExtra(data, (*plain)(p), &p.Extra)
}

func (p Post) MarshalJSON() ([]byte, error) {
	type plain Post
	return marshalWithExtra(plain(p), p.Extra)
}

func (c *Comment) UnmarshalJSON(data []byte) error {
	type plain Comment
	return unmarshalWithExtra(data, (*plain)(c), &c.Extra)
}

func (c Comment) MarshalJSON() ([]byte, error) {
	type plain Comment
	return marshalWithExtra(plain(c), c.Extra)
}

func (m *Member) UnmarshalJSON(data []byte) error {
	type plain Member
	return unmarshalWithExtra(data, (*plain)(m), &m.Extra)
}

func (m Member) MarshalJSON() ([]byte, error) {
	type plain Member
	return marshalWithExtra(plain(m), m.Extra)
}

func (p *Protocol) UnmarshalJSON(data []byte) error {
	type plain Protocol
	return unmarshalWithExtra(data, (*plain)(p), &p.Extra)
}

func (p Protocol) MarshalJSON() ([]byte, error) {
	type plain Protocol
	return marshalWithExtra(plain(p), p.Extra)
}

func (r *PinnedRecord) UnmarshalJSON(data []byte) error {
	type plain PinnedRecord
	return unmarshalWithExtra(data, (*plain)(r), &r.Extra)
}

func (r PinnedRecord) MarshalJSON() ([]byte, error) {
	type plain PinnedRecord
	return marshalWithExtra(plain(r), r.Extra)
}

// # Images

// ImageIDs is the ordered list of image ids attached to a post. The service
// sends either bare ids or objects carrying an "id" (older builds use "file").
type ImageIDs []int64

func (ids *ImageIDs) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*ids = nil
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	decoded := make(ImageIDs, 0, len(raw))
	for _, item := range raw {
		var id int64
		if err := json.Unmarshal(item, &id); err == nil {
			decoded = append(decoded, id)
			continue
		}

		var object struct {
			ID   int64 `json:"id"`
			File int64 `json:"file"`
		}
		if err := json.Unmarshal(item, &object); err != nil {
			return err
		}
		if object.ID == 0 {
			object.ID = object.File
		}
		decoded = append(decoded, object.ID)
	}

	*ids = decoded
	return nil
}
