// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// FieldKind tells which shape an ACF list field arrived in.
type FieldKind int

const (
	// FieldEmpty covers false, null, "", [] and a missing key.
	FieldEmpty FieldKind = iota
	// FieldList is a well-formed array.
	FieldList
	// FieldMalformed is any other value; Raw keeps what was received.
	FieldMalformed
)

func (k FieldKind) String() string {
	switch k {
	case FieldEmpty:
		return "empty"
	case FieldList:
		return "list"
	case FieldMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// ListField is an ACF repeater/gallery value. WordPress reports "no data" as
// boolean false and sometimes as a string, so the union is resolved here
// once and the rest of the code only ever sees Values().
type ListField[T any] struct {
	Kind  FieldKind
	Items []T
	Raw   string
}

// ListOf builds a FieldList value, or FieldEmpty when items is empty.
func ListOf[T any](items ...T) ListField[T] {
	if len(items) == 0 {
		return ListField[T]{Kind: FieldEmpty}
	}
	return ListField[T]{Kind: FieldList, Items: items}
}

// Values returns the items for a list and an empty, non-nil slice otherwise.
func (f ListField[T]) Values() []T {
	if f.Kind != FieldList || f.Items == nil {
		return []T{}
	}
	return f.Items
}

// Len returns len(Values()).
func (f ListField[T]) Len() int {
	return len(f.Values())
}

// IsEmpty reports whether there is nothing to show.
func (f ListField[T]) IsEmpty() bool {
	return f.Len() == 0
}

// UnmarshalJSON never fails: shapes it cannot read become FieldMalformed.
func (f *ListField[T]) UnmarshalJSON(data []byte) error {
	*f = ListField[T]{}

	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0,
		bytes.Equal(trimmed, []byte("null")),
		bytes.Equal(trimmed, []byte("false")):
		return nil

	case trimmed[0] == '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			f.Kind = FieldMalformed
			f.Raw = string(trimmed)
			return nil
		}
		if len(items) > 0 {
			f.Kind = FieldList
			f.Items = items
		}
		return nil

	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			f.Kind = FieldMalformed
			f.Raw = s
			return nil
		}
	}

	f.Kind = FieldMalformed
	f.Raw = string(trimmed)
	return nil
}

// MarshalJSON always emits an array so consumers never see false.
func (f ListField[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Values())
}

// MarshalYAML mirrors MarshalJSON for the yaml.v3 encoder.
func (f ListField[T]) MarshalYAML() (interface{}, error) {
	return f.Values(), nil
}

// MediaIDs returns the gallery attachment IDs. A malformed gallery given as
// a comma separated string ("12, 13") or as an array of quoted IDs is split
// and parsed; parts that are not integers are skipped.
func MediaIDs(f ListField[int]) []int {
	if f.Kind != FieldMalformed {
		return f.Values()
	}

	parts := strings.Split(f.Raw, ",")
	return lo.FilterMap(parts, func(part string, _ int) (int, bool) {
		id, err := strconv.Atoi(strings.Trim(part, " \"[]"))
		return id, err == nil
	})
}
