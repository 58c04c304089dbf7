// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestListField_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKind  FieldKind
		wantItems []int
		wantRaw   string
	}{
		{name: "false", input: `false`, wantKind: FieldEmpty},
		{name: "null", input: `null`, wantKind: FieldEmpty},
		{name: "empty string", input: `""`, wantKind: FieldEmpty},
		{name: "blank string", input: `"   "`, wantKind: FieldEmpty},
		{name: "empty array", input: `[]`, wantKind: FieldEmpty},
		{name: "ids", input: `[12, 13, 14]`, wantKind: FieldList, wantItems: []int{12, 13, 14}},
		{name: "csv string", input: `"12,13"`, wantKind: FieldMalformed, wantRaw: "12,13"},
		{name: "true", input: `true`, wantKind: FieldMalformed, wantRaw: "true"},
		{name: "number", input: `42`, wantKind: FieldMalformed, wantRaw: "42"},
		{name: "object", input: `{"a":1}`, wantKind: FieldMalformed, wantRaw: `{"a":1}`},
		{name: "wrong element type", input: `["12","x"]`, wantKind: FieldMalformed, wantRaw: `["12","x"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f ListField[int]
			require.NoError(t, json.Unmarshal([]byte(tt.input), &f))

			assert.Equal(t, tt.wantKind, f.Kind)
			assert.Equal(t, tt.wantRaw, f.Raw)
			if tt.wantItems == nil {
				assert.Empty(t, f.Values())
				assert.NotNil(t, f.Values(), "Values must never be nil")
				assert.True(t, f.IsEmpty())
			} else {
				assert.Equal(t, tt.wantItems, f.Values())
				assert.Equal(t, len(tt.wantItems), f.Len())
			}
		})
	}
}

func TestListField_MissingKeyIsEmpty(t *testing.T) {
	var fields ProjectFields
	require.NoError(t, json.Unmarshal([]byte(`{"project_tag_line":"t"}`), &fields))

	assert.Equal(t, FieldEmpty, fields.Languages.Kind)
	assert.Equal(t, FieldEmpty, fields.Gallery.Kind)
	assert.Nil(t, fields.GallerySource)
	assert.Empty(t, fields.GalleryImages())
}

func TestListField_ReusedValueIsReset(t *testing.T) {
	f := ListOf(1, 2)
	require.NoError(t, json.Unmarshal([]byte(`false`), &f))
	assert.Equal(t, FieldEmpty, f.Kind)
	assert.Empty(t, f.Values())
}

func TestListField_MarshalNeverEmitsFalse(t *testing.T) {
	tests := []struct {
		name  string
		field ListField[int]
		want  string
	}{
		{"empty", ListField[int]{}, `[]`},
		{"malformed", ListField[int]{Kind: FieldMalformed, Raw: "12,13"}, `[]`},
		{"list", ListOf(7, 8), `[7,8]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.field)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestListField_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(struct {
		Languages ListField[Language] `yaml:"languages"`
	}{})
	require.NoError(t, err)
	assert.Equal(t, "languages: []\n", string(out))
}

func TestMediaIDs(t *testing.T) {
	tests := []struct {
		name  string
		field ListField[int]
		want  []int
	}{
		{"list", ListOf(3, 4), []int{3, 4}},
		{"empty", ListField[int]{}, []int{}},
		{"csv", ListField[int]{Kind: FieldMalformed, Raw: "12, 13,x, 14"}, []int{12, 13, 14}},
		{"quoted array", ListField[int]{Kind: FieldMalformed, Raw: `["5","6"]`}, []int{5, 6}},
		{"garbage", ListField[int]{Kind: FieldMalformed, Raw: "none"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MediaIDs(tt.field)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldKind_String(t *testing.T) {
	assert.Equal(t, "empty", FieldEmpty.String())
	assert.Equal(t, "list", FieldList.String())
	assert.Equal(t, "malformed", FieldMalformed.String())
	assert.Equal(t, "unknown", FieldKind(99).String())
}
