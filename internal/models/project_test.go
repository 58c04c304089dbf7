// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_DecodeMinimal(t *testing.T) {
	body := `[{"id":1,"title":{"rendered":"Demo"},"acf":{"project_tag_line":"t","project_description":"d","repeater_languajes":false,"project_gallery":false}}]`

	var projects []Project
	require.NoError(t, json.Unmarshal([]byte(body), &projects))
	require.Len(t, projects, 1)

	p := projects[0]
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "Demo", p.Title.Rendered)
	assert.Equal(t, "t", p.Fields.TagLine)
	assert.Equal(t, "d", p.Fields.Description)
	assert.Equal(t, []Language{}, p.Fields.Languages.Values())
	assert.Equal(t, []int{}, p.Fields.Gallery.Values())
}

func TestProject_DecodeWithoutFieldGroup(t *testing.T) {
	tests := []struct {
		name string
		acf  string
	}{
		{name: "empty array", acf: `[]`},
		{name: "false", acf: `false`},
		{name: "null", acf: `null`},
		{name: "string", acf: `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `[{"id":1,"title":{"rendered":"A"},"acf":{"project_tag_line":"t"}},` +
				`{"id":2,"title":{"rendered":"B"},"acf":` + tt.acf + `}]`

			var projects []Project
			require.NoError(t, json.Unmarshal([]byte(body), &projects))
			require.Len(t, projects, 2)

			assert.Equal(t, "t", projects[0].Fields.TagLine)
			assert.Equal(t, 2, projects[1].ID)
			assert.Equal(t, ProjectFields{}, projects[1].Fields)
			assert.Empty(t, projects[1].Fields.LanguageNames())
			assert.Empty(t, projects[1].Fields.GalleryImages())
		})
	}
}

func TestProject_DecodeFull(t *testing.T) {
	body := `{
		"id": 42,
		"title": {"rendered": "Amsot &#8211; Web"},
		"acf": {
			"project_tag_line": "Portfolio site",
			"project_description": "<p>Built with <strong>Vue</strong>.</p><p>Second&nbsp;line</p>",
			"repeater_languajes": [{"languaje_name": "Go"}, {"languaje_name": ""}, {"languaje_name": "TypeScript"}],
			"project_gallery": "101,102",
			"project_gallery_source": {
				"formatted_value": [
					{"ID": 101, "title": "home", "url": "https://cdn/home.png", "alt": "Home", "width": 1200, "height": 800,
					 "sizes": {"thumbnail": "https://cdn/home-150.png", "medium": "", "large": "https://cdn/home-1024.png"}},
					{"ID": 102, "title": "about", "url": "https://cdn/about.png", "alt": "", "width": 640, "height": 480}
				]
			}
		}
	}`

	var p Project
	require.NoError(t, json.Unmarshal([]byte(body), &p))

	assert.Equal(t, "Amsot – Web", p.PlainTitle())
	assert.Equal(t, "Built with Vue.\nSecond line", p.Fields.PlainDescription())
	assert.Equal(t, []string{"Go", "TypeScript"}, p.Fields.LanguageNames())

	assert.Equal(t, FieldMalformed, p.Fields.Gallery.Kind)
	assert.Empty(t, p.Fields.Gallery.Values())
	assert.Equal(t, []int{101, 102}, p.Fields.GalleryIDs())

	images := p.Fields.GalleryImages()
	require.Len(t, images, 2)
	assert.Equal(t, 101, images[0].ID)
	assert.Equal(t, "https://cdn/home-150.png", images[0].BestURL(SizeThumbnail))
	assert.Equal(t, "https://cdn/home.png", images[0].BestURL(SizeMedium), "blank size falls back to the original")
	assert.Equal(t, "https://cdn/home-1024.png", images[0].BestURL(SizeLarge))
	assert.Equal(t, "https://cdn/about.png", images[1].BestURL(SizeThumbnail), "missing sizes fall back to the original")
}

func TestProject_GallerySourceFalse(t *testing.T) {
	var fields ProjectFields
	require.NoError(t, json.Unmarshal([]byte(`{"project_gallery_source":{"formatted_value":false}}`), &fields))

	require.NotNil(t, fields.GallerySource)
	assert.Equal(t, FieldEmpty, fields.GallerySource.FormattedValue.Kind)
	assert.Empty(t, fields.GalleryImages())
}

func TestProject_GallerySourceNotObject(t *testing.T) {
	for _, raw := range []string{`false`, `[]`} {
		var fields ProjectFields
		require.NoError(t, json.Unmarshal([]byte(`{"project_gallery_source":`+raw+`}`), &fields), raw)
		assert.Empty(t, fields.GalleryImages(), raw)
	}
}

func TestProject_EncodeNormalizesUnions(t *testing.T) {
	p := Project{ID: 1, Title: RenderedField{Rendered: "Demo"}}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw struct {
		ACF map[string]interface{} `json:"acf"`
	}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, []interface{}{}, raw.ACF["repeater_languajes"])
	assert.Equal(t, []interface{}{}, raw.ACF["project_gallery"])
	assert.NotContains(t, raw.ACF, "project_gallery_source")
}

func TestFindProject(t *testing.T) {
	projects := []Project{{ID: 1}, {ID: 5}}

	p, ok := FindProject(projects, 5)
	assert.True(t, ok)
	assert.Equal(t, 5, p.ID)

	_, ok = FindProject(projects, 9)
	assert.False(t, ok)
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Plain", "Plain"},
		{"  spaced   out  ", "spaced out"},
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"line one<br>line two", "line one\nline two"},
		{"<ul><li>a</li><li>b</li></ul>", "a\nb"},
		{"<p>x</p><script>alert(1)</script><p>y</p>", "x\ny"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}
