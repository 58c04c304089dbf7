// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import (
	"bytes"
	"encoding/json"

	"github.com/samber/lo"
)

// Project is one entry of the WordPress "project" post type.
type Project struct {
	ID     int           `json:"id" yaml:"id"`
	Title  RenderedField `json:"title" yaml:"title"`
	Fields ProjectFields `json:"acf" yaml:"acf"`
}

// RenderedField is a WordPress field that the CMS has already formatted for display.
type RenderedField struct {
	Rendered string `json:"rendered" yaml:"rendered"`
}

// ProjectFields holds the ACF custom fields of a project.
type ProjectFields struct {
	TagLine       string              `json:"project_tag_line" yaml:"tag_line"`
	Description   string              `json:"project_description" yaml:"description"`
	Languages     ListField[Language] `json:"repeater_languajes" yaml:"languages"`
	Gallery       ListField[int]      `json:"project_gallery" yaml:"gallery"`
	GallerySource *GallerySource      `json:"project_gallery_source,omitempty" yaml:"gallery_source,omitempty"`
}

// Language is one row of the languages repeater.
type Language struct {
	Name string `json:"languaje_name" yaml:"name"`
}

// GallerySource carries the gallery resolved into full image metadata.
type GallerySource struct {
	FormattedValue ListField[GalleryImage] `json:"formatted_value" yaml:"formatted_value"`
}

// GalleryImage is an ACF image array.
type GalleryImage struct {
	ID     int         `json:"ID" yaml:"id"`
	Title  string      `json:"title" yaml:"title"`
	URL    string      `json:"url" yaml:"url"`
	Alt    string      `json:"alt" yaml:"alt"`
	Width  int         `json:"width" yaml:"width"`
	Height int         `json:"height" yaml:"height"`
	Sizes  *ImageSizes `json:"sizes,omitempty" yaml:"sizes,omitempty"`
}

// ImageSizes lists the URLs WordPress generated for the standard sizes.
type ImageSizes struct {
	Thumbnail string `json:"thumbnail" yaml:"thumbnail"`
	Medium    string `json:"medium" yaml:"medium"`
	Large     string `json:"large" yaml:"large"`
}

// ImageSize selects one of the generated renditions.
type ImageSize string

const (
	SizeThumbnail ImageSize = "thumbnail"
	SizeMedium    ImageSize = "medium"
	SizeLarge     ImageSize = "large"
	SizeFull      ImageSize = "full"
)

// UnmarshalJSON accepts the shapes ACF sends for a post without a field
// group ([], false, null) as empty fields.
func (f *ProjectFields) UnmarshalJSON(data []byte) error {
	*f = ProjectFields{}
	if !isObject(data) {
		return nil
	}
	type plain ProjectFields
	return json.Unmarshal(data, (*plain)(f))
}

// UnmarshalJSON treats a non-object gallery source as one with no images.
func (g *GallerySource) UnmarshalJSON(data []byte) error {
	*g = GallerySource{}
	if !isObject(data) {
		return nil
	}
	type plain GallerySource
	return json.Unmarshal(data, (*plain)(g))
}

func isObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// PlainTitle returns the rendered title as plain text.
func (p Project) PlainTitle() string {
	return PlainText(p.Title.Rendered)
}

// PlainDescription returns the description with markup removed.
func (f ProjectFields) PlainDescription() string {
	return PlainText(f.Description)
}

// LanguageNames returns the language names in repeater order, skipping blank rows.
func (f ProjectFields) LanguageNames() []string {
	names := lo.Map(f.Languages.Values(), func(l Language, _ int) string {
		return PlainText(l.Name)
	})
	return lo.Compact(names)
}

// GalleryImages returns the resolved gallery images, or none when the source is absent.
func (f ProjectFields) GalleryImages() []GalleryImage {
	if f.GallerySource == nil {
		return []GalleryImage{}
	}
	return f.GallerySource.FormattedValue.Values()
}

// GalleryIDs returns the gallery attachment IDs, see MediaIDs.
func (f ProjectFields) GalleryIDs() []int {
	return MediaIDs(f.Gallery)
}

// BestURL returns the URL of the requested rendition, falling back to the original.
func (img GalleryImage) BestURL(size ImageSize) string {
	if img.Sizes != nil {
		switch size {
		case SizeThumbnail:
			if img.Sizes.Thumbnail != "" {
				return img.Sizes.Thumbnail
			}
		case SizeMedium:
			if img.Sizes.Medium != "" {
				return img.Sizes.Medium
			}
		case SizeLarge:
			if img.Sizes.Large != "" {
				return img.Sizes.Large
			}
		}
	}
	return img.URL
}

// FindProject returns the project with the given ID.
func FindProject(projects []Project, id int) (Project, bool) {
	return lo.Find(projects, func(p Project) bool {
		return p.ID == id
	})
}
