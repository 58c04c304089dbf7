// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package projectdetail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/amsot/portfolio/internal/models"
	"github.com/amsot/portfolio/internal/tui/components/scrollablecard"
	"github.com/amsot/portfolio/internal/tui/layout"
)

// Model is the model for the project detail screen.
type Model struct {
	project models.Project
	body    scrollablecard.Model
	width   int
	height  int
}

// NewModel creates a detail screen for project
func NewModel(project models.Project) Model {
	m := Model{
		project: project,
		body:    scrollablecard.New("", "", 50, 10),
		width:   50,
		height:  10,
	}
	m.refreshContent()
	return m
}

// ProjectID returns the id of the project on screen
func (m Model) ProjectID() int {
	return m.project.ID
}

// SetProject replaces the project, e.g. after a refresh changed it
func (m *Model) SetProject(project models.Project) {
	m.project = project
	m.refreshContent()
}

// GetLayoutInfo returns layout information for the project detail screen
func (m Model) GetLayoutInfo() layout.LayoutInfo {
	title := m.project.PlainTitle()
	if title == "" {
		title = fmt.Sprintf("Project #%d", m.project.ID)
	}
	return layout.LayoutInfo{
		Title:       title,
		Breadcrumbs: []string{"Projects", title},
		Status:      m.project.Fields.TagLine,
		HelpItems: []layout.HelpItem{
			{Key: "↑/↓", Description: "scroll"},
			{Key: "esc", Description: "back"},
			{Key: "q", Description: "quit"},
		},
	}
}

// SetSize updates the dimensions of the screen and its scrollable body
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	m.body.SetSize(layout.ContentArea(m.GetLayoutInfo(), width, height))
	m.refreshContent()
}

func (m *Model) refreshContent() {
	m.body.SetContent(renderBody(m.project, m.body.ContentWidth()))
}

// renderBody lays out languages, description and gallery for width columns.
func renderBody(p models.Project, width int) string {
	var sections []string

	if langs := p.Fields.LanguageNames(); len(langs) > 0 {
		tags := lo.Map(langs, func(name string, _ int) string {
			return layout.LanguageTagStyle.Render(name)
		})
		sections = append(sections, layout.SectionTitleStyle.Render("Languages"), strings.Join(tags, " "), "")
	}

	description := p.Fields.PlainDescription()
	if description == "" {
		description = layout.StatsStyle.Render("No description.")
	}
	sections = append(sections,
		layout.SectionTitleStyle.Render("Description"),
		lipgloss.NewStyle().Width(width).Render(description),
		"",
	)

	sections = append(sections, renderGallery(p.Fields)...)
	return strings.Join(sections, "\n")
}

func renderGallery(f models.ProjectFields) []string {
	images := f.GalleryImages()
	ids := f.GalleryIDs()
	if len(images) == 0 && len(ids) == 0 {
		return nil
	}

	lines := []string{layout.SectionTitleStyle.Render(fmt.Sprintf("Gallery (%d)", max(len(images), len(ids))))}
	if len(images) == 0 {
		// only media ids, the gallery source was not resolved
		idText := lo.Map(ids, func(id int, _ int) string { return fmt.Sprintf("#%d", id) })
		return append(lines, layout.StatsStyle.Render("Media "+strings.Join(idText, ", ")))
	}

	for _, img := range images {
		name := img.Title
		if img.Alt != "" {
			name = img.Alt
		}
		if name == "" {
			name = fmt.Sprintf("#%d", img.ID)
		}
		lines = append(lines, fmt.Sprintf("• %s %s", name, layout.LinkStyle.Render(img.BestURL(models.SizeMedium))))
	}
	return lines
}
