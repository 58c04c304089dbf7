// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"encoding/json"

	"github.com/amsot/portfolio/internal/models"
)

// SampleProjectsJSON is a WordPress response body covering the shapes the
// ACF fields take in the wild: false for empty repeaters, arrays, and a
// resolved gallery source.
const SampleProjectsJSON = `[
  {
    "id": 1,
    "title": {"rendered": "Demo"},
    "acf": {
      "project_tag_line": "t",
      "project_description": "d",
      "repeater_languajes": false,
      "project_gallery": false
    }
  },
  {
    "id": 7,
    "title": {"rendered": "Amsot &#8211; Web"},
    "acf": {
      "project_tag_line": "Company site",
      "project_description": "<p>Built with Vue.</p><p>Second line</p>",
      "repeater_languajes": [{"languaje_name": "Vue"}, {"languaje_name": "PHP"}],
      "project_gallery": [31, 32],
      "project_gallery_source": {
        "formatted_value": [
          {"ID": 31, "title": "home", "url": "https://data.amsot.net/uploads/home.png", "alt": "Home page", "width": 1200, "height": 800,
           "sizes": {"thumbnail": "https://data.amsot.net/uploads/home-150x150.png", "medium": "https://data.amsot.net/uploads/home-300x200.png"}},
          {"ID": 32, "title": "contact", "url": "https://data.amsot.net/uploads/contact.png", "alt": "", "width": 1200, "height": 800}
        ]
      }
    }
  },
  {
    "id": 12,
    "title": {"rendered": "Inventory"},
    "acf": {
      "project_tag_line": "Stock tracking",
      "project_description": "Go service with a terminal client.",
      "repeater_languajes": [{"languaje_name": "Go"}],
      "project_gallery": false
    }
  }
]`

// SampleProjects decodes SampleProjectsJSON.
func SampleProjects() []models.Project {
	var projects []models.Project
	if err := json.Unmarshal([]byte(SampleProjectsJSON), &projects); err != nil {
		panic("testutil: invalid SampleProjectsJSON: " + err.Error())
	}
	return projects
}

// SampleProject returns a minimal project with the given id and title.
func SampleProject(id int, title string) models.Project {
	return models.Project{
		ID:    id,
		Title: models.RenderedField{Rendered: title},
		Fields: models.ProjectFields{
			TagLine:     title + " tag line",
			Description: title + " description",
		},
	}
}
