// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package editor

import (
	"github.com/olegiv/topdesignr/internal/content"
	"github.com/olegiv/topdesignr/internal/recordstore"
)

// ProjectsEditor edits the portfolio collection.
type ProjectsEditor struct {
	*Collection[content.Project]
}

// NewProjectsEditor creates a portfolio editor over store.
func NewProjectsEditor(store *recordstore.Store, ids *IDGenerator) *ProjectsEditor {
	return &ProjectsEditor{
		Collection: NewCollection(store, CollectionConfig[content.Project]{
			Key:  content.KeyProjects,
			Seed: content.InitialProjects,
			New: func(id string) content.Project {
				return content.Project{
					ID:          id,
					Title:       "New Project",
					Category:    "Uncategorized",
					Description: "Enter project description here.",
					Image:       "https://images.unsplash.com/photo-1581291518857-4e27b48ff24e?q=80&w=2070&auto=format&fit=crop",
					Width:       "80%",
					Height:      "60vh",
					Align:       content.AlignCenter,
					Margin:      "mx-auto",
				}
			},
			DeletePrompt: "Are you sure you want to delete this project?",
		}, ids),
	}
}
