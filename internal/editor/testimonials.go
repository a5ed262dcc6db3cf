// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package editor

import (
	"github.com/olegiv/topdesignr/internal/content"
	"github.com/olegiv/topdesignr/internal/recordstore"
)

// TestimonialsEditor edits the testimonials collection.
type TestimonialsEditor struct {
	*Collection[content.Testimonial]
}

// NewTestimonialsEditor creates a testimonials editor over store.
func NewTestimonialsEditor(store *recordstore.Store, ids *IDGenerator) *TestimonialsEditor {
	return &TestimonialsEditor{
		Collection: NewCollection(store, CollectionConfig[content.Testimonial]{
			Key:  content.KeyTestimonials,
			Seed: content.InitialTestimonials,
			New: func(id string) content.Testimonial {
				return content.Testimonial{
					ID:       id,
					Content:  "Enter testimonial content here.",
					Author:   "Client Name",
					Position: "Position",
					Company:  "Company Name",
					Image:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?q=80&w=2070&auto=format&fit=crop",
				}
			},
			DeletePrompt: "Are you sure you want to delete this testimonial?",
		}, ids),
	}
}
