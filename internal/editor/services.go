// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package editor

import (
	"slices"

	"github.com/olegiv/topdesignr/internal/content"
	"github.com/olegiv/topdesignr/internal/recordstore"
)

// Defaults for a newly created service.
const (
	DefaultServiceTitle           = "NEW SERVICE"
	DefaultServiceDescription     = "Enter service description here."
	DefaultServiceFullDescription = "Enter detailed service description here."
	DefaultServiceImage           = "https://images.unsplash.com/photo-1581291518857-4e27b48ff24e?q=80&w=2070&auto=format&fit=crop"
	DefaultFeatureTitle           = "New Feature"
	DefaultFeatureDescription     = "Feature description"
)

// ServicesEditor edits the services collection. Commit recomputes the slug
// from the title.
type ServicesEditor struct {
	*Collection[content.Service]
}

// NewServicesEditor creates a services editor over store.
func NewServicesEditor(store *recordstore.Store, ids *IDGenerator) *ServicesEditor {
	return &ServicesEditor{
		Collection: NewCollection(store, CollectionConfig[content.Service]{
			Key:  content.KeyServices,
			Seed: content.InitialServices,
			New:  newService,
			BeforeCommit: func(s content.Service) content.Service {
				s.Slug = content.GenerateSlug(s.Title)
				return s
			},
			DeletePrompt: "Are you sure you want to delete this service?",
		}, ids),
	}
}

func newService(id string) content.Service {
	return content.Service{
		ID:              id,
		Title:           DefaultServiceTitle,
		Slug:            content.GenerateSlug(DefaultServiceTitle) + "-" + id,
		Description:     DefaultServiceDescription,
		FullDescription: DefaultServiceFullDescription,
		Image:           DefaultServiceImage,
		Features: []content.Feature{
			{Title: "Feature 1", Description: DefaultFeatureDescription},
		},
	}
}

// SlugPreview returns the slug the draft would get if committed now.
func (e *ServicesEditor) SlugPreview() (string, error) {
	d, ok := e.Draft()
	if !ok {
		return "", ErrNoDraft
	}
	return content.GenerateSlug(d.Title), nil
}

// AddFeature appends a placeholder feature to the draft.
func (e *ServicesEditor) AddFeature() (content.Service, error) {
	return e.MutateDraft(func(s content.Service) (content.Service, error) {
		s.Features = append(slices.Clone(s.Features), content.Feature{
			Title:       DefaultFeatureTitle,
			Description: DefaultFeatureDescription,
		})
		return s, nil
	})
}

// UpdateFeature sets one field of the feature at index on the draft.
func (e *ServicesEditor) UpdateFeature(index int, field, value string) (content.Service, error) {
	return e.MutateDraft(func(s content.Service) (content.Service, error) {
		if index < 0 || index >= len(s.Features) {
			return s, indexError("feature", index)
		}
		f, err := s.Features[index].WithField(field, value)
		if err != nil {
			return s, err
		}
		s.Features = slices.Clone(s.Features)
		s.Features[index] = f
		return s, nil
	})
}

// RemoveFeature drops the feature at index from the draft.
func (e *ServicesEditor) RemoveFeature(index int) (content.Service, error) {
	return e.MutateDraft(func(s content.Service) (content.Service, error) {
		if index < 0 || index >= len(s.Features) {
			return s, indexError("feature", index)
		}
		s.Features = slices.Delete(slices.Clone(s.Features), index, index+1)
		return s, nil
	})
}
