// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"fmt"
	"slices"
)

// Feature is one highlighted capability listed on a service detail page.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Service is an offering shown on the landing page and at /services/{slug}.
// Slug is derived from Title on every commit and is never edited directly.
type Service struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	FullDescription string    `json:"fullDescription,omitempty"`
	Image           string    `json:"image,omitempty"`
	Features        []Feature `json:"features,omitempty"`
}

// Editable service fields.
const (
	ServiceFieldTitle           = "title"
	ServiceFieldDescription     = "description"
	ServiceFieldFullDescription = "fullDescription"
	ServiceFieldImage           = "image"
)

// Feature fields.
const (
	FeatureFieldTitle       = "title"
	FeatureFieldDescription = "description"
)

// EntityID returns the service id.
func (s Service) EntityID() string { return s.ID }

// Clone returns a deep copy of s.
func (s Service) Clone() Service {
	s.Features = slices.Clone(s.Features)
	return s
}

// WithField returns a copy of s with field set to value.
func (s Service) WithField(field, value string) (Service, error) {
	out := s.Clone()
	switch field {
	case ServiceFieldTitle:
		out.Title = value
	case ServiceFieldDescription:
		out.Description = value
	case ServiceFieldFullDescription:
		out.FullDescription = value
	case ServiceFieldImage:
		out.Image = value
	case "id", "slug":
		return s, fmt.Errorf("service %q: %w", field, ErrReadOnlyField)
	default:
		return s, fmt.Errorf("service %q: %w", field, ErrUnknownField)
	}
	return out, nil
}

// WithField returns a copy of f with field set to value.
func (f Feature) WithField(field, value string) (Feature, error) {
	switch field {
	case FeatureFieldTitle:
		f.Title = value
	case FeatureFieldDescription:
		f.Description = value
	default:
		return f, fmt.Errorf("feature %q: %w", field, ErrUnknownField)
	}
	return f, nil
}
