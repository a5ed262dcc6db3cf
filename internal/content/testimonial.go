// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import "fmt"

// Testimonial is a client quote shown in the testimonials carousel.
type Testimonial struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Image    string `json:"image"`
}

// EntityID returns the testimonial id.
func (t Testimonial) EntityID() string { return t.ID }

// Clone returns a copy of t. Testimonials hold no reference fields.
func (t Testimonial) Clone() Testimonial { return t }

// WithField returns a copy of t with field set to value.
func (t Testimonial) WithField(field, value string) (Testimonial, error) {
	switch field {
	case "content":
		t.Content = value
	case "author":
		t.Author = value
	case "position":
		t.Position = value
	case "company":
		t.Company = value
	case "image":
		t.Image = value
	case "id":
		return t, fmt.Errorf("testimonial %q: %w", field, ErrReadOnlyField)
	default:
		return t, fmt.Errorf("testimonial %q: %w", field, ErrUnknownField)
	}
	return t, nil
}
