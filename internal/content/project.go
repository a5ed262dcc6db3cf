// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"fmt"
	"slices"
	"strings"
)

// Align controls which side of the portfolio row a project card hugs.
type Align string

// Project alignments.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Project is a portfolio entry. Width, height and margin are layout hints
// passed through to the front-end as-is.
type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription,omitempty"`
	Technologies    []string `json:"technologies,omitempty"`
	Image           string   `json:"image"`
	Gallery         []string `json:"gallery,omitempty"`
	Client          string   `json:"client,omitempty"`
	Date            string   `json:"date,omitempty"`
	Link            string   `json:"link,omitempty"`
	Width           string   `json:"width"`
	Height          string   `json:"height"`
	Align           Align    `json:"align"`
	Margin          string   `json:"margin"`
	MobileHeight    string   `json:"mobileHeight,omitempty"`
}

// EntityID returns the project id.
func (p Project) EntityID() string { return p.ID }

// Clone returns a deep copy of p.
func (p Project) Clone() Project {
	p.Technologies = slices.Clone(p.Technologies)
	p.Gallery = slices.Clone(p.Gallery)
	return p
}

// WithField returns a copy of p with field set to value. List fields
// (technologies, gallery) take a comma-separated value.
func (p Project) WithField(field, value string) (Project, error) {
	out := p.Clone()
	switch field {
	case "title":
		out.Title = value
	case "category":
		out.Category = value
	case "description":
		out.Description = value
	case "fullDescription":
		out.FullDescription = value
	case "technologies":
		out.Technologies = SplitList(value)
	case "image":
		out.Image = value
	case "gallery":
		out.Gallery = SplitList(value)
	case "client":
		out.Client = value
	case "date":
		out.Date = value
	case "link":
		out.Link = value
	case "width":
		out.Width = value
	case "height":
		out.Height = value
	case "align":
		out.Align = Align(value)
	case "margin":
		out.Margin = value
	case "mobileHeight":
		out.MobileHeight = value
	case "id":
		return p, fmt.Errorf("project %q: %w", field, ErrReadOnlyField)
	default:
		return p, fmt.Errorf("project %q: %w", field, ErrUnknownField)
	}
	return out, nil
}

// SplitList splits a comma-separated value, trimming blanks and dropping
// empty entries.
func SplitList(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
