// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content defines the site's editable records (services, testimonials,
// projects, contact messages and the website document), their seed data,
// and the read-side repository used by public views.
package content

import "errors"

// Storage keys. Each key holds one JSON document in the record store.
const (
	KeyServices        = "services"
	KeyTestimonials    = "testimonials"
	KeyWebsiteContent  = "websiteContent"
	KeyProjects        = "projects"
	KeyContactMessages = "contactMessages"
)

// Keys lists every content key in display order.
var Keys = []string{
	KeyServices,
	KeyTestimonials,
	KeyWebsiteContent,
	KeyProjects,
	KeyContactMessages,
}

var (
	// ErrNotFound is returned when no record matches the requested id or slug.
	ErrNotFound = errors.New("content not found")

	// ErrUnknownField is returned when a field name does not exist on a record.
	ErrUnknownField = errors.New("unknown field")

	// ErrReadOnlyField is returned for fields that cannot be edited directly
	// (identifiers and derived values such as a service slug).
	ErrReadOnlyField = errors.New("field is read-only")

	// ErrCorruptRecord is returned by read-modify-write operations when the
	// stored record is corrupt. The record is left for the operator to
	// inspect and reset.
	ErrCorruptRecord = errors.New("stored record is corrupt")
)

// Seed returns a fresh copy of the seed value for key.
func Seed(key string) (any, bool) {
	switch key {
	case KeyServices:
		return InitialServices(), true
	case KeyTestimonials:
		return InitialTestimonials(), true
	case KeyWebsiteContent:
		return InitialWebsiteContent(), true
	case KeyProjects:
		return InitialProjects(), true
	case KeyContactMessages:
		return InitialContactMessages(), true
	}
	return nil, false
}
