// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// slugStrip matches everything that is neither a slug character nor whitespace.
var slugStrip = regexp.MustCompile(`[^a-z0-9\s]+`)

// GenerateSlug derives a service slug from its title: lower-case, punctuation
// stripped, runs of whitespace turned into single hyphens.
//
//	GenerateSlug("UI/UX Design")      == "uiux-design"
//	GenerateSlug("  Multi   Space ")  == "multi-space"
func GenerateSlug(title string) string {
	// Decompose accents, then transliterate what is left outside ASCII.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ := transform.String(t, title)
	s = unidecode.Unidecode(s)

	s = strings.ToLower(s)
	s = slugStrip.ReplaceAllString(s, "")

	return strings.Join(strings.Fields(s), "-")
}
