// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

// Section names of the website document.
const (
	SectionHero       = "hero"
	SectionAbout      = "about"
	SectionKeyNumbers = "keyNumbers"
	SectionPricing    = "pricing"
	SectionContact    = "contact"
	SectionFooter     = "footer"
)

// Sections lists the website sections in page order.
var Sections = []string{
	SectionHero,
	SectionAbout,
	SectionKeyNumbers,
	SectionPricing,
	SectionContact,
	SectionFooter,
}

// ErrUnknownSection is returned for a section name outside Sections.
var ErrUnknownSection = errors.New("unknown section")

// Section holds the scalar fields every website section shares.
type Section struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
	ButtonText  string `json:"buttonText,omitempty"`
	ButtonLink  string `json:"buttonLink,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Set assigns one scalar field.
func (s *Section) Set(field, value string) error {
	switch field {
	case "title":
		s.Title = value
	case "subtitle":
		s.Subtitle = value
	case "description":
		s.Description = value
	case "buttonText":
		s.ButtonText = value
	case "buttonLink":
		s.ButtonLink = value
	case "image":
		s.Image = value
	default:
		return fmt.Errorf("section field %q: %w", field, ErrUnknownField)
	}
	return nil
}

// KeyNumber is one statistic in the key numbers band.
type KeyNumber struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
}

// PricingPlan is one column of the pricing table.
type PricingPlan struct {
	ID       string   `json:"id,omitempty"`
	Title    string   `json:"title"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular,omitempty"`
}

// ContactItem is one contact channel (email, phone, address).
type ContactItem struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Value       string `json:"value,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// FooterLink is a single footer hyperlink.
type FooterLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// FooterLinkGroup is a titled column of footer links.
type FooterLinkGroup struct {
	ID    string       `json:"id,omitempty"`
	Title string       `json:"title"`
	Items []FooterLink `json:"items"`
}

type (
	KeyNumbersSection struct {
		Section
		Numbers []KeyNumber `json:"numbers"`
	}

	PricingSection struct {
		Section
		Plans []PricingPlan `json:"plans"`
	}

	ContactSection struct {
		Section
		Items []ContactItem `json:"items"`
	}

	FooterSection struct {
		Section
		Links []FooterLinkGroup `json:"links"`
	}
)

// WebsiteContent is the singleton document behind the landing page.
type WebsiteContent struct {
	Hero       Section           `json:"hero"`
	About      Section           `json:"about"`
	KeyNumbers KeyNumbersSection `json:"keyNumbers"`
	Pricing    PricingSection    `json:"pricing"`
	Contact    ContactSection    `json:"contact"`
	Footer     FooterSection     `json:"footer"`
}

// Section returns a pointer to the scalar part of the named section.
func (w *WebsiteContent) Section(name string) (*Section, error) {
	switch name {
	case SectionHero:
		return &w.Hero, nil
	case SectionAbout:
		return &w.About, nil
	case SectionKeyNumbers:
		return &w.KeyNumbers.Section, nil
	case SectionPricing:
		return &w.Pricing.Section, nil
	case SectionContact:
		return &w.Contact.Section, nil
	case SectionFooter:
		return &w.Footer.Section, nil
	}
	return nil, fmt.Errorf("section %q: %w", name, ErrUnknownSection)
}

// Clone returns a deep copy of w.
func (w WebsiteContent) Clone() WebsiteContent {
	w.KeyNumbers.Numbers = slices.Clone(w.KeyNumbers.Numbers)
	w.Contact.Items = slices.Clone(w.Contact.Items)

	plans := slices.Clone(w.Pricing.Plans)
	for i := range plans {
		plans[i].Features = slices.Clone(plans[i].Features)
	}
	w.Pricing.Plans = plans

	links := slices.Clone(w.Footer.Links)
	for i := range links {
		links[i].Items = slices.Clone(links[i].Items)
	}
	w.Footer.Links = links

	return w
}

// Normalize replaces missing lists with empty ones so readers never see nil.
func (w WebsiteContent) Normalize() WebsiteContent {
	w.KeyNumbers.Numbers = orEmpty(w.KeyNumbers.Numbers)
	w.Pricing.Plans = orEmpty(w.Pricing.Plans)
	w.Contact.Items = orEmpty(w.Contact.Items)
	w.Footer.Links = orEmpty(w.Footer.Links)
	for i := range w.Pricing.Plans {
		w.Pricing.Plans[i].Features = orEmpty(w.Pricing.Plans[i].Features)
	}
	for i := range w.Footer.Links {
		w.Footer.Links[i].Items = orEmpty(w.Footer.Links[i].Items)
	}
	return w
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// WithField returns a copy of n with field set to value.
func (n KeyNumber) WithField(field, value string) (KeyNumber, error) {
	switch field {
	case "title":
		n.Title = value
	case "value":
		n.Value = value
	case "icon":
		n.Icon = value
	default:
		return n, fmt.Errorf("key number %q: %w", field, ErrUnknownField)
	}
	return n, nil
}

// WithField returns a copy of p with field set to value. The popular flag
// accepts strconv.ParseBool input.
func (p PricingPlan) WithField(field, value string) (PricingPlan, error) {
	switch field {
	case "title":
		p.Title = value
	case "price":
		p.Price = value
	case "popular":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return p, fmt.Errorf("pricing plan popular %q: %w", value, err)
		}
		p.Popular = b
	default:
		return p, fmt.Errorf("pricing plan %q: %w", field, ErrUnknownField)
	}
	return p, nil
}

// WithField returns a copy of c with field set to value.
func (c ContactItem) WithField(field, value string) (ContactItem, error) {
	switch field {
	case "title":
		c.Title = value
	case "value":
		c.Value = value
	case "description":
		c.Description = value
	case "icon":
		c.Icon = value
	default:
		return c, fmt.Errorf("contact item %q: %w", field, ErrUnknownField)
	}
	return c, nil
}

// WithField returns a copy of g with field set to value.
func (g FooterLinkGroup) WithField(field, value string) (FooterLinkGroup, error) {
	switch field {
	case "title":
		g.Title = value
	default:
		return g, fmt.Errorf("footer group %q: %w", field, ErrUnknownField)
	}
	return g, nil
}

// WithField returns a copy of l with field set to value.
func (l FooterLink) WithField(field, value string) (FooterLink, error) {
	switch field {
	case "label":
		l.Label = value
	case "url":
		l.URL = value
	default:
		return l, fmt.Errorf("footer link %q: %w", field, ErrUnknownField)
	}
	return l, nil
}
