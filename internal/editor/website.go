// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package editor

import (
	"context"
	"fmt"
	"slices"

	"github.com/olegiv/topdesignr/internal/content"
	"github.com/olegiv/topdesignr/internal/recordstore"
)

// List and nested list names addressed by the website editor.
const (
	FieldNumbers  = "numbers"  // keyNumbers
	FieldPlans    = "plans"    // pricing
	FieldItems    = "items"    // contact
	FieldLinks    = "links"    // footer
	NestedFeature = "features" // pricing.plans[i]
	NestedLinks   = "items"    // footer.links[i]
)

// Defaults for items added through the website editor.
const (
	DefaultStatTitle    = "New Statistic"
	DefaultStatValue    = "0"
	DefaultStatIcon     = "Star"
	DefaultPlanTitle    = "New Plan"
	DefaultPlanPrice    = "$0"
	DefaultPlanFeature  = "New Feature"
	DefaultContactTitle = "New Contact"
	DefaultContactIcon  = "Info"
	DefaultGroupTitle   = "New Section"
	DefaultLinkLabel    = "New Link"
	DefaultLinkURL      = "#"
)

// WebsiteEditor edits the website document. Every mutation builds a new
// document that shares untouched slices with the previous one, so a document
// handed out earlier never changes underneath its holder.
type WebsiteEditor struct {
	store   *recordstore.Store
	ids     *IDGenerator
	onSaved SaveListener

	doc *content.WebsiteContent
}

// NewWebsiteEditor creates a website editor over store. Call Load before use.
func NewWebsiteEditor(store *recordstore.Store, ids *IDGenerator) *WebsiteEditor {
	if ids == nil {
		ids = NewIDGenerator()
	}
	seed := content.InitialWebsiteContent()
	return &WebsiteEditor{store: store, ids: ids, doc: &seed}
}

// OnSaved registers fn to run after every successful SaveAll.
func (e *WebsiteEditor) OnSaved(fn SaveListener) { e.onSaved = fn }

// Load replaces the working document with the stored one (or the seed).
func (e *WebsiteEditor) Load(ctx context.Context) error {
	doc, err := recordstore.Get(ctx, e.store, content.KeyWebsiteContent, content.InitialWebsiteContent())
	if err != nil {
		return fmt.Errorf("loading %s: %w", content.KeyWebsiteContent, err)
	}
	doc = doc.Normalize()
	e.doc = &doc
	return nil
}

// Content returns a deep copy of the working document.
func (e *WebsiteEditor) Content() content.WebsiteContent {
	return e.doc.Clone()
}

// SaveAll overwrites the stored document with the working one.
func (e *WebsiteEditor) SaveAll(ctx context.Context) error {
	if err := e.store.Set(ctx, content.KeyWebsiteContent, e.doc); err != nil {
		return fmt.Errorf("saving %s: %w", content.KeyWebsiteContent, err)
	}
	if e.onSaved != nil {
		e.onSaved(content.KeyWebsiteContent)
	}
	return nil
}

// mutate runs fn on a shallow copy of the document and installs the copy
// when fn reports a change. fn must replace, never write into, any slice it
// modifies.
func (e *WebsiteEditor) mutate(fn func(doc *content.WebsiteContent) (bool, error)) (bool, error) {
	next := *e.doc
	ok, err := fn(&next)
	if err != nil || !ok {
		return false, err
	}
	e.doc = &next
	return true, nil
}

// UpdateSectionField sets a scalar field of a section.
func (e *WebsiteEditor) UpdateSectionField(section, field, value string) error {
	_, err := e.mutate(func(doc *content.WebsiteContent) (bool, error) {
		s, err := doc.Section(section)
		if err != nil {
			return false, err
		}
		if err := s.Set(field, value); err != nil {
			return false, err
		}
		return true, nil
	})
	return err
}

// UpdateArrayItem sets one field of the list item at index. An index outside
// the list is a no-op reported as false.
func (e *WebsiteEditor) UpdateArrayItem(section, field string, index int, itemField, value string) (bool, error) {
	return e.mutate(func(doc *content.WebsiteContent) (ok bool, err error) {
		l, err := resolveList(section, field)
		if err != nil {
			return false, err
		}
		switch l {
		case listNumbers:
			doc.KeyNumbers.Numbers, ok, err = updateAt(doc.KeyNumbers.Numbers, index, setField[content.KeyNumber](itemField, value))
		case listPlans:
			doc.Pricing.Plans, ok, err = updateAt(doc.Pricing.Plans, index, setField[content.PricingPlan](itemField, value))
		case listContact:
			doc.Contact.Items, ok, err = updateAt(doc.Contact.Items, index, setField[content.ContactItem](itemField, value))
		case listFooter:
			doc.Footer.Links, ok, err = updateAt(doc.Footer.Links, index, setField[content.FooterLinkGroup](itemField, value))
		}
		return ok, err
	})
}

// AddArrayItem appends a default item to a list, then applies fields to it.
// It returns the index of the new item.
func (e *WebsiteEditor) AddArrayItem(section, field string, fields map[string]string) (int, error) {
	index := -1
	_, err := e.mutate(func(doc *content.WebsiteContent) (bool, error) {
		l, err := resolveList(section, field)
		if err != nil {
			return false, err
		}
		switch l {
		case listNumbers:
			item, err := applyFields(content.KeyNumber{
				ID:    newItemID(e.ids, doc.KeyNumbers.Numbers),
				Title: DefaultStatTitle,
				Value: DefaultStatValue,
				Icon:  DefaultStatIcon,
			}, fields)
			if err != nil {
				return false, err
			}
			doc.KeyNumbers.Numbers = appendCopy(doc.KeyNumbers.Numbers, item)
			index = len(doc.KeyNumbers.Numbers) - 1
		case listPlans:
			item, err := applyFields(content.PricingPlan{
				ID:       newItemID(e.ids, doc.Pricing.Plans),
				Title:    DefaultPlanTitle,
				Price:    DefaultPlanPrice,
				Features: []string{DefaultPlanFeature},
			}, fields)
			if err != nil {
				return false, err
			}
			doc.Pricing.Plans = appendCopy(doc.Pricing.Plans, item)
			index = len(doc.Pricing.Plans) - 1
		case listContact:
			item, err := applyFields(content.ContactItem{
				ID:    newItemID(e.ids, doc.Contact.Items),
				Title: DefaultContactTitle,
				Icon:  DefaultContactIcon,
			}, fields)
			if err != nil {
				return false, err
			}
			doc.Contact.Items = appendCopy(doc.Contact.Items, item)
			index = len(doc.Contact.Items) - 1
		case listFooter:
			item, err := applyFields(content.FooterLinkGroup{
				ID:    newItemID(e.ids, doc.Footer.Links),
				Title: DefaultGroupTitle,
				Items: []content.FooterLink{},
			}, fields)
			if err != nil {
				return false, err
			}
			doc.Footer.Links = appendCopy(doc.Footer.Links, item)
			index = len(doc.Footer.Links) - 1
		}
		return true, nil
	})
	if err != nil {
		return -1, err
	}
	return index, nil
}

// RemoveArrayItem drops the list item at index.
func (e *WebsiteEditor) RemoveArrayItem(section, field string, index int) (bool, error) {
	return e.mutate(func(doc *content.WebsiteContent) (ok bool, err error) {
		l, err := resolveList(section, field)
		if err != nil {
			return false, err
		}
		switch l {
		case listNumbers:
			doc.KeyNumbers.Numbers, ok = removeAt(doc.KeyNumbers.Numbers, index)
		case listPlans:
			doc.Pricing.Plans, ok = removeAt(doc.Pricing.Plans, index)
		case listContact:
			doc.Contact.Items, ok = removeAt(doc.Contact.Items, index)
		case listFooter:
			doc.Footer.Links, ok = removeAt(doc.Footer.Links, index)
		}
		return ok, nil
	})
}

// UpdateNestedArrayItem edits an entry of a nested list: a plan feature
// (nestedField must be empty or "value") or a footer link (label, url).
func (e *WebsiteEditor) UpdateNestedArrayItem(section, field string, index int, nested string, nestedIndex int, nestedField, value string) (bool, error) {
	return e.mutate(func(doc *content.WebsiteContent) (ok bool, err error) {
		l, err := resolveNested(section, field, nested)
		if err != nil {
			return false, err
		}
		switch l {
		case listPlans:
			if nestedField != "" && nestedField != "value" {
				return false, fmt.Errorf("plan feature %q: %w", nestedField, content.ErrUnknownField)
			}
			doc.Pricing.Plans, ok, err = updateAt(doc.Pricing.Plans, index, func(p content.PricingPlan) (content.PricingPlan, bool, error) {
				var changed bool
				p.Features, changed, err = updateAt(p.Features, nestedIndex, func(string) (string, bool, error) {
					return value, true, nil
				})
				return p, changed, err
			})
		case listFooter:
			doc.Footer.Links, ok, err = updateAt(doc.Footer.Links, index, func(g content.FooterLinkGroup) (content.FooterLinkGroup, bool, error) {
				var changed bool
				g.Items, changed, err = updateAt(g.Items, nestedIndex, setField[content.FooterLink](nestedField, value))
				return g, changed, err
			})
		}
		return ok, err
	})
}

// AddNestedArrayItem appends a default entry to a nested list and returns
// its index.
func (e *WebsiteEditor) AddNestedArrayItem(section, field string, index int, nested string) (int, bool, error) {
	newIndex := -1
	ok, err := e.mutate(func(doc *content.WebsiteContent) (ok bool, err error) {
		l, err := resolveNested(section, field, nested)
		if err != nil {
			return false, err
		}
		switch l {
		case listPlans:
			doc.Pricing.Plans, ok, err = updateAt(doc.Pricing.Plans, index, func(p content.PricingPlan) (content.PricingPlan, bool, error) {
				p.Features = appendCopy(p.Features, DefaultPlanFeature)
				newIndex = len(p.Features) - 1
				return p, true, nil
			})
		case listFooter:
			doc.Footer.Links, ok, err = updateAt(doc.Footer.Links, index, func(g content.FooterLinkGroup) (content.FooterLinkGroup, bool, error) {
				g.Items = appendCopy(g.Items, content.FooterLink{Label: DefaultLinkLabel, URL: DefaultLinkURL})
				newIndex = len(g.Items) - 1
				return g, true, nil
			})
		}
		return ok, err
	})
	if !ok {
		newIndex = -1
	}
	return newIndex, ok, err
}

// RemoveNestedArrayItem drops an entry of a nested list.
func (e *WebsiteEditor) RemoveNestedArrayItem(section, field string, index int, nested string, nestedIndex int) (bool, error) {
	return e.mutate(func(doc *content.WebsiteContent) (ok bool, err error) {
		l, err := resolveNested(section, field, nested)
		if err != nil {
			return false, err
		}
		switch l {
		case listPlans:
			doc.Pricing.Plans, ok, err = updateAt(doc.Pricing.Plans, index, func(p content.PricingPlan) (content.PricingPlan, bool, error) {
				var removed bool
				p.Features, removed = removeAt(p.Features, nestedIndex)
				return p, removed, nil
			})
		case listFooter:
			doc.Footer.Links, ok, err = updateAt(doc.Footer.Links, index, func(g content.FooterLinkGroup) (content.FooterLinkGroup, bool, error) {
				var removed bool
				g.Items, removed = removeAt(g.Items, nestedIndex)
				return g, removed, nil
			})
		}
		return ok, err
	})
}

// ItemIndex resolves the stable id of a list item to its current index.
func (e *WebsiteEditor) ItemIndex(section, field, id string) (int, error) {
	l, err := resolveList(section, field)
	if err != nil {
		return -1, err
	}
	var i int
	switch l {
	case listNumbers:
		i = indexByID(e.doc.KeyNumbers.Numbers, id)
	case listPlans:
		i = indexByID(e.doc.Pricing.Plans, id)
	case listContact:
		i = indexByID(e.doc.Contact.Items, id)
	case listFooter:
		i = indexByID(e.doc.Footer.Links, id)
	}
	if i < 0 {
		return -1, fmt.Errorf("%s.%s %q: %w", section, field, id, ErrNotFound)
	}
	return i, nil
}

type list int

const (
	listNumbers list = iota + 1
	listPlans
	listContact
	listFooter
)

func resolveList(section, field string) (list, error) {
	if !slices.Contains(content.Sections, section) {
		return 0, fmt.Errorf("section %q: %w", section, content.ErrUnknownSection)
	}
	switch {
	case section == content.SectionKeyNumbers && field == FieldNumbers:
		return listNumbers, nil
	case section == content.SectionPricing && field == FieldPlans:
		return listPlans, nil
	case section == content.SectionContact && field == FieldItems:
		return listContact, nil
	case section == content.SectionFooter && field == FieldLinks:
		return listFooter, nil
	}
	return 0, fmt.Errorf("%s list %q: %w", section, field, content.ErrUnknownField)
}

func resolveNested(section, field, nested string) (list, error) {
	l, err := resolveList(section, field)
	if err != nil {
		return 0, err
	}
	switch {
	case l == listPlans && nested == NestedFeature:
		return l, nil
	case l == listFooter && nested == NestedLinks:
		return l, nil
	}
	return 0, fmt.Errorf("%s.%s nested list %q: %w", section, field, nested, content.ErrUnknownField)
}

type fieldSetter[T any] interface {
	WithField(field, value string) (T, error)
}

type identified interface {
	content.KeyNumber | content.PricingPlan | content.ContactItem | content.FooterLinkGroup
}

func setField[T fieldSetter[T]](field, value string) func(T) (T, bool, error) {
	return func(v T) (T, bool, error) {
		out, err := v.WithField(field, value)
		if err != nil {
			return v, false, err
		}
		return out, true, nil
	}
}

func applyFields[T fieldSetter[T]](v T, fields map[string]string) (T, error) {
	for k, val := range fields {
		next, err := v.WithField(k, val)
		if err != nil {
			return v, err
		}
		v = next
	}
	return v, nil
}

// updateAt returns a copy of s with s[i] replaced by fn's result. The
// original slice is returned unchanged when i is out of range or fn declines.
func updateAt[T any](s []T, i int, fn func(T) (T, bool, error)) ([]T, bool, error) {
	if i < 0 || i >= len(s) {
		return s, false, nil
	}
	v, ok, err := fn(s[i])
	if err != nil || !ok {
		return s, false, err
	}
	out := slices.Clone(s)
	out[i] = v
	return out, true, nil
}

func removeAt[T any](s []T, i int) ([]T, bool) {
	if i < 0 || i >= len(s) {
		return s, false
	}
	return slices.Delete(slices.Clone(s), i, i+1), true
}

func appendCopy[T any](s []T, v T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}

func itemID[T identified](v T) string {
	switch it := any(v).(type) {
	case content.KeyNumber:
		return it.ID
	case content.PricingPlan:
		return it.ID
	case content.ContactItem:
		return it.ID
	case content.FooterLinkGroup:
		return it.ID
	}
	return ""
}

func indexByID[T identified](s []T, id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s, func(v T) bool { return itemID(v) == id })
}

func newItemID[T identified](ids *IDGenerator, s []T) string {
	return ids.New(func(id string) bool { return indexByID(s, id) >= 0 })
}
