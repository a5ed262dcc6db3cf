// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"fmt"
	"sync"

	"github.com/olegiv/topdesignr/internal/recordstore"
)

// Repository is the read side of the content store used by public views.
// Every call reads the store afresh and falls back to the seed when a key is
// absent or unreadable.
type Repository struct {
	store *recordstore.Store

	messagesMu sync.Mutex
}

// NewRepository creates a repository over store.
func NewRepository(store *recordstore.Store) *Repository {
	return &Repository{store: store}
}

// Store returns the underlying record store.
func (r *Repository) Store() *recordstore.Store {
	return r.store
}

// Services returns the current service list.
func (r *Repository) Services(ctx context.Context) ([]Service, error) {
	items, err := recordstore.Get(ctx, r.store, KeyServices, InitialServices())
	if err != nil {
		return nil, fmt.Errorf("loading services: %w", err)
	}
	return orEmpty(items), nil
}

// ServiceBySlug returns the first service whose slug matches.
func (r *Repository) ServiceBySlug(ctx context.Context, slug string) (Service, error) {
	items, err := r.Services(ctx)
	if err != nil {
		return Service{}, err
	}
	for _, s := range items {
		if s.Slug == slug {
			return s, nil
		}
	}
	return Service{}, fmt.Errorf("service %q: %w", slug, ErrNotFound)
}

// Testimonials returns the current testimonials.
func (r *Repository) Testimonials(ctx context.Context) ([]Testimonial, error) {
	items, err := recordstore.Get(ctx, r.store, KeyTestimonials, InitialTestimonials())
	if err != nil {
		return nil, fmt.Errorf("loading testimonials: %w", err)
	}
	return orEmpty(items), nil
}

// Projects returns the current portfolio.
func (r *Repository) Projects(ctx context.Context) ([]Project, error) {
	items, err := recordstore.Get(ctx, r.store, KeyProjects, InitialProjects())
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	return orEmpty(items), nil
}

// ProjectByID returns the project with the given id.
func (r *Repository) ProjectByID(ctx context.Context, id string) (Project, error) {
	items, err := r.Projects(ctx)
	if err != nil {
		return Project{}, err
	}
	for _, p := range items {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, fmt.Errorf("project %q: %w", id, ErrNotFound)
}

// Website returns the website document with every list non-nil.
func (r *Repository) Website(ctx context.Context) (WebsiteContent, error) {
	doc, err := recordstore.Get(ctx, r.store, KeyWebsiteContent, InitialWebsiteContent())
	if err != nil {
		return WebsiteContent{}, fmt.Errorf("loading website content: %w", err)
	}
	return doc.Normalize(), nil
}

// Messages returns the contact inbox.
func (r *Repository) Messages(ctx context.Context) ([]ContactMessage, error) {
	items, err := recordstore.Get(ctx, r.store, KeyContactMessages, InitialContactMessages())
	if err != nil {
		return nil, fmt.Errorf("loading contact messages: %w", err)
	}
	return orEmpty(items), nil
}

// AppendMessage adds msg to the end of the inbox and persists it.
func (r *Repository) AppendMessage(ctx context.Context, msg ContactMessage) error {
	_, _, err := r.UpdateMessages(ctx, func(items []ContactMessage) ([]ContactMessage, bool) {
		return append(items, msg), true
	})
	return err
}

// UpdateMessages applies fn to the freshly loaded inbox and saves the result
// when fn reports a change. Updates are serialized within this process so a
// contact form submission is never lost to a concurrent inbox edit.
// A corrupt stored inbox is never rewritten: ErrCorruptRecord is returned
// and fn is not called.
func (r *Repository) UpdateMessages(ctx context.Context, fn func([]ContactMessage) ([]ContactMessage, bool)) ([]ContactMessage, bool, error) {
	r.messagesMu.Lock()
	defer r.messagesMu.Unlock()

	items, status, err := recordstore.Lookup(ctx, r.store, KeyContactMessages, InitialContactMessages())
	if err != nil {
		return nil, false, fmt.Errorf("loading contact messages: %w", err)
	}
	if status == recordstore.StatusCorrupt {
		return nil, false, fmt.Errorf("updating %s: %w", KeyContactMessages, ErrCorruptRecord)
	}
	items = orEmpty(items)
	next, changed := fn(items)
	if !changed {
		return items, false, nil
	}
	next = orEmpty(next)
	if err := r.store.Set(ctx, KeyContactMessages, next); err != nil {
		return nil, false, fmt.Errorf("saving contact messages: %w", err)
	}
	return next, true, nil
}

// Snapshot returns the effective value of every content key, as public
// readers would see it.
func (r *Repository) Snapshot(ctx context.Context) (map[string]any, error) {
	out := make(map[string]any, len(Keys))
	var err error
	if out[KeyServices], err = r.Services(ctx); err != nil {
		return nil, err
	}
	if out[KeyTestimonials], err = r.Testimonials(ctx); err != nil {
		return nil, err
	}
	if out[KeyWebsiteContent], err = r.Website(ctx); err != nil {
		return nil, err
	}
	if out[KeyProjects], err = r.Projects(ctx); err != nil {
		return nil, err
	}
	if out[KeyContactMessages], err = r.Messages(ctx); err != nil {
		return nil, err
	}
	return out, nil
}
