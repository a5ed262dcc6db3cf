// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package editor

import (
	"context"
	"fmt"
	"slices"

	"github.com/olegiv/topdesignr/internal/recordstore"
)

// Entity is a top-level collection record.
type Entity[T any] interface {
	EntityID() string
	Clone() T
	WithField(field, value string) (T, error)
}

// CollectionConfig describes one editable collection.
type CollectionConfig[T Entity[T]] struct {
	// Key is the record store key holding the collection.
	Key string

	// Seed returns the defaults used while Key is absent.
	Seed func() []T

	// New builds the draft for a freshly created record.
	New func(id string) T

	// BeforeCommit, if set, derives fields on the draft right before it is
	// committed.
	BeforeCommit func(T) T

	// DeletePrompt is shown to the Confirmer on Delete.
	DeletePrompt string
}

// SaveListener is notified after a collection or document was written.
type SaveListener func(key string)

// Collection is the generic list editor: it holds the working list, at most
// one draft, and whether the edit dialog is open.
type Collection[T Entity[T]] struct {
	store   *recordstore.Store
	cfg     CollectionConfig[T]
	ids     *IDGenerator
	onSaved SaveListener

	items      []T
	draft      *T
	dialogOpen bool
}

// NewCollection creates an editor for cfg.Key. Call Load before use.
func NewCollection[T Entity[T]](store *recordstore.Store, cfg CollectionConfig[T], ids *IDGenerator) *Collection[T] {
	if ids == nil {
		ids = NewIDGenerator()
	}
	return &Collection[T]{store: store, cfg: cfg, ids: ids}
}

// Key returns the store key this collection writes to.
func (c *Collection[T]) Key() string { return c.cfg.Key }

// OnSaved registers fn to run after every successful SaveAll.
func (c *Collection[T]) OnSaved(fn SaveListener) { c.onSaved = fn }

// Load replaces the working list with the stored collection (or the seed)
// and discards any open draft.
func (c *Collection[T]) Load(ctx context.Context) error {
	items, err := recordstore.Get(ctx, c.store, c.cfg.Key, c.cfg.Seed())
	if err != nil {
		return fmt.Errorf("loading %s: %w", c.cfg.Key, err)
	}
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.draft = nil
	c.dialogOpen = false
	return nil
}

// Items returns a deep copy of the working list.
func (c *Collection[T]) Items() []T {
	out := make([]T, len(c.items))
	for i, it := range c.items {
		out[i] = it.Clone()
	}
	return out
}

// Len returns the number of items in the working list.
func (c *Collection[T]) Len() int { return len(c.items) }

// Item returns a copy of the item with id.
func (c *Collection[T]) Item(id string) (T, bool) {
	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	return c.items[i].Clone(), true
}

// DialogOpen reports whether a draft is being edited.
func (c *Collection[T]) DialogOpen() bool { return c.dialogOpen }

// Draft returns a copy of the open draft.
func (c *Collection[T]) Draft() (T, bool) {
	if c.draft == nil {
		var zero T
		return zero, false
	}
	return (*c.draft).Clone(), true
}

// StartCreate opens a draft for a new record with a fresh unique id and
// default field values. An already open draft is discarded.
func (c *Collection[T]) StartCreate() T {
	id := c.ids.New(func(id string) bool { return c.indexOf(id) >= 0 })
	d := c.cfg.New(id)
	c.draft = &d
	c.dialogOpen = true
	return d.Clone()
}

// StartEdit opens a draft holding a deep copy of the item with id.
func (c *Collection[T]) StartEdit(id string) (T, error) {
	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", c.cfg.Key, id, ErrNotFound)
	}
	d := c.items[i].Clone()
	c.draft = &d
	c.dialogOpen = true
	return d.Clone(), nil
}

// UpdateDraftField sets one field on the draft. Values are not validated.
func (c *Collection[T]) UpdateDraftField(field, value string) (T, error) {
	return c.MutateDraft(func(d T) (T, error) {
		return d.WithField(field, value)
	})
}

// MutateDraft replaces the draft with fn's result. On error the draft is
// left as it was.
func (c *Collection[T]) MutateDraft(fn func(T) (T, error)) (T, error) {
	if c.draft == nil {
		var zero T
		return zero, ErrNoDraft
	}
	next, err := fn((*c.draft).Clone())
	if err != nil {
		var zero T
		return zero, err
	}
	c.draft = &next
	return next.Clone(), nil
}

// CommitDraft writes the draft into the working list, replacing the item
// with the same id in place or appending it, then closes the dialog. The
// store is not touched until SaveAll.
func (c *Collection[T]) CommitDraft() (T, error) {
	if c.draft == nil {
		var zero T
		return zero, ErrNoDraft
	}
	d := *c.draft
	if c.cfg.BeforeCommit != nil {
		d = c.cfg.BeforeCommit(d)
	}

	next := slices.Clone(c.items)
	if i := c.indexOf(d.EntityID()); i >= 0 {
		next[i] = d
	} else {
		next = append(next, d)
	}
	c.items = next
	c.draft = nil
	c.dialogOpen = false
	return d.Clone(), nil
}

// CancelDraft discards the draft and closes the dialog.
func (c *Collection[T]) CancelDraft() {
	c.draft = nil
	c.dialogOpen = false
}

// Delete removes the item with id from the working list when confirm
// answers yes. It reports whether the item was removed.
func (c *Collection[T]) Delete(id string, confirm Confirmer) (bool, error) {
	i := c.indexOf(id)
	if i < 0 {
		return false, fmt.Errorf("%s %q: %w", c.cfg.Key, id, ErrNotFound)
	}
	if confirm == nil || !confirm.Confirm(c.cfg.DeletePrompt) {
		return false, nil
	}
	c.items = slices.Delete(slices.Clone(c.items), i, i+1)
	return true, nil
}

// SaveAll overwrites the store key with the working list and notifies the
// save listener.
func (c *Collection[T]) SaveAll(ctx context.Context) error {
	items := c.items
	if items == nil {
		items = []T{}
	}
	if err := c.store.Set(ctx, c.cfg.Key, items); err != nil {
		return fmt.Errorf("saving %s: %w", c.cfg.Key, err)
	}
	if c.onSaved != nil {
		c.onSaved(c.cfg.Key)
	}
	return nil
}

func (c *Collection[T]) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(it T) bool { return it.EntityID() == id })
}
