// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package editor

import (
	"context"
	"fmt"
	"slices"

	"github.com/olegiv/topdesignr/internal/content"
)

// Inbox is the contact message list. Unlike the other editors every change
// is persisted immediately, against the freshly loaded list, so submissions
// that arrived after Load are kept.
type Inbox struct {
	repo    *content.Repository
	onSaved SaveListener

	items []content.ContactMessage
}

// NewInbox creates an inbox over repo. Call Load before use.
func NewInbox(repo *content.Repository) *Inbox {
	return &Inbox{repo: repo}
}

// OnSaved registers fn to run after every persisted change.
func (b *Inbox) OnSaved(fn SaveListener) { b.onSaved = fn }

// Load refreshes the message list from the store.
func (b *Inbox) Load(ctx context.Context) error {
	items, err := b.repo.Messages(ctx)
	if err != nil {
		return err
	}
	b.items = items
	return nil
}

// Messages returns a copy of the message list.
func (b *Inbox) Messages() []content.ContactMessage {
	return slices.Clone(b.items)
}

// Unread counts messages not yet marked read.
func (b *Inbox) Unread() int {
	n := 0
	for _, m := range b.items {
		if !m.IsRead {
			n++
		}
	}
	return n
}

// MarkRead flags the message with id as read.
func (b *Inbox) MarkRead(ctx context.Context, id string) error {
	return b.update(ctx, id, func(items []content.ContactMessage, i int) []content.ContactMessage {
		if items[i].IsRead {
			return nil
		}
		items[i].IsRead = true
		return items
	})
}

// Delete removes the message with id.
func (b *Inbox) Delete(ctx context.Context, id string) error {
	return b.update(ctx, id, func(items []content.ContactMessage, i int) []content.ContactMessage {
		return slices.Delete(items, i, i+1)
	})
}

// update applies fn to the message at id's index. fn returns nil when
// nothing changed.
func (b *Inbox) update(ctx context.Context, id string, fn func([]content.ContactMessage, int) []content.ContactMessage) error {
	found := false
	items, changed, err := b.repo.UpdateMessages(ctx, func(items []content.ContactMessage) ([]content.ContactMessage, bool) {
		i := slices.IndexFunc(items, func(m content.ContactMessage) bool { return m.ID == id })
		if i < 0 {
			return items, false
		}
		found = true
		next := fn(items, i)
		if next == nil {
			return items, false
		}
		return next, true
	})
	if err != nil {
		return err
	}
	b.items = items
	if !found {
		return fmt.Errorf("message %q: %w", id, ErrNotFound)
	}
	if changed && b.onSaved != nil {
		b.onSaved(content.KeyContactMessages)
	}
	return nil
}
