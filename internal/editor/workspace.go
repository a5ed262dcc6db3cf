// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package editor

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/olegiv/topdesignr/internal/content"
	"github.com/olegiv/topdesignr/internal/recordstore"
)

// Workspace is one operator's set of editors. Its methods serialize access;
// two workspaces saving the same key race with last-write-wins.
type Workspace struct {
	ID string

	mu       sync.Mutex
	lastUsed atomic.Int64 // unix nanoseconds

	Services     *ServicesEditor
	Testimonials *TestimonialsEditor
	Projects     *ProjectsEditor
	Website      *WebsiteEditor
	Inbox        *Inbox
}

// NewWorkspace builds unloaded editors over store and repo.
func NewWorkspace(id string, store *recordstore.Store, repo *content.Repository, ids *IDGenerator) *Workspace {
	if ids == nil {
		ids = NewIDGenerator()
	}
	return &Workspace{
		ID:           id,
		Services:     NewServicesEditor(store, ids),
		Testimonials: NewTestimonialsEditor(store, ids),
		Projects:     NewProjectsEditor(store, ids),
		Website:      NewWebsiteEditor(store, ids),
		Inbox:        NewInbox(repo),
	}
}

// Load mounts every editor from the store.
func (w *Workspace) Load(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.load(ctx)
}

func (w *Workspace) load(ctx context.Context) error {
	return errors.Join(
		w.Services.Load(ctx),
		w.Testimonials.Load(ctx),
		w.Projects.Load(ctx),
		w.Website.Load(ctx),
		w.Inbox.Load(ctx),
	)
}

// OnSaved registers fn on every editor.
func (w *Workspace) OnSaved(fn SaveListener) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Services.OnSaved(fn)
	w.Testimonials.OnSaved(fn)
	w.Projects.OnSaved(fn)
	w.Website.OnSaved(fn)
	w.Inbox.OnSaved(fn)
}

// Do runs fn while holding the workspace lock.
func (w *Workspace) Do(fn func(w *Workspace) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return fn(w)
}

func (w *Workspace) touch(now time.Time) {
	w.lastUsed.Store(now.UnixNano())
}

func (w *Workspace) idleSince() time.Time {
	return time.Unix(0, w.lastUsed.Load())
}

// Registry owns the workspaces of signed-in operators, keyed by an opaque
// workspace id kept in the operator's session.
type Registry struct {
	store   *recordstore.Store
	repo    *content.Repository
	ids     *IDGenerator
	logger  *slog.Logger
	onSaved SaveListener
	now     func() time.Time

	mu         sync.Mutex
	workspaces map[string]*Workspace
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithSaveListener notifies fn after any editor in any workspace saved.
func WithSaveListener(fn SaveListener) RegistryOption {
	return func(r *Registry) { r.onSaved = fn }
}

// WithRegistryLogger sets the logger.
func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) { r.logger = l }
}

// NewRegistry creates an empty registry.
func NewRegistry(store *recordstore.Store, repo *content.Repository, opts ...RegistryOption) *Registry {
	r := &Registry{
		store:      store,
		repo:       repo,
		ids:        NewIDGenerator(),
		logger:     slog.Default(),
		now:        time.Now,
		workspaces: make(map[string]*Workspace),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewID returns a fresh workspace id.
func (r *Registry) NewID() string {
	return r.ids.New(func(id string) bool {
		r.mu.Lock()
		defer r.mu.Unlock()
		_, ok := r.workspaces[id]
		return ok
	})
}

// Get returns the workspace for id, creating and loading it on first use.
// The workspace is marked used before it becomes visible to Sweep.
func (r *Registry) Get(ctx context.Context, id string) (*Workspace, error) {
	r.mu.Lock()
	w, ok := r.workspaces[id]
	if ok {
		w.touch(r.now())
	}
	r.mu.Unlock()

	if !ok {
		fresh := NewWorkspace(id, r.store, r.repo, r.ids)
		if r.onSaved != nil {
			fresh.OnSaved(r.onSaved)
		}
		if err := fresh.Load(ctx); err != nil {
			return nil, err
		}

		r.mu.Lock()
		if w, ok = r.workspaces[id]; !ok {
			w = fresh
			r.workspaces[id] = w
		}
		w.touch(r.now())
		r.mu.Unlock()
		r.logger.Debug("editor workspace opened", "workspace", id)
	}

	return w, nil
}

// Drop discards the workspace for id along with any unsaved edits.
func (r *Registry) Drop(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.workspaces, id)
}

// Len returns the number of open workspaces.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

// Sweep drops workspaces unused for longer than maxIdle and returns how many
// were dropped.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()

	dropped := 0
	for id, w := range r.workspaces {
		if w.idleSince().Before(cutoff) {
			delete(r.workspaces, id)
			dropped++
		}
	}
	if dropped > 0 {
		r.logger.Info("idle editor workspaces dropped", "count", dropped, "remaining", len(r.workspaces))
	}
	return dropped
}
