// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/olegiv/topdesignr/internal/auth"
	"github.com/olegiv/topdesignr/internal/content"
	"github.com/olegiv/topdesignr/internal/editor"
	"github.com/olegiv/topdesignr/internal/handler"
	"github.com/olegiv/topdesignr/internal/metrics"
	"github.com/olegiv/topdesignr/internal/middleware"
	"github.com/olegiv/topdesignr/internal/recordstore"
	"github.com/olegiv/topdesignr/internal/render"
	"github.com/olegiv/topdesignr/internal/scheduler"
	"github.com/olegiv/topdesignr/internal/version"
	"github.com/olegiv/topdesignr/internal/visitor"
	"github.com/olegiv/topdesignr/web"
)

// app bundles the long-lived services the router is built from.
type app struct {
	isDev          bool
	csrfKey        []byte
	trustedOrigins []string
	backend        string
	info           version.Info

	store      *recordstore.Store
	repo       *content.Repository
	sm         *scs.SessionManager
	admin      *auth.Admin
	registry   *editor.Registry
	renderer   *render.Renderer
	metrics    *metrics.Metrics
	jobs       *scheduler.Scheduler
	protection *middleware.LoginProtection
	contacts   *middleware.RateLimiter
	visitors   *visitor.Resolver
}

// routes builds the HTTP handler:
//
//	/                      landing page
//	/services/{slug}       service page
//	/api/v1/...            public read API, contact form, theme
//	/admin/login, /logout  sign-in
//	/admin/api/session     sign-in state
//	/admin/api/...         editors and store maintenance (signed in)
//	/health, /metrics, /static/*
func (a *app) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(chimw.RedirectSlashes)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(a.isDev)))
	r.Use(a.sm.LoadAndSave)
	r.Use(middleware.CSRF(middleware.DefaultCSRFConfig(a.csrfKey, a.isDev, a.trustedOrigins)))

	public := handler.NewPublicHandler(a.repo, a.renderer, a.sm, a.metrics, a.visitors)
	authH := handler.NewAuthHandler(a.sm, a.admin, a.registry, a.protection, a.metrics, a.visitors)
	editors := handler.NewEditorHandler(a.sm, a.registry)
	storeH := handler.NewStoreHandler(a.store, a.repo, a.jobs)
	health := handler.NewHealthHandler(a.store, a.sm, a.info, a.backend)

	r.Get(handler.RouteHealth, health.Health)
	r.Handle(handler.RouteMetrics, a.metrics.Handler())
	r.With(middleware.StaticCache(86400)).
		Handle(handler.RouteStatic, http.StripPrefix("/static/", http.FileServerFS(web.StaticFS())))

	public.Routes(r)

	r.Route(handler.RouteAPI, func(r chi.Router) {
		public.APIRoutes(r)
		if a.contacts != nil {
			r.With(a.contacts.Middleware()).Post(handler.RouteAPIContact, public.SubmitContact)
		} else {
			r.Post(handler.RouteAPIContact, public.SubmitContact)
		}
	})

	r.Route(handler.RouteAdmin, func(r chi.Router) {
		r.Use(middleware.NoStore)
		authH.Routes(r)
		r.Route(handler.RouteAdminAPI, func(r chi.Router) {
			r.Get(handler.RouteAdminSession, authH.Session)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(a.sm))
				editors.Routes(r)
				storeH.Routes(r)
			})
		})
	})

	r.NotFound(public.NotFound)
	return r
}
