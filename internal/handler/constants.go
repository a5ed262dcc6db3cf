// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	RouteRoot          = "/"
	RouteServiceDetail = "/services/{slug}"
	RouteHealth        = "/health"
	RouteMetrics       = "/metrics"
	RouteStatic        = "/static/*"

	RouteAPI              = "/api/v1"
	RouteAPIServices      = "/services"
	RouteAPIServiceSlug   = "/services/{slug}"
	RouteAPITestimonials  = "/testimonials"
	RouteAPIProjects      = "/projects"
	RouteAPIProjectID     = "/projects/{id}"
	RouteAPIContent       = "/content"
	RouteAPIContact       = "/contact"
	RouteAPITheme         = "/theme"
	RouteAPIThemeToggle   = "/theme/toggle"
	RouteAdmin            = "/admin"
	RouteAdminLogin       = "/login"
	RouteAdminLogout      = "/logout"
	RouteAdminAPI         = "/api"
	RouteAdminSession     = "/session"
	RouteAdminServices    = "/services"
	RouteAdminTestimonial = "/testimonials"
	RouteAdminProjects    = "/projects"
	RouteAdminWebsite     = "/website"
	RouteAdminMessages    = "/messages"
	RouteAdminStore       = "/store"
	RouteAdminJobs        = "/jobs"

	RouteSuffixReload = "/reload"
	RouteSuffixSave   = "/save"
	RouteDraft        = "/draft"
	RouteDraftCommit  = "/draft/commit"
	RouteDraftFeature = "/draft/features"
	RouteDraftFeatIdx = "/draft/features/{index}"
	RouteParamID      = "/{id}"
	RouteParamIDEdit  = "/{id}/edit"
	RouteParamIDRead  = "/{id}/read"
	RouteParamKey     = "/{key}"
	RouteExport       = "/export"

	RouteSection     = "/sections/{section}"
	RouteSectionList = "/sections/{section}/{field}"
	RouteSectionItem = "/sections/{section}/{field}/{index}"
	RouteNestedList  = "/sections/{section}/{field}/{index}/{nested}"
	RouteNestedItem  = "/sections/{section}/{field}/{index}/{nested}/{nestedIndex}"
)
