// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the HTTP handlers: the public site and its read
// API, the admin sign-in, the editor endpoints, store maintenance and
// health.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/olegiv/topdesignr/internal/content"
	"github.com/olegiv/topdesignr/internal/editor"
	"github.com/olegiv/topdesignr/internal/middleware"
	"github.com/olegiv/topdesignr/internal/render"
	"github.com/olegiv/topdesignr/internal/session"
	"github.com/olegiv/topdesignr/internal/visitor"
)

// ContactRecorder counts accepted contact form submissions.
type ContactRecorder interface {
	ContactReceived()
}

// PublicHandler serves the public pages and read API. Every request reads
// the store afresh, so saved edits show up on the next request.
type PublicHandler struct {
	repo     *content.Repository
	renderer *render.Renderer
	sm       *scs.SessionManager
	ids      *editor.IDGenerator
	contacts ContactRecorder
	visitors *visitor.Resolver
	now      func() time.Time
}

// NewPublicHandler creates a public handler. contacts and visitors may be
// nil.
func NewPublicHandler(repo *content.Repository, renderer *render.Renderer, sm *scs.SessionManager, contacts ContactRecorder, visitors *visitor.Resolver) *PublicHandler {
	return &PublicHandler{
		repo:     repo,
		renderer: renderer,
		sm:       sm,
		ids:      editor.NewIDGenerator(),
		contacts: contacts,
		visitors: visitors,
		now:      time.Now,
	}
}

// homeView is the data behind the landing page.
type homeView struct {
	content.WebsiteContent
	Services     []content.Service
	Testimonials []content.Testimonial
	Projects     []content.Project
}

type serviceView struct {
	Service content.Service
}

// Routes registers the HTML pages.
func (h *PublicHandler) Routes(r chi.Router) {
	r.Get(RouteRoot, h.Home)
	r.Get(RouteServiceDetail, h.ServiceDetail)
}

// APIRoutes registers the public JSON API.
func (h *PublicHandler) APIRoutes(r chi.Router) {
	r.Get(RouteAPIServices, h.ListServices)
	r.Get(RouteAPIServiceSlug, h.GetService)
	r.Get(RouteAPITestimonials, h.ListTestimonials)
	r.Get(RouteAPIProjects, h.ListProjects)
	r.Get(RouteAPIProjectID, h.GetProject)
	r.Get(RouteAPIContent, h.GetContent)
	r.Get(RouteAPITheme, h.GetTheme)
	r.Put(RouteAPITheme, h.SetTheme)
	r.Post(RouteAPIThemeToggle, h.ToggleTheme)
}

// Home handles GET /.
func (h *PublicHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	view, err := h.loadHome(ctx)
	if err != nil {
		slog.Error("failed to load landing page", "category", "store", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	h.render(w, r, http.StatusOK, "home", render.TemplateData{
		Data:   view,
		Footer: &view.Footer,
	})
}

func (h *PublicHandler) loadHome(ctx context.Context) (homeView, error) {
	website, err := h.repo.Website(ctx)
	if err != nil {
		return homeView{}, err
	}
	services, err := h.repo.Services(ctx)
	if err != nil {
		return homeView{}, err
	}
	testimonials, err := h.repo.Testimonials(ctx)
	if err != nil {
		return homeView{}, err
	}
	projects, err := h.repo.Projects(ctx)
	if err != nil {
		return homeView{}, err
	}
	return homeView{
		WebsiteContent: website,
		Services:       services,
		Testimonials:   testimonials,
		Projects:       projects,
	}, nil
}

// ServiceDetail handles GET /services/{slug}.
func (h *PublicHandler) ServiceDetail(w http.ResponseWriter, r *http.Request) {
	svc, err := h.repo.ServiceBySlug(r.Context(), chi.URLParam(r, "slug"))
	if errors.Is(err, content.ErrNotFound) {
		h.render(w, r, http.StatusNotFound, "not_found", render.TemplateData{
			Title: "Not found",
			Data:  "This service does not exist.",
		})
		return
	}
	if err != nil {
		slog.Error("failed to load service", "category", "store", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	h.render(w, r, http.StatusOK, "service", render.TemplateData{
		Title: svc.Title,
		Data:  serviceView{Service: svc},
	})
}

// NotFound answers unknown paths: JSON under the APIs, HTML elsewhere.
func (h *PublicHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, RouteAPI+"/") || strings.HasPrefix(r.URL.Path, RouteAdmin+RouteAdminAPI+"/") {
		writeJSONError(w, http.StatusNotFound, "Not found")
		return
	}
	h.render(w, r, http.StatusNotFound, "not_found", render.TemplateData{Title: "Not found"})
}

// render fills in the theme and footer, then renders. Footer read failures
// only drop the footer.
func (h *PublicHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data render.TemplateData) {
	data.Theme = session.Theme(r.Context(), h.sm)
	if data.Footer == nil {
		if website, err := h.repo.Website(r.Context()); err == nil {
			data.Footer = &website.Footer
		}
	}
	if err := h.renderer.Render(w, r, status, name, data); err != nil {
		slog.Error("failed to render page", "category", "system", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// ListServices handles GET /api/v1/services.
func (h *PublicHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.Services(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to load services", "category", "store", "error", err)
		return
	}
	writeJSONSuccess(w, map[string]any{"services": items})
}

// GetService handles GET /api/v1/services/{slug}.
func (h *PublicHandler) GetService(w http.ResponseWriter, r *http.Request) {
	svc, err := h.repo.ServiceBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeEditorError(w, err, "failed to load service", "category", "store")
		return
	}
	writeJSONSuccess(w, map[string]any{"service": svc})
}

// ListTestimonials handles GET /api/v1/testimonials.
func (h *PublicHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.Testimonials(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to load testimonials", "category", "store", "error", err)
		return
	}
	writeJSONSuccess(w, map[string]any{"testimonials": items})
}

// ListProjects handles GET /api/v1/projects.
func (h *PublicHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.Projects(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to load projects", "category", "store", "error", err)
		return
	}
	writeJSONSuccess(w, map[string]any{"projects": items})
}

// GetProject handles GET /api/v1/projects/{id}.
func (h *PublicHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	p, err := h.repo.ProjectByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeEditorError(w, err, "failed to load project", "category", "store")
		return
	}
	writeJSONSuccess(w, map[string]any{"project": p})
}

// GetContent handles GET /api/v1/content.
func (h *PublicHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	website, err := h.repo.Website(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to load website content", "category", "store", "error", err)
		return
	}
	writeJSONSuccess(w, map[string]any{"content": website})
}

// SubmitContact handles POST /api/v1/contact. JSON bodies get a JSON
// answer; HTML form posts are redirected back to the contact section.
func (h *PublicHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	isForm := isFormRequest(r)

	var sub content.ContactSubmission
	if isForm {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			writeJSONError(w, http.StatusBadRequest, "Invalid form data")
			return
		}
		sub = content.ContactSubmission{
			Name:    r.PostForm.Get("name"),
			Email:   r.PostForm.Get("email"),
			Message: r.PostForm.Get("message"),
		}
	} else if err := decodeJSON(w, r, &sub); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := sub.Validate(); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg := sub.ToMessage(h.ids.New(nil), h.now())
	if err := h.repo.AppendMessage(r.Context(), msg); err != nil {
		if errors.Is(err, content.ErrCorruptRecord) {
			slog.Warn("contact message rejected, inbox record is corrupt", "category", "contact", "error", err)
			writeJSONError(w, http.StatusServiceUnavailable, "Messages cannot be accepted right now")
			return
		}
		logAndInternalError(w, "failed to store contact message", "category", "contact", "error", err)
		return
	}
	if h.contacts != nil {
		h.contacts.ContactReceived()
	}
	who := h.visitors.Describe(r, middleware.ClientIP(r))
	slog.Info("contact message received", append([]any{"category", "contact", "id", msg.ID}, who.LogAttrs()...)...)

	if isForm {
		http.Redirect(w, r, "/#contact", http.StatusSeeOther)
		return
	}
	writeJSONStatus(w, http.StatusCreated, map[string]any{"id": msg.ID})
}

func isFormRequest(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mt == "application/x-www-form-urlencoded" || mt == "multipart/form-data"
}

type themeRequest struct {
	Theme string `json:"theme"`
}

// GetTheme handles GET /api/v1/theme.
func (h *PublicHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSONSuccess(w, map[string]any{"theme": session.Theme(r.Context(), h.sm)})
}

// SetTheme handles PUT /api/v1/theme.
func (h *PublicHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !session.SetTheme(r.Context(), h.sm, req.Theme) {
		writeJSONError(w, http.StatusBadRequest, "Unknown theme: "+req.Theme)
		return
	}
	writeJSONSuccess(w, map[string]any{"theme": req.Theme})
}

// ToggleTheme handles POST /api/v1/theme/toggle. The header form posts here
// without JavaScript and is sent back to the page it came from.
func (h *PublicHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme := session.ToggleTheme(r.Context(), h.sm)
	if isFormRequest(r) || r.Header.Get("Content-Type") == "" && acceptsHTML(r) {
		http.Redirect(w, r, backTarget(r), http.StatusSeeOther)
		return
	}
	writeJSONSuccess(w, map[string]any{"theme": theme})
}

func acceptsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// backTarget returns the same-site path the request came from, or "/".
func backTarget(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return RouteRoot
	}
	host := r.Host
	for _, scheme := range []string{"https://", "http://"} {
		rest, ok := strings.CutPrefix(ref, scheme+host)
		if ok && strings.HasPrefix(rest, "/") && !strings.HasPrefix(rest, "//") {
			return rest
		}
	}
	return RouteRoot
}
