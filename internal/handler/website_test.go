// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/topdesignr/internal/content"
	"github.com/olegiv/topdesignr/internal/editor"
)

func TestWebsiteEditor_SectionFieldAndSave(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)

	out := env.doJSON(t, http.MethodPatch, "/admin/api/website/sections/hero",
		map[string]any{"field": "title", "value": "Bold Ideas"}, http.StatusOK)
	assert.Equal(t, "Bold Ideas", field(t, out, "content", "hero", "title"))

	// Not yet visible to the public.
	out = env.doJSON(t, http.MethodGet, "/api/v1/content", nil, http.StatusOK)
	assert.Equal(t, "Creative Design Studio", field(t, out, "content", "hero", "title"))

	out = env.doJSON(t, http.MethodPost, "/admin/api/website/save", nil, http.StatusOK)
	assert.Equal(t, true, out["saved"])

	out = env.doJSON(t, http.MethodGet, "/api/v1/content", nil, http.StatusOK)
	assert.Equal(t, "Bold Ideas", field(t, out, "content", "hero", "title"))

	resp, body := env.request(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Bold Ideas")
}

func TestWebsiteEditor_SectionErrors(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)

	env.doJSON(t, http.MethodPatch, "/admin/api/website/sections/sidebar",
		map[string]any{"field": "title", "value": "x"}, http.StatusBadRequest)
	env.doJSON(t, http.MethodPatch, "/admin/api/website/sections/hero",
		map[string]any{"field": "colour", "value": "x"}, http.StatusBadRequest)
	env.doJSON(t, http.MethodPost, "/admin/api/website/sections/hero/numbers", nil, http.StatusBadRequest)
}

func TestWebsiteEditor_ListItems(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)

	const base = "/admin/api/website/sections/keyNumbers/numbers"
	seedLen := len(content.InitialWebsiteContent().KeyNumbers.Numbers)

	out := env.doJSON(t, http.MethodPost, base, map[string]any{
		"fields": map[string]string{"title": "Countries", "value": "12"},
	}, http.StatusCreated)
	assert.InDelta(t, seedLen, out["index"], 0)
	numbers := field(t, out, "content", "keyNumbers", "numbers").([]any)
	require.Len(t, numbers, seedLen+1)
	added := numbers[seedLen].(map[string]any)
	assert.Equal(t, "Countries", added["title"])
	assert.Equal(t, editor.DefaultStatIcon, added["icon"])
	id, _ := added["id"].(string)
	require.NotEmpty(t, id)

	out = env.doJSON(t, http.MethodGet, base+"?id="+id, nil, http.StatusOK)
	assert.InDelta(t, seedLen, out["index"], 0)

	out = env.doJSON(t, http.MethodPatch, base+"/0", map[string]any{"field": "value", "value": "300+"}, http.StatusOK)
	numbers = field(t, out, "content", "keyNumbers", "numbers").([]any)
	assert.Equal(t, "300+", numbers[0].(map[string]any)["value"])

	out = env.doJSON(t, http.MethodDelete, base+"/0", nil, http.StatusOK)
	assert.Len(t, field(t, out, "content", "keyNumbers", "numbers").([]any), seedLen)

	// The added item moved but keeps its id.
	out = env.doJSON(t, http.MethodGet, base+"?id="+id, nil, http.StatusOK)
	assert.InDelta(t, seedLen-1, out["index"], 0)
}

func TestWebsiteEditor_OutOfRangeIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)

	const base = "/admin/api/website/sections/contact/items"
	before := env.doJSON(t, http.MethodGet, "/admin/api/website", nil, http.StatusOK)

	env.doJSON(t, http.MethodPatch, base+"/99", map[string]any{"field": "value", "value": "x"}, http.StatusNotFound)
	env.doJSON(t, http.MethodDelete, base+"/-1", nil, http.StatusNotFound)
	env.doJSON(t, http.MethodDelete, base+"/first", nil, http.StatusBadRequest)
	env.doJSON(t, http.MethodGet, base+"?id=missing", nil, http.StatusNotFound)
	env.doJSON(t, http.MethodGet, base, nil, http.StatusBadRequest)

	after := env.doJSON(t, http.MethodGet, "/admin/api/website", nil, http.StatusOK)
	assert.Equal(t, before["content"], after["content"])
}

func TestWebsiteEditor_NestedPlanFeatures(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)

	const base = "/admin/api/website/sections/pricing/plans/0/features"
	seedLen := len(content.InitialWebsiteContent().Pricing.Plans[0].Features)

	out := env.doJSON(t, http.MethodPost, base, nil, http.StatusCreated)
	assert.InDelta(t, seedLen, out["index"], 0)

	out = env.doJSON(t, http.MethodPatch, base+"/0", map[string]any{"value": "Custom Logo"}, http.StatusOK)
	plans := field(t, out, "content", "pricing", "plans").([]any)
	features := plans[0].(map[string]any)["features"].([]any)
	require.Len(t, features, seedLen+1)
	assert.Equal(t, "Custom Logo", features[0])
	assert.Equal(t, editor.DefaultPlanFeature, features[seedLen])

	env.doJSON(t, http.MethodDelete, base+"/0", nil, http.StatusOK)
	env.doJSON(t, http.MethodDelete, base+"/42", nil, http.StatusNotFound)
	env.doJSON(t, http.MethodPost, "/admin/api/website/sections/pricing/plans/9/features", nil, http.StatusNotFound)
	env.doJSON(t, http.MethodPost, "/admin/api/website/sections/pricing/plans/0/links", nil, http.StatusBadRequest)
}

func TestWebsiteEditor_NestedFooterLinks(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)

	const base = "/admin/api/website/sections/footer/links/0/items"
	out := env.doJSON(t, http.MethodPost, base, nil, http.StatusCreated)
	i := int(out["index"].(float64))

	out = env.doJSON(t, http.MethodPatch, base+"/"+itoa(i),
		map[string]any{"field": "url", "value": "/services/seo"}, http.StatusOK)
	groups := field(t, out, "content", "footer", "links").([]any)
	links := groups[0].(map[string]any)["items"].([]any)
	link := links[i].(map[string]any)
	assert.Equal(t, editor.DefaultLinkLabel, link["label"])
	assert.Equal(t, "/services/seo", link["url"])

	env.doJSON(t, http.MethodPost, "/admin/api/website/save", nil, http.StatusOK)
	saved, err := env.repo.Website(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "/services/seo", saved.Footer.Links[0].Items[i].URL)
}

func TestWebsiteEditor_ReloadDiscardsEdits(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)

	env.doJSON(t, http.MethodPatch, "/admin/api/website/sections/about",
		map[string]any{"field": "title", "value": "Who we are"}, http.StatusOK)
	out := env.doJSON(t, http.MethodPost, "/admin/api/website/reload", nil, http.StatusOK)
	assert.Equal(t, "About Us", field(t, out, "content", "about", "title"))
}
