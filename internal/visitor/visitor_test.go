// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package visitor

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		name        string
		ua          string
		wantBrowser string
		wantOS      string
		wantDevice  string
	}{
		{
			name:        "desktop chrome",
			ua:          "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			wantBrowser: "Chrome",
			wantOS:      "Windows",
			wantDevice:  DeviceDesktop,
		},
		{
			name:        "iphone safari",
			ua:          "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			wantBrowser: "Safari",
			wantOS:      "iOS",
			wantDevice:  DeviceMobile,
		},
		{
			name:       "crawler",
			ua:         "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			wantDevice: DeviceBot,
		},
		{
			name:        "empty",
			ua:          "",
			wantBrowser: "Unknown",
			wantOS:      "Unknown",
			wantDevice:  DeviceDesktop,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			browser, os, device := ParseUserAgent(tt.ua)
			if tt.wantBrowser != "" {
				assert.Equal(t, tt.wantBrowser, browser)
			}
			if tt.wantOS != "" {
				assert.Equal(t, tt.wantOS, os)
			}
			assert.Equal(t, tt.wantDevice, device)
		})
	}
}

func TestCountry_WithoutDatabase(t *testing.T) {
	var r Resolver

	assert.Equal(t, CountryLocal, r.Country("127.0.0.1"))
	assert.Equal(t, CountryLocal, r.Country("192.168.1.10"))
	assert.Equal(t, CountryLocal, r.Country("::1"))
	assert.Empty(t, r.Country("8.8.8.8"))
	assert.Empty(t, r.Country("not-an-ip"))
	assert.False(t, r.Enabled())
}

func TestNilResolver(t *testing.T) {
	var r *Resolver

	assert.False(t, r.Enabled())
	assert.Empty(t, r.Country("8.8.8.8"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15")
	info := r.Describe(req, "10.0.0.1")
	assert.Equal(t, CountryLocal, info.Country)
	assert.Equal(t, "Safari", info.Browser)
	assert.Equal(t, DeviceDesktop, info.Device)
	assert.Len(t, info.LogAttrs(), 10)
}

func TestOpen(t *testing.T) {
	var r Resolver
	require.NoError(t, r.Open(""), "an empty path disables lookups")
	require.NoError(t, r.Reload())
	assert.False(t, r.Enabled())

	err := r.Open(filepath.Join(t.TempDir(), "missing.mmdb"))
	assert.Error(t, err)
	assert.False(t, r.Enabled())
	assert.NoError(t, r.Close())
}
