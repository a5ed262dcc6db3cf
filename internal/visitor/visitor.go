// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package visitor describes the client behind a request for audit logs:
// the country from a MaxMind GeoLite2-Country database and the browser from
// the User-Agent header.
package visitor

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/mileusna/useragent"
	"github.com/oschwald/maxminddb-golang"
)

// CountryLocal is reported for loopback and private addresses.
const CountryLocal = "LOCAL"

// Device classes.
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceBot     = "bot"
)

const unknown = "Unknown"

// Info is what is known about one client.
type Info struct {
	IP      string
	Country string
	Browser string
	OS      string
	Device  string
}

// LogAttrs returns the info as slog key/value pairs.
func (i Info) LogAttrs() []any {
	return []any{
		"ip", i.IP,
		"country", i.Country,
		"browser", i.Browser,
		"os", i.OS,
		"device", i.Device,
	}
}

// Resolver maps requests to Info. The zero value and a nil *Resolver work
// without country lookups.
type Resolver struct {
	mu      sync.RWMutex
	db      *maxminddb.Reader
	path    string
	modTime time.Time
}

type countryRecord struct {
	Country struct {
		ISOCode string `maxminddb:"iso_code"`
	} `maxminddb:"country"`
}

// Open loads the database at path. An empty path leaves lookups disabled.
func (r *Resolver) Open(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.path = path
	if path == "" {
		return nil
	}
	return r.load()
}

// Reload reopens the database when the file changed since it was loaded.
func (r *Resolver) Reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.path == "" {
		return nil
	}
	return r.load()
}

// load requires r.mu held for writing.
func (r *Resolver) load() error {
	info, err := os.Stat(r.path)
	if err != nil {
		return fmt.Errorf("geoip database: %w", err)
	}
	if r.db != nil && info.ModTime().Equal(r.modTime) {
		return nil
	}

	db, err := maxminddb.Open(r.path)
	if err != nil {
		return fmt.Errorf("opening geoip database: %w", err)
	}
	if r.db != nil {
		_ = r.db.Close()
	}
	r.db = db
	r.modTime = info.ModTime()
	return nil
}

// Enabled reports whether a database is loaded.
func (r *Resolver) Enabled() bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.db != nil
}

// Close releases the database.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

// Country returns the ISO code for ip, CountryLocal for private and
// loopback addresses, or "" when unknown.
func (r *Resolver) Country(ip string) string {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return ""
	}
	if parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsLinkLocalUnicast() {
		return CountryLocal
	}
	if r == nil {
		return ""
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.db == nil {
		return ""
	}
	var rec countryRecord
	if err := r.db.Lookup(parsed, &rec); err != nil {
		return ""
	}
	return rec.Country.ISOCode
}

// Describe builds the Info for req. ip is the client address as already
// resolved by the caller.
func (r *Resolver) Describe(req *http.Request, ip string) Info {
	browser, os, device := ParseUserAgent(req.UserAgent())
	return Info{
		IP:      ip,
		Country: r.Country(ip),
		Browser: browser,
		OS:      os,
		Device:  device,
	}
}

// ParseUserAgent extracts the browser name, OS and device class.
func ParseUserAgent(s string) (browser, os, device string) {
	ua := useragent.Parse(s)

	browser, os = ua.Name, ua.OS
	if browser == "" {
		browser = unknown
	}
	if os == "" {
		os = unknown
	}

	switch {
	case ua.Bot:
		device = DeviceBot
	case ua.Tablet:
		device = DeviceTablet
	case ua.Mobile:
		device = DeviceMobile
	default:
		device = DeviceDesktop
	}
	return browser, os, device
}
