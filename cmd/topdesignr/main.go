// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/olegiv/topdesignr/internal/auth"
	"github.com/olegiv/topdesignr/internal/config"
	"github.com/olegiv/topdesignr/internal/content"
	"github.com/olegiv/topdesignr/internal/editor"
	"github.com/olegiv/topdesignr/internal/logging"
	"github.com/olegiv/topdesignr/internal/metrics"
	"github.com/olegiv/topdesignr/internal/middleware"
	"github.com/olegiv/topdesignr/internal/recordstore"
	"github.com/olegiv/topdesignr/internal/render"
	"github.com/olegiv/topdesignr/internal/scheduler"
	"github.com/olegiv/topdesignr/internal/session"
	"github.com/olegiv/topdesignr/internal/version"
	"github.com/olegiv/topdesignr/internal/visitor"
	"github.com/olegiv/topdesignr/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = ""
	appBuildTime = ""
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "TopDesignr - design studio website and content editor\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TDS_SESSION_SECRET        Session secret (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TDS_ADMIN_PASSWORD_HASH   Argon2id hash of the admin password\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TDS_ADMIN_PASSWORD        Plain admin password (development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TDS_STORE_BACKEND         sqlite|memory|redis|postgres|mysql (default: sqlite)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TDS_DB_PATH               SQLite database path (default: ./data/topdesignr.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TDS_REDIS_URL             Redis URL (redis backend)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TDS_POSTGRES_URL          PostgreSQL URL (postgres backend)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TDS_MYSQL_DSN             MySQL DSN (mysql backend)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TDS_GEOIP_DB_PATH         GeoLite2-Country database (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TDS_SERVER_PORT           Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TDS_ENV                   development|production (default: development)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	info := version.Info{Version: appVersion, GitCommit: appGitCommit, BuildTime: appBuildTime}
	if *showVersion {
		_, _ = fmt.Printf("topdesignr %s\n", info.String())
		os.Exit(0)
	}

	if err := run(info); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(info version.Info) error {
	// Load .env files if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	m := metrics.New()
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logging.ParseLevel(cfg.LogLevel)})
	logger := slog.New(logging.NewMetricsHandler(textHandler, m))
	slog.SetDefault(logger)

	ctx := context.Background()

	backend, backendInfo, err := recordstore.Open(ctx, recordstore.Config{
		Type:             cfg.StoreBackend,
		SQLitePath:       cfg.DBPath,
		RedisURL:         cfg.RedisURL,
		RedisPrefix:      cfg.RedisPrefix,
		PostgresURL:      cfg.PostgresURL,
		MySQLDSN:         cfg.MySQLDSN,
		FallbackToMemory: cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("opening record store: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			slog.Error("error closing record store", "category", "store", "error", err)
		}
	}()
	if backendInfo.IsFallback {
		slog.Warn("record store initialized", "category", "store", "backend", backendInfo.Type, "note", "fallback, edits are not durable")
	} else {
		slog.Info("record store initialized", "category", "store", "backend", backendInfo.Type)
	}

	store := recordstore.New(backend,
		recordstore.WithValidator(content.ValidatePayload),
		recordstore.WithObserver(m),
		recordstore.WithLogger(logger),
	)
	repo := content.NewRepository(store)

	// Sessions share the SQLite file when there is one; otherwise they live
	// in memory and sign-ins do not survive a restart.
	var sessionDB *sql.DB
	if sqlite, ok := backend.(*recordstore.SQLiteBackend); ok {
		sessionDB = sqlite.DB()
	}
	sm := session.New(sessionDB, cfg.IsDevelopment())

	admin, err := auth.NewAdmin(cfg.AdminPasswordHash, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("configuring admin credential: %w", err)
	}

	registry := editor.NewRegistry(store, repo,
		editor.WithSaveListener(m.EditorSaved),
		editor.WithRegistryLogger(logger),
	)

	renderer, err := render.New(render.Config{TemplatesFS: web.TemplatesFS()})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	protection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	contacts := middleware.NewRateLimiter(0.2, 3)

	visitors := &visitor.Resolver{}
	if err := visitors.Open(cfg.GeoIPDBPath); err != nil {
		slog.Warn("country lookups disabled", "path", cfg.GeoIPDBPath, "error", err)
	}
	defer func() { _ = visitors.Close() }()

	jobs := scheduler.New(logger)
	if err := registerJobs(jobs, registry, protection, contacts, visitors, m, cfg.WorkspaceIdle); err != nil {
		return fmt.Errorf("registering jobs: %w", err)
	}
	jobs.Start()
	defer jobs.Stop()

	a := &app{
		isDev:          cfg.IsDevelopment(),
		csrfKey:        []byte(cfg.SessionSecret),
		trustedOrigins: cfg.TrustedOrigins,
		backend:        backendInfo.Type,
		info:           info,
		store:          store,
		repo:           repo,
		sm:             sm,
		admin:          admin,
		registry:       registry,
		renderer:       renderer,
		metrics:        m,
		jobs:           jobs,
		protection:     protection,
		contacts:       contacts,
		visitors:       visitors,
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           a.routes(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", info.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// registerJobs adds the housekeeping jobs. The GeoIP reload job is only
// added when a database is loaded.
func registerJobs(s *scheduler.Scheduler, registry *editor.Registry, protection *middleware.LoginProtection,
	contacts *middleware.RateLimiter, visitors *visitor.Resolver, m *metrics.Metrics, idle time.Duration) error {
	if err := s.Add("workspace-sweep", "Drop editor workspaces idle for too long", "@every 5m", func() {
		registry.Sweep(idle)
		m.SetOpenWorkspaces(registry.Len())
	}); err != nil {
		return err
	}
	if err := s.Add("login-protection-cleanup", "Forget expired sign-in failures", "@every 1m", protection.Cleanup); err != nil {
		return err
	}
	if err := s.Add("rate-limit-cleanup", "Reset contact form rate limiters when too many clients are tracked", "@every 1m", contacts.Cleanup); err != nil {
		return err
	}
	if !visitors.Enabled() {
		return nil
	}
	return s.Add("geoip-reload", "Reopen the GeoIP database when the file changes", "@every 1h", func() {
		if err := visitors.Reload(); err != nil {
			slog.Warn("geoip reload failed", "category", "system", "error", err)
		}
	})
}
