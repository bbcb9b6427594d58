// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/flybz/discoverair/internal/booking"
	"github.com/flybz/discoverair/internal/config"
	"github.com/flybz/discoverair/internal/handler"
	"github.com/flybz/discoverair/internal/imaging"
	"github.com/flybz/discoverair/internal/logging"
	"github.com/flybz/discoverair/internal/middleware"
	"github.com/flybz/discoverair/internal/model"
	"github.com/flybz/discoverair/internal/notify"
	"github.com/flybz/discoverair/internal/render"
	"github.com/flybz/discoverair/internal/session"
	"github.com/flybz/discoverair/internal/store"
	"github.com/flybz/discoverair/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
)

const requestTimeout = 30 * time.Second

// bookingRPS limits public booking submissions per client IP.
const (
	bookingRPS   = 0.5
	bookingBurst = 3
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	doSeed := flag.Bool("seed", false, "seed default admin, hero, settings and fleet, then continue")
	flag.Parse()

	// Load .env if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(textHandler))

	slog.Info("starting discoverair", "version", appVersion, "commit", appGitCommit, "env", cfg.Env)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.MkdirAll(cfg.UploadsDir, 0755); err != nil {
		return fmt.Errorf("creating uploads directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	ctx := context.Background()
	if *doSeed || cfg.DoSeed {
		if err := store.Seed(ctx, db); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
	}

	// Upgrade the logger so warnings and errors land in the events table.
	slog.SetDefault(slog.New(logging.NewEventLogHandler(textHandler, db)))

	sessionManager := session.New(db, cfg.IsDevelopment())

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	legalFS, err := fs.Sub(web.Content, "content")
	if err != nil {
		return fmt.Errorf("content fs: %w", err)
	}
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("static fs: %w", err)
	}

	var notifier booking.Notifier
	var sender handler.MessageSender
	if cfg.NotificationsEnabled() {
		client := notify.NewResendClient(cfg.ResendAPIURL, cfg.ResendAPIKey, cfg.EmailFrom, cfg.EmailTo)
		notifier = client
		sender = client
	} else {
		slog.Warn("booking notifications disabled: no Resend API key configured",
			"category", model.EventCategorySystem)
		drop := notify.DropClient{}
		notifier = drop
		sender = drop
	}
	submitter := booking.NewSubmitter(notifier)

	processor := imaging.NewProcessor(cfg.UploadsDir)

	// Nightly event-log prune.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@daily", func() {
		cutoff := time.Now().AddDate(0, 0, -cfg.EventRetentionDays)
		deleted, err := store.New(db).DeleteEventsBefore(context.Background(), cutoff)
		if err != nil {
			slog.Error("event prune failed", "category", model.EventCategorySystem, "error", err)
			return
		}
		if deleted > 0 {
			slog.Info("pruned old events", "deleted", deleted, "cutoff", cutoff.Format(time.DateOnly))
		}
	}); err != nil {
		return fmt.Errorf("scheduling event prune: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := buildRouter(routerDeps{
		cfg:            cfg,
		db:             db,
		sessionManager: sessionManager,
		renderer:       renderer,
		submitter:      submitter,
		sender:         sender,
		processor:      processor,
		legalFS:        legalFS,
		staticFS:       staticFS,
	})

	addr := fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: requestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}

type routerDeps struct {
	cfg            *config.Config
	db             *sql.DB
	sessionManager *scs.SessionManager
	renderer       *render.Renderer
	submitter      *booking.Submitter
	sender         handler.MessageSender
	processor      *imaging.Processor
	legalFS        fs.FS
	staticFS       fs.FS
}

func buildRouter(deps routerDeps) chi.Router {
	cfg := deps.cfg
	sm := deps.sessionManager

	frontendHandler := handler.NewFrontendHandler(deps.db, deps.renderer, sm, deps.submitter, deps.legalFS)
	bookingFuncHandler := handler.NewBookingFuncHandler(deps.db, deps.sender)
	authHandler := handler.NewAuthHandler(deps.db, deps.renderer, sm)
	adminHandler := handler.NewAdminHandler(deps.db, deps.renderer)
	aircraftHandler := handler.NewAircraftHandler(deps.db, deps.renderer, deps.processor)
	heroHandler := handler.NewHeroHandler(deps.db, deps.renderer)
	settingsHandler := handler.NewSettingsHandler(deps.db, deps.renderer)
	eventsHandler := handler.NewEventsHandler(deps.db, deps.renderer)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(middleware.RequestPath)
	r.Use(middleware.StripTrailingSlash)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.SkipCSRF(handler.RouteSendBookingEmail))
	r.Use(middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment())))

	// Static assets and uploaded aircraft photos, outside sessions.
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(deps.staticFS))))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))

	// Booking function endpoint: CORS JSON API, no sessions, no CSRF.
	r.Route(handler.RouteSendBookingEmail, func(r chi.Router) {
		r.Use(middleware.IPRateLimit(bookingRPS, bookingBurst))
		r.Options("/", bookingFuncHandler.Options)
		r.Post("/", bookingFuncHandler.Send)
	})

	// Public site.
	r.Group(func(r chi.Router) {
		r.Use(sm.LoadAndSave)

		r.Get(handler.RouteRoot, frontendHandler.Home)
		r.Get(handler.RoutePrivacyPolicy, frontendHandler.PrivacyPolicy)
		r.Get(handler.RouteTermsAndConditions, frontendHandler.TermsAndConditions)

		r.Group(func(r chi.Router) {
			r.Use(middleware.IPRateLimit(bookingRPS, bookingBurst))
			r.Post(handler.RouteBook, frontendHandler.SubmitBooking)
		})
	})

	// Admin panel.
	r.Route(handler.RouteAdmin, func(r chi.Router) {
		r.Use(sm.LoadAndSave)

		r.Get(handler.RouteLogin, authHandler.LoginForm)
		r.Post(handler.RouteLogin, authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(sm))
			r.Use(middleware.LoadUser(sm, deps.db))
			r.Use(middleware.RequireAdmin())

			r.Get(handler.RouteRoot, adminHandler.Dashboard)
			r.Post(handler.RouteLogout, authHandler.Logout)

			r.Get(handler.RouteAircraft, aircraftHandler.List)
			r.Get(handler.RouteAircraft+handler.RouteSuffixNew, aircraftHandler.NewForm)
			r.Post(handler.RouteAircraft, aircraftHandler.Create)
			r.Get(handler.RouteAircraft+handler.RouteParamID, aircraftHandler.EditForm)
			r.Post(handler.RouteAircraft+handler.RouteParamID, aircraftHandler.Update)
			r.Post(handler.RouteAircraft+handler.RouteParamID+handler.RouteSuffixToggle, aircraftHandler.Toggle)
			r.Post(handler.RouteAircraft+handler.RouteParamID+handler.RouteSuffixDelete, aircraftHandler.Delete)

			r.Get(handler.RouteHero, heroHandler.List)
			r.Get(handler.RouteHero+handler.RouteSuffixNew, heroHandler.NewForm)
			r.Post(handler.RouteHero, heroHandler.Create)
			r.Get(handler.RouteHero+handler.RouteParamID, heroHandler.EditForm)
			r.Post(handler.RouteHero+handler.RouteParamID, heroHandler.Update)
			r.Post(handler.RouteHero+handler.RouteParamID+handler.RouteSuffixActivate, heroHandler.Activate)
			r.Post(handler.RouteHero+handler.RouteParamID+handler.RouteSuffixDelete, heroHandler.Delete)

			r.Get(handler.RouteSettings, settingsHandler.List)
			r.Post(handler.RouteSettings, settingsHandler.Update)

			r.Get(handler.RouteEvents, eventsHandler.List)
		})
	})

	return r
}
