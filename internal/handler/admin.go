// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/flybz/discoverair/internal/middleware"
	"github.com/flybz/discoverair/internal/model"
	"github.com/flybz/discoverair/internal/render"
	"github.com/flybz/discoverair/internal/store"
)

// AdminHandler handles the admin dashboard.
type AdminHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *sql.DB, renderer *render.Renderer) *AdminHandler {
	return &AdminHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// DashboardData holds data for the dashboard template.
type DashboardData struct {
	AircraftCount int64
	ActiveHero    *model.HeroContent
	RecentEvents  []model.Event
}

// Dashboard handles GET /admin - the admin landing page.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	ctx := r.Context()

	data := DashboardData{}

	if count, err := h.queries.CountAircraft(ctx); err != nil {
		slog.Error("failed to count aircraft", "error", err)
	} else {
		data.AircraftCount = count
	}

	if hero, err := h.queries.GetActiveHero(ctx); err == nil {
		data.ActiveHero = &hero
	} else if err != sql.ErrNoRows {
		slog.Error("failed to get active hero", "error", err)
	}

	if events, err := h.queries.ListEvents(ctx, store.ListEventsParams{Limit: 10}); err != nil {
		slog.Error("failed to list events", "error", err)
	} else {
		data.RecentEvents = events
	}

	if err := h.renderer.Render(w, r, "admin/dashboard", render.TemplateData{
		Title: "Dashboard",
		User:  user,
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}
