// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/flybz/discoverair/internal/middleware"
	"github.com/flybz/discoverair/internal/model"
	"github.com/flybz/discoverair/internal/render"
	"github.com/flybz/discoverair/internal/store"
)

// SettingsHandler handles site settings routes.
type SettingsHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(db *sql.DB, renderer *render.Renderer) *SettingsHandler {
	return &SettingsHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// SettingsData holds data for the settings template.
type SettingsData struct {
	Settings []model.SiteSetting
}

// List handles GET /admin/settings - displays all settings in one form.
func (h *SettingsHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)

	settings, err := h.queries.ListSettings(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list settings", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/settings", render.TemplateData{
		Title: "Site Settings",
		User:  user,
		Data:  SettingsData{Settings: settings},
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// Update handles POST /admin/settings - upserts every submitted
// setting_<key> field. Unknown keys are accepted; the public site only
// reads the ones it knows about.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)

	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminSettings) {
		return
	}

	now := time.Now()
	updated := 0
	for field := range r.PostForm {
		key, ok := strings.CutPrefix(field, "setting_")
		if !ok || key == "" {
			continue
		}
		if err := h.queries.UpsertSetting(r.Context(), store.UpsertSettingParams{
			Key:       key,
			Value:     strings.TrimSpace(r.PostFormValue(field)),
			UpdatedAt: now,
		}); err != nil {
			logAndInternalError(w, "failed to save setting", "error", err, "key", key)
			return
		}
		updated++
	}

	if updated == 0 {
		flashError(w, r, h.renderer, RouteAdminSettings, "No settings submitted")
		return
	}

	slog.Info("site settings updated",
		"category", model.EventCategoryContent, "count", updated, "user_id", user.ID)

	flashSuccess(w, r, h.renderer, RouteAdminSettings, "Settings saved")
}
