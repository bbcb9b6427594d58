// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/flybz/discoverair/internal/middleware"
	"github.com/flybz/discoverair/internal/model"
	"github.com/flybz/discoverair/internal/render"
	"github.com/flybz/discoverair/internal/store"
)

// EventsPerPage is the number of events displayed per page.
const EventsPerPage = 50

// EventsHandler handles the event log admin page.
type EventsHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(db *sql.DB, renderer *render.Renderer) *EventsHandler {
	return &EventsHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// EventsListData holds data for the events template.
type EventsListData struct {
	Events         []model.Event
	Categories     []string
	CategoryFilter string
	CurrentPage    int
	TotalPages     int
	TotalCount     int64
	HasPrev        bool
	HasNext        bool
	PrevPage       int
	NextPage       int
}

// List handles GET /admin/events - paginated event log with an optional
// category filter.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)

	category := r.URL.Query().Get("category")
	if !model.IsValidEventCategory(category) {
		category = ""
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	total, err := h.queries.CountEvents(r.Context(), category)
	if err != nil {
		logAndInternalError(w, "failed to count events", "error", err)
		return
	}

	totalPages := int((total + EventsPerPage - 1) / EventsPerPage)
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	events, err := h.queries.ListEvents(r.Context(), store.ListEventsParams{
		Category: category,
		Limit:    EventsPerPage,
		Offset:   int64((page - 1) * EventsPerPage),
	})
	if err != nil {
		logAndInternalError(w, "failed to list events", "error", err)
		return
	}

	data := EventsListData{
		Events:         events,
		Categories:     model.EventCategories,
		CategoryFilter: category,
		CurrentPage:    page,
		TotalPages:     totalPages,
		TotalCount:     total,
		HasPrev:        page > 1,
		HasNext:        page < totalPages,
		PrevPage:       page - 1,
		NextPage:       page + 1,
	}

	if err := h.renderer.Render(w, r, "admin/events", render.TemplateData{
		Title: "Event Log",
		User:  user,
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}
