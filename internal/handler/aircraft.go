// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/flybz/discoverair/internal/imaging"
	"github.com/flybz/discoverair/internal/middleware"
	"github.com/flybz/discoverair/internal/model"
	"github.com/flybz/discoverair/internal/render"
	"github.com/flybz/discoverair/internal/store"
)

// AircraftHandler handles fleet management routes.
type AircraftHandler struct {
	queries   *store.Queries
	renderer  *render.Renderer
	processor *imaging.Processor
	sanitizer *bluemonday.Policy
}

// NewAircraftHandler creates a new AircraftHandler.
func NewAircraftHandler(db *sql.DB, renderer *render.Renderer, processor *imaging.Processor) *AircraftHandler {
	return &AircraftHandler{
		queries:   store.New(db),
		renderer:  renderer,
		processor: processor,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// AircraftListData holds data for the aircraft list template.
type AircraftListData struct {
	Fleet []model.Aircraft
}

// AircraftFormData holds data for the aircraft form template.
type AircraftFormData struct {
	Aircraft   *model.Aircraft
	Errors     map[string]string
	FormValues map[string]string
	IsEdit     bool
}

// List handles GET /admin/aircraft - displays the fleet, inactive included.
func (h *AircraftHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)

	fleet, err := h.queries.ListAircraft(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list aircraft", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/aircraft_list", render.TemplateData{
		Title: "Aircraft",
		User:  user,
		Data:  AircraftListData{Fleet: fleet},
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// NewForm handles GET /admin/aircraft/new - displays the create form.
func (h *AircraftHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)

	if err := h.renderer.Render(w, r, "admin/aircraft_form", render.TemplateData{
		Title: "New Aircraft",
		User:  user,
		Data: AircraftFormData{
			Errors:     make(map[string]string),
			FormValues: make(map[string]string),
		},
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// aircraftForm is the parsed and validated aircraft form.
type aircraftForm struct {
	Name        string
	Model       string
	TailNumber  string
	Price       float64
	Capacity    string
	Avionics    string
	Description string
	IsActive    bool
	Errors      map[string]string
	Values      map[string]string
}

// parseAircraftForm validates the submitted fields. The description may
// carry markup from the admin editor, so it goes through the UGC
// sanitizer before storage.
func (h *AircraftHandler) parseAircraftForm(r *http.Request) aircraftForm {
	form := aircraftForm{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Model:       strings.TrimSpace(r.PostFormValue("model")),
		TailNumber:  strings.TrimSpace(r.PostFormValue("tail_number")),
		Capacity:    strings.TrimSpace(r.PostFormValue("capacity")),
		Avionics:    strings.TrimSpace(r.PostFormValue("avionics")),
		Description: h.sanitizer.Sanitize(r.PostFormValue("description")),
		IsActive:    r.PostFormValue("is_active") == "on",
		Errors:      make(map[string]string),
	}

	form.Values = map[string]string{
		"name":        form.Name,
		"model":       form.Model,
		"tail_number": form.TailNumber,
		"price":       r.PostFormValue("price"),
		"capacity":    form.Capacity,
		"avionics":    form.Avionics,
		"description": form.Description,
	}

	if form.Name == "" {
		form.Errors["name"] = "Name is required"
	}
	if form.TailNumber == "" {
		form.Errors["tail_number"] = "Tail number is required"
	}
	priceStr := strings.TrimSpace(r.PostFormValue("price"))
	if priceStr == "" {
		form.Errors["price"] = "Price is required"
	} else if price, err := strconv.ParseFloat(priceStr, 64); err != nil || price < 0 {
		form.Errors["price"] = "Price must be a non-negative number"
	} else {
		form.Price = price
	}

	return form
}

// processUpload handles an optional aircraft photo in the multipart
// form. Returns the stored card-variant URL, or "" when no file was
// attached.
func (h *AircraftHandler) processUpload(r *http.Request, form *aircraftForm) string {
	file, header, err := r.FormFile("image")
	if err != nil {
		if err != http.ErrMissingFile {
			form.Errors["image"] = "Could not read the uploaded image"
		}
		return ""
	}
	defer func() { _ = file.Close() }()

	result, err := h.processor.ProcessAircraftPhoto(file, header.Filename)
	if err != nil {
		slog.Error("aircraft photo processing failed",
			"category", model.EventCategoryContent, "error", err, "filename", header.Filename)
		form.Errors["image"] = "Unsupported or corrupt image file"
		return ""
	}
	return result.URL
}

// Create handles POST /admin/aircraft - creates an aircraft.
func (h *AircraftHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)

	if err := r.ParseMultipartForm(imaging.MaxUploadSize); err != nil {
		flashError(w, r, h.renderer, RouteAdminAircraft, "Invalid form data")
		return
	}

	form := h.parseAircraftForm(r)
	imageURL := h.processUpload(r, &form)

	if len(form.Errors) > 0 {
		h.rerenderAircraftForm(w, r, user, "New Aircraft", nil, form)
		return
	}

	maxOrder, err := h.queries.MaxAircraftDisplayOrder(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to get display order", "error", err)
		return
	}

	now := time.Now()
	created, err := h.queries.CreateAircraft(r.Context(), store.CreateAircraftParams{
		Name:         form.Name,
		Model:        form.Model,
		TailNumber:   form.TailNumber,
		Price:        form.Price,
		Capacity:     form.Capacity,
		Avionics:     form.Avionics,
		Description:  form.Description,
		ImageURL:     imageURL,
		IsActive:     form.IsActive,
		DisplayOrder: maxOrder + 1,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		logAndInternalError(w, "failed to create aircraft", "error", err)
		return
	}

	slog.Info("aircraft created",
		"category", model.EventCategoryContent,
		"aircraft_id", created.ID, "tail_number", created.TailNumber, "user_id", user.ID)

	flashSuccess(w, r, h.renderer, RouteAdminAircraft, "Aircraft created")
}

// EditForm handles GET /admin/aircraft/{id} - displays the edit form.
func (h *AircraftHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)

	id, ok := idParamOrRedirect(w, r, h.renderer, RouteAdminAircraft, "aircraft")
	if !ok {
		return
	}

	aircraft, ok := requireEntityWithRedirect(w, r, h.renderer, RouteAdminAircraft, "aircraft", id,
		func(id int64) (model.Aircraft, error) { return h.queries.GetAircraftByID(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.renderer.Render(w, r, "admin/aircraft_form", render.TemplateData{
		Title: "Edit Aircraft",
		User:  user,
		Data: AircraftFormData{
			Aircraft:   &aircraft,
			Errors:     make(map[string]string),
			FormValues: make(map[string]string),
			IsEdit:     true,
		},
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// Update handles POST /admin/aircraft/{id} - updates an aircraft.
func (h *AircraftHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)

	id, ok := idParamOrRedirect(w, r, h.renderer, RouteAdminAircraft, "aircraft")
	if !ok {
		return
	}

	existing, ok := requireEntityWithRedirect(w, r, h.renderer, RouteAdminAircraft, "aircraft", id,
		func(id int64) (model.Aircraft, error) { return h.queries.GetAircraftByID(r.Context(), id) })
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(imaging.MaxUploadSize); err != nil {
		flashError(w, r, h.renderer, RouteAdminAircraft, "Invalid form data")
		return
	}

	form := h.parseAircraftForm(r)
	imageURL := h.processUpload(r, &form)
	if imageURL == "" {
		imageURL = existing.ImageURL
	}

	if len(form.Errors) > 0 {
		h.rerenderAircraftForm(w, r, user, "Edit Aircraft", &existing, form)
		return
	}

	if err := h.queries.UpdateAircraft(r.Context(), store.UpdateAircraftParams{
		Name:         form.Name,
		Model:        form.Model,
		TailNumber:   form.TailNumber,
		Price:        form.Price,
		Capacity:     form.Capacity,
		Avionics:     form.Avionics,
		Description:  form.Description,
		ImageURL:     imageURL,
		IsActive:     form.IsActive,
		DisplayOrder: existing.DisplayOrder,
		UpdatedAt:    time.Now(),
		ID:           id,
	}); err != nil {
		logAndInternalError(w, "failed to update aircraft", "error", err, "aircraft_id", id)
		return
	}

	slog.Info("aircraft updated",
		"category", model.EventCategoryContent, "aircraft_id", id, "user_id", user.ID)

	flashSuccess(w, r, h.renderer, RouteAdminAircraft, "Aircraft updated")
}

// Toggle handles POST /admin/aircraft/{id}/toggle - flips the active flag.
func (h *AircraftHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)

	id, ok := idParamOrRedirect(w, r, h.renderer, RouteAdminAircraft, "aircraft")
	if !ok {
		return
	}

	aircraft, ok := requireEntityWithRedirect(w, r, h.renderer, RouteAdminAircraft, "aircraft", id,
		func(id int64) (model.Aircraft, error) { return h.queries.GetAircraftByID(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.queries.SetAircraftActive(r.Context(), store.SetAircraftActiveParams{
		IsActive:  !aircraft.IsActive,
		UpdatedAt: time.Now(),
		ID:        id,
	}); err != nil {
		logAndInternalError(w, "failed to toggle aircraft", "error", err, "aircraft_id", id)
		return
	}

	state := "deactivated"
	if !aircraft.IsActive {
		state = "activated"
	}
	slog.Info("aircraft "+state,
		"category", model.EventCategoryContent, "aircraft_id", id, "user_id", user.ID)

	flashSuccess(w, r, h.renderer, RouteAdminAircraft, "Aircraft "+state)
}

// Delete handles POST /admin/aircraft/{id}/delete - removes an aircraft.
func (h *AircraftHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)

	id, ok := idParamOrRedirect(w, r, h.renderer, RouteAdminAircraft, "aircraft")
	if !ok {
		return
	}

	if err := h.queries.DeleteAircraft(r.Context(), id); err != nil {
		logAndInternalError(w, "failed to delete aircraft", "error", err, "aircraft_id", id)
		return
	}

	slog.Info("aircraft deleted",
		"category", model.EventCategoryContent, "aircraft_id", id, "user_id", user.ID)

	flashSuccess(w, r, h.renderer, RouteAdminAircraft, "Aircraft deleted")
}

func (h *AircraftHandler) rerenderAircraftForm(w http.ResponseWriter, r *http.Request, user *model.User, title string, existing *model.Aircraft, form aircraftForm) {
	if err := h.renderer.Render(w, r, "admin/aircraft_form", render.TemplateData{
		Title: title,
		User:  user,
		Data: AircraftFormData{
			Aircraft:   existing,
			Errors:     form.Errors,
			FormValues: form.Values,
			IsEdit:     existing != nil,
		},
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}
