// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/flybz/discoverair/internal/middleware"
	"github.com/flybz/discoverair/internal/model"
	"github.com/flybz/discoverair/internal/render"
	"github.com/flybz/discoverair/internal/store"
)

// HeroHandler handles hero banner management routes.
type HeroHandler struct {
	db       *sql.DB
	queries  *store.Queries
	renderer *render.Renderer
}

// NewHeroHandler creates a new HeroHandler. The raw db handle is kept
// because activation runs its own transaction.
func NewHeroHandler(db *sql.DB, renderer *render.Renderer) *HeroHandler {
	return &HeroHandler{
		db:       db,
		queries:  store.New(db),
		renderer: renderer,
	}
}

// HeroListData holds data for the hero list template.
type HeroListData struct {
	Revisions []model.HeroContent
}

// HeroFormData holds data for the hero form template.
type HeroFormData struct {
	Hero       *model.HeroContent
	Errors     map[string]string
	FormValues map[string]string
	IsEdit     bool
}

// List handles GET /admin/hero - displays all hero revisions.
func (h *HeroHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)

	revisions, err := h.queries.ListHeroContent(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list hero content", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/hero_list", render.TemplateData{
		Title: "Hero Banner",
		User:  user,
		Data:  HeroListData{Revisions: revisions},
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// NewForm handles GET /admin/hero/new - displays the create form.
func (h *HeroHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)

	if err := h.renderer.Render(w, r, "admin/hero_form", render.TemplateData{
		Title: "New Hero Revision",
		User:  user,
		Data: HeroFormData{
			Errors:     make(map[string]string),
			FormValues: make(map[string]string),
		},
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// heroForm is the parsed and validated hero form.
type heroForm struct {
	Title              string
	Subtitle           string
	ButtonText         string
	BackgroundImageURL string
	Activate           bool
	Errors             map[string]string
	Values             map[string]string
}

func parseHeroForm(r *http.Request) heroForm {
	form := heroForm{
		Title:              strings.TrimSpace(r.PostFormValue("title")),
		Subtitle:           strings.TrimSpace(r.PostFormValue("subtitle")),
		ButtonText:         strings.TrimSpace(r.PostFormValue("button_text")),
		BackgroundImageURL: strings.TrimSpace(r.PostFormValue("background_image_url")),
		Activate:           r.PostFormValue("activate") == "on",
		Errors:             make(map[string]string),
	}

	form.Values = map[string]string{
		"title":                form.Title,
		"subtitle":             form.Subtitle,
		"button_text":          form.ButtonText,
		"background_image_url": form.BackgroundImageURL,
	}

	if form.Title == "" {
		form.Errors["title"] = "Title is required"
	}
	if form.ButtonText == "" {
		form.Errors["button_text"] = "Button text is required"
	}

	return form
}

// Create handles POST /admin/hero - creates a hero revision. The new
// revision starts inactive; activation always goes through the
// deactivate-all transaction so a single banner stays live.
func (h *HeroHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)

	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminHero) {
		return
	}

	form := parseHeroForm(r)
	if len(form.Errors) > 0 {
		h.rerenderHeroForm(w, r, user, "New Hero Revision", nil, form)
		return
	}

	now := time.Now()
	created, err := h.queries.CreateHero(r.Context(), store.CreateHeroParams{
		Title:              form.Title,
		Subtitle:           form.Subtitle,
		ButtonText:         form.ButtonText,
		BackgroundImageURL: form.BackgroundImageURL,
		IsActive:           false,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if err != nil {
		logAndInternalError(w, "failed to create hero content", "error", err)
		return
	}

	if form.Activate {
		if err := store.ActivateHero(r.Context(), h.db, created.ID); err != nil {
			logAndInternalError(w, "failed to activate hero content", "error", err, "hero_id", created.ID)
			return
		}
	}

	slog.Info("hero revision created",
		"category", model.EventCategoryContent,
		"hero_id", created.ID, "activated", form.Activate, "user_id", user.ID)

	flashSuccess(w, r, h.renderer, RouteAdminHero, "Hero revision created")
}

// EditForm handles GET /admin/hero/{id} - displays the edit form.
func (h *HeroHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)

	id, ok := idParamOrRedirect(w, r, h.renderer, RouteAdminHero, "hero")
	if !ok {
		return
	}

	hero, ok := requireEntityWithRedirect(w, r, h.renderer, RouteAdminHero, "hero", id,
		func(id int64) (model.HeroContent, error) { return h.queries.GetHeroByID(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.renderer.Render(w, r, "admin/hero_form", render.TemplateData{
		Title: "Edit Hero Revision",
		User:  user,
		Data: HeroFormData{
			Hero:       &hero,
			Errors:     make(map[string]string),
			FormValues: make(map[string]string),
			IsEdit:     true,
		},
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// Update handles POST /admin/hero/{id} - updates a hero revision. The
// active flag is untouched here; use Activate to switch banners.
func (h *HeroHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)

	id, ok := idParamOrRedirect(w, r, h.renderer, RouteAdminHero, "hero")
	if !ok {
		return
	}

	hero, ok := requireEntityWithRedirect(w, r, h.renderer, RouteAdminHero, "hero", id,
		func(id int64) (model.HeroContent, error) { return h.queries.GetHeroByID(r.Context(), id) })
	if !ok {
		return
	}

	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminHero) {
		return
	}

	form := parseHeroForm(r)
	if len(form.Errors) > 0 {
		h.rerenderHeroForm(w, r, user, "Edit Hero Revision", &hero, form)
		return
	}

	if err := h.queries.UpdateHero(r.Context(), store.UpdateHeroParams{
		Title:              form.Title,
		Subtitle:           form.Subtitle,
		ButtonText:         form.ButtonText,
		BackgroundImageURL: form.BackgroundImageURL,
		UpdatedAt:          time.Now(),
		ID:                 id,
	}); err != nil {
		logAndInternalError(w, "failed to update hero content", "error", err, "hero_id", id)
		return
	}

	slog.Info("hero revision updated",
		"category", model.EventCategoryContent, "hero_id", id, "user_id", user.ID)

	flashSuccess(w, r, h.renderer, RouteAdminHero, "Hero revision updated")
}

// Activate handles POST /admin/hero/{id}/activate - makes this revision
// the live banner and deactivates every other one atomically.
func (h *HeroHandler) Activate(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)

	id, ok := idParamOrRedirect(w, r, h.renderer, RouteAdminHero, "hero")
	if !ok {
		return
	}

	if err := store.ActivateHero(r.Context(), h.db, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			flashError(w, r, h.renderer, RouteAdminHero, "hero not found")
			return
		}
		logAndInternalError(w, "failed to activate hero content", "error", err, "hero_id", id)
		return
	}

	slog.Info("hero revision activated",
		"category", model.EventCategoryContent, "hero_id", id, "user_id", user.ID)

	flashSuccess(w, r, h.renderer, RouteAdminHero, "Hero revision activated")
}

// Delete handles POST /admin/hero/{id}/delete - removes a hero revision.
func (h *HeroHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)

	id, ok := idParamOrRedirect(w, r, h.renderer, RouteAdminHero, "hero")
	if !ok {
		return
	}

	hero, ok := requireEntityWithRedirect(w, r, h.renderer, RouteAdminHero, "hero", id,
		func(id int64) (model.HeroContent, error) { return h.queries.GetHeroByID(r.Context(), id) })
	if !ok {
		return
	}

	if hero.IsActive {
		flashError(w, r, h.renderer, RouteAdminHero, "Cannot delete the active hero revision")
		return
	}

	if err := h.queries.DeleteHero(r.Context(), id); err != nil {
		logAndInternalError(w, "failed to delete hero content", "error", err, "hero_id", id)
		return
	}

	slog.Info("hero revision deleted",
		"category", model.EventCategoryContent, "hero_id", id, "user_id", user.ID)

	flashSuccess(w, r, h.renderer, RouteAdminHero, "Hero revision deleted")
}

func (h *HeroHandler) rerenderHeroForm(w http.ResponseWriter, r *http.Request, user *model.User, title string, existing *model.HeroContent, form heroForm) {
	if err := h.renderer.Render(w, r, "admin/hero_form", render.TemplateData{
		Title: title,
		User:  user,
		Data: HeroFormData{
			Hero:       existing,
			Errors:     form.Errors,
			FormValues: form.Values,
			IsEdit:     existing != nil,
		},
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}
