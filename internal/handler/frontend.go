// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"context"
	"database/sql"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alexedwards/scs/v2"
	"github.com/yuin/goldmark"

	"github.com/flybz/discoverair/internal/booking"
	"github.com/flybz/discoverair/internal/content"
	"github.com/flybz/discoverair/internal/model"
	"github.com/flybz/discoverair/internal/render"
	"github.com/flybz/discoverair/internal/store"
)

// FrontendHandler serves the public marketing site and the booking form.
type FrontendHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	loader         *content.Loader
	submitter      *booking.Submitter
	legalFS        fs.FS
}

// NewFrontendHandler creates a new FrontendHandler. legalFS holds the
// embedded Markdown sources for the legal pages.
func NewFrontendHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, submitter *booking.Submitter, legalFS fs.FS) *FrontendHandler {
	queries := store.New(db)
	return &FrontendHandler{
		queries:        queries,
		renderer:       renderer,
		sessionManager: sm,
		loader:         content.NewLoader(queries),
		submitter:      submitter,
		legalFS:        legalFS,
	}
}

// HomeData holds data for the home page template.
type HomeData struct {
	Hero      model.HeroContent
	Fleet     []model.Aircraft
	Settings  model.SettingsMap
	Form      *booking.Form
	TimeSlots []timeSlotOption
	Levels    []experienceOption
}

type timeSlotOption struct {
	Value string
	Label string
}

type experienceOption struct {
	Value string
	Label string
}

// Home handles GET / - the single marketing page with the booking form.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderHome(w, r, booking.NewForm())
}

// renderHome assembles the home page around the given form state so the
// booking POST can re-render with errors and entered values intact.
func (h *FrontendHandler) renderHome(w http.ResponseWriter, r *http.Request, form *booking.Form) {
	ctx := r.Context()

	hero, _ := h.loader.Hero(ctx)
	fleet, _ := h.loader.Aircraft(ctx)
	settings, _ := h.loader.Settings(ctx)

	data := HomeData{
		Hero:      hero,
		Fleet:     fleet,
		Settings:  settings,
		Form:      form,
		TimeSlots: timeSlotOptions(),
		Levels:    experienceOptions(),
	}

	if err := h.renderer.Render(w, r, "site/home", render.TemplateData{
		Title: hero.Title,
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

func timeSlotOptions() []timeSlotOption {
	opts := make([]timeSlotOption, 0, len(model.TimeSlots))
	for _, slot := range model.TimeSlots {
		opts = append(opts, timeSlotOption{Value: slot, Label: model.TimeSlotLabels[slot]})
	}
	return opts
}

func experienceOptions() []experienceOption {
	opts := make([]experienceOption, 0, len(model.ExperienceLevels))
	for _, lvl := range model.ExperienceLevels {
		opts = append(opts, experienceOption{Value: lvl, Label: model.ExperienceLabels[lvl]})
	}
	return opts
}

// SubmitBooking handles POST /book - validates the booking form and,
// on success, relays the notification and renders the confirmation
// page. Validation failures re-render the home page with the entered
// values and per-field errors.
func (h *FrontendHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, RouteRoot, "Invalid form data")
		return
	}

	// Honeypot: bots fill every field. Pretend success without relaying.
	if r.PostFormValue("website") != "" {
		slog.Warn("booking honeypot tripped",
			"category", model.EventCategoryBooking, "remote_addr", r.RemoteAddr)
		h.renderSuccess(w, r, model.BookingFormData{})
		return
	}

	form := booking.NewForm()
	for _, field := range []string{"name", "email", "phone", "aircraft", "preferredDate", "preferredTime", "experience"} {
		form.SetField(field, r.PostFormValue(field))
	}
	if id, err := strconv.ParseInt(r.PostFormValue("aircraftId"), 10, 64); err == nil {
		form.Data.AircraftID = id
	}

	fleet, _ := h.loader.Aircraft(r.Context())

	// The select posts the aircraft id; recover the display name for
	// validation and the notification email.
	if form.Data.Aircraft == "" && form.Data.AircraftID > 0 {
		for _, a := range fleet {
			if a.ID == form.Data.AircraftID {
				form.SetField("aircraft", a.Name)
				break
			}
		}
	}

	submitted := form.Data

	ok := form.Submit(r.Context(), func(ctx context.Context, data model.BookingFormData) error {
		h.submitter.Submit(ctx, fleet, data)
		return nil
	})
	if !ok {
		h.renderHome(w, r, form)
		return
	}

	slog.Info("booking request received",
		"category", model.EventCategoryBooking,
		"aircraft", submitted.Aircraft, "preferred_date", submitted.PreferredDate)

	h.renderSuccess(w, r, submitted)
}

// SuccessData holds data for the booking confirmation template.
type SuccessData struct {
	Booking  model.BookingFormData
	Settings model.SettingsMap
}

func (h *FrontendHandler) renderSuccess(w http.ResponseWriter, r *http.Request, submitted model.BookingFormData) {
	settings, _ := h.loader.Settings(r.Context())

	if err := h.renderer.Render(w, r, "site/success", render.TemplateData{
		Title: "Request Received",
		Data:  SuccessData{Booking: submitted, Settings: settings},
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// LegalData holds data for the legal page template.
type LegalData struct {
	Content template.HTML
}

// PrivacyPolicy handles GET /privacy-policy.
func (h *FrontendHandler) PrivacyPolicy(w http.ResponseWriter, r *http.Request) {
	h.renderLegal(w, r, "Privacy Policy", "legal/privacy-policy.md")
}

// TermsAndConditions handles GET /terms-and-conditions.
func (h *FrontendHandler) TermsAndConditions(w http.ResponseWriter, r *http.Request) {
	h.renderLegal(w, r, "Terms and Conditions", "legal/terms-and-conditions.md")
}

func (h *FrontendHandler) renderLegal(w http.ResponseWriter, r *http.Request, title, path string) {
	source, err := fs.ReadFile(h.legalFS, path)
	if err != nil {
		logAndInternalError(w, "failed to read legal document", "error", err, "path", path)
		return
	}

	var buf bytes.Buffer
	if err := goldmark.Convert(source, &buf); err != nil {
		logAndInternalError(w, "failed to render legal document", "error", err, "path", path)
		return
	}

	if err := h.renderer.Render(w, r, "site/legal", render.TemplateData{
		Title: title,
		Data:  LegalData{Content: template.HTML(buf.String())}, //nolint:gosec // trusted embedded markdown
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}
