// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content loads the CMS-managed site content for the public
// pages. Every load is a one-shot fetch: on any store error the
// hard-coded fallback value is substituted and the error logged, so
// the marketing page never renders broken. No retry, no cache.
package content

import (
	"context"
	"log/slog"

	"github.com/flybz/discoverair/internal/model"
	"github.com/flybz/discoverair/internal/store"
)

// FallbackHero is shown when hero content cannot be loaded.
var FallbackHero = model.HeroContent{
	Title:      "Discover Aviation!",
	Subtitle:   "Experience breathtaking aerial views of the Palos Verdes Peninsula and the Los Angeles coastline on an unforgettable discovery flight.",
	ButtonText: "Choose Your Aircraft",
	IsActive:   true,
}

// FallbackSettings is used when site settings cannot be loaded.
var FallbackSettings = model.SettingsMap{
	model.SettingContactPhone:    "(310) 754-5676",
	model.SettingContactEmail:    "ted@flybz.net",
	model.SettingLocationName:    "Zamperini Field, Torrance, California",
	model.SettingLocationLink:    "https://maps.google.com/?q=Zamperini+Field+Torrance+CA",
	model.SettingBookingIncludes: "Pre-flight briefing, hands-on flying time with a certified flight instructor, and a post-flight debrief. Cameras welcome!",
}

// FallbackAircraft is shown when the fleet cannot be loaded.
var FallbackAircraft = []model.Aircraft{
	{
		ID:           -1,
		Name:         "Cessna 172 Skyhawk",
		Model:        "Cessna 172S",
		TailNumber:   "N738CP",
		Price:        199,
		Capacity:     "3 passenger seats",
		Avionics:     "Garmin G1000",
		Description:  "The world's most popular trainer. Stable, forgiving, and perfect for a first flight.",
		IsActive:     true,
		DisplayOrder: 1,
	},
}

// Loader fetches public site content with fallback substitution.
type Loader struct {
	queries *store.Queries
}

// NewLoader returns a Loader reading through queries.
func NewLoader(queries *store.Queries) *Loader {
	return &Loader{queries: queries}
}

// Aircraft returns the active fleet ordered for display. The second
// return reports whether the fallback was substituted.
func (l *Loader) Aircraft(ctx context.Context) ([]model.Aircraft, bool) {
	fleet, err := l.queries.ListActiveAircraft(ctx)
	if err != nil {
		slog.Error("loading aircraft list failed, using fallback",
			"category", model.EventCategoryContent, "error", err)
		return FallbackAircraft, true
	}
	return fleet, false
}

// Hero returns the active hero banner, or the fallback when none is
// active or the load fails.
func (l *Loader) Hero(ctx context.Context) (model.HeroContent, bool) {
	hero, err := l.queries.GetActiveHero(ctx)
	if err != nil {
		slog.Error("loading hero content failed, using fallback",
			"category", model.EventCategoryContent, "error", err)
		return FallbackHero, true
	}
	return hero, false
}

// Settings returns the site settings map. Missing keys fall back
// individually through model.SettingsMap.Get; a failed load falls back
// wholesale.
func (l *Loader) Settings(ctx context.Context) (model.SettingsMap, bool) {
	settings, err := l.queries.SettingsMap(ctx)
	if err != nil {
		slog.Error("loading site settings failed, using fallback",
			"category", model.EventCategoryContent, "error", err)
		return FallbackSettings, true
	}
	return settings, false
}
