// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/flybz/discoverair/internal/auth"
	"github.com/flybz/discoverair/internal/model"
)

// Default admin credentials. The password must be changed after first
// login on any real deployment.
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "changeme"
	DefaultAdminName     = "Administrator"
)

// Seed creates initial data in the database: the default admin user,
// the active hero banner, the contact settings, and a starter fleet.
// It is a no-op when the admin user already exists.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	// Check if admin user already exists
	_, err := queries.GetUserByEmail(ctx, DefaultAdminEmail)
	if err == nil {
		slog.Info("admin user already exists, skipping seed")
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	passwordHash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user, err := queries.CreateUser(ctx, CreateUserParams{
		Email:        DefaultAdminEmail,
		PasswordHash: passwordHash,
		Name:         DefaultAdminName,
		Role:         model.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created default admin user",
		"id", user.ID,
		"email", user.Email,
		"password", DefaultAdminPassword,
	)

	if err := seedHero(ctx, db, queries, now); err != nil {
		return err
	}
	if err := seedSettings(ctx, queries, now); err != nil {
		return err
	}
	if err := seedAircraft(ctx, queries, now); err != nil {
		return err
	}
	return nil
}

func seedHero(ctx context.Context, db *sql.DB, queries *Queries, now time.Time) error {
	hero, err := queries.CreateHero(ctx, CreateHeroParams{
		Title:              "Discover Aviation!",
		Subtitle:           "Experience breathtaking aerial views of the Palos Verdes Peninsula and the Los Angeles coastline on an unforgettable discovery flight.",
		ButtonText:         "Choose Your Aircraft",
		BackgroundImageURL: "/static/img/hero-coastline.svg",
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if err != nil {
		return fmt.Errorf("creating hero content: %w", err)
	}
	if err := ActivateHero(ctx, db, hero.ID); err != nil {
		return fmt.Errorf("activating hero content: %w", err)
	}
	return nil
}

func seedSettings(ctx context.Context, queries *Queries, now time.Time) error {
	defaults := []struct {
		key, value, description string
	}{
		{model.SettingContactPhone, "(310) 754-5676", "Phone number shown in the contact section"},
		{model.SettingContactEmail, "ted@flybz.net", "Email address shown in the contact section"},
		{model.SettingLocationName, "Zamperini Field, Torrance, California", "Departure airfield name"},
		{model.SettingLocationLink, "https://maps.google.com/?q=Zamperini+Field+Torrance+CA", "Map link for the departure airfield"},
		{model.SettingBookingIncludes, "Pre-flight briefing, hands-on flying time with a certified flight instructor, and a post-flight debrief. Cameras welcome!", "Text under the booking form describing what a flight includes"},
	}
	for _, d := range defaults {
		err := queries.UpsertSetting(ctx, UpsertSettingParams{
			Key:         d.key,
			Value:       d.value,
			Description: d.description,
			UpdatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("seeding setting %s: %w", d.key, err)
		}
	}
	return nil
}

func seedAircraft(ctx context.Context, queries *Queries, now time.Time) error {
	fleet := []CreateAircraftParams{
		{
			Name:         "Cessna 172 Skyhawk",
			Model:        "Cessna 172S",
			TailNumber:   "N738CP",
			Price:        199,
			Capacity:     "3 passenger seats",
			Avionics:     "Garmin G1000",
			Description:  "The world's most popular trainer. Stable, forgiving, and perfect for a first flight.",
			ImageURL:     "/static/img/cessna-172.svg",
			IsActive:     true,
			DisplayOrder: 1,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			Name:         "Piper Cherokee",
			Model:        "Piper PA-28-181 Archer",
			TailNumber:   "N8116J",
			Price:        189,
			Capacity:     "3 passenger seats",
			Avionics:     "Dual Garmin G5",
			Description:  "A smooth low-wing cruiser with great visibility over the coastline.",
			ImageURL:     "/static/img/piper-cherokee.svg",
			IsActive:     true,
			DisplayOrder: 2,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			Name:         "Diamond DA40",
			Model:        "Diamond DA40 NG",
			TailNumber:   "N128DS",
			Price:        249,
			Capacity:     "3 passenger seats",
			Avionics:     "Garmin G1000 NXi",
			Description:  "A modern composite aircraft with a glass cockpit and stick controls.",
			ImageURL:     "/static/img/diamond-da40.svg",
			IsActive:     true,
			DisplayOrder: 3,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	for _, a := range fleet {
		if _, err := queries.CreateAircraft(ctx, a); err != nil {
			return fmt.Errorf("seeding aircraft %s: %w", a.TailNumber, err)
		}
	}
	return nil
}
