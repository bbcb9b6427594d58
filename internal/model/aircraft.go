// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models and types used throughout the
// application including Aircraft, HeroContent, SiteSetting, User and
// the transient booking types.
package model

import "time"

// Aircraft represents one aircraft in the discovery-flight fleet.
// Inactive aircraft are kept in storage but excluded from the public
// listing.
type Aircraft struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Model        string    `json:"model"`
	TailNumber   string    `json:"tail_number"`
	Price        float64   `json:"price"`
	Capacity     string    `json:"capacity"`
	Avionics     string    `json:"avionics"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int64     `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
