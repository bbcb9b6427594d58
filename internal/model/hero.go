// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// HeroContent is one revision of the homepage hero banner. At most one
// record is active at a time; activating a record deactivates all
// others (enforced at write time, not by a database constraint).
type HeroContent struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Subtitle           string    `json:"subtitle"`
	ButtonText         string    `json:"button_text"`
	BackgroundImageURL string    `json:"background_image_url"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
