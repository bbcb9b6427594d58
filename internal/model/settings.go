// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Well-known site setting keys.
const (
	SettingContactPhone    = "contact_phone"
	SettingContactEmail    = "contact_email"
	SettingLocationName    = "location_name"
	SettingLocationLink    = "location_link"
	SettingBookingIncludes = "booking_form_includes_text"
)

// SiteSetting is a single key/value site setting with a free-text
// description shown in the admin panel.
type SiteSetting struct {
	ID          int64     `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SettingsMap is the key→value view of all site settings handed to
// templates and the booking pipeline.
type SettingsMap map[string]string

// Get returns the value for key, or fallback when the key is absent or
// empty.
func (m SettingsMap) Get(key, fallback string) string {
	if v, ok := m[key]; ok && v != "" {
		return v
	}
	return fallback
}
