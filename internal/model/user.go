// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// User roles. Admins may manage content; viewers may sign in but hold
// no admin capability (the access-denied state of the dashboard gate).
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// User is a staff account. The admin capability is the combination of
// Role and IsActive, so access can be revoked without deleting the
// account.
type User struct {
	ID           int64        `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Never expose in JSON
	Name         string       `json:"name"`
	Role         string       `json:"role"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	LastLoginAt  sql.NullTime `json:"last_login_at,omitempty"`
}

// IsAdmin reports whether the user holds the active admin capability.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin && u.IsActive
}
