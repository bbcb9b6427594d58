// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session configures the admin session manager. Sessions only
// exist for the admin panel; public booking visitors never get one
// persisted beyond the CSRF/flash plumbing.
package session

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// Lifetime is how long an admin session stays valid without renewal.
const Lifetime = 24 * time.Hour

// New returns a session manager backed by the sessions table in db.
// Cookies are HttpOnly and SameSite=Lax; the Secure flag is dropped in
// development so plain-HTTP localhost logins work.
func New(db *sql.DB, isDev bool) *scs.SessionManager {
	sm := scs.New()
	sm.Store = sqlite3store.New(db)

	sm.Lifetime = Lifetime
	sm.Cookie.Name = "da_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev

	return sm
}
