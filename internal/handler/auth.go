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

	"github.com/alexedwards/scs/v2"

	"github.com/flybz/discoverair/internal/auth"
	"github.com/flybz/discoverair/internal/middleware"
	"github.com/flybz/discoverair/internal/model"
	"github.com/flybz/discoverair/internal/render"
	"github.com/flybz/discoverair/internal/store"
)

// AuthHandler handles authentication routes for the admin panel.
type AuthHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *AuthHandler {
	return &AuthHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
	}
}

// LoginForm handles GET /admin/login - displays the login form.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	// Already authenticated users go straight to the dashboard.
	if h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyUserID) != 0 {
		http.Redirect(w, r, RouteAdmin, http.StatusSeeOther)
		return
	}

	if err := h.renderer.Render(w, r, "auth/login", render.TemplateData{
		Title: "Sign In",
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// Login handles POST /admin/login - processes the login form.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminLogin) {
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	if email == "" || password == "" {
		flashError(w, r, h.renderer, RouteAdminLogin, "Email and password are required")
		return
	}

	user, err := h.queries.GetUserByEmail(r.Context(), email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("failed to look up user", "error", err)
		}
		// Same message for unknown email and wrong password.
		h.failLogin(w, r, email)
		return
	}

	valid, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		slog.Error("password check error", "error", err)
		h.failLogin(w, r, email)
		return
	}
	if !valid {
		h.failLogin(w, r, email)
		return
	}

	if !user.IsActive {
		slog.Warn("login attempt for deactivated account",
			"category", model.EventCategoryAuth, "email", email)
		flashError(w, r, h.renderer, RouteAdminLogin, "This account has been deactivated")
		return
	}

	// Re-hash when the stored hash predates the current Argon2 parameters.
	if auth.NeedsRehash(user.PasswordHash) {
		if newHash, err := auth.HashPassword(password); err == nil {
			if err := h.queries.UpdateUserPassword(r.Context(), user.ID, newHash, time.Now()); err != nil {
				slog.Error("failed to update password hash", "error", err, "user_id", user.ID)
			}
		}
	}

	if err := h.queries.UpdateUserLastLogin(r.Context(), user.ID, time.Now()); err != nil {
		slog.Error("failed to update last login", "error", err, "user_id", user.ID)
	}

	// Renew the session token on privilege change to prevent fixation.
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "failed to renew session token", "error", err)
		return
	}
	h.sessionManager.Put(r.Context(), middleware.SessionKeyUserID, user.ID)

	slog.Info("user logged in",
		"category", model.EventCategoryAuth, "user_id", user.ID, "email", user.Email)

	flashSuccess(w, r, h.renderer, RouteAdmin, "Welcome back, "+user.Name)
}

// failLogin records a failed attempt and redirects back to the form.
func (h *AuthHandler) failLogin(w http.ResponseWriter, r *http.Request, email string) {
	slog.Warn("failed login attempt",
		"category", model.EventCategoryAuth, "email", email, "remote_addr", r.RemoteAddr)
	flashError(w, r, h.renderer, RouteAdminLogin, "Invalid email or password")
}

// Logout handles POST /admin/logout - destroys the session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyUserID)

	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("failed to destroy session", "error", err, "user_id", userID)
	}

	if userID != 0 {
		slog.Info("user logged out", "category", model.EventCategoryAuth, "user_id", userID)
	}

	http.Redirect(w, r, RouteAdminLogin, http.StatusSeeOther)
}
