// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/flybz/discoverair/internal/booking"
	"github.com/flybz/discoverair/internal/model"
	"github.com/flybz/discoverair/internal/notify"
	"github.com/flybz/discoverair/internal/store"
)

// MessageSender delivers a composed notification and returns the
// provider's message id.
type MessageSender interface {
	Send(ctx context.Context, msg notify.Message) (string, error)
}

// BookingFuncHandler exposes the booking notification as a standalone
// JSON endpoint with permissive CORS, for clients that post the booking
// payload directly instead of going through the HTML form.
type BookingFuncHandler struct {
	queries *store.Queries
	sender  MessageSender
}

// NewBookingFuncHandler creates a new BookingFuncHandler.
func NewBookingFuncHandler(db *sql.DB, sender MessageSender) *BookingFuncHandler {
	return &BookingFuncHandler{
		queries: store.New(db),
		sender:  sender,
	}
}

// bookingFuncRequest is the wire shape of the POST body.
type bookingFuncRequest struct {
	BookingData model.BookingFormData `json:"bookingData"`
}

// corsHeaders sets the permissive CORS headers this endpoint answers with.
func corsHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
}

// Options handles the CORS preflight.
func (h *BookingFuncHandler) Options(w http.ResponseWriter, r *http.Request) {
	corsHeaders(w)
	_, _ = w.Write([]byte("ok"))
}

// Send handles POST /functions/send-booking-email.
func (h *BookingFuncHandler) Send(w http.ResponseWriter, r *http.Request) {
	corsHeaders(w)

	var req bookingFuncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	data := req.BookingData

	if data.Name == "" || data.Email == "" || data.Aircraft == "" {
		writeJSONError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	// Tail-number lookup is best effort; an unknown aircraft still books.
	fleet, err := h.queries.ListActiveAircraft(r.Context())
	if err != nil {
		slog.Error("failed to list aircraft for booking email",
			"category", model.EventCategoryBooking, "error", err)
	}
	tailNumber := booking.ResolveTailNumber(fleet, data)

	msg := notify.BuildMessage(data, tailNumber, time.Now())

	id, err := h.sender.Send(r.Context(), msg)
	if err != nil {
		slog.Error("booking email send failed",
			"category", model.EventCategoryBooking, "error", err, "aircraft", data.Aircraft)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "Failed to send booking email",
			"details": err.Error(),
		})
		return
	}

	slog.Info("booking email sent",
		"category", model.EventCategoryBooking, "message_id", id, "aircraft", data.Aircraft)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      id,
	})
}
