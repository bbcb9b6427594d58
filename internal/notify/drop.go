// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package notify

import (
	"context"
	"errors"
	"log/slog"

	"github.com/flybz/discoverair/internal/model"
)

// ErrNotConfigured is returned by DropClient.Send: there is no delivery
// channel to hand the message to.
var ErrNotConfigured = errors.New("notify: no API key configured")

// DropClient stands in for the Resend client when no API key is
// configured. Bookings taken through the HTML form are logged instead
// of delivered; the JSON function endpoint reports the missing
// configuration to its caller.
type DropClient struct{}

// SendBooking logs the booking and drops it.
func (DropClient) SendBooking(_ context.Context, data model.BookingFormData, tailNumber string) error {
	slog.Warn("booking notification dropped: notifications not configured",
		"category", model.EventCategoryBooking,
		"name", data.Name,
		"email", data.Email,
		"aircraft", data.Aircraft,
		"tail_number", tailNumber,
		"preferred_date", data.PreferredDate,
	)
	return nil
}

// Send reports the missing configuration.
func (DropClient) Send(_ context.Context, _ Message) (string, error) {
	return "", ErrNotConfigured
}
