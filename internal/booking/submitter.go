// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package booking

import (
	"context"
	"log/slog"

	"github.com/flybz/discoverair/internal/model"
)

// Notifier delivers a booking notification to the operator.
type Notifier interface {
	SendBooking(ctx context.Context, data model.BookingFormData, tailNumber string) error
}

// Submitter bridges a validated booking to the notification channel.
type Submitter struct {
	notifier Notifier
}

// NewSubmitter returns a Submitter delivering through notifier.
func NewSubmitter(notifier Notifier) *Submitter {
	return &Submitter{notifier: notifier}
}

// Submit resolves the aircraft identifier against fleet and forwards
// the booking. Delivery failures are logged and swallowed: the booking
// intent was already expressed, staff follow-up is manual, and the
// visitor must never see an email-infrastructure error. This is a
// deliberate contract, so Submit never returns an error.
func (s *Submitter) Submit(ctx context.Context, fleet []model.Aircraft, data model.BookingFormData) {
	tailNumber := ResolveTailNumber(fleet, data)

	defer func() {
		if p := recover(); p != nil {
			slog.Error("booking notification panicked",
				"category", model.EventCategoryBooking,
				"aircraft", data.Aircraft,
				"panic", p,
			)
		}
	}()

	if err := s.notifier.SendBooking(ctx, data, tailNumber); err != nil {
		slog.Error("booking notification delivery failed",
			"category", model.EventCategoryBooking,
			"aircraft", data.Aircraft,
			"tail_number", tailNumber,
			"error", err,
		)
	}
}
