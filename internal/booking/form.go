// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/flybz/discoverair/internal/model"
)

// SubmitFunc delivers a validated booking. Form makes at most one call
// per accepted submission.
type SubmitFunc func(ctx context.Context, data model.BookingFormData) error

// Form holds the booking form state: field values, per-field errors,
// and the re-entrancy guard. It is not safe for concurrent use; each
// request builds its own Form.
type Form struct {
	Data       model.BookingFormData
	Errors     Errors
	submitting bool

	now func() time.Time
}

// NewForm returns an empty booking form.
func NewForm() *Form {
	return &Form{
		Errors: Errors{},
		now:    time.Now,
	}
}

// Submitting reports whether a submission is currently in flight.
func (f *Form) Submitting() bool {
	return f.submitting
}

// SetField updates one field by its form name. The phone field is run
// through the live mask; any existing error on the edited field is
// cleared immediately, without re-running full validation.
func (f *Form) SetField(name, value string) {
	switch name {
	case "name":
		f.Data.Name = value
	case "email":
		f.Data.Email = value
	case "phone":
		if value == "" {
			f.Data.Phone = ""
		} else {
			f.Data.Phone = FormatPhone(value, f.Data.Phone)
		}
	case "aircraft":
		f.Data.Aircraft = value
	case "preferredDate":
		f.Data.PreferredDate = value
	case "preferredTime":
		f.Data.PreferredTime = value
	case "experience":
		f.Data.Experience = value
	default:
		return
	}
	delete(f.Errors, name)
}

// Validate runs the full rule set and stores the result on the form.
func (f *Form) Validate() Errors {
	f.Errors = Validate(f.Data, f.now())
	return f.Errors
}

// Reset returns the form to its initial empty state.
func (f *Form) Reset() {
	f.Data = model.BookingFormData{}
	f.Errors = Errors{}
	f.submitting = false
}

// Submit runs full validation and, when every field passes, invokes
// onSubmit exactly once with the form data. On success the form is
// reset; on failure the entered data is retained so the visitor can
// retry. A submission already in flight is rejected. The return value
// reports whether the submission succeeded.
func (f *Form) Submit(ctx context.Context, onSubmit SubmitFunc) bool {
	if errs := f.Validate(); len(errs) > 0 {
		return false
	}
	if f.submitting {
		return false
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	if err := onSubmit(ctx, f.Data); err != nil {
		slog.Error("booking form submission failed", "category", model.EventCategoryBooking, "error", err)
		return false
	}

	f.Reset()
	return true
}
