// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

// Package booking implements the discovery-flight booking form: field
// validation, the phone input mask, tail-number resolution, and the
// submit state machine.
package booking

import (
	"regexp"
	"strings"
	"time"

	"github.com/flybz/discoverair/internal/model"
)

var (
	// local@domain.tld with no embedded whitespace and at least one
	// dot after the @.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Applied to the digits-only form of the phone number, with an
	// optional leading +.
	phoneRe = regexp.MustCompile(`^[+]?[1-9][0-9]{0,15}$`)

	nonDigitRe = regexp.MustCompile(`[^0-9]`)
)

// Errors maps a form field name to its validation message. An empty
// map means the form is valid.
type Errors map[string]string

// ValidEmail reports whether email has the expected shape.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidPhone reports whether phone contains a plausible number once
// formatting characters are stripped.
func ValidPhone(phone string) bool {
	return phoneRe.MatchString(stripNonDigits(phone))
}

// ValidDate reports whether date (YYYY-MM-DD) is today or later,
// relative to now's local midnight. Unparseable input is rejected.
func ValidDate(date string, now time.Time) bool {
	d, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return false
	}
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !d.Before(midnight)
}

// Validate runs the full rule set against data and returns one message
// per failing field.
func Validate(data model.BookingFormData, now time.Time) Errors {
	errs := Errors{}

	if strings.TrimSpace(data.Name) == "" {
		errs["name"] = "Name is required"
	}

	if strings.TrimSpace(data.Email) == "" {
		errs["email"] = "Email is required"
	} else if !ValidEmail(data.Email) {
		errs["email"] = "Please enter a valid email address"
	}

	if strings.TrimSpace(data.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if !ValidPhone(data.Phone) {
		errs["phone"] = "Please enter a valid phone number"
	}

	if strings.TrimSpace(data.Aircraft) == "" {
		errs["aircraft"] = "Please select an aircraft"
	}

	if data.PreferredDate == "" {
		errs["preferredDate"] = "Preferred date is required"
	} else if !ValidDate(data.PreferredDate, now) {
		errs["preferredDate"] = "Please select a future date"
	}

	if data.PreferredTime == "" {
		errs["preferredTime"] = "Preferred time is required"
	} else if !model.IsValidTimeSlot(data.PreferredTime) {
		errs["preferredTime"] = "Please select a valid time slot"
	}

	if data.Experience == "" {
		errs["experience"] = "Experience level is required"
	} else if !model.IsValidExperience(data.Experience) {
		errs["experience"] = "Please select a valid experience level"
	}

	return errs
}

func stripNonDigits(s string) string {
	return nonDigitRe.ReplaceAllString(s, "")
}
