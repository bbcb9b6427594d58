// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Time slots a visitor can request for a discovery flight.
const (
	TimeSlotMorning   = "morning"
	TimeSlotAfternoon = "afternoon"
	TimeSlotEvening   = "evening"
)

// TimeSlots lists the valid preferred-time values in display order.
var TimeSlots = []string{TimeSlotMorning, TimeSlotAfternoon, TimeSlotEvening}

// TimeSlotLabels maps slot values to the operator-facing labels used in
// notification emails.
var TimeSlotLabels = map[string]string{
	TimeSlotMorning:   "Morning (8:00 AM - 12:00 PM)",
	TimeSlotAfternoon: "Afternoon (12:00 PM - 5:00 PM)",
	TimeSlotEvening:   "Evening (5:00 PM - 8:00 PM)",
}

// Experience levels a visitor can report.
const (
	ExperienceNone     = "none"
	ExperienceSome     = "some"
	ExperienceStudent  = "student"
	ExperienceLicensed = "licensed"
)

// ExperienceLevels lists the valid experience values in display order.
var ExperienceLevels = []string{ExperienceNone, ExperienceSome, ExperienceStudent, ExperienceLicensed}

// ExperienceLabels maps experience values to operator-facing labels.
var ExperienceLabels = map[string]string{
	ExperienceNone:     "No flying experience",
	ExperienceSome:     "Some flying experience",
	ExperienceStudent:  "Current student pilot",
	ExperienceLicensed: "Licensed pilot",
}

// BookingFormData is one booking inquiry. It is transient: it lives for
// the duration of a single submission, is forwarded to the notification
// channel, and is never persisted.
//
// Aircraft carries the display name for the public payload contract;
// AircraftID is the id-based reference the server-rendered form posts.
type BookingFormData struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Aircraft      string `json:"aircraft"`
	AircraftID    int64  `json:"aircraftId,omitempty"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Experience    string `json:"experience"`
}

// IsValidTimeSlot reports whether s is a recognized time slot.
func IsValidTimeSlot(s string) bool {
	_, ok := TimeSlotLabels[s]
	return ok
}

// IsValidExperience reports whether s is a recognized experience level.
func IsValidExperience(s string) bool {
	_, ok := ExperienceLabels[s]
	return ok
}
