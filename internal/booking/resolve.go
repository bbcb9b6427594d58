// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package booking

import "github.com/flybz/discoverair/internal/model"

// ResolveTailNumber finds the registration identifier for the aircraft
// named in a booking. When the payload carries an aircraft id it wins;
// the display-name join remains as a fallback for payloads produced by
// older clients, where two aircraft sharing a name would mis-resolve.
// No match yields an empty string and the booking proceeds without an
// identifier.
func ResolveTailNumber(fleet []model.Aircraft, data model.BookingFormData) string {
	if data.AircraftID > 0 {
		for _, a := range fleet {
			if a.ID == data.AircraftID {
				return a.TailNumber
			}
		}
	}
	for _, a := range fleet {
		if a.Name == data.Aircraft {
			return a.TailNumber
		}
	}
	return ""
}
