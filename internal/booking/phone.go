// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package booking

// FormatPhone applies the live phone mask to value, producing
// `(XXX) XXX-XXXX` progressively as digits arrive. previous is the
// field's value before this edit: when the digit count decreased the
// caller is deleting, and the mask is applied more loosely near the
// group boundaries so punctuation does not reappear under the cursor.
// Empty input clears the field entirely.
func FormatPhone(value, previous string) string {
	digits := stripNonDigits(value)
	prevDigits := stripNonDigits(previous)

	deleting := len(digits) < len(prevDigits)

	// Cap at 10 digits
	if len(digits) > 10 {
		digits = digits[:10]
	}

	if len(digits) == 0 {
		return ""
	}

	if deleting {
		if len(digits) <= 3 {
			return digits
		}
		if len(digits) <= 6 {
			return "(" + digits[:3] + ") " + digits[3:]
		}
	}

	switch {
	case len(digits) >= 6:
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	case len(digits) >= 3:
		return "(" + digits[:3] + ") " + digits[3:]
	default:
		return digits
	}
}
