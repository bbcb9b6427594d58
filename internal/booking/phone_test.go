// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package booking

import (
	"strings"
	"testing"
)

func TestFormatPhone_ProgressiveEntry(t *testing.T) {
	tests := []struct {
		value    string
		previous string
		want     string
	}{
		{"5", "", "5"},
		{"55", "5", "55"},
		{"555", "55", "(555) "},
		{"(555) 1", "(555) ", "(555) 1"},
		{"(555) 12", "(555) 1", "(555) 12"},
		{"(555) 123", "(555) 12", "(555) 123-"},
		{"(555) 123-4", "(555) 123-", "(555) 123-4"},
		{"(555) 123-4567", "(555) 123-456", "(555) 123-4567"},
	}
	for _, tt := range tests {
		if got := FormatPhone(tt.value, tt.previous); got != tt.want {
			t.Errorf("FormatPhone(%q, %q) = %q, want %q", tt.value, tt.previous, got, tt.want)
		}
	}
}

func TestFormatPhone_FullEntry(t *testing.T) {
	if got := FormatPhone("5551234567", ""); got != "(555) 123-4567" {
		t.Errorf("FormatPhone(5551234567) = %q, want (555) 123-4567", got)
	}
}

func TestFormatPhone_CapsAtTenDigits(t *testing.T) {
	if got := FormatPhone("55512345678999", ""); got != "(555) 123-4567" {
		t.Errorf("FormatPhone over-length = %q, want (555) 123-4567", got)
	}
}

func TestFormatPhone_DeletionReachesEmpty(t *testing.T) {
	// Deleting one character at a time from a full number must never
	// produce unbalanced parentheses and must reach the empty string.
	value := "(555) 123-4567"
	for len(value) > 0 {
		next := FormatPhone(value[:len(value)-1], value)

		open := strings.Count(next, "(")
		closed := strings.Count(next, ")")
		if open != closed {
			t.Fatalf("unbalanced parentheses in %q (from %q)", next, value)
		}
		if len(stripNonDigits(next)) >= len(stripNonDigits(value)) && value != "" && next != "" {
			t.Fatalf("deletion from %q did not shrink: %q", value, next)
		}
		value = next
	}
}

func TestFormatPhone_DeletionLooseFormatting(t *testing.T) {
	// Deleting down through a group boundary drops the punctuation
	// instead of reinserting it.
	if got := FormatPhone("(555) 12", "(555) 123"); got != "(555) 12" {
		t.Errorf("FormatPhone delete to 5 digits = %q, want (555) 12", got)
	}
	if got := FormatPhone("(55", "(555) "); got != "55" {
		t.Errorf("FormatPhone delete to 2 digits = %q, want 55", got)
	}
	if got := FormatPhone("555", "(555) 1"); got != "555" {
		t.Errorf("FormatPhone delete to 3 digits = %q, want 555", got)
	}
}

func TestFormatPhone_EmptyInputClears(t *testing.T) {
	if got := FormatPhone("", "(555) 123-4567"); got != "" {
		t.Errorf("FormatPhone empty input = %q, want empty", got)
	}
}
