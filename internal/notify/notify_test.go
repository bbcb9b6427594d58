// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/flybz/discoverair/internal/model"
)

func sampleBooking() model.BookingFormData {
	return model.BookingFormData{
		Name:          "Jane Pilot",
		Email:         "jane@example.com",
		Phone:         "(555) 123-4567",
		Aircraft:      "Cessna 172 Skyhawk",
		PreferredDate: "2026-09-04",
		PreferredTime: model.TimeSlotMorning,
		Experience:    model.ExperienceStudent,
	}
}

func TestBuildMessage(t *testing.T) {
	at := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	msg := BuildMessage(sampleBooking(), "N738CP", at)

	if msg.Subject != "New Discovery Flight Request - Cessna 172 Skyhawk - Jane Pilot" {
		t.Errorf("Subject = %q", msg.Subject)
	}

	for _, want := range []string{
		"Jane Pilot",
		"jane@example.com",
		"(555) 123-4567",
		"Cessna 172 Skyhawk (N738CP)",
		"Morning (8:00 AM - 12:00 PM)",
		"Current student pilot",
		"Friday, September 4, 2026",
		"Contact customer within 24 hours",
	} {
		if !strings.Contains(msg.HTML, want) {
			t.Errorf("HTML body missing %q", want)
		}
	}

	for _, want := range []string{
		"NEW DISCOVERY FLIGHT REQUEST",
		"- Name: Jane Pilot",
		"- Aircraft: Cessna 172 Skyhawk (N738CP)",
		"- Time: Morning (8:00 AM - 12:00 PM)",
		"contact the customer within 24 hours",
	} {
		if !strings.Contains(msg.Text, want) {
			t.Errorf("text body missing %q", want)
		}
	}
}

func TestBuildMessage_NoTailNumber(t *testing.T) {
	msg := BuildMessage(sampleBooking(), "", time.Now())
	if strings.Contains(msg.HTML, "()") {
		t.Error("HTML body contains empty tail-number parentheses")
	}
	if !strings.Contains(msg.HTML, "Cessna 172 Skyhawk") {
		t.Error("HTML body missing aircraft name")
	}
}

func TestBuildMessage_UnknownEnumsPassThrough(t *testing.T) {
	data := sampleBooking()
	data.PreferredTime = "dawn patrol"
	data.Experience = "test pilot"

	msg := BuildMessage(data, "", time.Now())
	if !strings.Contains(msg.Text, "- Time: dawn patrol") {
		t.Error("unknown time slot was not passed through verbatim")
	}
	if !strings.Contains(msg.Text, "- Experience: test pilot") {
		t.Error("unknown experience level was not passed through verbatim")
	}
}

func TestBuildMessage_EscapesHTML(t *testing.T) {
	data := sampleBooking()
	data.Name = `<script>alert("x")</script>`

	msg := BuildMessage(data, "", time.Now())
	if strings.Contains(msg.HTML, "<script>") {
		t.Error("HTML body contains unescaped user input")
	}
}

func TestResendClient_Send(t *testing.T) {
	var gotAuth string
	var gotReq sendRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/emails" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"re_123"}`))
	}))
	defer srv.Close()

	c := NewResendClient(srv.URL, "re_test_key", "bookings@flybz.net", "ted@flybz.net")
	id, err := c.Send(context.Background(), Message{Subject: "s", HTML: "<p>h</p>", Text: "t"})
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}

	if id != "re_123" {
		t.Errorf("id = %q, want re_123", id)
	}
	if gotAuth != "Bearer re_test_key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReq.From != "bookings@flybz.net" {
		t.Errorf("From = %q", gotReq.From)
	}
	if len(gotReq.To) != 1 || gotReq.To[0] != "ted@flybz.net" {
		t.Errorf("To = %v", gotReq.To)
	}
}

func TestResendClient_SendAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	c := NewResendClient(srv.URL, "re_test_key", "bad", "ted@flybz.net")
	if _, err := c.Send(context.Background(), Message{}); err == nil {
		t.Fatal("Send succeeded on API error response")
	}
}

func TestResendClient_SendBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req sendRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if !strings.Contains(req.Subject, "Jane Pilot") {
			t.Errorf("Subject = %q, want booking subject", req.Subject)
		}
		_, _ = w.Write([]byte(`{"id":"re_456"}`))
	}))
	defer srv.Close()

	c := NewResendClient(srv.URL, "re_test_key", "bookings@flybz.net", "ted@flybz.net")
	if err := c.SendBooking(context.Background(), sampleBooking(), "N738CP"); err != nil {
		t.Fatalf("SendBooking error: %v", err)
	}
}
