// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package notify

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/flybz/discoverair/internal/model"
)

// Message is a rendered booking notification ready for delivery.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

// BuildMessage renders the operator notification for one booking.
// tailNumber may be empty when the aircraft could not be resolved;
// submittedAt stamps the footer.
func BuildMessage(data model.BookingFormData, tailNumber string, submittedAt time.Time) Message {
	formattedTime := model.TimeSlotLabels[data.PreferredTime]
	if formattedTime == "" {
		formattedTime = data.PreferredTime
	}
	formattedExperience := model.ExperienceLabels[data.Experience]
	if formattedExperience == "" {
		formattedExperience = data.Experience
	}

	aircraft := data.Aircraft
	if tailNumber != "" {
		aircraft = fmt.Sprintf("%s (%s)", data.Aircraft, tailNumber)
	}

	formattedDate := data.PreferredDate
	if d, err := time.Parse("2006-01-02", data.PreferredDate); err == nil {
		formattedDate = d.Format("Monday, January 2, 2006")
	}

	return Message{
		Subject: fmt.Sprintf("New Discovery Flight Request - %s - %s", data.Aircraft, data.Name),
		HTML:    buildHTML(data, aircraft, formattedDate, formattedTime, formattedExperience, submittedAt),
		Text:    buildText(data, aircraft, formattedDate, formattedTime, formattedExperience, submittedAt),
	}
}

func buildHTML(data model.BookingFormData, aircraft, date, timeSlot, experience string, submittedAt time.Time) string {
	esc := html.EscapeString
	var sb strings.Builder

	sb.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; background: #f9f9f9; padding: 20px;">`)
	sb.WriteString(`<div style="background: white; border-radius: 8px; padding: 30px;">`)
	sb.WriteString(`<h1 style="color: #2563eb; margin: 0; font-size: 28px;">New Discovery Flight Request</h1>`)
	sb.WriteString(`<p style="color: #666;">Flight School Booking System</p>`)

	sb.WriteString(`<div style="background: #eff6ff; border-left: 4px solid #2563eb; padding: 20px; margin-bottom: 25px;">`)
	sb.WriteString(`<h2 style="color: #1e40af; margin: 0 0 15px 0;">Customer Information</h2>`)
	sb.WriteString(`<table style="width: 100%;">`)
	writeRow(&sb, "Name", esc(data.Name))
	writeRow(&sb, "Email", esc(data.Email))
	writeRow(&sb, "Phone", esc(data.Phone))
	writeRow(&sb, "Experience", esc(experience))
	sb.WriteString(`</table></div>`)

	sb.WriteString(`<div style="background: #f0f9ff; border-left: 4px solid #0ea5e9; padding: 20px; margin-bottom: 25px;">`)
	sb.WriteString(`<h2 style="color: #0c4a6e; margin: 0 0 15px 0;">Flight Details</h2>`)
	sb.WriteString(`<table style="width: 100%;">`)
	writeRow(&sb, "Aircraft", esc(aircraft))
	writeRow(&sb, "Date", esc(date))
	writeRow(&sb, "Time", esc(timeSlot))
	sb.WriteString(`</table></div>`)

	sb.WriteString(`<div style="background: #fef3c7; border-left: 4px solid #f59e0b; padding: 20px; margin-bottom: 25px;">`)
	sb.WriteString(`<h3 style="color: #92400e; margin: 0 0 10px 0;">Next Steps</h3>`)
	sb.WriteString(`<ul style="color: #78350f; margin: 0; padding-left: 20px;">`)
	sb.WriteString(`<li>Contact customer within 24 hours</li>`)
	sb.WriteString(`<li>Confirm aircraft availability for requested date/time</li>`)
	sb.WriteString(`<li>Schedule discovery flight and send confirmation</li>`)
	sb.WriteString(`</ul></div>`)

	sb.WriteString(`<div style="text-align: center; padding-top: 20px; border-top: 1px solid #e5e7eb;">`)
	sb.WriteString(`<p style="color: #6b7280; font-size: 14px;">This email was sent automatically from your Flight School website booking system.</p>`)
	sb.WriteString(`<p style="color: #9ca3af; font-size: 12px;">Submitted on `)
	sb.WriteString(esc(submittedAt.Format("Monday, January 2, 2006 3:04 PM MST")))
	sb.WriteString(`</p></div>`)

	sb.WriteString(`</div></div>`)
	return sb.String()
}

func writeRow(sb *strings.Builder, label, value string) {
	fmt.Fprintf(sb,
		`<tr><td style="padding: 8px 0; color: #374151; font-weight: 600; width: 120px;">%s:</td><td style="padding: 8px 0; color: #111827;">%s</td></tr>`,
		label, value)
}

func buildText(data model.BookingFormData, aircraft, date, timeSlot, experience string, submittedAt time.Time) string {
	var sb strings.Builder
	sb.WriteString("NEW DISCOVERY FLIGHT REQUEST\n\n")
	sb.WriteString("Customer Information:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", data.Name)
	fmt.Fprintf(&sb, "- Email: %s\n", data.Email)
	fmt.Fprintf(&sb, "- Phone: %s\n", data.Phone)
	fmt.Fprintf(&sb, "- Experience: %s\n\n", experience)
	sb.WriteString("Flight Details:\n")
	fmt.Fprintf(&sb, "- Aircraft: %s\n", aircraft)
	fmt.Fprintf(&sb, "- Date: %s\n", date)
	fmt.Fprintf(&sb, "- Time: %s\n\n", timeSlot)
	fmt.Fprintf(&sb, "Submitted: %s\n\n", submittedAt.Format("1/2/2006 3:04 PM"))
	sb.WriteString("Please contact the customer within 24 hours to confirm their discovery flight.\n")
	return sb.String()
}
