// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

// Package notify delivers booking notifications to the operator
// through the Resend transactional-email API.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/flybz/discoverair/internal/model"
)

const (
	RequestTimeout = 30 * time.Second // HTTP request timeout
	MaxResponseLen = 10 * 1024        // Maximum response body to read back (10KB)
	UserAgent      = "DiscoverAir/1.0"
)

// httpClient is the shared HTTP client with appropriate timeouts.
var httpClient = &http.Client{
	Timeout: RequestTimeout,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	},
}

// ResendClient sends booking notifications through the Resend API.
type ResendClient struct {
	apiURL string
	apiKey string
	from   string
	to     string
	client *http.Client
}

// NewResendClient returns a client posting to apiURL (normally
// https://api.resend.com) with the given bearer key, sending mail from
// from to the operator address to.
func NewResendClient(apiURL, apiKey, from, to string) *ResendClient {
	return &ResendClient{
		apiURL: apiURL,
		apiKey: apiKey,
		from:   from,
		to:     to,
		client: httpClient,
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// SendBooking renders and delivers the operator notification for one
// booking, implementing booking.Notifier.
func (c *ResendClient) SendBooking(ctx context.Context, data model.BookingFormData, tailNumber string) error {
	msg := BuildMessage(data, tailNumber, time.Now())
	_, err := c.Send(ctx, msg)
	return err
}

// Send posts one rendered message and returns the provider's message id.
func (c *ResendClient) Send(ctx context.Context, msg Message) (string, error) {
	body, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{c.to},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending email: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseLen))
	if err != nil {
		return "", fmt.Errorf("reading email response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("email API returned %d: %s", resp.StatusCode, respBody)
	}

	var parsed sendResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decoding email response: %w", err)
	}

	slog.Info("booking notification sent",
		"category", model.EventCategoryBooking,
		"message_id", parsed.ID,
	)
	return parsed.ID, nil
}
