// Package discord provides a simple client for delivering notifications to
// Discord-compatible webhook endpoints.
//
// It only knows how to build and POST webhook payloads; delivery outcome
// bookkeeping lives with the caller.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client represents a webhook client used to send notifications.
type Client struct {
	client *http.Client // HTTP client used to make requests
}

// NewClient creates a new webhook Client. The timeout bounds a single
// delivery attempt so a hung endpoint cannot stall the caller indefinitely.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		client: &http.Client{Timeout: timeout},
	}
}

// Payload is the message body accepted by Discord-style webhook endpoints.
type Payload struct {
	Content string  `json:"content,omitempty"` // plain text, including mentions
	Embeds  []Embed `json:"embeds,omitempty"`
}

// Embed is a rich content block within a payload.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"` // RFC 3339
}

// EmbedField is a single name/value pair within an embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Send posts the payload as JSON to the given webhook URL.
//
// It returns an error if the request fails or the endpoint responds with a
// non-2xx status.
func (c *Client) Send(ctx context.Context, url string, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook error: %s", resp.Status)
	}

	return nil
}

// FormatDuration renders a second count as "1h 1m 1s". Leading zero units are
// omitted; once a larger unit appears, smaller units are always shown.
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "0s"
	}

	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
