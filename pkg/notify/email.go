// Package notify delivers outgoing email through a Resend-compatible HTTP
// API. Delivery is best-effort, callers decide what a failure means.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/umputun/resolved/pkg/config"
)

// EmailSender sends plain-text email via an HTTP mail API
type EmailSender struct {
	client   *http.Client
	endpoint string
	apiKey   string
	from     string
}

// NewEmailSender creates a sender from email configuration
func NewEmailSender(cfg config.EmailConfig) *EmailSender {
	return &EmailSender{
		client:   &http.Client{Timeout: cfg.Timeout},
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		from:     cfg.From,
	}
}

// emailRequest is the wire format of the mail API
type emailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// Send delivers a single message. Any transport or provider failure is
// returned as an error, there are no retries here.
func (s *EmailSender) Send(ctx context.Context, to, subject, text string) error {
	body, err := json.Marshal(emailRequest{From: s.from, To: []string{to}, Subject: subject, Text: text})
	if err != nil {
		return fmt.Errorf("marshal email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512)) // provider error detail, best effort
		return fmt.Errorf("mail api returned %d: %s", resp.StatusCode, string(msg))
	}

	return nil
}
