// Package mail delivers rendered digests through the SendGrid v3 API.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"GazeteBot/internal/domain"
	"GazeteBot/internal/ports"
)

const (
	defaultEndpoint = "https://api.sendgrid.com/v3/mail/send"
	senderName      = "Resmî Gazete Botu"
)

// SendGrid implements ports.Mailer against the transactional mail/send API.
type SendGrid struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
}

var _ ports.Mailer = (*SendGrid)(nil)

// NewSendGrid registers the API key and sender address.
func NewSendGrid(apiKey, from string) *SendGrid {
	return &SendGrid{
		apiKey:   apiKey,
		from:     from,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 20 * time.Second},
	}
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type personalization struct {
	To []address `json:"to"`
}

type mailPayload struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

// Send posts the digest; any transport or API failure surfaces as
// domain.ErrDelivery.
func (s *SendGrid) Send(ctx context.Context, msg ports.Message) error {
	if s.apiKey == "" || s.from == "" {
		return fmt.Errorf("%w: sendgrid mailer misconfigured", domain.ErrDelivery)
	}
	if msg.To == "" {
		return fmt.Errorf("%w: no recipient", domain.ErrDelivery)
	}

	// The plain part must precede the HTML part per the API contract.
	body, err := json.Marshal(mailPayload{
		Personalizations: []personalization{{To: []address{{Email: msg.To}}}},
		From:             address{Email: s.from, Name: senderName},
		Subject:          msg.Subject,
		Content: []content{
			{Type: "text/plain", Value: msg.TextBody},
			{Type: "text/html", Value: msg.HTMLBody},
		},
	})
	if err != nil {
		return fmt.Errorf("marshal mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDelivery, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: sendgrid %s: %s", domain.ErrDelivery, resp.Status, strings.TrimSpace(string(detail)))
	}

	return nil
}
