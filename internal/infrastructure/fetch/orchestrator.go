package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"GazeteBot/internal/domain"
	"GazeteBot/internal/ports"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"

var (
	errEmptyBody   = errors.New("empty body")
	errRelaySanity = errors.New("relay content failed sanity check")
)

type statusError struct {
	status string
}

func (e *statusError) Error() string {
	return "unexpected status " + e.status
}

// Orchestrator walks the tier chain until one candidate yields usable
// content. It owns a single HTTP session for its lifetime; one orchestrator
// must not serve overlapping Fetch calls from multiple goroutines.
type Orchestrator struct {
	client *http.Client
	tiers  []Tier
	logger *slog.Logger
	sleep  func(time.Duration)
}

var _ ports.Source = (*Orchestrator)(nil)

// NewOrchestrator wires the HTTP session and tier chain; nil arguments fall
// back to a 45-second-timeout client and DefaultTiers.
func NewOrchestrator(client *http.Client, tiers []Tier, logger *slog.Logger) *Orchestrator {
	if client == nil {
		client = &http.Client{Timeout: 45 * time.Second}
	}
	if tiers == nil {
		tiers = DefaultTiers()
	}
	return &Orchestrator{client: client, tiers: tiers, logger: logger, sleep: time.Sleep}
}

// Fetch tries tiers strictly in order, candidates in order within each tier,
// and retries per candidate. Only total exhaustion is an error.
func (o *Orchestrator) Fetch(ctx context.Context) (domain.RawContent, error) {
	for _, tier := range o.tiers {
		for _, endpoint := range tier.Endpoints {
			body, err := o.attempt(ctx, tier, endpoint)
			if err != nil {
				o.log(slog.LevelWarn, "candidate exhausted",
					"tier", tier.Name, "endpoint", endpoint, "cause", failureCategory(err))
				continue
			}

			o.log(slog.LevelInfo, "fetch succeeded", "tier", tier.Name, "endpoint", endpoint, "bytes", len(body))
			return domain.RawContent{Body: body, Kind: tier.Kind, Endpoint: endpoint}, nil
		}
	}

	return domain.RawContent{}, fmt.Errorf("%w: no tier produced content", domain.ErrFetchExhausted)
}

func (o *Orchestrator) attempt(ctx context.Context, tier Tier, endpoint string) (string, error) {
	var body string

	err := withRetries(tier.MaxRetries, o.sleep, func(attempt int) error {
		if attempt > 0 {
			o.log(slog.LevelDebug, "retrying candidate", "endpoint", endpoint, "attempt", attempt+1)
		}

		fetched, err := o.get(ctx, endpoint)
		if err != nil {
			return err
		}
		if strings.TrimSpace(fetched) == "" {
			return errEmptyBody
		}
		if tier.Relay && !relaySane(fetched) {
			return errRelaySanity
		}

		body = fetched
		return nil
	})

	return body, err
}

func (o *Orchestrator) get(ctx context.Context, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml, text/html, */*")
	req.Header.Set("Accept-Language", "tr-TR,tr;q=0.9,en-US;q=0.8,en;q=0.7")
	req.Header.Set("Connection", "keep-alive")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &statusError{status: resp.Status}
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return string(payload), nil
}

// failureCategory keeps operational logs to a short label per failure.
func failureCategory(err error) string {
	var se *statusError
	switch {
	case errors.Is(err, errEmptyBody):
		return "empty"
	case errors.Is(err, errRelaySanity):
		return "sanity"
	case errors.As(err, &se):
		return "status"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "network"
	}
}

func (o *Orchestrator) log(level slog.Level, msg string, args ...any) {
	if o.logger != nil {
		o.logger.Log(context.Background(), level, msg, args...)
	}
}
