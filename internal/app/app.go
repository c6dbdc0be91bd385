package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"GazeteBot/internal/config"
	"GazeteBot/internal/filter"
	"GazeteBot/internal/infrastructure/fetch"
	"GazeteBot/internal/infrastructure/mail"
	"GazeteBot/internal/infrastructure/parse"
	"GazeteBot/internal/logging"
	"GazeteBot/internal/ports"
	"GazeteBot/internal/usecase"
)

// Application wires config to the pipeline collaborators.
type Application struct {
	cfg    config.Config
	runner *usecase.Runner
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	client := &http.Client{Timeout: cfg.Fetch.Timeout()}
	source := fetch.NewOrchestrator(client, tiersFromConfig(cfg.Fetch), baseLogger.With("component", "fetch"))
	parser := parse.New(baseLogger.With("component", "parse"))
	engine := filter.NewEngine(cfg.Filters.Options())

	var mailer ports.Mailer
	if cfg.Mail.APIKey != "" {
		mailer = mail.NewSendGrid(cfg.Mail.APIKey, cfg.Mail.From)
	}

	runner := usecase.NewRunner(usecase.RunnerDeps{
		Source: source,
		Parser: parser,
		Filter: engine,
		Mailer: mailer,
		Logger: baseLogger.With("component", "runner"),
	})

	return &Application{cfg: cfg, runner: runner}
}

// Run executes one pipeline cycle, resolving the recipient from config when
// the request leaves it empty.
func (a *Application) Run(ctx context.Context, req usecase.RunRequest) (usecase.RunReport, error) {
	if req.Recipient == "" {
		req.Recipient = a.cfg.Mail.To
	}
	if req.Recipient == "" && !req.DryRun {
		return usecase.RunReport{}, errors.New("no recipient: set TO_EMAIL or pass --to")
	}

	return a.runner.Run(ctx, req)
}

func tiersFromConfig(cfg config.FetchConfig) []fetch.Tier {
	tiers := fetch.DefaultTiers()
	for i := range tiers {
		switch tiers[i].Name {
		case "rss":
			if cfg.FeedRetries > 0 {
				tiers[i].MaxRetries = cfg.FeedRetries
			}
		case "web":
			if cfg.WebRetries > 0 {
				tiers[i].MaxRetries = cfg.WebRetries
			}
		case "relay":
			if cfg.RelayRetries > 0 {
				tiers[i].MaxRetries = cfg.RelayRetries
			}
		}
	}
	return tiers
}
