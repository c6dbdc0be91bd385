package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"GazeteBot/internal/domain"
	"GazeteBot/internal/ports"
	"GazeteBot/internal/render"
)

// RunnerDeps wires the fetch, parse, filter, and delivery collaborators.
type RunnerDeps struct {
	Source ports.Source
	Parser ports.Parser
	Filter ports.Filter
	Mailer ports.Mailer
	Logger *slog.Logger
}

// Runner executes one fetch-parse-filter-deliver cycle.
type Runner struct {
	source ports.Source
	parser ports.Parser
	filter ports.Filter
	mailer ports.Mailer
	logger *slog.Logger
}

// RunRequest carries the per-invocation switches.
type RunRequest struct {
	Recipient string
	DryRun    bool
}

// RunReport is handed back to the command surface for display. Delivered is
// false on dry runs and intentional no-ops.
type RunReport struct {
	Bulletin  domain.Bulletin
	Partition domain.Partition
	Delivered bool
}

// NewRunner constructs the orchestration component.
func NewRunner(deps RunnerDeps) *Runner {
	return &Runner{
		source: deps.Source,
		parser: deps.Parser,
		filter: deps.Filter,
		mailer: deps.Mailer,
		logger: deps.Logger,
	}
}

// Run performs the pipeline. Fetch exhaustion and delivery failures abort the
// run; an unparseable or empty bulletin ends it as a harmless no-op.
func (r *Runner) Run(ctx context.Context, req RunRequest) (RunReport, error) {
	var report RunReport

	raw, err := r.source.Fetch(ctx)
	if err != nil {
		return report, fmt.Errorf("fetch bulletin: %w", err)
	}

	bulletin, err := r.parser.Parse(raw)
	if err != nil {
		if !errors.Is(err, domain.ErrParse) {
			return report, fmt.Errorf("parse bulletin: %w", err)
		}
		r.log("content unparseable, treating run as no-op", "endpoint", raw.Endpoint)
	}
	report.Bulletin = bulletin
	r.log("bulletin parsed", "date", bulletin.Date, "issue", bulletin.IssueNumber, "items", len(bulletin.Items))

	if len(bulletin.Items) == 0 {
		r.log("no items today, nothing to deliver")
		return report, nil
	}

	if r.filter != nil {
		report.Partition = r.filter.Partition(bulletin.Items)
	} else {
		report.Partition = domain.Partition{Kept: bulletin.Items, ReasonCounts: map[string]int{}}
	}
	r.log("items filtered", "kept", len(report.Partition.Kept), "excluded", len(report.Partition.Excluded))

	if len(report.Partition.Kept) == 0 {
		r.log("every item filtered, delivery skipped")
		return report, nil
	}

	if req.DryRun {
		r.log("dry run, delivery suppressed", "recipient", req.Recipient)
		return report, nil
	}

	if r.mailer == nil {
		return report, fmt.Errorf("%w: no mailer configured", domain.ErrDelivery)
	}

	msg := ports.Message{
		To:       req.Recipient,
		Subject:  render.Subject(bulletin),
		HTMLBody: render.HTML(bulletin, report.Partition),
		TextBody: render.PlainText(bulletin, report.Partition),
	}
	if err := r.mailer.Send(ctx, msg); err != nil {
		return report, fmt.Errorf("deliver digest: %w", err)
	}

	report.Delivered = true
	r.log("digest delivered", "recipient", req.Recipient, "items", len(report.Partition.Kept))
	return report, nil
}

func (r *Runner) log(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Info(msg, args...)
	}
}
