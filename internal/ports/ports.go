package ports

import (
	"context"

	"GazeteBot/internal/domain"
)

// Source acquires the day's raw gazette content from upstream.
type Source interface {
	Fetch(ctx context.Context) (domain.RawContent, error)
}

// Parser turns raw content into an ordered, classified bulletin.
type Parser interface {
	Parse(raw domain.RawContent) (domain.Bulletin, error)
}

// Filter partitions parsed items into kept and excluded buckets.
type Filter interface {
	Partition(items []domain.Item) domain.Partition
}

// Message is a rendered digest ready for transmission.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer transmits digests through a transactional email provider.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
