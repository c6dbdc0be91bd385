package domain

// SourceBaseURL is the gazette origin; relative links resolve against it.
const SourceBaseURL = "https://www.resmigazete.gov.tr"

// ContentKind distinguishes which parser a fetched body must go through.
type ContentKind string

const (
	KindFeed ContentKind = "feed"
	KindWeb  ContentKind = "web"
)

// RawContent is the unparsed payload produced by the fetch orchestrator.
type RawContent struct {
	Body     string
	Kind     ContentKind
	Endpoint string
}
