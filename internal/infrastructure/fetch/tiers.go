package fetch

import (
	"net/url"
	"strings"

	"GazeteBot/internal/domain"
)

// Tier is one retrieval strategy in the fallback chain: an ordered list of
// candidate endpoints sharing a retry budget and a content kind.
type Tier struct {
	Name       string
	Kind       domain.ContentKind
	Endpoints  []string
	MaxRetries int
	Relay      bool
}

// DefaultTiers returns the fallback chain in fixed priority order: the RSS
// index feeds, then the site itself, then third-party relays that proxy the
// target URL when the site is unreachable from the runner's network.
func DefaultTiers() []Tier {
	base := domain.SourceBaseURL
	target := base + "/"
	return []Tier{
		{
			Name:       "rss",
			Kind:       domain.KindFeed,
			MaxRetries: 3,
			Endpoints: []string{
				base + "/rss/fihrist.xml",
				base + "/rss/eskifihrist.xml",
			},
		},
		{
			Name:       "web",
			Kind:       domain.KindWeb,
			MaxRetries: 2,
			Endpoints: []string{
				base + "/default.aspx",
				base + "/",
			},
		},
		{
			Name:       "relay",
			Kind:       domain.KindWeb,
			MaxRetries: 2,
			Relay:      true,
			Endpoints: []string{
				"https://api.allorigins.win/raw?url=" + url.QueryEscape(target),
				"https://r.jina.ai/" + target,
			},
		},
	}
}

// relaySane rejects relay responses that silently substituted an error page
// for the proxied target: the body must mention the source itself.
func relaySane(body string) bool {
	lower := strings.ToLower(body)
	return strings.Contains(lower, "resmigazete") ||
		strings.Contains(lower, "resmî gazete") ||
		strings.Contains(lower, "resmi gazete")
}
