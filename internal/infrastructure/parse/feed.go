package parse

import (
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"GazeteBot/internal/domain"
)

// parseFeed reads the RSS index. The channel title carries the date and issue
// number ("Resmi Gazete - 04 Şubat 2026 - Sayı: 33158"); each item's category
// field advances the section cursor for the entries that follow it.
func (p *Parser) parseFeed(body string) (domain.Bulletin, error) {
	feed, err := gofeed.NewParser().ParseString(body)
	if err != nil {
		return emptyBulletin(), fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	bulletin := emptyBulletin()
	extractMetadata(feed.Title+"\n"+feed.Description, &bulletin)

	category := defaultCategory
	seen := map[string]struct{}{}

	for _, entry := range feed.Items {
		if len(entry.Categories) > 0 && strings.TrimSpace(entry.Categories[0]) != "" {
			category = strings.TrimSpace(entry.Categories[0])
		}

		title := strings.TrimSpace(entry.Title)
		if !validTitle(title) {
			continue
		}
		if !hasDocExtension(entry.Link) {
			continue
		}

		link := resolveLink(entry.Link)
		if link == "" {
			continue
		}
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}

		bulletin.Items = append(bulletin.Items, domain.Item{
			Title:    title,
			Category: category,
			Link:     link,
			Type:     classifyType(link),
		})
	}

	p.debug("feed parsed", "items", len(bulletin.Items), "issue", bulletin.IssueNumber)
	return bulletin, nil
}

func (p *Parser) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
