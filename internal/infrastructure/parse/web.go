package parse

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"GazeteBot/internal/domain"
	"GazeteBot/internal/turkish"
)

// parseWeb walks the index page's nodes in document order. Heading-like nodes
// that match a known section header move the category cursor; anchors that
// survive validation become items tagged with the cursor's current value.
func (p *Parser) parseWeb(body string) (domain.Bulletin, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return emptyBulletin(), fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	bulletin := emptyBulletin()
	extractMetadata(doc.Text(), &bulletin)

	category := defaultCategory
	seen := map[string]struct{}{}

	doc.Find("a, b, strong, u, h1, h2, h3").Each(func(_ int, sel *goquery.Selection) {
		if goquery.NodeName(sel) != "a" {
			text := strings.TrimSpace(sel.Text())
			if text != "" && matchesSectionHeader(turkish.Fold(text)) {
				// Cursor keeps the raw heading text, not the folded form.
				category = text
			}
			return
		}

		title := strings.TrimSpace(sel.Text())
		if !validTitle(title) {
			return
		}

		href, _ := sel.Attr("href")
		if !hasDocExtension(href) {
			return
		}

		link := resolveLink(href)
		if link == "" {
			return
		}
		if _, dup := seen[link]; dup {
			return
		}
		seen[link] = struct{}{}

		bulletin.Items = append(bulletin.Items, domain.Item{
			Title:    title,
			Category: category,
			Link:     link,
			Type:     classifyType(link),
		})
	})

	p.debug("web page parsed", "items", len(bulletin.Items), "issue", bulletin.IssueNumber)
	return bulletin, nil
}
