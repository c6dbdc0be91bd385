// Package parse converts raw gazette content (RSS feed or HTML page) into an
// ordered, section-classified bulletin.
package parse

import (
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"GazeteBot/internal/domain"
	"GazeteBot/internal/ports"
	"GazeteBot/internal/turkish"
)

const (
	defaultCategory = "Genel"
	unknownIssue    = "Bilinmiyor"
)

var (
	dateExpr  = regexp.MustCompile(`(?i)(\d{1,2})\s+(Ocak|Şubat|Mart|Nisan|Mayıs|Haziran|Temmuz|Ağustos|Eylül|Ekim|Kasım|Aralık)\s+(\d{4})`)
	issueExpr = regexp.MustCompile(`(?:Sayı|Sayi|No)\s*:\s*(\d+)`)
)

var turkishMonths = []string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// Section headers the category cursor recognizes, in folded form.
var sectionHeaders = []string{
	"YASAMA BOLUMU",
	"YURUTME VE IDARE BOLUMU",
	"YARGI BOLUMU",
	"ILAN BOLUMU",
	"MILLETLERARASI ANDLASMALAR",
	"CUMHURBASKANLIGI",
	"YONETMELIKLER",
	"TEBLIGLER",
	"GENELGELER",
	"KURUL KARARLARI",
	"YARGI ILANLARI",
	"ARTIRMA, EKSILTME",
	"CESITLI ILANLAR",
}

// UI chrome the site sprinkles between entries; never items.
var chromePhrases = []string{
	"GORUNTULE",
	"YAZDIR",
	"ANA SAYFA",
	"ANASAYFA",
	"GELISMIS ARAMA",
	"ARSIV",
	"ESKI SAYILAR",
	"ONCEKI SAYFA",
	"SONRAKI SAYFA",
	"TUMUNU LISTELE",
}

var sourceOrigin = func() *url.URL {
	u, err := url.Parse(domain.SourceBaseURL + "/")
	if err != nil {
		panic(err)
	}
	return u
}()

// Parser dispatches raw content to the feed or web extractor. Both extractors
// are pure per call; the category cursor lives on the traversal stack.
type Parser struct {
	logger *slog.Logger
}

var _ ports.Parser = (*Parser)(nil)

// New wires an optional logger.
func New(logger *slog.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse converts the fetched body into a bulletin. A structurally unreadable
// body yields an empty sentinel bulletin alongside domain.ErrParse; a readable
// body with zero items is a valid empty bulletin, not an error.
func (p *Parser) Parse(raw domain.RawContent) (domain.Bulletin, error) {
	if strings.TrimSpace(raw.Body) == "" {
		return emptyBulletin(), fmt.Errorf("%w: empty document", domain.ErrParse)
	}

	switch raw.Kind {
	case domain.KindFeed:
		return p.parseFeed(raw.Body)
	default:
		return p.parseWeb(raw.Body)
	}
}

func emptyBulletin() domain.Bulletin {
	return domain.Bulletin{
		Date:        currentDate(),
		IssueNumber: unknownIssue,
		SourceURL:   domain.SourceBaseURL,
	}
}

// currentDate renders today in the gazette's own date style, used as the
// sentinel when the document carries no recognizable date.
func currentDate() string {
	now := time.Now()
	return fmt.Sprintf("%d %s %d", now.Day(), turkishMonths[now.Month()-1], now.Year())
}

// extractMetadata scans text once for the date and issue-number patterns;
// first match wins, absence leaves the sentinels in place.
func extractMetadata(text string, b *domain.Bulletin) {
	if m := dateExpr.FindString(text); m != "" {
		b.Date = m
	}
	if m := issueExpr.FindStringSubmatch(text); m != nil {
		b.IssueNumber = m[1]
	}
}

// validTitle enforces the item title rules: at least five runes, at least one
// letter, and not a UI-chrome phrase.
func validTitle(title string) bool {
	if utf8.RuneCountInString(title) < 5 {
		return false
	}

	hasLetter := false
	for _, r := range title {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return false
	}

	folded := turkish.Fold(title)
	for _, phrase := range chromePhrases {
		if strings.Contains(folded, phrase) {
			return false
		}
	}
	return true
}

func matchesSectionHeader(folded string) bool {
	for _, header := range sectionHeaders {
		if strings.Contains(folded, header) {
			return true
		}
	}
	return false
}

func hasDocExtension(href string) bool {
	lower := strings.ToLower(href)
	return strings.Contains(lower, ".pdf") || strings.Contains(lower, ".htm")
}

func classifyType(link string) domain.ItemType {
	if strings.Contains(strings.ToLower(link), ".pdf") {
		return domain.TypePDF
	}
	return domain.TypeHTM
}

// resolveLink absolutizes href against the gazette origin. The resolved URL
// is also the dedup key for the traversal.
func resolveLink(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}

	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return sourceOrigin.ResolveReference(u).String()
}
