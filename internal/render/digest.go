// Package render builds the HTML and plain-text digest bodies handed to the
// mail collaborator.
package render

import (
	"fmt"
	"sort"
	"strings"

	"GazeteBot/internal/domain"
)

// sortedReasons fixes the reason order so renders are deterministic.
func sortedReasons(counts map[string]int) []string {
	reasons := make([]string, 0, len(counts))
	for reason := range counts {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	return reasons
}

type categoryGroup struct {
	name  string
	items []domain.Item
}

// groupByCategory buckets kept items per category, preserving the order in
// which categories first appear in the bulletin.
func groupByCategory(items []domain.Item) []categoryGroup {
	index := map[string]int{}
	var groups []categoryGroup
	for _, item := range items {
		pos, ok := index[item.Category]
		if !ok {
			pos = len(groups)
			index[item.Category] = pos
			groups = append(groups, categoryGroup{name: item.Category})
		}
		groups[pos].items = append(groups[pos].items, item)
	}
	return groups
}

// Subject renders the digest mail subject line.
func Subject(b domain.Bulletin) string {
	return fmt.Sprintf("Resmî Gazete - %s (Sayı: %s)", b.Date, b.IssueNumber)
}

// HTML renders the kept items as a category-grouped HTML digest with a
// filtering summary block when anything was excluded.
func HTML(b domain.Bulletin, p domain.Partition) string {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html>
<html lang="tr">
<head><meta charset="UTF-8"><title>Resmî Gazete - ` + b.Date + `</title></head>
<body style="font-family: 'Segoe UI', Tahoma, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px;">
`)
	sb.WriteString(fmt.Sprintf(`<div style="text-align: center; border-bottom: 3px solid #c41e3a; padding-bottom: 16px;">
<h1 style="color: #c41e3a; margin: 0;">T.C. Resmî Gazete</h1>
<p style="color: #666;">%s | Sayı: %s</p>
</div>
`, b.Date, b.IssueNumber))

	sb.WriteString(fmt.Sprintf(`<p><strong>%d</strong> içerik listeleniyor`, len(p.Kept)))
	if len(p.Excluded) > 0 {
		sb.WriteString(fmt.Sprintf(` <span style="color: #888;">(%d içerik filtrelendi)</span>`, len(p.Excluded)))
	}
	sb.WriteString("</p>\n")

	for _, group := range groupByCategory(p.Kept) {
		sb.WriteString(fmt.Sprintf(`<h2 style="font-size: 18px; border-bottom: 2px solid #e9ecef; padding-bottom: 8px;">%s</h2>
<ul style="list-style: none; padding: 0;">
`, group.name))
		for _, item := range group.items {
			sb.WriteString(fmt.Sprintf(`<li style="padding: 8px 0; border-bottom: 1px solid #f0f0f0;"><a href="%s" target="_blank">%s</a> <span style="color: #999; font-size: 12px;">[%s]</span></li>
`, item.Link, item.Title, strings.ToUpper(string(item.Type))))
		}
		sb.WriteString("</ul>\n")
	}

	if len(p.Excluded) > 0 && len(p.ReasonCounts) > 0 {
		sb.WriteString(`<div style="background-color: #fff3cd; border: 1px solid #ffc107; padding: 12px; margin-top: 16px;">
<h3 style="margin: 0 0 8px 0; font-size: 14px;">Filtrelenen içerikler</h3>
<ul style="margin: 0; padding-left: 20px; font-size: 13px;">
`)
		for _, reason := range sortedReasons(p.ReasonCounts) {
			sb.WriteString(fmt.Sprintf("<li>%s: %d öğe</li>\n", reason, p.ReasonCounts[reason]))
		}
		sb.WriteString("</ul>\n</div>\n")
	}

	sb.WriteString(fmt.Sprintf(`<div style="text-align: center; margin-top: 24px;">
<a href="%s" style="background-color: #c41e3a; color: white; padding: 10px 24px; text-decoration: none; border-radius: 4px;">Tam Gazeteyi Görüntüle</a>
</div>
</body>
</html>
`, b.SourceURL))

	return sb.String()
}

// PlainText renders the same digest for the text/plain mail part.
func PlainText(b domain.Bulletin, p domain.Partition) string {
	var sb strings.Builder

	sb.WriteString("T.C. RESMÎ GAZETE\n")
	sb.WriteString(fmt.Sprintf("%s | Sayı: %s\n", b.Date, b.IssueNumber))
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")
	sb.WriteString(fmt.Sprintf("Toplam %d içerik\n", len(p.Kept)))

	for _, group := range groupByCategory(p.Kept) {
		sb.WriteString(fmt.Sprintf("\n\n%s\n%s\n", group.name, strings.Repeat("-", len([]rune(group.name)))))
		for _, item := range group.items {
			sb.WriteString(fmt.Sprintf("• %s [%s]\n  %s\n", item.Title, strings.ToUpper(string(item.Type)), item.Link))
		}
	}

	if len(p.ReasonCounts) > 0 {
		sb.WriteString("\n\nFiltrelenen içerikler:\n")
		for _, reason := range sortedReasons(p.ReasonCounts) {
			sb.WriteString(fmt.Sprintf("  - %s: %d\n", reason, p.ReasonCounts[reason]))
		}
	}

	sb.WriteString(fmt.Sprintf("\n\nTam Gazete: %s\n", b.SourceURL))
	return sb.String()
}
