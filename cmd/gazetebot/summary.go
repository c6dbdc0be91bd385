package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"GazeteBot/internal/usecase"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("161"))
	metaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	countStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

func printSummary(report usecase.RunReport, dryRun, verbose bool) {
	b := report.Bulletin
	p := report.Partition

	fmt.Println(titleStyle.Render("T.C. Resmî Gazete") + " " +
		metaStyle.Render(fmt.Sprintf("%s | Sayı: %s", b.Date, b.IssueNumber)))

	if len(b.Items) == 0 {
		fmt.Println(mutedStyle.Render("Güncel içerik bulunamadı."))
		return
	}

	fmt.Printf("%s içerik, %s korundu, %s filtrelendi\n",
		countStyle.Render(fmt.Sprintf("%d", p.Total())),
		countStyle.Render(fmt.Sprintf("%d", len(p.Kept))),
		countStyle.Render(fmt.Sprintf("%d", len(p.Excluded))))

	if verbose {
		if len(p.ReasonCounts) > 0 {
			fmt.Println("\nFiltreleme nedenleri:")
			reasons := make([]string, 0, len(p.ReasonCounts))
			for reason := range p.ReasonCounts {
				reasons = append(reasons, reason)
			}
			sort.Strings(reasons)
			for _, reason := range reasons {
				fmt.Printf("  - %s: %d\n", reason, p.ReasonCounts[reason])
			}
		}

		summary := report.Bulletin.CategorySummary()
		if len(summary) > 0 {
			fmt.Println("\nKategoriler:")
			for _, entry := range summary {
				fmt.Printf("  • %s: %d\n", entry.Category, entry.Count)
			}
		}
	}

	switch {
	case dryRun:
		fmt.Println(mutedStyle.Render("Dry run: e-posta gönderilmedi."))
	case report.Delivered:
		fmt.Println(mutedStyle.Render("Özet e-posta ile gönderildi."))
	case len(p.Kept) == 0:
		fmt.Println(mutedStyle.Render("Tüm içerikler filtrelendi, e-posta atlandı."))
	}
}
