// Package filter partitions parsed gazette items into kept and excluded sets
// through an ordered catalogue of exclusion rules.
package filter

import (
	"GazeteBot/internal/domain"
	"GazeteBot/internal/ports"
	"GazeteBot/internal/turkish"
)

// Options toggles the rule families. Zero value disables everything; use
// DefaultOptions for the standard configuration.
type Options struct {
	Universities  bool
	Announcements bool
	CentralBank   bool
	Appointments  bool
}

// DefaultOptions enables every family except the appointment filter.
func DefaultOptions() Options {
	return Options{
		Universities:  true,
		Announcements: true,
		CentralBank:   true,
		Appointments:  false,
	}
}

// Engine evaluates its rules in declared order; the first match claims the
// item, so an excluded item is counted under exactly one reason.
type Engine struct {
	rules []Rule
}

var _ ports.Filter = (*Engine)(nil)

// NewEngine compiles the enabled rule families in fixed priority order:
// announcements, academic, central bank, appointments.
func NewEngine(opts Options) *Engine {
	var rules []Rule

	if opts.Announcements {
		rules = append(rules,
			Rule{Field: FieldCategory, Pattern: announcementCategoryExpr, Reason: ReasonAnnouncement},
			Rule{Field: FieldTitle, Pattern: announcementTitleExpr, Reason: ReasonAnnouncement},
		)
	}
	if opts.Universities {
		rules = append(rules, Rule{Field: FieldTitle, Pattern: academicExpr, Reason: ReasonAcademic})
	}
	if opts.CentralBank {
		rules = append(rules, Rule{Field: FieldTitle, Pattern: centralBankExpr, Reason: ReasonCentralBank})
	}
	if opts.Appointments {
		rules = append(rules, Rule{Field: FieldTitle, Pattern: appointmentExpr, Reason: ReasonAppointment})
	}

	return &Engine{rules: rules}
}

// Partition splits items preserving relative order within each bucket and
// counts excluded items per reason.
func (e *Engine) Partition(items []domain.Item) domain.Partition {
	partition := domain.Partition{ReasonCounts: map[string]int{}}

	for _, item := range items {
		if reason, excluded := e.match(item); excluded {
			partition.Excluded = append(partition.Excluded, item)
			partition.ReasonCounts[reason]++
			continue
		}
		partition.Kept = append(partition.Kept, item)
	}

	return partition
}

func (e *Engine) match(item domain.Item) (string, bool) {
	title := turkish.Fold(item.Title)
	category := turkish.Fold(item.Category)

	for _, rule := range e.rules {
		subject := title
		if rule.Field == FieldCategory {
			subject = category
		}
		if rule.Pattern.MatchString(subject) {
			return rule.Reason, true
		}
	}
	return "", false
}
