package domain

// ItemType tells whether a gazette entry links to a PDF or an HTML page.
type ItemType string

const (
	TypePDF ItemType = "pdf"
	TypeHTM ItemType = "htm"
)

// Item is a single gazette entry: a titled link tagged with the section it
// appeared under. Items are built once during parsing and never mutated.
type Item struct {
	Title    string
	Category string
	Link     string
	Type     ItemType
}

// Bulletin is one day's parsed gazette: metadata plus items in document order.
type Bulletin struct {
	Date        string
	IssueNumber string
	Items       []Item
	SourceURL   string
}

// CategoryCount pairs a section name with how many items it holds.
type CategoryCount struct {
	Category string
	Count    int
}

// CategorySummary counts items per category, preserving first-seen order.
func (b Bulletin) CategorySummary() []CategoryCount {
	index := map[string]int{}
	var summary []CategoryCount
	for _, item := range b.Items {
		if pos, ok := index[item.Category]; ok {
			summary[pos].Count++
			continue
		}
		index[item.Category] = len(summary)
		summary = append(summary, CategoryCount{Category: item.Category, Count: 1})
	}
	return summary
}

// Partition is the result of filtering a bulletin's items: every input item
// lands in exactly one bucket, and each excluded item increments exactly one
// reason counter.
type Partition struct {
	Kept         []Item
	Excluded     []Item
	ReasonCounts map[string]int
}

// Total returns the size of the original input sequence.
func (p Partition) Total() int {
	return len(p.Kept) + len(p.Excluded)
}
