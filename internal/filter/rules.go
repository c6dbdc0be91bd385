package filter

import "regexp"

// Field selects which part of an item a rule inspects.
type Field int

const (
	FieldTitle Field = iota
	FieldCategory
)

// Rule is one declarative exclusion: a pattern over the folded form of one
// field, and the human-readable reason reported when it fires.
type Rule struct {
	Field   Field
	Pattern *regexp.Regexp
	Reason  string
}

// Reason strings attributed to excluded items.
const (
	ReasonAnnouncement = "İlan bölümü içeriği"
	ReasonAcademic     = "Üniversite/Akademik içerik"
	ReasonCentralBank  = "Merkez Bankası döviz/kur"
	ReasonAppointment  = "Atama/Kadro ilanı"
)

// Patterns are written against turkish.Fold output, so they are plain ASCII
// uppercase regardless of how the gazette spelled the diacritics that day.
var (
	// Section names of the announcement block, matched on the category cursor.
	announcementCategoryExpr = regexp.MustCompile(
		`YARGI\s*ILANLARI|ARTIRMA[\s,]*EKSILTME|CESITLI\s*ILANLAR|ILAN\s*BOLUMU`)

	// Parallel content set matched on titles, for items whose cursor was
	// mis-assigned by malformed markup.
	announcementTitleExpr = regexp.MustCompile(
		`YARGI\s*ILANLARI|ARTIRMA[\s,]*EKSILTME|CESITLI\s*ILANLAR`)

	academicExpr = regexp.MustCompile(
		`UNIVERSITE|FAKULTE|ENSTITU|YUKSEKOKUL|REKTOR|DEKAN|AKADEMIK|OGRETIM UYESI|DOCENT|PROFESOR`)

	// Broad variant: central bank, exchange-rate, or domestic-borrowing
	// keywords each fire independently.
	centralBankExpr = regexp.MustCompile(
		`MERKEZ BANKASI|DOVIZ|EFEKTIF|PARITE|IC BORCLANMA`)

	appointmentExpr = regexp.MustCompile(
		`ATAMA|KADRO|MUNHAL|PERSONEL ALIMI|SOZLESMELI PERSONEL`)
)
