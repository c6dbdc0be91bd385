package turkish

import "testing"

func TestFoldTable(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"İstanbul", "ISTANBUL"},
		{"istanbul", "ISTANBUL"},
		{"ISTANBUL", "ISTANBUL"},
		{"ılgın", "ILGIN"},
		{"Yönetmelik", "YONETMELIK"},
		{"TEBLİĞLER", "TEBLIGLER"},
		{"İLÂN BÖLÜMÜ", "ILAN BOLUMU"},
		{"Çeşitli İlânlar", "CESITLI ILANLAR"},
		{"Ağaç", "AGAC"},
		{"ördek", "ORDEK"},
		{"Ünlü", "UNLU"},
		{"kâtip", "KATIP"},
		{"Îmâ", "IMA"},
		{"sükûn", "SUKUN"},
		{"", ""},
		{"ABC 123", "ABC 123"},
	}

	for _, test := range tests {
		if got := Fold(test.input); got != test.expected {
			t.Errorf("Fold(%q) = %q; expected %q", test.input, got, test.expected)
		}
	}
}

func TestFoldIdempotent(t *testing.T) {
	inputs := []string{"İstanbul Üniversitesi", "YARGI İLÂNLARI", "çğıöşü", "plain ascii"}
	for _, input := range inputs {
		once := Fold(input)
		twice := Fold(once)
		if once != twice {
			t.Errorf("Fold not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestFoldCaseAndDiacriticInsensitive(t *testing.T) {
	if Fold("İstanbul") != Fold("istanbul") || Fold("istanbul") != Fold("ISTANBUL") {
		t.Errorf("expected İstanbul/istanbul/ISTANBUL to fold identically, got %q %q %q",
			Fold("İstanbul"), Fold("istanbul"), Fold("ISTANBUL"))
	}
}

func TestEqual(t *testing.T) {
	if !Equal("YÖNETMELİKLER", "yönetmelikler") {
		t.Error("expected case-insensitive equality")
	}
	if Equal("YÖNETMELİKLER", "TEBLİĞLER") {
		t.Error("expected distinct words to differ")
	}
}
