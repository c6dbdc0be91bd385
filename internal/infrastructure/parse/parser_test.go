package parse

import (
	"errors"
	"reflect"
	"testing"

	"GazeteBot/internal/domain"
)

const feedFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Resmi Gazete - 04 Şubat 2026 - Sayı: 33158</title>
    <link>https://www.resmigazete.gov.tr</link>
    <item>
      <title>Cumhurbaşkanı Kararı (Karar Sayısı: 9999)</title>
      <link>https://www.resmigazete.gov.tr/eskiler/2026/02/20260204-1.pdf</link>
      <category>YÜRÜTME VE İDARE BÖLÜMÜ</category>
    </item>
    <item>
      <title>Bazı Alanların Kentsel Dönüşüm Alanı İlan Edilmesi Hakkında Karar</title>
      <link>eskiler/2026/02/20260204-2.htm</link>
    </item>
    <item>
      <title>Kısa</title>
      <link>https://www.resmigazete.gov.tr/eskiler/2026/02/20260204-3.htm</link>
    </item>
    <item>
      <title>Vergi Usul Kanunu Genel Tebliği</title>
      <link>https://www.resmigazete.gov.tr/eskiler/2026/02/20260204-4.htm</link>
      <category>TEBLİĞLER</category>
    </item>
    <item>
      <title>Vergi Usul Kanunu Genel Tebliği (Mükerrer)</title>
      <link>https://www.resmigazete.gov.tr/eskiler/2026/02/20260204-4.htm</link>
    </item>
  </channel>
</rss>`

func TestParseFeed(t *testing.T) {
	t.Parallel()

	p := New(nil)
	bulletin, err := p.Parse(domain.RawContent{Body: feedFixture, Kind: domain.KindFeed})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if bulletin.Date != "04 Şubat 2026" {
		t.Fatalf("unexpected date: %s", bulletin.Date)
	}
	if bulletin.IssueNumber != "33158" {
		t.Fatalf("unexpected issue number: %s", bulletin.IssueNumber)
	}

	if len(bulletin.Items) != 3 {
		t.Fatalf("expected 3 items, got %d: %+v", len(bulletin.Items), bulletin.Items)
	}

	first := bulletin.Items[0]
	if first.Category != "YÜRÜTME VE İDARE BÖLÜMÜ" {
		t.Fatalf("unexpected first category: %s", first.Category)
	}
	if first.Type != domain.TypePDF {
		t.Fatalf("expected pdf type, got %s", first.Type)
	}

	// Entry without its own category inherits the cursor.
	second := bulletin.Items[1]
	if second.Category != "YÜRÜTME VE İDARE BÖLÜMÜ" {
		t.Fatalf("expected inherited category, got %s", second.Category)
	}
	if second.Link != "https://www.resmigazete.gov.tr/eskiler/2026/02/20260204-2.htm" {
		t.Fatalf("relative link not resolved: %s", second.Link)
	}
	if second.Type != domain.TypeHTM {
		t.Fatalf("expected htm type, got %s", second.Type)
	}

	third := bulletin.Items[2]
	if third.Category != "TEBLİĞLER" {
		t.Fatalf("unexpected third category: %s", third.Category)
	}
}

const webFixture = `<!DOCTYPE html>
<html><body>
  <p>5 Mart 2026 Tarihli ve Sayı : 33187 Mükerrer</p>
  <b>YASAMA BÖLÜMÜ</b>
  <a href="/eskiler/2026/03/20260305-1.htm">Bazı Kanunlarda Değişiklik Yapılmasına Dair Kanun</a>
  <a href="/eskiler/2026/03/20260305-2.pdf">Milletlerarası Andlaşmanın Onaylanması Hakkında Karar</a>
  <b>YARGI BÖLÜMÜ</b>
  <a href="/eskiler/2026/03/20260305-3.htm">Anayasa Mahkemesinin 2026/12 Sayılı Kararı</a>
  <a href="/eskiler/2026/03/20260305-3.htm">Anayasa Mahkemesinin 2026/12 Sayılı Kararı (tekrar)</a>
  <a href="/arsiv.aspx">Eski Sayılar</a>
  <a href="/eskiler/2026/03/20260305-4.htm">Kısa</a>
  <a href="/eskiler/2026/03/20260305-5.htm">12345 67</a>
  <a href="/hakkimizda.aspx">Kurum Hakkında Genel Bilgiler</a>
</body></html>`

func TestParseWebCursorPropagation(t *testing.T) {
	t.Parallel()

	p := New(nil)
	bulletin, err := p.Parse(domain.RawContent{Body: webFixture, Kind: domain.KindWeb})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if len(bulletin.Items) != 3 {
		t.Fatalf("expected 3 items, got %d: %+v", len(bulletin.Items), bulletin.Items)
	}

	if bulletin.Items[0].Category != "YASAMA BÖLÜMÜ" || bulletin.Items[1].Category != "YASAMA BÖLÜMÜ" {
		t.Fatalf("links before the second header must carry the first header: %+v", bulletin.Items[:2])
	}
	if bulletin.Items[2].Category != "YARGI BÖLÜMÜ" {
		t.Fatalf("link after the second header must carry it: %+v", bulletin.Items[2])
	}
}

func TestParseWebMetadata(t *testing.T) {
	t.Parallel()

	p := New(nil)
	bulletin, err := p.Parse(domain.RawContent{Body: webFixture, Kind: domain.KindWeb})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if bulletin.Date != "5 Mart 2026" {
		t.Fatalf("unexpected date: %s", bulletin.Date)
	}
	if bulletin.IssueNumber != "33187" {
		t.Fatalf("unexpected issue: %s", bulletin.IssueNumber)
	}
	if bulletin.SourceURL != domain.SourceBaseURL {
		t.Fatalf("unexpected source url: %s", bulletin.SourceURL)
	}
}

func TestParseWebValidationAndResolution(t *testing.T) {
	t.Parallel()

	p := New(nil)
	bulletin, err := p.Parse(domain.RawContent{Body: webFixture, Kind: domain.KindWeb})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	for _, item := range bulletin.Items {
		if item.Link[:len("https://")] != "https://" {
			t.Fatalf("link not absolute: %s", item.Link)
		}
		if item.Title == "Kısa" || item.Title == "12345 67" || item.Title == "Eski Sayılar" {
			t.Fatalf("invalid title slipped through: %s", item.Title)
		}
	}

	if bulletin.Items[1].Type != domain.TypePDF {
		t.Fatalf("expected pdf classification, got %s", bulletin.Items[1].Type)
	}
	if bulletin.Items[0].Type != domain.TypeHTM {
		t.Fatalf("expected htm classification, got %s", bulletin.Items[0].Type)
	}
}

func TestParseWebDedupByResolvedURL(t *testing.T) {
	t.Parallel()

	html := `<html><body>
	  <a href="/duyuru/liste.htm">Kamu Görevlileri Hakkında Duyuru</a>
	  <a href="https://www.resmigazete.gov.tr/duyuru/liste.htm">Kamu Görevlileri Hakkında Duyuru (aynı)</a>
	</body></html>`

	p := New(nil)
	bulletin, err := p.Parse(domain.RawContent{Body: html, Kind: domain.KindWeb})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if len(bulletin.Items) != 1 {
		t.Fatalf("expected one item after URL dedup, got %d", len(bulletin.Items))
	}
	if bulletin.Items[0].Link != "https://www.resmigazete.gov.tr/duyuru/liste.htm" {
		t.Fatalf("unexpected resolved link: %s", bulletin.Items[0].Link)
	}
}

func TestParseDeterminism(t *testing.T) {
	t.Parallel()

	p := New(nil)
	first, err := p.Parse(domain.RawContent{Body: webFixture, Kind: domain.KindWeb})
	if err != nil {
		t.Fatalf("first Parse error: %v", err)
	}
	second, err := p.Parse(domain.RawContent{Body: webFixture, Kind: domain.KindWeb})
	if err != nil {
		t.Fatalf("second Parse error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("parsing identical content twice must yield identical bulletins")
	}
}

func TestParseSentinelsWhenMetadataMissing(t *testing.T) {
	t.Parallel()

	p := New(nil)
	bulletin, err := p.Parse(domain.RawContent{Body: "<html><body><p>bugün içerik yok</p></body></html>", Kind: domain.KindWeb})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if bulletin.IssueNumber != "Bilinmiyor" {
		t.Fatalf("expected issue sentinel, got %s", bulletin.IssueNumber)
	}
	if bulletin.Date == "" {
		t.Fatal("expected date sentinel, got empty string")
	}
	if len(bulletin.Items) != 0 {
		t.Fatalf("expected empty bulletin, got %d items", len(bulletin.Items))
	}
}

func TestParseMalformedFeed(t *testing.T) {
	t.Parallel()

	p := New(nil)
	bulletin, err := p.Parse(domain.RawContent{Body: "this is not xml at all <<<", Kind: domain.KindFeed})
	if !errors.Is(err, domain.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if len(bulletin.Items) != 0 {
		t.Fatal("malformed feed must not yield items")
	}
	if bulletin.IssueNumber != "Bilinmiyor" {
		t.Fatalf("expected sentinel issue on parse failure, got %s", bulletin.IssueNumber)
	}
}

func TestParseEmptyBody(t *testing.T) {
	t.Parallel()

	p := New(nil)
	_, err := p.Parse(domain.RawContent{Body: "  \n ", Kind: domain.KindWeb})
	if !errors.Is(err, domain.ErrParse) {
		t.Fatalf("expected ErrParse for blank body, got %v", err)
	}
}
