// internal/importer/importer_test.go
package importer

import (
	"context"
	"testing"

	"domainlens/internal/core/domain"
	"domainlens/internal/core/usecases"
	"domainlens/internal/platform/logx"
	"domainlens/internal/platform/wordlist"
)

const spamzillaCSV = `Domain,TF,CF,SZ Score,DA,Age,Backlinks,Ref Domains,Price,Source
techzone.com,30,32,3,40,12,15000,320,$59,GoDaddy
old-finance.net,16,25,8,20,6,900,80,12,NameJet
sketchy.info,2,40,22,5,1,50,3,-,DropCatch
not a domain,,,,,,,,,
`

func TestDetectFormat(t *testing.T) {
	if got := DetectFormat(spamzillaCSV); got != FormatSpamZilla {
		t.Errorf("DetectFormat(csv) = %q, want spamzilla", got)
	}
	if got := DetectFormat("example.com\nanother.org"); got != FormatManual {
		t.Errorf("DetectFormat(text) = %q, want manual", got)
	}
	// "TF" sin "SZ Score" no basta
	if got := DetectFormat("Domain,TF,CF\na.com,1,2"); got != FormatManual {
		t.Errorf("DetectFormat(tf-only csv) = %q, want manual", got)
	}
}

func TestParseSpamZilla(t *testing.T) {
	items, err := ParseSpamZilla(spamzillaCSV)
	if err != nil {
		t.Fatalf("ParseSpamZilla: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3 (junk row skipped)", len(items))
	}

	tz := items[0]
	if tz.Domain != "techzone.com" || tz.Source != domain.SourceSpamZilla {
		t.Errorf("unexpected first item: %+v", tz)
	}
	if tz.QualityTier != domain.TierGold {
		t.Errorf("techzone tier = %q, want gold", tz.QualityTier)
	}
	if tz.Metrics == nil || tz.Metrics.TrustFlow == nil || *tz.Metrics.TrustFlow != 30 {
		t.Error("trust flow column not parsed")
	}
	if tz.Price == nil || *tz.Price != 59 {
		t.Error("dollar price not parsed")
	}
	if tz.AuctionSource != "GoDaddy" {
		t.Errorf("AuctionSource = %q", tz.AuctionSource)
	}
	if tz.SZScore == nil || domain.RiskFromSZScore(*tz.SZScore) != domain.RiskLow {
		t.Error("low sz score should map to low risk")
	}

	if items[1].QualityTier != domain.TierSilver {
		t.Errorf("old-finance tier = %q, want silver", items[1].QualityTier)
	}

	sketchy := items[2]
	if sketchy.QualityTier != domain.TierNone {
		t.Errorf("sketchy tier = %q, want none", sketchy.QualityTier)
	}
	if sketchy.SZScore == nil || domain.RiskFromSZScore(*sketchy.SZScore) != domain.RiskHigh {
		t.Error("sz score 22 should map to high risk")
	}
	if sketchy.Price != nil {
		t.Error("dash price should parse as absent")
	}
}

func TestParseSpamZillaMalformed(t *testing.T) {
	if _, err := ParseSpamZilla("Domain,TF,SZ Score\n"); err == nil {
		t.Error("expected error for header-only CSV")
	}
	if _, err := ParseSpamZilla("Foo,Bar\n1,2\n"); err == nil {
		t.Error("expected error for CSV without domain column")
	}
}

func TestImportTextRoutesToSpamZilla(t *testing.T) {
	items, format := ImportText(spamzillaCSV, logx.NewSilent())
	if format != FormatSpamZilla {
		t.Fatalf("format = %q, want spamzilla", format)
	}
	if len(items) != 3 || items[0].QualityTier == domain.TierNone {
		t.Error("spamzilla route did not compute quality tiers")
	}
}

func TestImportTextFallsBackToManual(t *testing.T) {
	// cabecera de spamzilla pero cuerpo irrecuperable como CSV: el
	// contenido se redirige al parser manual en vez de perderse
	broken := "Domain,TF,SZ Score\n\"unclosed,quote.com,ok.net\nrescued.com 1 2\n"
	items, format := ImportText(broken, logx.NewSilent())
	if format != FormatManual {
		t.Fatalf("format = %q, want manual fallback", format)
	}
	found := false
	for _, item := range items {
		if item.Domain == "rescued.com" && item.Source == domain.SourceManual {
			found = true
		}
	}
	if !found {
		t.Errorf("fallback lost recoverable domains: %+v", items)
	}
}

func TestParseManual(t *testing.T) {
	content := `check out example.com and https://www.another.org/page!
dupe: example.com
# comment.com should be skipped
bad line without domains
third-site.io, fourth.co.uk`

	items := ParseManual(content)

	want := map[string]bool{
		"example.com":  false,
		"another.org":  false,
		"third-site.io": false,
		"fourth.co.uk": false,
	}
	for _, item := range items {
		if item.Source != domain.SourceManual {
			t.Errorf("item %q has source %q", item.Domain, item.Source)
		}
		if _, ok := want[item.Domain]; ok {
			want[item.Domain] = true
		}
	}
	for d, seen := range want {
		if !seen {
			t.Errorf("domain %q not extracted", d)
		}
	}
	for _, item := range items {
		if item.Domain == "comment.com" {
			t.Error("commented line should be skipped")
		}
	}

	count := 0
	for _, item := range items {
		if item.Domain == "example.com" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("example.com extracted %d times, want 1", count)
	}
}

func TestParseOwnedList(t *testing.T) {
	items := ParseOwnedList("mysite.com\nmyblog.org\n")
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	for _, item := range items {
		if item.Source != domain.SourceExternal || item.Status != domain.StatusOwned {
			t.Errorf("owned item wrong shape: %+v", item)
		}
	}
}

func TestParseManualGarbageIsEmpty(t *testing.T) {
	if items := ParseManual("!!! ??? 123 456"); len(items) != 0 {
		t.Errorf("garbage produced %d items", len(items))
	}
}

func TestParseSpamZillaIngestVerdicts(t *testing.T) {
	items, err := ParseSpamZilla(spamzillaCSV)
	if err != nil {
		t.Fatalf("ParseSpamZilla: %v", err)
	}

	// El tier mapea a recomendación y el SZ score a riesgo ya al ingerir
	cases := []struct {
		idx      int
		wantRec  domain.Recommendation
		wantRisk domain.RiskLevel
		wantSZ   float64
	}{
		{0, domain.RecommendStrongBuy, domain.RiskLow, 3},
		{1, domain.RecommendBuy, domain.RiskLow, 8},
		{2, domain.RecommendAvoid, domain.RiskHigh, 22},
	}
	for _, tc := range cases {
		item := items[tc.idx]
		if item.Recommendation != tc.wantRec {
			t.Errorf("%s recommendation = %q, want %q", item.Domain, item.Recommendation, tc.wantRec)
		}
		if item.RiskLevel != tc.wantRisk {
			t.Errorf("%s risk = %q, want %q", item.Domain, item.RiskLevel, tc.wantRisk)
		}
		if item.Metrics.SpamScore == nil || *item.Metrics.SpamScore != tc.wantSZ {
			t.Errorf("%s metrics spam score not carried from the SZ column", item.Domain)
		}
	}
}

func TestSpamZillaRiskSurvivesAnalysis(t *testing.T) {
	items, err := ParseSpamZilla(spamzillaCSV)
	if err != nil {
		t.Fatalf("ParseSpamZilla: %v", err)
	}

	analyzer := usecases.NewAnalyzer(usecases.AnalyzerOptions{
		Scorer: usecases.NewScorer(wordlist.Default()),
		Logger: logx.NewSilent(),
	})

	// sketchy.info trae SZ 22: el riesgo del export debe llegar al score
	report := analyzer.AnalyzeWithMetrics(context.Background(), *items[2].Metrics)
	if report.Score == nil {
		t.Fatal("expected a score for sketchy.info")
	}
	if report.Score.RiskLevel != domain.RiskHigh {
		t.Errorf("risk = %q, want high: SZ score lost between import and scoring", report.Score.RiskLevel)
	}

	// Un SZ score bajo no debe inflar el riesgo
	clean := analyzer.AnalyzeWithMetrics(context.Background(), *items[0].Metrics)
	if clean.Score == nil || clean.Score.RiskLevel != domain.RiskLow {
		t.Errorf("techzone.com with SZ 3 should stay low risk, got %+v", clean.Score)
	}
}
