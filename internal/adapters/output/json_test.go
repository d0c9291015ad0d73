// internal/adapters/output/json_test.go
package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"domainlens/internal/core/domain"
	"domainlens/internal/testutil"
)

func TestSanitizeDomainName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"example.com", "example_com"},
		{"my-site.co.uk", "my-site_co_uk"},
		{"weird!name.com", "weird_name_com"},
	}
	for _, tc := range cases {
		if got := sanitizeDomainName(tc.in); got != tc.want {
			t.Errorf("sanitizeDomainName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestJSONExportReportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	exporter := NewJSONExporter(dir, true)

	report := domain.NewAnalysisReport(domain.ParseDomain("example.com"))
	report.Gate = domain.GateResult{Pass: true}
	report.Score = &domain.Score{Overall: 72.5, Recommendation: domain.RecommendBuy}
	report.Finalize()

	testutil.AssertNoError(t, exporter.ExportReport(report), "ExportReport")

	matches, err := filepath.Glob(filepath.Join(dir, "domainlens_example_com_*.json"))
	testutil.AssertNoError(t, err, "glob")
	testutil.AssertEqual(t, len(matches), 1, "report files written")

	raw, err := os.ReadFile(matches[0])
	testutil.AssertNoError(t, err, "read report file")

	var decoded domain.AnalysisReport
	testutil.AssertNoError(t, json.Unmarshal(raw, &decoded), "unmarshal report")
	testutil.AssertEqual(t, decoded.Candidate.Normalized, "example.com", "candidate")
	testutil.AssertTrue(t, decoded.Gate.Pass, "gate verdict lost in round trip")
	testutil.AssertNear(t, decoded.Score.Overall, 72.5, 0.001, "overall score")
}

func TestJSONExportCollection(t *testing.T) {
	dir := t.TempDir()
	exporter := NewJSONExporter(dir, false)

	items := []domain.ImportedDomainItem{
		domain.NewImportedItem("alpha.com", domain.SourceManual),
		domain.NewImportedItem("beta.net", domain.SourceSpamZilla),
	}
	testutil.AssertNoError(t, exporter.Export(items), "Export")

	matches, err := filepath.Glob(filepath.Join(dir, "domainlens_collection_*.json"))
	testutil.AssertNoError(t, err, "glob")
	testutil.AssertEqual(t, len(matches), 1, "collection files written")

	raw, err := os.ReadFile(matches[0])
	testutil.AssertNoError(t, err, "read collection file")

	var decoded []domain.ImportedDomainItem
	testutil.AssertNoError(t, json.Unmarshal(raw, &decoded), "unmarshal collection")
	testutil.AssertEqual(t, len(decoded), 2, "decoded items")
	testutil.AssertEqual(t, decoded[0].Domain, "alpha.com", "first domain")
	testutil.AssertEqual(t, decoded[1].Source, domain.SourceSpamZilla, "second source")
}

func TestJSONExporterCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	exporter := NewJSONExporter(dir, false)

	testutil.AssertNoError(t, exporter.Export(nil), "Export to missing dir")

	info, err := os.Stat(dir)
	testutil.AssertNoError(t, err, "stat output dir")
	testutil.AssertTrue(t, info.IsDir(), "output dir was not created")
}
