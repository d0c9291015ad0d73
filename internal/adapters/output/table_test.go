// internal/adapters/output/table_test.go
package output

import (
	"bytes"
	"strings"
	"testing"

	"domainlens/internal/core/domain"
	"domainlens/internal/testutil"
)

func TestTableExportEmpty(t *testing.T) {
	var buf bytes.Buffer
	exporter := NewTableExporter(&buf)

	testutil.AssertNoError(t, exporter.Export(nil), "Export empty")
	testutil.AssertContains(t, buf.String(), "No domains in collection.", "empty message")
}

func TestTableExportRowsAndSummary(t *testing.T) {
	sz := 4.0
	price := 59.0
	items := []domain.ImportedDomainItem{
		{
			Domain:      "alpha.com",
			TLD:         "com",
			Source:      domain.SourceSpamZilla,
			Status:      domain.StatusUnknown,
			QualityTier: domain.TierGold,
			SZScore:     &sz,
			Price:       &price,
			Score: &domain.Score{
				Overall:        81.2,
				Recommendation: domain.RecommendStrongBuy,
			},
		},
		{
			Domain:      "beta.net",
			TLD:         "net",
			Source:      domain.SourceManual,
			Status:      domain.StatusOwned,
			QualityTier: domain.TierNone,
		},
	}

	var buf bytes.Buffer
	testutil.AssertNoError(t, NewTableExporter(&buf).Export(items), "Export")
	out := buf.String()

	testutil.AssertContains(t, out, "alpha.com", "first row")
	testutil.AssertContains(t, out, "beta.net", "second row")
	testutil.AssertContains(t, out, "strong-buy", "verdict column")
	testutil.AssertContains(t, out, "$59", "price column")
	testutil.AssertContains(t, out, "gold=1 silver=0 bronze=0 none=1", "tier summary")

	// Las señales ausentes se muestran como guión, nunca como cero
	betaRow := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "beta.net") {
			betaRow = line
		}
	}
	testutil.AssertContains(t, betaRow, "-", "absent signals as dash")
}
