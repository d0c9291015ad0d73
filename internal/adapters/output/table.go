// internal/adapters/output/table.go
package output

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"domainlens/internal/core/domain"
	"domainlens/internal/core/ports"
)

// TableExporter imprime la colección como tabla legible en terminal.
type TableExporter struct {
	Writer io.Writer
}

var _ ports.Exporter = (*TableExporter)(nil)

// NewTableExporter crea el exporter; con w nil escribe a stdout.
func NewTableExporter(w io.Writer) *TableExporter {
	if w == nil {
		w = os.Stdout
	}
	return &TableExporter{Writer: w}
}

// Export imprime la tabla de dominios con un resumen por tier al final.
func (e *TableExporter) Export(items []domain.ImportedDomainItem) error {
	w := tabwriter.NewWriter(e.Writer, 2, 4, 2, ' ', 0)

	fmt.Fprintf(w, "\n=== DomainLens Collection ===\n")
	fmt.Fprintf(w, "Domains:\t%d\n\n", len(items))

	if len(items) == 0 {
		fmt.Fprintln(w, "No domains in collection.")
		return flushTable(w)
	}

	fmt.Fprintln(w, "DOMAIN\tSOURCE\tSTATUS\tTIER\tSZ\tPRICE\tSCORE\tVERDICT")
	fmt.Fprintln(w, "------\t------\t------\t----\t--\t-----\t-----\t-------")

	tierCounts := make(map[domain.QualityTier]int)
	for _, item := range items {
		tierCounts[item.QualityTier]++
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			item.Domain,
			item.Source,
			item.Status,
			item.QualityTier,
			formatFloat(item.SZScore),
			formatPrice(item.Price),
			formatScore(item.Score),
			formatVerdict(item),
		)
	}

	if err := flushTable(w); err != nil {
		return err
	}

	fmt.Fprintf(e.Writer, "\nBy tier: gold=%d silver=%d bronze=%d none=%d\n\n",
		tierCounts[domain.TierGold],
		tierCounts[domain.TierSilver],
		tierCounts[domain.TierBronze],
		tierCounts[domain.TierNone],
	)
	return nil
}

func flushTable(w *tabwriter.Writer) error {
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}
	return nil
}

func formatFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

func formatPrice(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("$%.0f", *v)
}

func formatScore(s *domain.Score) string {
	if s == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", s.Overall)
}

// formatVerdict prefiere la recomendación del score completo; sin score,
// un export de pago aporta la preliminar derivada del tier.
func formatVerdict(item domain.ImportedDomainItem) string {
	if item.Score != nil {
		return string(item.Score.Recommendation)
	}
	if item.Recommendation != "" {
		return string(item.Recommendation)
	}
	return "-"
}
