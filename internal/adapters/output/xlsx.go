// internal/adapters/output/xlsx.go
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"domainlens/internal/core/domain"
	"domainlens/internal/core/ports"
)

const xlsxSheet = "Domains"

var xlsxHeaders = []string{
	"domain", "tld", "source", "status", "quality_tier",
	"dr", "age_years", "backlinks", "ref_domains", "tf", "cf",
	"sz_score", "price", "auction_source",
	"score", "risk", "recommendation", "est_value",
}

// XLSXExporter escribe la colección como workbook Excel para revisión
// manual fuera de la herramienta.
type XLSXExporter struct {
	Dir string
}

var _ ports.Exporter = (*XLSXExporter)(nil)

// NewXLSXExporter crea el exporter apuntando al directorio dado.
func NewXLSXExporter(dir string) *XLSXExporter {
	if dir == "" {
		dir = "."
	}
	return &XLSXExporter{Dir: dir}
}

// Export genera <dir>/domainlens_collection_<timestamp>.xlsx con una fila
// por dominio de la colección.
func (e *XLSXExporter) Export(items []domain.ImportedDomainItem) error {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := writeRow(f, 1, headerCells()); err != nil {
		return err
	}
	for i, item := range items {
		if err := writeRow(f, i+2, itemCells(item)); err != nil {
			return err
		}
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(e.Dir, fmt.Sprintf("domainlens_collection_%s.xlsx", timestamp))
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func headerCells() []any {
	cells := make([]any, len(xlsxHeaders))
	for i, h := range xlsxHeaders {
		cells[i] = h
	}
	return cells
}

// itemCells aplana un item a la fila del workbook. Las señales ausentes
// quedan como celdas vacías, no como ceros.
func itemCells(item domain.ImportedDomainItem) []any {
	cells := []any{
		item.Domain,
		item.TLD,
		item.Source.String(),
		item.Status.String(),
		item.QualityTier.String(),
	}

	if m := item.Metrics; m != nil {
		cells = append(cells,
			floatCell(m.DomainRating),
			floatCell(m.DomainAge),
			intCell(m.Backlinks),
			intCell(m.ReferringDomains),
			floatCell(m.TrustFlow),
			floatCell(m.CitationFlow),
		)
	} else {
		cells = append(cells, "", "", "", "", "", "")
	}

	cells = append(cells,
		floatCell(item.SZScore),
		floatCell(item.Price),
		item.AuctionSource,
	)

	if s := item.Score; s != nil {
		cells = append(cells, s.Overall, string(s.RiskLevel), string(s.Recommendation), s.EstimatedValue)
	} else {
		// Sin score completo quedan los veredictos preliminares del ingest
		cells = append(cells, "", string(item.RiskLevel), string(item.Recommendation), "")
	}
	return cells
}

func writeRow(f *excelize.File, row int, cells []any) error {
	for i, v := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetCellValue(xlsxSheet, cell, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}

func floatCell(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func intCell(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}
