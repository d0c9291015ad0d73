// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"domainlens/internal/core/domain"
	"domainlens/internal/core/ports"
)

// sanitizeDomainName convierte un nombre de dominio en un nombre de archivo
// válido. Ejemplo: "example.com" -> "example_com"
func sanitizeDomainName(name string) string {
	sanitized := strings.ReplaceAll(name, ".", "_")
	sanitized = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, sanitized)
	return sanitized
}

// JSONExporter escribe reportes y colecciones como archivos JSON en Dir.
type JSONExporter struct {
	Dir    string
	Pretty bool
}

var (
	_ ports.Exporter       = (*JSONExporter)(nil)
	_ ports.ReportExporter = (*JSONExporter)(nil)
)

// NewJSONExporter crea el exporter apuntando al directorio dado.
func NewJSONExporter(dir string, pretty bool) *JSONExporter {
	if dir == "" {
		dir = "."
	}
	return &JSONExporter{Dir: dir, Pretty: pretty}
}

// ExportReport escribe un reporte de análisis individual:
// <dir>/domainlens_<dominio>_<timestamp>.json
func (e *JSONExporter) ExportReport(report *domain.AnalysisReport) error {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("domainlens_%s_%s.json",
		sanitizeDomainName(report.Candidate.Normalized), timestamp)

	return e.writeFile(filepath.Join(e.Dir, filename), report)
}

// Export escribe la colección completa de dominios importados:
// <dir>/domainlens_collection_<timestamp>.json
func (e *JSONExporter) Export(items []domain.ImportedDomainItem) error {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("domainlens_collection_%s.json", timestamp)

	return e.writeFile(filepath.Join(e.Dir, filename), items)
}

func (e *JSONExporter) writeFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	return encodeJSON(f, v, true)
}

// OutputJSONStdout escribe el reporte a stdout.
func OutputJSONStdout(report *domain.AnalysisReport, pretty bool) error {
	return encodeJSON(os.Stdout, report, pretty)
}

func encodeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
