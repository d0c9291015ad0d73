// internal/core/ports/exporter.go
package ports

import "domainlens/internal/core/domain"

// Exporter es el port de salida para colecciones de dominios importados.
// Los adapters (JSON, tabla, XLSX) lo implementan.
type Exporter interface {
	// Export escribe la colección en el destino del adapter
	Export(items []domain.ImportedDomainItem) error
}

// ReportExporter exporta reportes de análisis individuales.
type ReportExporter interface {
	// ExportReport escribe un reporte de análisis
	ExportReport(report *domain.AnalysisReport) error
}
