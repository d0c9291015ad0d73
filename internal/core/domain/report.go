// internal/core/domain/report.go
package domain

import (
	"fmt"
	"time"
)

// Warning es un aviso no fatal emitido durante el análisis.
type Warning struct {
	Provider string    `json:"provider"`
	Message  string    `json:"message"`
	At       time.Time `json:"at"`
}

// Error es un fallo registrado durante el análisis. Fatal indica si abortó
// el análisis completo (casi nunca: las señales degradan, no abortan).
type Error struct {
	Provider string    `json:"provider"`
	Message  string    `json:"message"`
	Fatal    bool      `json:"fatal"`
	At       time.Time `json:"at"`
}

// GateResult es el veredicto del quality gate.
type GateResult struct {
	Pass   bool   `json:"pass"`
	Reason string `json:"reason,omitempty"`
}

// ReportMetadata agrega información de ejecución del análisis.
type ReportMetadata struct {
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	Duration      time.Duration `json:"duration"`
	ProvidersUsed []string      `json:"providers_used"`
	Version       string        `json:"version,omitempty"`
}

// AnalysisReport es el resultado completo del análisis de un dominio:
// parseo, gate, señales externas, score y perfil. Es la unidad que
// consumen los adapters de salida.
type AnalysisReport struct {
	ID        string        `json:"id"`
	Candidate ParsedDomain  `json:"candidate"`
	Gate      GateResult    `json:"gate"`
	Metrics   Metrics       `json:"metrics"`
	Signals   Enrichment    `json:"signals"`
	Score     *Score        `json:"score,omitempty"`
	Profile   *DomainProfile `json:"profile,omitempty"`

	Warnings []Warning `json:"warnings,omitempty"`
	Errors   []Error   `json:"errors,omitempty"`

	Metadata ReportMetadata `json:"metadata"`
}

// NewAnalysisReport crea un reporte para el candidato dado.
func NewAnalysisReport(candidate ParsedDomain) *AnalysisReport {
	return &AnalysisReport{
		ID:        fmt.Sprintf("analysis-%s-%d", candidate.Normalized, time.Now().UnixNano()),
		Candidate: candidate,
		Metadata: ReportMetadata{
			StartTime: time.Now(),
		},
	}
}

// AddWarning registra un aviso de un proveedor.
func (r *AnalysisReport) AddWarning(provider, message string) {
	r.Warnings = append(r.Warnings, Warning{
		Provider: provider,
		Message:  message,
		At:       time.Now(),
	})
}

// AddError registra un fallo de un proveedor.
func (r *AnalysisReport) AddError(provider, message string, fatal bool) {
	r.Errors = append(r.Errors, Error{
		Provider: provider,
		Message:  message,
		Fatal:    fatal,
		At:       time.Now(),
	})
}

// Finalize cierra el reporte calculando la duración total.
func (r *AnalysisReport) Finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
}
