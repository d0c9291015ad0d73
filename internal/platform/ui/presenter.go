// internal/platform/ui/presenter.go
package ui

import (
	"time"

	"domainlens/internal/core/domain"
)

// Presenter define la interfaz para presentar el progreso del análisis
// de dominios de manera visual en terminal.
type Presenter interface {
	// Start inicia la presentación con información de la ejecución
	Start(info RunInfo)

	// StartDomain notifica el inicio del análisis de un dominio
	StartDomain(name string)

	// UpdatePhase actualiza la fase actual de un dominio (gate, enrich, score...)
	UpdatePhase(name string, phase string)

	// FinishDomain notifica la finalización del análisis de un dominio
	FinishDomain(name string, status Status, duration time.Duration)

	// ShowScore presenta el veredicto de un dominio analizado
	ShowScore(name string, score domain.Score)

	// Info muestra un mensaje informativo
	Info(msg string)

	// Warning muestra una advertencia
	Warning(msg string)

	// Error muestra un error
	Error(msg string)

	// Finish finaliza la presentación con estadísticas finales
	Finish(stats RunStats)

	// Close limpia recursos del presenter
	Close() error
}

// RunInfo contiene información inicial de la ejecución
type RunInfo struct {
	Target         string
	Niche          string
	Workers        int
	TimeoutSeconds int
	TotalDomains   int
	Providers      []string
}

// RunStats contiene estadísticas finales de la ejecución
type RunStats struct {
	Analyzed   int
	Rejected   int
	Imported   int
	Duplicates int
	Errors     int
	Duration   time.Duration
}

// Status representa el estado de un dominio en curso
type Status string

const (
	StatusPending  Status = "pending"
	StatusRunning  Status = "running"
	StatusSuccess  Status = "success"
	StatusRejected Status = "rejected"
	StatusFailed   Status = "failed"
)
