// internal/core/usecases/quality_gate.go
package usecases

import (
	"fmt"

	"domainlens/internal/core/domain"
)

// maxNameLength es el techo de longitud del nombre: concatenaciones más
// largas son casi siempre spam (keyword stuffing).
const maxNameLength = 25

// QualityGate filtra candidatos baratos de rechazar antes de gastar
// llamadas de enriquecimiento o ciclos de scoring.
type QualityGate struct{}

// NewQualityGate crea un quality gate con los umbrales por defecto.
func NewQualityGate() *QualityGate {
	return &QualityGate{}
}

// Check evalúa un candidato ya parseado. Función total: nunca falla,
// siempre devuelve un veredicto con razón cuando no pasa.
func (g *QualityGate) Check(parsed domain.ParsedDomain) domain.GateResult {
	if parsed.Normalized == "" {
		return domain.GateResult{Pass: false, Reason: "empty domain"}
	}
	if !parsed.HasTLD() {
		return domain.GateResult{Pass: false, Reason: "missing TLD"}
	}
	if domain.IsLowTrustTLD(parsed.TLD) {
		return domain.GateResult{
			Pass:   false,
			Reason: fmt.Sprintf("low-trust TLD .%s", parsed.TLD),
		}
	}
	if len(parsed.Name) > maxNameLength {
		return domain.GateResult{
			Pass:   false,
			Reason: fmt.Sprintf("name too long (%d > %d)", len(parsed.Name), maxNameLength),
		}
	}
	return domain.GateResult{Pass: true}
}

// CheckRaw parsea y evalúa en un solo paso.
func (g *QualityGate) CheckRaw(raw string) domain.GateResult {
	return g.Check(domain.ParseDomain(raw))
}
