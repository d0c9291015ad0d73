// internal/testutil/fixtures.go
package testutil

import (
	"time"

	"domainlens/internal/core/domain"
)

// FixtureMetrics devuelve métricas representativas de un dominio
// expirado de calidad media-alta.
func FixtureMetrics(name string) domain.Metrics {
	parsed := domain.ParseDomain(name)
	return domain.Metrics{
		Domain:           parsed.Normalized,
		TLD:              parsed.TLD,
		Length:           parsed.Length,
		DomainRating:     domain.Float(50),
		DomainAge:        domain.Float(10),
		Backlinks:        domain.Int(1000),
		ReferringDomains: domain.Int(120),
		TrustFlow:        domain.Float(22),
		CitationFlow:     domain.Float(28),
	}
}

// FixtureCleanWayback devuelve una señal de Wayback sin historial negativo.
func FixtureCleanWayback() *domain.WaybackSignal {
	return &domain.WaybackSignal{
		HasHistory:    true,
		FirstCapture:  time.Date(2012, 3, 1, 0, 0, 0, 0, time.UTC),
		LastCapture:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		TotalCaptures: 840,
	}
}

// FixtureDirtyWayback devuelve una señal con historial de casino y spam.
func FixtureDirtyWayback() *domain.WaybackSignal {
	w := FixtureCleanWayback()
	w.WasCasino = true
	w.HadSpam = true
	return w
}

// FixtureImported devuelve un item importado manualmente listo para tests.
func FixtureImported(name string) domain.ImportedDomainItem {
	return domain.NewImportedItem(name, domain.SourceManual)
}
