// internal/core/domain/imported.go
package domain

import (
	"strings"
	"time"
)

// ImportSource identifica el origen de un item importado.
type ImportSource string

const (
	SourceManual    ImportSource = "manual"
	SourceFree      ImportSource = "free"
	SourceSpamZilla ImportSource = "spamzilla"
	SourceExternal  ImportSource = "external"
)

// IsValid verifica si el origen es válido.
func (s ImportSource) IsValid() bool {
	switch s {
	case SourceManual, SourceFree, SourceSpamZilla, SourceExternal:
		return true
	default:
		return false
	}
}

// String retorna la representación string del origen.
func (s ImportSource) String() string {
	return string(s)
}

// DomainStatus es el estado de registro conocido del dominio.
type DomainStatus string

const (
	StatusUnknown   DomainStatus = "unknown"
	StatusAvailable DomainStatus = "available"
	StatusOwned     DomainStatus = "owned"
)

// IsValid verifica si el estado es válido.
func (s DomainStatus) IsValid() bool {
	switch s {
	case StatusUnknown, StatusAvailable, StatusOwned:
		return true
	default:
		return false
	}
}

// String retorna la representación string del estado.
func (s DomainStatus) String() string {
	return string(s)
}

// QualityTier es el bucket de calidad calculado para exports de pago.
type QualityTier string

const (
	TierGold   QualityTier = "gold"
	TierSilver QualityTier = "silver"
	TierBronze QualityTier = "bronze"
	TierNone   QualityTier = "none"
)

// IsValid verifica si el tier es válido.
func (t QualityTier) IsValid() bool {
	switch t {
	case TierGold, TierSilver, TierBronze, TierNone:
		return true
	default:
		return false
	}
}

// String retorna la representación string del tier.
func (t QualityTier) String() string {
	return string(t)
}

// Recommendation mapea el tier a un veredicto de compra. El orden es
// consistente con los umbrales del scorer: gold nunca recomienda menos
// que silver, etc.
func (t QualityTier) Recommendation() Recommendation {
	switch t {
	case TierGold:
		return RecommendStrongBuy
	case TierSilver:
		return RecommendBuy
	case TierBronze:
		return RecommendConsider
	default:
		return RecommendAvoid
	}
}

// RiskFromSZScore mapea el spam score de SpamZilla (menor = mejor) a un
// nivel de riesgo.
func RiskFromSZScore(szScore float64) RiskLevel {
	switch {
	case szScore <= 10:
		return RiskLow
	case szScore <= 15:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// ImportedDomainItem es la forma normalizada de un dominio importado desde
// cualquiera de las fuentes. Vive solo en la colección en memoria del
// import manager; este core no persiste nada.
type ImportedDomainItem struct {
	Domain string       `json:"domain"`
	TLD    string       `json:"tld"`
	Source ImportSource `json:"source"`
	Status DomainStatus `json:"status"`

	QualityTier QualityTier `json:"quality_tier"`
	Enriched    bool        `json:"enriched"`
	FetchedAt   time.Time   `json:"fetched_at"`

	// Métricas crudas del export (nil si la fuente no las trae)
	Metrics *Metrics `json:"metrics,omitempty"`

	// Campos específicos de exports de pago
	SZScore       *float64 `json:"sz_score,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	AuctionSource string   `json:"auction_source,omitempty"`

	// Veredictos preliminares calculados al ingerir un export de pago:
	// el tier mapea a recomendación y el SZ score a nivel de riesgo.
	// Un Score adjunto posterior los refina, no los borra.
	Recommendation Recommendation `json:"recommendation,omitempty"`
	RiskLevel      RiskLevel      `json:"risk_level,omitempty"`

	// Score adjunto tras el análisis (nil hasta que se puntúa)
	Score *Score `json:"score,omitempty"`
}

// NewImportedItem construye un item normalizado a partir de una cadena de
// dominio cruda.
func NewImportedItem(raw string, source ImportSource) ImportedDomainItem {
	parsed := ParseDomain(raw)
	return ImportedDomainItem{
		Domain:      parsed.Normalized,
		TLD:         parsed.TLD,
		Source:      source,
		Status:      StatusUnknown,
		QualityTier: TierNone,
		FetchedAt:   time.Now(),
	}
}

// Key retorna la clave de deduplicación: la cadena de dominio normalizada.
// La unicidad es global a la colección, a través de todas las fuentes.
func (i ImportedDomainItem) Key() string {
	return i.Domain
}

// IsValid verifica que el item tenga datos mínimos coherentes.
func (i ImportedDomainItem) IsValid() bool {
	if i.Domain == "" || !strings.Contains(i.Domain, ".") {
		return false
	}
	return i.Source.IsValid() && i.Status.IsValid() && i.QualityTier.IsValid()
}
