// internal/core/domain/score.go
package domain

// RiskLevel clasifica el riesgo de adquisición de un dominio.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// IsValid verifica si el nivel de riesgo es válido.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	default:
		return false
	}
}

// String retorna la representación string del nivel.
func (r RiskLevel) String() string {
	return string(r)
}

// AtLeast indica si r es igual o más severo que other.
func (r RiskLevel) AtLeast(other RiskLevel) bool {
	return riskRank(r) >= riskRank(other)
}

func riskRank(r RiskLevel) int {
	switch r {
	case RiskLow:
		return 0
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	case RiskCritical:
		return 3
	default:
		return -1
	}
}

// Recommendation es el veredicto de compra derivado de la puntuación.
type Recommendation string

const (
	RecommendStrongBuy Recommendation = "strong-buy"
	RecommendBuy       Recommendation = "buy"
	RecommendConsider  Recommendation = "consider"
	RecommendAvoid     Recommendation = "avoid"
)

// IsValid verifica si la recomendación es válida.
func (r Recommendation) IsValid() bool {
	switch r {
	case RecommendStrongBuy, RecommendBuy, RecommendConsider, RecommendAvoid:
		return true
	default:
		return false
	}
}

// String retorna la representación string de la recomendación.
func (r Recommendation) String() string {
	return string(r)
}

// RiskType clasifica un riesgo detectado durante el scoring.
type RiskType string

const (
	RiskTypeAdult     RiskType = "adult"
	RiskTypeCasino    RiskType = "casino"
	RiskTypePBN       RiskType = "pbn"
	RiskTypeSpam      RiskType = "spam"
	RiskTypeBlacklist RiskType = "blacklist"
	RiskTypeTLD       RiskType = "tld"
	RiskTypeNoHistory RiskType = "no-history"
)

// Risk es un riesgo concreto con descripción legible, ligado 1:1 a la regla
// que lo disparó.
type Risk struct {
	Type        RiskType `json:"type"`
	Description string   `json:"description"`
}

// SubScores agrupa las sub-puntuaciones del dominio, todas en [0,100].
type SubScores struct {
	Authority       float64 `json:"authority"`
	Trustworthiness float64 `json:"trustworthiness"`
	Relevance       float64 `json:"relevance"`
	EmailPotential  float64 `json:"email_potential"`
	FlipPotential   float64 `json:"flip_potential"`
	NameQuality     float64 `json:"name_quality"`
}

// Score es el resultado completo del scorer. Se calcula una vez y se trata
// como inmutable: re-puntuar produce un Score nuevo, nunca muta este.
type Score struct {
	Overall        float64        `json:"overall"` // 0-100
	Sub            SubScores      `json:"sub_scores"`
	RiskLevel      RiskLevel      `json:"risk_level"`
	Recommendation Recommendation `json:"recommendation"`

	// Reasons en orden de evaluación de reglas; Risks ligados a cada flag
	Reasons []string `json:"reasons"`
	Risks   []Risk   `json:"risks"`

	EstimatedValue          float64 `json:"estimated_value"`
	EstimatedMonthlyRevenue float64 `json:"estimated_monthly_revenue"`
}
