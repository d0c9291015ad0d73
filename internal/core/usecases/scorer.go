// internal/core/usecases/scorer.go
package usecases

import (
	"fmt"
	"math"
	"strings"

	"domainlens/internal/core/domain"
	"domainlens/internal/core/ports"
)

// Scorer combina señales estructurales y externas en sub-puntuaciones,
// puntuación global, nivel de riesgo y recomendación de compra.
//
// Es una función total y pura: ninguna métrica ausente es fatal, toda
// división está protegida contra cero, y el resultado siempre queda en
// rango. Seguro para llamadas concurrentes (sin estado mutable).
type Scorer struct {
	words ports.WordList
}

// NewScorer crea un scorer con el wordlist dado para segmentar nombres
// al calcular relevancia.
func NewScorer(words ports.WordList) *Scorer {
	return &Scorer{words: words}
}

// Score calcula la puntuación completa de un dominio. targetNiche puede
// ser vacío (relevancia neutral). enrich puede ser nil (sin señales
// externas: se puntúa solo con estructura y métricas).
func (s *Scorer) Score(m domain.Metrics, targetNiche string, enrich *domain.Enrichment) domain.Score {
	parsed := domain.ParseDomain(m.Domain)

	var wayback *domain.WaybackSignal
	var blacklist *domain.BlacklistReport
	var spam *domain.SpamReport
	if enrich != nil {
		wayback = enrich.Wayback
		blacklist = enrich.Blacklist
		spam = enrich.Spam
	}

	sub := domain.SubScores{
		Authority:       s.authority(m),
		Trustworthiness: s.trustworthiness(m, wayback, blacklist, spam),
		Relevance:       s.relevance(parsed, targetNiche),
		NameQuality:     s.nameQuality(parsed),
	}
	sub.EmailPotential = s.emailPotential(parsed, sub.NameQuality)
	sub.FlipPotential = s.flipPotential(m, parsed, sub.Authority, sub.NameQuality)

	overall := clamp(
		sub.Authority*weightAuthority+
			sub.Trustworthiness*weightTrust+
			sub.Relevance*weightRelevance+
			sub.EmailPotential*weightEmail+
			sub.FlipPotential*weightFlip+
			sub.NameQuality*weightName,
		0, 100)

	risks := collectRisks(parsed, wayback, blacklist, spam)
	riskLevel := riskFromPoints(riskPoints(parsed, wayback, blacklist, spam, m.SpamScore))
	if m.SpamScore != nil {
		// El SZ score impone un suelo de riesgo propio por encima del
		// indicador compuesto
		if floor := domain.RiskFromSZScore(*m.SpamScore); !riskLevel.AtLeast(floor) {
			riskLevel = floor
		}
	}

	value := s.estimateValue(m, parsed)

	return domain.Score{
		Overall:                 overall,
		Sub:                     sub,
		RiskLevel:               riskLevel,
		Recommendation:          recommendationFor(overall),
		Reasons:                 s.reasons(m, parsed, sub, targetNiche, wayback),
		Risks:                   risks,
		EstimatedValue:          value,
		EstimatedMonthlyRevenue: value * monthlyRevenueRate,
	}
}

// authority: retornos decrecientes sobre DR, backlinks y referring
// domains, cada contribución con su propio cap.
func (s *Scorer) authority(m domain.Metrics) float64 {
	score := 0.0
	if m.DomainRating != nil {
		score += math.Min(*m.DomainRating, 100) * authorityDRWeight
	}
	if m.Backlinks != nil && *m.Backlinks > 0 {
		score += math.Min(math.Log10(float64(*m.Backlinks)+1)*authorityBacklinksMult, authorityBacklinksCap)
	}
	if m.ReferringDomains != nil && *m.ReferringDomains > 0 {
		score += math.Min(math.Log10(float64(*m.ReferringDomains)+1)*authorityRefDomsMult, authorityRefDomsCap)
	}
	return clamp(score, 0, 100)
}

// trustworthiness: base neutral, boost por edad, penalizaciones por
// historial negativo en el archivo y por listados en blacklists.
func (s *Scorer) trustworthiness(m domain.Metrics, wayback *domain.WaybackSignal, blacklist *domain.BlacklistReport, spam *domain.SpamReport) float64 {
	score := trustBase
	if m.DomainAge != nil {
		score += math.Min(*m.DomainAge*trustAgeMult, trustAgeCap)
	}
	if wayback != nil {
		if wayback.WasAdult {
			score -= trustPenAdult
		}
		if wayback.WasCasino {
			score -= trustPenCasino
		}
		if wayback.WasPBN {
			score -= trustPenPBN
		}
		if wayback.HadSpam {
			score -= trustPenSpam
		}
	}
	if blacklist != nil && blacklist.Listed {
		score -= trustPenBlacklist
	}
	if spam != nil && spam.Blacklisted {
		score -= trustPenBlacklist
	}
	return clamp(score, 0, 100)
}

// relevance: solape de tokens (case-insensitive) entre los segmentos del
// nombre y el nicho objetivo. Sin nicho, neutral.
func (s *Scorer) relevance(parsed domain.ParsedDomain, targetNiche string) float64 {
	niche := strings.ToLower(strings.TrimSpace(targetNiche))
	if niche == "" {
		return relevanceNeutral
	}

	segments := segmentName(parsed.Name, s.words)
	nicheTokens := strings.Fields(niche)
	if len(nicheTokens) == 0 || len(segments) == 0 {
		return relevanceNeutral
	}

	matched := 0
	for _, nt := range nicheTokens {
		for _, seg := range segments {
			if seg == nt || strings.Contains(seg, nt) || strings.Contains(nt, seg) {
				matched++
				break
			}
		}
	}
	return clamp(float64(matched)/float64(len(nicheTokens))*100, 0, 100)
}

// nameQuality: nombres cortos, sin guiones ni dígitos, con TLD deseable.
func (s *Scorer) nameQuality(parsed domain.ParsedDomain) float64 {
	score := lengthScore(len(parsed.Name))
	if strings.Contains(parsed.Name, "-") {
		score -= namePenHyphen
	}
	if strings.ContainsAny(parsed.Name, "0123456789") {
		score -= namePenDigit
	}
	score += domain.TLDDesirability(parsed.TLD)
	return clamp(score, 0, 100)
}

// emailPotential: proporción del nameQuality con bonus para .com, que
// domina la credibilidad de un remitente.
func (s *Scorer) emailPotential(parsed domain.ParsedDomain, nameQuality float64) float64 {
	score := nameQuality * 0.75
	if parsed.TLD == "com" {
		score += emailComBonus
	} else {
		score += domain.TLDDesirability(parsed.TLD) * 0.5
	}
	return clamp(score, 0, 100)
}

// flipPotential: mezcla autoridad, calidad de nombre, edad y TLD.
func (s *Scorer) flipPotential(m domain.Metrics, parsed domain.ParsedDomain, authority, nameQuality float64) float64 {
	score := authority*0.35 + nameQuality*0.35
	if m.DomainAge != nil {
		score += math.Min(*m.DomainAge*flipAgeMult, flipAgeCap)
	}
	score += domain.TLDDesirability(parsed.TLD) * 0.5
	return clamp(score, 0, 100)
}

// estimateValue: heurística monetaria sobre DR, referring domains,
// backlinks, multiplicador de TLD y edad.
func (s *Scorer) estimateValue(m domain.Metrics, parsed domain.ParsedDomain) float64 {
	base := 0.0
	if m.DomainRating != nil {
		base += *m.DomainRating * valueDRMult
	}
	if m.ReferringDomains != nil {
		base += float64(*m.ReferringDomains) * valueRefDomsMult
	}
	if m.Backlinks != nil {
		base += float64(*m.Backlinks) * valueBacklinksMult
	}
	if base <= 0 {
		return 0
	}

	base *= domain.TLDValueMultiplier(parsed.TLD)
	if m.DomainAge != nil {
		base *= 1 + math.Min(*m.DomainAge, valueAgeBonusCapYrs)*valueAgeBonusPerYr
	}
	return math.Round(base)
}

// riskPoints acumula el indicador compuesto de spam. szScore viene del
// flujo de import (exports de pago); nil cuando no aplica.
func riskPoints(parsed domain.ParsedDomain, wayback *domain.WaybackSignal, blacklist *domain.BlacklistReport, spam *domain.SpamReport, szScore *float64) int {
	pts := 0
	if domain.IsLowTrustTLD(parsed.TLD) {
		pts += riskPtsDenylistTLD
	}
	if wayback != nil {
		if wayback.WasAdult {
			pts += riskPtsAdult
		}
		if wayback.WasCasino {
			pts += riskPtsCasino
		}
		if wayback.WasPBN {
			pts += riskPtsPBN
		}
		if wayback.HadSpam {
			pts += riskPtsSpam
		}
	}
	if blacklist != nil && blacklist.Listed {
		pts += riskPtsBlacklisted
	}
	if spam != nil {
		if spam.Blacklisted {
			pts += riskPtsBlacklisted
		}
		switch {
		case spam.SpamScore > tierSZBad:
			pts += riskPtsSZHigh
		case spam.SpamScore > tierSZOk:
			pts += riskPtsSZMid
		}
	}
	if szScore != nil {
		switch {
		case *szScore > tierSZBad:
			pts += riskPtsSZHigh
		case *szScore > tierSZOk:
			pts += riskPtsSZMid
		}
	}
	return pts
}

// riskFromPoints mapea el indicador compuesto a un nivel. Cualquier flag
// adult/casino/pbn aporta 2+ puntos, así que nunca queda en "low".
func riskFromPoints(pts int) domain.RiskLevel {
	switch {
	case pts >= riskThresholdCritical:
		return domain.RiskCritical
	case pts >= riskThresholdHigh:
		return domain.RiskHigh
	case pts >= riskThresholdMedium:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// recommendationFor mapea la puntuación global a un veredicto, ordinal
// con el mapeo qualityTier -> recommendation de los imports.
func recommendationFor(overall float64) domain.Recommendation {
	switch {
	case overall >= recThresholdStrongBuy:
		return domain.RecommendStrongBuy
	case overall >= recThresholdBuy:
		return domain.RecommendBuy
	case overall >= recThresholdConsider:
		return domain.RecommendConsider
	default:
		return domain.RecommendAvoid
	}
}

// collectRisks emite un risk tipado por cada regla que dispara, 1:1.
func collectRisks(parsed domain.ParsedDomain, wayback *domain.WaybackSignal, blacklist *domain.BlacklistReport, spam *domain.SpamReport) []domain.Risk {
	var risks []domain.Risk
	if domain.IsLowTrustTLD(parsed.TLD) {
		risks = append(risks, domain.Risk{
			Type:        domain.RiskTypeTLD,
			Description: fmt.Sprintf("TLD .%s is on the low-trust denylist", parsed.TLD),
		})
	}
	if wayback != nil {
		if wayback.WasAdult {
			risks = append(risks, domain.Risk{
				Type:        domain.RiskTypeAdult,
				Description: "archived captures contain adult content",
			})
		}
		if wayback.WasCasino {
			risks = append(risks, domain.Risk{
				Type:        domain.RiskTypeCasino,
				Description: "archived captures contain casino/gambling content",
			})
		}
		if wayback.WasPBN {
			risks = append(risks, domain.Risk{
				Type:        domain.RiskTypePBN,
				Description: "archive history suggests private blog network usage",
			})
		}
		if wayback.HadSpam {
			risks = append(risks, domain.Risk{
				Type:        domain.RiskTypeSpam,
				Description: "archived captures contain spam content",
			})
		}
		if !wayback.HasHistory {
			risks = append(risks, domain.Risk{
				Type:        domain.RiskTypeNoHistory,
				Description: "no archive history found for this domain",
			})
		}
	}
	if blacklist != nil && blacklist.Listed {
		risks = append(risks, domain.Risk{
			Type:        domain.RiskTypeBlacklist,
			Description: fmt.Sprintf("listed on %d DNS blacklist zone(s)", len(blacklist.Zones)),
		})
	}
	if spam != nil && spam.Blacklisted {
		risks = append(risks, domain.Risk{
			Type:        domain.RiskTypeBlacklist,
			Description: "flagged as blacklisted by spam heuristics",
		})
	}
	return risks
}

// reasons genera las razones legibles en orden estable, una por regla.
func (s *Scorer) reasons(m domain.Metrics, parsed domain.ParsedDomain, sub domain.SubScores, targetNiche string, wayback *domain.WaybackSignal) []string {
	var out []string
	if m.DomainRating != nil {
		out = append(out, fmt.Sprintf("domain rating %.0f contributes %.0f authority points", *m.DomainRating, math.Min(*m.DomainRating, 100)*authorityDRWeight))
	}
	if m.Backlinks != nil && *m.Backlinks > 0 {
		out = append(out, fmt.Sprintf("%d backlinks strengthen the authority profile", *m.Backlinks))
	}
	if m.DomainAge != nil && *m.DomainAge >= 5 {
		out = append(out, fmt.Sprintf("%.0f years of age boost trustworthiness", *m.DomainAge))
	}
	if wayback != nil && wayback.HasHistory && !wayback.HasNegativeHistory() {
		out = append(out, fmt.Sprintf("clean archive history with %d captures", wayback.TotalCaptures))
	}
	if targetNiche != "" && sub.Relevance >= 100 {
		out = append(out, fmt.Sprintf("name fully matches target niche %q", targetNiche))
	}
	if parsed.TLD == "com" {
		out = append(out, ".com carries the highest resale multiplier")
	}
	if len(parsed.Name) <= nameLenIdeal && !strings.ContainsAny(parsed.Name, "-0123456789") {
		out = append(out, "short, clean name without hyphens or digits")
	}
	return out
}

// lengthScore: 100 hasta la longitud ideal, decae lineal hasta el máximo.
func lengthScore(n int) float64 {
	switch {
	case n <= nameLenIdeal:
		return 100
	case n >= nameLenMax:
		return 0
	default:
		return 100 * float64(nameLenMax-n) / float64(nameLenMax-nameLenIdeal)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
