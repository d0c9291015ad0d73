// internal/core/usecases/quality_tier.go
package usecases

import "domainlens/internal/core/domain"

// TierInputs son las columnas crudas de un export de pago que alimentan
// el cálculo de quality tier. Todas opcionales: un campo ausente
// simplemente no aporta puntos.
type TierInputs struct {
	TrustFlow       *float64
	CitationFlow    *float64
	DomainAuthority *float64
	SZScore         *float64
	AgeYears        *float64
}

// ComputeQualityTier aplica el sistema de puntos con caps sobre las
// métricas del export y devuelve el bucket resultante junto con los
// puntos acumulados. La división TF/CF está protegida contra CF cero.
func ComputeQualityTier(in TierInputs) (domain.QualityTier, int) {
	pts := 0

	if in.TrustFlow != nil {
		switch tf := *in.TrustFlow; {
		case tf >= tierTFHigh:
			pts += tierTFHighPts
		case tf >= tierTFMid:
			pts += tierTFMidPts
		case tf >= tierTFLow:
			pts += tierTFLowPts
		}
	}

	if in.TrustFlow != nil && in.CitationFlow != nil && *in.CitationFlow > 0 {
		switch ratio := *in.TrustFlow / *in.CitationFlow; {
		case ratio >= tierRatioHigh:
			pts += tierRatioHighPts
		case ratio >= tierRatioMid:
			pts += tierRatioMidPts
		}
	}

	if in.DomainAuthority != nil {
		switch da := *in.DomainAuthority; {
		case da >= tierDAHigh:
			pts += tierDAHighPts
		case da >= tierDAMid:
			pts += tierDAMidPts
		}
	}

	if in.SZScore != nil {
		switch sz := *in.SZScore; {
		case sz <= tierSZGood:
			pts += tierSZGoodPts
		case sz <= tierSZOk:
			pts += tierSZOkPts
		case sz > tierSZBad:
			pts += tierSZBadPts
		}
	}

	if in.AgeYears != nil {
		switch age := *in.AgeYears; {
		case age >= tierAgeOld:
			pts += tierAgeOldPts
		case age >= tierAgeMid:
			pts += tierAgeMidPts
		}
	}

	switch {
	case pts >= tierGoldMin:
		return domain.TierGold, pts
	case pts >= tierSilverMin:
		return domain.TierSilver, pts
	case pts >= tierBronzeMin:
		return domain.TierBronze, pts
	default:
		return domain.TierNone, pts
	}
}
