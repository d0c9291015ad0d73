// internal/core/usecases/scoring_weights.go
package usecases

// Pesos y coeficientes de scoring. Son empíricos y ajustables: ninguno
// es garantía de corrección, pero los invariantes (rangos, floor de
// riesgo, monotonicidad) deben sobrevivir a cualquier retoque.

// Pesos de la puntuación global. Deben sumar 1.0.
const (
	weightAuthority = 0.30
	weightTrust     = 0.30
	weightRelevance = 0.10
	weightEmail     = 0.05
	weightFlip      = 0.15
	weightName      = 0.10
)

// Authority: contribuciones con retornos decrecientes, cada una con cap.
const (
	authorityDRWeight      = 0.5  // domainRating * 0.5, máx 50 pts
	authorityBacklinksCap  = 25.0 // log10(backlinks+1) * factor, capped
	authorityBacklinksMult = 8.0
	authorityRefDomsCap    = 25.0
	authorityRefDomsMult   = 10.0
)

// Trustworthiness: base neutral, boost por edad, penalizaciones Wayback.
const (
	trustBase        = 50.0
	trustAgeMult     = 3.0
	trustAgeCap      = 30.0
	trustPenAdult    = 40.0
	trustPenCasino   = 35.0
	trustPenPBN      = 30.0
	trustPenSpam     = 25.0
	trustPenBlacklist = 30.0
)

// Relevance neutra cuando no hay nicho objetivo.
const relevanceNeutral = 50.0

// Email/flip/name: longitud corta puntúa alto, guiones y dígitos restan.
const (
	nameLenIdeal      = 8  // hasta aquí, sin penalización
	nameLenMax        = 20 // a partir de aquí, puntuación mínima por longitud
	namePenHyphen     = 20.0
	namePenDigit      = 15.0
	flipAgeMult       = 2.0
	flipAgeCap        = 20.0
	emailComBonus     = 15.0
)

// Umbrales de recomendación sobre la puntuación global.
const (
	recThresholdStrongBuy = 80.0
	recThresholdBuy       = 65.0
	recThresholdConsider  = 45.0
)

// Puntos del indicador compuesto de spam que escala riskLevel.
const (
	riskPtsDenylistTLD = 2
	riskPtsAdult       = 3
	riskPtsCasino      = 3
	riskPtsPBN         = 2
	riskPtsSpam        = 2
	riskPtsSZHigh      = 2 // szScore > 15
	riskPtsSZMid       = 1 // szScore > 10
	riskPtsBlacklisted = 2

	riskThresholdMedium   = 1
	riskThresholdHigh     = 3
	riskThresholdCritical = 5
)

// Heurística monetaria: valor estimado y renta mensual.
const (
	valueDRMult        = 12.0
	valueRefDomsMult   = 2.0
	valueBacklinksMult = 0.05
	valueAgeBonusPerYr = 0.02 // +2% por año, hasta valueAgeBonusCapYrs
	valueAgeBonusCapYrs = 20.0
	monthlyRevenueRate = 0.02
)

// Puntos de quality tier para exports de pago (TF/CF/DA/SZ/edad).
const (
	tierTFHigh, tierTFHighPts = 25.0, 30
	tierTFMid, tierTFMidPts   = 15.0, 20
	tierTFLow, tierTFLowPts   = 8.0, 10

	tierRatioHigh, tierRatioHighPts = 0.9, 20
	tierRatioMid, tierRatioMidPts   = 0.7, 10

	tierDAHigh, tierDAHighPts = 30.0, 20
	tierDAMid, tierDAMidPts   = 15.0, 10

	tierSZGood, tierSZGoodPts = 5.0, 20
	tierSZOk, tierSZOkPts     = 10.0, 10
	tierSZBad, tierSZBadPts   = 15.0, -20

	tierAgeOld, tierAgeOldPts = 10.0, 10
	tierAgeMid, tierAgeMidPts = 5.0, 5

	tierGoldMin   = 70
	tierSilverMin = 45
	tierBronzeMin = 25
)
