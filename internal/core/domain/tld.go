// internal/core/domain/tld.go
package domain

// lowTrustTLDs agrupa los sufijos con reputación de spam alta. Se usa tanto
// en el quality gate (rechazo barato) como en el cálculo de riesgo.
var lowTrustTLDs = map[string]bool{
	"xyz":    true,
	"top":    true,
	"club":   true,
	"online": true,
	"site":   true,
	"icu":    true,
	"buzz":   true,
	"work":   true,
	"click":  true,
	"loan":   true,
	"rest":   true,
	"surf":   true,
	"gq":     true,
	"cf":     true,
	"tk":     true,
	"ml":     true,
	"ga":     true,
}

// tldValueMultipliers pondera el valor de mercado por sufijo.
// ".com" domina el mercado de reventa, de ahí su multiplicador.
var tldValueMultipliers = map[string]float64{
	"com": 1.5,
	"net": 1.2,
	"org": 1.2,
	"io":  1.3,
	"co":  1.15,
	"ai":  1.4,
}

// tldDesirabilityBonus puntúa el atractivo del sufijo para las sub-puntuaciones
// de email/flip/name quality (0-20).
var tldDesirabilityBonus = map[string]float64{
	"com": 20,
	"net": 10,
	"org": 10,
	"io":  12,
	"co":  10,
	"ai":  14,
}

// IsLowTrustTLD indica si el sufijo pertenece a la denylist de baja confianza.
// Acepta el sufijo con o sin punto inicial.
func IsLowTrustTLD(tld string) bool {
	return lowTrustTLDs[trimDot(tld)]
}

// TLDValueMultiplier retorna el multiplicador de valor del sufijo (1.0 si
// no está tabulado).
func TLDValueMultiplier(tld string) float64 {
	if m, ok := tldValueMultipliers[trimDot(tld)]; ok {
		return m
	}
	return 1.0
}

// TLDDesirability retorna el bonus de atractivo del sufijo (0 si no está
// tabulado).
func TLDDesirability(tld string) float64 {
	return tldDesirabilityBonus[trimDot(tld)]
}

func trimDot(tld string) string {
	if len(tld) > 0 && tld[0] == '.' {
		return tld[1:]
	}
	return tld
}
