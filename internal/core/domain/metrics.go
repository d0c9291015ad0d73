// internal/core/domain/metrics.go
package domain

import "time"

// Metrics agrupa las señales externas de un dominio. Todos los campos de
// medición son opcionales: un puntero nil significa "señal ausente" y cada
// fórmula del scorer lo trata como contribución neutra, nunca como cero
// implícito.
type Metrics struct {
	// Identidad del dominio (salida del parser o datos del import)
	Domain string
	TLD    string // puede llegar con punto inicial (".com")
	Length int

	// Señales SEO / backlink
	DomainRating     *float64 // 0-100 (estilo Ahrefs DR)
	DomainAge        *float64 // años
	Backlinks        *int
	ReferringDomains *int
	TrustFlow        *float64
	CitationFlow     *float64

	// Señal de spam de exports de pago (menor = mejor)
	SpamScore *float64
}

// WaybackSignal resume el historial de un dominio en el archivo web.
type WaybackSignal struct {
	HasHistory    bool
	FirstCapture  time.Time
	LastCapture   time.Time
	TotalCaptures int

	// Flags negativos derivados del contenido archivado
	WasAdult  bool
	WasCasino bool
	WasPBN    bool
	HadSpam   bool
}

// HasNegativeHistory indica si el historial contiene alguna señal tóxica.
func (w WaybackSignal) HasNegativeHistory() bool {
	return w.WasAdult || w.WasCasino || w.WasPBN || w.HadSpam
}

// ZoneHit es el detalle de una zona DNSBL que listó al dominio.
type ZoneHit struct {
	Zone   string
	Record string
}

// BlacklistReport es la respuesta del proveedor de listas negras DNS.
type BlacklistReport struct {
	Listed bool
	Zones  []ZoneHit
}

// SpamReport es la respuesta del chequeo heurístico de spam.
type SpamReport struct {
	IsSpammy    bool
	SpamScore   float64
	Issues      []string
	Blacklisted bool
}

// TrustReport es la respuesta del chequeo heurístico de confianza.
type TrustReport struct {
	Trustworthy bool
	Score       float64
	Positives   []string
	Negatives   []string
}

// AvailabilityResult es el resultado del chequeo WHOIS/DNS de disponibilidad.
type AvailabilityResult struct {
	Status    DomainStatus
	Method    string // "whois" o "dns"
	CheckedAt time.Time
}

// Enrichment agrega las señales opcionales recogidas de los proveedores
// externos. Cada puntero nil significa que el proveedor falló o no estaba
// habilitado; el scorer degrada esa sub-señal en lugar de fallar.
type Enrichment struct {
	Wayback      *WaybackSignal
	Blacklist    *BlacklistReport
	Spam         *SpamReport
	Trust        *TrustReport
	Availability *AvailabilityResult
}

// Merge incorpora en e las señales presentes en other sin sobreescribir
// las ya recogidas.
func (e *Enrichment) Merge(other *Enrichment) {
	if other == nil {
		return
	}
	if e.Wayback == nil {
		e.Wayback = other.Wayback
	}
	if e.Blacklist == nil {
		e.Blacklist = other.Blacklist
	}
	if e.Spam == nil {
		e.Spam = other.Spam
	}
	if e.Trust == nil {
		e.Trust = other.Trust
	}
	if e.Availability == nil {
		e.Availability = other.Availability
	}
}

// Float retorna un puntero a v. Ayuda para construir Metrics literales.
func Float(v float64) *float64 { return &v }

// Int retorna un puntero a v.
func Int(v int) *int { return &v }
