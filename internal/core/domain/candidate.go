// internal/core/domain/candidate.go
package domain

import (
	"strings"
)

// ParsedDomain representa un dominio candidato ya descompuesto.
// Es la entidad de entrada de todo el pipeline de análisis.
type ParsedDomain struct {
	// Raw es la cadena original tal y como llegó
	Raw string

	// Normalized es la forma canónica en minúsculas, sin esquema ni rutas
	Normalized string

	// Name es todo lo anterior al último punto ("example.co" en "example.co.uk")
	Name string

	// TLD es el sufijo tras el último punto, nunca con punto inicial
	TLD string

	// Length es la longitud del dominio sin contar el sufijo TLD
	Length int
}

// ParseDomain descompone una cadena de dominio usando el último punto como
// separador. Es una función total: cualquier entrada produce un resultado,
// nunca un error. No consulta la public suffix list a propósito: el pipeline
// trata "example.co.uk" como name="example.co", tld="uk".
func ParseDomain(raw string) ParsedDomain {
	normalized := NormalizeDomain(raw)

	name := normalized
	tld := ""
	if idx := strings.LastIndex(normalized, "."); idx >= 0 {
		name = normalized[:idx]
		tld = normalized[idx+1:]
	}

	return ParsedDomain{
		Raw:        raw,
		Normalized: normalized,
		Name:       name,
		TLD:        tld,
		Length:     len(normalized) - len(tld),
	}
}

// NormalizeDomain normaliza una cadena de dominio: minúsculas, sin espacios,
// sin esquema, sin "www.", sin barra final ni punto final.
func NormalizeDomain(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	v = strings.TrimPrefix(v, "http://")
	v = strings.TrimPrefix(v, "https://")
	if idx := strings.IndexAny(v, "/?#"); idx >= 0 {
		v = v[:idx]
	}
	v = strings.TrimSuffix(v, ".")
	v = strings.TrimPrefix(v, "*.")
	v = strings.TrimPrefix(v, "www.")
	return v
}

// HasTLD indica si el parseo encontró un sufijo.
func (p ParsedDomain) HasTLD() bool {
	return p.TLD != ""
}

// DottedTLD retorna el TLD con punto inicial (".com"), o cadena vacía.
// Útil para comparar con datos externos que llegan en ese formato.
func (p ParsedDomain) DottedTLD() string {
	if p.TLD == "" {
		return ""
	}
	return "." + p.TLD
}

// String retorna la forma normalizada.
func (p ParsedDomain) String() string {
	return p.Normalized
}
