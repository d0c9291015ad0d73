// internal/platform/validator/validator.go
package validator

import (
	"net"
	"regexp"
)

// domainRegex valida etiquetas de dominio (incluye punycode).
var domainRegex = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)

// IsDomain verifica si un string es un dominio sintácticamente válido.
// Distingue dominios de direcciones IP.
func IsDomain(domain string) bool {
	if len(domain) == 0 || len(domain) > 253 {
		return false
	}
	if !domainRegex.MatchString(domain) {
		return false
	}
	// Una IP literal no es un dominio
	if net.ParseIP(domain) != nil {
		return false
	}
	return true
}

// IsIP verifica si un string es una dirección IP válida (v4 o v6).
func IsIP(ip string) bool {
	return net.ParseIP(ip) != nil
}
