// internal/core/ports/provider.go
package ports

import (
	"context"
	"time"

	"domainlens/internal/core/domain"
)

// ProviderType clasifica proveedores por su tipo de implementación.
type ProviderType string

const (
	// ProviderTypeAPI proveedores que consumen APIs HTTP
	ProviderTypeAPI ProviderType = "api"

	// ProviderTypeDNS proveedores basados en consultas DNS
	ProviderTypeDNS ProviderType = "dns"

	// ProviderTypeWHOIS proveedores basados en consultas WHOIS
	ProviderTypeWHOIS ProviderType = "whois"

	// ProviderTypeHeuristic proveedores puramente locales
	ProviderTypeHeuristic ProviderType = "heuristic"
)

// Provider es el port primario para las fuentes de señal externas.
// Cualquier proveedor (Wayback, DNSBL, WHOIS, heurístico) debe implementarlo.
type Provider interface {
	// Name retorna el nombre único del proveedor (ej: "wayback", "dnsbl")
	Name() string

	// Type retorna el tipo de implementación
	Type() ProviderType

	// Enrich consulta la señal para el candidato. Un error aquí degrada la
	// señal a ausente en el caller; nunca aborta el análisis completo.
	Enrich(ctx context.Context, candidate domain.ParsedDomain) (*domain.Enrichment, error)

	// Close libera recursos utilizados por el proveedor
	Close() error
}

// ProviderConfig contiene la configuración específica de un proveedor.
type ProviderConfig struct {
	// Enabled indica si el proveedor está habilitado
	Enabled bool `yaml:"enabled"`

	// Timeout tiempo máximo por llamada
	Timeout time.Duration `yaml:"timeout"`

	// Retries número de reintentos en caso de fallo
	Retries int `yaml:"retries"`

	// RateLimit límite de peticiones por segundo (0 = sin límite)
	RateLimit float64 `yaml:"rate_limit"`

	// Priority prioridad de ejecución (mayor = más prioritario)
	Priority int `yaml:"priority"`
}

// DefaultProviderConfig retorna una configuración por defecto.
func DefaultProviderConfig() ProviderConfig {
	return ProviderConfig{
		Enabled:   true,
		Timeout:   15 * time.Second,
		Retries:   2,
		RateLimit: 0,
		Priority:  0,
	}
}

// ProviderMetadata contiene metadatos sobre un proveedor registrado.
type ProviderMetadata struct {
	Name        string
	Description string
	Type        ProviderType
	RateLimit   float64 // límite recomendado de requests/segundo
	Priority    int
}
