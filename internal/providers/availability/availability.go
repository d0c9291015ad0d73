// internal/providers/availability/availability.go
package availability

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/likexian/whois"
	"golang.org/x/net/publicsuffix"

	"domainlens/internal/core/domain"
	"domainlens/internal/core/ports"
	"domainlens/internal/platform/errors"
	"domainlens/internal/platform/logx"
	"domainlens/internal/platform/registry"
)

// Auto-registro del provider al importar el package
func init() {
	if err := registry.Global().Register(
		"availability",
		func(cfg ports.ProviderConfig, logger logx.Logger) (ports.Provider, error) {
			return New(cfg, logger), nil
		},
		ports.ProviderMetadata{
			Name:        "availability",
			Description: "Registration status via WHOIS with DNS fallback",
			Type:        ports.ProviderTypeWHOIS,
			RateLimit:   0.5,
			Priority:    4,
		},
	); err != nil {
		logx.New().Warn("failed to register availability provider", "error", err.Error())
	}
}

// availablePatterns: respuestas WHOIS que indican dominio libre. Cada
// registry redacta distinto, de ahí la lista.
var availablePatterns = []string{
	"no match for",
	"not found",
	"no data found",
	"no entries found",
	"status: free",
	"status: available",
	"domain not found",
	"is available for registration",
}

type whoisFunc func(domain string) (string, error)
type nsLookupFunc func(ctx context.Context, domain string) ([]*net.NS, error)

// Provider determina el estado de registro del dominio: WHOIS primero,
// lookup NS como fallback cuando el WHOIS no responde.
type Provider struct {
	whoisQuery whoisFunc
	nsLookup   nsLookupFunc
	logger     logx.Logger
}

// New crea el provider.
func New(cfg ports.ProviderConfig, logger logx.Logger) *Provider {
	return &Provider{
		whoisQuery: func(domain string) (string, error) { return whois.Whois(domain) },
		nsLookup:   net.DefaultResolver.LookupNS,
		logger:     logger.With("provider", "availability"),
	}
}

func (p *Provider) Name() string             { return "availability" }
func (p *Provider) Type() ports.ProviderType { return ports.ProviderTypeWHOIS }
func (p *Provider) Close() error             { return nil }

// Enrich resuelve el estado del dominio. El WHOIS se consulta sobre el
// dominio registrable (eTLD+1), no sobre subdominios.
func (p *Provider) Enrich(ctx context.Context, candidate domain.ParsedDomain) (*domain.Enrichment, error) {
	registrable := registrableDomain(candidate.Normalized)

	result := domain.AvailabilityResult{
		Status:    domain.StatusUnknown,
		CheckedAt: time.Now(),
	}

	if raw, err := p.whoisQuery(registrable); err == nil && strings.TrimSpace(raw) != "" {
		result.Method = "whois"
		if isAvailableResponse(raw) {
			result.Status = domain.StatusAvailable
		} else {
			result.Status = domain.StatusOwned
		}
		p.logger.Debug("whois resolved status",
			"domain", registrable, "status", result.Status.String())
		return &domain.Enrichment{Availability: &result}, nil
	}

	// Fallback DNS: la presencia de NS delega implica registro
	result.Method = "dns"
	if ns, err := p.nsLookup(ctx, registrable); err == nil && len(ns) > 0 {
		result.Status = domain.StatusOwned
	} else if isNXDomain(err) {
		result.Status = domain.StatusAvailable
	}

	p.logger.Debug("dns fallback resolved status",
		"domain", registrable, "status", result.Status.String())
	return &domain.Enrichment{Availability: &result}, nil
}

// registrableDomain reduce al eTLD+1 usando la public suffix list; si la
// PSL no reconoce el sufijo, se usa el dominio tal cual.
func registrableDomain(name string) string {
	if etld1, err := publicsuffix.EffectiveTLDPlusOne(name); err == nil {
		return etld1
	}
	return name
}

// isAvailableResponse busca los patrones de "dominio libre" en el texto
// WHOIS crudo.
func isAvailableResponse(raw string) bool {
	lower := strings.ToLower(raw)
	for _, pattern := range availablePatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// isNXDomain distingue "no existe" de un fallo transitorio del resolver.
func isNXDomain(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsNotFound
	}
	return false
}
