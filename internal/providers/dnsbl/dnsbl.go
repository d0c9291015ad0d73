// internal/providers/dnsbl/dnsbl.go
package dnsbl

import (
	"context"
	"net"
	"strings"
	"sync"

	"domainlens/internal/core/domain"
	"domainlens/internal/core/ports"
	"domainlens/internal/platform/logx"
	"domainlens/internal/platform/registry"
)

// Auto-registro del provider al importar el package
func init() {
	if err := registry.Global().Register(
		"dnsbl",
		func(cfg ports.ProviderConfig, logger logx.Logger) (ports.Provider, error) {
			return New(cfg, logger), nil
		},
		ports.ProviderMetadata{
			Name:        "dnsbl",
			Description: "Domain blacklist lookups against public DNSBL zones",
			Type:        ports.ProviderTypeDNS,
			Priority:    8,
		},
	); err != nil {
		logx.New().Warn("failed to register dnsbl provider", "error", err.Error())
	}
}

// defaultZones son listas negras orientadas a dominio (no a IP): se
// consulta <dominio>.<zona> y cualquier respuesta A implica listado.
var defaultZones = []string{
	"dbl.spamhaus.org",
	"multi.surbl.org",
	"multi.uribl.com",
}

// lookupFunc abstrae la resolución DNS para poder testear sin red.
type lookupFunc func(ctx context.Context, host string) ([]string, error)

// Provider consulta zonas DNSBL para el dominio candidato.
type Provider struct {
	lookup lookupFunc
	zones  []string
	logger logx.Logger
}

// New crea el provider con las zonas por defecto.
func New(cfg ports.ProviderConfig, logger logx.Logger) *Provider {
	return &Provider{
		lookup: net.DefaultResolver.LookupHost,
		zones:  defaultZones,
		logger: logger.With("provider", "dnsbl"),
	}
}

func (p *Provider) Name() string             { return "dnsbl" }
func (p *Provider) Type() ports.ProviderType { return ports.ProviderTypeDNS }
func (p *Provider) Close() error             { return nil }

// Enrich consulta todas las zonas en paralelo. NXDOMAIN significa "no
// listado"; solo una respuesta resoluble cuenta como hit.
func (p *Provider) Enrich(ctx context.Context, candidate domain.ParsedDomain) (*domain.Enrichment, error) {
	report := domain.BlacklistReport{}

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, zone := range p.zones {
		wg.Add(1)
		go func(zone string) {
			defer wg.Done()

			query := candidate.Normalized + "." + zone
			addrs, err := p.lookup(ctx, query)
			if err != nil || len(addrs) == 0 {
				return
			}
			// URIBL/SURBL devuelven 127.255.255.x para "query refused";
			// eso no es un listado real
			if strings.HasPrefix(addrs[0], "127.255.") {
				return
			}

			mu.Lock()
			report.Listed = true
			report.Zones = append(report.Zones, domain.ZoneHit{
				Zone:   zone,
				Record: addrs[0],
			})
			mu.Unlock()
		}(zone)
	}
	wg.Wait()

	p.logger.Debug("dnsbl lookup finished",
		"domain", candidate.Normalized,
		"listed", report.Listed,
		"hits", len(report.Zones))

	return &domain.Enrichment{Blacklist: &report}, nil
}
