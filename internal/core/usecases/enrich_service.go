// internal/core/usecases/enrich_service.go
package usecases

import (
	"context"
	"sync"
	"time"

	"domainlens/internal/core/domain"
	"domainlens/internal/core/ports"
	"domainlens/internal/platform/cache"
	"domainlens/internal/platform/logx"
)

// EnrichService lanza las consultas a los proveedores externos en
// paralelo y junta las señales antes del scoring. Una llamada fallida o
// con timeout degrada a "señal ausente"; nunca aborta el análisis.
type EnrichService struct {
	providers []ports.Provider
	logger    logx.Logger

	// callTimeout acota cada llamada de proveedor individual
	callTimeout time.Duration

	// cache evita repetir lookups del mismo dominio en una sesión
	cache    *cache.TTLCache
	cacheTTL time.Duration
}

// EnrichOptions configura el servicio de enriquecimiento.
type EnrichOptions struct {
	Providers   []ports.Provider
	Logger      logx.Logger
	CallTimeout time.Duration
	CacheSize   int
	CacheTTL    time.Duration
}

// NewEnrichService crea el servicio con los proveedores dados.
func NewEnrichService(opts EnrichOptions) *EnrichService {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = 20 * time.Second
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 256
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 15 * time.Minute
	}
	return &EnrichService{
		providers:   opts.Providers,
		logger:      opts.Logger,
		callTimeout: opts.CallTimeout,
		cache:       cache.New(opts.CacheSize),
		cacheTTL:    opts.CacheTTL,
	}
}

// Enrich consulta todos los proveedores en paralelo con timeout por
// llamada y fusiona las señales. Los warnings por proveedor caído se
// anotan en el report si no es nil.
func (s *EnrichService) Enrich(ctx context.Context, parsed domain.ParsedDomain, report *domain.AnalysisReport) *domain.Enrichment {
	if cached, ok := s.cache.Get(parsed.Normalized); ok {
		if e, ok := cached.(*domain.Enrichment); ok {
			s.logger.Debug("enrichment cache hit", "domain", parsed.Normalized)
			return e
		}
	}

	type result struct {
		name   string
		enrich *domain.Enrichment
		err    error
	}

	results := make(chan result, len(s.providers))
	var wg sync.WaitGroup

	for _, p := range s.providers {
		wg.Add(1)
		go func(p ports.Provider) {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
			defer cancel()

			started := time.Now()
			e, err := p.Enrich(callCtx, parsed)
			s.logger.Debug("provider call finished",
				"provider", p.Name(),
				"domain", parsed.Normalized,
				"duration", time.Since(started).Round(time.Millisecond),
				"ok", err == nil)

			results <- result{name: p.Name(), enrich: e, err: err}
		}(p)
	}

	wg.Wait()
	close(results)

	merged := &domain.Enrichment{}
	for res := range results {
		if res.err != nil {
			s.logger.Warn("provider degraded to absent signal",
				"provider", res.name,
				"domain", parsed.Normalized,
				"error", res.err.Error())
			if report != nil {
				report.AddWarning(res.name, res.err.Error())
			}
			continue
		}
		merged.Merge(res.enrich)
	}

	s.cache.Set(parsed.Normalized, merged, s.cacheTTL)
	return merged
}

// Close cierra todos los proveedores subyacentes.
func (s *EnrichService) Close() error {
	var first error
	for _, p := range s.providers {
		if err := p.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
