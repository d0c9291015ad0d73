// internal/core/usecases/analyzer.go
package usecases

import (
	"context"
	"sync"
	"time"

	"domainlens/internal/core/domain"
	"domainlens/internal/platform/logx"
	"domainlens/internal/platform/rate"
)

// Analyzer coordina el pipeline completo por dominio:
// parse -> quality gate -> enrich -> score -> profile.
//
// El gate corta antes de gastar llamadas externas; el enriquecimiento
// degrada señales en vez de abortar; scoring y profiling son puros.
type Analyzer struct {
	gate     *QualityGate
	enricher *EnrichService
	scorer   *Scorer
	profiler *Profiler
	logger   logx.Logger

	// niche objetivo para la sub-puntuación de relevancia
	targetNiche string

	// maxWorkers acota la concurrencia del análisis en lote
	maxWorkers int

	// limiter impone el retardo mínimo entre análisis consecutivos de un
	// lote (backpressure contra rate limits de terceros)
	limiter *rate.Limiter

	version string
}

// AnalyzerOptions configura el analyzer.
type AnalyzerOptions struct {
	Gate        *QualityGate
	Enricher    *EnrichService
	Scorer      *Scorer
	Profiler    *Profiler
	Logger      logx.Logger
	TargetNiche string
	MaxWorkers  int

	// InterCallDelay entre items de un lote; 0 = sin retardo
	InterCallDelay time.Duration

	Version string
}

// NewAnalyzer crea el analyzer con sus servicios.
func NewAnalyzer(opts AnalyzerOptions) *Analyzer {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.Gate == nil {
		opts.Gate = NewQualityGate()
	}
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = 4
	}

	var limiter *rate.Limiter
	if opts.InterCallDelay > 0 {
		limiter = rate.Every(opts.InterCallDelay)
	}

	return &Analyzer{
		gate:        opts.Gate,
		enricher:    opts.Enricher,
		scorer:      opts.Scorer,
		profiler:    opts.Profiler,
		logger:      opts.Logger,
		targetNiche: opts.TargetNiche,
		maxWorkers:  opts.MaxWorkers,
		limiter:     limiter,
		version:     opts.Version,
	}
}

// Analyze ejecuta el pipeline completo sobre un dominio crudo. Siempre
// devuelve un reporte; un gate fallido lo devuelve sin score ni perfil.
func (a *Analyzer) Analyze(ctx context.Context, raw string) *domain.AnalysisReport {
	parsed := domain.ParseDomain(raw)
	report := domain.NewAnalysisReport(parsed)
	report.Metadata.Version = a.version
	defer report.Finalize()

	report.Gate = a.gate.Check(parsed)
	if !report.Gate.Pass {
		a.logger.Info("gate rejected domain",
			"domain", parsed.Normalized,
			"reason", report.Gate.Reason)
		return report
	}

	metrics := domain.Metrics{
		Domain: parsed.Normalized,
		TLD:    parsed.TLD,
		Length: parsed.Length,
	}

	if a.enricher != nil {
		enriched := a.enricher.Enrich(ctx, parsed, report)
		if enriched != nil {
			report.Signals = *enriched
		}
	}
	report.Metrics = metrics

	if a.scorer != nil {
		score := a.scorer.Score(metrics, a.targetNiche, &report.Signals)
		report.Score = &score
	}
	if a.profiler != nil {
		profile := a.profiler.GenerateProfile(parsed.Normalized)
		report.Profile = &profile
	}

	return report
}

// AnalyzeWithMetrics es Analyze pero con métricas ya conocidas (flujo de
// import, donde el export trae DR, backlinks, edad...).
func (a *Analyzer) AnalyzeWithMetrics(ctx context.Context, m domain.Metrics) *domain.AnalysisReport {
	parsed := domain.ParseDomain(m.Domain)
	report := domain.NewAnalysisReport(parsed)
	report.Metadata.Version = a.version
	defer report.Finalize()

	report.Gate = a.gate.Check(parsed)
	m.Domain = parsed.Normalized
	m.TLD = parsed.TLD
	m.Length = parsed.Length
	report.Metrics = m

	if !report.Gate.Pass {
		return report
	}

	if a.enricher != nil {
		enriched := a.enricher.Enrich(ctx, parsed, report)
		if enriched != nil {
			report.Signals = *enriched
		}
	}
	if a.scorer != nil {
		score := a.scorer.Score(m, a.targetNiche, &report.Signals)
		report.Score = &score
	}
	if a.profiler != nil {
		profile := a.profiler.GenerateProfile(parsed.Normalized)
		report.Profile = &profile
	}

	return report
}

// AnalyzeBatch analiza un lote con concurrencia acotada por semáforo.
// El limiter, si existe, espacia los arranques de item para no saturar
// a los proveedores. El orden del resultado respeta el de entrada.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, raws []string) []*domain.AnalysisReport {
	reports := make([]*domain.AnalysisReport, len(raws))

	sem := make(chan struct{}, a.maxWorkers)
	var wg sync.WaitGroup

	for i, raw := range raws {
		if ctx.Err() != nil {
			break
		}
		if a.limiter != nil {
			if err := a.limiter.Wait(ctx); err != nil {
				break
			}
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, raw string) {
			defer wg.Done()
			defer func() { <-sem }()
			reports[i] = a.Analyze(ctx, raw)
		}(i, raw)
	}

	wg.Wait()

	// los items no arrancados (cancelación) quedan como reportes vacíos
	for i, r := range reports {
		if r == nil {
			parsed := domain.ParseDomain(raws[i])
			rep := domain.NewAnalysisReport(parsed)
			rep.Gate = domain.GateResult{Pass: false, Reason: "analysis cancelled"}
			rep.Finalize()
			reports[i] = rep
		}
	}
	return reports
}
