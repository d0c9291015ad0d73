// cmd/domainlens/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"domainlens/internal/adapters/output"
	"domainlens/internal/core/domain"
	"domainlens/internal/core/ports"
	"domainlens/internal/core/usecases"
	"domainlens/internal/importer"
	"domainlens/internal/platform/config"
	"domainlens/internal/platform/httpclient"
	"domainlens/internal/platform/kvstore"
	"domainlens/internal/platform/logx"
	"domainlens/internal/platform/registry"
	"domainlens/internal/platform/ui"
	"domainlens/internal/platform/wordlist"

	// Import providers for auto-registration via init()
	_ "domainlens/internal/providers/availability"
	_ "domainlens/internal/providers/dnsbl"
	_ "domainlens/internal/providers/spamcheck"
	_ "domainlens/internal/providers/wayback"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		os.Exit(2)
	}

	if cfg.Core.PrintVersion {
		fmt.Printf("domainlens %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	if cfg.Core.Domain == "" && cfg.Import.File == "" && cfg.Import.OwnedFile == "" && cfg.Import.ScrapeURL == "" {
		fmt.Fprintln(os.Stderr, "Error: a domain, an import file or a scrape URL is required")
		fmt.Fprintln(os.Stderr, "Usage: domainlens -d <domain> | domainlens -i <file> | domainlens --scrape <url>")
		fmt.Fprintln(os.Stderr, "Try: domainlens -h for help")
		os.Exit(2)
	}

	logger := logx.New()
	if cfg.UI.Quiet {
		logger.SetLevel(logx.LevelWarn)
	}

	logger.Info("DomainLens starting",
		"version", version,
		"domain", cfg.Core.Domain,
		"import_file", cfg.Import.File,
		"niche", cfg.Core.Niche,
		"workers", cfg.Core.Workers,
	)

	// El chequeo de disponibilidad por item habilita el provider WHOIS
	if cfg.Import.CheckAvailability {
		pc, ok := cfg.Providers["availability"]
		if !ok {
			pc = ports.DefaultProviderConfig()
		}
		pc.Enabled = true
		cfg.Providers["availability"] = pc
	}

	ctx, cancel := rootContextWithSignals(cfg.Core.TimeoutS)
	defer cancel()

	// Sin proveedores el análisis degrada a señales locales; no es fatal
	providers, err := registry.Global().Build(cfg.Providers, logger)
	if err != nil {
		logger.Warn("provider build incomplete", "error", err.Error())
	}

	presenter := buildPresenter(cfg)
	defer presenter.Close()

	analyzer, enricher := buildAnalyzer(cfg, providers, logger)
	defer func() {
		if err := enricher.Close(); err != nil {
			logger.Warn("failed to close providers", "error", err.Error())
		}
	}()

	// Watchlist de veredictos de compra sobre el boundary clave-valor;
	// en CLI vive en memoria, una app envolvente inyectaría su backend
	watch := usecases.NewWatchlist(kvstore.NewMemory())

	var runErr error
	switch {
	case cfg.Core.Domain != "":
		runErr = runSingle(ctx, cfg, analyzer, presenter, watch, providerNames(providers))
	default:
		runErr = runImport(ctx, cfg, analyzer, presenter, watch, providerNames(providers), logger)
	}

	if runErr != nil {
		logger.Err(runErr, "phase", "run")
		os.Exit(1)
	}
}

// rootContextWithSignals crea el contexto raíz cancelable por SIGINT/SIGTERM
// y acotado por el timeout global cuando está configurado.
func rootContextWithSignals(timeoutSeconds int) (context.Context, context.CancelFunc) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	if timeoutSeconds <= 0 {
		return ctx, cancel
	}

	tctx, tcancel := context.WithTimeout(ctx, time.Duration(timeoutSeconds)*time.Second)
	return tctx, func() {
		tcancel()
		cancel()
	}
}

func buildPresenter(cfg config.Config) ui.Presenter {
	if cfg.UI.Quiet {
		return ui.NewNoopPresenter()
	}
	return ui.NewPTermPresenter()
}

// buildAnalyzer cablea el pipeline completo: gate, enriquecimiento con los
// proveedores construidos, scorer y profiler sobre el diccionario built-in.
func buildAnalyzer(cfg config.Config, providers []ports.Provider, logger logx.Logger) (*usecases.Analyzer, *usecases.EnrichService) {
	words := wordlist.Default()

	enricher := usecases.NewEnrichService(usecases.EnrichOptions{
		Providers: providers,
		Logger:    logger,
	})

	analyzer := usecases.NewAnalyzer(usecases.AnalyzerOptions{
		Enricher:       enricher,
		Scorer:         usecases.NewScorer(words),
		Profiler:       usecases.NewProfiler(words),
		Logger:         logger,
		TargetNiche:    cfg.Core.Niche,
		MaxWorkers:     max(1, cfg.Core.Workers),
		InterCallDelay: cfg.InterCallDelay(),
		Version:        version,
	})
	return analyzer, enricher
}

// runSingle analiza un único dominio y exporta su reporte.
func runSingle(ctx context.Context, cfg config.Config, analyzer *usecases.Analyzer, presenter ui.Presenter, watch *usecases.Watchlist, providers []string) error {
	presenter.Start(ui.RunInfo{
		Target:         cfg.Core.Domain,
		Niche:          cfg.Core.Niche,
		Workers:        cfg.Core.Workers,
		TimeoutSeconds: cfg.Core.TimeoutS,
		TotalDomains:   1,
		Providers:      providers,
	})

	start := time.Now()
	presenter.StartDomain(cfg.Core.Domain)

	report := analyzer.Analyze(ctx, cfg.Core.Domain)

	stats := ui.RunStats{Duration: time.Since(start)}
	switch {
	case !report.Gate.Pass:
		presenter.FinishDomain(report.Candidate.Normalized, ui.StatusRejected, report.Metadata.Duration)
		presenter.Warning(fmt.Sprintf("%s rejected: %s", report.Candidate.Normalized, report.Gate.Reason))
		stats.Rejected = 1
	default:
		presenter.FinishDomain(report.Candidate.Normalized, ui.StatusSuccess, report.Metadata.Duration)
		if report.Score != nil {
			presenter.ShowScore(report.Candidate.Normalized, *report.Score)
			if watch.Record(report.Candidate.Normalized, report.Score.Recommendation) {
				presenter.Info(fmt.Sprintf("%s added to watchlist", report.Candidate.Normalized))
			}
		}
		stats.Analyzed = 1
	}
	stats.Errors = len(report.Errors)

	exporter := output.NewJSONExporter(cfg.Output.Dir, cfg.Output.Pretty)
	if err := exporter.ExportReport(report); err != nil {
		return fmt.Errorf("json output: %w", err)
	}

	presenter.Finish(stats)
	return nil
}

// runImport ejecuta el flujo de ingesta masiva: parseo del archivo,
// merge con deduplicación, análisis por item y exports de la colección.
func runImport(ctx context.Context, cfg config.Config, analyzer *usecases.Analyzer, presenter ui.Presenter, watch *usecases.Watchlist, providers []string, logger logx.Logger) error {
	svc := usecases.NewImportService(logger)

	var merged usecases.MergeResult
	if cfg.Import.File != "" {
		content, err := os.ReadFile(cfg.Import.File)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		items, format := importer.ImportText(string(content), logger)
		logger.Info("import file parsed", "format", string(format), "items", len(items))
		merged = svc.Merge(items)
	}

	if cfg.Import.ScrapeURL != "" {
		scraper := importer.NewFreeScraper(httpclient.New(httpclient.Config{}, logger), logger)
		scraped, err := scraper.Scrape(ctx, cfg.Import.ScrapeURL, cfg.Import.ScrapeLimit)
		if err != nil {
			// Un scrape fallido no tira los dominios de las otras fuentes
			logger.Warn("free scrape failed", "url", cfg.Import.ScrapeURL, "error", err.Error())
			presenter.Warning(fmt.Sprintf("scrape failed: %v", err))
		} else {
			res := svc.Merge(scraped)
			merged.Added += res.Added
			merged.Duplicates += res.Duplicates
			merged.Invalid += res.Invalid
		}
	}

	if cfg.Import.OwnedFile != "" {
		content, err := os.ReadFile(cfg.Import.OwnedFile)
		if err != nil {
			return fmt.Errorf("read owned file: %w", err)
		}
		owned := svc.Merge(importer.ParseOwnedList(string(content)))
		merged.Added += owned.Added
		merged.Duplicates += owned.Duplicates
		merged.Invalid += owned.Invalid
	}

	target := cfg.Import.File
	if target == "" {
		target = cfg.Import.ScrapeURL
	}

	items := svc.Items()
	presenter.Start(ui.RunInfo{
		Target:         target,
		Niche:          cfg.Core.Niche,
		Workers:        cfg.Core.Workers,
		TimeoutSeconds: cfg.Core.TimeoutS,
		TotalDomains:   len(items),
		Providers:      providers,
	})
	presenter.Info(fmt.Sprintf("merged %d domains (%d duplicates, %d invalid)",
		merged.Added, merged.Duplicates, merged.Invalid))

	start := time.Now()
	stats := ui.RunStats{Imported: merged.Added, Duplicates: merged.Duplicates}

	delay := cfg.InterCallDelay()
	for i, item := range items {
		if ctx.Err() != nil {
			presenter.Warning("analysis cancelled, exporting partial collection")
			break
		}
		if i > 0 && delay > 0 {
			time.Sleep(delay)
		}

		presenter.StartDomain(item.Domain)
		report := analyzeItem(ctx, analyzer, item)

		switch {
		case !report.Gate.Pass:
			presenter.FinishDomain(item.Domain, ui.StatusRejected, report.Metadata.Duration)
			stats.Rejected++
		default:
			presenter.FinishDomain(item.Domain, ui.StatusSuccess, report.Metadata.Duration)
			stats.Analyzed++
		}
		stats.Errors += len(report.Errors)

		svc.Update(item.Domain, func(it *domain.ImportedDomainItem) {
			it.Score = report.Score
			if avail := report.Signals.Availability; avail != nil {
				it.Status = avail.Status
			}
		})
		if report.Score != nil {
			watch.Record(item.Domain, report.Score.Recommendation)
		}
	}
	stats.Duration = time.Since(start)

	if entries := watch.Entries(); len(entries) > 0 {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = fmt.Sprintf("%s (%s)", e.Domain, e.Recommendation)
		}
		presenter.Info("watchlist: " + strings.Join(names, ", "))
	}

	if err := writeCollection(cfg, svc.Items()); err != nil {
		return err
	}

	presenter.Finish(stats)
	return nil
}

// analyzeItem reutiliza las métricas que el import ya trae (exports de
// pago) en lugar de perderlas re-analizando desde cero.
func analyzeItem(ctx context.Context, analyzer *usecases.Analyzer, item domain.ImportedDomainItem) *domain.AnalysisReport {
	if item.Metrics != nil {
		return analyzer.AnalyzeWithMetrics(ctx, *item.Metrics)
	}
	return analyzer.Analyze(ctx, item.Domain)
}

// writeCollection decide y ejecuta los exports de la colección según la
// configuración. Mantenerlo aislado facilita añadir formatos nuevos.
func writeCollection(cfg config.Config, items []domain.ImportedDomainItem) error {
	if err := output.NewJSONExporter(cfg.Output.Dir, cfg.Output.Pretty).Export(items); err != nil {
		return fmt.Errorf("json output: %w", err)
	}

	if !cfg.Output.TableDisabled {
		if err := output.NewTableExporter(nil).Export(items); err != nil {
			return fmt.Errorf("table output: %w", err)
		}
	}

	if cfg.Output.XLSX {
		if err := output.NewXLSXExporter(cfg.Output.Dir).Export(items); err != nil {
			return fmt.Errorf("xlsx output: %w", err)
		}
	}
	return nil
}

func providerNames(providers []ports.Provider) []string {
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Name())
	}
	return names
}
