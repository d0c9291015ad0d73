// internal/providers/wayback/wayback.go
package wayback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"domainlens/internal/core/domain"
	"domainlens/internal/core/ports"
	"domainlens/internal/platform/errors"
	"domainlens/internal/platform/httpclient"
	"domainlens/internal/platform/logx"
	"domainlens/internal/platform/registry"
)

// Auto-registro del provider al importar el package
func init() {
	if err := registry.Global().Register(
		"wayback",
		func(cfg ports.ProviderConfig, logger logx.Logger) (ports.Provider, error) {
			return New(cfg, logger), nil
		},
		ports.ProviderMetadata{
			Name:        "wayback",
			Description: "Historical content signals from the Internet Archive CDX API",
			Type:        ports.ProviderTypeAPI,
			RateLimit:   1.0,
			Priority:    10,
		},
	); err != nil {
		logx.New().Warn("failed to register wayback provider", "error", err.Error())
	}
}

const (
	cdxEndpoint = "https://web.archive.org/cdx/search/cdx"

	// maxSnapshots acota la respuesta del CDX; suficiente para clasificar
	// el historial sin descargar capturas completas
	maxSnapshots = 500

	timestampLayout = "20060102150405"
)

// Keyword sets para clasificar el historial por las URLs archivadas.
// Trabajar sobre URLs evita descargar el contenido de cada captura.
var (
	adultKeywords  = []string{"porn", "xxx", "adult", "sex", "escort", "cams"}
	casinoKeywords = []string{"casino", "poker", "slots", "betting", "gambl", "roulette", "bookmaker"}
	pbnKeywords    = []string{"guest-post", "guestpost", "link-building", "seo-links", "buy-links", "article-directory"}
	spamKeywords   = []string{"viagra", "cialis", "pharmacy", "replica", "payday", "casino-bonus", "free-money"}
)

// Provider consulta el CDX API del Internet Archive y deriva la señal
// histórica del dominio: fechas de captura, volumen y flags de contenido
// tóxico inferidos de las URLs archivadas.
type Provider struct {
	client *httpclient.Client
	logger logx.Logger
}

// New crea el provider con la configuración dada.
func New(cfg ports.ProviderConfig, logger logx.Logger) *Provider {
	httpCfg := httpclient.DefaultConfig()
	if cfg.Timeout > 0 {
		httpCfg.Timeout = cfg.Timeout
	}
	httpCfg.MaxRetries = cfg.Retries
	httpCfg.RateLimit = cfg.RateLimit

	return &Provider{
		client: httpclient.New(httpCfg, logger),
		logger: logger.With("provider", "wayback"),
	}
}

func (p *Provider) Name() string             { return "wayback" }
func (p *Provider) Type() ports.ProviderType { return ports.ProviderTypeAPI }
func (p *Provider) Close() error             { return nil }

// Enrich consulta las capturas del dominio y construye la WaybackSignal.
func (p *Provider) Enrich(ctx context.Context, candidate domain.ParsedDomain) (*domain.Enrichment, error) {
	url := fmt.Sprintf("%s?url=%s&matchType=domain&output=json&fl=timestamp,original&limit=%d&collapse=timestamp:8",
		cdxEndpoint, candidate.Normalized, maxSnapshots)

	body, err := p.client.FetchJSON(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "cdx query for %s", candidate.Normalized)
	}

	rows, err := parseCDX(body)
	if err != nil {
		return nil, err
	}

	signal := buildSignal(rows)
	p.logger.Debug("wayback signal built",
		"domain", candidate.Normalized,
		"captures", signal.TotalCaptures,
		"negative", signal.HasNegativeHistory())

	return &domain.Enrichment{Wayback: &signal}, nil
}

// cdxRow es una captura: timestamp + URL original.
type cdxRow struct {
	timestamp string
	original  string
}

// parseCDX decodifica la respuesta del CDX: un array de arrays cuya
// primera fila es la cabecera. Respuesta vacía = dominio sin historial.
func parseCDX(body []byte) ([]cdxRow, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "[]" {
		return nil, nil
	}

	var raw [][]string
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidResponse, "unexpected CDX payload")
	}
	if len(raw) < 2 {
		return nil, nil
	}

	rows := make([]cdxRow, 0, len(raw)-1)
	for _, rec := range raw[1:] {
		if len(rec) < 2 {
			continue
		}
		rows = append(rows, cdxRow{timestamp: rec[0], original: rec[1]})
	}
	return rows, nil
}

// buildSignal agrega las capturas en una señal con flags de contenido.
func buildSignal(rows []cdxRow) domain.WaybackSignal {
	if len(rows) == 0 {
		return domain.WaybackSignal{HasHistory: false}
	}

	signal := domain.WaybackSignal{
		HasHistory:    true,
		TotalCaptures: len(rows),
	}

	for _, row := range rows {
		if ts, err := time.Parse(timestampLayout, row.timestamp); err == nil {
			if signal.FirstCapture.IsZero() || ts.Before(signal.FirstCapture) {
				signal.FirstCapture = ts
			}
			if ts.After(signal.LastCapture) {
				signal.LastCapture = ts
			}
		}

		url := strings.ToLower(row.original)
		if !signal.WasAdult && containsAny(url, adultKeywords) {
			signal.WasAdult = true
		}
		if !signal.WasCasino && containsAny(url, casinoKeywords) {
			signal.WasCasino = true
		}
		if !signal.WasPBN && containsAny(url, pbnKeywords) {
			signal.WasPBN = true
		}
		if !signal.HadSpam && containsAny(url, spamKeywords) {
			signal.HadSpam = true
		}
	}
	return signal
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
