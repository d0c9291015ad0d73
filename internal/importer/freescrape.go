// internal/importer/freescrape.go
package importer

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"domainlens/internal/core/domain"
	"domainlens/internal/platform/errors"
	"domainlens/internal/platform/httpclient"
	"domainlens/internal/platform/logx"
	"domainlens/internal/platform/validator"
)

// FreeScraper extrae dominios expirados de listados HTML públicos
// (tablas de drops al estilo expireddomains). No asume un layout
// concreto: barre celdas y anchors buscando tokens con pinta de dominio.
type FreeScraper struct {
	client *httpclient.Client
	logger logx.Logger
}

// NewFreeScraper crea el scraper con el cliente HTTP dado.
func NewFreeScraper(client *httpclient.Client, logger logx.Logger) *FreeScraper {
	if logger == nil {
		logger = logx.New()
	}
	return &FreeScraper{client: client, logger: logger}
}

// Scrape descarga la URL y devuelve los dominios encontrados como items
// de fuente "free". Limit acota el resultado; 0 = sin límite.
func (s *FreeScraper) Scrape(ctx context.Context, url string, limit int) ([]domain.ImportedDomainItem, error) {
	resp, err := s.client.Get(ctx, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "scrape %s", url)
	}
	defer resp.Body.Close()

	if err := httpclient.CheckStatus(resp); err != nil {
		return nil, errors.Wrapf(err, "scrape %s", url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "parse listing HTML")
	}

	items := s.extract(doc, limit)
	s.logger.Info("free scrape finished", "url", url, "domains", len(items))
	return items, nil
}

// extract recorre celdas de tabla y anchors. Las celdas tienen prioridad
// porque los listados de drops publican el dominio como texto de celda.
func (s *FreeScraper) extract(doc *goquery.Document, limit int) []domain.ImportedDomainItem {
	seen := make(map[string]struct{})
	var items []domain.ImportedDomainItem

	add := func(raw string) {
		if limit > 0 && len(items) >= limit {
			return
		}
		normalized := domain.NormalizeDomain(strings.TrimSpace(raw))
		if !validator.IsDomain(normalized) {
			return
		}
		if _, dup := seen[normalized]; dup {
			return
		}
		seen[normalized] = struct{}{}
		items = append(items, domain.NewImportedItem(normalized, domain.SourceFree))
	}

	doc.Find("table td").Each(func(_ int, sel *goquery.Selection) {
		text := sel.Text()
		// celdas de métricas (números, fechas) no matchean el patrón
		for _, match := range domainPattern.FindAllString(text, -1) {
			add(match)
		}
	})

	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		add(sel.Text())
	})

	return items
}
