// internal/importer/spamzilla.go
package importer

import (
	"encoding/csv"
	"strconv"
	"strings"

	"domainlens/internal/core/domain"
	"domainlens/internal/core/usecases"
	"domainlens/internal/platform/errors"
	"domainlens/internal/platform/validator"
)

// Cabeceras conocidas de un export SpamZilla. La detección es por
// contains case-insensitive porque el export real varía entre versiones
// ("Ref Domains" vs "Referring Domains", "BL" vs "Backlinks").
var spamzillaColumns = map[string][]string{
	"domain":    {"domain", "name"},
	"tf":        {"tf", "trust flow"},
	"cf":        {"cf", "citation flow"},
	"szscore":   {"sz score"},
	"da":        {"da", "domain authority"},
	"age":       {"age"},
	"backlinks": {"backlinks", "bl"},
	"refdoms":   {"ref domains", "referring domains", "rd"},
	"price":     {"price"},
	"auction":   {"source", "auction"},
}

// ParseSpamZilla parsea un export CSV de SpamZilla y calcula el quality
// tier de cada fila. Devuelve error si el CSV no tiene la estructura
// mínima (cabecera con columna de dominio); el caller redirige entonces
// el contenido al parser manual.
func ParseSpamZilla(content string) ([]domain.ImportedDomainItem, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "malformed CSV: %v", err)
	}
	if len(records) < 2 {
		return nil, errors.Wrap(errors.ErrInvalidInput, "CSV has no data rows")
	}

	cols := mapColumns(records[0])
	domainIdx, ok := cols["domain"]
	if !ok {
		return nil, errors.Wrap(errors.ErrUnsupportedFormat, "no domain column in CSV header")
	}

	var items []domain.ImportedDomainItem
	for _, row := range records[1:] {
		if domainIdx >= len(row) {
			continue
		}
		name := domain.NormalizeDomain(row[domainIdx])
		if !validator.IsDomain(name) {
			continue
		}

		item := domain.NewImportedItem(name, domain.SourceSpamZilla)

		tf := floatCol(row, cols, "tf")
		cf := floatCol(row, cols, "cf")
		sz := floatCol(row, cols, "szscore")
		da := floatCol(row, cols, "da")
		age := floatCol(row, cols, "age")

		item.SZScore = sz
		item.Price = floatCol(row, cols, "price")
		if idx, ok := cols["auction"]; ok && idx < len(row) {
			item.AuctionSource = strings.TrimSpace(row[idx])
		}

		parsed := domain.ParseDomain(name)
		item.Metrics = &domain.Metrics{
			Domain:           parsed.Normalized,
			TLD:              parsed.TLD,
			Length:           parsed.Length,
			TrustFlow:        tf,
			CitationFlow:     cf,
			DomainAge:        age,
			Backlinks:        intCol(row, cols, "backlinks"),
			ReferringDomains: intCol(row, cols, "refdoms"),
			SpamScore:        sz,
		}
		if da != nil {
			// DA se aprovecha como proxy de domain rating
			item.Metrics.DomainRating = da
		}

		item.QualityTier, _ = usecases.ComputeQualityTier(usecases.TierInputs{
			TrustFlow:       tf,
			CitationFlow:    cf,
			DomainAuthority: da,
			SZScore:         sz,
			AgeYears:        age,
		})
		item.Recommendation = item.QualityTier.Recommendation()
		if sz != nil {
			item.RiskLevel = domain.RiskFromSZScore(*sz)
		}
		item.Enriched = item.Metrics.TrustFlow != nil || item.Metrics.DomainRating != nil

		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidInput, "no valid domains in CSV")
	}
	return items, nil
}

// mapColumns resuelve índice por columna lógica a partir de la cabecera.
func mapColumns(header []string) map[string]int {
	out := make(map[string]int)
	for i, raw := range header {
		h := strings.ToLower(strings.TrimSpace(raw))
		for logical, aliases := range spamzillaColumns {
			if _, done := out[logical]; done {
				continue
			}
			for _, alias := range aliases {
				if h == alias {
					out[logical] = i
					break
				}
			}
		}
	}
	return out
}

func floatCol(row []string, cols map[string]int, key string) *float64 {
	idx, ok := cols[key]
	if !ok || idx >= len(row) {
		return nil
	}
	raw := strings.TrimSpace(strings.ReplaceAll(row[idx], ",", ""))
	raw = strings.TrimPrefix(raw, "$")
	if raw == "" || raw == "-" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func intCol(row []string, cols map[string]int, key string) *int {
	f := floatCol(row, cols, key)
	if f == nil {
		return nil
	}
	v := int(*f)
	return &v
}
