// internal/importer/manual.go
package importer

import (
	"regexp"
	"strings"

	"domainlens/internal/core/domain"
	"domainlens/internal/platform/validator"
)

// domainPattern extrae tokens con aspecto de dominio de texto libre:
// listas separadas por comas, líneas sueltas, URLs pegadas...
var domainPattern = regexp.MustCompile(`(?i)\b(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,}\b`)

// ParseManual extrae dominios de texto libre. Best-effort total: el
// contenido ilegible simplemente produce cero items, nunca un error.
func ParseManual(content string) []domain.ImportedDomainItem {
	return parsePlainText(content, domain.SourceManual, domain.StatusUnknown)
}

// ParseOwnedList parsea la lista de dominios ya en propiedad, uno por
// línea (se toleran comentarios con # y separadores sueltos).
func ParseOwnedList(content string) []domain.ImportedDomainItem {
	return parsePlainText(content, domain.SourceExternal, domain.StatusOwned)
}

func parsePlainText(content string, source domain.ImportSource, status domain.DomainStatus) []domain.ImportedDomainItem {
	var items []domain.ImportedDomainItem
	seen := make(map[string]struct{})

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, match := range domainPattern.FindAllString(line, -1) {
			normalized := domain.NormalizeDomain(match)
			if !validator.IsDomain(normalized) {
				continue
			}
			if _, dup := seen[normalized]; dup {
				continue
			}
			seen[normalized] = struct{}{}

			item := domain.NewImportedItem(normalized, source)
			item.Status = status
			items = append(items, item)
		}
	}
	return items
}
