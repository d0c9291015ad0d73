// internal/importer/detect.go
package importer

import (
	"strings"

	"domainlens/internal/core/domain"
	"domainlens/internal/platform/logx"
)

// Format identifica el formato detectado de un upload.
type Format string

const (
	FormatSpamZilla Format = "spamzilla"
	FormatManual    Format = "manual"
)

// DetectFormat clasifica el contenido de un upload. Una cabecera CSV que
// contiene a la vez "TF" y "SZ Score" va al parser de SpamZilla; todo lo
// demás se trata como texto libre genérico.
func DetectFormat(content string) Format {
	header := firstLine(content)
	if strings.Contains(header, "TF") && strings.Contains(header, "SZ Score") {
		return FormatSpamZilla
	}
	return FormatManual
}

// ImportText aplica detección de formato y parsea. Un fallo del parser
// de SpamZilla redirige el contenido crudo al path manual genérico en
// vez de descartar el upload.
func ImportText(content string, logger logx.Logger) ([]domain.ImportedDomainItem, Format) {
	if logger == nil {
		logger = logx.New()
	}

	format := DetectFormat(content)
	if format == FormatSpamZilla {
		items, err := ParseSpamZilla(content)
		if err == nil {
			return items, FormatSpamZilla
		}
		logger.Warn("spamzilla parse failed, falling back to manual parse",
			"error", err.Error())
	}
	return ParseManual(content), FormatManual
}

func firstLine(content string) string {
	if i := strings.IndexAny(content, "\r\n"); i >= 0 {
		return content[:i]
	}
	return content
}
