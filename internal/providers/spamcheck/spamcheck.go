// internal/providers/spamcheck/spamcheck.go
package spamcheck

import (
	"context"
	"strings"

	"domainlens/internal/core/domain"
	"domainlens/internal/core/ports"
	"domainlens/internal/platform/logx"
	"domainlens/internal/platform/registry"
)

// Auto-registro del provider al importar el package
func init() {
	if err := registry.Global().Register(
		"spamcheck",
		func(cfg ports.ProviderConfig, logger logx.Logger) (ports.Provider, error) {
			return New(cfg, logger), nil
		},
		ports.ProviderMetadata{
			Name:        "spamcheck",
			Description: "Local spam and trust heuristics over the domain name",
			Type:        ports.ProviderTypeHeuristic,
			Priority:    6,
		},
	); err != nil {
		logx.New().Warn("failed to register spamcheck provider", "error", err.Error())
	}
}

// spamTokens son sub-cadenas cuya presencia en el nombre delata patrones
// de registro masivo o nichos quemados.
var spamTokens = []string{
	"free", "cheap", "viagra", "casino", "porn", "xxx",
	"bitcoin", "crypto-", "loan", "payday", "pills", "replica",
}

const (
	spamScoreThreshold  = 10.0
	trustScoreThreshold = 50.0
)

// Provider aplica heurísticas locales de spam y confianza sobre el
// nombre. Sin red: es el proveedor más barato y nunca degrada.
type Provider struct {
	logger logx.Logger
}

// New crea el provider.
func New(cfg ports.ProviderConfig, logger logx.Logger) *Provider {
	return &Provider{logger: logger.With("provider", "spamcheck")}
}

func (p *Provider) Name() string             { return "spamcheck" }
func (p *Provider) Type() ports.ProviderType { return ports.ProviderTypeHeuristic }
func (p *Provider) Close() error             { return nil }

// Enrich genera el SpamReport y el TrustReport del candidato.
func (p *Provider) Enrich(ctx context.Context, candidate domain.ParsedDomain) (*domain.Enrichment, error) {
	spam := p.spamReport(candidate)
	trust := p.trustReport(candidate, spam)

	return &domain.Enrichment{
		Spam:  &spam,
		Trust: &trust,
	}, nil
}

// spamReport acumula puntos de spam por cada heurística que dispara.
func (p *Provider) spamReport(candidate domain.ParsedDomain) domain.SpamReport {
	var report domain.SpamReport
	name := candidate.Name

	addIssue := func(points float64, issue string) {
		report.SpamScore += points
		report.Issues = append(report.Issues, issue)
	}

	if domain.IsLowTrustTLD(candidate.TLD) {
		addIssue(6, "low-trust TLD ."+candidate.TLD)
	}
	if len(name) > 20 {
		addIssue(4, "name looks like a keyword concatenation")
	}
	if strings.Count(name, "-") >= 2 {
		addIssue(4, "multiple hyphens")
	}
	if digits := countDigits(name); digits >= 3 {
		addIssue(3, "digit-heavy name")
	}
	for _, token := range spamTokens {
		if strings.Contains(name, token) {
			addIssue(5, "spam token "+token)
			break
		}
	}

	report.IsSpammy = report.SpamScore >= spamScoreThreshold
	report.Blacklisted = false // lo decide el proveedor dnsbl, no este
	return report
}

// trustReport es la cara positiva: resta el spam score de una base y
// anota señales a favor.
func (p *Provider) trustReport(candidate domain.ParsedDomain, spam domain.SpamReport) domain.TrustReport {
	report := domain.TrustReport{Score: 100 - spam.SpamScore*4}

	if candidate.TLD == "com" || candidate.TLD == "org" || candidate.TLD == "net" {
		report.Positives = append(report.Positives, "established TLD ."+candidate.TLD)
	}
	if len(candidate.Name) <= 12 && !strings.ContainsAny(candidate.Name, "-0123456789") {
		report.Positives = append(report.Positives, "short clean name")
	}
	for _, issue := range spam.Issues {
		report.Negatives = append(report.Negatives, issue)
	}

	if report.Score < 0 {
		report.Score = 0
	}
	report.Trustworthy = report.Score >= trustScoreThreshold
	return report
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
