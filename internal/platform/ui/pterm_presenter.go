// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"domainlens/internal/core/domain"
)

// PTermPresenter implementa Presenter usando la biblioteca pterm
// para renderizar spinners, colores y símbolos en la terminal.
type PTermPresenter struct {
	mu sync.Mutex

	spinners map[string]*pterm.SpinnerPrinter
	started  time.Time
	info     RunInfo
}

// NewPTermPresenter crea una nueva instancia del presenter con pterm
func NewPTermPresenter() *PTermPresenter {
	return &PTermPresenter{
		spinners: make(map[string]*pterm.SpinnerPrinter),
	}
}

// Start inicia la presentación mostrando el header de la ejecución
func (p *PTermPresenter) Start(info RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.info = info
	p.started = time.Now()

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("DomainLens - Domain Intelligence")

	pterm.Println()

	panel := pterm.DefaultBox.
		WithTitle("Run Configuration").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan))

	body := fmt.Sprintf("Target: %s\n", pterm.Cyan(targetLabel(info)))
	if info.Niche != "" {
		body += fmt.Sprintf("Niche: %s\n", pterm.Yellow(info.Niche))
	}
	body += fmt.Sprintf("Workers: %d\n", info.Workers)
	body += fmt.Sprintf("Timeout: %ds\n", info.TimeoutSeconds)
	body += fmt.Sprintf("Providers: %s", strings.Join(info.Providers, ", "))

	panel.Println(body)
	pterm.Println()
}

func targetLabel(info RunInfo) string {
	if info.Target != "" {
		return info.Target
	}
	return fmt.Sprintf("%d domains", info.TotalDomains)
}

// StartDomain notifica el inicio del análisis de un dominio
func (p *PTermPresenter) StartDomain(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	sp, err := pterm.DefaultSpinner.
		WithRemoveWhenDone(false).
		Start(fmt.Sprintf("Analyzing %s", name))
	if err != nil {
		return
	}
	p.spinners[name] = sp
}

// UpdatePhase actualiza la fase actual de un dominio
func (p *PTermPresenter) UpdatePhase(name string, phase string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if sp, ok := p.spinners[name]; ok {
		sp.UpdateText(fmt.Sprintf("Analyzing %s [%s]", name, phase))
	}
}

// FinishDomain notifica la finalización del análisis de un dominio
func (p *PTermPresenter) FinishDomain(name string, status Status, duration time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	sp, ok := p.spinners[name]
	if !ok {
		return
	}
	delete(p.spinners, name)

	msg := fmt.Sprintf("%s (%s)", name, duration.Round(time.Millisecond))
	switch status {
	case StatusSuccess:
		sp.Success(msg)
	case StatusRejected:
		sp.Warning(msg + " rejected")
	default:
		sp.Fail(msg)
	}
}

// ShowScore presenta el veredicto de un dominio analizado
func (p *PTermPresenter) ShowScore(name string, score domain.Score) {
	p.mu.Lock()
	defer p.mu.Unlock()

	rec := string(score.Recommendation)
	switch score.Recommendation {
	case domain.RecommendStrongBuy:
		rec = pterm.Green(rec)
	case domain.RecommendBuy:
		rec = pterm.LightGreen(rec)
	case domain.RecommendConsider:
		rec = pterm.Yellow(rec)
	default:
		rec = pterm.Red(rec)
	}

	pterm.Println()
	pterm.DefaultSection.WithLevel(2).Println(name)
	pterm.Printf("  Overall: %.1f  Risk: %s  Verdict: %s\n",
		score.Overall, string(score.RiskLevel), rec)
	pterm.Printf("  Authority %.0f | Trust %.0f | Relevance %.0f | Email %.0f | Flip %.0f | Name %.0f\n",
		score.Sub.Authority, score.Sub.Trustworthiness, score.Sub.Relevance,
		score.Sub.EmailPotential, score.Sub.FlipPotential, score.Sub.NameQuality)
	if score.EstimatedValue > 0 {
		pterm.Printf("  Est. value: $%.0f  Est. monthly: $%.0f\n",
			score.EstimatedValue, score.EstimatedMonthlyRevenue)
	}
	for _, r := range score.Reasons {
		pterm.Printf("  %s %s\n", pterm.Gray("-"), r)
	}
	for _, risk := range score.Risks {
		pterm.Printf("  %s %s\n", pterm.Red("!"), risk.Description)
	}
}

// Info muestra un mensaje informativo
func (p *PTermPresenter) Info(msg string) {
	pterm.Info.Println(msg)
}

// Warning muestra una advertencia
func (p *PTermPresenter) Warning(msg string) {
	pterm.Warning.Println(msg)
}

// Error muestra un error
func (p *PTermPresenter) Error(msg string) {
	pterm.Error.Println(msg)
}

// Finish finaliza la presentación con estadísticas finales
func (p *PTermPresenter) Finish(stats RunStats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Println()

	rows := pterm.TableData{
		{"Analyzed", fmt.Sprintf("%d", stats.Analyzed)},
		{"Rejected", fmt.Sprintf("%d", stats.Rejected)},
		{"Imported", fmt.Sprintf("%d", stats.Imported)},
		{"Duplicates", fmt.Sprintf("%d", stats.Duplicates)},
		{"Errors", fmt.Sprintf("%d", stats.Errors)},
		{"Duration", stats.Duration.Round(time.Millisecond).String()},
	}
	_ = pterm.DefaultTable.WithData(rows).Render()
}

// Close limpia recursos del presenter
func (p *PTermPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for name, sp := range p.spinners {
		sp.Fail("interrupted")
		delete(p.spinners, name)
	}
	return nil
}
