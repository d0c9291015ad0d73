// internal/platform/ui/noop_presenter.go
package ui

import (
	"time"

	"domainlens/internal/core/domain"
)

// NoopPresenter es un presenter que no hace nada. Se usa en modo quiet
// y en tests, donde el output visual no aporta.
type NoopPresenter struct{}

// NewNoopPresenter crea un presenter silencioso
func NewNoopPresenter() *NoopPresenter { return &NoopPresenter{} }

func (n *NoopPresenter) Start(RunInfo)                               {}
func (n *NoopPresenter) StartDomain(string)                          {}
func (n *NoopPresenter) UpdatePhase(string, string)                  {}
func (n *NoopPresenter) FinishDomain(string, Status, time.Duration)  {}
func (n *NoopPresenter) ShowScore(string, domain.Score)              {}
func (n *NoopPresenter) Info(string)                                 {}
func (n *NoopPresenter) Warning(string)                              {}
func (n *NoopPresenter) Error(string)                                {}
func (n *NoopPresenter) Finish(RunStats)                             {}
func (n *NoopPresenter) Close() error                                { return nil }

var _ Presenter = (*NoopPresenter)(nil)
var _ Presenter = (*PTermPresenter)(nil)
