// internal/platform/registry/provider_registry_test.go
package registry

import (
	"context"
	"testing"

	"domainlens/internal/core/domain"
	"domainlens/internal/core/ports"
	"domainlens/internal/platform/logx"
)

type fakeProvider struct {
	name string
}

func (f *fakeProvider) Name() string             { return f.name }
func (f *fakeProvider) Type() ports.ProviderType { return ports.ProviderTypeHeuristic }
func (f *fakeProvider) Enrich(ctx context.Context, candidate domain.ParsedDomain) (*domain.Enrichment, error) {
	return &domain.Enrichment{}, nil
}
func (f *fakeProvider) Close() error { return nil }

func fakeFactory(name string) ProviderFactory {
	return func(cfg ports.ProviderConfig, logger logx.Logger) (ports.Provider, error) {
		return &fakeProvider{name: name}, nil
	}
}

func TestRegisterAndBuild(t *testing.T) {
	r := NewProviderRegistry(logx.NewSilent())

	if err := r.Register("alpha", fakeFactory("alpha"), ports.ProviderMetadata{Name: "alpha"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := r.Register("beta", fakeFactory("beta"), ports.ProviderMetadata{Name: "beta"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	configs := map[string]ports.ProviderConfig{
		"alpha": {Enabled: true, Priority: 1},
		"beta":  {Enabled: true, Priority: 10},
	}

	providers, err := r.Build(configs, logx.NewSilent())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(providers))
	}
	// Priority ordering: beta (10) before alpha (1)
	if providers[0].Name() != "beta" {
		t.Errorf("expected beta first, got %s", providers[0].Name())
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewProviderRegistry(logx.NewSilent())

	if err := r.Register("dup", fakeFactory("dup"), ports.ProviderMetadata{}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if err := r.Register("dup", fakeFactory("dup"), ports.ProviderMetadata{}); err == nil {
		t.Error("duplicate register should fail")
	}
}

func TestBuildSkipsDisabled(t *testing.T) {
	r := NewProviderRegistry(logx.NewSilent())
	_ = r.Register("off", fakeFactory("off"), ports.ProviderMetadata{})
	_ = r.Register("on", fakeFactory("on"), ports.ProviderMetadata{})

	configs := map[string]ports.ProviderConfig{
		"off": {Enabled: false},
		"on":  {Enabled: true},
	}

	providers, err := r.Build(configs, logx.NewSilent())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != "on" {
		t.Errorf("expected only enabled provider, got %d", len(providers))
	}
}

func TestBuildUnregisteredProvider(t *testing.T) {
	r := NewProviderRegistry(logx.NewSilent())

	configs := map[string]ports.ProviderConfig{
		"ghost": {Enabled: true},
	}
	if _, err := r.Build(configs, logx.NewSilent()); err == nil {
		t.Error("building only unregistered providers should fail")
	}
}

func TestClearAndList(t *testing.T) {
	r := NewProviderRegistry(logx.NewSilent())
	_ = r.Register("a", fakeFactory("a"), ports.ProviderMetadata{})
	_ = r.Register("b", fakeFactory("b"), ports.ProviderMetadata{})

	names := r.List()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("unexpected list: %v", names)
	}

	r.Clear()
	if r.IsRegistered("a") {
		t.Error("clear should remove registrations")
	}
}
