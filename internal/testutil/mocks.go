// internal/testutil/mocks.go
package testutil

import (
	"context"
	"sync"

	"domainlens/internal/core/domain"
	"domainlens/internal/core/ports"
)

// MockProvider implementa ports.Provider con comportamiento programable.
type MockProvider struct {
	mu sync.Mutex

	ProviderName string
	ProviderType ports.ProviderType

	// EnrichFunc define la respuesta; si es nil se devuelve un
	// Enrichment vacío sin error.
	EnrichFunc func(ctx context.Context, parsed domain.ParsedDomain) (*domain.Enrichment, error)

	CallCount  int
	LastDomain string
	Closed     bool
}

// NewMockProvider crea un mock provider con nombre dado.
func NewMockProvider(name string) *MockProvider {
	return &MockProvider{
		ProviderName: name,
		ProviderType: ports.ProviderTypeHeuristic,
	}
}

func (m *MockProvider) Name() string             { return m.ProviderName }
func (m *MockProvider) Type() ports.ProviderType { return m.ProviderType }

func (m *MockProvider) Enrich(ctx context.Context, parsed domain.ParsedDomain) (*domain.Enrichment, error) {
	m.mu.Lock()
	m.CallCount++
	m.LastDomain = parsed.Normalized
	fn := m.EnrichFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, parsed)
	}
	return &domain.Enrichment{}, nil
}

func (m *MockProvider) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

// Calls devuelve el número de invocaciones a Enrich de forma segura.
func (m *MockProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}

var _ ports.Provider = (*MockProvider)(nil)

// MockWordList implementa ports.WordList sobre un set fijo de palabras.
type MockWordList struct {
	Words map[string]struct{}
}

// NewMockWordList crea un wordlist de prueba con las palabras dadas.
func NewMockWordList(words ...string) *MockWordList {
	m := &MockWordList{Words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		m.Words[w] = struct{}{}
	}
	return m
}

func (m *MockWordList) Contains(w string) bool {
	_, ok := m.Words[w]
	return ok
}

func (m *MockWordList) LongestPrefix(s string) string {
	best := ""
	for w := range m.Words {
		if len(w) > len(best) && len(w) <= len(s) && s[:len(w)] == w {
			best = w
		}
	}
	return best
}

func (m *MockWordList) Len() int { return len(m.Words) }

var _ ports.WordList = (*MockWordList)(nil)
