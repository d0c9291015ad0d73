// internal/platform/registry/provider_registry.go
package registry

import (
	"fmt"
	"sort"
	"sync"

	"domainlens/internal/core/ports"
	"domainlens/internal/platform/logx"
)

// ProviderRegistry gestiona el registro y construcción de proveedores de
// señal. Implementa el patrón Registry + Factory para desacoplar la
// creación de proveedores del código de aplicación.
type ProviderRegistry struct {
	mu        sync.RWMutex
	factories map[string]ProviderFactory
	metadata  map[string]ports.ProviderMetadata
	logger    logx.Logger
}

// ProviderFactory es una función que crea una instancia de Provider.
type ProviderFactory func(cfg ports.ProviderConfig, logger logx.Logger) (ports.Provider, error)

// globalRegistry es la instancia global del registry.
var globalRegistry *ProviderRegistry
var once sync.Once

// Global retorna la instancia global del registry.
func Global() *ProviderRegistry {
	once.Do(func() {
		globalRegistry = NewProviderRegistry(logx.New())
	})
	return globalRegistry
}

// NewProviderRegistry crea un nuevo registry de proveedores.
func NewProviderRegistry(logger logx.Logger) *ProviderRegistry {
	return &ProviderRegistry{
		factories: make(map[string]ProviderFactory),
		metadata:  make(map[string]ports.ProviderMetadata),
		logger:    logger.With("component", "provider-registry"),
	}
}

// Register registra una factory con su metadata.
// Típicamente llamado desde init() de cada package de proveedor.
func (r *ProviderRegistry) Register(name string, factory ProviderFactory, meta ports.ProviderMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return fmt.Errorf("provider name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil for provider %s", name)
	}
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("provider %s is already registered", name)
	}

	r.factories[name] = factory
	r.metadata[name] = meta
	r.logger.Debug("provider registered", "name", name, "type", meta.Type)

	return nil
}

// Build construye todos los proveedores habilitados según la configuración,
// ordenados por prioridad descendente.
func (r *ProviderRegistry) Build(configs map[string]ports.ProviderConfig, logger logx.Logger) ([]ports.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if configs == nil {
		return nil, fmt.Errorf("configs cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	type pending struct {
		name     string
		config   ports.ProviderConfig
		priority int
	}

	queue := make([]pending, 0, len(configs))
	var buildErrs []error

	for name, cfg := range configs {
		if !cfg.Enabled {
			continue
		}
		if _, exists := r.factories[name]; !exists {
			r.logger.Warn("provider not registered, skipping", "provider", name)
			buildErrs = append(buildErrs, fmt.Errorf("provider %s not registered", name))
			continue
		}
		queue = append(queue, pending{name: name, config: cfg, priority: cfg.Priority})
	}

	sort.Slice(queue, func(i, j int) bool {
		return queue[i].priority > queue[j].priority
	})

	providers := make([]ports.Provider, 0, len(queue))
	for _, p := range queue {
		factory := r.factories[p.name]
		provider, err := factory(p.config, logger)
		if err != nil {
			buildErrs = append(buildErrs, fmt.Errorf("failed to build provider %s: %w", p.name, err))
			continue
		}
		providers = append(providers, provider)
		r.logger.Debug("provider built", "name", p.name, "priority", p.priority)
	}

	for _, err := range buildErrs {
		r.logger.Warn("provider build error", "error", err.Error())
	}

	if len(providers) == 0 && len(configs) > 0 {
		return nil, fmt.Errorf("no providers could be built")
	}

	logger.Info("providers built", "count", len(providers), "requested", len(configs))
	return providers, nil
}

// List retorna los nombres de todos los proveedores registrados.
func (r *ProviderRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetMetadata retorna el metadata de un proveedor.
func (r *ProviderRegistry) GetMetadata(name string) (ports.ProviderMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, exists := r.metadata[name]
	return meta, exists
}

// IsRegistered verifica si un proveedor está registrado.
func (r *ProviderRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// Clear elimina todos los proveedores registrados (útil para testing).
func (r *ProviderRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories = make(map[string]ProviderFactory)
	r.metadata = make(map[string]ports.ProviderMetadata)
}
