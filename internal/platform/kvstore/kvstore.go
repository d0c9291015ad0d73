// internal/platform/kvstore/kvstore.go
package kvstore

import (
	"sort"
	"sync"

	"domainlens/internal/core/ports"
)

// Memory es la implementación en memoria de ports.KeyValue. Es la
// implementación por defecto; la app que nos envuelve puede inyectar un
// backend persistente sin tocar el core.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ ports.KeyValue = (*Memory)(nil)

// NewMemory crea un store vacío.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get retorna el valor y true si la clave existe.
func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

// Set almacena el valor bajo la clave.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Delete elimina la clave. Borrar una clave inexistente no es error.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Keys retorna todas las claves presentes, ordenadas para salida estable.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
