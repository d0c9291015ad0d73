// internal/core/usecases/watchlist.go
package usecases

import (
	"domainlens/internal/core/domain"
	"domainlens/internal/core/ports"
)

// Watchlist acumula los dominios que terminaron con veredicto de compra
// sobre el boundary clave-valor inyectado. La app que nos envuelve decide
// la persistencia real; aquí solo se define qué entra y cómo se lee.
type Watchlist struct {
	store ports.KeyValue
}

// WatchlistEntry es un dominio vigilado con su veredicto.
type WatchlistEntry struct {
	Domain         string
	Recommendation domain.Recommendation
}

// NewWatchlist crea la watchlist sobre el store dado.
func NewWatchlist(store ports.KeyValue) *Watchlist {
	return &Watchlist{store: store}
}

// Record registra el dominio si el veredicto amerita seguimiento
// (strong-buy o buy). Devuelve true si quedó registrado.
func (w *Watchlist) Record(name string, rec domain.Recommendation) bool {
	if rec != domain.RecommendStrongBuy && rec != domain.RecommendBuy {
		return false
	}
	key := domain.NormalizeDomain(name)
	if key == "" {
		return false
	}
	if err := w.store.Set(key, string(rec)); err != nil {
		return false
	}
	return true
}

// Remove saca un dominio de la watchlist.
func (w *Watchlist) Remove(name string) error {
	return w.store.Delete(domain.NormalizeDomain(name))
}

// Entries devuelve la watchlist completa en el orden del store.
func (w *Watchlist) Entries() []WatchlistEntry {
	keys := w.store.Keys()
	entries := make([]WatchlistEntry, 0, len(keys))
	for _, k := range keys {
		v, ok := w.store.Get(k)
		if !ok {
			continue
		}
		entries = append(entries, WatchlistEntry{
			Domain:         k,
			Recommendation: domain.Recommendation(v),
		})
	}
	return entries
}

// Len devuelve el número de dominios vigilados.
func (w *Watchlist) Len() int {
	return len(w.store.Keys())
}
