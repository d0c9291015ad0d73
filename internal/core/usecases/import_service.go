// internal/core/usecases/import_service.go
package usecases

import (
	"sort"
	"sync"

	"domainlens/internal/core/domain"
	"domainlens/internal/platform/logx"
)

// ImportService mantiene la colección en memoria de dominios importados
// y garantiza el invariante de dedup: dentro de una colección, el string
// de dominio es único entre todas las fuentes combinadas, y gana el
// primero en llegar.
//
// El merge es atómico respecto a la colección: filtrar un batch contra
// el set existente y añadirlo es un solo paso bajo el lock, así que dos
// imports simultáneos no pueden colar el mismo dominio dos veces.
type ImportService struct {
	mu     sync.Mutex
	items  []domain.ImportedDomainItem
	index  map[string]int // key -> posición en items
	logger logx.Logger
}

// MergeResult resume el resultado de fusionar un batch.
type MergeResult struct {
	Added      int
	Duplicates int
	Invalid    int
}

// NewImportService crea una colección vacía.
func NewImportService(logger logx.Logger) *ImportService {
	if logger == nil {
		logger = logx.New()
	}
	return &ImportService{
		index:  make(map[string]int),
		logger: logger,
	}
}

// Merge incorpora un batch a la colección. Los items cuyo dominio ya
// existe se descartan (first-seen wins); los inválidos se cuentan pero
// no rompen el merge.
func (s *ImportService) Merge(batch []domain.ImportedDomainItem) MergeResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res MergeResult
	for _, item := range batch {
		if !item.IsValid() {
			res.Invalid++
			continue
		}
		key := item.Key()
		if _, exists := s.index[key]; exists {
			res.Duplicates++
			continue
		}
		s.index[key] = len(s.items)
		s.items = append(s.items, item)
		res.Added++
	}

	s.logger.Debug("batch merged",
		"added", res.Added,
		"duplicates", res.Duplicates,
		"invalid", res.Invalid,
		"total", len(s.items))
	return res
}

// Items devuelve una copia de la colección en orden de inserción.
func (s *ImportService) Items() []domain.ImportedDomainItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ImportedDomainItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len devuelve el tamaño actual de la colección.
func (s *ImportService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Find busca un item por dominio. La clave se normaliza igual que al
// importar, así que se admite cualquier forma cruda del dominio.
func (s *ImportService) Find(name string) (domain.ImportedDomainItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.index[domain.NormalizeDomain(name)]
	if !ok {
		return domain.ImportedDomainItem{}, false
	}
	return s.items[idx], true
}

// Update aplica fn al item con la clave dada bajo el lock. Lo usa el
// flujo de enriquecimiento para adjuntar métricas y scores sin carreras.
func (s *ImportService) Update(name string, fn func(*domain.ImportedDomainItem)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.index[domain.NormalizeDomain(name)]
	if !ok {
		return false
	}
	fn(&s.items[idx])
	return true
}

// BySource devuelve los items de una fuente concreta.
func (s *ImportService) BySource(source domain.ImportSource) []domain.ImportedDomainItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.ImportedDomainItem
	for _, item := range s.items {
		if item.Source == source {
			out = append(out, item)
		}
	}
	return out
}

// TopByScore devuelve hasta n items ordenados por puntuación global
// descendente; los items sin score van al final.
func (s *ImportService) TopByScore(n int) []domain.ImportedDomainItem {
	items := s.Items()
	sort.SliceStable(items, func(i, j int) bool {
		si, sj := items[i].Score, items[j].Score
		switch {
		case si == nil:
			return false
		case sj == nil:
			return true
		default:
			return si.Overall > sj.Overall
		}
	})
	if n > 0 && n < len(items) {
		items = items[:n]
	}
	return items
}
