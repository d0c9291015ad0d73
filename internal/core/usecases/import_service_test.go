// internal/core/usecases/import_service_test.go
package usecases

import (
	"sync"
	"testing"

	"domainlens/internal/core/domain"
	"domainlens/internal/platform/logx"
)

func newTestImportService() *ImportService {
	return NewImportService(logx.NewSilent())
}

func TestMergeDedupAcrossSources(t *testing.T) {
	s := newTestImportService()

	// primero manual, luego spamzilla con el mismo dominio
	res1 := s.Merge([]domain.ImportedDomainItem{
		domain.NewImportedItem("test.com", domain.SourceManual),
	})
	res2 := s.Merge([]domain.ImportedDomainItem{
		domain.NewImportedItem("test.com", domain.SourceSpamZilla),
	})

	if res1.Added != 1 || res2.Added != 0 || res2.Duplicates != 1 {
		t.Errorf("unexpected merge results: %+v / %+v", res1, res2)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}

	item, ok := s.Find("test.com")
	if !ok {
		t.Fatal("test.com not found")
	}
	if item.Source != domain.SourceManual {
		t.Errorf("Source = %q, want first-seen manual record", item.Source)
	}
}

func TestMergeIdempotent(t *testing.T) {
	s := newTestImportService()
	batch := []domain.ImportedDomainItem{
		domain.NewImportedItem("a.com", domain.SourceManual),
		domain.NewImportedItem("b.com", domain.SourceManual),
	}

	s.Merge(batch)
	res := s.Merge(batch)

	if res.Added != 0 || res.Duplicates != 2 {
		t.Errorf("re-merge result %+v, want all duplicates", res)
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestMergeCaseInsensitive(t *testing.T) {
	s := newTestImportService()
	s.Merge([]domain.ImportedDomainItem{
		domain.NewImportedItem("Example.COM", domain.SourceManual),
	})
	res := s.Merge([]domain.ImportedDomainItem{
		domain.NewImportedItem("example.com", domain.SourceFree),
	})
	if res.Duplicates != 1 {
		t.Errorf("case-variant domain not deduped: %+v", res)
	}
}

func TestMergeSkipsInvalid(t *testing.T) {
	s := newTestImportService()
	res := s.Merge([]domain.ImportedDomainItem{
		domain.NewImportedItem("", domain.SourceManual),
		domain.NewImportedItem("no-dots", domain.SourceManual),
		domain.NewImportedItem("good.com", domain.SourceManual),
	})
	if res.Added != 1 || res.Invalid != 2 {
		t.Errorf("merge result %+v, want 1 added, 2 invalid", res)
	}
}

func TestConcurrentMergeSingleWinner(t *testing.T) {
	s := newTestImportService()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Merge([]domain.ImportedDomainItem{
				domain.NewImportedItem("contested.com", domain.SourceManual),
				domain.NewImportedItem("other.com", domain.SourceFree),
			})
		}()
	}
	wg.Wait()

	if s.Len() != 2 {
		t.Errorf("Len = %d after concurrent merges, want 2", s.Len())
	}
}

func TestUpdateAttachesScore(t *testing.T) {
	s := newTestImportService()
	s.Merge([]domain.ImportedDomainItem{
		domain.NewImportedItem("scored.com", domain.SourceManual),
	})

	ok := s.Update("scored.com", func(item *domain.ImportedDomainItem) {
		item.Score = &domain.Score{Overall: 72}
		item.Enriched = true
	})
	if !ok {
		t.Fatal("Update returned false for existing item")
	}

	item, _ := s.Find("scored.com")
	if item.Score == nil || item.Score.Overall != 72 || !item.Enriched {
		t.Errorf("update not visible: %+v", item)
	}

	if s.Update("missing.com", func(*domain.ImportedDomainItem) {}) {
		t.Error("Update returned true for missing item")
	}
}

func TestBySourceAndTopByScore(t *testing.T) {
	s := newTestImportService()

	a := domain.NewImportedItem("a.com", domain.SourceManual)
	b := domain.NewImportedItem("b.com", domain.SourceSpamZilla)
	c := domain.NewImportedItem("c.com", domain.SourceSpamZilla)
	s.Merge([]domain.ImportedDomainItem{a, b, c})

	s.Update("b.com", func(i *domain.ImportedDomainItem) { i.Score = &domain.Score{Overall: 90} })
	s.Update("c.com", func(i *domain.ImportedDomainItem) { i.Score = &domain.Score{Overall: 40} })

	sz := s.BySource(domain.SourceSpamZilla)
	if len(sz) != 2 {
		t.Errorf("BySource returned %d items, want 2", len(sz))
	}

	top := s.TopByScore(2)
	if len(top) != 2 || top[0].Domain != "b.com" {
		t.Errorf("TopByScore order wrong: %+v", top)
	}

	all := s.TopByScore(0)
	if len(all) != 3 || all[2].Score != nil {
		t.Errorf("unscored item should sort last: %+v", all)
	}
}

func TestFindAndUpdateAcceptRawForms(t *testing.T) {
	s := newTestImportService()
	s.Merge([]domain.ImportedDomainItem{domain.NewImportedItem("example.com", domain.SourceManual)})

	// Cualquier forma cruda del dominio debe resolver al mismo item
	for _, raw := range []string{"example.com", "EXAMPLE.COM", "https://www.example.com/path", "www.example.com."} {
		if _, ok := s.Find(raw); !ok {
			t.Errorf("Find(%q) did not resolve the stored item", raw)
		}
	}

	ok := s.Update("HTTPS://Example.com", func(i *domain.ImportedDomainItem) {
		i.Score = &domain.Score{Overall: 55}
	})
	if !ok {
		t.Fatal("Update with raw key did not resolve the stored item")
	}
	got, _ := s.Find("example.com")
	if got.Score == nil || got.Score.Overall != 55 {
		t.Errorf("score not attached through raw-key Update: %+v", got.Score)
	}
}
