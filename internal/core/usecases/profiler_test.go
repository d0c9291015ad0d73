// internal/core/usecases/profiler_test.go
package usecases

import (
	"strings"
	"testing"

	"domainlens/internal/core/domain"
	"domainlens/internal/platform/wordlist"
	"domainlens/internal/testutil"
)

func newTestProfiler() *Profiler {
	return NewProfiler(wordlist.Default())
}

func TestSegmentDomainName(t *testing.T) {
	p := newTestProfiler()

	tests := []struct {
		raw  string
		want []string
	}{
		{"techzone.com", []string{"tech", "zone"}},
		{"a-b-c.tld", []string{"a", "b", "c"}},
		{"my-health-blog.org", []string{"my", "health", "blog"}},
		{"finance.com", []string{"finance"}},
		{"qzxqzx.com", []string{"qzxqzx"}}, // sin cobertura de diccionario
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := p.SegmentDomainName(tt.raw)
			testutil.AssertStrings(t, got, tt.want, "SegmentDomainName")
		})
	}
}

func TestSegmentNeverContainsTLD(t *testing.T) {
	p := newTestProfiler()
	for _, raw := range []string{"techzone.com", "a-b-c.tld", "travelblog.io"} {
		parsed := domain.ParseDomain(raw)
		for _, seg := range p.SegmentDomainName(raw) {
			if seg == parsed.TLD {
				t.Errorf("SegmentDomainName(%q) leaked TLD token %q", raw, seg)
			}
		}
	}
}

func TestGuessNiche(t *testing.T) {
	p := newTestProfiler()

	tests := []struct {
		words []string
		want  domain.Niche
	}{
		{[]string{"tech", "zone"}, domain.NicheTechnology},
		{[]string{"finance"}, domain.NicheFinance},
		{[]string{"my", "health", "blog"}, domain.NicheHealth},
		{[]string{"travel", "deals"}, domain.NicheEcommerce}, // "deals" gana por orden de declaración
		{[]string{"qzx"}, domain.NicheGeneral},
		{nil, domain.NicheGeneral},
	}

	for _, tt := range tests {
		if got := p.GuessNiche(tt.words); got != tt.want {
			t.Errorf("GuessNiche(%v) = %q, want %q", tt.words, got, tt.want)
		}
	}
}

func TestGeneratePrimaryKeywords(t *testing.T) {
	p := newTestProfiler()

	kws := p.GeneratePrimaryKeywords([]string{"tech", "zone"}, domain.NicheTechnology)
	if len(kws) != 5 {
		t.Fatalf("got %d keywords, want exactly 5", len(kws))
	}
	if kws[0] != "tech zone" {
		t.Errorf("entry 0 = %q, want literal base phrase", kws[0])
	}
	hasBest := false
	for _, kw := range kws {
		if strings.Contains(kw, "best") {
			hasBest = true
		}
	}
	if !hasBest {
		t.Error("no keyword contains \"best\"")
	}
}

func TestGeneratePrimaryKeywordsEmptyWords(t *testing.T) {
	p := newTestProfiler()
	kws := p.GeneratePrimaryKeywords(nil, domain.NicheGeneral)
	if len(kws) != 5 {
		t.Fatalf("got %d keywords, want exactly 5", len(kws))
	}
	for i, kw := range kws {
		if strings.TrimSpace(kw) == "" {
			t.Errorf("entry %d is blank", i)
		}
	}
}

func TestGenerateQuestionKeywordsPrefixOrder(t *testing.T) {
	p := newTestProfiler()
	qs := p.GenerateQuestionKeywords([]string{"finance"})

	wantPrefixes := []string{"what is", "how to", "why"}
	if len(qs) != len(wantPrefixes) {
		t.Fatalf("got %d question keywords, want %d", len(qs), len(wantPrefixes))
	}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(qs[i], prefix) {
			t.Errorf("entry %d = %q, want prefix %q", i, qs[i], prefix)
		}
	}
}

func TestGenerateSuggestedTopics(t *testing.T) {
	p := newTestProfiler()
	topics := p.GenerateSuggestedTopics([]string{"tech", "zone"}, domain.NicheTechnology)

	if len(topics) != 5 {
		t.Fatalf("got %d topics, want exactly 5", len(topics))
	}
	if !strings.HasPrefix(topics[0], "Complete Guide to ") {
		t.Errorf("entry 0 = %q, want Complete Guide prefix", topics[0])
	}
	if !strings.Contains(topics[0], "Tech Zone") {
		t.Errorf("entry 0 = %q, want title-cased base phrase", topics[0])
	}
}

func TestGenerateProfile(t *testing.T) {
	p := newTestProfiler()
	profile := p.GenerateProfile("techzone.com")

	if profile.Domain != "techzone.com" {
		t.Errorf("Domain = %q", profile.Domain)
	}
	if profile.Niche != domain.NicheTechnology {
		t.Errorf("Niche = %q, want Technology", profile.Niche)
	}
	testutil.AssertStrings(t, profile.Words, []string{"tech", "zone"}, "Words")
	if len(profile.PrimaryKeywords) != 5 || len(profile.SuggestedTopics) != 5 {
		t.Errorf("keyword/topic counts = %d/%d, want 5/5",
			len(profile.PrimaryKeywords), len(profile.SuggestedTopics))
	}
	if len(profile.QuestionKeywords) == 0 {
		t.Error("expected question keywords")
	}
}
