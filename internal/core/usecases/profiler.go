// internal/core/usecases/profiler.go
package usecases

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"domainlens/internal/core/domain"
	"domainlens/internal/core/ports"
)

// Profiler segmenta nombres de dominio en palabras, adivina un nicho y
// deriva keywords y topics para contenido. Puro y sin I/O: seguro para
// llamadas concurrentes.
type Profiler struct {
	words ports.WordList
	caser cases.Caser
}

// NewProfiler crea un profiler con el wordlist dado.
func NewProfiler(words ports.WordList) *Profiler {
	return &Profiler{
		words: words,
		caser: cases.Title(language.English),
	}
}

// nicheEntry asocia un nicho con su set de keywords. El orden de
// declaración desempata: gana la primera entrada que intersecta.
type nicheEntry struct {
	niche    domain.Niche
	keywords []string
}

var nicheTaxonomy = []nicheEntry{
	{domain.NicheEcommerce, []string{"shop", "store", "buy", "deal", "deals", "market", "cart", "sale"}},
	{domain.NicheTechnology, []string{"tech", "soft", "app", "apps", "code", "data", "cloud", "cyber", "digital", "web", "net", "ai", "dev"}},
	{domain.NicheFinance, []string{"finance", "money", "invest", "loan", "loans", "credit", "bank", "crypto", "trading", "wealth", "tax"}},
	{domain.NicheHealth, []string{"health", "fit", "fitness", "diet", "yoga", "medical", "wellness", "care", "vital", "gym"}},
	{domain.NicheRealEstate, []string{"home", "house", "property", "estate", "realty", "rent", "apartment", "casa"}},
	{domain.NicheTravel, []string{"travel", "trip", "tour", "tours", "hotel", "flight", "vacation", "cruise"}},
	{domain.NicheFood, []string{"food", "recipe", "recipes", "cook", "cooking", "kitchen", "meal", "chef", "restaurant"}},
	{domain.NicheEducation, []string{"learn", "course", "courses", "academy", "school", "study", "tutor", "training"}},
	{domain.NicheMarketing, []string{"marketing", "seo", "ads", "brand", "media", "social", "content", "agency"}},
	{domain.NicheGaming, []string{"game", "games", "gaming", "play", "player", "esports", "arcade"}},
	{domain.NicheFashion, []string{"fashion", "style", "beauty", "makeup", "wear", "dress", "moda"}},
	{domain.NicheAutomotive, []string{"auto", "car", "cars", "motor", "drive", "garage", "coche"}},
	{domain.NichePets, []string{"pet", "pets", "dog", "dogs", "cat", "cats", "vet", "puppy"}},
}

// SegmentDomainName separa el nombre de un dominio en palabras. El raw
// puede traer TLD; se parsea primero y el TLD nunca aparece en el
// resultado.
func (p *Profiler) SegmentDomainName(raw string) []string {
	parsed := domain.ParseDomain(raw)
	return segmentName(parsed.Name, p.words)
}

// segmentName hace la segmentación real sobre un nombre sin TLD:
// split por guiones si los hay, si no greedy longest-prefix contra el
// diccionario, y como último recurso el nombre entero como token único.
func segmentName(name string, wl ports.WordList) []string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}

	if strings.Contains(name, "-") {
		parts := strings.Split(name, "-")
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if part != "" {
				out = append(out, part)
			}
		}
		return out
	}

	if wl != nil {
		if segs, ok := greedySplit(name, wl); ok {
			return segs
		}
	}
	return []string{name}
}

// greedySplit intenta cubrir name entero con prefijos de diccionario,
// siempre el más largo primero. Devuelve ok=false si queda un resto que
// el diccionario no conoce.
func greedySplit(name string, wl ports.WordList) ([]string, bool) {
	var segs []string
	rest := name
	for rest != "" {
		w := wl.LongestPrefix(rest)
		if w == "" {
			return nil, false
		}
		segs = append(segs, w)
		rest = rest[len(w):]
	}
	// un solo segmento igual al nombre no aporta nada sobre el fallback
	if len(segs) < 2 {
		return segs, len(segs) == 1
	}
	return segs, true
}

// GuessNiche asigna el primer nicho cuya keyword set intersecta con las
// palabras. "General" si ninguno.
func (p *Profiler) GuessNiche(words []string) domain.Niche {
	for _, entry := range nicheTaxonomy {
		for _, kw := range entry.keywords {
			for _, w := range words {
				if w == kw {
					return entry.niche
				}
			}
		}
	}
	return domain.NicheGeneral
}

// GeneratePrimaryKeywords produce exactamente 5 keywords comerciales.
// La entrada 0 es la frase base literal; al menos una contiene "best".
func (p *Profiler) GeneratePrimaryKeywords(words []string, niche domain.Niche) []string {
	base := basePhrase(words)
	return []string{
		base,
		"best " + base,
		base + " reviews",
		base + " services",
		"top " + base + " sites",
	}
}

// GenerateQuestionKeywords produce frases de pregunta en orden fijo:
// "what is", "how to", "why". La generación de FAQs aguas abajo depende
// de este orden de prefijos.
func (p *Profiler) GenerateQuestionKeywords(words []string) []string {
	base := basePhrase(words)
	return []string{
		"what is " + base,
		"how to use " + base,
		"why " + base + " matters",
	}
}

// GenerateSuggestedTopics produce exactamente 5 topics en title case.
// La entrada 0 es "Complete Guide to {Base}".
func (p *Profiler) GenerateSuggestedTopics(words []string, niche domain.Niche) []string {
	base := p.caser.String(basePhrase(words))
	return []string{
		"Complete Guide to " + base,
		"Top 10 " + base + " Tips for Beginners",
		"How " + base + " Is Changing in 2026",
		"Common " + base + " Mistakes to Avoid",
		base + " vs Alternatives: an Honest Comparison",
	}
}

// GenerateProfile agrega segmentación, nicho y keywords en un perfil
// completo. Sin I/O.
func (p *Profiler) GenerateProfile(raw string) domain.DomainProfile {
	parsed := domain.ParseDomain(raw)
	words := segmentName(parsed.Name, p.words)
	niche := p.GuessNiche(words)

	return domain.DomainProfile{
		Domain:           parsed.Normalized,
		Niche:            niche,
		Words:            words,
		PrimaryKeywords:  p.GeneratePrimaryKeywords(words, niche),
		QuestionKeywords: p.GenerateQuestionKeywords(words),
		SuggestedTopics:  p.GenerateSuggestedTopics(words, niche),
	}
}

// basePhrase une las palabras con espacios; vacío produce "domain" para
// que las plantillas nunca generen frases rotas.
func basePhrase(words []string) string {
	if len(words) == 0 {
		return "domain"
	}
	return strings.Join(words, " ")
}
