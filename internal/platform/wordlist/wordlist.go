// Package wordlist provides the default known-word resource backing the
// profiler's greedy compound segmentation. It implements ports.WordList
// with a plain set plus a max-length bound; callers can swap in a larger
// dictionary or a trie without touching the segmentation algorithm.
package wordlist

import "strings"

// Set is a known-word set with longest-prefix lookup.
type Set struct {
	words  map[string]struct{}
	maxLen int
	minLen int
}

// New creates a Set from the given words. Words shorter than two runes are
// ignored; lookups are case-insensitive.
func New(words []string) *Set {
	s := &Set{
		words:  make(map[string]struct{}, len(words)),
		minLen: 2,
	}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) < s.minLen {
			continue
		}
		s.words[w] = struct{}{}
		if len(w) > s.maxLen {
			s.maxLen = len(w)
		}
	}
	return s
}

// Default returns the built-in dictionary of words commonly found in
// domain names.
func Default() *Set {
	return New(defaultWords)
}

// Contains reports whether the word is in the dictionary.
func (s *Set) Contains(word string) bool {
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// LongestPrefix returns the longest dictionary word that prefixes str,
// or "" when none does.
func (s *Set) LongestPrefix(str string) string {
	str = strings.ToLower(str)
	limit := len(str)
	if limit > s.maxLen {
		limit = s.maxLen
	}
	for l := limit; l >= s.minLen; l-- {
		if _, ok := s.words[str[:l]]; ok {
			return str[:l]
		}
	}
	return ""
}

// Len returns the number of words in the dictionary.
func (s *Set) Len() int {
	return len(s.words)
}

// defaultWords covers common English words plus the vocabulary that shows
// up constantly in niche domain names. Deliberately compact: the segmenter
// falls back to the whole token when it cannot split.
var defaultWords = []string{
	// genéricas
	"the", "my", "your", "our", "all", "best", "top", "pro", "go", "get",
	"hub", "spot", "zone", "lab", "labs", "base", "box", "city", "world",
	"land", "place", "point", "site", "page", "post", "blog", "news",
	"daily", "weekly", "guide", "guru", "expert", "master", "ninja",
	"smart", "easy", "quick", "fast", "simple", "super", "mega", "ultra",
	"prime", "plus", "max", "mini", "micro", "meta", "one", "first",
	"new", "now", "next", "true", "real", "pure", "fresh", "free",
	// tech
	"tech", "soft", "ware", "code", "coder", "coding", "dev", "data",
	"cloud", "net", "web", "app", "apps", "byte", "bit", "pixel", "cyber",
	"digital", "online", "mobile", "robot", "bot", "stack", "script",
	"server", "host", "hosting", "domain", "email", "mail", "crypto",
	"chain", "block", "token", "wallet", "ai", "machine", "learning",
	// finanzas
	"finance", "financial", "money", "cash", "coin", "coins", "bank",
	"banking", "invest", "investing", "investment", "wealth", "rich",
	"profit", "income", "budget", "credit", "loan", "loans", "debt",
	"tax", "taxes", "trade", "trading", "trader", "stock", "stocks",
	"market", "markets", "capital", "fund", "funds", "save", "savings",
	"pay", "payment", "price", "value",
	// salud
	"health", "healthy", "fit", "fitness", "gym", "diet", "nutrition",
	"vitamin", "wellness", "well", "care", "medical", "medic", "doctor",
	"dental", "yoga", "mind", "body", "muscle", "weight", "sleep",
	// hogar / inmobiliaria
	"home", "homes", "house", "houses", "estate", "property", "realty",
	"real", "rent", "rental", "build", "builder", "garden", "kitchen",
	"room", "roof", "floor", "door", "window", "decor", "design",
	// comercio
	"shop", "shopping", "store", "buy", "sell", "deal", "deals", "sale",
	"cart", "order", "retail", "brand", "product", "goods", "gift",
	"gifts", "coupon", "discount",
	// viajes
	"travel", "trip", "tour", "tours", "vacation", "holiday", "flight",
	"flights", "hotel", "hotels", "beach", "island", "adventure", "camp",
	"camping", "map", "maps",
	// comida
	"food", "foods", "recipe", "recipes", "cook", "cooking", "chef",
	"meal", "meals", "eat", "eating", "drink", "coffee", "tea", "wine",
	"beer", "bake", "baking", "grill", "vegan", "keto",
	// educación
	"learn", "learning", "teach", "teacher", "study", "school", "course",
	"courses", "class", "academy", "tutor", "skill", "skills", "book",
	"books", "read", "reading", "write", "writing",
	// marketing / media
	"marketing", "seo", "media", "social", "content", "video", "photo",
	"music", "audio", "radio", "film", "movie", "game", "games", "gamer",
	"gaming", "play", "player", "sport", "sports", "team", "club",
	// moda / estilo de vida
	"fashion", "style", "beauty", "skin", "hair", "wear", "dress",
	"watch", "watches", "jewel", "luxury", "life", "lifestyle", "love",
	"family", "baby", "kids", "men", "women",
	// coches / mascotas / naturaleza
	"auto", "autos", "car", "cars", "motor", "drive", "driving", "ride",
	"bike", "bikes", "pet", "pets", "dog", "dogs", "cat", "cats", "bird",
	"fish", "animal", "farm", "green", "eco", "solar", "energy", "power",
	"nature", "outdoor", "wild",
	// legal / negocio
	"law", "legal", "lawyer", "insurance", "insure", "job", "jobs",
	"work", "working", "career", "business", "startup", "company",
	"agency", "service", "services", "consult", "consulting", "coach",
	"coaching", "review", "reviews", "compare", "tool", "tools", "tips",
	"idea", "ideas", "plan", "plans", "help", "support",
}
