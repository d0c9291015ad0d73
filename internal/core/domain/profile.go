// internal/core/domain/profile.go
package domain

// Niche es la categoría temática gruesa asignada a un dominio por su nombre.
// Taxonomía cerrada con "General" como fallback.
type Niche string

const (
	NicheEcommerce  Niche = "E-commerce"
	NicheTechnology Niche = "Technology"
	NicheFinance    Niche = "Finance"
	NicheHealth     Niche = "Health & Fitness"
	NicheRealEstate Niche = "Real Estate"
	NicheTravel     Niche = "Travel"
	NicheFood       Niche = "Food & Cooking"
	NicheEducation  Niche = "Education"
	NicheMarketing  Niche = "Marketing"
	NicheGaming     Niche = "Gaming"
	NicheFashion    Niche = "Fashion & Beauty"
	NicheAutomotive Niche = "Automotive"
	NichePets       Niche = "Pets"
	NicheGeneral    Niche = "General"
)

// String retorna la representación string del niche.
func (n Niche) String() string {
	return string(n)
}

// DomainProfile es el perfil de contenido derivado del nombre de dominio.
// Construcción pura: sin I/O, misma entrada produce siempre la misma salida.
type DomainProfile struct {
	Domain string `json:"domain"`
	Niche  Niche  `json:"niche"`

	// Words es la segmentación del nombre ("techzone" -> ["tech","zone"])
	Words []string `json:"words"`

	// PrimaryKeywords tiene exactamente 5 entradas; la primera es la frase
	// base y al menos una contiene "best"
	PrimaryKeywords []string `json:"primary_keywords"`

	// QuestionKeywords en orden fijo de prefijos: "what is", "how to", "why"
	QuestionKeywords []string `json:"question_keywords"`

	// SuggestedTopics tiene exactamente 5 entradas; la primera es
	// "Complete Guide to {Frase Base}"
	SuggestedTopics []string `json:"suggested_topics"`
}
