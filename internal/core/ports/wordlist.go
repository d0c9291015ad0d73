// internal/core/ports/wordlist.go
package ports

// WordList es el recurso de palabras conocidas que alimenta la segmentación
// greedy de nombres compuestos. Se expone como interfaz para poder mejorar
// la precisión (otro diccionario, un trie, un idioma distinto) sin tocar el
// algoritmo del profiler.
type WordList interface {
	// Contains indica si la palabra pertenece al diccionario
	Contains(word string) bool

	// LongestPrefix retorna la palabra más larga del diccionario que sea
	// prefijo de s, o cadena vacía si ninguna lo es
	LongestPrefix(s string) string

	// Len retorna el número de palabras del diccionario
	Len() int
}
