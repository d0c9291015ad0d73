// internal/core/ports/kv.go
package ports

// KeyValue abstrae el almacenamiento clave-valor que la capa superior usa
// para watchlists e historial. Este core no asume ningún mecanismo de
// persistencia concreto: la implementación por defecto es en memoria y la
// app que nos envuelve puede inyectar la suya.
type KeyValue interface {
	// Get retorna el valor y true si la clave existe
	Get(key string) (string, bool)

	// Set almacena el valor bajo la clave
	Set(key, value string) error

	// Delete elimina la clave
	Delete(key string) error

	// Keys retorna todas las claves presentes
	Keys() []string
}
