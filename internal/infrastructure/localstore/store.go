// Package localstore implementa el almacén local duradero del cliente:
// un puerto clave-valor con respaldo en archivo (equivalente al storage por
// origen del navegador) y el registro de credenciales construido encima.
package localstore

import "sync"

// Store define el puerto clave-valor duradero. Se inyecta explícitamente en
// lugar de un estado global, para poder sustituir el respaldo en tests.
type Store interface {
	// Get devuelve el valor de key y si existe.
	Get(key string) (string, bool)
	// Set escribe key=value de forma duradera.
	Set(key, value string) error
	// Delete elimina key. Borrar una clave inexistente no es un error.
	Delete(key string) error
}

// MemoryStore implementación en memoria (tests y sesiones efímeras).
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore crea un MemoryStore vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
