package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore implementa Store sobre un archivo JSON plano (mapa string→string).
// Cada escritura persiste el archivo completo; el contenido incluye el secreto
// en claro, por lo que el archivo se escribe con permisos 0600.
type FileStore struct {
	path   string
	mu     sync.RWMutex
	values map[string]string
}

// NewFileStore abre (o inicializa) el archivo de respaldo en path.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		values: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil // almacén nuevo
	}
	if err != nil {
		return fmt.Errorf("leer almacén local: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return fmt.Errorf("almacén local corrupto: %w", err)
	}
	return nil
}

// persist escribe el mapa completo. Debe llamarse con el lock tomado.
func (s *FileStore) persist() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.persist()
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.persist()
}
