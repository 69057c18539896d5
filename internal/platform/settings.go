package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings persists small host-side values, keyed by name. Freeze stores,
// Thaw retrieves with a default for missing keys. Implementations are only
// touched from the dispatch goroutine.
type Settings interface {
	FreezeInt(value int, key string)
	ThawInt(def int, key string) int
	FreezeFloat(value float64, key string)
	ThawFloat(def float64, key string) float64
	FreezeString(value string, key string)
	ThawString(def string, key string) string
}

// MemorySettings keeps values in memory only; used headless and in tests.
type MemorySettings struct {
	values map[string]any
}

func NewMemorySettings() *MemorySettings {
	return &MemorySettings{values: map[string]any{}}
}

func (s *MemorySettings) FreezeInt(value int, key string) { s.values[key] = value }

func (s *MemorySettings) ThawInt(def int, key string) int {
	if v, ok := s.values[key].(int); ok {
		return v
	}
	return def
}

func (s *MemorySettings) FreezeFloat(value float64, key string) { s.values[key] = value }

func (s *MemorySettings) ThawFloat(def float64, key string) float64 {
	if v, ok := s.values[key].(float64); ok {
		return v
	}
	return def
}

func (s *MemorySettings) FreezeString(value string, key string) { s.values[key] = value }

func (s *MemorySettings) ThawString(def string, key string) string {
	if v, ok := s.values[key].(string); ok {
		return v
	}
	return def
}

// FileSettings stores values in a YAML file, rewritten on every freeze.
// Values survive round-trips typed: ints stay ints, floats stay floats.
type FileSettings struct {
	path   string
	values map[string]any
}

// OpenFileSettings loads settings from path, creating parent directories as
// needed. A missing file yields an empty store.
func OpenFileSettings(path string) (*FileSettings, error) {
	s := &FileSettings{path: path, values: map[string]any{}}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("settings: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("settings: parse %s: %w", path, err)
	}
	if s.values == nil {
		s.values = map[string]any{}
	}
	return s, nil
}

func (s *FileSettings) FreezeInt(value int, key string) { s.freeze(key, value) }

func (s *FileSettings) ThawInt(def int, key string) int {
	switch v := s.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return def
}

func (s *FileSettings) FreezeFloat(value float64, key string) { s.freeze(key, value) }

func (s *FileSettings) ThawFloat(def float64, key string) float64 {
	switch v := s.values[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

func (s *FileSettings) FreezeString(value string, key string) { s.freeze(key, value) }

func (s *FileSettings) ThawString(def string, key string) string {
	if v, ok := s.values[key].(string); ok {
		return v
	}
	return def
}

func (s *FileSettings) freeze(key string, value any) {
	s.values[key] = value
	if err := s.save(); err != nil {
		// Persistence failure must not take down the app mid-session.
		fmt.Fprintf(os.Stderr, "glshell: %v\n", err)
	}
}

func (s *FileSettings) save() error {
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("settings: mkdir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("settings: write %s: %w", s.path, err)
	}
	return nil
}
