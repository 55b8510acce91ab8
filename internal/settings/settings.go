// Package settings provides the flat key-value settings file the shooter
// reads once at startup and writes back on quit.
//
// The file is YAML; since YAML is a superset of JSON an older settings.json
// loads just as well.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Keys understood by the shooter.
const (
	KeyResolution = "resolution"
	KeyFullscreen = "fullscreen"
)

// Store is an in-memory key-value map bound to a file path.
// It is not safe for concurrent use.
type Store struct {
	path    string
	values  map[string]any
	logger  *log.Logger
	onError func(error)
}

// New creates an empty store that is not bound to any file.
func New(logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{
		values: make(map[string]any),
		logger: logger,
	}
}

// SetErrorHandler routes save failures to fn instead of the logger.
func (s *Store) SetErrorHandler(fn func(error)) {
	s.onError = fn
}

// Path returns the bound file path, or "" if Load was never called.
func (s *Store) Path() string {
	return s.path
}

// Load binds the store to path and reads it. Any failure leaves the store
// empty and is logged; Load never fails the caller.
func (s *Store) Load(path string) {
	s.path = path
	s.values = make(map[string]any)

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("settings load failed", "path", path, "error", err)
		return
	}

	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		s.logger.Warn("settings parse failed", "path", path, "error", err)
		return
	}
	if values != nil {
		s.values = values
	}
	s.logger.Debug("settings loaded", "path", path, "keys", len(s.values))
}

// Save writes the store back to its path. It is a no-op if Load was never
// called. Failures are reported to the error handler, or logged.
func (s *Store) Save() {
	if s.path == "" {
		return
	}
	if err := s.write(); err != nil {
		if s.onError != nil {
			s.onError(err)
			return
		}
		s.logger.Error("settings save failed", "path", s.path, "error", err)
	}
}

func (s *Store) write() error {
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("settings: cannot encode: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("settings: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("settings: cannot write %s: %w", s.path, err)
	}
	return nil
}

// Get returns the value for key, or def if it is missing.
func (s *Store) Get(key string, def any) any {
	if v, ok := s.values[key]; ok {
		return v
	}
	return def
}

// Set stores a value.
func (s *Store) Set(key string, value any) {
	s.values[key] = value
}

// IsEmpty reports whether the store holds no keys.
func (s *Store) IsEmpty() bool {
	return len(s.values) == 0
}

// Resolution returns the stored window size. ok is false when the key is
// missing or malformed.
func (s *Store) Resolution() (w, h int, ok bool) {
	switch v := s.Get(KeyResolution, nil).(type) {
	case []int:
		if len(v) == 2 {
			w, h = v[0], v[1]
		}
	case []any:
		if len(v) == 2 {
			w, _ = toInt(v[0])
			h, _ = toInt(v[1])
		}
	}
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// SetResolution stores the window size as a pair.
func (s *Store) SetResolution(w, h int) {
	s.Set(KeyResolution, []int{w, h})
}

// Fullscreen returns the stored fullscreen flag, false if missing.
func (s *Store) Fullscreen() bool {
	on, _ := s.Get(KeyFullscreen, false).(bool)
	return on
}

// SetFullscreen stores the fullscreen flag.
func (s *Store) SetFullscreen(on bool) {
	s.Set(KeyFullscreen, on)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
