package settings

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestLoadMissingFileLeavesStoreEmpty(t *testing.T) {
	s := New(quietLogger())
	s.Load(filepath.Join(t.TempDir(), "missing.yaml"))

	if !s.IsEmpty() {
		t.Error("store should be empty after failed load")
	}
	if got := s.Get(KeyFullscreen, "fallback"); got != "fallback" {
		t.Errorf("Get() = %v, expected fallback", got)
	}
}

func TestLoadMalformedFileLeavesStoreEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("resolution: [800, 600\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(quietLogger())
	s.Load(path)

	if !s.IsEmpty() {
		t.Error("store should be empty after parse failure")
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	s := New(quietLogger())
	s.Load(path)
	s.SetResolution(1024, 768)
	s.SetFullscreen(true)
	s.Save()

	loaded := New(quietLogger())
	loaded.Load(path)

	w, h, ok := loaded.Resolution()
	if !ok || w != 1024 || h != 768 {
		t.Errorf("Resolution() = (%d, %d, %v), expected (1024, 768, true)", w, h, ok)
	}
	if !loaded.Fullscreen() {
		t.Error("Fullscreen() = false, expected true")
	}
}

func TestLoadsJSONSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	data := []byte(`{"resolution": [1280, 720], "fullscreen": false}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(quietLogger())
	s.Load(path)

	w, h, ok := s.Resolution()
	if !ok || w != 1280 || h != 720 {
		t.Errorf("Resolution() = (%d, %d, %v), expected (1280, 720, true)", w, h, ok)
	}
}

func TestSaveWithoutLoadIsNoop(t *testing.T) {
	s := New(quietLogger())
	called := false
	s.SetErrorHandler(func(error) { called = true })
	s.Set(KeyFullscreen, true)
	s.Save()

	if called {
		t.Error("Save() without a path should not report errors")
	}
	if s.Path() != "" {
		t.Errorf("Path() = %q, expected empty", s.Path())
	}
}

func TestSaveFailureGoesToHandler(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(quietLogger())
	s.Load(filepath.Join(blocker, "settings.yaml"))

	var got error
	s.SetErrorHandler(func(err error) { got = err })
	s.SetFullscreen(true)
	s.Save()

	if got == nil {
		t.Fatal("expected save error to reach the handler")
	}
	var pathErr *os.PathError
	if !errors.As(got, &pathErr) {
		t.Errorf("error %v should wrap a *os.PathError", got)
	}
}

func TestResolutionRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"missing", nil},
		{"single value", []any{800}},
		{"negative", []int{-1, 600}},
		{"strings", []any{"800", "600"}},
		{"scalar", 800},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(quietLogger())
			if tc.value != nil {
				s.Set(KeyResolution, tc.value)
			}
			if _, _, ok := s.Resolution(); ok {
				t.Errorf("Resolution() ok for %v", tc.value)
			}
		})
	}
}
