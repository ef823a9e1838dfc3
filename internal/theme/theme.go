// Package theme stores the light/dark preference.
package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Theme is a colour scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Parse accepts "light" or "dark".
func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Other returns the opposite theme.
func (t Theme) Other() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Store exposes the current theme and flips it.
type Store interface {
	Current() Theme
	Toggle() Theme
}

// Memory is a Store that forgets on exit.
type Memory struct {
	mu sync.Mutex
	t  Theme
}

// NewMemory starts at initial; anything but Dark means Light.
func NewMemory(initial Theme) *Memory {
	if initial != Dark {
		initial = Light
	}
	return &Memory{t: initial}
}

func (m *Memory) Current() Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.t
}

func (m *Memory) Toggle() Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.t = m.t.Other()
	return m.t
}

type prefsFile struct {
	Theme Theme `json:"theme"`
}

// File is a Store that remembers the preference in a small JSON file.
// Write failures are logged; the in-memory value still flips.
type File struct {
	mem  *Memory
	path string
	log  zerolog.Logger
}

// NewFile loads the preference at path, falling back to fallback when the
// file is missing or unreadable.
func NewFile(path string, fallback Theme, log zerolog.Logger) *File {
	initial := fallback
	if t, err := load(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("theme preference unreadable")
	} else if t != "" {
		initial = t
	}
	return &File{mem: NewMemory(initial), path: path, log: log}
}

func (f *File) Current() Theme { return f.mem.Current() }

func (f *File) Toggle() Theme {
	t := f.mem.Toggle()
	if err := save(f.path, t); err != nil {
		f.log.Warn().Err(err).Str("path", f.path).Msg("save theme preference")
	}
	return t
}

func load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	var p prefsFile
	if err := json.Unmarshal(data, &p); err != nil {
		return "", err
	}
	if p.Theme == "" {
		return "", nil
	}
	return Parse(string(p.Theme))
}

func save(path string, t Theme) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(prefsFile{Theme: t}, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
