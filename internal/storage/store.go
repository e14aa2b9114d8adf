package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is the default location for saved reports.
var DefaultDir = "kdd-reports"

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key identifies a saved report.
type Key struct {
	Run  string `json:"run"`
	Kind string `json:"kind"`
}

// Path is the file name the key maps to.
func (k Key) Path() string {
	return fmt.Sprintf("%s_%s.json", sanitize(k.Kind), k.Run)
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ':
			return '-'
		}
		return r
	}, s)
}

// Registry stores analysis outcomes one by one.
type Registry interface {
	Put(key Key, value interface{}) error
	Get(key Key, value interface{}) error
}

// JsonRegistry is a file-backed registry keeping one JSON file per key.
type JsonRegistry struct {
	dir string
}

// NewJsonRegistry creates a registry rooted at the given directory.
func NewJsonRegistry(dir string) *JsonRegistry {
	if dir == "" {
		dir = DefaultDir
	}
	return &JsonRegistry{dir: dir}
}

// Put saves the value under the given key.
func (r *JsonRegistry) Put(key Key, value interface{}) error {
	info, err := os.Stat(r.dir)
	if err != nil {
		err := os.MkdirAll(r.dir, os.ModePerm)
		if err != nil {
			return fmt.Errorf("could not make dir: %s: %w", r.dir, err)
		}
	} else if !info.IsDir() {
		return fmt.Errorf("path given is not a dir: %s", r.dir)
	}

	p := filepath.Join(r.dir, key.Path())
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not marshal key '%+v': %w", key, err)
	}

	err = os.WriteFile(p, b, 0644)
	if err != nil {
		return fmt.Errorf("could not write file '%s': %w", p, err)
	}

	return nil
}

// Get loads the value stored under the given key.
func (r *JsonRegistry) Get(key Key, value interface{}) error {
	p := filepath.Join(r.dir, key.Path())

	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("could not read file '%s': %w", p, NotFoundErr)
	}

	err = json.Unmarshal(data, value)
	if err != nil {
		return fmt.Errorf("could not unmarshal key '%+v' (%s): %w", key, err.Error(), CouldNotLoadErr)
	}

	return nil
}

// VoidRegistry ignores writes and never finds anything.
type VoidRegistry struct {
}

func (v VoidRegistry) Put(key Key, value interface{}) error {
	return nil
}

func (v VoidRegistry) Get(key Key, value interface{}) error {
	return NotFoundErr
}
