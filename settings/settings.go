// Package settings persists small user preferences as a JSON object on
// disk. Values are typed on access; unknown keys are preserved so that a
// settings file written by another version round-trips unchanged.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/vikdevelop/bintrans/internal/atomicfile"
)

// DefaultFile is the settings file name inside the config directory.
const DefaultFile = "settings.json"

// Keys written by the application.
const (
	KeyWidth     = "width"
	KeyHeight    = "height"
	KeyMaximized = "is-maximized"
	KeyMode      = "mode"
	KeyLocale    = "locale"

	// Keys once used to carry state across a self-restart after history
	// removal. Kept readable for old files; nothing writes them anymore.
	KeyUseString       = "use-string"
	KeyRemovingStrings = "removing-strings"
	KeyString          = "string"
)

var (
	ErrLoadFailed = errors.New("settings load failed")
	ErrSaveFailed = errors.New("settings save failed")
)

// Store is a JSON-backed key-value store. All methods are safe for
// concurrent use.
type Store struct {
	path   string
	values map[string]json.RawMessage
	mu     sync.RWMutex
}

// Open reads the settings file at path. A missing file yields an empty
// store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: map[string]json.RawMessage{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, path, err)
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, path, err)
	}
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Bool(key string, def bool) bool {
	var v bool
	if !s.get(key, &v) {
		return def
	}
	return v
}

func (s *Store) SetBool(key string, v bool) {
	s.set(key, v)
}

func (s *Store) Int(key string, def int) int {
	var v int
	if !s.get(key, &v) {
		return def
	}
	return v
}

func (s *Store) SetInt(key string, v int) {
	s.set(key, v)
}

func (s *Store) String(key string, def string) string {
	var v string
	if !s.get(key, &v) {
		return def
	}
	return v
}

func (s *Store) SetString(key string, v string) {
	s.set(key, v)
}

// Has reports whether key is set.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[key]
	return ok
}

func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Keys returns the set keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save writes all values to disk.
func (s *Store) Save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.values, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	if err := atomicfile.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, s.path, err)
	}
	return nil
}

// get reports false when the key is missing or holds a value of another type.
func (s *Store) get(key string, dst any) bool {
	s.mu.RLock()
	raw, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (s *Store) set(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.values[key] = raw
	s.mu.Unlock()
}
