package history

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/vikdevelop/bintrans/internal/atomicfile"
)

type fileStore struct {
	path     string
	matching Matching
	mu       sync.Mutex
}

// NewFileStore creates a Store backed by the text file at path. The file and
// its directory are created on the first successful Append.
func NewFileStore(path string, matching Matching) Store {
	return &fileStore{path: path, matching: matching}
}

func (s *fileStore) Exists(_ context.Context) (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", ErrLoadFailed, err)
}

func (s *fileStore) List(_ context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := s.read()
	if err != nil {
		return nil, err
	}
	return tokenize(content), nil
}

func (s *fileStore) Append(_ context.Context, entry Entry) (bool, error) {
	if err := entry.Validate(); err != nil {
		return false, fmt.Errorf("%w: %q", err, entry)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := s.read()
	if err != nil {
		return false, err
	}

	switch s.matching {
	case MatchLegacy:
		if strings.Contains(content, string(entry)) {
			return false, nil
		}
	default:
		if slices.Contains(tokenize(content), entry) {
			return false, nil
		}
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += string(entry) + "\n"

	if err := s.write(content); err != nil {
		return false, err
	}
	return true, nil
}

func (s *fileStore) Remove(_ context.Context, entry Entry) (bool, error) {
	if entry == "" {
		return false, fmt.Errorf("%w: empty", ErrInvalidEntry)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := s.read()
	if err != nil {
		return false, err
	}

	var updated string
	switch s.matching {
	case MatchLegacy:
		updated = strings.ReplaceAll(content, string(entry), "")
	default:
		entries := tokenize(content)
		kept := slices.DeleteFunc(slices.Clone(entries), func(e Entry) bool {
			return e == entry
		})
		if len(kept) == len(entries) {
			return false, nil
		}
		updated = join(kept)
	}

	if updated == content {
		return false, nil
	}

	if strings.TrimSpace(updated) == "" {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return false, fmt.Errorf("%w: %s: %v", ErrSaveFailed, s.path, err)
		}
		return true, nil
	}

	if err := s.write(updated); err != nil {
		return false, err
	}
	return true, nil
}

func (s *fileStore) read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %s: %v", ErrLoadFailed, s.path, err)
	}
	return string(data), nil
}

func (s *fileStore) write(content string) error {
	if err := atomicfile.WriteFile(s.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, s.path, err)
	}
	return nil
}

func tokenize(content string) []Entry {
	fields := strings.Fields(content)
	entries := make([]Entry, len(fields))
	for i, f := range fields {
		entries[i] = Entry(f)
	}
	return entries
}

func join(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(string(e))
		b.WriteByte('\n')
	}
	return b.String()
}
