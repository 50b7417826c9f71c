package history_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vikdevelop/bintrans/history"
)

func TestFileStore_List_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", history.DefaultFile)
	store := history.NewFileStore(path, history.MatchExact)

	exists, err := store.Exists(context.Background())
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true, want false")
	}

	entries, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("List() returned %d entries, want 0", len(entries))
	}
}

func TestFileStore_List_FileOrder(t *testing.T) {
	path := writeHistoryFile(t, "hello\n0110100001101001\nabc_def\n")
	store := history.NewFileStore(path, history.MatchExact)

	entries, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []history.Entry{"hello", "0110100001101001", "abc_def"}
	assertEntries(t, entries, want)
}

func TestFileStore_List_SplitsOnAnyWhitespace(t *testing.T) {
	path := writeHistoryFile(t, "a b\n\n  c\td\n")
	store := history.NewFileStore(path, history.MatchExact)

	entries, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	assertEntries(t, entries, []history.Entry{"a", "b", "c", "d"})
}

func TestFileStore_Append_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", history.DefaultFile)
	store := history.NewFileStore(path, history.MatchExact)

	changed, err := store.Append(context.Background(), history.NewEntry("hello world"))
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if !changed {
		t.Error("Append() changed = false, want true")
	}

	got := readFile(t, path)
	if got != "hello_world\n" {
		t.Errorf("file content = %q, want %q", got, "hello_world\n")
	}
}

func TestFileStore_Append_Idempotent(t *testing.T) {
	for _, matching := range []history.Matching{history.MatchExact, history.MatchLegacy} {
		t.Run(matching.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), history.DefaultFile)
			store := history.NewFileStore(path, matching)
			ctx := context.Background()

			if _, err := store.Append(ctx, "hello"); err != nil {
				t.Fatalf("first Append() error = %v", err)
			}
			first, _ := store.List(ctx)

			changed, err := store.Append(ctx, "hello")
			if err != nil {
				t.Fatalf("second Append() error = %v", err)
			}
			if changed {
				t.Error("second Append() changed = true, want false")
			}

			second, _ := store.List(ctx)
			assertEntries(t, second, first)
		})
	}
}

func TestFileStore_Append_PreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), history.DefaultFile)
	store := history.NewFileStore(path, history.MatchExact)
	ctx := context.Background()

	for _, e := range []history.Entry{"c", "a", "b", "a"} {
		if _, err := store.Append(ctx, e); err != nil {
			t.Fatalf("Append(%q) error = %v", e, err)
		}
	}

	entries, _ := store.List(ctx)
	assertEntries(t, entries, []history.Entry{"c", "a", "b"})
}

func TestFileStore_Append_MissingTrailingNewline(t *testing.T) {
	path := writeHistoryFile(t, "first")
	store := history.NewFileStore(path, history.MatchExact)

	if _, err := store.Append(context.Background(), "second"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if got := readFile(t, path); got != "first\nsecond\n" {
		t.Errorf("file content = %q, want %q", got, "first\nsecond\n")
	}
}

func TestFileStore_Append_SubstringDedup(t *testing.T) {
	tests := []struct {
		matching    history.Matching
		wantChanged bool
	}{
		{matching: history.MatchExact, wantChanged: true},
		{matching: history.MatchLegacy, wantChanged: false},
	}

	for _, tt := range tests {
		t.Run(tt.matching.String(), func(t *testing.T) {
			path := writeHistoryFile(t, "hello_world\n")
			store := history.NewFileStore(path, tt.matching)

			changed, err := store.Append(context.Background(), "hello")
			if err != nil {
				t.Fatalf("Append() error = %v", err)
			}
			if changed != tt.wantChanged {
				t.Errorf("Append(hello) changed = %v, want %v", changed, tt.wantChanged)
			}
		})
	}
}

func TestFileStore_Append_InvalidEntry(t *testing.T) {
	store := history.NewFileStore(filepath.Join(t.TempDir(), history.DefaultFile), history.MatchExact)

	for _, e := range []history.Entry{"", "has space", "new\nline"} {
		_, err := store.Append(context.Background(), e)
		if !errors.Is(err, history.ErrInvalidEntry) {
			t.Errorf("Append(%q) error = %v, want ErrInvalidEntry", e, err)
		}
	}
}

func TestFileStore_Remove_LastEntry(t *testing.T) {
	for _, matching := range []history.Matching{history.MatchExact, history.MatchLegacy} {
		t.Run(matching.String(), func(t *testing.T) {
			path := writeHistoryFile(t, "101_abc\n")
			store := history.NewFileStore(path, matching)
			ctx := context.Background()

			changed, err := store.Remove(ctx, "101_abc")
			if err != nil {
				t.Fatalf("Remove() error = %v", err)
			}
			if !changed {
				t.Error("Remove() changed = false, want true")
			}

			exists, err := store.Exists(ctx)
			if err != nil {
				t.Fatalf("Exists() error = %v", err)
			}
			if exists {
				t.Error("Exists() = true after removing last entry, want false")
			}

			entries, err := store.List(ctx)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(entries) != 0 {
				t.Errorf("List() returned %d entries, want 0", len(entries))
			}
		})
	}
}

func TestFileStore_Remove_Exact(t *testing.T) {
	path := writeHistoryFile(t, "abc\nabcdef\nxyz\n")
	store := history.NewFileStore(path, history.MatchExact)
	ctx := context.Background()

	if _, err := store.Remove(ctx, "abc"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	entries, _ := store.List(ctx)
	assertEntries(t, entries, []history.Entry{"abcdef", "xyz"})
}

func TestFileStore_Remove_LegacyCorruptsSuperstrings(t *testing.T) {
	path := writeHistoryFile(t, "abc\nabcdef\nxyz\n")
	store := history.NewFileStore(path, history.MatchLegacy)
	ctx := context.Background()

	if _, err := store.Remove(ctx, "abc"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	entries, _ := store.List(ctx)
	assertEntries(t, entries, []history.Entry{"def", "xyz"})
}

func TestFileStore_Remove_Absent(t *testing.T) {
	path := writeHistoryFile(t, "abc\n")
	store := history.NewFileStore(path, history.MatchExact)

	changed, err := store.Remove(context.Background(), "zzz")
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if changed {
		t.Error("Remove() changed = true for absent entry, want false")
	}
	if got := readFile(t, path); got != "abc\n" {
		t.Errorf("file content = %q, want unchanged %q", got, "abc\n")
	}
}

func TestFileStore_Remove_MissingFile(t *testing.T) {
	store := history.NewFileStore(filepath.Join(t.TempDir(), history.DefaultFile), history.MatchExact)

	changed, err := store.Remove(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if changed {
		t.Error("Remove() changed = true on missing file, want false")
	}
}

func TestFileStore_Save_NoTempFilesLeft(t *testing.T) {
	root := t.TempDir()
	store := history.NewFileStore(filepath.Join(root, history.DefaultFile), history.MatchExact)

	if _, err := store.Append(context.Background(), "abc"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	dirEntries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(dirEntries) != 1 || dirEntries[0].Name() != history.DefaultFile {
		t.Errorf("directory has %d entries, want only %s", len(dirEntries), history.DefaultFile)
	}
}

// --- helpers ---

func writeHistoryFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), history.DefaultFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	return string(data)
}

func assertEntries(t *testing.T, got, want []history.Entry) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d entries %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("entries[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
