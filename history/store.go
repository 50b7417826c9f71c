// Package history persists previously translated inputs in a flat text file
// used as an ordered set: one entry per line, spaces stored as underscores.
package history

import "context"

// Store reads and mutates the history file. Implementations perform I/O on
// each call without caching; the translator keeps the in-memory copy.
type Store interface {
	// Exists reports whether the backing file is present.
	Exists(ctx context.Context) (bool, error)
	// List returns all entries in file order. A missing file yields none.
	List(ctx context.Context) ([]Entry, error)
	// Append writes entry unless it is already present and reports whether
	// the file changed.
	Append(ctx context.Context, entry Entry) (bool, error)
	// Remove deletes entry and reports whether the file changed.
	Remove(ctx context.Context, entry Entry) (bool, error)
}
