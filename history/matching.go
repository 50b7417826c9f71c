package history

import (
	"fmt"
	"strings"
)

// Matching selects how Append detects duplicates and how Remove finds the
// text to delete.
type Matching int

const (
	// MatchExact treats the file as a set of whole lines.
	MatchExact Matching = iota
	// MatchLegacy keeps the 1.0 file semantics: an entry counts as
	// present when it occurs anywhere in the file, and removal deletes every
	// occurrence of its text, including inside longer entries.
	MatchLegacy
)

func (m Matching) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("Matching(%d)", int(m))
	}
}

// ParseMatching parses "exact" or "legacy". The empty string is exact.
func ParseMatching(s string) (Matching, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "exact":
		return MatchExact, nil
	case "legacy":
		return MatchLegacy, nil
	default:
		return MatchExact, fmt.Errorf("%w: %q", ErrUnknownMatching, s)
	}
}
