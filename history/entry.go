package history

import (
	"strings"
	"unicode"
)

// Separator replaces whitespace inside stored entries so that each entry
// stays a single whitespace-free token.
const Separator = "_"

// Entry is one line of the history file.
type Entry string

// NewEntry converts user input into its stored form.
func NewEntry(text string) Entry {
	return Entry(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, text))
}

// Text returns the entry with separators turned back into spaces.
func (e Entry) Text() string {
	return strings.ReplaceAll(string(e), Separator, " ")
}

func (e Entry) String() string {
	return string(e)
}

// Validate rejects entries that cannot be stored as a single token.
func (e Entry) Validate() error {
	if e == "" {
		return ErrInvalidEntry
	}
	if strings.IndexFunc(string(e), unicode.IsSpace) >= 0 {
		return ErrInvalidEntry
	}
	return nil
}
