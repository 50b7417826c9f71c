// Package locale loads the UI message catalogs and picks the best one for
// the user's environment. Catalogs are flat JSON objects mapping message
// keys to text, one file per language. English is bundled and always
// present; every other language falls back to it key by key.
package locale

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLanguage is the fallback catalog.
var DefaultLanguage = language.English

// ErrNoDefaultCatalog is returned when the English catalog cannot be loaded.
var ErrNoDefaultCatalog = errors.New("default catalog missing")

//go:embed catalogs/*.json
var embedded embed.FS

// Bundle holds the loaded catalogs.
type Bundle struct {
	messages map[string]map[string]string // keyed by tag string
	tags     []language.Tag
	matcher  language.Matcher
	builder  *catalog.Builder
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFS(embedded, "catalogs")
}

// LoadFS loads every <lang>.json file in dir.
func LoadFS(fsys fs.FS, dir string) (*Bundle, error) {
	b := &Bundle{messages: map[string]map[string]string{}}
	if err := b.load(fsys, dir); err != nil {
		return nil, err
	}
	if _, ok := b.messages[DefaultLanguage.String()]; !ok {
		return nil, ErrNoDefaultCatalog
	}
	if err := b.build(); err != nil {
		return nil, err
	}
	return b, nil
}

// Overlay layers the catalogs in dir over the loaded ones. Keys present in
// the overlay replace existing text; new languages are added.
func (b *Bundle) Overlay(fsys fs.FS, dir string) error {
	if err := b.load(fsys, dir); err != nil {
		return err
	}
	return b.build()
}

func (b *Bundle) load(fsys fs.FS, dir string) error {
	paths, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("glob catalogs: %w", err)
	}
	sort.Strings(paths)

	for _, p := range paths {
		name := strings.TrimSuffix(path.Base(p), ".json")
		tag, err := language.Parse(name)
		if err != nil {
			return fmt.Errorf("catalog %s: %w", p, err)
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read catalog %s: %w", p, err)
		}
		var parsed map[string]string
		if err := json.Unmarshal(data, &parsed); err != nil {
			return fmt.Errorf("parse catalog %s: %w", p, err)
		}

		msgs, ok := b.messages[tag.String()]
		if !ok {
			msgs = make(map[string]string, len(parsed))
			b.messages[tag.String()] = msgs
		}
		for key, value := range parsed {
			key = strings.TrimSpace(key)
			if key == "" {
				return fmt.Errorf("catalog %s: message key cannot be blank", p)
			}
			msgs[key] = value
		}
	}
	return nil
}

func (b *Bundle) build() error {
	names := make([]string, 0, len(b.messages))
	for name := range b.messages {
		if name != DefaultLanguage.String() {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	b.tags = []language.Tag{DefaultLanguage}
	for _, name := range names {
		b.tags = append(b.tags, language.Make(name))
	}
	b.matcher = language.NewMatcher(b.tags)

	b.builder = catalog.NewBuilder(catalog.Fallback(DefaultLanguage))
	defaults := b.messages[DefaultLanguage.String()]
	for _, tag := range b.tags {
		merged := maps.Clone(defaults)
		maps.Copy(merged, b.messages[tag.String()])
		for key, value := range merged {
			if err := b.builder.SetString(tag, key, value); err != nil {
				return fmt.Errorf("register %s %q: %w", tag, key, err)
			}
		}
	}
	return nil
}

// Languages returns the available catalogs, default first.
func (b *Bundle) Languages() []language.Tag {
	return append([]language.Tag(nil), b.tags...)
}

// Match returns the catalog language that best fits the preferences, or
// DefaultLanguage when none is close enough.
func (b *Bundle) Match(prefs ...language.Tag) language.Tag {
	if len(prefs) == 0 {
		return DefaultLanguage
	}
	_, idx, conf := b.matcher.Match(prefs...)
	if conf == language.No {
		return DefaultLanguage
	}
	return b.tags[idx]
}

// Message returns the text for key in the catalog matching tag, falling
// back to the default catalog.
func (b *Bundle) Message(tag language.Tag, key string) (string, bool) {
	if msgs, ok := b.messages[b.Match(tag).String()]; ok {
		if value, ok := msgs[key]; ok {
			return value, true
		}
	}
	value, ok := b.messages[DefaultLanguage.String()][key]
	return value, ok
}

// Printer returns a message printer that formats catalog keys for tag.
func (b *Bundle) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(b.Match(tag), message.Catalog(b.builder))
}
