// Package translator is the application runtime: it wires the codec, the
// history store, the message catalogs and an event observer together from
// one explicit Config.
//
// History changes are applied to the in-memory copy immediately and
// announced through the observer, so a presentation layer can refresh
// without restarting.
//
//	t, err := translator.New(&cfg)
//	err = t.Load(ctx)
//	res, err := t.Translate(ctx, "hello")
package translator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vikdevelop/bintrans/codec"
	"github.com/vikdevelop/bintrans/history"
	"github.com/vikdevelop/bintrans/locale"
	"github.com/vikdevelop/bintrans/observability"
)

// Result holds the outcome of a Translate call.
type Result struct {
	codec.Translation
	Entry          history.Entry // stored form of the input; empty when not recorded
	HistoryUpdated bool          // the entry was new and has been appended
	HistoryErr     error         // non-fatal failure while recording the entry
}

// Notification is produced by Remove for the presentation layer.
type Notification struct {
	Entry   history.Entry
	Removed bool
	Message string // localized text
}

// Option configures a Translator after config-driven initialization.
type Option func(*Translator)

// WithStore overrides the config-created history store. A nil store
// disables history.
func WithStore(s history.Store) Option {
	return func(t *Translator) { t.store = s }
}

// WithObserver overrides the default SlogObserver.
func WithObserver(o observability.Observer) Option {
	return func(t *Translator) { t.observer = o }
}

// WithPrinter overrides the printer used for notifications and error text.
func WithPrinter(p *message.Printer) Option {
	return func(t *Translator) { t.printer = p }
}

// Translator runs translations and keeps the history in memory. Operations
// are serialized; History and State may be called from any goroutine,
// including from an observer.
type Translator struct {
	mode      codec.Mode
	codecOpts []codec.Option
	store     history.Store
	observer  observability.Observer
	printer   *message.Printer
	language  language.Tag

	op      sync.Mutex
	state   atomic.Int32
	mu      sync.RWMutex
	entries []history.Entry
}

// New creates a Translator from configuration. Options are applied after
// initialization and can override any subsystem for testing.
func New(cfg *Config, opts ...Option) (*Translator, error) {
	mode, err := codec.ParseMode(cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mode: %w", err)
	}

	store, err := history.NewStore(&cfg.History)
	if err != nil {
		return nil, fmt.Errorf("failed to create history store: %w", err)
	}

	bundle, err := loadBundle(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load locale: %w", err)
	}
	tag := bundle.Match(preferredLanguages(cfg)...)

	t := &Translator{
		mode:     mode,
		store:    store,
		observer: observability.NewSlogObserver(slog.Default()),
		printer:  bundle.Printer(tag),
		language: tag,
	}
	if cfg.StrictLength() {
		t.codecOpts = append(t.codecOpts, codec.WithStrictLength())
	}

	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

func loadBundle(cfg *Config) (*locale.Bundle, error) {
	bundle, err := locale.LoadEmbedded()
	if err != nil {
		return nil, err
	}
	if cfg.LocaleDir != "" {
		if err := bundle.Overlay(os.DirFS(cfg.LocaleDir), "."); err != nil {
			return nil, err
		}
	}
	return bundle, nil
}

func preferredLanguages(cfg *Config) []language.Tag {
	if cfg.Locale != "" {
		if tag, ok := locale.ParsePOSIX(cfg.Locale); ok {
			return []language.Tag{tag}
		}
	}
	return locale.Detect(os.Getenv)
}

// Language returns the catalog language in use.
func (t *Translator) Language() language.Tag {
	return t.language
}

// Printer returns the localized message printer.
func (t *Translator) Printer() *message.Printer {
	return t.printer
}

// Mode returns the configured translation mode.
func (t *Translator) Mode() codec.Mode {
	return t.mode
}

// State reports what the translator is doing.
func (t *Translator) State() State {
	return State(t.state.Load())
}

// HistoryEnabled reports whether a history store is configured.
func (t *Translator) HistoryEnabled() bool {
	return t.store != nil
}

// History returns a copy of the in-memory history.
func (t *Translator) History() []history.Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.entries)
}

// Load reads the history store into memory.
func (t *Translator) Load(ctx context.Context) error {
	t.op.Lock()
	defer t.op.Unlock()

	if t.store == nil {
		return nil
	}

	entries, err := t.store.List(ctx)
	if err != nil {
		t.emitError(ctx, "translator.Load", err)
		return fmt.Errorf("load history: %w", err)
	}
	t.setEntries(entries)

	t.emit(ctx, EventHistoryLoaded, observability.LevelVerbose, "translator.Load", map[string]any{
		"entries": len(entries),
	})
	return nil
}

// Translate converts input according to the configured mode and records it
// in the history. The codec sees input unchanged; the history entry is the
// input with surrounding whitespace trimmed. Successful translations are
// recorded in both directions, while empty input and failed translations
// are not. A failure to record is reported in Result.HistoryErr and does
// not fail the translation.
func (t *Translator) Translate(ctx context.Context, input string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.op.Lock()
	defer t.op.Unlock()
	t.state.Store(int32(StateTranslating))
	defer t.state.Store(int32(StateIdle))

	t.emit(ctx, EventTranslateStart, observability.LevelVerbose, "translator.Translate", map[string]any{
		"input_length": len(input),
		"mode":         t.mode.String(),
	})

	tr, err := codec.Translate(input, t.mode, t.codecOpts...)
	if err != nil {
		t.emitError(ctx, "translator.Translate", err)
		return nil, fmt.Errorf("translate: %w", err)
	}
	result := &Result{Translation: tr}

	if strings.TrimSpace(input) != "" && t.store != nil {
		t.record(ctx, result)
	}

	t.emit(ctx, EventTranslateComplete, observability.LevelInfo, "translator.Translate", map[string]any{
		"direction":       tr.Direction.String(),
		"output_length":   len(tr.Output),
		"history_updated": result.HistoryUpdated,
	})
	return result, nil
}

func (t *Translator) record(ctx context.Context, result *Result) {
	entry := history.NewEntry(strings.TrimSpace(result.Input))

	changed, err := t.store.Append(ctx, entry)
	if err != nil {
		result.HistoryErr = err
		t.emit(ctx, EventHistoryError, observability.LevelWarning, "translator.Translate", map[string]any{
			"error": err.Error(),
		})
		return
	}

	result.Entry = entry
	if !changed {
		return
	}
	result.HistoryUpdated = true

	if err := t.refresh(ctx); err != nil {
		t.mu.Lock()
		t.entries = append(t.entries, entry)
		t.mu.Unlock()
	}

	t.emit(ctx, EventHistoryUpdated, observability.LevelInfo, "translator.Translate", map[string]any{
		"entry":   entry.String(),
		"entries": len(t.History()),
	})
}

// Remove deletes entry from the history, reloads the in-memory copy and
// announces the change with a localized notification.
func (t *Translator) Remove(ctx context.Context, entry history.Entry) (*Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if t.store == nil {
		return nil, ErrHistoryDisabled
	}

	t.op.Lock()
	defer t.op.Unlock()
	t.state.Store(int32(StateRemoving))
	defer t.state.Store(int32(StateIdle))

	removed, err := t.store.Remove(ctx, entry)
	if err != nil {
		t.emitError(ctx, "translator.Remove", err)
		return nil, fmt.Errorf("remove %q: %w", entry, err)
	}

	if err := t.refresh(ctx); err != nil {
		t.emitError(ctx, "translator.Remove", err)
		return nil, fmt.Errorf("reload history: %w", err)
	}

	key := locale.KeyHistoryRemoved
	if !removed {
		key = locale.KeyHistoryNotFound
	}
	n := &Notification{
		Entry:   entry,
		Removed: removed,
		Message: t.printer.Sprintf(key, entry.String()),
	}

	t.emit(ctx, EventHistoryRemoved, observability.LevelInfo, "translator.Remove", map[string]any{
		"entry":   entry.String(),
		"removed": removed,
		"entries": len(t.History()),
		"message": n.Message,
	})
	return n, nil
}

// Explain returns a localized description of an error from Translate.
func (t *Translator) Explain(err error) string {
	var cerr *codec.Error
	if errors.As(err, &cerr) {
		switch {
		case errors.Is(cerr.Kind, codec.ErrInvalidDigit):
			return t.printer.Sprintf(locale.KeyErrInvalidDigit, position(cerr))
		case errors.Is(cerr.Kind, codec.ErrInvalidGroupLength):
			return t.printer.Sprintf(locale.KeyErrInvalidGroupLength)
		case errors.Is(cerr.Kind, codec.ErrCodePointOutOfRange):
			return t.printer.Sprintf(locale.KeyErrCodePointOutOfRange, position(cerr))
		}
	}
	return t.printer.Sprintf(locale.KeyErrTranslate, err)
}

// position converts the byte offset of a codec error into a 1-based
// character position.
func position(err *codec.Error) int {
	if err.Offset > len(err.Input) {
		return err.Offset + 1
	}
	return utf8.RuneCountInString(err.Input[:err.Offset]) + 1
}

func (t *Translator) refresh(ctx context.Context) error {
	entries, err := t.store.List(ctx)
	if err != nil {
		return err
	}
	t.setEntries(entries)
	return nil
}

func (t *Translator) setEntries(entries []history.Entry) {
	t.mu.Lock()
	t.entries = entries
	t.mu.Unlock()
}

func (t *Translator) emit(ctx context.Context, typ observability.EventType, level observability.Level, source string, data map[string]any) {
	t.observer.OnEvent(ctx, observability.NewEvent(typ, level, source, data))
}

func (t *Translator) emitError(ctx context.Context, source string, err error) {
	t.emit(ctx, EventError, observability.LevelError, source, map[string]any{
		"error": err.Error(),
	})
}
