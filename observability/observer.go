// Package observability carries runtime events from the translator to
// whatever presents them: a slog logger, a CLI notifier, or a test recorder.
// Level values follow the OpenTelemetry severity ranges.
package observability

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Level is an event severity.
type Level int

const (
	LevelVerbose Level = 5  // debug
	LevelInfo    Level = 9  // info
	LevelWarning Level = 13 // warn
	LevelError   Level = 17 // error
)

func (l Level) String() string {
	switch {
	case l <= 4:
		return "TRACE"
	case l <= 8:
		return "DEBUG"
	case l <= 12:
		return "INFO"
	case l <= 16:
		return "WARN"
	case l <= 20:
		return "ERROR"
	default:
		return "FATAL"
	}
}

// SlogLevel maps l onto slog's levels.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= 8:
		return slog.LevelDebug
	case l <= 12:
		return slog.LevelInfo
	case l <= 16:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType names an event, e.g. "translator.history.removed".
type EventType string

// Event is a single observation emitted by the runtime.
type Event struct {
	ID        string
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// NewEvent stamps a new event with a UUIDv7 identifier and the current time.
func NewEvent(typ EventType, level Level, source string, data map[string]any) Event {
	return Event{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Type:      typ,
		Level:     level,
		Timestamp: time.Now(),
		Source:    source,
		Data:      data,
	}
}

// Observer receives events.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, event Event)

func (f ObserverFunc) OnEvent(ctx context.Context, event Event) {
	f(ctx, event)
}
