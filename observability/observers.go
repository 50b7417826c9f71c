package observability

import "context"

// NoOpObserver discards all events.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(context.Context, Event) {}

// MultiObserver fans events out to several observers in order.
type MultiObserver struct {
	observers []Observer
}

// NewMultiObserver skips nil observers.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

func (m *MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, obs := range m.observers {
		obs.OnEvent(ctx, event)
	}
}

// FilterObserver forwards only the listed event types.
type FilterObserver struct {
	next  Observer
	types map[EventType]bool
}

// NewFilterObserver returns an observer that passes events of the given
// types to next and drops the rest.
func NewFilterObserver(next Observer, types ...EventType) *FilterObserver {
	set := make(map[EventType]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return &FilterObserver{next: next, types: set}
}

func (f *FilterObserver) OnEvent(ctx context.Context, event Event) {
	if f.types[event.Type] {
		f.next.OnEvent(ctx, event)
	}
}
