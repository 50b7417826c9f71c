package translator

import "github.com/vikdevelop/bintrans/observability"

// Translator event types.
const (
	EventTranslateStart    observability.EventType = "translator.translate.start"
	EventTranslateComplete observability.EventType = "translator.translate.complete"
	EventHistoryLoaded     observability.EventType = "translator.history.loaded"
	EventHistoryUpdated    observability.EventType = "translator.history.updated"
	EventHistoryRemoved    observability.EventType = "translator.history.removed"
	EventHistoryError      observability.EventType = "translator.history.error"
	EventError             observability.EventType = "translator.error"
)
