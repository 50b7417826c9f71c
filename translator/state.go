package translator

// State is the translator's current activity.
type State int32

const (
	StateIdle State = iota
	StateTranslating
	StateRemoving
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTranslating:
		return "translating"
	case StateRemoving:
		return "removing"
	default:
		return "unknown"
	}
}
