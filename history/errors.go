package history

import "errors"

// Sentinel errors for store operations.
var (
	ErrLoadFailed      = errors.New("load failed")
	ErrSaveFailed      = errors.New("save failed")
	ErrInvalidEntry    = errors.New("invalid entry")
	ErrUnknownMatching = errors.New("unknown matching")
)
