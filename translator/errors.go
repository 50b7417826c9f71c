package translator

import "errors"

// ErrHistoryDisabled is returned by history operations when no data
// directory is configured.
var ErrHistoryDisabled = errors.New("history disabled")
