package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vikdevelop/bintrans/locale"
	"github.com/vikdevelop/bintrans/observability"
	"github.com/vikdevelop/bintrans/translator"
)

// newObserver logs every event and prints history write failures to w as
// a one-line warning. With quiet set only the log remains.
func (a *app) newObserver(logger *slog.Logger, w io.Writer, quiet bool) observability.Observer {
	var warn observability.Observer = observability.NoOpObserver{}
	if !quiet {
		warn = observability.NewFilterObserver(observability.ObserverFunc(
			func(_ context.Context, e observability.Event) {
				fmt.Fprintln(w, a.tr.Printer().Sprintf(locale.KeyHistorySaveFailed, e.Data["error"]))
			}), translator.EventHistoryError)
	}
	return observability.NewMultiObserver(observability.NewSlogObserver(logger), warn)
}
