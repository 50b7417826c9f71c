package main

import (
	"context"
	"fmt"

	"github.com/vikdevelop/bintrans/history"
	"github.com/vikdevelop/bintrans/locale"
)

func (a *app) runHistory(ctx context.Context, args []string) int {
	p := a.tr.Printer()
	if len(args) == 0 {
		fmt.Fprint(a.stderr, usage)
		return 2
	}

	switch args[0] {
	case "path":
		fmt.Fprintln(a.stdout, a.cfg.History.Path())
		return 0
	case "list":
		if !a.tr.HistoryEnabled() {
			fmt.Fprintln(a.stderr, p.Sprintf(locale.KeyHistoryDisabled))
			return 1
		}
		entries := a.tr.History()
		if len(entries) == 0 {
			fmt.Fprintln(a.stderr, p.Sprintf(locale.KeyHistoryEmpty))
			return 0
		}
		for _, e := range entries {
			fmt.Fprintln(a.stdout, e)
		}
		return 0
	case "remove":
		if !a.tr.HistoryEnabled() {
			fmt.Fprintln(a.stderr, p.Sprintf(locale.KeyHistoryDisabled))
			return 1
		}
		if len(args) < 2 {
			fmt.Fprint(a.stderr, usage)
			return 2
		}
		code := 0
		for _, arg := range args[1:] {
			n, err := a.tr.Remove(ctx, history.NewEntry(arg))
			if err != nil {
				fmt.Fprintln(a.stderr, p.Sprintf(locale.KeyHistorySaveFailed, err))
				return 1
			}
			if !n.Removed {
				fmt.Fprintln(a.stderr, n.Message)
				code = 1
				continue
			}
			fmt.Fprintln(a.stdout, n.Message)
		}
		return code
	default:
		fmt.Fprint(a.stderr, usage)
		return 2
	}
}
