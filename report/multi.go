// SPDX-License-Identifier: MIT
// Package: hillcolor/report
//
// multi.go - observer fan-out.

package report

import "github.com/katalvlaran/hillcolor/coloring"

type multiObserver []coloring.Observer

// Multi returns an Observer that forwards every callback to each non-nil
// observer in order. It returns nil when none remain.
func Multi(observers ...coloring.Observer) coloring.Observer {
	out := make(multiObserver, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	default:
		return out
	}
}

func (m multiObserver) OnStart(strategy string, initial coloring.Coloring, conflicts int) {
	for _, o := range m {
		o.OnStart(strategy, initial, conflicts)
	}
}

func (m multiObserver) OnIteration(strategy string, iter int, c coloring.Coloring, conflicts int) {
	for _, o := range m {
		o.OnIteration(strategy, iter, c, conflicts)
	}
}

// SkipsSnapshots holds only when every forwarded observer skips them.
func (m multiObserver) SkipsSnapshots() bool {
	for _, o := range m {
		if coloring.WantsSnapshots(o) {
			return false
		}
	}

	return true
}

func (m multiObserver) OnFinish(res coloring.Result) {
	for _, o := range m {
		o.OnFinish(res)
	}
}
