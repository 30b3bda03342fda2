package motion

import (
	"github.com/dshills/stride/internal/engine/buffer"
	"github.com/dshills/stride/internal/engine/cursor"
	"github.com/dshills/stride/internal/engine/tracking"
)

// Vertically moves every selection opts.Repetitions lines up or down.
//
// Each selection aims for its preferred visual column: the column cached
// by the tracker from the first of a run of vertical motions, or its own
// current column when nothing is cached for it. The resulting selections
// are recorded in the tracker so the cache survives until something else
// changes the selections.
func Vertically(env Env, selections []cursor.Selection, opts Options) []cursor.Selection {
	b := env.behavior()
	doc := env.Doc
	delta := scaledRepetitions(env, opts) * opts.Direction.Sign()

	desired := func(sel cursor.Selection) int {
		return b.DesiredColumn(doc, env.Columns, sel)
	}

	var state *tracking.State
	if env.Tracker != nil {
		state = env.Tracker.Ensure(selections, desired)
	}

	out := make([]cursor.Selection, len(selections))
	for i, sel := range selections {
		line := buffer.ClampLine(doc, b.Cursor(doc, sel).Line+delta)

		col, ok := state.Column(i)
		if !ok {
			col = desired(sel)
		}

		target := b.Locate(doc, env.Columns, line, col, opts.AvoidEOL)
		out[i] = b.Place(doc, sel, target, opts.Shift)
	}

	if env.Tracker != nil {
		env.Tracker.RecordExpected(out)
	}
	return out
}

// scaledRepetitions applies opts.By to the repetition count. A page is the
// number of visible lines, a half page that number halved and floored, and
// both are at least 1. Without a view the scale is ignored.
func scaledRepetitions(env Env, opts Options) int {
	reps := opts.repetitions()
	if opts.By == ByNone || env.View == nil {
		return reps
	}

	start, end := env.View.VisibleLineRange()
	span := end - start + 1
	if opts.By == ByHalfPage {
		span /= 2
	}
	if span < 1 {
		span = 1
	}
	return reps * span
}
