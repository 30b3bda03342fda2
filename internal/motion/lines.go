package motion

import (
	"github.com/dshills/stride/internal/engine/buffer"
	"github.com/dshills/stride/internal/engine/cursor"
)

// WholeBuffer replaces all selections with one selection spanning the
// entire document.
func WholeBuffer(env Env, _ []cursor.Selection, _ Options) []cursor.Selection {
	return []cursor.Selection{cursor.NewSelection(buffer.Start(), buffer.End(env.Doc))}
}

// lineBlock returns the selection covering the lines between fixed and
// moving inclusive, line breaks included, with its active edge on the
// moving side. When both are the same line, upward picks the reversed form.
func lineBlock(doc buffer.Document, sel cursor.Selection, fixed, moving int, upward bool) cursor.Selection {
	anchor := buffer.Position{Line: fixed}
	active := buffer.LineEndIncludingBreak(doc, moving)
	if moving < fixed || (moving == fixed && upward) {
		anchor = buffer.LineEndIncludingBreak(doc, fixed)
		active = buffer.Position{Line: moving}
	}
	return cursor.Shift(cursor.Shift(sel, anchor, cursor.Jump), active, cursor.Extend)
}

// lineSpan returns the first and last line a whole-line selection covers.
func lineSpan(doc buffer.Document, sel cursor.Selection) (int, int) {
	start, end := sel.Start(), sel.End()
	last := end.Line
	if end.Character == 0 && end.Line > start.Line {
		last--
	}
	return start.Line, last
}

func count(opts Options) int {
	if opts.Count < 1 {
		return 1
	}
	return opts.Count
}

// LineBelow selects the line under the cursor, or the line after the
// selected block when the selection already covers whole lines. A count
// above one adds count-1 further lines below.
func LineBelow(env Env, selections []cursor.Selection, opts Options) []cursor.Selection {
	b, doc, n := env.behavior(), env.Doc, count(opts)
	last := buffer.LastLine(doc)

	out := make([]cursor.Selection, len(selections))
	for i, sel := range selections {
		first := b.Cursor(doc, sel).Line
		if sel.IsEntireLines(doc) && !sel.IsReversed() {
			_, end := lineSpan(doc, sel)
			first = min(end+1, last)
		}
		out[i] = lineBlock(doc, sel, first, min(first+n-1, last), false)
	}
	return out
}

// LineAbove selects the line under the cursor, or the line before the
// selected block when the selection already covers whole lines. The
// result is reversed so that repeating it keeps walking upward.
func LineAbove(env Env, selections []cursor.Selection, opts Options) []cursor.Selection {
	b, doc, n := env.behavior(), env.Doc, count(opts)

	out := make([]cursor.Selection, len(selections))
	for i, sel := range selections {
		line := b.Cursor(doc, sel).Line
		if sel.IsEntireLines(doc) {
			start, _ := lineSpan(doc, sel)
			line = max(start-1, 0)
		}
		out[i] = lineBlock(doc, sel, line, max(line-(n-1), 0), true)
	}
	return out
}

// LineBelowExtend grows the line block of every selection count lines
// downward, keeping the block's fixed end in place.
func LineBelowExtend(env Env, selections []cursor.Selection, opts Options) []cursor.Selection {
	return extendLines(env, selections, count(opts))
}

// LineAboveExtend grows the line block of every selection count lines
// upward, keeping the block's fixed end in place.
func LineAboveExtend(env Env, selections []cursor.Selection, opts Options) []cursor.Selection {
	return extendLines(env, selections, -count(opts))
}

// extendLines moves the moving end of each selection's line block by
// delta lines. A selection that does not cover whole lines first becomes
// the block from its anchor line to its cursor line, which already counts
// as one step.
func extendLines(env Env, selections []cursor.Selection, delta int) []cursor.Selection {
	b, doc := env.behavior(), env.Doc

	out := make([]cursor.Selection, len(selections))
	for i, sel := range selections {
		var fixed, moving int
		if sel.IsEntireLines(doc) {
			start, end := lineSpan(doc, sel)
			fixed, moving = start, end+delta
			if sel.IsReversed() {
				fixed, moving = end, start+delta
			}
		} else {
			fixed = anchorLine(sel)
			step := delta - 1
			if delta < 0 {
				step = delta + 1
			}
			moving = b.Cursor(doc, sel).Line + step
		}
		out[i] = lineBlock(doc, sel, fixed, buffer.ClampLine(doc, moving), delta < 0)
	}
	return out
}

// anchorLine returns the line holding the anchor end of sel. A reversed
// selection anchored at the start of a line ends on the line above.
func anchorLine(sel cursor.Selection) int {
	if sel.IsReversed() && sel.Anchor.Character == 0 && sel.Anchor.Line > sel.Active.Line {
		return sel.Anchor.Line - 1
	}
	return sel.Anchor.Line
}

// replacePrimary returns a copy of selections whose first element is
// replaced by fn(first).
func replacePrimary(selections []cursor.Selection, fn func(cursor.Selection) cursor.Selection) []cursor.Selection {
	out := append([]cursor.Selection(nil), selections...)
	if len(out) == 0 {
		return out
	}
	out[0] = fn(out[0])
	return out
}

// placeAt moves sel onto p with the caller's shift policy.
func placeAt(env Env, sel cursor.Selection, p buffer.Position, opts Options) cursor.Selection {
	return env.behavior().Place(env.Doc, sel, buffer.Clamp(env.Doc, p), opts.Shift)
}

func lineStartPosition(env Env, line int, skipBlank bool) buffer.Position {
	p := buffer.Position{Line: line}
	if skipBlank {
		p.Character = buffer.FirstNonBlank(env.Doc, line)
	}
	return p
}

// LineStart moves to the start of a line. A positive count moves only the
// primary selection to line count (1-based, clamped). A zero count moves
// every selection to the start of its own line. SkipBlank stops at the
// first non-blank character instead.
func LineStart(env Env, selections []cursor.Selection, opts Options) []cursor.Selection {
	return toLineBoundary(env, selections, opts, func(line int) buffer.Position {
		return lineStartPosition(env, line, opts.SkipBlank)
	})
}

// LineEnd moves to the end of a line, with the same count rules as
// LineStart.
func LineEnd(env Env, selections []cursor.Selection, opts Options) []cursor.Selection {
	b := env.behavior()
	return toLineBoundary(env, selections, opts, func(line int) buffer.Position {
		return b.LineEndCursor(env.Doc, line)
	})
}

func toLineBoundary(env Env, selections []cursor.Selection, opts Options, target func(line int) buffer.Position) []cursor.Selection {
	doc := env.Doc

	if opts.Count > 0 {
		line := min(doc.LineCount(), opts.Count) - 1
		return replacePrimary(selections, func(sel cursor.Selection) cursor.Selection {
			return placeAt(env, sel, target(line), opts)
		})
	}

	b := env.behavior()
	out := make([]cursor.Selection, len(selections))
	for i, sel := range selections {
		out[i] = placeAt(env, sel, target(b.Cursor(doc, sel).Line), opts)
	}
	return out
}

// To goes to line opts.Count. A zero count opens the goto menu instead
// and leaves the selections unchanged.
func To(env Env, selections []cursor.Selection, opts Options) []cursor.Selection {
	if opts.Count == 0 {
		if env.Menu != nil {
			env.Menu.OpenGoto()
		} else {
			env.logger().Debug("goto menu unavailable")
		}
		return append([]cursor.Selection(nil), selections...)
	}
	return LineStart(env, selections, opts)
}

// FirstLine moves the primary selection to the start of the document.
func FirstLine(env Env, selections []cursor.Selection, opts Options) []cursor.Selection {
	return toLine(env, selections, opts, 0)
}

// LastLine moves the primary selection to the start of the last line.
// An empty line left by a final line break is not counted.
func LastLine(env Env, selections []cursor.Selection, opts Options) []cursor.Selection {
	line := buffer.LastLine(env.Doc)
	if line > 0 && buffer.IsEmptyLine(env.Doc, line) {
		line--
	}
	return toLine(env, selections, opts, line)
}

func toLine(env Env, selections []cursor.Selection, opts Options, line int) []cursor.Selection {
	return replacePrimary(selections, func(sel cursor.Selection) cursor.Selection {
		return placeAt(env, sel, lineStartPosition(env, line, opts.SkipBlank), opts)
	})
}

// FirstVisibleLine moves the primary selection to the start of the first
// visible line.
func FirstVisibleLine(env Env, selections []cursor.Selection, opts Options) []cursor.Selection {
	return toVisibleLine(env, selections, opts, func(start, _ int) int { return start })
}

// MiddleVisibleLine moves the primary selection to the start of the
// middle visible line.
func MiddleVisibleLine(env Env, selections []cursor.Selection, opts Options) []cursor.Selection {
	return toVisibleLine(env, selections, opts, func(start, end int) int { return start + (end-start)/2 })
}

// LastVisibleLine moves the primary selection to the start of the last
// visible line.
func LastVisibleLine(env Env, selections []cursor.Selection, opts Options) []cursor.Selection {
	return toVisibleLine(env, selections, opts, func(_, end int) int { return end })
}

func toVisibleLine(env Env, selections []cursor.Selection, opts Options, pick func(start, end int) int) []cursor.Selection {
	if env.View == nil {
		return append([]cursor.Selection(nil), selections...)
	}
	start, end := env.View.VisibleLineRange()
	return toLine(env, selections, opts, buffer.ClampLine(env.Doc, pick(start, end)))
}

// LastModification moves the primary selection to the location of the
// most recent edit. Without a known edit the selections are unchanged.
func LastModification(env Env, selections []cursor.Selection, opts Options) []cursor.Selection {
	if env.LastEdit == nil {
		return append([]cursor.Selection(nil), selections...)
	}
	p, ok := env.LastEdit()
	if !ok {
		return append([]cursor.Selection(nil), selections...)
	}
	return replacePrimary(selections, func(sel cursor.Selection) cursor.Selection {
		return placeAt(env, sel, p, opts)
	})
}
