// Package motion computes new selection sets from directional intents.
//
// Every motion has the same shape:
//
//	func(env Env, selections []cursor.Selection, opts Options) []cursor.Selection
//
// It never mutates its input and never fails: line indices, character
// offsets and visual columns are clamped to the document.
//
// Vertically moves selections across lines while keeping each one's
// preferred visual column (see package tracking). Horizontally moves them
// by characters. The line-granularity motions (WholeBuffer, LineBelow,
// LineStart, LastLine, FirstVisibleLine and friends) target whole lines
// or line boundaries.
//
// The selection behavior in Env decides how a selection maps to a cursor
// and back; motions only compute target positions and hand them to the
// behavior, which applies the shift policy.
package motion
