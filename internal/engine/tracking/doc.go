// Package tracking remembers the visual column each selection of an editor
// is trying to keep while it moves vertically.
//
// A Tracker belongs to one editor. The first vertical motion seeds a State
// with one desired column per selection; later vertical motions read those
// columns instead of the columns the selections currently sit on, so a
// cursor that passes through a short line returns to its original column.
//
// The cached columns are only meaningful while the selections are exactly
// the ones the last vertical motion produced. The tracker records those
// selections with RecordExpected and discards the cache as soon as the
// live selections diverge, either when a selection-change event reports a
// different set or when Ensure is called with a different set. Discarding
// releases the event subscription.
//
// # Usage
//
//	tracker := tracking.New(editorID, bus)
//	defer tracker.Close()
//
//	state := tracker.Ensure(selections, func(sel cursor.Selection) int {
//	    return behavior.DesiredColumn(doc, cols, sel)
//	})
//	col, ok := state.Column(i)
//	...
//	tracker.RecordExpected(result)
package tracking
