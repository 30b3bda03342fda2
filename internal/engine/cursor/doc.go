// Package cursor provides selections and the rules for moving them.
//
// The cursor package handles:
//
//   - Selections with an anchor/active model via Selection
//   - Multi-selection state with SelectionSet
//   - The shift protocol (Jump, Extend, Select) via Shift
//   - Selection behaviors (Caret, Character) via Behavior
//
// Selection Model:
//
// Selections use an anchor/active model where:
//   - Anchor: the fixed end that extending motions keep in place
//   - Active: the end where the cursor is
//
// Shift Protocol:
//
// Every motion computes a target position for each selection and applies
// Shift with one of three policies:
//
//	cursor.Shift(sel, target, cursor.Jump)   // anchor = active = target
//	cursor.Shift(sel, target, cursor.Extend) // anchor kept, active = target
//	cursor.Shift(sel, target, cursor.Select) // anchor = old active
//
// Behaviors:
//
// With Caret, an empty selection is a cursor between characters. With
// Character, a cursor covers one character, so Behavior.Place adjusts the
// fixed edge by one character before shifting when the cursor crosses it.
//
// Thread Safety:
//
// Selection is an immutable value type and safe for concurrent use.
// SelectionSet is not thread-safe and should be protected by external
// synchronization if accessed concurrently.
package cursor
