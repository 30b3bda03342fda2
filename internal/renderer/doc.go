// Package renderer draws an editor session on a terminal and turns key
// presses into select actions.
//
// The Viewer owns a tcell screen. Each line is drawn behind a line-number
// gutter with tabs expanded by the session's column model; selected
// characters and cursors are highlighted. The last screen row is a status
// line showing the selection behavior, the primary selection and the last
// message.
//
// Keys are resolved through an input.Keymap. Digits form a count prefix,
// ':' opens a goto prompt, a left click places a selection, and q or
// Ctrl-C quits.
package renderer
