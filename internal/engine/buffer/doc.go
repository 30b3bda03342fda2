// Package buffer provides positions and line geometry for the motion engine,
// plus a small thread-safe in-memory line buffer implementing Document.
//
// The buffer package provides:
//
//   - Position: a (line, character) pair with a total order
//   - Document: the read-only line geometry motions consume
//   - Character arithmetic over a Document (Next, Prev, Offset, Clamp)
//   - Buffer: an in-memory Document with line ending normalization and
//     last-edit tracking
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("abcde\n\nxy")
//
//	// Walk characters; a line break counts as one character
//	p := buffer.Offset(buf, buffer.Position{Line: 0, Character: 4}, 2)
//	// p == (1:0)
//
// Coordinates:
//
// Lines and characters are 0-indexed. Characters count runes, not bytes.
// Every position helper clamps out of range input instead of failing.
//
// Thread Safety:
//
// Position is an immutable value type. All Buffer methods are thread-safe.
package buffer
