// Package execctx provides the execution context for action handlers.
package execctx

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/dshills/stride/internal/engine/cursor"
	"github.com/dshills/stride/internal/motion"
)

// EditorInterface is the editor surface handlers act on.
type EditorInterface interface {
	// Selections returns a copy of the current selections, primary first.
	Selections() []cursor.Selection

	// Move runs fn over the current selections and installs the result.
	Move(fn motion.Func, opts motion.Options) []cursor.Selection
}

// ExecutionContext carries what a handler needs to execute one action.
type ExecutionContext struct {
	Editor EditorInterface

	// Count is the count from the action, uncapped. Zero means none was
	// given. Line motions read it as a 1-based line number.
	Count int

	// MaxRepeat caps GetCount. Zero means no cap.
	MaxRepeat int

	// AvoidEOL is the default for actions that do not set the argument.
	AvoidEOL bool

	Logger *log.Logger
}

// New creates an empty execution context.
func New() *ExecutionContext {
	return &ExecutionContext{Logger: log.New(io.Discard)}
}

// GetCount returns the repeat count, at least 1 and at most MaxRepeat.
func (c *ExecutionContext) GetCount() int {
	if c.Count < 1 {
		return 1
	}
	if c.MaxRepeat > 0 && c.Count > c.MaxRepeat {
		return c.MaxRepeat
	}
	return c.Count
}

// HasCount reports whether an explicit count was given.
func (c *ExecutionContext) HasCount() bool {
	return c.Count > 0
}

// ValidateEditor returns ErrMissingEditor when no editor is attached.
func (c *ExecutionContext) ValidateEditor() error {
	if c.Editor == nil {
		return ErrMissingEditor
	}
	return nil
}
