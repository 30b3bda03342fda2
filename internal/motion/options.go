package motion

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/dshills/stride/internal/engine/buffer"
	"github.com/dshills/stride/internal/engine/column"
	"github.com/dshills/stride/internal/engine/cursor"
	"github.com/dshills/stride/internal/engine/tracking"
)

// Direction is the direction of a motion.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Sign returns +1 for Forward and -1 for Backward.
func (d Direction) Sign() int {
	if d < 0 {
		return -1
	}
	return 1
}

// String returns the direction name.
func (d Direction) String() string {
	if d < 0 {
		return "backward"
	}
	return "forward"
}

// By scales the repetitions of a vertical motion by the visible line span.
type By uint8

const (
	ByNone By = iota
	ByPage
	ByHalfPage
)

// Options configures a single motion.
type Options struct {
	Direction   Direction
	Shift       cursor.ShiftPolicy
	Repetitions int
	AvoidEOL    bool
	By          By
	SkipBlank   bool
	Count       int
}

func (o Options) repetitions() int {
	if o.Repetitions < 1 {
		return 1
	}
	return o.Repetitions
}

// View supplies the visible line range of an editor. Both ends are
// inclusive line indices.
type View interface {
	VisibleLineRange() (start, end int)
}

// Menu opens interactive menus on behalf of a motion.
type Menu interface {
	OpenGoto()
}

// Env bundles the collaborators a motion reads from.
type Env struct {
	Doc      buffer.Document
	Behavior cursor.Behavior
	Columns  column.Model

	// Tracker keeps preferred columns across vertical motions.
	// A nil Tracker disables sticky columns.
	Tracker *tracking.Tracker

	View View
	Menu Menu

	// LastEdit reports the location of the most recent modification.
	LastEdit func() (buffer.Position, bool)

	Logger *log.Logger
}

func (e Env) behavior() cursor.Behavior {
	if e.Behavior == nil {
		return cursor.Caret
	}
	return e.Behavior
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// Func is the signature shared by every motion.
type Func func(env Env, selections []cursor.Selection, opts Options) []cursor.Selection
