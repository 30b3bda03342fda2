package selection

import (
	"fmt"

	"github.com/dshills/stride/internal/dispatcher/execctx"
	"github.com/dshills/stride/internal/dispatcher/handler"
	"github.com/dshills/stride/internal/engine/cursor"
	"github.com/dshills/stride/internal/input"
	"github.com/dshills/stride/internal/motion"
)

// Namespace is the action namespace served by Handler.
const Namespace = "select"

// Action names.
const (
	ActionLeft              = "select.left"
	ActionRight             = "select.right"
	ActionUp                = "select.up"
	ActionDown              = "select.down"
	ActionPageUp            = "select.pageUp"
	ActionPageDown          = "select.pageDown"
	ActionHalfPageUp        = "select.halfPageUp"
	ActionHalfPageDown      = "select.halfPageDown"
	ActionLineBelow         = "select.lineBelow"
	ActionLineAbove         = "select.lineAbove"
	ActionLineBelowExtend   = "select.lineBelowExtend"
	ActionLineAboveExtend   = "select.lineAboveExtend"
	ActionBuffer            = "select.buffer"
	ActionTo                = "select.to"
	ActionLineStart         = "select.lineStart"
	ActionLineEnd           = "select.lineEnd"
	ActionFirstLine         = "select.firstLine"
	ActionLastLine          = "select.lastLine"
	ActionFirstVisibleLine  = "select.firstVisibleLine"
	ActionMiddleVisibleLine = "select.middleVisibleLine"
	ActionLastVisibleLine   = "select.lastVisibleLine"
	ActionLastModification  = "select.lastModification"
)

// DataSelections is the result data key holding the new selections.
const DataSelections = "selections"

// binding fixes the motion and the options an action does not control.
type binding struct {
	fn  motion.Func
	dir motion.Direction
	by  motion.By
}

var actions = map[string]binding{
	ActionLeft:              {fn: motion.Horizontally, dir: motion.Backward},
	ActionRight:             {fn: motion.Horizontally, dir: motion.Forward},
	ActionUp:                {fn: motion.Vertically, dir: motion.Backward},
	ActionDown:              {fn: motion.Vertically, dir: motion.Forward},
	ActionPageUp:            {fn: motion.Vertically, dir: motion.Backward, by: motion.ByPage},
	ActionPageDown:          {fn: motion.Vertically, dir: motion.Forward, by: motion.ByPage},
	ActionHalfPageUp:        {fn: motion.Vertically, dir: motion.Backward, by: motion.ByHalfPage},
	ActionHalfPageDown:      {fn: motion.Vertically, dir: motion.Forward, by: motion.ByHalfPage},
	ActionLineBelow:         {fn: motion.LineBelow, dir: motion.Forward},
	ActionLineAbove:         {fn: motion.LineAbove, dir: motion.Backward},
	ActionLineBelowExtend:   {fn: motion.LineBelowExtend, dir: motion.Forward},
	ActionLineAboveExtend:   {fn: motion.LineAboveExtend, dir: motion.Backward},
	ActionBuffer:            {fn: motion.WholeBuffer, dir: motion.Forward},
	ActionTo:                {fn: motion.To, dir: motion.Forward},
	ActionLineStart:         {fn: motion.LineStart, dir: motion.Backward},
	ActionLineEnd:           {fn: motion.LineEnd, dir: motion.Forward},
	ActionFirstLine:         {fn: motion.FirstLine, dir: motion.Backward},
	ActionLastLine:          {fn: motion.LastLine, dir: motion.Forward},
	ActionFirstVisibleLine:  {fn: motion.FirstVisibleLine, dir: motion.Backward},
	ActionMiddleVisibleLine: {fn: motion.MiddleVisibleLine, dir: motion.Forward},
	ActionLastVisibleLine:   {fn: motion.LastVisibleLine, dir: motion.Forward},
	ActionLastModification:  {fn: motion.LastModification, dir: motion.Forward},
}

// Handler implements the select namespace.
type Handler struct{}

// NewHandler creates a new select handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the select namespace.
func (h *Handler) Namespace() string {
	return Namespace
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	_, ok := actions[actionName]
	return ok
}

// Actions returns the names of every supported action.
func Actions() []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	return names
}

// HandleAction runs the motion bound to the action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.ValidateEditor(); err != nil {
		return handler.Error(err)
	}

	b, ok := actions[action.Name]
	if !ok {
		return handler.Errorf("unknown select action: %s", action.Name)
	}

	opts, err := Options(action, ctx)
	if err != nil {
		return handler.Error(err)
	}
	opts.Direction = b.dir
	opts.By = b.by

	before := ctx.Editor.Selections()
	after := ctx.Editor.Move(b.fn, opts)
	if cursor.EqualSelections(before, after) {
		return handler.NoOp().WithData(DataSelections, after)
	}
	return handler.Success().WithRedraw().WithData(DataSelections, after)
}

// Options derives the motion options an action controls through its
// count and arguments.
func Options(action input.Action, ctx *execctx.ExecutionContext) (motion.Options, error) {
	shift, err := cursor.ParseShiftPolicy(action.Args.GetString(input.ArgShift))
	if err != nil {
		return motion.Options{}, fmt.Errorf("%w: %v", execctx.ErrInvalidArgument, err)
	}

	avoid := ctx.AvoidEOL
	if v, ok := action.Args.Get(input.ArgAvoidEOL); ok {
		b, isBool := v.(bool)
		if !isBool {
			return motion.Options{}, fmt.Errorf("%w: %s must be a bool, got %T", execctx.ErrInvalidArgument, input.ArgAvoidEOL, v)
		}
		avoid = b
	}

	return motion.Options{
		Shift:       shift,
		Repetitions: ctx.GetCount(),
		Count:       ctx.Count,
		AvoidEOL:    avoid,
		SkipBlank:   action.Args.GetBool(input.ArgSkipBlank),
	}, nil
}
