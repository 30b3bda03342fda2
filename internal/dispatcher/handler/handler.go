// Package handler provides the handler interface and result types for
// action dispatch.
package handler

import (
	"github.com/dshills/stride/internal/dispatcher/execctx"
	"github.com/dshills/stride/internal/input"
)

// HandleFunc executes one action.
type HandleFunc func(action input.Action, ctx *execctx.ExecutionContext) Result

// Handler processes a specific action or set of actions.
type Handler interface {
	// Handle executes the action and returns a result.
	Handle(action input.Action, ctx *execctx.ExecutionContext) Result

	// Priority returns the handler priority (higher = checked first).
	Priority() int
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc struct {
	fn   HandleFunc
	prio int
}

// NewHandlerFunc creates a HandlerFunc from a function.
func NewHandlerFunc(fn HandleFunc) *HandlerFunc {
	return &HandlerFunc{fn: fn}
}

// NewHandlerFuncWithPriority creates a HandlerFunc with a specified priority.
func NewHandlerFuncWithPriority(fn HandleFunc, priority int) *HandlerFunc {
	return &HandlerFunc{fn: fn, prio: priority}
}

// Handle implements Handler.Handle.
func (f *HandlerFunc) Handle(action input.Action, ctx *execctx.ExecutionContext) Result {
	if f.fn == nil {
		return Errorf("handler function is nil")
	}
	return f.fn(action, ctx)
}

// Priority implements Handler.Priority.
func (f *HandlerFunc) Priority() int {
	return f.prio
}

// NamespaceHandler handles all actions within a namespace.
// A namespace is the prefix before the first dot ("select" in "select.down").
type NamespaceHandler interface {
	// HandleAction handles an action within this namespace.
	HandleAction(action input.Action, ctx *execctx.ExecutionContext) Result

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool

	// Namespace returns the namespace prefix.
	Namespace() string
}

type namespaceAdapter struct {
	h NamespaceHandler
}

// NewNamespaceAdapter creates a Handler from a NamespaceHandler.
func NewNamespaceAdapter(h NamespaceHandler) Handler {
	return namespaceAdapter{h: h}
}

func (a namespaceAdapter) Handle(action input.Action, ctx *execctx.ExecutionContext) Result {
	return a.h.HandleAction(action, ctx)
}

func (a namespaceAdapter) Priority() int {
	return 0
}
