package dispatcher

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dshills/stride/internal/dispatcher/execctx"
	"github.com/dshills/stride/internal/dispatcher/handler"
	"github.com/dshills/stride/internal/input"
)

// Dispatcher routes actions to handlers and executes them against an editor.
type Dispatcher struct {
	mu sync.RWMutex

	registry *Registry
	router   *Router

	editor execctx.EditorInterface
	config Config
	logger *log.Logger
}

// New creates a new dispatcher with the given configuration.
func New(config Config) *Dispatcher {
	return &Dispatcher{
		registry: NewRegistry(),
		router:   NewRouter(),
		config:   config,
		logger:   log.New(io.Discard),
	}
}

// NewWithDefaults creates a new dispatcher with default configuration.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// SetEditor sets the editor actions are executed against.
func (d *Dispatcher) SetEditor(editor execctx.EditorInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.editor = editor
}

// SetLogger sets the logger used for dispatch tracing.
func (d *Dispatcher) SetLogger(logger *log.Logger) {
	if logger == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logger = logger
}

// SetAvoidEOL changes the AvoidEOL default.
func (d *Dispatcher) SetAvoidEOL(avoid bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.config.AvoidEOL = avoid
}

// Config returns the current configuration.
func (d *Dispatcher) Config() Config {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.config
}

// Dispatch executes an action synchronously.
func (d *Dispatcher) Dispatch(action input.Action) handler.Result {
	if action.Name == "" {
		return handler.Error(ErrInvalidAction)
	}

	start := time.Now()
	ctx, recoverPanics := d.buildContext(action)

	h := d.router.Route(action.Name)
	if h == nil {
		h = d.registry.Get(action.Name)
	}
	if h == nil {
		return handler.Error(fmt.Errorf("%w: %s", ErrNoHandler, action.Name))
	}

	var result handler.Result
	if recoverPanics {
		result = d.executeWithRecovery(h, action, ctx)
	} else {
		result = h.Handle(action, ctx)
	}

	ctx.Logger.Debug("dispatch",
		"action", action.Name,
		"count", action.Count,
		"source", action.Source.String(),
		"status", result.Status.String(),
		"elapsed", time.Since(start))
	if result.IsError() {
		ctx.Logger.Warn("action failed", "action", action.Name, "err", result.Error)
	}
	return result
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, action input.Action, ctx *execctx.ExecutionContext) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			ctx.Logger.Error("handler panic", "action", action.Name, "panic", r, "stack", string(stack[:n]))
			result = handler.Error(fmt.Errorf("%w: %s: %v", ErrPanic, action.Name, r))
		}
	}()

	return h.Handle(action, ctx)
}

// buildContext snapshots the configuration under the lock. The second
// result is the panic recovery setting.
func (d *Dispatcher) buildContext(action input.Action) (*execctx.ExecutionContext, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ctx := execctx.New()
	ctx.Editor = d.editor
	ctx.AvoidEOL = d.config.AvoidEOL
	ctx.Logger = d.logger
	ctx.Count = action.Count
	ctx.MaxRepeat = d.config.MaxRepeatCount
	return ctx, d.config.RecoverFromPanic
}

// RegisterHandler registers a handler for an exact action name.
func (d *Dispatcher) RegisterHandler(actionName string, h handler.Handler) {
	d.registry.Register(actionName, h)
}

// RegisterHandlerFunc registers a handler function for an action name.
func (d *Dispatcher) RegisterHandlerFunc(actionName string, fn handler.HandleFunc) {
	d.registry.Register(actionName, handler.NewHandlerFunc(fn))
}

// RegisterNamespace registers a namespace handler.
func (d *Dispatcher) RegisterNamespace(h handler.NamespaceHandler) {
	d.router.RegisterNamespace(h.Namespace(), h)
}

// UnregisterHandler removes the handlers for an action name.
func (d *Dispatcher) UnregisterHandler(actionName string) {
	d.registry.Unregister(actionName)
}

// CanDispatch reports whether some handler accepts the action name.
func (d *Dispatcher) CanDispatch(actionName string) bool {
	return d.router.Route(actionName) != nil || d.registry.Has(actionName)
}
