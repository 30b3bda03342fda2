package dispatcher

import (
	"sort"
	"strings"
	"sync"

	"github.com/dshills/stride/internal/dispatcher/handler"
)

// Router routes namespaced actions like "select.down" to the handler
// registered for their namespace.
type Router struct {
	mu         sync.RWMutex
	namespaces map[string]handler.NamespaceHandler
}

// NewRouter creates a new action router.
func NewRouter() *Router {
	return &Router{
		namespaces: make(map[string]handler.NamespaceHandler),
	}
}

// RegisterNamespace registers a handler for all actions in a namespace.
func (r *Router) RegisterNamespace(namespace string, h handler.NamespaceHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.namespaces[namespace] = h
}

// Route finds the handler for an action, or nil.
func (r *Router) Route(actionName string) handler.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.namespaces[extractNamespace(actionName)]
	if !ok || !h.CanHandle(actionName) {
		return nil
	}
	return handler.NewNamespaceAdapter(h)
}

// HasNamespace returns true if a handler is registered for the namespace.
func (r *Router) HasNamespace(namespace string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.namespaces[namespace]
	return ok
}

// Namespaces returns all registered namespace names, sorted.
func (r *Router) Namespaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.namespaces))
	for name := range r.namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// extractNamespace returns the prefix before the first dot, or "".
func extractNamespace(actionName string) string {
	ns, _, ok := strings.Cut(actionName, ".")
	if !ok {
		return ""
	}
	return ns
}
