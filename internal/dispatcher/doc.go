// Package dispatcher routes actions to handlers and executes them against
// an editor.
//
// Routing is two-tier:
//
//  1. Namespace router: "select.down" goes to the handler registered for
//     the "select" namespace, provided that handler accepts the name.
//  2. Handler registry: exact action names, several handlers per name
//     sorted by priority.
//
// Dispatch builds an execctx.ExecutionContext holding the editor, the
// action's repeat count (capped by Config.MaxRepeatCount) and the AvoidEOL
// default, runs the handler (recovering panics when configured) and
// returns its handler.Result. Unknown actions yield a StatusError result
// wrapping ErrNoHandler; nothing is ever panicked back to the caller.
//
// The select namespace lives in handlers/selection.
package dispatcher
