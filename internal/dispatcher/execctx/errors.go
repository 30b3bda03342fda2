package execctx

import "errors"

// Errors reported by handlers about their execution context.
var (
	// ErrMissingEditor indicates no editor is attached to the context.
	ErrMissingEditor = errors.New("execctx: no editor attached")

	// ErrInvalidArgument indicates an action argument could not be used.
	ErrInvalidArgument = errors.New("execctx: invalid argument")
)
