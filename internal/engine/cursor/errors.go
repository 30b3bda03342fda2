package cursor

import "fmt"

// UnknownNameError is returned when parsing an unrecognized enum name.
type UnknownNameError struct {
	Kind string
	Name string
}

// Error implements the error interface.
func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.Name)
}
