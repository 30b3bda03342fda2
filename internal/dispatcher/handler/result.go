package handler

import "fmt"

// ResultStatus indicates the outcome of an action.
type ResultStatus uint8

const (
	// StatusOK indicates successful execution.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the action had no effect.
	StatusNoOp
	// StatusError indicates an error occurred.
	StatusError
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// ViewUpdate describes required view updates.
type ViewUpdate struct {
	// Redraw indicates whether the view needs redrawing.
	Redraw bool
}

// Result represents the outcome of handling an action.
type Result struct {
	Status  ResultStatus
	Error   error
	Message string

	ViewUpdate ViewUpdate

	// Data holds handler-specific return data.
	Data map[string]any
}

// IsOK returns true if the result indicates success.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsError returns true if the result indicates an error.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// Success creates a successful result.
func Success() Result {
	return Result{Status: StatusOK}
}

// NoOp creates a result for an action that changed nothing.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// Error creates an error result.
func Error(err error) Result {
	return Result{Status: StatusError, Error: err}
}

// Errorf creates an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	err := fmt.Errorf(format, args...)
	return Result{Status: StatusError, Error: err, Message: err.Error()}
}

// WithMessage returns a copy of the result with the message set.
func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}

// WithRedraw returns a copy of the result that requests a redraw.
func (r Result) WithRedraw() Result {
	r.ViewUpdate.Redraw = true
	return r
}

// WithData returns a copy of the result with key set to value.
func (r Result) WithData(key string, value any) Result {
	data := make(map[string]any, len(r.Data)+1)
	for k, v := range r.Data {
		data[k] = v
	}
	data[key] = value
	r.Data = data
	return r
}

// GetData retrieves a value from Data.
func (r Result) GetData(key string) (any, bool) {
	if r.Data == nil {
		return nil, false
	}
	v, ok := r.Data[key]
	return v, ok
}
