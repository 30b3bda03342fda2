package editor

import "errors"

// ErrClosed is returned when operating on a closed session.
var ErrClosed = errors.New("editor: session closed")
