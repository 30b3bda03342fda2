package input

// ActionSource indicates the origin of an action.
type ActionSource uint8

const (
	// SourceKeyboard indicates the action originated from keyboard input.
	SourceKeyboard ActionSource = iota
	// SourceCommandLine indicates the action came from command-line arguments.
	SourceCommandLine
	// SourceScript indicates the action originated from a Lua script.
	SourceScript
	// SourceAPI indicates the action originated from an API call.
	SourceAPI
)

// String returns a string representation of the action source.
func (s ActionSource) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceCommandLine:
		return "cli"
	case SourceScript:
		return "script"
	case SourceAPI:
		return "api"
	default:
		return "unknown"
	}
}

// Argument keys understood by the select handlers.
const (
	ArgShift     = "shift"
	ArgAvoidEOL  = "avoidEol"
	ArgSkipBlank = "skipBlank"
)

// ActionArgs holds arguments for an action.
type ActionArgs struct {
	// Extra holds key-value pairs such as "shift" or "avoidEol".
	Extra map[string]any
}

// Get retrieves a value from Extra.
func (a ActionArgs) Get(key string) (any, bool) {
	if a.Extra == nil {
		return nil, false
	}
	v, ok := a.Extra[key]
	return v, ok
}

// GetString retrieves a string value from Extra.
func (a ActionArgs) GetString(key string) string {
	if v, ok := a.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetInt retrieves an int value from Extra.
func (a ActionArgs) GetInt(key string) int {
	if v, ok := a.Get(key); ok {
		switch n := v.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}

// GetBool retrieves a bool value from Extra.
func (a ActionArgs) GetBool(key string) bool {
	if v, ok := a.Get(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// Action represents a command to be executed by the dispatcher.
type Action struct {
	// Name is the command identifier (e.g., "select.down").
	Name string

	// Args contains command-specific arguments.
	Args ActionArgs

	// Source indicates where this action originated.
	Source ActionSource

	// Count is the repeat count. Zero means no count was given.
	Count int
}

// NewAction creates an action with the given name.
func NewAction(name string) Action {
	return Action{Name: name}
}

// WithCount returns a copy of the action with the specified count.
func (a Action) WithCount(count int) Action {
	a.Count = count
	return a
}

// WithSource returns a copy of the action with the specified source.
func (a Action) WithSource(src ActionSource) Action {
	a.Source = src
	return a
}

// WithArg returns a copy of the action with key set to value.
// The receiver's argument map is not modified.
func (a Action) WithArg(key string, value any) Action {
	extra := make(map[string]any, len(a.Args.Extra)+1)
	for k, v := range a.Args.Extra {
		extra[k] = v
	}
	extra[key] = value
	a.Args.Extra = extra
	return a
}
