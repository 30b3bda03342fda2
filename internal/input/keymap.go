package input

import (
	"fmt"
	"sort"
	"strings"
)

// Binding maps one key to an action.
type Binding struct {
	// Key is the key name, such as "j", "Down", "S-Down" or "C-d".
	Key string

	// Action is the action dispatched when the key is pressed.
	Action Action
}

// Keymap resolves key names to actions.
type Keymap struct {
	Name     string
	bindings map[string]Action
}

// NewKeymap creates an empty keymap.
func NewKeymap(name string) *Keymap {
	return &Keymap{Name: name, bindings: make(map[string]Action)}
}

// Bind maps key to action, replacing any existing binding.
func (k *Keymap) Bind(key string, action Action) *Keymap {
	k.bindings[key] = action
	return k
}

// Add binds key to the action with the given name.
func (k *Keymap) Add(key, actionName string) *Keymap {
	return k.Bind(key, NewAction(actionName))
}

// Lookup returns the action bound to key.
func (k *Keymap) Lookup(key string) (Action, bool) {
	a, ok := k.bindings[key]
	return a, ok
}

// Bindings returns every binding sorted by key.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(k.bindings))
	for key, a := range k.bindings {
		out = append(out, Binding{Key: key, Action: a})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Validate checks that every binding names an action in "namespace.command"
// form.
func (k *Keymap) Validate() error {
	for _, b := range k.Bindings() {
		if b.Key == "" {
			return fmt.Errorf("keymap %s: empty key", k.Name)
		}
		ns, cmd, ok := strings.Cut(b.Action.Name, ".")
		if !ok || ns == "" || cmd == "" {
			return fmt.Errorf("keymap %s: key %s: invalid action %q", k.Name, b.Key, b.Action.Name)
		}
	}
	return nil
}

// DefaultKeymap returns the bindings of the interactive viewer. Shifted
// arrows and J/K extend instead of moving.
func DefaultKeymap() *Keymap {
	extend := func(name string) Action {
		return NewAction(name).WithArg(ArgShift, "extend")
	}

	type motionKeys struct {
		keys   []string
		action string
	}

	km := NewKeymap("default")
	for _, m := range []motionKeys{
		{[]string{"h", "Left"}, "select.left"},
		{[]string{"l", "Right"}, "select.right"},
		{[]string{"k", "Up"}, "select.up"},
		{[]string{"j", "Down"}, "select.down"},
		{[]string{"H", "0", "Home"}, "select.lineStart"},
		{[]string{"L", "$", "End"}, "select.lineEnd"},
		{[]string{"PgUp"}, "select.pageUp"},
		{[]string{"PgDn"}, "select.pageDown"},
		{[]string{"C-u"}, "select.halfPageUp"},
		{[]string{"C-d"}, "select.halfPageDown"},
		{[]string{"g"}, "select.firstLine"},
		{[]string{"G"}, "select.lastLine"},
		{[]string{"%"}, "select.buffer"},
		{[]string{"x"}, "select.lineBelow"},
		{[]string{"X"}, "select.lineAbove"},
		{[]string{"."}, "select.lastModification"},
		{[]string{":"}, "select.to"},
	} {
		for _, key := range m.keys {
			km.Add(key, m.action)
		}
	}

	km.Bind("K", extend("select.up")).
		Bind("J", extend("select.down")).
		Bind("S-Left", extend("select.left")).
		Bind("S-Right", extend("select.right")).
		Bind("S-Up", extend("select.up")).
		Bind("S-Down", extend("select.down")).
		Bind("S-Home", extend("select.lineStart")).
		Bind("S-End", extend("select.lineEnd")).
		Bind("A-x", NewAction("select.lineBelowExtend")).
		Bind("A-X", NewAction("select.lineAboveExtend"))
	return km
}
