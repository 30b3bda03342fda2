package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/stride/internal/editor"
	"github.com/dshills/stride/internal/engine/buffer"
	"github.com/dshills/stride/internal/engine/cursor"
	"github.com/dshills/stride/internal/input"
)

// ModuleName is the name scripts require.
const ModuleName = "stride"

// Install makes the stride module, bound to sess, available to scripts.
func (s *State) Install(sess *editor.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	m := &module{sess: sess, state: s}
	loader := func(L *lua.LState) int {
		L.Push(m.table(L))
		return 1
	}
	s.L.PreloadModule(ModuleName, loader)
	s.L.SetGlobal(ModuleName, m.table(s.L))
	return nil
}

type module struct {
	sess  *editor.Session
	state *State
}

func (m *module) table(L *lua.LState) *lua.LTable {
	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"move":           m.move,
		"selections":     m.selections,
		"set_selections": m.setSelections,
		"line_count":     m.lineCount,
		"line":           m.line,
		"text":           m.text,
		"insert":         m.insert,
		"delete":         m.delete,
		"behavior":       m.behavior,
		"log":            m.log,
	})
}

// move(action [, count [, shift]]) dispatches a select action and returns
// the new selections.
func (m *module) move(L *lua.LState) int {
	action := input.NewAction(L.CheckString(1)).
		WithCount(L.OptInt(2, 0)).
		WithSource(input.SourceScript)
	if shift := L.OptString(3, ""); shift != "" {
		action = action.WithArg(input.ArgShift, shift)
	}

	res := m.sess.Dispatch(action)
	if res.IsError() {
		L.RaiseError("%s: %v", action.Name, res.Error)
		return 0
	}
	L.Push(selectionsToTable(L, m.sess.Selections()))
	return 1
}

func (m *module) selections(L *lua.LState) int {
	L.Push(selectionsToTable(L, m.sess.Selections()))
	return 1
}

func (m *module) setSelections(L *lua.LState) int {
	tbl := L.CheckTable(1)

	var sels []cursor.Selection
	var bad bool
	tbl.ForEach(func(_, v lua.LValue) {
		sel, ok := tableToSelection(v)
		if !ok {
			bad = true
			return
		}
		sels = append(sels, sel)
	})
	if bad || len(sels) == 0 {
		L.ArgError(1, "expected a non-empty list of {anchor=..., active=...}")
		return 0
	}

	if err := m.sess.SetSelections(sels); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (m *module) lineCount(L *lua.LState) int {
	L.Push(lua.LNumber(m.sess.Document().LineCount()))
	return 1
}

func (m *module) line(L *lua.LState) int {
	n := L.CheckInt(1)
	doc := m.sess.Document()
	if n < 0 || n >= doc.LineCount() {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(doc.LineText(n)))
	return 1
}

func (m *module) text(L *lua.LState) int {
	L.Push(lua.LString(m.sess.Document().Text()))
	return 1
}

// insert(pos, text) edits the document and returns the position after the
// inserted text.
func (m *module) insert(L *lua.LState) int {
	p, ok := tableToPosition(L.Get(1))
	if !ok {
		L.ArgError(1, "expected {line=..., character=...}")
		return 0
	}
	end, err := m.sess.Insert(p, L.CheckString(2))
	if err != nil {
		L.RaiseError("insert %v: %v", p, err)
		return 0
	}
	L.Push(positionToTable(L, end))
	return 1
}

// delete(from, to) removes the text from one position up to the other.
func (m *module) delete(L *lua.LState) int {
	from, ok := tableToPosition(L.Get(1))
	if !ok {
		L.ArgError(1, "expected {line=..., character=...}")
		return 0
	}
	to, ok := tableToPosition(L.Get(2))
	if !ok {
		L.ArgError(2, "expected {line=..., character=...}")
		return 0
	}
	if err := m.sess.Delete(from, to); err != nil {
		L.RaiseError("delete %v-%v: %v", from, to, err)
	}
	return 0
}

func (m *module) behavior(L *lua.LState) int {
	L.Push(lua.LString(m.sess.Behavior().Name()))
	return 1
}

func (m *module) log(L *lua.LState) int {
	m.state.logger.Info(L.CheckString(1), "source", "script")
	return 0
}

func positionToTable(L *lua.LState, p buffer.Position) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("line", lua.LNumber(p.Line))
	t.RawSetString("character", lua.LNumber(p.Character))
	return t
}

func selectionsToTable(L *lua.LState, sels []cursor.Selection) *lua.LTable {
	out := L.NewTable()
	for _, sel := range sels {
		t := L.NewTable()
		t.RawSetString("anchor", positionToTable(L, sel.Anchor))
		t.RawSetString("active", positionToTable(L, sel.Active))
		out.Append(t)
	}
	return out
}

func tableToPosition(v lua.LValue) (buffer.Position, bool) {
	t, ok := v.(*lua.LTable)
	if !ok {
		return buffer.Position{}, false
	}
	line, ok1 := t.RawGetString("line").(lua.LNumber)
	char, ok2 := t.RawGetString("character").(lua.LNumber)
	if !ok1 || !ok2 {
		return buffer.Position{}, false
	}
	return buffer.Position{Line: int(line), Character: int(char)}, true
}

// tableToSelection accepts {anchor=pos, active=pos} or a bare position,
// which becomes a caret.
func tableToSelection(v lua.LValue) (cursor.Selection, bool) {
	if p, ok := tableToPosition(v); ok {
		return cursor.NewCaret(p), true
	}
	t, ok := v.(*lua.LTable)
	if !ok {
		return cursor.Selection{}, false
	}
	anchor, ok1 := tableToPosition(t.RawGetString("anchor"))
	active, ok2 := tableToPosition(t.RawGetString("active"))
	if !ok1 || !ok2 {
		return cursor.Selection{}, false
	}
	return cursor.NewSelection(anchor, active), true
}
