package lua

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
)

func TestStateRunsCode(t *testing.T) {
	s := NewState()
	defer s.Close()

	require.NoError(t, s.DoString(`x = string.upper("ab") .. tostring(math.max(1, 2))`))
	assert.Equal(t, lua.LString("AB2"), s.GetGlobal("x"))
}

func TestStateRestrictions(t *testing.T) {
	s := NewState()
	defer s.Close()

	for _, code := range []string{
		`dofile("/etc/passwd")`,
		`loadstring("return 1")()`,
		`require("os")`,
		`require("io")`,
		`io.write("x")`,
		`os.exit(1)`,
	} {
		assert.Error(t, s.DoString(code), code)
	}

	require.NoError(t, s.DoString(`local t = require("table"); n = #t.concat({"a", "b"})`))
	assert.Equal(t, lua.LNumber(2), s.GetGlobal("n"))
}

func TestStateTimeout(t *testing.T) {
	s := NewState(WithExecutionTimeout(50 * time.Millisecond))
	defer s.Close()

	err := s.DoString(`while true do end`)
	assert.ErrorIs(t, err, ErrExecutionTimeout)
}

func TestStateDoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.lua")
	require.NoError(t, os.WriteFile(path, []byte(`answer = 42`), 0o644))

	s := NewState()
	defer s.Close()

	require.NoError(t, s.DoFile(path))
	assert.Equal(t, lua.LNumber(42), s.GetGlobal("answer"))
}

func TestStateClosed(t *testing.T) {
	s := NewState()
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.DoString(`x = 1`), ErrStateClosed)
	assert.Equal(t, lua.LNil, s.GetGlobal("x"))
}
