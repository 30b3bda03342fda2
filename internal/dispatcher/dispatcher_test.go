package dispatcher_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/stride/internal/dispatcher"
	"github.com/dshills/stride/internal/dispatcher/execctx"
	"github.com/dshills/stride/internal/dispatcher/handler"
	"github.com/dshills/stride/internal/dispatcher/handlers/selection"
	"github.com/dshills/stride/internal/engine/buffer"
	"github.com/dshills/stride/internal/engine/cursor"
	"github.com/dshills/stride/internal/input"
	"github.com/dshills/stride/internal/motion"
)

type stubEditor struct {
	env  motion.Env
	sels []cursor.Selection
}

func (s *stubEditor) Selections() []cursor.Selection {
	return append([]cursor.Selection(nil), s.sels...)
}

func (s *stubEditor) Move(fn motion.Func, opts motion.Options) []cursor.Selection {
	s.sels = fn(s.env, s.Selections(), opts)
	return s.Selections()
}

func newStub(text string) *stubEditor {
	return &stubEditor{
		env:  motion.Env{Doc: buffer.NewBufferFromString(text)},
		sels: []cursor.Selection{cursor.NewCaret(buffer.Position{})},
	}
}

func TestDispatchRoutesNamespace(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	d.RegisterNamespace(selection.NewHandler())
	ed := newStub("ab\ncd")
	d.SetEditor(ed)

	res := d.Dispatch(input.NewAction("select.down"))
	require.True(t, res.IsOK(), res.Error)
	assert.Equal(t, buffer.Position{Line: 1}, ed.sels[0].Active)
	assert.True(t, d.CanDispatch("select.lineEnd"))
	assert.False(t, d.CanDispatch("select.nowhere"))
}

func TestDispatchLineCountIsNotCapped(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	d.RegisterNamespace(selection.NewHandler())
	ed := newStub(strings.Repeat("x\n", 20000))
	d.SetEditor(ed)
	require.Equal(t, 20001, ed.env.Doc.LineCount())

	res := d.Dispatch(input.NewAction("select.to").WithCount(15000))
	require.True(t, res.IsOK(), res.Error)
	assert.Equal(t, buffer.Position{Line: 14999}, ed.sels[0].Active)

	res = d.Dispatch(input.NewAction("select.lineStart").WithCount(12345))
	require.True(t, res.IsOK(), res.Error)
	assert.Equal(t, buffer.Position{Line: 12344}, ed.sels[0].Active)

	// Repetitions stay capped.
	ed.sels = []cursor.Selection{cursor.NewCaret(buffer.Position{})}
	d.Dispatch(input.NewAction("select.down").WithCount(15000))
	assert.Equal(t, buffer.Position{Line: 10000}, ed.sels[0].Active)
}

func TestDispatchUnknownAction(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	res := d.Dispatch(input.NewAction("select.down"))
	require.True(t, res.IsError())
	assert.ErrorIs(t, res.Error, dispatcher.ErrNoHandler)

	res = d.Dispatch(input.Action{})
	assert.ErrorIs(t, res.Error, dispatcher.ErrInvalidAction)
}

func TestDispatchRecoversPanic(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	d.RegisterHandlerFunc("test.boom", func(input.Action, *execctx.ExecutionContext) handler.Result {
		panic("boom")
	})

	res := d.Dispatch(input.NewAction("test.boom"))
	require.True(t, res.IsError())
	assert.ErrorIs(t, res.Error, dispatcher.ErrPanic)
}

func TestDispatchCapsRepeatCountOnly(t *testing.T) {
	d := dispatcher.New(dispatcher.DefaultConfig().WithMaxRepeatCount(5))
	var count, repeat int
	d.RegisterHandlerFunc("test.count", func(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
		count, repeat = ctx.Count, ctx.GetCount()
		return handler.Success()
	})

	d.Dispatch(input.NewAction("test.count").WithCount(50))
	assert.Equal(t, 50, count)
	assert.Equal(t, 5, repeat)
}

func TestDispatchWithoutPanicRecovery(t *testing.T) {
	d := dispatcher.New(dispatcher.DefaultConfig().WithPanicRecovery(false))
	d.RegisterHandlerFunc("test.boom", func(input.Action, *execctx.ExecutionContext) handler.Result {
		panic("boom")
	})

	assert.Panics(t, func() { d.Dispatch(input.NewAction("test.boom")) })
}

func TestDispatchWhileConfigChanges(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	d.RegisterHandlerFunc("test.noop", func(input.Action, *execctx.ExecutionContext) handler.Result {
		return handler.NoOp()
	})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			d.SetAvoidEOL(i%2 == 0)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			d.Dispatch(input.NewAction("test.noop"))
		}
	}()
	wg.Wait()
}

func TestDispatchAvoidEOLDefault(t *testing.T) {
	d := dispatcher.New(dispatcher.DefaultConfig().WithAvoidEOL(true))
	var got []bool
	d.RegisterHandlerFunc("test.eol", func(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
		got = append(got, ctx.AvoidEOL)
		return handler.Success()
	})

	d.Dispatch(input.NewAction("test.eol"))
	d.SetAvoidEOL(false)
	d.Dispatch(input.NewAction("test.eol"))
	assert.Equal(t, []bool{true, false}, got)
}

func TestRegistryPriority(t *testing.T) {
	r := dispatcher.NewRegistry()
	low := handler.NewHandlerFuncWithPriority(func(input.Action, *execctx.ExecutionContext) handler.Result {
		return handler.Success().WithMessage("low")
	}, 1)
	high := handler.NewHandlerFuncWithPriority(func(input.Action, *execctx.ExecutionContext) handler.Result {
		return handler.Success().WithMessage("high")
	}, 10)
	r.Register("a.b", low)
	r.Register("a.b", high)

	got := r.Get("a.b").Handle(input.NewAction("a.b"), execctx.New())
	assert.Equal(t, "high", got.Message)
	assert.Equal(t, []string{"a.b"}, r.List())

	r.Unregister("a.b")
	assert.False(t, r.Has("a.b"))
	assert.Nil(t, r.Get("a.b"))
}

func TestRouter(t *testing.T) {
	r := dispatcher.NewRouter()
	r.RegisterNamespace("select", selection.NewHandler())

	assert.True(t, r.HasNamespace("select"))
	assert.Equal(t, []string{"select"}, r.Namespaces())
	assert.NotNil(t, r.Route("select.up"))
	assert.Nil(t, r.Route("select.sideways"))
	assert.Nil(t, r.Route("nodot"))
}
