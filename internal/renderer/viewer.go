package renderer

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/stride/internal/config"
	"github.com/dshills/stride/internal/editor"
	"github.com/dshills/stride/internal/engine/buffer"
	"github.com/dshills/stride/internal/engine/cursor"
	"github.com/dshills/stride/internal/input"
)

// Styles holds the styles the viewer draws with.
type Styles struct {
	Text      tcell.Style
	Gutter    tcell.Style
	Selection tcell.Style
	Cursor    tcell.Style
	Status    tcell.Style
}

// DefaultStyles returns the built-in styles.
func DefaultStyles() Styles {
	return Styles{
		Text:      tcell.StyleDefault,
		Gutter:    tcell.StyleDefault.Foreground(tcell.ColorGray),
		Selection: tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite),
		Cursor:    tcell.StyleDefault.Reverse(true),
		Status:    tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack),
	}
}

// configEvent carries a reloaded configuration into the event loop.
type configEvent struct {
	tcell.EventTime
	cfg *config.Config
}

// Viewer renders a session and drives it from terminal input.
type Viewer struct {
	screen tcell.Screen
	sess   *editor.Session
	vp     *editor.Viewport
	keymap *input.Keymap
	styles Styles
	logger *log.Logger

	count   int
	prompt  *string
	message string
	quit    bool
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithKeymap replaces the default keymap.
func WithKeymap(km *input.Keymap) Option {
	return func(v *Viewer) {
		if km != nil {
			v.keymap = km
		}
	}
}

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option {
	return func(v *Viewer) {
		v.styles = s
	}
}

// WithLogger sets the viewer logger.
func WithLogger(l *log.Logger) Option {
	return func(v *Viewer) {
		if l != nil {
			v.logger = l
		}
	}
}

// New creates a viewer over an initialized screen. vp must be the view the
// session was created with; the viewer sizes it to the screen. The viewer
// becomes the session's goto menu.
func New(screen tcell.Screen, sess *editor.Session, vp *editor.Viewport, opts ...Option) *Viewer {
	v := &Viewer{
		screen: screen,
		sess:   sess,
		vp:     vp,
		keymap: input.DefaultKeymap(),
		styles: DefaultStyles(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(v)
	}
	sess.SetMenu(v)
	v.resize()
	return v
}

// OpenGoto starts the goto prompt. The typed line number is dispatched as
// select.to when Enter is pressed.
func (v *Viewer) OpenGoto() {
	empty := ""
	v.prompt = &empty
}

// Quit reports whether the viewer was asked to quit.
func (v *Viewer) Quit() bool {
	return v.quit
}

// Message returns the current status message.
func (v *Viewer) Message() string {
	return v.message
}

// PostConfig hands a reloaded configuration to the event loop. It is safe
// to call from any goroutine.
func (v *Viewer) PostConfig(cfg *config.Config) error {
	ev := &configEvent{cfg: cfg}
	ev.SetEventNow()
	return v.screen.PostEvent(ev)
}

// Run draws and handles events until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = v.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	v.Draw()
	for !v.quit {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		v.HandleEvent(ev)
		if !v.quit {
			v.Draw()
		}
	}
	return nil
}

// HandleEvent applies one terminal event.
func (v *Viewer) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKey(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			v.click(ev.Position())
		}
	case *tcell.EventResize:
		v.resize()
		v.screen.Sync()
	case *tcell.EventInterrupt:
		v.quit = true
	case *configEvent:
		v.sess.ApplyConfig(ev.cfg)
		v.message = "config reloaded"
	}
}

func (v *Viewer) handleKey(ev *tcell.EventKey) {
	name := KeyName(ev)

	if v.prompt != nil {
		v.handlePrompt(name)
		return
	}

	switch name {
	case "q", "C-c":
		v.quit = true
		return
	case "Esc":
		v.count = 0
		v.message = ""
		return
	}

	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' && (name[0] != '0' || v.count > 0) {
		v.count = min(v.count*10+int(name[0]-'0'), 1_000_000)
		return
	}

	action, ok := v.keymap.Lookup(name)
	if !ok {
		v.count = 0
		if name != "" {
			v.message = fmt.Sprintf("%s is not bound", name)
		}
		return
	}

	if v.count > 0 {
		action = action.WithCount(v.count)
	}
	v.count = 0
	v.dispatch(action)
}

func (v *Viewer) handlePrompt(name string) {
	switch {
	case name == "Esc":
		v.prompt = nil
	case name == "Enter":
		n, err := strconv.Atoi(*v.prompt)
		v.prompt = nil
		if err != nil || n < 1 {
			v.message = "invalid line number"
			return
		}
		v.dispatch(input.NewAction("select.to").WithCount(n))
	case name == "Backspace":
		if p := *v.prompt; p != "" {
			*v.prompt = p[:len(p)-1]
		}
	case len(name) == 1 && name[0] >= '0' && name[0] <= '9':
		*v.prompt += name
	}
}

func (v *Viewer) dispatch(action input.Action) {
	res := v.sess.Dispatch(action.WithSource(input.SourceKeyboard))
	if res.IsError() {
		v.message = res.Error.Error()
		v.logger.Warn("action failed", "action", action.Name, "err", res.Error)
		return
	}
	v.message = ""
}

// click places a single selection at the clicked character.
func (v *Viewer) click(x, y int) {
	doc := v.sess.Document()
	line := v.vp.Top + y
	if y >= v.vp.Height || line >= doc.LineCount() {
		return
	}

	col := max(x-v.gutterWidth(), 0)
	p := buffer.Position{Line: line, Character: v.sess.Columns().ToCharacter(doc.LineText(line), col)}
	sel := v.sess.Behavior().Place(doc, cursor.NewCaret(p), p, cursor.Jump)
	if err := v.sess.SetSelections([]cursor.Selection{sel}); err != nil {
		v.message = err.Error()
	}
}

func (v *Viewer) resize() {
	_, h := v.screen.Size()
	v.vp.Height = max(h-1, 1)

	cursors := v.sess.Cursors()
	if len(cursors) > 0 {
		v.vp.Reveal(cursors[0].Line, v.sess.Document().LineCount())
	}
}

func (v *Viewer) gutterWidth() int {
	return len(strconv.Itoa(v.sess.Document().LineCount())) + 1
}
