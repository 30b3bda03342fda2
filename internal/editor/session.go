package editor

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/dshills/stride/internal/config"
	"github.com/dshills/stride/internal/dispatcher"
	"github.com/dshills/stride/internal/dispatcher/handler"
	"github.com/dshills/stride/internal/dispatcher/handlers/selection"
	"github.com/dshills/stride/internal/engine/buffer"
	"github.com/dshills/stride/internal/engine/column"
	"github.com/dshills/stride/internal/engine/cursor"
	"github.com/dshills/stride/internal/engine/tracking"
	"github.com/dshills/stride/internal/event"
	"github.com/dshills/stride/internal/event/events"
	"github.com/dshills/stride/internal/input"
	"github.com/dshills/stride/internal/motion"
)

// Session is the selection state of one editor over one document.
// Events are published after the session lock is released, so subscribers
// may call back into the session. The tracker is updated during event
// delivery, so a session should be driven from a single goroutine.
type Session struct {
	mu sync.Mutex

	id  string
	doc *buffer.Buffer

	sels     *cursor.SelectionSet
	initial  []cursor.Selection
	behavior cursor.Behavior
	columns  column.Model
	view     motion.View
	menu     motion.Menu
	avoidEOL bool

	bus        event.Bus
	ownsBus    bool
	tracker    *tracking.Tracker
	dispatcher *dispatcher.Dispatcher
	logger     *log.Logger

	closed bool
}

// New creates a session over doc. Without WithSelections the session
// starts with one selection at the start of the document.
func New(doc *buffer.Buffer, opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		doc:      doc,
		behavior: cursor.Caret,
		columns:  column.New(column.DefaultTabSize),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.bus == nil {
		s.bus = event.NewBus()
		s.ownsBus = true
	}

	if len(s.initial) == 0 {
		start := buffer.Start()
		s.initial = []cursor.Selection{s.behavior.Place(doc, cursor.NewCaret(start), start, cursor.Jump)}
	}
	s.sels = cursor.NewSelectionSet(s.initial...)
	s.sels.Clamp(doc)
	s.initial = nil

	s.tracker = tracking.New(s.id, s.bus, tracking.WithLogger(s.logger))

	s.dispatcher = dispatcher.New(dispatcher.DefaultConfig().WithAvoidEOL(s.avoidEOL))
	s.dispatcher.SetLogger(s.logger)
	s.dispatcher.SetEditor(s)
	s.dispatcher.RegisterNamespace(selection.NewHandler())

	return s
}

// ID returns the session identifier used as event source.
func (s *Session) ID() string {
	return s.id
}

// Document returns the document.
func (s *Session) Document() *buffer.Buffer {
	return s.doc
}

// Bus returns the event bus the session publishes on.
func (s *Session) Bus() event.Bus {
	return s.bus
}

// Tracker returns the preferred-column tracker.
func (s *Session) Tracker() *tracking.Tracker {
	return s.tracker
}

// Dispatcher returns the command dispatcher bound to the session.
func (s *Session) Dispatcher() *dispatcher.Dispatcher {
	return s.dispatcher
}

// Behavior returns the current selection behavior.
func (s *Session) Behavior() cursor.Behavior {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.behavior
}

// Columns returns the column model.
func (s *Session) Columns() column.Model {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.columns
}

// View returns the view, or nil.
func (s *Session) View() motion.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Selections returns a copy of the selections, primary first.
func (s *Session) Selections() []cursor.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sels.All()
}

// Cursors returns the cursor position of every selection under the
// current behavior.
func (s *Session) Cursors() []buffer.Position {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]buffer.Position, s.sels.Count())
	for i, sel := range s.sels.All() {
		out[i] = s.behavior.Cursor(s.doc, sel)
	}
	return out
}

// Move runs fn over the selections, installs the result and publishes it
// with the session as source.
func (s *Session) Move(fn motion.Func, opts motion.Options) []cursor.Selection {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return s.Selections()
	}
	s.sels.SetAll(fn(s.envLocked(), s.sels.All(), opts))
	out := s.sels.All()
	s.revealLocked()
	s.mu.Unlock()

	s.publish(events.TopicSelectionsChanged,
		events.SelectionsChanged{EditorID: s.id, Selections: out}, s.id)
	return append([]cursor.Selection(nil), out...)
}

// SetSelections replaces the selections from outside the motion layer,
// for example after a mouse click or an edit. The change is published as
// external, which discards any preferred-column cache.
func (s *Session) SetSelections(sels []cursor.Selection) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.sels.SetAll(sels)
	s.sels.Clamp(s.doc)
	out := s.sels.All()
	s.revealLocked()
	s.mu.Unlock()

	s.publish(events.TopicSelectionsChanged,
		events.SelectionsChanged{EditorID: s.id, Selections: out}, events.SourceExternal)
	return nil
}

// Insert inserts text into the document at pos and returns the position
// after it. The selections are clamped to the edited document and
// published as external.
func (s *Session) Insert(pos buffer.Position, text string) (buffer.Position, error) {
	var end buffer.Position
	err := s.edit(func() error {
		var err error
		end, err = s.doc.Insert(pos, text)
		return err
	})
	return end, err
}

// Delete removes the text from start up to end and republishes the
// selections like Insert.
func (s *Session) Delete(start, end buffer.Position) error {
	return s.edit(func() error {
		return s.doc.Delete(start, end)
	})
}

func (s *Session) edit(fn func() error) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if err := fn(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.sels.Clamp(s.doc)
	out := s.sels.All()
	s.mu.Unlock()

	s.logger.Debug("document edited", "editor", s.id, "revision", s.doc.RevisionID())
	s.publish(events.TopicSelectionsChanged,
		events.SelectionsChanged{EditorID: s.id, Selections: out}, events.SourceExternal)
	return nil
}

// SetBehavior switches the selection behavior and announces the change.
func (s *Session) SetBehavior(b cursor.Behavior) {
	if b == nil {
		return
	}
	s.mu.Lock()
	if s.closed || s.behavior == b {
		s.mu.Unlock()
		return
	}
	s.behavior = b
	s.mu.Unlock()

	s.logger.Debug("selection behavior changed", "editor", s.id, "behavior", b.Name())
	s.publish(events.TopicBehaviorChanged,
		events.BehaviorChanged{EditorID: s.id, Behavior: b.Name()}, s.id)
}

// SetColumns replaces the column model. Cached preferred columns were
// measured with the old model, so they are discarded.
func (s *Session) SetColumns(m column.Model) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.columns == m {
		return
	}
	s.columns = m
	s.tracker.Invalidate()
}

// SetMenu replaces the menu opened by select.to without a count.
func (s *Session) SetMenu(m motion.Menu) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu = m
}

// Dispatch executes a named action against the session.
func (s *Session) Dispatch(action input.Action) handler.Result {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return handler.Error(ErrClosed)
	}
	return s.dispatcher.Dispatch(action)
}

// ApplyConfig adopts the editor, motion and view settings of cfg.
func (s *Session) ApplyConfig(cfg *config.Config) {
	s.SetColumns(cfg.Columns())
	s.SetBehavior(cfg.Behavior())
	s.dispatcher.SetAvoidEOL(cfg.Motion.AvoidEOL)

	s.mu.Lock()
	s.avoidEOL = cfg.Motion.AvoidEOL
	if vp, ok := s.view.(*Viewport); ok {
		vp.ScrollOff = cfg.Motion.ScrollOff
	}
	s.mu.Unlock()

	s.logger.Debug("config applied", "editor", s.id,
		"behavior", cfg.Editor.SelectionBehavior, "tab_size", cfg.Editor.TabSize)
}

// Close releases the tracker subscription. Further motions are rejected.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	s.tracker.Close()
	return nil
}

func (s *Session) envLocked() motion.Env {
	return motion.Env{
		Doc:      s.doc,
		Behavior: s.behavior,
		Columns:  s.columns,
		Tracker:  s.tracker,
		View:     s.view,
		Menu:     s.menu,
		LastEdit: s.doc.LastEdit,
		Logger:   s.logger,
	}
}

func (s *Session) revealLocked() {
	r, ok := s.view.(Revealer)
	if !ok {
		return
	}
	r.Reveal(s.behavior.Cursor(s.doc, s.sels.Primary()).Line, s.doc.LineCount())
}

func (s *Session) publish(topic event.Topic, payload any, source string) {
	var err error
	switch p := payload.(type) {
	case events.SelectionsChanged:
		err = s.bus.Publish(context.Background(), event.NewEvent(topic, p, source))
	case events.BehaviorChanged:
		err = s.bus.Publish(context.Background(), event.NewEvent(topic, p, source))
	}
	if err != nil {
		s.logger.Warn("publish", "topic", string(topic), "err", err)
	}
}
