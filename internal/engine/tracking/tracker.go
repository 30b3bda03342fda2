package tracking

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/dshills/stride/internal/engine/cursor"
	"github.com/dshills/stride/internal/event"
	"github.com/dshills/stride/internal/event/events"
)

// Invalidation reasons reported in logs.
const (
	ReasonDiverged = "selections diverged"
	ReasonBehavior = "selection behavior changed"
	ReasonExplicit = "invalidated"
	ReasonClosed   = "editor closed"
)

// State is the preferred-column cache of one editor.
type State struct {
	columns  []int
	expected []cursor.Selection
	sub      event.Subscription
}

// Column returns the desired column for the selection at index i.
// The second result is false when the cache holds no entry for i.
func (s *State) Column(i int) (int, bool) {
	if s == nil || i < 0 || i >= len(s.columns) {
		return 0, false
	}
	return s.columns[i], true
}

// Len returns the number of cached columns.
func (s *State) Len() int {
	if s == nil {
		return 0
	}
	return len(s.columns)
}

// Expected returns a copy of the selections the cache is valid for.
func (s *State) Expected() []cursor.Selection {
	if s == nil {
		return nil
	}
	return append([]cursor.Selection(nil), s.expected...)
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger used for cache lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.logger = l
		}
	}
}

// Tracker owns the preferred-column state of a single editor.
// It is not safe for concurrent use; event handlers run synchronously in
// the goroutine that publishes the selection change.
type Tracker struct {
	editorID string
	bus      event.Bus
	logger   *log.Logger
	state    *State
}

// New creates a tracker for the editor identified by editorID. bus may be
// nil, in which case only the synchronous checks in Ensure invalidate the
// cache.
func New(editorID string, bus event.Bus, opts ...Option) *Tracker {
	t := &Tracker{
		editorID: editorID,
		bus:      bus,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Active returns true if a preferred-column cache currently exists.
func (t *Tracker) Active() bool {
	return t.state != nil
}

// State returns the current cache, or nil.
func (t *Tracker) State() *State {
	return t.state
}

// Ensure returns the cache for selections, creating it when none exists.
// A cache whose expected selections differ from selections is discarded
// first. New caches are seeded with desired(sel) for every selection.
func (t *Tracker) Ensure(selections []cursor.Selection, desired func(cursor.Selection) int) *State {
	if t.state != nil && !cursor.EqualSelections(t.state.expected, selections) {
		t.invalidate(ReasonDiverged)
	}
	if t.state != nil {
		return t.state
	}

	st := &State{
		columns:  make([]int, len(selections)),
		expected: append([]cursor.Selection(nil), selections...),
	}
	for i, sel := range selections {
		st.columns[i] = desired(sel)
	}
	st.sub = t.subscribe()
	t.state = st

	t.logger.Debug("preferred columns seeded", "editor", t.editorID, "selections", len(selections))
	return st
}

// RecordExpected stores the selections a vertical motion produced. The
// cache stays valid only while the live selections equal them.
func (t *Tracker) RecordExpected(selections []cursor.Selection) {
	if t.state == nil {
		return
	}
	t.state.expected = append([]cursor.Selection(nil), selections...)
}

// Invalidate discards the cache, if any.
func (t *Tracker) Invalidate() {
	t.invalidate(ReasonExplicit)
}

// Close discards the cache and releases the event subscription.
func (t *Tracker) Close() {
	t.invalidate(ReasonClosed)
}

func (t *Tracker) invalidate(reason string) {
	st := t.state
	if st == nil {
		return
	}
	t.state = nil

	if st.sub != nil && t.bus != nil {
		if err := t.bus.Unsubscribe(st.sub); err != nil {
			t.logger.Warn("release preferred column subscription", "editor", t.editorID, "err", err)
		}
		st.sub = nil
	}

	t.logger.Debug("preferred columns discarded", "editor", t.editorID, "reason", reason)
}

func (t *Tracker) subscribe() event.Subscription {
	if t.bus == nil {
		return nil
	}

	sub, err := t.bus.SubscribeFunc("cursor.**", t.handle, event.WithPriority(event.PriorityCritical))
	if err != nil {
		t.logger.Warn("subscribe to selection changes", "editor", t.editorID, "err", err)
		return nil
	}
	return sub
}

func (t *Tracker) handle(_ context.Context, ev any) error {
	switch e := ev.(type) {
	case event.Event[events.SelectionsChanged]:
		if e.Payload.EditorID != t.editorID || t.state == nil {
			return nil
		}
		if !cursor.EqualSelections(t.state.expected, e.Payload.Selections) {
			t.invalidate(ReasonDiverged)
		}
	case event.Event[events.BehaviorChanged]:
		if e.Payload.EditorID == t.editorID {
			t.invalidate(ReasonBehavior)
		}
	}
	return nil
}
