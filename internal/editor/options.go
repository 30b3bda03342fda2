package editor

import (
	"github.com/charmbracelet/log"

	"github.com/dshills/stride/internal/engine/column"
	"github.com/dshills/stride/internal/engine/cursor"
	"github.com/dshills/stride/internal/event"
	"github.com/dshills/stride/internal/motion"
)

// Option configures a Session.
type Option func(*Session)

// WithBus sets the event bus. Without one the session creates its own.
func WithBus(bus event.Bus) Option {
	return func(s *Session) {
		if bus != nil {
			s.bus = bus
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBehavior sets the initial selection behavior.
func WithBehavior(b cursor.Behavior) Option {
	return func(s *Session) {
		if b != nil {
			s.behavior = b
		}
	}
}

// WithColumns sets the column model.
func WithColumns(m column.Model) Option {
	return func(s *Session) {
		s.columns = m
	}
}

// WithView sets the view used by page and visible-line motions. A view
// that also implements Revealer is scrolled to follow the primary cursor.
func WithView(v motion.View) Option {
	return func(s *Session) {
		s.view = v
	}
}

// WithMenu sets the menu opened by select.to without a count.
func WithMenu(m motion.Menu) Option {
	return func(s *Session) {
		s.menu = m
	}
}

// WithAvoidEOL sets the default AvoidEOL for dispatched actions.
func WithAvoidEOL(avoid bool) Option {
	return func(s *Session) {
		s.avoidEOL = avoid
	}
}

// WithSelections sets the initial selections. They are clamped to the
// document.
func WithSelections(sels ...cursor.Selection) Option {
	return func(s *Session) {
		s.initial = append([]cursor.Selection(nil), sels...)
	}
}

// WithID sets the session ID instead of generating one.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}
