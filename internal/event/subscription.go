package event

import "sync/atomic"

// Priority orders handlers of one event. Lower values run first.
type Priority int

const (
	// PriorityCritical runs before everything else. The preferred-column
	// tracker subscribes at this priority.
	PriorityCritical Priority = 0

	// PriorityNormal is the default priority.
	PriorityNormal Priority = 200

	// PriorityLow runs last.
	PriorityLow Priority = 300
)

// Subscription represents an event subscription.
type Subscription interface {
	// ID returns the unique subscription identifier.
	ID() string

	// Topic returns the subscribed topic pattern.
	Topic() Topic

	// IsActive reports whether the subscription still receives events.
	IsActive() bool

	// Cancel permanently cancels the subscription.
	Cancel()
}

// SubscriptionConfig holds the settings of one subscription.
type SubscriptionConfig struct {
	// Priority determines execution order (lower values execute first).
	Priority Priority

	// Filter is an optional predicate to filter events.
	Filter FilterFunc

	// Once cancels the subscription after its first delivery.
	Once bool
}

// SubscriptionOption is a function that configures a subscription.
type SubscriptionOption func(*SubscriptionConfig)

// WithPriority sets the subscription priority.
func WithPriority(p Priority) SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Priority = p
	}
}

// WithFilter sets a filter predicate.
func WithFilter(f FilterFunc) SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Filter = f
	}
}

// WithOnce sets the subscription to auto-cancel after the first event.
func WithOnce() SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Once = true
	}
}

type subscription struct {
	id      string
	topic   Topic
	handler Handler
	config  SubscriptionConfig
	seq     uint64
	done    atomic.Bool
}

func newSubscription(id string, t Topic, h Handler, seq uint64, opts ...SubscriptionOption) *subscription {
	config := SubscriptionConfig{Priority: PriorityNormal}
	for _, opt := range opts {
		opt(&config)
	}

	return &subscription{
		id:      id,
		topic:   t,
		handler: h,
		config:  config,
		seq:     seq,
	}
}

func (s *subscription) ID() string { return s.id }

func (s *subscription) Topic() Topic { return s.topic }

func (s *subscription) IsActive() bool { return !s.done.Load() }

func (s *subscription) Cancel() { s.done.Store(true) }

func (s *subscription) accepts(event any) bool {
	return s.IsActive() && (s.config.Filter == nil || s.config.Filter(event))
}
