package event

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// Bus delivers events to subscribers synchronously, in the publisher's
// goroutine. Handlers run in priority order, then in subscription order.
type Bus interface {
	Publish(ctx context.Context, event any) error

	Subscribe(topicPattern Topic, handler Handler, opts ...SubscriptionOption) (Subscription, error)
	SubscribeFunc(topicPattern Topic, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error)
	Unsubscribe(sub Subscription) error

	Stats() Stats
}

// Stats contains delivery counters.
type Stats struct {
	EventsPublished   uint64
	EventsDelivered   uint64
	HandlerErrors     uint64
	HandlerPanics     uint64
	ActiveSubscribers int
}

// BusOption configures an event Bus.
type BusOption func(*bus)

// WithErrorHandler sets the function called when a handler fails or panics.
func WithErrorHandler(h ErrorHandler) BusOption {
	return func(b *bus) {
		if h != nil {
			b.onError = h
		}
	}
}

type bus struct {
	mu   sync.RWMutex
	subs map[string]*subscription
	seq  uint64

	onError ErrorHandler

	eventsPublished atomic.Uint64
	eventsDelivered atomic.Uint64
	handlerErrors   atomic.Uint64
	handlerPanics   atomic.Uint64
}

// NewBus creates a new event bus with the given options.
func NewBus(opts ...BusOption) Bus {
	b := &bus{
		subs:    make(map[string]*subscription),
		onError: func(Subscription, any, error) {},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish delivers event to every active subscription whose pattern
// matches the event topic. Handler errors and panics are reported to the
// error handler and never stop delivery to the remaining subscribers.
func (b *bus) Publish(ctx context.Context, event any) error {
	tp, ok := event.(TopicProvider)
	if !ok || tp.EventTopic() == "" {
		return ErrInvalidEvent
	}
	eventTopic := tp.EventTopic()

	subs := b.match(eventTopic)
	b.eventsPublished.Add(1)

	for _, sub := range subs {
		if !sub.accepts(event) {
			continue
		}
		if sub.config.Once {
			sub.Cancel()
			b.remove(sub.id)
		}

		if err := b.deliver(ctx, sub, event); err != nil {
			b.onError(sub, event, err)
			continue
		}
		b.eventsDelivered.Add(1)
	}

	return nil
}

func (b *bus) deliver(ctx context.Context, sub *subscription, event any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.handlerPanics.Add(1)
			err = &PanicError{SubscriptionID: sub.id, Topic: string(sub.topic), Value: r}
		}
	}()

	if herr := sub.handler.Handle(ctx, event); herr != nil {
		b.handlerErrors.Add(1)
		return &HandlerError{SubscriptionID: sub.id, Topic: string(sub.topic), Err: herr}
	}
	return nil
}

// match returns the active subscriptions matching t, sorted for delivery.
func (b *bus) match(t Topic) []*subscription {
	b.mu.RLock()
	matched := make([]*subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if sub.IsActive() && t.Matches(sub.topic) {
			matched = append(matched, sub)
		}
	}
	b.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].config.Priority != matched[j].config.Priority {
			return matched[i].config.Priority < matched[j].config.Priority
		}
		return matched[i].seq < matched[j].seq
	})
	return matched
}

// Subscribe creates a new subscription for the given topic pattern.
// This method is safe to call concurrently.
func (b *bus) Subscribe(topicPattern Topic, handler Handler, opts ...SubscriptionOption) (Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if topicPattern == "" {
		return nil, fmt.Errorf("subscribe: %w", ErrInvalidTopic)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	sub := newSubscription(generateID(), topicPattern, handler, b.seq, opts...)
	b.subs[sub.id] = sub
	return sub, nil
}

// SubscribeFunc is a convenience method for subscribing with a function handler.
func (b *bus) SubscribeFunc(topicPattern Topic, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.Subscribe(topicPattern, fn, opts...)
}

// Unsubscribe cancels and removes a subscription.
func (b *bus) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return ErrInvalidSubscription
	}

	sub.Cancel()
	if !b.remove(sub.ID()) {
		return ErrSubscriptionNotFound
	}
	return nil
}

func (b *bus) remove(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[id]; !ok {
		return false
	}
	delete(b.subs, id)
	return true
}

// Stats returns current bus statistics.
func (b *bus) Stats() Stats {
	b.mu.RLock()
	active := len(b.subs)
	b.mu.RUnlock()

	return Stats{
		EventsPublished:   b.eventsPublished.Load(),
		EventsDelivered:   b.eventsDelivered.Load(),
		HandlerErrors:     b.handlerErrors.Load(),
		HandlerPanics:     b.handlerPanics.Load(),
		ActiveSubscribers: active,
	}
}
