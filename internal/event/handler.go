package event

import "context"

// Handler processes events delivered by the bus.
type Handler interface {
	Handle(ctx context.Context, event any) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, event any) error

// Handle calls f(ctx, event).
func (f HandlerFunc) Handle(ctx context.Context, event any) error {
	return f(ctx, event)
}

// FilterFunc decides whether an event is delivered to a subscription.
type FilterFunc func(event any) bool

// FromSource returns a filter that accepts only events whose metadata
// source is one of sources.
func FromSource(sources ...string) FilterFunc {
	return func(event any) bool {
		src := SourceOf(event)
		for _, s := range sources {
			if s == src {
				return true
			}
		}
		return false
	}
}

// NotFromSource returns a filter that rejects events published by source.
func NotFromSource(source string) FilterFunc {
	return func(event any) bool {
		return SourceOf(event) != source
	}
}

// ErrorHandler is called when a handler returns an error or panics.
type ErrorHandler func(sub Subscription, event any, err error)
