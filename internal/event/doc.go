// Package event provides the synchronous publish/subscribe bus that
// carries selection-change notifications between an editor session and
// the components that cache state derived from its selections.
//
// Events are typed values (Event[T]) addressed by a hierarchical Topic.
// Publishing runs every matching handler in the caller's goroutine, so a
// subscriber observes a change before Publish returns:
//
//	sub, _ := bus.SubscribeFunc(events.TopicSelectionsChanged,
//	    func(ctx context.Context, ev any) error {
//	        // react to the change
//	        return nil
//	    })
//	defer bus.Unsubscribe(sub)
//
// Handler panics are recovered and reported through the bus error handler.
package event
