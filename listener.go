package notify

import (
	"context"
)

// Listener is one blocked consumer registered with an Event. A listener is
// woken at most once; after it yields a tag it is spent.
type Listener[T any] struct {
	event *Event[T]
	ready chan T
}

// Ready returns the channel the listener's tag arrives on, for use in select
// statements. Receives at most one value.
func (this *Listener[T]) Ready() <-chan T {
	return this.ready
}

// Wait blocks until the listener is woken and returns the delivered tag.
func (this *Listener[T]) Wait() T {
	return <-this.ready
}

// WaitContext blocks until the listener is woken or ctx is done. On
// cancellation the listener is withdrawn from the event so it no longer
// counts as waiting; if a wake claimed it first, the wake wins and the tag is
// returned.
func (this *Listener[T]) WaitContext(ctx context.Context) (T, error) {
	select {
	case tag := <-this.ready:
		return tag, nil
	case <-ctx.Done():
		if this.event.remove(this) {
			var zero T
			return zero, ctx.Err()
		}
		return <-this.ready, nil
	}
}
