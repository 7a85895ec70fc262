package notify

import (
	"sync"
)

// Event is a reference wait-queue engine for the notification policies in
// this package: it tracks blocked listeners and applies one Notification per
// Notify call. Listeners are woken in the order they started listening.
type Event[T any] struct {
	mu        *sync.Mutex
	listeners []*Listener[T]
}

func NewEvent[T any]() *Event[T] {
	var event = &Event[T]{}
	event.mu = &sync.Mutex{}
	return event
}

// Listen registers the calling goroutine's interest in the next notification
// and returns the listener to wait on. Register before checking the condition
// you are waiting for, or a wake issued in between will be missed.
func (this *Event[T]) Listen() *Listener[T] {
	var listener = &Listener[T]{}
	listener.event = this
	listener.ready = make(chan T, 1)

	this.mu.Lock()
	this.listeners = append(this.listeners, listener)
	this.mu.Unlock()
	return listener
}

// Waiting reports the number of currently blocked listeners.
func (this *Event[T]) Waiting() int {
	this.mu.Lock()
	defer this.mu.Unlock()

	return len(this.listeners)
}

// Notify applies a notification to the currently blocked listeners: it runs
// the fence, asks the notification how many listeners to wake, then delivers
// one freshly produced tag to each of them. The notification must not be
// reused afterwards. Returns the number of listeners actually woken, which is
// capped at the number waiting.
func (this *Event[T]) Notify(notification Notification[T]) int {
	notification.Fence()

	this.mu.Lock()
	var count = notification.Count(len(this.listeners))
	if count > len(this.listeners) {
		count = len(this.listeners)
	}
	var woken = this.listeners[:count]
	this.listeners = this.listeners[count:]
	this.mu.Unlock()

	for _, listener := range woken {
		// The buffered send stores the tag in the listener's result slot and
		// signals it in one step; the sender never blocks.
		listener.ready <- notification.NextTag()
	}
	return count
}

func (this *Event[T]) remove(listener *Listener[T]) bool {
	this.mu.Lock()
	defer this.mu.Unlock()

	var found = -1
	for i, current := range this.listeners {
		if current == listener {
			found = i
		}
	}

	if found >= 0 {
		this.listeners = append(this.listeners[:found], this.listeners[found+1:]...)
		return true
	}
	return false
}
