// Package fence emits the full memory barrier required before a notification
// wakes any listener. The barrier pairs with the acquire side performed by
// each woken listener when it observes its wake signal.
package fence
