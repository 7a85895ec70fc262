// Package notify decides how blocked listeners get woken: how many to wake,
// what tag each woken listener receives, and what memory barrier must be
// established before any of them is signaled.
//
// A Notification value is built immediately before a single notify operation,
// applied once, and dropped. The wake mechanics themselves (parking, listener
// bookkeeping) live in Event; the policy types in this package never block.
package notify

// Unit is the tag type of notifications that carry no payload.
type Unit = struct{}

// Notification is the policy for one notify operation.
//
// The caller must invoke Fence exactly once, before inspecting or mutating
// any listener state, then Count exactly once with the number of currently
// blocked listeners, then NextTag once per listener being woken, in wake
// order. NextTag may carry mutable state (a generator closure), so a
// Notification must not be shared between goroutines or reused across notify
// operations.
type Notification[T any] interface {
	// Fence establishes the memory barrier that makes the notifying
	// goroutine's prior writes visible to every listener woken afterwards.
	Fence()

	// Count returns the number of listeners to wake, given the number of
	// listeners currently waiting.
	Count(waiting int) int

	// NextTag returns the tag to deliver to the next woken listener. It is
	// expected to be called Count times.
	NextTag() T
}
