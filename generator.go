package notify

// Generator produces the tag for one woken listener. TagWith invokes it once
// per listener, always from the notifying goroutine, so it may freely mutate
// captured state between calls.
type Generator[T any] func() T
