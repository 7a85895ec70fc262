package notify

// Relaxed wraps a notification and suppresses its fence. Use it when the
// mutation that triggered the notification was already published with a
// sufficient ordering, so no extra barrier is needed before waking.
type Relaxed[T any] struct {
	inner Notification[T]
}

func NewRelaxed[T any](inner Notification[T]) *Relaxed[T] {
	var r = &Relaxed[T]{}
	r.inner = inner
	return r
}

func (this *Relaxed[T]) Fence() {
	// Don't emit a fence.
}

func (this *Relaxed[T]) Count(waiting int) int {
	return this.inner.Count(waiting)
}

func (this *Relaxed[T]) NextTag() T {
	return this.inner.NextTag()
}

// Relaxed returns a further relaxed wrapper. The fence is already suppressed,
// so this only exists to keep the builder surface uniform.
func (this *Relaxed[T]) Relaxed() *Relaxed[T] {
	return NewRelaxed[T](this)
}

// Tag wraps a payload-free notification and delivers a copy of a fixed value
// to every woken listener.
type Tag[T any] struct {
	tag   T
	inner Notification[Unit]
}

func NewTag[T any](tag T, inner Notification[Unit]) *Tag[T] {
	var t = &Tag[T]{}
	t.tag = tag
	t.inner = inner
	return t
}

func (this *Tag[T]) Fence() {
	this.inner.Fence()
}

func (this *Tag[T]) Count(waiting int) int {
	return this.inner.Count(waiting)
}

func (this *Tag[T]) NextTag() T {
	return this.tag
}

// Relaxed suppresses the fence of this notification.
func (this *Tag[T]) Relaxed() *Relaxed[T] {
	return NewRelaxed[T](this)
}

// TagWith wraps a payload-free notification and invokes a generator once per
// woken listener, delivering each result to one listener. The generator runs
// on the notifying goroutine, in wake order, and may carry state between
// calls.
type TagWith[T any] struct {
	generator Generator[T]
	inner     Notification[Unit]
}

func NewTagWith[T any](generator Generator[T], inner Notification[Unit]) *TagWith[T] {
	var t = &TagWith[T]{}
	t.generator = generator
	t.inner = inner
	return t
}

func (this *TagWith[T]) Fence() {
	this.inner.Fence()
}

func (this *TagWith[T]) Count(waiting int) int {
	return this.inner.Count(waiting)
}

func (this *TagWith[T]) NextTag() T {
	return this.generator()
}

// Relaxed suppresses the fence of this notification.
func (this *TagWith[T]) Relaxed() *Relaxed[T] {
	return NewRelaxed[T](this)
}
