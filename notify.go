package notify

import (
	"github.com/smartwalle/notify/internal/fence"
)

// Notify wakes listeners until at least the requested number have ever been
// notified, counting those already waiting. With 2 listeners waiting,
// NewNotify(5) wakes 3 more.
type Notify struct {
	requested int
}

func NewNotify(requested int) *Notify {
	var n = &Notify{}
	n.requested = requested
	return n
}

func (this *Notify) Fence() {
	fence.Full()
}

func (this *Notify) Count(waiting int) int {
	if waiting >= this.requested {
		return 0
	}
	return this.requested - waiting
}

func (this *Notify) NextTag() Unit {
	return Unit{}
}

// Additional reinterprets the requested count as "exactly this many more",
// regardless of how many listeners are already waiting.
func (this *Notify) Additional() *NotifyAdditional {
	return NewNotifyAdditional(this.Count(0))
}

// Relaxed suppresses the fence of this notification.
func (this *Notify) Relaxed() *Relaxed[Unit] {
	return NewRelaxed[Unit](this)
}

// NotifyAdditional wakes exactly the requested number of listeners, ignoring
// how many are already waiting.
type NotifyAdditional struct {
	requested int
}

func NewNotifyAdditional(requested int) *NotifyAdditional {
	var n = &NotifyAdditional{}
	n.requested = requested
	return n
}

func (this *NotifyAdditional) Fence() {
	fence.Full()
}

func (this *NotifyAdditional) Count(waiting int) int {
	return this.requested
}

func (this *NotifyAdditional) NextTag() Unit {
	return Unit{}
}

// Relaxed suppresses the fence of this notification.
func (this *NotifyAdditional) Relaxed() *Relaxed[Unit] {
	return NewRelaxed[Unit](this)
}
