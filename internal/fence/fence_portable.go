//go:build (!amd64 && !386) || race

package fence

import (
	"sync/atomic"
)

var cell uint32

// Full establishes a sequentially consistent barrier: every write made before
// the call is visible to any goroutine that observes a wake signal issued
// after it.
//
// A sequentially consistent read-modify-write is the closest Go analogue of a
// standalone SeqCst fence. The race detector always takes this path, on every
// architecture, so the synchronization stays visible to its happens-before
// tracking; the cell must be package level for the same reason.
func Full() {
	atomic.AddUint32(&cell, 0)
}
