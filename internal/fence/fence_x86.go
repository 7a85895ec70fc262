//go:build (amd64 || 386) && !race

package fence

import (
	"sync/atomic"
)

// Full establishes a sequentially consistent barrier: every write made before
// the call is visible to any goroutine that observes a wake signal issued
// after it.
//
// On x86 a lock cmpxchg on a throwaway cell has the effect of a full barrier
// and is empirically a bit cheaper than a dedicated fence instruction. The
// compiler never elides or reorders across sync/atomic calls, so the dummy
// exchange cannot be optimized away.
func Full() {
	var cell uint32
	atomic.CompareAndSwapUint32(&cell, 0, 1)
}
