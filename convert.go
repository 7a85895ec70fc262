package notify

import (
	"errors"
)

// ErrOverflow is the panic value of From when the requested wake count cannot
// be represented as a non-negative int.
var ErrOverflow = errors.New("notify: wake count overflows the platform count width")

// Integer covers the types From accepts as a wake count.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

const maxCount = int(^uint(0) >> 1)

// From converts an integer into a Notify requesting that many listeners be
// notified. It panics with ErrOverflow if the value is negative or does not
// fit in an int; this is the only failure path in the package and it fires
// before any fence or count logic runs.
//
//	notify.From(3).Count(0) == 3
//	notify.From(3).Count(5) == 0
//	notify.From(3).Additional().Count(5) == 3
func From[N Integer](requested N) *Notify {
	if requested < 0 {
		panic(ErrOverflow)
	}
	if uint64(requested) > uint64(maxCount) {
		panic(ErrOverflow)
	}
	return NewNotify(int(requested))
}
