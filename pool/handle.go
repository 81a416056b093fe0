package pool

import "fmt"

// Handle identifies a slot in a Pool[T]. The generation lives in the upper 32 bits and
// the slot index in the lower 32 bits. The zero Handle never refers to a live slot.
type Handle[T any] uint64

// NewHandle creates a Handle from a slot index and generation
func NewHandle[T any](index uint32, generation uint32) Handle[T] {
	return Handle[T](uint64(generation)<<32 | uint64(index))
}

// None returns the zero Handle for T.
func None[T any]() Handle[T] {
	return 0
}

// Index extracts the slot index from the handle
func (h Handle[T]) Index() uint32 {
	return uint32(h & 0xFFFFFFFF)
}

// Generation extracts the slot generation from the handle
func (h Handle[T]) Generation() uint32 {
	return uint32(h >> 32)
}

// IsNone reports whether h is the zero Handle.
func (h Handle[T]) IsNone() bool {
	return h == 0
}

func (h Handle[T]) String() string {
	if h.IsNone() {
		return "Handle(none)"
	}
	return fmt.Sprintf("Handle(%d:%d)", h.Index(), h.Generation())
}

// InvalidHandleError is the panic value raised when a handle does not resolve.
// It signals a command or view holding on to a handle past the life of its slot.
type InvalidHandleError struct {
	Type       string
	Index      uint32
	Generation uint32
	Reason     string
}

func (e *InvalidHandleError) Error() string {
	return fmt.Sprintf("pool: invalid %s handle %d:%d: %s", e.Type, e.Index, e.Generation, e.Reason)
}
