package tcb

import "fmt"

// Tag identifies which of the four states a Block currently occupies.
// Ready -> Running -> Exited -> Invalid is the only legal forward
// progression; no other transition is valid. A yield or park switches
// control back to the executor without advancing the tag at all — the
// block is still Running, in the sense that its one and only
// resumption has simply not finished yet — and Resume re-asserts
// Running on every poll rather than relying on that to already hold.
type Tag uint32

const (
	// Ready holds a closure that has never been entered.
	Ready Tag = iota
	// Running means the block has been entered and has not yet exited,
	// whether or not a Switch into its stack is live at this instant:
	// a yielded or parked block is still Running.
	Running
	// Exited holds a closure's return value; it may be taken exactly once.
	Exited
	// Invalid means the return value has already been taken. Any
	// further operation on it is a caller bug.
	Invalid
)

func (t Tag) String() string {
	switch t {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Exited:
		return "exited"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("tcb.Tag(%d)", uint32(t))
	}
}

// CanaryError reports that a green thread's stack guard word no longer
// holds its expected value, meaning the thread ran past the stack
// budget it was given. It is unrecoverable: the memory beyond the
// guard may belong to the header or to an unrelated allocation.
type CanaryError struct {
	Want, Got uintptr
}

func (e *CanaryError) Error() string {
	return fmt.Sprintf("greenthread: stack overflow detected (canary want %#x, got %#x)", e.Want, e.Got)
}
