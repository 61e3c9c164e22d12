package greenthread

import "github.com/greenthread-go/greenthread/internal/tcb"

// Waker lets code outside a green thread — typically an executor,
// or whatever eventually satisfies the condition the thread parked
// on — signal that the thread is ready to be polled again.
type Waker interface {
	Wake()
}

// CurrentWaker returns the waker belonging to the most recent Poll
// call on the future currently executing. Call it before Park so the
// thing you are waiting on has a way to bring you back; the returned
// value remains valid for as long as the future it came from does, not
// just for the current poll.
func CurrentWaker() Waker {
	return tcb.Current().Waker
}
