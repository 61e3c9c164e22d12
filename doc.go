// Package greenthread bridges a blocking closure and a polling,
// stackless Future/executor model by running the closure on its own,
// independently allocated stack and switching to it cooperatively.
//
// A Future created with New does no work until its first Poll call,
// which bootstraps a thread control block (a size-aligned memory
// region holding the new stack plus a small header) and switches onto
// it. Inside the closure, Yield and Park switch back to the caller —
// Yield asking to be polled again immediately, Park asking to be left
// alone until something calls the Waker handed to the most recent
// Poll. Poll returns the closure's result, exactly once, the first
// time it observes the thread has exited.
//
// The runtime has no heap dependency of its own beyond the stack
// allocator in internal/tcb, and no goroutine, channel, or OS thread is
// created to run a green thread: it executes on whatever goroutine
// calls Poll, for exactly as long as the closure runs between a yield
// or park and the one before it.
package greenthread
