package executor

import "time"

// ArmTimer schedules w.Wake to run once after d elapses and returns a
// function that cancels the timer if the waker turns out not to be
// needed after all (the task it belonged to woke some other way
// first). It is the executor-side counterpart to a green thread that
// parks waiting on a deadline: the thread calls Park after arming a
// timer on its own CurrentWaker, rather than sleeping inline and
// blocking whatever goroutine is driving the executor.
func ArmTimer(d time.Duration, w Waker) (cancel func() bool) {
	t := time.AfterFunc(d, w.Wake)
	return t.Stop
}
