package greenthread_test

import (
	"fmt"

	"github.com/greenthread-go/greenthread"
)

// pollToCompletion is the simplest possible driver: it has no way to
// notice a Park, so it only works for futures that only ever Yield.
// A real caller plugs this role with internal/executor.Executor, or
// its own reactor loop, instead.
type spinWaker struct{}

func (spinWaker) Wake() {}

func pollToCompletion[T any](f *greenthread.Future[T]) T {
	for {
		v, ready := f.Poll(spinWaker{})
		if ready {
			return v
		}
	}
}

func Example() {
	f := greenthread.New(func() int {
		sum := 0
		for i := 1; i <= 3; i++ {
			sum += i
			greenthread.Yield()
		}
		return sum
	})

	fmt.Println(pollToCompletion(f))
	// Output: 6
}
