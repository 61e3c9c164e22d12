package greenthread

import (
	"errors"
	"fmt"
	"sync"

	"github.com/greenthread-go/greenthread/internal/tcb"
)

// ErrPolledAfterResult is the value Poll panics with if it is called
// again after a previous call already returned ready=true and took the
// result.
var ErrPolledAfterResult = errors.New("greenthread: Poll called after result already taken")

// Future runs f on its own green thread, started lazily on the first
// Poll call, and yields its result exactly once.
type Future[T any] struct {
	mu      sync.Mutex
	cfg     config
	closure func() T
	block   *tcb.Block
	taken   bool
}

// New constructs a Future that will run f the first time it is polled.
// f runs entirely inside Poll's call stack, switched onto its own
// stack; it may call Yield or Park to hand control back before it
// returns.
func New[T any](f func() T, opts ...Option) *Future[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Future[T]{cfg: cfg, closure: f}
}

// Poll resumes the future's green thread, registering w as the waker
// it should notify if it parks. It returns ready=true and the
// closure's result exactly once, on whichever call observes the
// thread has exited; callers must stop polling after that.
func (f *Future[T]) Poll(w Waker) (result T, ready bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.taken {
		panic(ErrPolledAfterResult)
	}

	if f.block == nil {
		closure := f.closure
		block, err := tcb.New(f.cfg.stackSize, func() any {
			return closure()
		}, entryPC)
		if err != nil {
			f.taken = true
			panic(fmt.Errorf("greenthread: starting future: %w", err))
		}
		f.block = block
	}

	f.block.Waker = w
	if err := tcb.Resume(f.block); err != nil {
		f.taken = true
		panic(err)
	}

	if f.block.Tag() != tcb.Exited {
		var zero T
		return zero, false
	}

	v, ok := f.block.Take()
	if !ok {
		var zero T
		return zero, false
	}
	f.taken = true
	if closeErr := f.block.Close(); closeErr != nil {
		panic(fmt.Errorf("greenthread: releasing stack: %w", closeErr))
	}
	return v.(T), true
}

// Done reports whether the future has already yielded and had its
// result taken.
func (f *Future[T]) Done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.taken
}
