// Package executor provides a small, single-threaded, round-robin
// driver for polling any number of greenthread.Future-shaped values to
// completion, plus a timer-armed Waker for futures that park waiting
// on a deadline rather than an external event.
//
// Executor drives values of the Task interface below, whose Poll
// returns its result as any; a greenthread.Future[T] is spawned through
// a small adapter that erases T to any, so Executor can hold futures of
// different result types in one run queue, the same way a real
// asynchronous runtime multiplexes unrelated task types over one
// reactor loop.
package executor

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Task is anything Executor can drive to completion: Poll behaves
// exactly like greenthread.Future[T].Poll with T erased to any.
type Task interface {
	Poll(w Waker) (result any, ready bool)
}

// Waker is satisfied by greenthread.Waker; Executor hands out its own
// implementation to each task it polls.
type Waker interface {
	Wake()
}

// Executor runs a fixed or growing set of tasks round-robin until all
// of them have reported ready, logging state transitions through a
// zerolog.Logger the way the rest of this module's ambient stack does.
type Executor struct {
	log zerolog.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	tasks   []Task
	results []any
	done    []bool
	ready   map[int]struct{}
}

// New constructs an Executor. A zero Logger (zerolog.Nop()) is fine if
// the caller does not want executor activity logged.
func New(log zerolog.Logger) *Executor {
	e := &Executor{
		log:   log,
		ready: make(map[int]struct{}),
	}
	e.cond = sync.NewCond(&e.mu)
	return e
}

// Spawn registers t to be driven by subsequent RunAll/Step calls and
// returns its index, usable to look the result up later.
func (e *Executor) Spawn(t Task) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := len(e.tasks)
	e.tasks = append(e.tasks, t)
	e.results = append(e.results, nil)
	e.done = append(e.done, false)
	e.ready[idx] = struct{}{}
	e.log.Debug().Int("task", idx).Msg("spawned")
	e.cond.Broadcast()
	return idx
}

// taskWaker marks its task's index ready in the owning executor when
// woken, from whatever goroutine calls Wake.
type taskWaker struct {
	e   *Executor
	idx int
}

func (w taskWaker) Wake() {
	w.e.mu.Lock()
	defer w.e.mu.Unlock()
	if !w.e.done[w.idx] {
		w.e.ready[w.idx] = struct{}{}
		w.e.cond.Broadcast()
	}
}

// Step polls every currently-ready task once, in spawn order, and
// returns the number of tasks that have not yet completed.
func (e *Executor) Step() int {
	e.mu.Lock()
	ready := make([]int, 0, len(e.ready))
	for idx := range e.tasks {
		if _, ok := e.ready[idx]; ok {
			ready = append(ready, idx)
		}
	}
	e.ready = make(map[int]struct{})
	e.mu.Unlock()

	for _, idx := range ready {
		e.pollOne(idx)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	remaining := 0
	for _, d := range e.done {
		if !d {
			remaining++
		}
	}
	return remaining
}

func (e *Executor) pollOne(idx int) {
	e.mu.Lock()
	if e.done[idx] {
		e.mu.Unlock()
		return
	}
	task := e.tasks[idx]
	e.mu.Unlock()

	result, ready := task.Poll(taskWaker{e: e, idx: idx})

	e.mu.Lock()
	defer e.mu.Unlock()
	if ready {
		e.results[idx] = result
		e.done[idx] = true
		e.log.Debug().Int("task", idx).Msg("completed")
	}
}

// RunAll drives every spawned task to completion, round-robin, until
// none remain or ctx is done, then returns each task's result in spawn
// order (nil for any task ctx cut off before it finished).
//
// Between rounds, if every live task is parked rather than marked
// ready, RunAll blocks on its condition variable instead of spinning;
// Wake and Spawn both broadcast on it, and a background goroutine
// broadcasts once more when ctx is done so a cancellation is never
// missed while asleep.
func (e *Executor) RunAll(ctx context.Context) []any {
	stopWatch := make(chan struct{})
	defer close(stopWatch)
	go func() {
		select {
		case <-ctx.Done():
			e.mu.Lock()
			e.cond.Broadcast()
			e.mu.Unlock()
		case <-stopWatch:
		}
	}()

	e.mu.Lock()
	defer e.mu.Unlock()
	for {
		remaining := 0
		for _, d := range e.done {
			if !d {
				remaining++
			}
		}
		if remaining == 0 {
			break
		}
		if ctx.Err() != nil {
			e.log.Warn().Err(ctx.Err()).Msg("run cancelled with tasks still pending")
			break
		}
		if len(e.ready) == 0 {
			e.cond.Wait()
			continue
		}
		e.mu.Unlock()
		e.Step()
		e.mu.Lock()
	}
	return e.snapshotResultsLocked()
}

func (e *Executor) snapshotResultsLocked() []any {
	out := make([]any, len(e.results))
	copy(out, e.results)
	return out
}
