package greenthread_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greenthread-go/greenthread"
)

// noopWaker satisfies greenthread.Waker without doing anything; these
// tests drive Poll by hand rather than through an executor.
type noopWaker struct{}

func (noopWaker) Wake() {}

func TestFutureRunsToCompletionWithoutYielding(t *testing.T) {
	f := greenthread.New(func() int { return 7 })

	v, ready := f.Poll(noopWaker{})
	require.True(t, ready)
	require.Equal(t, 7, v)
	require.True(t, f.Done())
}

func TestFutureYieldsOnceBeforeReturning(t *testing.T) {
	var ran []string
	f := greenthread.New(func() string {
		ran = append(ran, "before")
		greenthread.Yield()
		ran = append(ran, "after")
		return "done"
	})

	_, ready := f.Poll(noopWaker{})
	require.False(t, ready)
	require.Equal(t, []string{"before"}, ran)

	v, ready := f.Poll(noopWaker{})
	require.True(t, ready)
	require.Equal(t, "done", v)
	require.Equal(t, []string{"before", "after"}, ran)
}

func TestTwoFuturesInterleaveOneStepAtATime(t *testing.T) {
	var trace []string

	mk := func(name string) *greenthread.Future[struct{}] {
		return greenthread.New(func() struct{} {
			trace = append(trace, name+".1")
			greenthread.Yield()
			trace = append(trace, name+".2")
			return struct{}{}
		})
	}

	a := mk("a")
	b := mk("b")

	_, aReady := a.Poll(noopWaker{})
	_, bReady := b.Poll(noopWaker{})
	require.False(t, aReady)
	require.False(t, bReady)

	_, aReady = a.Poll(noopWaker{})
	_, bReady = b.Poll(noopWaker{})
	require.True(t, aReady)
	require.True(t, bReady)

	require.Equal(t, []string{"a.1", "b.1", "a.2", "b.2"}, trace)
}

type recordingWaker struct{ woken *bool }

func (r recordingWaker) Wake() { *r.woken = true }

func TestParkDoesNotWakeItsOwnWaker(t *testing.T) {
	var woken bool
	f := greenthread.New(func() int {
		greenthread.Park()
		return 1
	})

	_, ready := f.Poll(recordingWaker{woken: &woken})
	require.False(t, ready)
	require.False(t, woken, "park must not self-wake the way yield does")
}

func TestYieldWakesTheSuppliedWaker(t *testing.T) {
	var woken bool
	f := greenthread.New(func() int {
		greenthread.Yield()
		return 1
	})

	_, ready := f.Poll(recordingWaker{woken: &woken})
	require.False(t, ready)
	require.True(t, woken)
}

func TestPollAfterResultTakenPanics(t *testing.T) {
	f := greenthread.New(func() int { return 1 })
	_, ready := f.Poll(noopWaker{})
	require.True(t, ready)

	require.PanicsWithError(t, greenthread.ErrPolledAfterResult.Error(), func() {
		f.Poll(noopWaker{})
	})
}

// TestWithStackSizeOverridesTheDefault picks an override close to, but
// not equal to, defaultStackSize: every Future in a process must
// round up to the same power-of-two region size (see
// internal/tcb.New), and this test binary's other cases all run
// against the default. Overriding to a value in the same rounded
// bucket still proves the option reaches tcb.New and the future runs
// correctly under it, without tripping that process-wide invariant
// against whichever other test happens to run first.
func TestWithStackSizeOverridesTheDefault(t *testing.T) {
	f := greenthread.New(func() int {
		greenthread.Yield()
		return 9
	}, greenthread.WithStackSize(300*1024))

	_, ready := f.Poll(noopWaker{})
	require.False(t, ready)

	v, ready := f.Poll(noopWaker{})
	require.True(t, ready)
	require.Equal(t, 9, v)
}

func TestCurrentWakerInsideClosureMatchesThePollerSWaker(t *testing.T) {
	var sawSame bool
	w := noopWaker{}
	f := greenthread.New(func() int {
		got := greenthread.CurrentWaker()
		sawSame = got == greenthread.Waker(w)
		return 0
	})

	_, ready := f.Poll(w)
	require.True(t, ready)
	require.True(t, sawSame)
}
