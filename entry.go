package greenthread

import (
	"reflect"

	"github.com/greenthread-go/greenthread/internal/tcb"
)

// greenThreadEntry is the single concrete function every bootstrapped
// stack resumes into for the first time. It recovers the block it is
// running on via self-location, runs the closure that block was
// constructed with, and records the result.
//
// Every green thread in the process shares this one entry point; what
// varies between them is only the closure stashed in the block's
// Closure field, not the machine code resumed into. This is also why
// the type-erased Closure func() any exists at all: Go has no way to
// take the raw code address of an arbitrary closure value the way a
// systems language can take a function pointer, so the boundary
// between "the one entry function assembly can jump to" and "the
// arbitrary user closure" has to live in ordinary, GC-visible Go data
// instead of in the bootstrapped machine code itself.
//
// Resuming into greenThreadEntry this way sidesteps the normal Go call
// path: there is no CALL instruction setting up the frame the runtime
// expects, so the usual per-call stack-growth check and precise GC
// stack scanning for this frame do not run. greenThreadEntry and
// anything it calls must therefore avoid deep recursion or large
// on-stack allocations relative to the stack size the Future was
// configured with; CheckCanary is the backstop if one does.
func greenThreadEntry() {
	b := tcb.Current()
	result := b.Closure()
	b.Finish(result)

	// Finish leaves the block Exited; the only correct continuation is
	// switching back to the executor so Poll can observe that and take
	// the result. A block is never resumed again once Exited, so this
	// should not run more than once, but loop rather than fall off the
	// end of the function if some caller violates that.
	for {
		b.SwitchOut()
	}
}

// entryPC is the machine address Bootstrap installs as the first
// instruction a fresh stack resumes at. reflect.Value.Pointer is the
// only portable way user code can obtain a top-level Go function's
// code address without a matching call site already in hand; it is
// documented to return exactly that for non-method, non-closure funcs,
// which greenThreadEntry is.
var entryPC = reflect.ValueOf(greenThreadEntry).Pointer()
