// Package arch isolates the one part of the green-thread runtime that is
// genuinely machine-specific: saving and restoring the callee-saved
// register set across a context switch, reading the live stack pointer,
// and bootstrapping a brand-new stack so that the first switch into it
// lands on a chosen entry function.
//
// Each GOARCH gets its own pair of files (context_<arch>.go declaring the
// Go-visible symbols plus Bootstrap, context_<arch>.s implementing Switch
// and CurrentStackPointer in hand-written assembly), following the same
// per-arch split wazero's own CPU feature detection uses
// (internal/platform/cpuid_arm64.go / cpuid_unsupported.go).
// Unrecognized GOARCH values fall back to context_other.go, which panics
// instead of failing the build, so the rest of the module stays portable.
package arch

// FrameSize is the number of bytes Switch's push/pop sequence occupies on
// the current GOARCH: the callee-saved registers plus one resumption
// address word. internal/tcb uses it to size the reserved region at the
// top of every green thread's stack.
const FrameSize = frameSize

// ContextSize is the width, in bytes, of one machine word — the unit
// context_slot, the canary, and the owner back-pointer are stored in.
const ContextSize = 8
