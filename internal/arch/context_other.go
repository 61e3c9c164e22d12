//go:build !amd64 && !arm64 && !riscv64

package arch

// frameSize has no meaningful value on an unported GOARCH; Bootstrap and
// Switch panic before it would ever be used to size anything.
const frameSize = 0

// StackAlign falls back to the widest alignment any of the ported
// architectures needs, so callers that size a stack before calling
// Bootstrap don't also need a build-tagged constant.
const StackAlign = 16

// EntryOffset is unused on an unported GOARCH.
const EntryOffset = 0

// Switch panics: this GOARCH has no hand-written context-switch routine.
// Ports live in context_amd64.s, context_arm64.s and context_riscv64.s;
// add a context_<arch>.go/.s pair here to support another one.
func Switch(slot *uintptr) {
	panic("greenthread/internal/arch: unsupported GOARCH")
}

// CurrentStackPointer panics for the same reason as Switch.
func CurrentStackPointer() uintptr {
	panic("greenthread/internal/arch: unsupported GOARCH")
}

// Bootstrap panics for the same reason as Switch.
func Bootstrap(top, entry uintptr) uintptr {
	panic("greenthread/internal/arch: unsupported GOARCH")
}
