package arch

import "unsafe"

// frameSize covers the eleven callee-saved GPRs AAPCS64 guarantees
// (x19-x29) plus the link register, saved and restored as six pairs.
const frameSize = 12 * ContextSize

// StackAlign is the alignment AAPCS64 requires of SP at all times.
const StackAlign = 16

// EntryOffset is zero: aarch64 keeps the resumption address in the link
// register, not on the stack, so nothing needs to be reserved beyond the
// saved-register frame itself.
const EntryOffset = 0

// Switch exchanges the live callee-saved registers with whatever context
// is addressed indirectly through slot. See context_arm64.s.
//
//go:noescape
func Switch(slot *uintptr)

// CurrentStackPointer returns the live hardware stack pointer.
//
//go:noescape
func CurrentStackPointer() uintptr

// Bootstrap writes a zeroed callee-saved frame ending at top (exclusive)
// whose link-register slot holds entry, as though Switch had just pushed
// it, and returns the context pointer to install in context_slot.
func Bootstrap(top, entry uintptr) uintptr {
	base := top - frameSize
	frame := (*[12]uintptr)(unsafe.Pointer(base))
	for i := 0; i < 11; i++ {
		frame[i] = 0 // x19..x29
	}
	frame[11] = entry // lr
	return base
}
