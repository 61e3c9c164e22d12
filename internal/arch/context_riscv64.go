package arch

import "unsafe"

// frameSize covers the twelve callee-saved integer registers the RISC-V
// calling convention guarantees (s0-s11) plus the return address.
const frameSize = 13 * ContextSize

// StackAlign is the alignment the RISC-V calling convention requires of
// sp at a call boundary.
const StackAlign = 16

// EntryOffset is zero: the return address is restored into ra, not read
// off the stack by a hardware RET, so nothing beyond the saved-register
// frame needs reserving.
const EntryOffset = 0

// Switch exchanges the live callee-saved registers with whatever context
// is addressed indirectly through slot. See context_riscv64.s.
//
//go:noescape
func Switch(slot *uintptr)

// CurrentStackPointer returns the live hardware stack pointer.
//
//go:noescape
func CurrentStackPointer() uintptr

// Bootstrap writes a zeroed callee-saved frame ending at top (exclusive)
// whose saved-ra slot holds entry, as though Switch had just pushed it,
// and returns the context pointer to install in context_slot.
func Bootstrap(top, entry uintptr) uintptr {
	base := top - frameSize
	frame := (*[13]uintptr)(unsafe.Pointer(base))
	for i := 0; i < 12; i++ {
		frame[i] = 0 // s11..s0
	}
	frame[12] = entry // ra
	return base
}
