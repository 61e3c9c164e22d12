package arch

import "unsafe"

// frameSize covers the six callee-saved GPRs the System V / Go amd64
// calling convention lets a function assume survive a call (BX, BP,
// R12-R15) plus the return-address word consumed by RET.
const frameSize = 7 * ContextSize

// StackAlign is the alignment the amd64 ABI requires at a call boundary.
const StackAlign = 16

// EntryOffset accounts for RET's implicit consumption of the
// return-address word: after Bootstrap's frame is unwound, the entry
// function starts executing with SP already advanced past it, so the
// block's usable top must sit 8 bytes short of a 16-byte boundary to
// land the same way an ordinary `call` would.
const EntryOffset = 8

// Switch exchanges the live callee-saved registers with whatever context
// is addressed indirectly through slot. See context_amd64.s: it pushes
// BX, BP, R12-R15 onto the current stack, swaps *slot with the resulting
// stack pointer, switches the stack pointer to the old value of *slot,
// then pops the same six registers back off. Control returns to the
// caller once some other Switch call names this stack's slot in turn.
//
//go:noescape
func Switch(slot *uintptr)

// CurrentStackPointer returns the live hardware stack pointer.
//
//go:noescape
func CurrentStackPointer() uintptr

// Bootstrap writes a zeroed callee-saved frame ending at top (exclusive)
// whose return-address slot holds entry, as though Switch had just
// pushed it, and returns the context pointer to install in context_slot
// so the next Switch into it starts executing at entry with the rest of
// the callee-saved registers zero-initialized.
func Bootstrap(top, entry uintptr) uintptr {
	base := top - frameSize
	frame := (*[7]uintptr)(unsafe.Pointer(base))
	frame[0] = 0 // R15
	frame[1] = 0 // R14
	frame[2] = 0 // R13
	frame[3] = 0 // R12
	frame[4] = 0 // BP
	frame[5] = 0 // BX
	frame[6] = entry
	return base
}
