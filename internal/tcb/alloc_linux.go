//go:build linux

package tcb

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// allocateRegion maps a size-aligned, anonymous region of exactly size
// bytes. It over-maps 2*size bytes, trims whatever slack sits on
// either side of the first size-aligned address inside that mapping
// back to the kernel with two partial munmaps, and returns the
// remainder. This is the same over-allocate-then-trim trick most
// page-aligned allocators use when the platform allocator (mmap, here)
// only promises page alignment and the caller needs alignment to a
// coarser, size-dependent boundary.
func allocateRegion(size int) ([]byte, error) {
	big, err := unix.Mmap(-1, 0, 2*size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("greenthread: mmap %d bytes: %w", 2*size, err)
	}

	base := uintptr(unsafe.Pointer(&big[0]))
	aligned := (base + uintptr(size) - 1) &^ (uintptr(size) - 1)
	offset := int(aligned - base)

	if offset > 0 {
		if err := unix.Munmap(big[:offset]); err != nil {
			_ = unix.Munmap(big)
			return nil, fmt.Errorf("greenthread: trim leading slack: %w", err)
		}
	}
	tailStart := offset + size
	if tailStart < len(big) {
		if err := unix.Munmap(big[tailStart:]); err != nil {
			_ = unix.Munmap(big[offset:tailStart])
			return nil, fmt.Errorf("greenthread: trim trailing slack: %w", err)
		}
	}

	return big[offset:tailStart:tailStart], nil
}

// releaseRegion unmaps a region obtained from allocateRegion.
func releaseRegion(region []byte) error {
	if len(region) == 0 {
		return nil
	}
	if err := unix.Munmap(region); err != nil {
		return fmt.Errorf("greenthread: munmap %d bytes: %w", len(region), err)
	}
	return nil
}
