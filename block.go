// Package allocator implements a K&R-style next-fit freelist allocator
// over caller-donated memory regions, with coalescing on free and a
// spinlock guarding every public operation. It allocates nothing from
// the Go heap beyond what callers hand it via Add.
package allocator

import "unsafe"

// header prefixes every free block. Its size fixes the allocator's unit:
// all block sizes and offsets are expressed in multiples of unitSize.
type header struct {
	nunits uintptr
	next   *header
}

// unitSize is the granularity of every block. Because header is two
// machine words, it is at least as aligned as any primitive type on the
// architectures this package targets, so any unit-aligned address is
// safe to hand out as a payload pointer.
const unitSize = unsafe.Sizeof(header{})

// headerOf returns the header owning a payload pointer returned by Alloc.
// It is the sole metadata lookup and runs in O(1), one unit before ptr.
func headerOf(ptr unsafe.Pointer) *header {
	return (*header)(unsafe.Pointer(uintptr(ptr) - unitSize))
}

// payload returns the byte range immediately following h, handed to callers.
func (h *header) payload() unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(h), unitSize)
}

// addr is h's own address, used for the ascending-order comparisons the
// freelist walk and coalescing checks are built on.
func (h *header) addr() uintptr {
	return uintptr(unsafe.Pointer(h))
}

// end is the address one byte past h's block.
func (h *header) end() uintptr {
	return h.addr() + h.nunits*unitSize
}

// headerAt reinterprets an address as a header. Callers must ensure the
// address lies within a region previously donated via Add.
func headerAt(addr uintptr) *header {
	return (*header)(unsafe.Pointer(addr))
}

// advance returns the header n units past h, used when splitting a block:
// the tail n units past the (shrunk) head becomes the allocated block.
func (h *header) advance(n uintptr) *header {
	return headerAt(h.addr() + n*unitSize)
}

// ceilUnits rounds nbytes up to a whole number of units and adds one for
// the header, returning false if either step would overflow uintptr.
func ceilUnits(nbytes uintptr) (units uintptr, ok bool) {
	maxUintptr := ^uintptr(0)
	if nbytes > maxUintptr-(unitSize-1) {
		return 0, false
	}

	rounded := (nbytes + unitSize - 1) / unitSize
	if rounded == maxUintptr {
		return 0, false
	}

	return rounded + 1, true
}

// alignUp rounds addr up to the next multiple of unitSize, returning the
// aligned address and the number of bytes added to reach it.
func alignUp(addr uintptr) (aligned uintptr, inc uintptr) {
	inc = (unitSize - addr%unitSize) % unitSize

	return addr + inc, inc
}
