package allocator

import "unsafe"

// Add donates region to h's freelist. The start of region is rounded up
// to unit alignment; the donation is silently rejected if what remains
// after alignment is no more than one unit. Donated memory is kept
// reachable for the life of h, since h's payload pointers alias into it
// and the Go garbage collector has no way to know that on its own.
func (h *Handle) Add(region []byte) {
	if len(region) == 0 {
		return
	}

	base := uintptr(unsafe.Pointer(&region[0]))
	aligned, inc := alignUp(base)
	nbytes := uintptr(len(region))

	if nbytes <= inc+unitSize {
		return
	}

	nunits := (nbytes - inc) / unitSize
	if nunits == 0 {
		return
	}

	hd := headerAt(aligned)
	hd.nunits = nunits

	h.lock.lock()
	h.regions = append(h.regions, region)
	h.lock.unlock()

	h.Free(hd.payload())
}
