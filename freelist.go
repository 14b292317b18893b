package allocator

import "unsafe"

// Handle is an allocator instance: a freelist cursor and the lock that
// guards it. The zero value is a valid, empty handle, matching spec's
// default-constructed state (nil cursor, unlocked). All fields are
// unexported; Handle is opaque to callers.
type Handle struct {
	lock    spinlock
	p       *header
	regions [][]byte // pins donated backing arrays against the GC
}

// New returns a fresh, empty allocator handle.
func New() *Handle {
	return &Handle{}
}

// Alloc returns a pointer to at least n bytes of payload, or nil if no
// free block is large enough. Search resumes where the previous search
// left off (next-fit): the freelist cursor p doubles as the search
// origin and as a locality hint after the previous call.
func (h *Handle) Alloc(n int) unsafe.Pointer {
	if n <= 0 {
		return nil
	}

	nunits, ok := ceilUnits(uintptr(n))
	if !ok {
		return nil
	}

	h.lock.lock()
	defer h.lock.unlock()

	if h.p == nil {
		return nil
	}

	prev := h.p
	cur := prev.next

	for {
		if cur.nunits >= nunits {
			if cur.nunits == nunits {
				if prev.next != cur.next {
					prev.next = cur.next
					h.p = prev
				} else { // freelist was a singleton
					h.p = nil
				}
			} else { // allocate from the tail of cur
				cur.nunits -= nunits
				cur = cur.advance(cur.nunits)
				cur.nunits = nunits
				h.p = prev
			}

			return cur.payload()
		}

		if cur == h.p { // wrapped around without a match
			return nil
		}

		prev, cur = cur, cur.next
	}
}

// Free returns ptr's block to h's freelist, coalescing with either
// physically adjacent neighbor. A nil ptr is a no-op.
func (h *Handle) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}

	h.lock.lock()
	defer h.lock.unlock()

	h.free(headerOf(ptr))
}

func (h *Handle) free(b *header) {
	if h.p == nil {
		b.next = b
		h.p = b

		return
	}

	// Walk to the node after which b belongs in ascending-address order.
	// The second disjunct in the break condition catches the case where
	// b falls outside the entire span of the cycle, which can only
	// happen at the one wrap-around edge (cur.addr() >= cur.next.addr()).
	cur := h.p
	for !(b.addr() > cur.addr() && b.addr() < cur.next.addr()) {
		if cur.addr() >= cur.next.addr() && (b.addr() > cur.addr() || b.addr() < cur.next.addr()) {
			break
		}

		cur = cur.next
	}

	if b.end() == cur.next.addr() { // forward merge
		if cur.next == cur { // b absorbs the only free block
			b.nunits += cur.nunits
			b.next = b
			h.p = b

			return
		}

		b.nunits += cur.next.nunits
		b.next = cur.next.next
	} else {
		b.next = cur.next
	}

	if cur.end() == b.addr() { // backward merge
		cur.nunits += b.nunits
		cur.next = b.next
	} else {
		cur.next = b
	}

	h.p = cur
}

// Realloc resizes ptr's allocation to n bytes. A nil ptr behaves like
// Alloc(n); n == 0 behaves like Free(ptr) and returns nil. If the
// existing block already has at least n bytes of payload capacity, ptr
// is returned unchanged. Realloc never shrinks in place and never grows
// by claiming a free neighbor.
func (h *Handle) Realloc(ptr unsafe.Pointer, n int) unsafe.Pointer {
	if ptr == nil {
		return h.Alloc(n)
	}

	if n == 0 {
		h.Free(ptr)

		return nil
	}

	oldCap := Sizeof(ptr)
	if oldCap >= n {
		return ptr
	}

	newPtr := h.Alloc(n)
	if newPtr == nil {
		return nil
	}

	copy(unsafe.Slice((*byte)(newPtr), oldCap), unsafe.Slice((*byte)(ptr), oldCap))
	h.Free(ptr)

	return newPtr
}

// Sizeof returns the payload capacity, in bytes, of an allocation
// returned by Alloc or Realloc. It takes no handle: the header holding
// this information is reachable directly from ptr. A nil ptr returns 0.
func Sizeof(ptr unsafe.Pointer) int {
	if ptr == nil {
		return 0
	}

	return int((headerOf(ptr).nunits - 1) * unitSize)
}

// ForEachFreeBlock invokes fn once per free block currently in h's
// freelist, in cycle order starting at the cursor, passing each block's
// payload size in bytes. fn must not call back into h.
func (h *Handle) ForEachFreeBlock(fn func(size int)) {
	h.lock.lock()
	defer h.lock.unlock()

	if h.p == nil {
		return
	}

	cur := h.p
	for {
		fn(Sizeof(cur.payload()))

		cur = cur.next
		if cur == h.p {
			return
		}
	}
}
