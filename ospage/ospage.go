// Package ospage acquires whole OS memory pages for donation to an
// allocator.Handle via Add. It is a convenience donor, not a dependency
// of the core allocator: nothing in the allocator package imports
// ospage, and nothing here reaches back into it.
package ospage

// Size returns the host's page size in bytes. Callers sizing a donation
// to a whole number of pages should round up to a multiple of this.
func Size() int {
	return pageSize()
}

// Acquire reserves n bytes of fresh, zeroed OS memory, rounded up to a
// whole number of pages, suitable for passing directly to
// (*allocator.Handle).Add. The returned slice is exactly the OS region;
// its length may exceed n.
func Acquire(n int) ([]byte, error) {
	if n <= 0 {
		n = 1
	}

	pages := (n + pageSize() - 1) / pageSize()

	return acquirePages(pages * pageSize())
}

// Release returns memory obtained from Acquire to the OS. Callers that
// donated the slice to an allocator.Handle must stop using the handle's
// allocations from that region before calling Release; the allocator
// itself never calls Release.
func Release(region []byte) error {
	if len(region) == 0 {
		return nil
	}

	return releasePages(region)
}
