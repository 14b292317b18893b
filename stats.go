package allocator

// Stats summarizes the current state of a Handle's freelist. It is
// derived from ForEachFreeBlock and the count of accepted donations; it
// adds no bookkeeping to the hot alloc/free paths.
type Stats struct {
	FreeBytes    int
	FreeBlocks   int
	LargestBlock int
	Donations    int
}

// Stats reports the current freelist composition. Grounded in the
// teacher's AllocatorStats (internal/allocator/allocator.go), trimmed to
// the fields this allocator can report honestly: it never tracks
// allocation counts or peak usage, since doing so would add bookkeeping
// to Alloc/Free that spec.md's exhaustion-only contract has no use for.
func (h *Handle) Stats() Stats {
	h.lock.lock()
	donations := len(h.regions)
	h.lock.unlock()

	var s Stats

	s.Donations = donations

	h.ForEachFreeBlock(func(size int) {
		s.FreeBytes += size
		s.FreeBlocks++

		if size > s.LargestBlock {
			s.LargestBlock = size
		}
	})

	return s
}
