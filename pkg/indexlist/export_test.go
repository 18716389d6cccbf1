package indexlist

// Export internal constructors and accessors for testing.
// This file is only compiled during tests.

// MakeHandleForTesting builds a handle with explicit parts so tests can
// probe out-of-range positions and stale generations directly.
func MakeHandleForTesting(pos int, gen uint64) Handle {
	return Handle{pos: pos, gen: gen}
}

// HandlePartsForTesting returns the slot position and generation of a handle.
func HandlePartsForTesting(h Handle) (int, uint64) {
	return h.pos, h.gen
}

// SetGenerationForTesting overwrites the generation of the slot h names and
// returns a handle re-stamped to match. Used to drive the generation counter
// near its limit without billions of release cycles.
func SetGenerationForTesting[T any](l *List[T], h Handle, gen uint64) Handle {
	l.slots[h.pos].gen = gen

	return Handle{pos: h.pos, gen: gen}
}

// FreeChainForTesting returns the slot positions on the free chain in order.
func FreeChainForTesting[T any](l *List[T]) []int {
	var chain []int
	for pos := l.freeHead; pos != none; pos = l.slots[pos].next {
		chain = append(chain, pos)
	}

	return chain
}
