package indexlist

import (
	"fmt"
	"math"
)

// Check verifies the internal invariants of the list and returns a
// descriptive error for the first violation found.
//
// A violation can only come from a bug inside this package, never from
// caller input, so Check is not part of the error taxonomy of the public
// operations. It exists for tests, fuzz harnesses, and debugging; it is O(n)
// in the size of the backing store and mutates nothing.
func (l *List[T]) Check() error {
	// Endpoint agreement: head, tail and length are empty together.
	if (l.head == none) != (l.tail == none) {
		return fmt.Errorf("endpoints disagree: head=%d tail=%d", l.head, l.tail)
	}

	if (l.head == none) != (l.length == 0) {
		return fmt.Errorf("head=%d while length=%d", l.head, l.length)
	}

	onChain := make([]bool, len(l.slots))

	// Forward walk: every step must land on a live slot, prev links must
	// mirror next links, and the walk must end at tail after exactly
	// length steps.
	steps := 0
	prev := none

	for pos := l.head; pos != none; {
		if pos < 0 || pos >= len(l.slots) {
			return fmt.Errorf("next link out of range: %d", pos)
		}

		s := &l.slots[pos]
		if !s.live {
			return fmt.Errorf("occupied chain reaches free slot %d", pos)
		}

		if onChain[pos] {
			return fmt.Errorf("occupied chain revisits slot %d", pos)
		}

		onChain[pos] = true

		if s.prev != prev {
			return fmt.Errorf("slot %d prev=%d, want %d", pos, s.prev, prev)
		}

		steps++
		if steps > l.length {
			return fmt.Errorf("occupied chain longer than length %d", l.length)
		}

		prev = pos
		pos = s.next
	}

	if steps != l.length {
		return fmt.Errorf("occupied chain has %d nodes, length says %d", steps, l.length)
	}

	if prev != l.tail {
		return fmt.Errorf("occupied chain ends at %d, tail says %d", prev, l.tail)
	}

	// Backward walk must visit the same count. Link symmetry was already
	// verified above, so counting suffices to pin the reverse traversal.
	back := 0
	for pos := l.tail; pos != none; pos = l.slots[pos].prev {
		back++
		if back > l.length {
			return fmt.Errorf("backward chain longer than length %d", l.length)
		}
	}

	if back != l.length {
		return fmt.Errorf("backward chain has %d nodes, length says %d", back, l.length)
	}

	// Free chain: acyclic, only free slots, never overlapping the occupied
	// chain.
	freeSeen := make([]bool, len(l.slots))
	freeCount := 0

	for pos := l.freeHead; pos != none; pos = l.slots[pos].next {
		if pos < 0 || pos >= len(l.slots) {
			return fmt.Errorf("free chain link out of range: %d", pos)
		}

		if l.slots[pos].live {
			return fmt.Errorf("free chain reaches live slot %d", pos)
		}

		if freeSeen[pos] {
			return fmt.Errorf("free chain revisits slot %d", pos)
		}

		freeSeen[pos] = true
		freeCount++
	}

	// Every slot is exactly one of: on the occupied chain, on the free
	// chain, or retired with an exhausted generation counter.
	for pos := range l.slots {
		switch {
		case onChain[pos]:
		case freeSeen[pos]:
		case !l.slots[pos].live && l.slots[pos].gen == math.MaxUint64:
			// Retired slot, deliberately off the free chain.
		case l.slots[pos].live:
			return fmt.Errorf("live slot %d unreachable from head", pos)
		default:
			return fmt.Errorf("free slot %d unreachable from free head", pos)
		}
	}

	return nil
}
