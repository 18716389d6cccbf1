// Package indexlist provides a doubly linked list backed by a single
// growable slot array.
//
// Unlike a traditional linked list, which heap-allocates every node
// individually, all nodes live in one contiguous backing store. Callers never
// hold pointers into the list; they hold [Handle] values, opaque
// {position, generation} pairs that identify a logical node. Insertion and
// removal at any known handle are O(1), and handles stay stable across
// unrelated mutations.
//
// # Generational handles
//
// Freed slots are recycled. Each slot carries a generation counter that is
// bumped every time the slot is released, and every handle is stamped with
// the generation of its slot at insertion time. A handle whose node has been
// removed keeps failing with [ErrInvalidHandle] forever, even after the slot
// is reused for a different node:
//
//	list := indexlist.New[int]()
//
//	five, _ := list.PushBack(5)
//	list.PushBack(10)
//
//	list.Remove(five)
//	list.PushBack(15) // reuses five's slot
//
//	_, err := list.Get(five) // ErrInvalidHandle, not 15
//
// # Storage
//
// The backing store only grows, never shrinks. Released slots are kept on a
// singly linked free chain that reuses the slot storage itself, so free slots
// cost no extra memory. Growth is capped by [Options.MaxSlots]; allocating
// past the cap fails with [ErrFull].
//
// # Concurrency
//
// A List is a single-owner structure with no internal locking. Concurrent or
// reentrant mutation (including mutating the list while ranging over [List.All]
// or [List.Backward]) is outside the contract and must be prevented by the
// caller. Handles themselves are plain comparable values and may be copied
// and shared freely; resolving a handle is the only staleness defense, and it
// does not make concurrent mutation safe.
//
// # Error Handling
//
// All failures are sentinel errors checked with [errors.Is]: stale or
// out-of-range handles fail with [ErrInvalidHandle], endpoint queries on an
// empty list fail with [ErrEmpty], and exhausting the slot cap fails with
// [ErrFull]. A failed operation never mutates the list.
package indexlist
