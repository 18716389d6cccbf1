package indexlist

import "fmt"

// Handle identifies a logical node in a [List].
//
// A Handle is a plain value: freely copyable, comparable with ==, and
// carrying no ownership. Two handles are equal iff they name the same slot
// position at the same generation.
//
// Handles are issued by the insert operations and stay valid until their node
// is removed. After removal they are permanently invalid; reusing the slot
// for a new node bumps the slot's generation, so the old handle keeps
// failing instead of aliasing the new node.
//
// The zero Handle names slot 0 at generation 0 and is only valid while that
// particular node is live; there is no dedicated "null" handle.
type Handle struct {
	pos int
	gen uint64
}

// String returns a debug representation of the handle.
func (h Handle) String() string {
	return fmt.Sprintf("slot %d gen %d", h.pos, h.gen)
}
