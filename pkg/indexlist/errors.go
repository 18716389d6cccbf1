package indexlist

import "errors"

// Sentinel errors returned by indexlist operations.
//
// Callers should use [errors.Is] to check error types:
//
//	if errors.Is(err, indexlist.ErrInvalidHandle) {
//	    // the node this handle referred to no longer exists
//	}
var (
	// ErrInvalidHandle indicates a handle that does not resolve to a live
	// node: its slot is out of range, currently free, or has been reused
	// since the handle was issued (generation mismatch).
	//
	// This means "the logical node no longer exists". The failing operation
	// did not mutate the list.
	ErrInvalidHandle = errors.New("indexlist: invalid handle")

	// ErrEmpty indicates an endpoint query (Front, Back, PopFront, PopBack)
	// against a zero-length list.
	ErrEmpty = errors.New("indexlist: empty list")

	// ErrFull indicates the backing store has reached [Options.MaxSlots]
	// and no freed slot was available for reuse.
	//
	// Recovery: remove entries, or recreate the list with a larger cap.
	ErrFull = errors.New("indexlist: full")

	// ErrInvalidInput indicates invalid construction options.
	//
	// This is a programming error.
	ErrInvalidInput = errors.New("indexlist: invalid input")
)
