package indexlist

import "math"

// none marks the absence of a slot position in link fields.
const none = -1

// DefaultMaxSlots is the backing-store growth cap used when
// [Options.MaxSlots] is zero.
const DefaultMaxSlots = math.MaxInt32

// Options configure list construction.
type Options struct {
	// InitialCapacity preallocates backing storage for that many slots.
	// It does not limit growth.
	InitialCapacity int

	// MaxSlots caps how many slots the backing store may ever hold.
	// Zero means [DefaultMaxSlots]. Allocations that would grow the store
	// past the cap fail with [ErrFull]; freed slots are still reused.
	MaxSlots int
}

// slot is one cell of the backing store.
//
// Go has no tagged unions, so the occupied/free distinction is an explicit
// bool. A free slot reuses the next field as the free-chain pointer, keeping
// free slots the same size as occupied ones.
type slot[T any] struct {
	value T
	gen   uint64
	prev  int // occupied: previous node, or none
	next  int // occupied: next node; free: next free slot, or none
	live  bool
}

// List is a doubly linked list whose nodes live in a growable slot array.
//
// The zero value is not usable; create lists with [New] or [NewWithOptions].
// See the package documentation for the handle and storage model.
type List[T any] struct {
	slots    []slot[T]
	head     int // first occupied slot, or none
	tail     int // last occupied slot, or none
	freeHead int // first slot of the free chain, or none
	length   int
	maxSlots int
}

// New creates an empty list with default options.
func New[T any]() *List[T] {
	list, err := NewWithOptions[T](Options{})
	if err != nil {
		// Options{} is always valid.
		panic(err)
	}

	return list
}

// NewWithOptions creates an empty list with the given options.
//
// Returns [ErrInvalidInput] if a field is negative or InitialCapacity
// exceeds the effective MaxSlots.
func NewWithOptions[T any](opts Options) (*List[T], error) {
	if opts.InitialCapacity < 0 || opts.MaxSlots < 0 {
		return nil, ErrInvalidInput
	}

	maxSlots := opts.MaxSlots
	if maxSlots == 0 {
		maxSlots = DefaultMaxSlots
	}

	if opts.InitialCapacity > maxSlots {
		return nil, ErrInvalidInput
	}

	return &List[T]{
		slots:    make([]slot[T], 0, opts.InitialCapacity),
		head:     none,
		tail:     none,
		freeHead: none,
		maxSlots: maxSlots,
	}, nil
}

// Len returns the number of live nodes. O(1).
func (l *List[T]) Len() int {
	return l.length
}

// IsEmpty reports whether the list has no live nodes. O(1).
func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

// Slots returns the current size of the backing store, counting both live
// and free slots. It only ever grows.
func (l *List[T]) Slots() int {
	return len(l.slots)
}

// resolve returns the slot position for a handle, or false if the handle is
// out of range, names a free slot, or carries a stale generation.
//
// Every public operation that takes a handle goes through resolve before
// touching any state.
func (l *List[T]) resolve(h Handle) (int, bool) {
	if h.pos < 0 || h.pos >= len(l.slots) {
		return none, false
	}

	s := &l.slots[h.pos]
	if !s.live || s.gen != h.gen {
		return none, false
	}

	return h.pos, true
}

// alloc places value into a slot and returns its position.
//
// The free chain is popped first; the store grows only when no freed slot is
// available. The slot's generation is left unchanged: generations advance on
// release, not on allocation, so handles to other slots stay comparably
// stamped no matter how many allocations happen around them.
func (l *List[T]) alloc(value T) (int, error) {
	if l.freeHead != none {
		pos := l.freeHead

		s := &l.slots[pos]
		if s.live {
			panic("indexlist: corrupt list: free chain points at live slot")
		}

		l.freeHead = s.next

		s.value = value
		s.live = true
		s.prev = none
		s.next = none

		return pos, nil
	}

	if len(l.slots) >= l.maxSlots {
		return none, ErrFull
	}

	l.slots = append(l.slots, slot[T]{
		value: value,
		live:  true,
		prev:  none,
		next:  none,
	})

	return len(l.slots) - 1, nil
}

// release transitions an occupied slot to free, bumps its generation, and
// pushes it onto the free chain. The stored value is dropped so the backing
// array does not pin it.
func (l *List[T]) release(pos int) {
	s := &l.slots[pos]

	var zero T
	s.value = zero
	s.live = false
	s.prev = none

	s.gen++
	if s.gen == math.MaxUint64 {
		// The generation counter is exhausted. Recycling this slot would
		// eventually wrap it and resurrect stale handles, so the slot is
		// retired: freed, but never offered for reuse again.
		s.next = none

		return
	}

	s.next = l.freeHead
	l.freeHead = pos
}

// Get returns the value of the node h refers to.
//
// Fails with [ErrInvalidHandle] if h is stale, out of range, or names a
// free slot.
func (l *List[T]) Get(h Handle) (T, error) {
	pos, ok := l.resolve(h)
	if !ok {
		var zero T

		return zero, ErrInvalidHandle
	}

	return l.slots[pos].value, nil
}

// Set replaces the value of the node h refers to.
//
// Set is the mutation counterpart of [List.Get]: values are stored and
// returned by copy, so in-place edits go through Set rather than through a
// reference into the backing store.
//
// Fails with [ErrInvalidHandle] if h does not resolve.
func (l *List[T]) Set(h Handle, value T) error {
	pos, ok := l.resolve(h)
	if !ok {
		return ErrInvalidHandle
	}

	l.slots[pos].value = value

	return nil
}

// Contains reports whether h currently resolves to a live node.
func (l *List[T]) Contains(h Handle) bool {
	_, ok := l.resolve(h)

	return ok
}

// Front returns the value of the first node.
//
// Fails with [ErrEmpty] if the list has no nodes.
func (l *List[T]) Front() (T, error) {
	if l.head == none {
		var zero T

		return zero, ErrEmpty
	}

	return l.slots[l.head].value, nil
}

// Back returns the value of the last node.
//
// Fails with [ErrEmpty] if the list has no nodes.
func (l *List[T]) Back() (T, error) {
	if l.tail == none {
		var zero T

		return zero, ErrEmpty
	}

	return l.slots[l.tail].value, nil
}

// FrontHandle returns a handle to the first node, or false if the list is
// empty.
func (l *List[T]) FrontHandle() (Handle, bool) {
	if l.head == none {
		return Handle{}, false
	}

	return Handle{pos: l.head, gen: l.slots[l.head].gen}, true
}

// BackHandle returns a handle to the last node, or false if the list is
// empty.
func (l *List[T]) BackHandle() (Handle, bool) {
	if l.tail == none {
		return Handle{}, false
	}

	return Handle{pos: l.tail, gen: l.slots[l.tail].gen}, true
}

// Next returns a handle to the node after h.
//
// Returns false if h does not resolve or h is the last node.
func (l *List[T]) Next(h Handle) (Handle, bool) {
	pos, ok := l.resolve(h)
	if !ok {
		return Handle{}, false
	}

	next := l.slots[pos].next
	if next == none {
		return Handle{}, false
	}

	s := &l.slots[next]
	if !s.live {
		panic("indexlist: corrupt list: next link points at free slot")
	}

	return Handle{pos: next, gen: s.gen}, true
}

// Prev returns a handle to the node before h.
//
// Returns false if h does not resolve or h is the first node.
func (l *List[T]) Prev(h Handle) (Handle, bool) {
	pos, ok := l.resolve(h)
	if !ok {
		return Handle{}, false
	}

	prev := l.slots[pos].prev
	if prev == none {
		return Handle{}, false
	}

	s := &l.slots[prev]
	if !s.live {
		panic("indexlist: corrupt list: prev link points at free slot")
	}

	return Handle{pos: prev, gen: s.gen}, true
}

// Find walks the list from the front and returns a handle to the first node
// whose value satisfies match, or false if none does. O(n).
func (l *List[T]) Find(match func(T) bool) (Handle, bool) {
	for pos := l.head; pos != none; {
		s := &l.slots[pos]
		if !s.live {
			panic("indexlist: corrupt list: next link points at free slot")
		}

		if match(s.value) {
			return Handle{pos: pos, gen: s.gen}, true
		}

		pos = s.next
	}

	return Handle{}, false
}
