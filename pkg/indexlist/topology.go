package indexlist

// Topology operations: everything that rewires prev/next links, the
// endpoints, or the free chain.
//
// Every operation validates its handle (if any) before mutating anything, so
// a failed call leaves the list exactly as it was.

// PushFront inserts value as the new first node and returns its handle.
//
// Fails only with [ErrFull].
func (l *List[T]) PushFront(value T) (Handle, error) {
	pos, err := l.alloc(value)
	if err != nil {
		return Handle{}, err
	}

	l.slots[pos].next = l.head

	if l.head != none {
		l.slots[l.head].prev = pos
	} else {
		// First node of an empty list is both endpoints.
		l.tail = pos
	}

	l.head = pos
	l.length++

	return Handle{pos: pos, gen: l.slots[pos].gen}, nil
}

// PushBack inserts value as the new last node and returns its handle.
//
// Fails only with [ErrFull].
func (l *List[T]) PushBack(value T) (Handle, error) {
	pos, err := l.alloc(value)
	if err != nil {
		return Handle{}, err
	}

	l.slots[pos].prev = l.tail

	if l.tail != none {
		l.slots[l.tail].next = pos
	} else {
		l.head = pos
	}

	l.tail = pos
	l.length++

	return Handle{pos: pos, gen: l.slots[pos].gen}, nil
}

// InsertBefore splices value in immediately before the node anchor refers
// to and returns the new node's handle.
//
// Fails with [ErrInvalidHandle] if anchor does not resolve (inserting into
// an empty list is only reachable through [List.PushFront]/[List.PushBack]:
// an empty list has no handle to anchor on). Fails with [ErrFull] if no slot
// can be allocated.
func (l *List[T]) InsertBefore(anchor Handle, value T) (Handle, error) {
	anchorPos, ok := l.resolve(anchor)
	if !ok {
		return Handle{}, ErrInvalidHandle
	}

	pos, err := l.alloc(value)
	if err != nil {
		return Handle{}, err
	}

	// alloc may have grown the backing array; take pointers only now.
	prevPos := l.slots[anchorPos].prev

	l.slots[pos].prev = prevPos
	l.slots[pos].next = anchorPos
	l.slots[anchorPos].prev = pos

	if prevPos != none {
		l.slots[prevPos].next = pos
	} else {
		l.head = pos
	}

	l.length++

	return Handle{pos: pos, gen: l.slots[pos].gen}, nil
}

// InsertAfter splices value in immediately after the node anchor refers to
// and returns the new node's handle.
//
// Fails with [ErrInvalidHandle] if anchor does not resolve, or [ErrFull] if
// no slot can be allocated.
func (l *List[T]) InsertAfter(anchor Handle, value T) (Handle, error) {
	anchorPos, ok := l.resolve(anchor)
	if !ok {
		return Handle{}, ErrInvalidHandle
	}

	pos, err := l.alloc(value)
	if err != nil {
		return Handle{}, err
	}

	nextPos := l.slots[anchorPos].next

	l.slots[pos].prev = anchorPos
	l.slots[pos].next = nextPos
	l.slots[anchorPos].next = pos

	if nextPos != none {
		l.slots[nextPos].prev = pos
	} else {
		l.tail = pos
	}

	l.length++

	return Handle{pos: pos, gen: l.slots[pos].gen}, nil
}

// Remove unlinks the node h refers to and returns its value.
//
// The freed slot goes onto the free chain with a bumped generation, so h and
// every copy of it keep failing with [ErrInvalidHandle] from now on.
// Removing the sole node leaves an empty list. Fails with [ErrInvalidHandle]
// if h does not resolve; a second Remove of the same handle therefore fails
// with [ErrInvalidHandle], never [ErrEmpty].
func (l *List[T]) Remove(h Handle) (T, error) {
	pos, ok := l.resolve(h)
	if !ok {
		var zero T

		return zero, ErrInvalidHandle
	}

	value := l.slots[pos].value
	prevPos := l.slots[pos].prev
	nextPos := l.slots[pos].next

	if prevPos != none {
		l.slots[prevPos].next = nextPos
	} else {
		l.head = nextPos
	}

	if nextPos != none {
		l.slots[nextPos].prev = prevPos
	} else {
		l.tail = prevPos
	}

	l.release(pos)
	l.length--

	return value, nil
}

// PopFront removes the first node and returns its value.
//
// Fails with [ErrEmpty] if the list has no nodes.
func (l *List[T]) PopFront() (T, error) {
	if l.head == none {
		var zero T

		return zero, ErrEmpty
	}

	value, err := l.Remove(Handle{pos: l.head, gen: l.slots[l.head].gen})
	if err != nil {
		// The head handle was taken from the list itself.
		panic("indexlist: corrupt list: head does not resolve")
	}

	return value, nil
}

// PopBack removes the last node and returns its value.
//
// Fails with [ErrEmpty] if the list has no nodes.
func (l *List[T]) PopBack() (T, error) {
	if l.tail == none {
		var zero T

		return zero, ErrEmpty
	}

	value, err := l.Remove(Handle{pos: l.tail, gen: l.slots[l.tail].gen})
	if err != nil {
		panic("indexlist: corrupt list: tail does not resolve")
	}

	return value, nil
}
