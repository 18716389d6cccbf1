package indexlist

// Seq is the iterator type returned by All and Backward.
//
// It matches the shape of iter.Seq2[Handle, T] so callers on a recent Go can
// range over it directly:
//
//	for h, v := range list.All() {
//	    ...
//	}
//
// The indexlist package avoids depending on iter directly.
type Seq[T any] func(yield func(Handle, T) bool)

// All returns a lazy forward traversal from the first node to the last,
// yielding each node's handle and value.
//
// The sequence is finite (bounded by [List.Len]) and restartable: every call
// to the returned Seq starts fresh from the front. Mutating the list while a
// traversal is running is outside the single-owner contract and has
// unspecified results.
func (l *List[T]) All() Seq[T] {
	return func(yield func(Handle, T) bool) {
		for pos := l.head; pos != none; {
			s := &l.slots[pos]
			if !s.live {
				panic("indexlist: corrupt list: next link points at free slot")
			}

			if !yield(Handle{pos: pos, gen: s.gen}, s.value) {
				return
			}

			pos = s.next
		}
	}
}

// Backward returns a lazy backward traversal from the last node to the
// first, yielding each node's handle and value. Same contract as [List.All].
func (l *List[T]) Backward() Seq[T] {
	return func(yield func(Handle, T) bool) {
		for pos := l.tail; pos != none; {
			s := &l.slots[pos]
			if !s.live {
				panic("indexlist: corrupt list: prev link points at free slot")
			}

			if !yield(Handle{pos: pos, gen: s.gen}, s.value) {
				return
			}

			pos = s.prev
		}
	}
}

// Values returns a lazy forward traversal over values only.
func (l *List[T]) Values() func(yield func(T) bool) {
	return func(yield func(T) bool) {
		l.All()(func(_ Handle, value T) bool {
			return yield(value)
		})
	}
}
