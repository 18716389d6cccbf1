// Package model provides a deliberately simple, in-memory state model of
// indexlist's publicly observable behavior.
//
// The model is intentionally easy to audit: it keeps the live nodes as an
// ordered slice of opaque tokens plus a value map, and it favors clarity
// over performance. Tokens stand in for indexlist handles; the test harness
// feeds in the handles the real list returns and the model never fabricates
// one. This is sound because the real list never reissues a handle: a reused
// slot carries a bumped generation, so every issued {position, generation}
// pair is unique for the lifetime of a list.
package model

import "slices"

// List models the observable state of one indexlist.List. H is the opaque
// token type standing in for handles (indexlist.Handle in the real harness).
type List[H comparable, T any] struct {
	// Order holds the tokens of live nodes in list order, front to back.
	Order []H

	// Values maps each live token to its value. A token is valid iff it
	// is present here.
	Values map[H]T

	// SlotsUsed tracks how many backing slots the real list must have
	// appended so far: the store grows only when an allocation finds no
	// freed slot to reuse.
	SlotsUsed int

	// MaxSlots mirrors the real list's growth cap. Zero means unlimited
	// for modeling purposes.
	MaxSlots int
}

// New returns an empty model with the given slot cap (0 = unlimited).
func New[H comparable, T any](maxSlots int) *List[H, T] {
	return &List[H, T]{
		Values:   make(map[H]T),
		MaxSlots: maxSlots,
	}
}

// Clone makes a deep copy so metamorphic tests can fork the exact same
// state.
func (m *List[H, T]) Clone() *List[H, T] {
	values := make(map[H]T, len(m.Values))
	for h, v := range m.Values {
		values[h] = v
	}

	return &List[H, T]{
		Order:     slices.Clone(m.Order),
		Values:    values,
		SlotsUsed: m.SlotsUsed,
		MaxSlots:  m.MaxSlots,
	}
}

// Len returns the number of live nodes.
func (m *List[H, T]) Len() int {
	return len(m.Order)
}

// Valid reports whether h refers to a live node.
func (m *List[H, T]) Valid(h H) bool {
	_, ok := m.Values[h]

	return ok
}

// Full reports whether the next allocation must fail: no freed slot to
// reuse and the backing store at its cap.
func (m *List[H, T]) Full() bool {
	if m.MaxSlots == 0 {
		return false
	}

	freeSlots := m.SlotsUsed - len(m.Order)

	return freeSlots == 0 && m.SlotsUsed >= m.MaxSlots
}

// noteAlloc accounts for one successful allocation in the real list.
func (m *List[H, T]) noteAlloc() {
	if m.SlotsUsed == len(m.Order) {
		// No free slot was available, so the real store grew.
		m.SlotsUsed++
	}
}

// PushFront records a successful PushFront that returned token h.
func (m *List[H, T]) PushFront(h H, value T) {
	m.noteAlloc()
	m.Order = slices.Insert(m.Order, 0, h)
	m.Values[h] = value
}

// PushBack records a successful PushBack that returned token h.
func (m *List[H, T]) PushBack(h H, value T) {
	m.noteAlloc()
	m.Order = append(m.Order, h)
	m.Values[h] = value
}

// InsertBefore records a successful InsertBefore of h before anchor.
// The anchor must be valid; the harness checks Valid first.
func (m *List[H, T]) InsertBefore(anchor, h H, value T) {
	at := slices.Index(m.Order, anchor)
	if at < 0 {
		panic("model: insert before unknown anchor")
	}

	m.noteAlloc()
	m.Order = slices.Insert(m.Order, at, h)
	m.Values[h] = value
}

// InsertAfter records a successful InsertAfter of h after anchor.
func (m *List[H, T]) InsertAfter(anchor, h H, value T) {
	at := slices.Index(m.Order, anchor)
	if at < 0 {
		panic("model: insert after unknown anchor")
	}

	m.noteAlloc()
	m.Order = slices.Insert(m.Order, at+1, h)
	m.Values[h] = value
}

// Remove removes h and returns its value, or false if h is not live.
// The freed slot becomes available for reuse (SlotsUsed is unchanged).
func (m *List[H, T]) Remove(h H) (T, bool) {
	value, ok := m.Values[h]
	if !ok {
		var zero T

		return zero, false
	}

	at := slices.Index(m.Order, h)
	m.Order = slices.Delete(m.Order, at, at+1)
	delete(m.Values, h)

	return value, true
}

// Get returns the value of h, or false if h is not live.
func (m *List[H, T]) Get(h H) (T, bool) {
	value, ok := m.Values[h]

	return value, ok
}

// Set replaces the value of h. Returns false if h is not live.
func (m *List[H, T]) Set(h H, value T) bool {
	if !m.Valid(h) {
		return false
	}

	m.Values[h] = value

	return true
}

// FrontHandle returns the token of the first node, or false when empty.
func (m *List[H, T]) FrontHandle() (H, bool) {
	if len(m.Order) == 0 {
		var zero H

		return zero, false
	}

	return m.Order[0], true
}

// BackHandle returns the token of the last node, or false when empty.
func (m *List[H, T]) BackHandle() (H, bool) {
	if len(m.Order) == 0 {
		var zero H

		return zero, false
	}

	return m.Order[len(m.Order)-1], true
}

// Front returns the first value, or false when empty.
func (m *List[H, T]) Front() (T, bool) {
	h, ok := m.FrontHandle()
	if !ok {
		var zero T

		return zero, false
	}

	return m.Values[h], true
}

// Back returns the last value, or false when empty.
func (m *List[H, T]) Back() (T, bool) {
	h, ok := m.BackHandle()
	if !ok {
		var zero T

		return zero, false
	}

	return m.Values[h], true
}

// Next returns the token after h, or false if h is not live or is last.
func (m *List[H, T]) Next(h H) (H, bool) {
	at := slices.Index(m.Order, h)
	if at < 0 || at == len(m.Order)-1 {
		var zero H

		return zero, false
	}

	return m.Order[at+1], true
}

// Prev returns the token before h, or false if h is not live or is first.
func (m *List[H, T]) Prev(h H) (H, bool) {
	at := slices.Index(m.Order, h)
	if at <= 0 {
		var zero H

		return zero, false
	}

	return m.Order[at-1], true
}

// Forward returns the live tokens front to back.
func (m *List[H, T]) Forward() []H {
	return slices.Clone(m.Order)
}

// Backward returns the live tokens back to front.
func (m *List[H, T]) Backward() []H {
	backward := slices.Clone(m.Order)
	slices.Reverse(backward)

	return backward
}

// ForwardValues returns the live values front to back. Returns nil when
// empty so cmp.Diff against a collected-from-scratch slice stays clean
// without cmpopts.EquateEmpty.
func (m *List[H, T]) ForwardValues() []T {
	if len(m.Order) == 0 {
		return nil
	}

	values := make([]T, 0, len(m.Order))
	for _, h := range m.Order {
		values = append(values, m.Values[h])
	}

	return values
}

// BackwardValues returns the live values back to front.
func (m *List[H, T]) BackwardValues() []T {
	values := m.ForwardValues()
	slices.Reverse(values)

	return values
}
