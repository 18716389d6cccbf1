// Package testutil drives an indexlist.List and the reference model through
// identical operation sequences decoded from a byte stream, failing the test
// on the first observable divergence.
//
// The same decoder backs the seeded property tests and the native fuzz
// targets, so a fuzz-found byte stream reproduces directly as a seed.
package testutil

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/indexlist/pkg/indexlist"
	"github.com/calvinalkan/indexlist/pkg/indexlist/model"
)

// RunConfig controls a model-comparison run.
type RunConfig struct {
	// MaxOps caps the number of decoded operations (0 = no cap, the
	// stream length is the only bound).
	MaxOps int

	// HeavyCompareEveryN runs a full traversal comparison plus an
	// invariant check every N operations (0 = only at the end).
	HeavyCompareEveryN int

	// MaxSlots caps the real list's backing store so ErrFull paths get
	// exercised (0 = effectively unbounded).
	MaxSlots int
}

// Operation codes decoded from the stream.
const (
	opPushFront = iota
	opPushBack
	opInsertBefore
	opInsertAfter
	opRemove
	opGet
	opSet
	opPopFront
	opPopBack
	opFront
	opBack
	opNext
	opPrev
	opContains
	opCount
)

// RunModelComparison decodes stream into operations and applies each one to
// a fresh real list and a fresh model, comparing every result.
func RunModelComparison(t testing.TB, stream []byte, cfg RunConfig) {
	t.Helper()

	opts := indexlist.Options{MaxSlots: cfg.MaxSlots}

	real, err := indexlist.NewWithOptions[int](opts)
	if err != nil {
		t.Fatalf("creating list: %v", err)
	}

	r := &runner{
		t:      t,
		real:   real,
		model:  model.New[indexlist.Handle, int](cfg.MaxSlots),
		stream: stream,
	}

	for opIndex := 0; r.hasMore(); opIndex++ {
		if cfg.MaxOps > 0 && opIndex >= cfg.MaxOps {
			break
		}

		r.opIndex = opIndex
		r.step()

		if r.real.Len() != r.model.Len() {
			t.Fatalf("op %d: Len()=%d, model says %d", opIndex, r.real.Len(), r.model.Len())
		}

		if cfg.HeavyCompareEveryN > 0 && (opIndex+1)%cfg.HeavyCompareEveryN == 0 {
			r.compareFully()
		}
	}

	r.compareFully()
}

type runner struct {
	t       testing.TB
	real    *indexlist.List[int]
	model   *model.List[indexlist.Handle, int]
	stream  []byte
	opIndex int

	// issued holds every handle the real list ever returned, live or
	// stale, so stale-handle paths occur naturally after removals.
	issued    []indexlist.Handle
	nextValue int
}

func (r *runner) hasMore() bool {
	return len(r.stream) > 0
}

// nextByte consumes one byte of the stream (0 once exhausted).
func (r *runner) nextByte() byte {
	if len(r.stream) == 0 {
		return 0
	}

	b := r.stream[0]
	r.stream = r.stream[1:]

	return b
}

// pickHandle selects any previously issued handle, live or stale.
func (r *runner) pickHandle() (indexlist.Handle, bool) {
	if len(r.issued) == 0 {
		return indexlist.Handle{}, false
	}

	return r.issued[int(r.nextByte())%len(r.issued)], true
}

// value returns the next distinct payload. Monotonic values keep failure
// output easy to read.
func (r *runner) value() int {
	r.nextValue++

	return r.nextValue
}

func (r *runner) step() {
	switch r.nextByte() % opCount {
	case opPushFront:
		r.push(true)
	case opPushBack:
		r.push(false)
	case opInsertBefore:
		r.insert(true)
	case opInsertAfter:
		r.insert(false)
	case opRemove:
		r.remove()
	case opGet:
		r.get()
	case opSet:
		r.set()
	case opPopFront:
		r.pop(true)
	case opPopBack:
		r.pop(false)
	case opFront:
		r.peek(true)
	case opBack:
		r.peek(false)
	case opNext:
		r.neighbor(true)
	case opPrev:
		r.neighbor(false)
	case opContains:
		r.contains()
	}
}

func (r *runner) push(front bool) {
	value := r.value()

	var (
		h   indexlist.Handle
		err error
	)

	if front {
		h, err = r.real.PushFront(value)
	} else {
		h, err = r.real.PushBack(value)
	}

	if r.model.Full() {
		r.wantErr(err, indexlist.ErrFull, "push")

		return
	}

	if err != nil {
		r.t.Fatalf("op %d: push failed: %v", r.opIndex, err)
	}

	if front {
		r.model.PushFront(h, value)
	} else {
		r.model.PushBack(h, value)
	}

	r.issued = append(r.issued, h)
}

func (r *runner) insert(before bool) {
	anchor, ok := r.pickHandle()
	if !ok {
		r.push(before)

		return
	}

	value := r.value()

	var (
		h   indexlist.Handle
		err error
	)

	if before {
		h, err = r.real.InsertBefore(anchor, value)
	} else {
		h, err = r.real.InsertAfter(anchor, value)
	}

	// Anchor validation precedes allocation, so a stale anchor wins over
	// a full store.
	if !r.model.Valid(anchor) {
		r.wantErr(err, indexlist.ErrInvalidHandle, "insert at stale anchor")

		return
	}

	if r.model.Full() {
		r.wantErr(err, indexlist.ErrFull, "insert")

		return
	}

	if err != nil {
		r.t.Fatalf("op %d: insert failed: %v", r.opIndex, err)
	}

	if before {
		r.model.InsertBefore(anchor, h, value)
	} else {
		r.model.InsertAfter(anchor, h, value)
	}

	r.issued = append(r.issued, h)
}

func (r *runner) remove() {
	h, ok := r.pickHandle()
	if !ok {
		return
	}

	got, err := r.real.Remove(h)

	want, live := r.model.Remove(h)
	if !live {
		r.wantErr(err, indexlist.ErrInvalidHandle, "remove stale handle")

		return
	}

	if err != nil {
		r.t.Fatalf("op %d: remove failed: %v", r.opIndex, err)
	}

	if got != want {
		r.t.Fatalf("op %d: remove returned %d, model says %d", r.opIndex, got, want)
	}
}

func (r *runner) get() {
	h, ok := r.pickHandle()
	if !ok {
		return
	}

	got, err := r.real.Get(h)

	want, live := r.model.Get(h)
	if !live {
		r.wantErr(err, indexlist.ErrInvalidHandle, "get stale handle")

		return
	}

	if err != nil {
		r.t.Fatalf("op %d: get failed: %v", r.opIndex, err)
	}

	if got != want {
		r.t.Fatalf("op %d: get returned %d, model says %d", r.opIndex, got, want)
	}
}

func (r *runner) set() {
	h, ok := r.pickHandle()
	if !ok {
		return
	}

	value := r.value()
	err := r.real.Set(h, value)

	if !r.model.Set(h, value) {
		r.wantErr(err, indexlist.ErrInvalidHandle, "set stale handle")

		return
	}

	if err != nil {
		r.t.Fatalf("op %d: set failed: %v", r.opIndex, err)
	}
}

func (r *runner) pop(front bool) {
	var (
		got indexlist.Handle
		ok  bool
	)

	if front {
		got, ok = r.model.FrontHandle()
	} else {
		got, ok = r.model.BackHandle()
	}

	var (
		value int
		err   error
	)

	if front {
		value, err = r.real.PopFront()
	} else {
		value, err = r.real.PopBack()
	}

	if !ok {
		r.wantErr(err, indexlist.ErrEmpty, "pop on empty list")

		return
	}

	if err != nil {
		r.t.Fatalf("op %d: pop failed: %v", r.opIndex, err)
	}

	want, _ := r.model.Remove(got)
	if value != want {
		r.t.Fatalf("op %d: pop returned %d, model says %d", r.opIndex, value, want)
	}
}

func (r *runner) peek(front bool) {
	var (
		got int
		err error
	)

	if front {
		got, err = r.real.Front()
	} else {
		got, err = r.real.Back()
	}

	var (
		want int
		ok   bool
	)

	if front {
		want, ok = r.model.Front()
	} else {
		want, ok = r.model.Back()
	}

	if !ok {
		r.wantErr(err, indexlist.ErrEmpty, "peek on empty list")

		return
	}

	if err != nil {
		r.t.Fatalf("op %d: peek failed: %v", r.opIndex, err)
	}

	if got != want {
		r.t.Fatalf("op %d: peek returned %d, model says %d", r.opIndex, got, want)
	}
}

func (r *runner) neighbor(forward bool) {
	h, ok := r.pickHandle()
	if !ok {
		return
	}

	var (
		got, want     indexlist.Handle
		gotOK, wantOK bool
	)

	if forward {
		got, gotOK = r.real.Next(h)
		want, wantOK = r.model.Next(h)
	} else {
		got, gotOK = r.real.Prev(h)
		want, wantOK = r.model.Prev(h)
	}

	if gotOK != wantOK {
		r.t.Fatalf("op %d: neighbor ok=%v, model says %v", r.opIndex, gotOK, wantOK)
	}

	if gotOK && got != want {
		r.t.Fatalf("op %d: neighbor returned %v, model says %v", r.opIndex, got, want)
	}
}

func (r *runner) contains() {
	h, ok := r.pickHandle()
	if !ok {
		return
	}

	if got, want := r.real.Contains(h), r.model.Valid(h); got != want {
		r.t.Fatalf("op %d: Contains()=%v, model says %v", r.opIndex, got, want)
	}
}

func (r *runner) wantErr(err, want error, what string) {
	r.t.Helper()

	if !errors.Is(err, want) {
		r.t.Fatalf("op %d: %s: got error %v, want %v", r.opIndex, what, err, want)
	}
}

// compareFully checks both traversal directions, the endpoint handles, and
// the internal invariants against the model.
func (r *runner) compareFully() {
	r.t.Helper()

	var (
		forwardHandles, backwardHandles []indexlist.Handle
		forwardValues, backwardValues   []int
	)

	r.real.All()(func(h indexlist.Handle, v int) bool {
		forwardHandles = append(forwardHandles, h)
		forwardValues = append(forwardValues, v)

		return true
	})

	r.real.Backward()(func(h indexlist.Handle, v int) bool {
		backwardHandles = append(backwardHandles, h)
		backwardValues = append(backwardValues, v)

		return true
	})

	if !slices.Equal(forwardHandles, r.model.Forward()) {
		r.t.Fatalf("op %d: forward handles diverge:\nreal:  %v\nmodel: %v",
			r.opIndex, forwardHandles, r.model.Forward())
	}

	if !slices.Equal(backwardHandles, r.model.Backward()) {
		r.t.Fatalf("op %d: backward handles diverge:\nreal:  %v\nmodel: %v",
			r.opIndex, backwardHandles, r.model.Backward())
	}

	if diff := cmp.Diff(r.model.ForwardValues(), forwardValues); diff != "" {
		r.t.Fatalf("op %d: forward values diverge (-model +real):\n%s", r.opIndex, diff)
	}

	if diff := cmp.Diff(r.model.BackwardValues(), backwardValues); diff != "" {
		r.t.Fatalf("op %d: backward values diverge (-model +real):\n%s", r.opIndex, diff)
	}

	gotFront, gotOK := r.real.FrontHandle()
	wantFront, wantOK := r.model.FrontHandle()

	if gotOK != wantOK || (gotOK && gotFront != wantFront) {
		r.t.Fatalf("op %d: front handle diverges: real %v/%v, model %v/%v",
			r.opIndex, gotFront, gotOK, wantFront, wantOK)
	}

	gotBack, gotOK := r.real.BackHandle()
	wantBack, wantOK := r.model.BackHandle()

	if gotOK != wantOK || (gotOK && gotBack != wantBack) {
		r.t.Fatalf("op %d: back handle diverges: real %v/%v, model %v/%v",
			r.opIndex, gotBack, gotOK, wantBack, wantOK)
	}

	if err := r.real.Check(); err != nil {
		r.t.Fatalf("op %d: invariant check failed: %v", r.opIndex, err)
	}
}
