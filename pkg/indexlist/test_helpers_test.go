package indexlist_test

import (
	"testing"

	"github.com/calvinalkan/indexlist/pkg/indexlist"
)

// collectForward drains a full forward traversal into value order.
func collectForward[T any](l *indexlist.List[T]) []T {
	var values []T

	l.All()(func(_ indexlist.Handle, v T) bool {
		values = append(values, v)

		return true
	})

	return values
}

// collectBackward drains a full backward traversal into value order.
func collectBackward[T any](l *indexlist.List[T]) []T {
	var values []T

	l.Backward()(func(_ indexlist.Handle, v T) bool {
		values = append(values, v)

		return true
	})

	return values
}

// collectHandles drains a full forward traversal into handle order.
func collectHandles[T any](l *indexlist.List[T]) []indexlist.Handle {
	var handles []indexlist.Handle

	l.All()(func(h indexlist.Handle, _ T) bool {
		handles = append(handles, h)

		return true
	})

	return handles
}

// mustPushBack pushes and fails the test on error.
func mustPushBack[T any](t *testing.T, l *indexlist.List[T], value T) indexlist.Handle {
	t.Helper()

	h, err := l.PushBack(value)
	if err != nil {
		t.Fatalf("PushBack(%v): %v", value, err)
	}

	return h
}

// mustPushFront pushes and fails the test on error.
func mustPushFront[T any](t *testing.T, l *indexlist.List[T], value T) indexlist.Handle {
	t.Helper()

	h, err := l.PushFront(value)
	if err != nil {
		t.Fatalf("PushFront(%v): %v", value, err)
	}

	return h
}

// requireConsistent runs the internal invariant check.
func requireConsistent[T any](t *testing.T, l *indexlist.List[T]) {
	t.Helper()

	if err := l.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}
