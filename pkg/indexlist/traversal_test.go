// Traversal contract: forward/backward symmetry, restartability, laziness.

package indexlist_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/indexlist/pkg/indexlist"
)

func Test_Forward_And_Backward_Traversals_Mirror_Each_Other(t *testing.T) {
	t.Parallel()

	list := indexlist.New[int]()

	mustPushBack(t, list, 5)
	ten := mustPushBack(t, list, 10)
	mustPushBack(t, list, 15)
	mustPushFront(t, list, 0)

	if _, err := list.Remove(ten); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	forward := collectForward(list)
	backward := collectBackward(list)

	if len(forward) != list.Len() {
		t.Fatalf("forward visited %d nodes, Len() = %d", len(forward), list.Len())
	}

	mirrored := slices.Clone(backward)
	slices.Reverse(mirrored)

	if diff := cmp.Diff(forward, mirrored); diff != "" {
		t.Fatalf("backward is not the reverse of forward (-forward +reversed backward):\n%s", diff)
	}

	if diff := cmp.Diff([]int{0, 5, 15}, forward); diff != "" {
		t.Fatalf("forward order (-want +got):\n%s", diff)
	}
}

func Test_Traversal_Restarts_From_Head_On_Each_Call(t *testing.T) {
	t.Parallel()

	list := indexlist.New[int]()

	mustPushBack(t, list, 1)
	mustPushBack(t, list, 2)

	seq := list.All()

	first := make([]int, 0, 2)
	seq(func(_ indexlist.Handle, v int) bool {
		first = append(first, v)

		return true
	})

	second := make([]int, 0, 2)
	seq(func(_ indexlist.Handle, v int) bool {
		second = append(second, v)

		return true
	})

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second pass over the same Seq differs (-first +second):\n%s", diff)
	}
}

func Test_Traversal_Stops_When_Yield_Returns_False(t *testing.T) {
	t.Parallel()

	list := indexlist.New[int]()

	for i := range 10 {
		mustPushBack(t, list, i)
	}

	visited := 0
	list.All()(func(_ indexlist.Handle, _ int) bool {
		visited++

		return visited < 3
	})

	if visited != 3 {
		t.Fatalf("visited %d nodes after early stop, want 3", visited)
	}
}

func Test_Traversal_Yields_Valid_Handles(t *testing.T) {
	t.Parallel()

	list := indexlist.New[string]()

	mustPushBack(t, list, "a")
	mustPushBack(t, list, "b")

	list.All()(func(h indexlist.Handle, want string) bool {
		got, err := list.Get(h)
		if err != nil {
			t.Fatalf("Get(yielded handle): %v", err)
		}

		if got != want {
			t.Fatalf("Get(yielded handle) = %q, want %q", got, want)
		}

		return true
	})
}

func Test_Values_Yields_Forward_Values_Only(t *testing.T) {
	t.Parallel()

	list := indexlist.New[int]()

	mustPushBack(t, list, 5)
	mustPushBack(t, list, 10)
	mustPushBack(t, list, 15)

	var got []int
	list.Values()(func(v int) bool {
		got = append(got, v)

		return true
	})

	if diff := cmp.Diff([]int{5, 10, 15}, got); diff != "" {
		t.Fatalf("Values order (-want +got):\n%s", diff)
	}
}

func Test_Next_And_Prev_Walk_The_Chain_Handle_By_Handle(t *testing.T) {
	t.Parallel()

	list := indexlist.New[int]()

	five := mustPushBack(t, list, 5)
	ten := mustPushBack(t, list, 10)

	next, ok := list.Next(five)
	if !ok {
		t.Fatal("Next(five) not found")
	}

	if next != ten {
		t.Fatalf("Next(five) = %v, want %v", next, ten)
	}

	if _, ok := list.Next(ten); ok {
		t.Fatal("Next(tail) returned a handle")
	}

	prev, ok := list.Prev(ten)
	if !ok {
		t.Fatal("Prev(ten) not found")
	}

	if prev != five {
		t.Fatalf("Prev(ten) = %v, want %v", prev, five)
	}

	if _, ok := list.Prev(five); ok {
		t.Fatal("Prev(head) returned a handle")
	}

	// Stale handles walk nowhere.
	if _, err := list.Remove(five); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	if _, ok := list.Next(five); ok {
		t.Fatal("Next(stale) returned a handle")
	}

	if _, ok := list.Prev(five); ok {
		t.Fatal("Prev(stale) returned a handle")
	}
}
