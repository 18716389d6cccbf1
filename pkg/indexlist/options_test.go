// Construction options and capacity behavior.

package indexlist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/indexlist/pkg/indexlist"
)

func Test_NewWithOptions_Rejects_Invalid_Fields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		opts indexlist.Options
	}{
		{"NegativeInitialCapacity", indexlist.Options{InitialCapacity: -1}},
		{"NegativeMaxSlots", indexlist.Options{MaxSlots: -1}},
		{"InitialCapacityAboveMaxSlots", indexlist.Options{InitialCapacity: 9, MaxSlots: 8}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := indexlist.NewWithOptions[int](tc.opts)
			require.ErrorIs(t, err, indexlist.ErrInvalidInput)
		})
	}
}

func Test_InitialCapacity_Preallocates_Without_Creating_Slots(t *testing.T) {
	t.Parallel()

	list, err := indexlist.NewWithOptions[int](indexlist.Options{InitialCapacity: 64})
	require.NoError(t, err)

	require.Equal(t, 0, list.Slots())
	require.Equal(t, 0, list.Len())
}

func Test_Push_Fails_With_ErrFull_When_MaxSlots_Reached(t *testing.T) {
	t.Parallel()

	list, err := indexlist.NewWithOptions[int](indexlist.Options{MaxSlots: 2})
	require.NoError(t, err)

	a, err := list.PushBack(1)
	require.NoError(t, err)

	_, err = list.PushBack(2)
	require.NoError(t, err)

	_, err = list.PushBack(3)
	require.ErrorIs(t, err, indexlist.ErrFull)

	_, err = list.PushFront(3)
	require.ErrorIs(t, err, indexlist.ErrFull)

	_, err = list.InsertAfter(a, 3)
	require.ErrorIs(t, err, indexlist.ErrFull)

	// A stale anchor still wins over a full store: validation precedes
	// allocation.
	_, err = list.Remove(a)
	require.NoError(t, err)

	_, err = list.InsertBefore(a, 3)
	require.ErrorIs(t, err, indexlist.ErrInvalidHandle)

	// Freed capacity is reusable.
	_, err = list.PushBack(4)
	require.NoError(t, err)

	require.Equal(t, 2, list.Slots())
	require.NoError(t, list.Check())
}

func Test_Failed_Push_Leaves_List_Untouched(t *testing.T) {
	t.Parallel()

	list, err := indexlist.NewWithOptions[int](indexlist.Options{MaxSlots: 1})
	require.NoError(t, err)

	_, err = list.PushBack(1)
	require.NoError(t, err)

	_, err = list.PushBack(2)
	require.ErrorIs(t, err, indexlist.ErrFull)

	require.Equal(t, 1, list.Len())

	front, err := list.Front()
	require.NoError(t, err)
	require.Equal(t, 1, front)

	require.NoError(t, list.Check())
}
