// Native fuzz targets. The corpus format is the op-stream byte encoding
// shared with the seeded model tests, so any crasher replays there directly.

package indexlist_test

import (
	"testing"

	"github.com/calvinalkan/indexlist/pkg/indexlist/internal/testutil"
)

func Fuzz_List_Matches_Model(f *testing.F) {
	// Seed with shapes the mutator can grow from: pure pushes, push/pop
	// churn, insert-around-anchor, and stale-handle probing.
	f.Add([]byte{0, 1, 0, 1, 0, 1})
	f.Add([]byte{1, 1, 1, 7, 7, 7, 8, 8})
	f.Add([]byte{1, 2, 0, 3, 0, 4, 0, 5, 0})
	f.Add([]byte{1, 4, 0, 4, 0, 5, 0, 2, 0, 6, 0})

	f.Fuzz(func(t *testing.T, stream []byte) {
		testutil.RunModelComparison(t, stream, testutil.RunConfig{
			MaxOps:             2048,
			HeavyCompareEveryN: 32,
			MaxSlots:           64,
		})
	})
}

func Fuzz_List_Invariants_Hold_Under_Arbitrary_Ops(f *testing.F) {
	f.Add([]byte{0, 4, 0, 0, 4, 0})

	// Same decoder with periodic heavy compares disabled; the invariant
	// check still runs once at the end, so this target gets far more
	// executions per second hunting for corrupt-list states.
	f.Fuzz(func(t *testing.T, stream []byte) {
		testutil.RunModelComparison(t, stream, testutil.RunConfig{
			MaxOps:   4096,
			MaxSlots: 16,
		})
	})
}
