// Deterministic tests comparing the list against the in-memory reference
// model. Uses seeded PRNG for reproducible operation sequences across
// multiple capacity profiles.
//
// Failures mean: the API returned wrong results or wrong errors.

package indexlist_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/calvinalkan/indexlist/pkg/indexlist/internal/testutil"
)

// capacityProfile pins a MaxSlots setting so both the unbounded and the
// ErrFull-heavy paths get equal coverage.
type capacityProfile struct {
	name     string
	maxSlots int
}

var capacityProfiles = []capacityProfile{
	{"Unbounded", 0},
	{"MaxSlots1", 1},
	{"MaxSlots4", 4},
	{"MaxSlots32", 32},
}

func Test_List_Matches_Model_When_Seeded_Random_Ops_Applied(t *testing.T) {
	t.Parallel()

	seedsPerProfile := 25
	if testing.Short() {
		seedsPerProfile = 5
	}

	bytesPerSeed := 8192

	for _, profile := range capacityProfiles {
		for seedIndex := range seedsPerProfile {
			seed := uint64(seedIndex + 1)
			testName := fmt.Sprintf("%s/seed=%d", profile.name, seed)

			t.Run(testName, func(t *testing.T) {
				t.Parallel()

				rng := rand.New(rand.NewPCG(seed, seed))

				stream := make([]byte, bytesPerSeed)
				for i := range stream {
					stream[i] = byte(rng.UintN(256))
				}

				testutil.RunModelComparison(t, stream, testutil.RunConfig{
					HeavyCompareEveryN: 16,
					MaxSlots:           profile.maxSlots,
				})
			})
		}
	}
}

// Removal-heavy streams drive deep free-chain recycling, which the uniform
// op mix reaches only shallowly.
func Test_List_Matches_Model_When_Removal_Heavy_Ops_Applied(t *testing.T) {
	t.Parallel()

	seedCount := 10
	if testing.Short() {
		seedCount = 2
	}

	for seedIndex := range seedCount {
		seed := uint64(seedIndex + 1)

		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewPCG(seed, seed^0xdead))

			stream := make([]byte, 8192)
			for i := range stream {
				// Bias the op byte toward Remove/Pop codes every other
				// position; odd positions stay uniform for operands.
				if i%2 == 0 && rng.UintN(4) > 0 {
					stream[i] = byte(4 + rng.UintN(5)) // Remove..PopBack
				} else {
					stream[i] = byte(rng.UintN(256))
				}
			}

			testutil.RunModelComparison(t, stream, testutil.RunConfig{
				HeavyCompareEveryN: 8,
				MaxSlots:           16,
			})
		})
	}
}
