package planner

import (
	"math/bits"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"

	"github.com/neexbeast/itinerary-planner/internal/destination"
)

const (
	minTravelMinutes = 10
	maxTravelMinutes = 45
)

// EstimateTravel returns a reproducible stand-in for the travel time in
// minutes between two POIs. It is 0 when from is nil (first stop of a day)
// and otherwise lies in [10, 45].
//
// The seed is the low 32 bits of XXH64(from.Name) XOR the low 32 bits of
// XXH64(to.Name) rotated left by 16, so swapping from and to changes it. The
// draw comes from a PCG generator seeded with (seed, seed). Both algorithms
// are fixed, which keeps estimates stable across runs.
func EstimateTravel(from *destination.EnrichedPOI, to destination.EnrichedPOI) int {
	if from == nil {
		return 0
	}
	seed := uint64(travelSeed(from.Name, to.Name))
	r := rand.New(rand.NewPCG(seed, seed))
	return minTravelMinutes + r.IntN(maxTravelMinutes-minTravelMinutes+1)
}

func travelSeed(from, to string) uint32 {
	return uint32(xxhash.Sum64String(from)) ^ bits.RotateLeft32(uint32(xxhash.Sum64String(to)), 16)
}
