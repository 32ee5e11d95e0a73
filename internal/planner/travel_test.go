package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neexbeast/itinerary-planner/internal/destination"
	"github.com/neexbeast/itinerary-planner/internal/planner"
)

func named(name string) destination.EnrichedPOI {
	return destination.EnrichedPOI{POI: destination.POI{Name: name}}
}

func TestEstimateTravel_FirstStopIsZero(t *testing.T) {
	assert.Equal(t, 0, planner.EstimateTravel(nil, named("Louvre Museum")))
}

func TestEstimateTravel_Deterministic(t *testing.T) {
	from, to := named("Louvre Museum"), named("Eiffel Tower")

	first := planner.EstimateTravel(&from, to)
	for range 10 {
		assert.Equal(t, first, planner.EstimateTravel(&from, to))
	}

	// Only names feed the seed.
	other := destination.EnrichedPOI{POI: destination.POI{Name: "Eiffel Tower", Hours: 9, Rating: 1}}
	assert.Equal(t, first, planner.EstimateTravel(&from, other))
}

func TestEstimateTravel_Range(t *testing.T) {
	cat := destination.DefaultCatalog()
	var all []destination.EnrichedPOI
	for _, d := range cat.Destinations() {
		pois, _ := cat.Lookup(t.Context(), d)
		for _, p := range pois {
			all = append(all, destination.EnrichedPOI{POI: p})
		}
	}

	seen := map[int]bool{}
	for i := range all {
		for j := range all {
			m := planner.EstimateTravel(&all[i], all[j])
			assert.GreaterOrEqual(t, m, 10)
			assert.LessOrEqual(t, m, 45)
			seen[m] = true
		}
	}
	assert.Greater(t, len(seen), 5, "estimates should spread across the range")
}
