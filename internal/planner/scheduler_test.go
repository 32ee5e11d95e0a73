package planner_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/itinerary-planner/internal/destination"
	"github.com/neexbeast/itinerary-planner/internal/planner"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func enrichedFor(dest string, pois []destination.POI) []destination.EnrichedPOI {
	out := make([]destination.EnrichedPOI, 0, len(pois))
	for _, p := range pois {
		out = append(out, destination.EnrichedPOI{POI: p, Destination: dest, Description: p.Name})
	}
	return out
}

func parisGroup(t *testing.T) planner.DestinationPOIs {
	t.Helper()
	pois, err := destination.DefaultCatalog().Lookup(t.Context(), "Paris")
	require.NoError(t, err)
	return planner.DestinationPOIs{Destination: "Paris", POIs: enrichedFor("Paris", pois)}
}

func eventNames(day planner.Day) []string {
	names := make([]string, 0, len(day.Events))
	for _, ev := range day.Events {
		names = append(names, ev.Name)
	}
	return names
}

// dayHours returns the time a day consumes, travel included.
func dayHours(day planner.Day) float64 {
	var h float64
	for _, ev := range day.Events {
		h += ev.Hours + float64(ev.TravelMinutes)/60
	}
	return h
}

func TestSchedule_ParisSingleDay(t *testing.T) {
	day := date(t, "2024-01-01")

	it, log := planner.Schedule([]planner.DestinationPOIs{parisGroup(t)}, day, day, 6)

	require.Len(t, it, 1)
	assert.Equal(t, "2024-01-01", it[0].Date)
	// Louvre (3h) leaves 3h; Eiffel (2h) plus at most 45 minutes of travel fits;
	// Notre-Dame (1.5h) cannot fit in what remains.
	assert.Equal(t, []string{"Louvre Museum", "Eiffel Tower"}, eventNames(it[0]))
	assert.Equal(t, 0, it[0].Events[0].TravelMinutes)
	assert.LessOrEqual(t, dayHours(it[0]), 6.0)

	require.Len(t, log, 2)
	assert.Equal(t, "Scheduler: scheduled 2 events for 2024-01-01.", log[0])
	assert.Equal(t,
		"Scheduler: 4 items overflow: [Notre-Dame Cathedral, Musée d'Orsay, Montmartre & Sacré-Cœur, Seine River Cruise]",
		log[1])
}

func TestSchedule_RatingOrderWithStableTies(t *testing.T) {
	start, end := date(t, "2024-01-01"), date(t, "2024-01-10")

	it, log := planner.Schedule([]planner.DestinationPOIs{parisGroup(t)}, start, end, 24)

	var order []string
	for _, d := range it {
		order = append(order, eventNames(d)...)
	}
	assert.Equal(t, []string{
		"Louvre Museum",
		"Eiffel Tower",
		"Notre-Dame Cathedral",
		"Musée d'Orsay",
		"Montmartre & Sacré-Cœur",
		"Seine River Cruise",
	}, order)
	assert.NotContains(t, log[len(log)-1], "overflow")
}

func TestSchedule_DayStopsAtFirstMisfit(t *testing.T) {
	pois := []destination.POI{
		{Name: "Long", Hours: 3, Rating: 5},
		{Name: "Too Long", Hours: 3, Rating: 4},
		{Name: "Short", Hours: 0.1, Rating: 3},
	}
	group := planner.DestinationPOIs{Destination: "X", POIs: enrichedFor("X", pois)}
	day := date(t, "2024-03-01")

	it, log := planner.Schedule([]planner.DestinationPOIs{group}, day, day, 4)

	// "Short" would fit after "Long" but the day closes at "Too Long".
	assert.Equal(t, []string{"Long"}, eventNames(it[0]))
	assert.Equal(t, "Scheduler: 2 items overflow: [Too Long, Short]", log[len(log)-1])
}

func TestSchedule_CursorCarriesAcrossDays(t *testing.T) {
	pois := []destination.POI{
		{Name: "A", Hours: 3, Rating: 5},
		{Name: "B", Hours: 3, Rating: 4},
		{Name: "C", Hours: 3, Rating: 3},
	}
	group := planner.DestinationPOIs{Destination: "X", POIs: enrichedFor("X", pois)}

	it, log := planner.Schedule([]planner.DestinationPOIs{group}, date(t, "2024-03-01"), date(t, "2024-03-03"), 3.5)

	require.Len(t, it, 3)
	assert.Equal(t, []string{"A"}, eventNames(it[0]))
	assert.Equal(t, []string{"B"}, eventNames(it[1]))
	assert.Equal(t, []string{"C"}, eventNames(it[2]))
	for _, d := range it {
		assert.Equal(t, 0, d.Events[0].TravelMinutes, "first stop of a day has no travel")
	}
	assert.Len(t, log, 3, "no overflow line when everything fits")
}

func TestSchedule_FlattensDestinationsInOrder(t *testing.T) {
	a := planner.DestinationPOIs{Destination: "A", POIs: enrichedFor("", []destination.POI{{Name: "a1", Hours: 1, Rating: 4}})}
	b := planner.DestinationPOIs{Destination: "B", POIs: enrichedFor("", []destination.POI{{Name: "b1", Hours: 1, Rating: 4}})}
	day := date(t, "2024-03-01")

	it, _ := planner.Schedule([]planner.DestinationPOIs{b, a}, day, day, 24)

	require.Len(t, it[0].Events, 2)
	assert.Equal(t, "b1", it[0].Events[0].Name)
	assert.Equal(t, "B", it[0].Events[0].Destination, "destination is tagged from the group")
	assert.Equal(t, "a1", it[0].Events[1].Name)
	assert.Equal(t, "A", it[0].Events[1].Destination)
}

func TestSchedule_EmptyInputYieldsEmptyDays(t *testing.T) {
	it, log := planner.Schedule(nil, date(t, "2024-02-27"), date(t, "2024-03-02"), 6)

	require.Len(t, it, 5)
	want := []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}
	for i, d := range it {
		assert.Equal(t, want[i], d.Date)
		assert.Empty(t, d.Events)
		assert.Equal(t, "Scheduler: scheduled 0 events for "+want[i]+".", log[i])
	}
}

func TestSchedule_EndBeforeStart(t *testing.T) {
	it, log := planner.Schedule([]planner.DestinationPOIs{parisGroup(t)}, date(t, "2024-01-02"), date(t, "2024-01-01"), 6)

	assert.Empty(t, it)
	require.Len(t, log, 1)
	assert.Contains(t, log[0], "6 items overflow")
}

func TestSchedule_DayBudgetInvariant(t *testing.T) {
	cat := destination.DefaultCatalog()
	var groups []planner.DestinationPOIs
	for _, d := range cat.Destinations() {
		pois, err := cat.Lookup(t.Context(), d)
		require.NoError(t, err)
		groups = append(groups, planner.DestinationPOIs{Destination: d, POIs: enrichedFor(d, pois)})
	}

	for _, hours := range []float64{0, 1, 2.5, 5, 6, 7, 9, 13} {
		it, _ := planner.Schedule(groups, date(t, "2024-05-01"), date(t, "2024-05-07"), hours)
		require.Len(t, it, 7)
		for _, d := range it {
			assert.LessOrEqual(t, dayHours(d), hours+1e-9, "day %s over budget at %vh", d.Date, hours)
		}
	}
}

func TestSchedule_DoesNotMutateInput(t *testing.T) {
	group := parisGroup(t)
	before := append([]destination.EnrichedPOI(nil), group.POIs...)
	day := date(t, "2024-01-01")

	planner.Schedule([]planner.DestinationPOIs{group}, day, day, 6)

	assert.Equal(t, before, group.POIs)
}
