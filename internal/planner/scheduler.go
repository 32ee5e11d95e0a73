package planner

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/neexbeast/itinerary-planner/internal/destination"
)

const dateLayout = "2006-01-02"

// DestinationPOIs groups the enriched POIs of one destination.
type DestinationPOIs struct {
	Destination string
	POIs        []destination.EnrichedPOI
}

// Schedule packs POIs into the days from start to end inclusive.
//
// POIs from all groups are flattened in group order and stable-sorted by
// rating, highest first. A single cursor walks that order across all days:
// a POI is placed when its duration plus the travel time from the previous
// stop fits in the hours left, otherwise the day is closed and the same POI
// is tried first on the next day. Smaller POIs further down are never pulled
// forward. Whatever remains after the last day is reported as overflow.
func Schedule(groups []DestinationPOIs, start, end time.Time, dailyHours float64) (Itinerary, []string) {
	var flat []destination.EnrichedPOI
	for _, g := range groups {
		for _, p := range g.POIs {
			p.Destination = g.Destination
			flat = append(flat, p)
		}
	}
	sort.SliceStable(flat, func(i, j int) bool {
		return flat[i].Rating > flat[j].Rating
	})

	var log []string
	itinerary := Itinerary{}
	cursor := 0

	for date, last := dateOnly(start), dateOnly(end); !date.After(last); date = date.AddDate(0, 0, 1) {
		hoursLeft := dailyHours
		events := []Event{}
		var prev *destination.EnrichedPOI

		for cursor < len(flat) {
			p := flat[cursor]
			travel := EstimateTravel(prev, p)
			needed := p.Hours + float64(travel)/60

			if needed > hoursLeft {
				break
			}

			events = append(events, newEvent(p, travel))
			hoursLeft -= needed
			prev = &flat[cursor]
			cursor++
		}

		day := date.Format(dateLayout)
		itinerary = append(itinerary, Day{Date: day, Events: events})
		log = append(log, fmt.Sprintf("Scheduler: scheduled %d events for %s.", len(events), day))
	}

	if cursor < len(flat) {
		left := make([]string, 0, len(flat)-cursor)
		for _, p := range flat[cursor:] {
			left = append(left, p.Name)
		}
		log = append(log, fmt.Sprintf("Scheduler: %d items overflow: [%s]", len(left), strings.Join(left, ", ")))
	}

	return itinerary, log
}

// dateOnly drops the clock part of t, keeping its calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newEvent(p destination.EnrichedPOI, travelMinutes int) Event {
	return Event{
		Name:          p.Name,
		Hours:         p.Hours,
		TravelMinutes: travelMinutes,
		Cost:          p.Cost,
		Category:      string(p.Category),
		Rating:        p.Rating,
		Description:   p.Description,
		Address:       p.Address,
		OpeningHours:  p.OpeningHours,
		Website:       p.Website,
		MapLink:       p.MapLink,
		Destination:   p.Destination,
	}
}
