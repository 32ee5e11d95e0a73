// Package planner builds multi-day itineraries from catalog POIs.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/neexbeast/itinerary-planner/internal/destination"
)

const defaultTripDays = 3

// MaxTripDays is the longest date range a single plan may cover.
const MaxTripDays = 366

// TripDays returns the number of calendar days from start to end inclusive.
// It is 0 when end is before start.
func TripDays(start, end time.Time) int {
	start, end = dateOnly(start), dateOnly(end)
	if end.Before(start) {
		return 0
	}
	// time.Duration saturates at about 292 years, which is still far above MaxTripDays.
	return int(end.Sub(start).Hours()/24) + 1
}

// poiEnricher is the interface satisfied by destination.Enricher.
type poiEnricher interface {
	EnrichAll(ctx context.Context, dest string, pois []destination.POI) ([]destination.EnrichedPOI, []string)
}

// Request holds the parsed inputs of one planning call. A nil StartDate or
// EndDate selects a three-day trip starting today.
type Request struct {
	Destinations []string
	StartDate    *time.Time
	EndDate      *time.Time
	Budget       float64
	Style        string
}

// Planner runs the enrich, schedule, budget and packing steps for a request.
type Planner struct {
	catalog  destination.Catalog
	enricher poiEnricher
	profiles Profiles
	now      func() time.Time
	log      *slog.Logger
}

// New constructs a Planner.
func New(catalog destination.Catalog, enricher poiEnricher, profiles Profiles, log *slog.Logger) *Planner {
	if log == nil {
		log = slog.Default()
	}
	return &Planner{catalog: catalog, enricher: enricher, profiles: profiles, now: time.Now, log: log}
}

// NewWithClock constructs a Planner whose default dates derive from now (for tests).
func NewWithClock(catalog destination.Catalog, enricher poiEnricher, profiles Profiles, log *slog.Logger, now func() time.Time) *Planner {
	p := New(catalog, enricher, profiles, log)
	p.now = now
	return p
}

// Plan builds the plan for req and returns it with the activity log.
// It fails with ErrValidation when the resolved range ends before it starts
// or spans more than MaxTripDays, and otherwise only when the catalog fails.
func (p *Planner) Plan(ctx context.Context, req Request) (*Plan, []string, error) {
	start, end := p.resolveDates(req.StartDate, req.EndDate)
	if end.Before(start) {
		return nil, nil, fmt.Errorf("%w: end_date must not be before start_date", ErrValidation)
	}
	if TripDays(start, end) > MaxTripDays {
		return nil, nil, fmt.Errorf("%w: trip must not be longer than %d days", ErrValidation, MaxTripDays)
	}
	dests := uniqueDestinations(req.Destinations)
	style := req.Style
	if style == "" {
		style = DefaultStyle
	}

	var log []string

	groups := make([]DestinationPOIs, 0, len(dests))
	for _, d := range dests {
		pois, err := p.catalog.Lookup(ctx, d)
		if err != nil {
			return nil, log, fmt.Errorf("looking up POIs for %s: %w", d, err)
		}
		enriched, l := p.enricher.EnrichAll(ctx, d, pois)
		groups = append(groups, DestinationPOIs{Destination: d, POIs: enriched})
		log = append(log, l...)
	}

	itinerary, l := Schedule(groups, start, end, p.profiles.Resolve(style).DailyHours)
	log = append(log, l...)

	budget, l := EvaluateBudget(itinerary, req.Budget)
	log = append(log, l...)

	packing, l := Pack(p.profiles, style, dests)
	log = append(log, l...)

	plan := &Plan{
		ID:           uuid.NewString(),
		Destinations: dests,
		StartDate:    start.Format(dateLayout),
		EndDate:      end.Format(dateLayout),
		Style:        style,
		Itinerary:    itinerary,
		Budget:       budget,
		Packing:      packing,
	}

	p.log.InfoContext(ctx, "plan built",
		"plan_id", plan.ID,
		"destinations", len(dests),
		"days", len(itinerary),
		"total_cost", budget.Total,
		"within_budget", budget.WithinBudget,
	)

	return plan, log, nil
}

func (p *Planner) resolveDates(start, end *time.Time) (time.Time, time.Time) {
	if start == nil || end == nil {
		today := dateOnly(p.now())
		return today, today.AddDate(0, 0, defaultTripDays-1)
	}
	return dateOnly(*start), dateOnly(*end)
}

// uniqueDestinations keeps the first occurrence of each destination name.
func uniqueDestinations(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, d := range in {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
