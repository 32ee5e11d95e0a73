package api

import (
	"context"

	"github.com/neexbeast/itinerary-planner/internal/planner"
)

// Planner builds a plan for a parsed request.
type Planner interface {
	Plan(ctx context.Context, req planner.Request) (*planner.Plan, []string, error)
}

// DestinationLister lists the destinations the catalog knows about.
type DestinationLister interface {
	ListDestinations(ctx context.Context) ([]string, error)
}

// Pinger checks connectivity of an optional backing service.
type Pinger interface {
	Ping(ctx context.Context) error
}
