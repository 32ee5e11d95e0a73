package planner

import "errors"

// ErrValidation marks request errors the caller can fix.
var ErrValidation = errors.New("validation error")

// Event is a POI placed on a specific day.
type Event struct {
	Name          string  `json:"name"`
	Hours         float64 `json:"duration_hr"`
	TravelMinutes int     `json:"travel_from_prev_mins"`
	Cost          float64 `json:"cost"`
	Category      string  `json:"type"`
	Rating        float64 `json:"rating"`
	Description   string  `json:"description"`
	Address       string  `json:"address"`
	OpeningHours  string  `json:"opening_hours"`
	Website       string  `json:"website"`
	MapLink       string  `json:"map_link"`
	Destination   string  `json:"destination"`
}

// Day is a calendar date plus its events in visiting order.
type Day struct {
	Date   string  `json:"date"`
	Events []Event `json:"events"`
}

// Itinerary covers every date of a trip, in order.
type Itinerary []Day

// BudgetSummary is the result of comparing event costs against a ceiling.
type BudgetSummary struct {
	Total        float64 `json:"total"`
	WithinBudget bool    `json:"within_budget"`
}

// Plan is the assembled result for one request.
type Plan struct {
	ID           string        `json:"id"`
	Destinations []string      `json:"destinations"`
	StartDate    string        `json:"start_date"`
	EndDate      string        `json:"end_date"`
	Style        string        `json:"style"`
	Itinerary    Itinerary     `json:"itinerary"`
	Budget       BudgetSummary `json:"budget"`
	Packing      []string      `json:"packing"`
}
