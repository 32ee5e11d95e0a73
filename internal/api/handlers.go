package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/neexbeast/itinerary-planner/internal/planner"
)

const dateLayout = "2006-01-02"

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	planner  Planner
	catalog  DestinationLister
	profiles planner.Profiles
	log      *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(p Planner, catalog DestinationLister, profiles planner.Profiles, log *slog.Logger) *Handlers {
	return &Handlers{
		planner:  p,
		catalog:  catalog,
		profiles: profiles,
		log:      log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// planRequest is the JSON body of POST /api/v1/plan.
type planRequest struct {
	Destinations string     `json:"destinations"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	Budget       flexNumber `json:"budget"`
	Style        string     `json:"style"`
}

// flexNumber accepts a JSON number, a numeric string, an empty string or null.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
		if s == "" {
			return nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("budget must be a finite number, got %s", string(b))
	}
	*n = flexNumber(f)
	return nil
}

type planResponse struct {
	Itinerary *planner.Plan `json:"itinerary"`
	Log       []string      `json:"log"`
}

// CreatePlan handles POST /api/v1/plan.
func (h *Handlers) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var body planRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	req, err := parsePlanRequest(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	plan, log, err := h.planner.Plan(r.Context(), req)
	if err != nil {
		if isValidation(err) {
			writeError(w, http.StatusBadRequest, validationMessage(err))
			return
		}
		h.log.Error("plan failed", "destinations", req.Destinations, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to build plan")
		return
	}

	writeJSON(w, http.StatusOK, planResponse{Itinerary: plan, Log: log})
}

// parsePlanRequest validates body and converts it into a planner.Request.
// Any date that is present must be well formed; the range is only used when
// both dates are present.
func parsePlanRequest(body planRequest) (planner.Request, error) {
	dests := ParseDestinations(body.Destinations)
	if len(dests) == 0 {
		return planner.Request{}, fmt.Errorf("%w: Please enter at least one destination in the search box.", planner.ErrValidation)
	}

	req := planner.Request{
		Destinations: dests,
		Budget:       float64(body.Budget),
		Style:        strings.TrimSpace(body.Style),
	}
	if req.Budget < 0 {
		return planner.Request{}, fmt.Errorf("%w: budget must not be negative", planner.ErrValidation)
	}

	start, err := parseDate("start_date", body.StartDate)
	if err != nil {
		return planner.Request{}, err
	}
	end, err := parseDate("end_date", body.EndDate)
	if err != nil {
		return planner.Request{}, err
	}
	if start == nil || end == nil {
		return req, nil
	}

	if end.Before(*start) {
		return planner.Request{}, fmt.Errorf("%w: end_date must not be before start_date", planner.ErrValidation)
	}
	if planner.TripDays(*start, *end) > planner.MaxTripDays {
		return planner.Request{}, fmt.Errorf("%w: trip must not be longer than %d days", planner.ErrValidation, planner.MaxTripDays)
	}

	req.StartDate, req.EndDate = start, end
	return req, nil
}

// parseDate parses a YYYY-MM-DD field. A blank value yields nil.
func parseDate(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", planner.ErrValidation, field)
	}
	return &d, nil
}

// ParseDestinations splits a comma- or newline-separated list, trimming
// whitespace and dropping empty entries.
func ParseDestinations(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '\n' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := strings.TrimSpace(f); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ListStyles handles GET /api/v1/styles.
func (h *Handlers) ListStyles(w http.ResponseWriter, _ *http.Request) {
	styles := make(map[string]planner.Profile)
	for _, name := range h.profiles.Names() {
		styles[name] = h.profiles.Resolve(name)
	}
	writeJSON(w, http.StatusOK, map[string]any{"default": planner.DefaultStyle, "styles": styles})
}

// ListDestinations handles GET /api/v1/destinations.
func (h *Handlers) ListDestinations(w http.ResponseWriter, r *http.Request) {
	names, err := h.catalog.ListDestinations(r.Context())
	if err != nil {
		h.log.Error("list destinations failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"destinations": names})
}

// HealthHandlerFunc returns an http.HandlerFunc that pings the configured
// backing services. A nil pinger is reported as "disabled" and does not
// degrade the status.
func HealthHandlerFunc(db, redis Pinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		check := func(name string, p Pinger) string {
			if p == nil {
				return "disabled"
			}
			if err := p.Ping(ctx); err != nil {
				log.Error("health check: ping failed", "service", name, "err", err)
				status = http.StatusServiceUnavailable
				return "error"
			}
			return "ok"
		}

		body := map[string]string{
			"db":    check("db", db),
			"redis": check("redis", redis),
		}
		body["status"] = "ok"
		if status != http.StatusOK {
			body["status"] = "degraded"
		}

		writeJSON(w, status, body)
	}
}

// isValidation reports whether err is a request validation failure.
func isValidation(err error) bool {
	return errors.Is(err, planner.ErrValidation)
}

func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), planner.ErrValidation.Error()+": ")
}
