package storage

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neexbeast/itinerary-planner/internal/destination"
)

// Querier abstracts the subset of pgxpool.Pool used by Repository.
// This allows injection of a mock in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository is a Postgres-backed POI catalog. It satisfies destination.Catalog.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// Lookup returns the POIs of dest in catalog order.
// An unknown destination yields an empty slice, not an error.
func (r *Repository) Lookup(ctx context.Context, dest string) ([]destination.POI, error) {
	const q = `
		SELECT name, category, hours, cost, address, rating
		FROM pois
		WHERE destination = $1
		ORDER BY position, id
	`

	rows, err := r.q.Query(ctx, q, dest)
	if err != nil {
		return nil, fmt.Errorf("querying POIs for %s: %w", dest, err)
	}
	defer rows.Close()

	var pois []destination.POI
	for rows.Next() {
		var p destination.POI
		var category string
		if err := rows.Scan(&p.Name, &category, &p.Hours, &p.Cost, &p.Address, &p.Rating); err != nil {
			return nil, fmt.Errorf("scanning POI row: %w", err)
		}
		p.Category = destination.Category(category)
		pois = append(pois, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating POI rows: %w", err)
	}

	return pois, nil
}

// ListDestinations returns the distinct destination names in the catalog.
func (r *Repository) ListDestinations(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT destination FROM pois ORDER BY destination`)
	if err != nil {
		return nil, fmt.Errorf("querying destinations: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning destination row: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating destination rows: %w", err)
	}

	return names, nil
}

// UpsertPOI inserts or updates a POI, keyed by (destination, name).
// position fixes the POI's place in catalog order.
func (r *Repository) UpsertPOI(ctx context.Context, dest string, position int, p destination.POI) error {
	const q = `
		INSERT INTO pois (destination, name, category, hours, cost, address, rating, position, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (destination, name) DO UPDATE
		SET category   = EXCLUDED.category,
		    hours      = EXCLUDED.hours,
		    cost       = EXCLUDED.cost,
		    address    = EXCLUDED.address,
		    rating     = EXCLUDED.rating,
		    position   = EXCLUDED.position,
		    updated_at = EXCLUDED.updated_at
	`

	if _, err := r.q.Exec(ctx, q, dest, p.Name, string(p.Category), p.Hours, p.Cost, p.Address, p.Rating, position); err != nil {
		return fmt.Errorf("upserting POI %s for %s: %w", p.Name, dest, err)
	}

	return nil
}

// Seed upserts every entry, destinations in alphabetical order and POIs in
// the order given.
func (r *Repository) Seed(ctx context.Context, entries map[string][]destination.POI) error {
	dests := make([]string, 0, len(entries))
	for d := range entries {
		dests = append(dests, d)
	}
	sort.Strings(dests)

	for _, d := range dests {
		for i, p := range entries[d] {
			if err := r.UpsertPOI(ctx, d, i, p); err != nil {
				return fmt.Errorf("seeding catalog: %w", err)
			}
		}
	}

	return nil
}
