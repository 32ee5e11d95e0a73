package destination

import (
	"context"
	"sort"
)

// Catalog looks up the points of interest for a destination.
// An unknown destination yields an empty slice, not an error.
type Catalog interface {
	Lookup(ctx context.Context, destination string) ([]POI, error)
}

// StaticCatalog is an immutable in-memory catalog keyed by destination name.
type StaticCatalog struct {
	pois map[string][]POI
}

// NewStaticCatalog copies entries into a new StaticCatalog.
func NewStaticCatalog(entries map[string][]POI) *StaticCatalog {
	pois := make(map[string][]POI, len(entries))
	for dest, list := range entries {
		pois[dest] = append([]POI(nil), list...)
	}
	return &StaticCatalog{pois: pois}
}

// Lookup returns a copy of the POIs for destination in catalog order.
func (c *StaticCatalog) Lookup(_ context.Context, destination string) ([]POI, error) {
	list, ok := c.pois[destination]
	if !ok {
		return nil, nil
	}
	return append([]POI(nil), list...), nil
}

// Destinations returns the catalog's destination names sorted alphabetically.
func (c *StaticCatalog) Destinations() []string {
	names := make([]string, 0, len(c.pois))
	for name := range c.pois {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListDestinations is Destinations with the signature shared by database-backed catalogs.
func (c *StaticCatalog) ListDestinations(_ context.Context) ([]string, error) {
	return c.Destinations(), nil
}

// DefaultCatalog returns the built-in demo catalog.
func DefaultCatalog() *StaticCatalog {
	return NewStaticCatalog(map[string][]POI{
		"Paris": {
			{Name: "Eiffel Tower", Hours: 2, Cost: 30, Category: CategorySight, Address: "Champ de Mars, 5 Avenue Anatole France, 75007 Paris", Rating: 4.7},
			{Name: "Louvre Museum", Hours: 3, Cost: 17, Category: CategoryMuseum, Address: "Rue de Rivoli, 75001 Paris", Rating: 4.8},
			{Name: "Notre-Dame Cathedral", Hours: 1.5, Cost: 0, Category: CategorySight, Address: "6 Parvis Notre-Dame - Pl. Jean-Paul II, 75004 Paris", Rating: 4.6},
			{Name: "Montmartre & Sacré-Cœur", Hours: 2, Cost: 0, Category: CategoryNeighbourhood, Address: "75018 Paris", Rating: 4.5},
			{Name: "Seine River Cruise", Hours: 1, Cost: 15, Category: CategoryExperience, Address: "Port de la Bourdonnais, 75007 Paris", Rating: 4.2},
			{Name: "Musée d'Orsay", Hours: 2, Cost: 16, Category: CategoryMuseum, Address: "1 Rue de la Légion d'Honneur, 75007 Paris", Rating: 4.6},
		},
		"Tokyo": {
			{Name: "Senso-ji Temple", Hours: 1.5, Cost: 0, Category: CategorySight, Address: "2 Chome-3-1 Asakusa, Taito City", Rating: 4.6},
			{Name: "Shibuya Crossing", Hours: 1, Cost: 0, Category: CategoryExperience, Address: "Shibuya City, Tokyo", Rating: 4.4},
			{Name: "Meiji Shrine", Hours: 1.5, Cost: 0, Category: CategorySight, Address: "1-1 Yoyogikamizonocho, Shibuya City", Rating: 4.7},
			{Name: "Tsukiji Outer Market", Hours: 2, Cost: 10, Category: CategoryFood, Address: "4 Chome-16-2 Tsukiji, Chuo City", Rating: 4.5},
			{Name: "Akihabara", Hours: 2, Cost: 0, Category: CategoryNeighbourhood, Address: "Chiyoda City, Tokyo", Rating: 4.3},
		},
		"New York": {
			{Name: "Statue of Liberty", Hours: 3, Cost: 25, Category: CategorySight, Address: "Liberty Island, New York, NY", Rating: 4.7},
			{Name: "Central Park", Hours: 2, Cost: 0, Category: CategoryPark, Address: "New York, NY", Rating: 4.8},
			{Name: "Metropolitan Museum of Art", Hours: 3, Cost: 25, Category: CategoryMuseum, Address: "1000 5th Ave, New York, NY", Rating: 4.7},
		},
		"London": {
			{Name: "Tower of London", Hours: 2.5, Cost: 30, Category: CategorySight, Address: "St Katharine's & Wapping, London EC3N 4AB", Rating: 4.6},
			{Name: "British Museum", Hours: 2.5, Cost: 0, Category: CategoryMuseum, Address: "Great Russell St, Bloomsbury, London", Rating: 4.7},
		},
	})
}

// Entries returns a deep copy of every destination's POIs.
func (c *StaticCatalog) Entries() map[string][]POI {
	out := make(map[string][]POI, len(c.pois))
	for dest, list := range c.pois {
		out[dest] = append([]POI(nil), list...)
	}
	return out
}
