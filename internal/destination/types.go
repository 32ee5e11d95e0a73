package destination

// Category classifies a point of interest.
type Category string

const (
	CategorySight         Category = "sight"
	CategoryMuseum        Category = "museum"
	CategoryNeighbourhood Category = "neighbourhood"
	CategoryExperience    Category = "experience"
	CategoryFood          Category = "food"
	CategoryPark          Category = "park"
)

// POI represents a single point of interest as stored in a catalog.
type POI struct {
	Name     string   `json:"name"`
	Category Category `json:"type"`
	Hours    float64  `json:"time_hr"`
	Cost     float64  `json:"cost"`
	Address  string   `json:"address"`
	Rating   float64  `json:"rating"`
}

// EnrichedPOI is a copy of a catalog POI augmented with a description,
// opening hours and informational links.
type EnrichedPOI struct {
	POI
	Destination  string `json:"destination"`
	Description  string `json:"description"`
	OpeningHours string `json:"opening_hours"`
	Website      string `json:"website"`
	MapLink      string `json:"map_link"`
}
