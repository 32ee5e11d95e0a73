package planner

import "sort"

// DefaultStyle is used whenever a requested style is unknown.
const DefaultStyle = "relaxed"

// Profile is the daily time budget and base packing list for a travel style.
type Profile struct {
	DailyHours float64  `json:"daily_hours"`
	Packing    []string `json:"packing"`
}

// Profiles is an immutable table of travel styles.
type Profiles struct {
	byName map[string]Profile
}

// NewProfiles copies table into a Profiles value. The table must contain
// DefaultStyle.
func NewProfiles(table map[string]Profile) Profiles {
	byName := make(map[string]Profile, len(table))
	for name, p := range table {
		byName[name] = Profile{DailyHours: p.DailyHours, Packing: append([]string(nil), p.Packing...)}
	}
	return Profiles{byName: byName}
}

// DefaultProfiles returns the built-in style table.
func DefaultProfiles() Profiles {
	return NewProfiles(map[string]Profile{
		"relaxed":     {DailyHours: 6, Packing: []string{"casual clothes", "walking shoes", "hat"}},
		"adventurous": {DailyHours: 9, Packing: []string{"hiking shoes", "daypack", "water bottle"}},
		"luxury":      {DailyHours: 5, Packing: []string{"smart outfit", "charger", "sunglasses"}},
		"budget":      {DailyHours: 7, Packing: []string{"comfortable clothes", "power bank", "snacks"}},
	})
}

// Resolve returns the profile for style, falling back to DefaultStyle.
// The packing list is a fresh copy.
func (p Profiles) Resolve(style string) Profile {
	prof, ok := p.byName[style]
	if !ok {
		prof = p.byName[DefaultStyle]
	}
	return Profile{DailyHours: prof.DailyHours, Packing: append([]string(nil), prof.Packing...)}
}

// Names returns the known style names sorted alphabetically.
func (p Profiles) Names() []string {
	names := make([]string, 0, len(p.byName))
	for n := range p.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
