package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neexbeast/itinerary-planner/internal/planner"
)

func TestPack(t *testing.T) {
	profiles := planner.DefaultProfiles()

	tests := []struct {
		name         string
		style        string
		destinations []string
		want         []string
	}{
		{
			name:         "relaxed no add-ons",
			style:        "relaxed",
			destinations: []string{"London"},
			want:         []string{"casual clothes", "walking shoes", "hat"},
		},
		{
			name:         "unknown style falls back to relaxed",
			style:        "unknown-style",
			destinations: []string{"Paris"},
			want:         []string{"casual clothes", "walking shoes", "hat", "umbrella (Paris weather)"},
		},
		{
			name:         "add-ons follow table order",
			style:        "adventurous",
			destinations: []string{"Tokyo", "Paris"},
			want:         []string{"hiking shoes", "daypack", "water bottle", "umbrella (Paris weather)", "power adapter (Japan)"},
		},
		{
			name:         "substring match adds item once",
			style:        "budget",
			destinations: []string{"Paris", "Disneyland Paris"},
			want:         []string{"comfortable clothes", "power bank", "snacks", "umbrella (Paris weather)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, log := planner.Pack(profiles, tt.style, tt.destinations)
			assert.Equal(t, tt.want, got)
			assert.Len(t, log, 1)
		})
	}
}

func TestPack_DoesNotAliasProfile(t *testing.T) {
	profiles := planner.DefaultProfiles()

	got, _ := planner.Pack(profiles, "luxury", []string{"Paris"})
	got[0] = "changed"

	again, _ := planner.Pack(profiles, "luxury", nil)
	assert.Equal(t, []string{"smart outfit", "charger", "sunglasses"}, again)
}

func TestProfiles_Resolve(t *testing.T) {
	profiles := planner.DefaultProfiles()

	assert.Equal(t, 9.0, profiles.Resolve("adventurous").DailyHours)
	assert.Equal(t, 6.0, profiles.Resolve("nope").DailyHours)
	assert.Equal(t, []string{"adventurous", "budget", "luxury", "relaxed"}, profiles.Names())
}
