package planner

import (
	"fmt"
	"strings"
)

// destinationItems are appended, in this order, when any requested
// destination name contains the match string.
var destinationItems = []struct {
	match string
	item  string
}{
	{match: "Paris", item: "umbrella (Paris weather)"},
	{match: "Tokyo", item: "power adapter (Japan)"},
}

// Pack returns the style's base packing list followed by destination add-ons.
func Pack(profiles Profiles, style string, destinations []string) ([]string, []string) {
	packing := profiles.Resolve(style).Packing

	for _, extra := range destinationItems {
		for _, d := range destinations {
			if strings.Contains(d, extra.match) {
				packing = append(packing, extra.item)
				break
			}
		}
	}

	return packing, []string{fmt.Sprintf("Packing: suggested %d items.", len(packing))}
}
