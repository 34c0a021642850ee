package factories

import (
	"strings"

	"github.com/openmuseum/collections-import/internal/emu"
	"github.com/openmuseum/collections-import/internal/entities"
)

// MakeMuseumLocation resolves the on-display location from the nested
// holder-location chain. The chain is walked until a holder of type
// "Location" carries the venue levels; objects in storage yield nil.
func MakeMuseumLocation(rec emu.Record) *entities.MuseumLocation {
	for current := rec; current != nil; current = current.GetMap("location") {
		if !strings.EqualFold(current.GetEncodedString("LocLocationType"), "Location") {
			continue
		}
		venue := current.GetEncodedString("LocLevel1")
		gallery := concatenate(", ",
			current.GetEncodedString("LocLevel2"),
			current.GetEncodedString("LocLevel3"))
		if venue == "" && gallery == "" {
			continue
		}
		return &entities.MuseumLocation{
			Venue:   venue,
			Gallery: gallery,
		}
	}
	return nil
}
