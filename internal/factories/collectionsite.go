package factories

import (
	"strings"

	"github.com/openmuseum/collections-import/internal/emu"
	"github.com/openmuseum/collections-import/internal/entities"
)

// Disciplines whose precise site coordinates are safe to publish. Biological
// site details stay withheld so collecting localities of living populations
// are not exposed.
var preciseLocationDisciplines = []string{
	"Mineralogy",
	"Meteorites",
	"Tektites",
	"Petrology",
	"Palaeontology",
}

// MakeCollectionSite builds the collection site sub-object. Precise location
// text and georeferences are only included for geoscience disciplines.
func MakeCollectionSite(rec emu.Record, discipline string) *entities.CollectionSite {
	if rec == nil {
		return nil
	}

	site := &entities.CollectionSite{
		Irn:              rec.Irn(),
		SiteCode:         concatenate("", rec.GetEncodedString("SitSiteCode"), rec.GetEncodedString("SitSiteNumber")),
		MinimumElevation: rec.GetEncodedString("LocElevationASLFromMt"),
		MaximumElevation: rec.GetEncodedString("LocElevationASLToMt"),
		GeologyEra:       rec.GetEncodedString("EraEra"),
		GeologyPeriod:    rec.GetEncodedString("EraAge1"),
		GeologyEpoch:     rec.GetEncodedString("EraAge2"),
		GeologyStage:     rec.GetEncodedString("EraMvStage"),
		GeologyGroup:     rec.GetEncodedStrings("EraMvGroup_tab"),
		GeologyRockUnit:  rec.GetEncodedStrings("EraMvRockUnit_tab"),
		GeologyMember:    rec.GetEncodedStrings("EraMvMember_tab"),
		GeologyLithology: rec.GetEncodedStrings("EraLithology_tab"),
	}

	if geo := firstRecord(rec.GetMaps("geo")); geo != nil {
		site.Ocean = geo.GetEncodedString("LocOcean_tab")
		site.Continent = geo.GetEncodedString("LocContinent_tab")
		site.Country = geo.GetEncodedString("LocCountry_tab")
		site.State = geo.GetEncodedString("LocProvinceStateTerritory_tab")
		site.District = geo.GetEncodedString("LocDistrictCountyShire_tab")
		site.Town = geo.GetEncodedString("LocTownship_tab")
		site.NearestNamedPlace = geo.GetEncodedString("LocNearestNamedPlace_tab")
	}

	if disciplineAllowsPreciseLocation(discipline) {
		site.PreciseLocation = rec.GetEncodedString("LocPreciseLocation")

		for _, latlong := range rec.GetMaps("latlong") {
			if latlong == nil {
				continue
			}
			entry := entities.LatLong{
				Latitude:      latlong.GetEncodedString("LatLatitudeDecimal_nesttab"),
				Longitude:     latlong.GetEncodedString("LatLongitudeDecimal_nesttab"),
				Datum:         latlong.GetEncodedString("LatDatum_tab"),
				DeterminedBy:  MakePartiesName(latlong.GetMap("determinedBy")),
				Determination: latlong.GetEncodedString("LatLatLongDetermination_tab"),
				Source:        latlong.GetEncodedString("LatDetSource_tab"),
			}
			if entry.Latitude != "" || entry.Longitude != "" {
				site.LatLongs = append(site.LatLongs, entry)
			}
		}
	}

	return site
}

func disciplineAllowsPreciseLocation(discipline string) bool {
	for _, allowed := range preciseLocationDisciplines {
		if strings.EqualFold(discipline, allowed) {
			return true
		}
	}
	return false
}

func firstRecord(recs []emu.Record) emu.Record {
	for _, rec := range recs {
		if rec != nil {
			return rec
		}
	}
	return nil
}
