package factories

import (
	"strings"

	"github.com/openmuseum/collections-import/internal/emu"
	"github.com/openmuseum/collections-import/internal/entities"
)

// MakeTaxonomy builds a taxonomy value object from a taxonomy sub-record.
// Returns nil when the sub-record is absent.
func MakeTaxonomy(rec emu.Record) *entities.Taxonomy {
	if rec == nil {
		return nil
	}

	taxonomy := &entities.Taxonomy{
		Irn:         rec.Irn(),
		Kingdom:     rec.GetEncodedString("ClaKingdom"),
		Phylum:      rec.GetEncodedString("ClaPhylum"),
		Subphylum:   rec.GetEncodedString("ClaSubphylum"),
		Superclass:  rec.GetEncodedString("ClaSuperclass"),
		Class:       rec.GetEncodedString("ClaClass"),
		Subclass:    rec.GetEncodedString("ClaSubclass"),
		Superorder:  rec.GetEncodedString("ClaSuperorder"),
		Order:       rec.GetEncodedString("ClaOrder"),
		Suborder:    rec.GetEncodedString("ClaSuborder"),
		Infraorder:  rec.GetEncodedString("ClaInfraorder"),
		Superfamily: rec.GetEncodedString("ClaSuperfamily"),
		Family:      rec.GetEncodedString("ClaFamily"),
		Subfamily:   rec.GetEncodedString("ClaSubfamily"),
		Genus:       rec.GetEncodedString("ClaGenus"),
		Subgenus:    rec.GetEncodedString("ClaSubgenus"),
		Species:     rec.GetEncodedString("ClaSpecies"),
		Subspecies:  rec.GetEncodedString("ClaSubspecies"),
		Author:      rec.GetEncodedString("AutAuthorString"),
		Code:        rec.GetEncodedString("ClaApplicableCode"),
	}

	// The preferred common name is promoted; the rest are kept as alternates.
	for _, comName := range rec.GetMaps("comname") {
		if comName == nil {
			continue
		}
		name := comName.GetEncodedString("ComName_tab")
		if name == "" {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(comName.GetEncodedString("ComStatus_tab")), "preferred") {
			taxonomy.CommonName = name
		} else {
			taxonomy.OtherCommonNames = append(taxonomy.OtherCommonNames, name)
		}
	}

	return taxonomy
}

// MakeScientificName composes the display form of a scientific name. The
// identification qualifier is inserted before the rank it qualifies.
func MakeScientificName(rank entities.QualifierRank, qualifier string, taxonomy *entities.Taxonomy) string {
	if taxonomy == nil {
		return ""
	}

	var genusQualifier, speciesQualifier string
	switch rank {
	case entities.QualifierRankGenus:
		genusQualifier = qualifier
	case entities.QualifierRankSpecies:
		speciesQualifier = qualifier
	}

	subgenus := taxonomy.Subgenus
	if subgenus != "" {
		subgenus = "(" + subgenus + ")"
	}

	return concatenate(" ",
		genusQualifier,
		taxonomy.Genus,
		subgenus,
		speciesQualifier,
		taxonomy.Species,
		taxonomy.Subspecies,
		taxonomy.Author)
}
