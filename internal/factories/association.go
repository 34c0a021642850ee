package factories

import (
	"github.com/openmuseum/collections-import/internal/emu"
	"github.com/openmuseum/collections-import/internal/entities"
)

// MakeAssociations builds association value objects from the association
// sub-table rows. Rows with no content at all are dropped.
func MakeAssociations(recs []emu.Record) []entities.Association {
	associations := make([]entities.Association, 0, len(recs))
	for _, rec := range recs {
		if rec == nil {
			continue
		}
		association := entities.Association{
			Type:     rec.GetEncodedString("AssAssociationType_tab"),
			Name:     MakePartiesName(rec.GetMap("party")),
			Country:  rec.GetEncodedString("AssAssociationCountry_tab"),
			State:    rec.GetEncodedString("AssAssociationState_tab"),
			Region:   rec.GetEncodedString("AssAssociationRegion_tab"),
			Locality: rec.GetEncodedString("AssAssociationLocality_tab"),
			Street:   rec.GetEncodedString("AssAssociationStreetAddress_tab"),
			Date:     rec.GetEncodedString("AssAssociationDate_tab"),
			Comments: rec.GetEncodedString("AssAssociationComments0"),
		}
		if association != (entities.Association{}) {
			associations = append(associations, association)
		}
	}
	return associations
}
