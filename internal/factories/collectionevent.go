package factories

import (
	"github.com/openmuseum/collections-import/internal/emu"
	"github.com/openmuseum/collections-import/internal/entities"
)

// MakeCollectionEvent builds the field collection event sub-object. Returns
// nil when the record has no collection event attached.
func MakeCollectionEvent(rec emu.Record) *entities.CollectionEvent {
	if rec == nil {
		return nil
	}

	return &entities.CollectionEvent{
		Irn:             rec.Irn(),
		ExpeditionName:  rec.GetEncodedString("ExpExpeditionName"),
		EventCode:       rec.GetEncodedString("ColCollectionEventCode"),
		SamplingMethod:  rec.GetEncodedString("ColCollectionMethod"),
		DateVisitedFrom: rec.GetEncodedString("ColDateVisitedFrom"),
		DateVisitedTo:   rec.GetEncodedString("ColDateVisitedTo"),
		TimeVisitedFrom: rec.GetEncodedString("ColTimeVisitedFrom"),
		TimeVisitedTo:   rec.GetEncodedString("ColTimeVisitedTo"),
		DepthFromMetres: rec.GetEncodedString("AquDepthFromMet"),
		DepthToMetres:   rec.GetEncodedString("AquDepthToMet"),
		CollectedBy:     MakePartiesNames(rec.GetMaps("collectors"), "; "),
	}
}
