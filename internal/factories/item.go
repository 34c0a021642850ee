package factories

import (
	"context"
	"fmt"
	"strings"

	"github.com/openmuseum/collections-import/internal/config"
	"github.com/openmuseum/collections-import/internal/emu"
	"github.com/openmuseum/collections-import/internal/entities"
)

// ItemFactory builds humanities item documents from the catalogue module.
type ItemFactory struct {
	media *MediaFactory
}

func NewItemFactory(media *MediaFactory) *ItemFactory {
	return &ItemFactory{media: media}
}

func (f *ItemFactory) ModuleName() string { return "ecatalogue" }

func (f *ItemFactory) Terms() emu.Terms {
	var terms emu.Terms
	terms.Add("MdaDataSets_tab", config.ImuItemQueryString)
	return terms
}

func (f *ItemFactory) Columns() []string {
	return []string{
		"irn",
		"AdmPublishWebNoPassword",
		"AdmDateModified",
		"AdmTimeModified",
		"ColRegPrefix",
		"ColRegNumber",
		"ColRegPart",
		"ColTypeOfItem",
		"ColCategory",
		"ColDiscipline",
		"ColCollectionName_tab",
		"ClaPrimaryClassification",
		"ClaSecondaryClassification",
		"ClaTertiaryClassification",
		"ClaObjectName",
		"ClaObjectSummary",
		"DesPhysicalDescription",
		"SubHistoryTechSignificance",
		"SubThemes_tab",
		"SubSubjects_tab",
		"associations=[AssAssociationType_tab,party=AssAssociationNameRef_tab.(NamPartyType,NamFullName,NamOrganisation,NamBranch,NamDepartment,ColCollaborationName),AssAssociationCountry_tab,AssAssociationState_tab,AssAssociationRegion_tab,AssAssociationLocality_tab,AssAssociationStreetAddress_tab,AssAssociationDate_tab,AssAssociationComments0]",
		"location=LocCurrentLocationRef.(LocLocationType,LocLevel1,LocLevel2,LocLevel3,LocLevel4,location=LocHolderLocationRef.(LocLocationType,LocLevel1,LocLevel2,LocLevel3,LocLevel4,location=LocHolderLocationRef.(LocLocationType,LocLevel1,LocLevel2,LocLevel3,LocLevel4)))",
		"accession=AccAccessionLotRef.(AcqAcquisitionMethod,AcqDateReceived,AcqDateOwnership,AcqCreditLine,source=[name=AcqSourceRef_tab.(NamPartyType,NamFullName,NamOrganisation,ColCollaborationName),AcqSourceRole_tab],AdmPublishWebNoPassword)",
		"RigText0",
		"media=MulMultiMediaRef_tab.(irn,MulTitle,MulIdentifier,MulMimeType,MdaDataSets_tab,metadata=[MdaElement_tab,MdaQualifier_tab,MdaFreeText_tab],DetAlternateText,RigCreator_tab,RigSource_tab,RigAcknowledgementCredit,RigCopyrightStatement,RigCopyrightStatus,RigLicence,RigLicenceDetails,ChaRepository_tab,AdmPublishWebNoPassword,AdmDateModified,AdmTimeModified)",
		"relateditemspecimens=ColRelatedRecordsRef_tab.(irn,MdaDataSets_tab)",
		"attacheditemspecimens=ColPhysicallyAttachedToRef.(irn,MdaDataSets_tab)",
		"parentitemspecimens=ColParentRecordRef.(irn,MdaDataSets_tab)",
		"relatedarticlespecies=<enarratives:ObjObjectsRef_tab>.(irn,DetPurpose_tab)",
	}
}

func (f *ItemFactory) MakeDocument(ctx context.Context, rec emu.Record) (*entities.Item, error) {
	dateModified, err := parseDateModified(rec)
	if err != nil {
		return nil, err
	}

	item := &entities.Item{
		ID:                 fmt.Sprintf("items/%d", rec.Irn()),
		IsHidden:           isHidden(rec),
		DateModified:       dateModified,
		Category:           rec.GetEncodedString("ColCategory"),
		Discipline:         rec.GetEncodedString("ColDiscipline"),
		RegistrationNumber: makeRegistrationNumber(rec),
		CollectionNames:    rec.GetEncodedStrings("ColCollectionName_tab"),
		Type:               rec.GetEncodedString("ColTypeOfItem"),
		ObjectName:         rec.GetEncodedString("ClaObjectName"),
		ObjectSummary:      rec.GetEncodedString("ClaObjectSummary"),
		Description:        rec.GetEncodedString("DesPhysicalDescription"),
		Significance:       rec.GetEncodedString("SubHistoryTechSignificance"),
		Keywords:           rec.GetEncodedStrings("SubSubjects_tab"),
	}

	item.Classifications = makeClassifications(rec)

	for _, area := range rec.GetEncodedStrings("SubThemes_tab") {
		item.CollectingAreas = append(item.CollectingAreas, cleanForMultiFacets(area))
	}

	item.Associations = MakeAssociations(rec.GetMaps("associations"))
	item.AcquisitionInformation, item.Acknowledgement = makeAcquisitionInformation(rec)
	item.MuseumLocation = MakeMuseumLocation(rec.GetMap("location"))

	item.Media, err = f.media.MakeAll(ctx, rec.GetMaps("media"))
	if err != nil {
		return nil, err
	}
	for _, m := range item.Media {
		if m.HasThumbnail() {
			item.ThumbnailUri = m.Thumbnail.Uri
			break
		}
	}

	item.Licence = MakeLicence(rec)

	// Relationships route by dataset membership of the target.
	for _, related := range rec.GetMaps("relateditemspecimens") {
		routeRelatedItemRecord(related, item)
	}
	routeRelatedItemRecord(rec.GetMap("attacheditemspecimens"), item)
	routeRelatedItemRecord(rec.GetMap("parentitemspecimens"), item)

	for _, related := range rec.GetMaps("relatedarticlespecies") {
		if related == nil {
			continue
		}
		if anyEquals(related.GetEncodedStrings("DetPurpose_tab"), config.ImuArticleQueryString) {
			item.RelatedArticleIds = appendUnique(item.RelatedArticleIds,
				fmt.Sprintf("articles/%d", related.Irn()))
		}
		if anyEquals(related.GetEncodedStrings("DetPurpose_tab"), config.ImuSpeciesQueryString) {
			item.RelatedSpeciesIds = appendUnique(item.RelatedSpeciesIds,
				fmt.Sprintf("species/%d", related.Irn()))
		}
	}

	item.Summary = MakeSummary(item.ObjectSummary, item.Description)

	item.DisplayTitle = concatenate(" ", item.ObjectName)
	if strings.TrimSpace(item.DisplayTitle) == "" {
		item.DisplayTitle = "Item"
	}
	item.Slug = MakeSlug(item.DisplayTitle)

	return item, nil
}

func routeRelatedItemRecord(related emu.Record, item *entities.Item) {
	if related == nil || related.Irn() == 0 {
		return
	}
	datasets := related.GetEncodedStrings("MdaDataSets_tab")
	if anyEquals(datasets, config.ImuItemQueryString) {
		item.RelatedItemIds = appendUnique(item.RelatedItemIds, fmt.Sprintf("items/%d", related.Irn()))
	}
	if anyEquals(datasets, config.ImuSpecimenQueryString) {
		item.RelatedSpecimenIds = appendUnique(item.RelatedSpecimenIds, fmt.Sprintf("specimens/%d", related.Irn()))
	}
}
