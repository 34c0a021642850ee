package factories

import (
	"context"
	"fmt"
	"strings"

	"github.com/openmuseum/collections-import/internal/config"
	"github.com/openmuseum/collections-import/internal/emu"
	"github.com/openmuseum/collections-import/internal/entities"
)

// SpecimenFactory builds specimen documents from the catalogue module.
type SpecimenFactory struct {
	media *MediaFactory
}

func NewSpecimenFactory(media *MediaFactory) *SpecimenFactory {
	return &SpecimenFactory{media: media}
}

func (f *SpecimenFactory) ModuleName() string { return "ecatalogue" }

func (f *SpecimenFactory) Terms() emu.Terms {
	var terms emu.Terms
	terms.Add("MdaDataSets_tab", config.ImuSpecimenQueryString)
	return terms
}

func (f *SpecimenFactory) Columns() []string {
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
		"ColScientificGroup",
		"ColDiscipline",
		"ColCollectionName_tab",
		"ClaPrimaryClassification",
		"ClaSecondaryClassification",
		"ClaTertiaryClassification",
		"ClaObjectName",
		"ClaObjectSummary",
		"Con1Description",
		"SubHistoryTechSignificance",
		"SubThemes_tab",
		"SubSubjects_tab",
		"SpeNoSpecimens",
		"BirTotalClutchSize",
		"SpeSex_tab",
		"SpeStageAge_tab",
		"storage=[StrSpecimenNature_tab,StrSpecimenForm_tab,StrFixativeTreatment_tab,StrStorageMedium_tab]",
		"associations=[AssAssociationType_tab,party=AssAssociationNameRef_tab.(NamPartyType,NamFullName,NamOrganisation,NamBranch,NamDepartment,ColCollaborationName),AssAssociationCountry_tab,AssAssociationState_tab,AssAssociationRegion_tab,AssAssociationLocality_tab,AssAssociationStreetAddress_tab,AssAssociationDate_tab,AssAssociationComments0]",
		"identifications=[IdeTypeStatus_tab,IdeCurrentNameLocal_tab,identifiers=IdeIdentifiedByRef_nesttab.(NamPartyType,NamFullName,NamOrganisation,NamBranch,NamDepartment,ColCollaborationName),IdeDateIdentified0,IdeQualifier_tab,IdeQualifierRank_tab,taxa=TaxTaxonomyRef_tab.(irn,ClaKingdom,ClaPhylum,ClaSubphylum,ClaSuperclass,ClaClass,ClaSubclass,ClaSuperorder,ClaOrder,ClaSuborder,ClaInfraorder,ClaSuperfamily,ClaFamily,ClaSubfamily,ClaGenus,ClaSubgenus,ClaSpecies,ClaSubspecies,AutAuthorString,ClaApplicableCode,comname=[ComName_tab,ComStatus_tab],relatedspecies=<enarratives:TaxTaxaRef_tab>.(irn,DetPurpose_tab))]",
		"colevent=ColCollectionEventRef.(irn,ExpExpeditionName,ColCollectionEventCode,ColCollectionMethod,ColDateVisitedFrom,ColDateVisitedTo,ColTimeVisitedFrom,ColTimeVisitedTo,AquDepthFromMet,AquDepthToMet,collectors=ColParticipantRef_tab.(NamPartyType,NamFullName,NamOrganisation,NamBranch,NamDepartment,ColCollaborationName),site=ColSiteRef.(irn,SitSiteCode,SitSiteNumber,EraEra,EraAge1,EraAge2,EraMvStage,EraMvGroup_tab,EraMvRockUnit_tab,EraMvMember_tab,EraLithology_tab,geo=[LocOcean_tab,LocContinent_tab,LocCountry_tab,LocProvinceStateTerritory_tab,LocDistrictCountyShire_tab,LocTownship_tab,LocNearestNamedPlace_tab],LocPreciseLocation,LocElevationASLFromMt,LocElevationASLToMt,latlong=[LatLatitudeDecimal_nesttab,LatLongitudeDecimal_nesttab,LatDatum_tab,determinedBy=LatDeterminedByRef_tab.(NamPartyType,NamFullName,NamOrganisation,ColCollaborationName),LatLatLongDetermination_tab,LatDetSource_tab]))",
		"site=SitSiteRef.(irn,SitSiteCode,SitSiteNumber,EraEra,EraAge1,EraAge2,EraMvStage,EraMvGroup_tab,EraMvRockUnit_tab,EraMvMember_tab,EraLithology_tab,geo=[LocOcean_tab,LocContinent_tab,LocCountry_tab,LocProvinceStateTerritory_tab,LocDistrictCountyShire_tab,LocTownship_tab,LocNearestNamedPlace_tab],LocPreciseLocation,LocElevationASLFromMt,LocElevationASLToMt,latlong=[LatLatitudeDecimal_nesttab,LatLongitudeDecimal_nesttab,LatDatum_tab,determinedBy=LatDeterminedByRef_tab.(NamPartyType,NamFullName,NamOrganisation,ColCollaborationName),LatLatLongDetermination_tab,LatDetSource_tab])",
		"location=LocCurrentLocationRef.(LocLocationType,LocLevel1,LocLevel2,LocLevel3,LocLevel4,location=LocHolderLocationRef.(LocLocationType,LocLevel1,LocLevel2,LocLevel3,LocLevel4,location=LocHolderLocationRef.(LocLocationType,LocLevel1,LocLevel2,LocLevel3,LocLevel4)))",
		"accession=AccAccessionLotRef.(AcqAcquisitionMethod,AcqDateReceived,AcqDateOwnership,AcqCreditLine,source=[name=AcqSourceRef_tab.(NamPartyType,NamFullName,NamOrganisation,ColCollaborationName),AcqSourceRole_tab],AdmPublishWebNoPassword)",
		"RigText0",
		"LocDateCollectedFrom",
		"LocDateCollectedTo",
		"MinSpecies",
		"MinVariety",
		"MinGroup",
		"MinClass",
		"MinAssociatedMatrix",
		"MinType",
		"MinTypeType",
		"MetName",
		"MetClass",
		"MetGroup",
		"MetType",
		"MetMainMineralsPresent",
		"MetSpecimenWeight",
		"MetTotalWeight",
		"MetDateSpecimenFell",
		"MetDateSpecimenFound",
		"TekName",
		"TekClassification",
		"TekShape",
		"TekLocalStrewnfield",
		"TekGlobalStrewnfield",
		"RocClass",
		"RocGroup",
		"RocRockName",
		"RocRockDescription",
		"RocMainMineralsPresent",
		"media=MulMultiMediaRef_tab.(irn,MulTitle,MulIdentifier,MulMimeType,MdaDataSets_tab,metadata=[MdaElement_tab,MdaQualifier_tab,MdaFreeText_tab],DetAlternateText,RigCreator_tab,RigSource_tab,RigAcknowledgementCredit,RigCopyrightStatement,RigCopyrightStatus,RigLicence,RigLicenceDetails,ChaRepository_tab,AdmPublishWebNoPassword,AdmDateModified,AdmTimeModified)",
		"relateditemspecimens=ColRelatedRecordsRef_tab.(irn,MdaDataSets_tab)",
		"attacheditemspecimens=ColPhysicallyAttachedToRef.(irn,MdaDataSets_tab)",
		"parentitemspecimens=ColParentRecordRef.(irn,MdaDataSets_tab)",
		"relatedarticlespecies=<enarratives:ObjObjectsRef_tab>.(irn,DetPurpose_tab)",
		"relatedpartyarticles=AssAssociationNameRef_tab.(relatedarticles=<enarratives:ParPartiesRef_tab>.(irn,DetPurpose_tab))",
		"relatedsitearticles=ArcSiteNameRef.(relatedarticles=<enarratives:SitSitesRef_tab>.(irn,DetPurpose_tab))",
		"relatedcolleventarticles=ColCollectionEventRef.(relatedarticles=<enarratives:ColCollectionEventsRef_tab>.(irn,DetPurpose_tab))",
	}
}

func (f *SpecimenFactory) MakeDocument(ctx context.Context, rec emu.Record) (*entities.Specimen, error) {
	dateModified, err := parseDateModified(rec)
	if err != nil {
		return nil, err
	}

	specimen := &entities.Specimen{
		ID:                 fmt.Sprintf("specimens/%d", rec.Irn()),
		IsHidden:           isHidden(rec),
		DateModified:       dateModified,
		Category:           rec.GetEncodedString("ColCategory"),
		ScientificGroup:    rec.GetEncodedString("ColScientificGroup"),
		Discipline:         rec.GetEncodedString("ColDiscipline"),
		RegistrationNumber: makeRegistrationNumber(rec),
		CollectionNames:    rec.GetEncodedStrings("ColCollectionName_tab"),
		Type:               rec.GetEncodedString("ColTypeOfItem"),
		ObjectName:         rec.GetEncodedString("ClaObjectName"),
		ObjectSummary:      rec.GetEncodedString("ClaObjectSummary"),
		ContentDescription: rec.GetEncodedString("Con1Description"),
		Significance:       rec.GetEncodedString("SubHistoryTechSignificance"),
		Keywords:           rec.GetEncodedStrings("SubSubjects_tab"),
	}

	specimen.Classifications = makeClassifications(rec)

	for _, area := range rec.GetEncodedStrings("SubThemes_tab") {
		specimen.CollectingAreas = append(specimen.CollectingAreas, cleanForMultiFacets(area))
	}

	specimen.Associations = MakeAssociations(rec.GetMaps("associations"))
	specimen.AcquisitionInformation, specimen.Acknowledgement = makeAcquisitionInformation(rec)
	specimen.MuseumLocation = MakeMuseumLocation(rec.GetMap("location"))

	if count := rec.GetEncodedString("SpeNoSpecimens"); count != "" && count != "0" {
		specimen.NumberOfSpecimens = count
	}
	specimen.ClutchSize = rec.GetEncodedString("BirTotalClutchSize")
	specimen.Sex = strings.Join(rec.GetEncodedStrings("SpeSex_tab"), ", ")
	specimen.StageOrAge = strings.Join(rec.GetEncodedStrings("SpeStageAge_tab"), ", ")

	for _, storage := range rec.GetMaps("storage") {
		if storage == nil {
			continue
		}
		entry := entities.Storage{
			Nature:            storage.GetEncodedString("StrSpecimenNature_tab"),
			Form:              storage.GetEncodedString("StrSpecimenForm_tab"),
			FixativeTreatment: storage.GetEncodedString("StrFixativeTreatment_tab"),
			Medium:            storage.GetEncodedString("StrStorageMedium_tab"),
		}
		if entry != (entities.Storage{}) {
			specimen.Storages = append(specimen.Storages, entry)
		}
	}

	// Best identification, promoted to top level.
	if identification := bestIdentification(rec.GetMaps("identifications")); identification != nil {
		specimen.TypeStatus = identification.GetEncodedString("IdeTypeStatus_tab")
		specimen.IdentifiedBy = MakePartiesNames(identification.GetMaps("identifiers"), "; ")
		specimen.DateIdentified = identification.GetEncodedString("IdeDateIdentified0")
		specimen.Qualifier = identification.GetEncodedString("IdeQualifier_tab")
		specimen.QualifierRank = makeQualifierRank(identification.GetEncodedString("IdeQualifierRank_tab"))

		taxonomyRec := identification.GetMap("taxa")
		specimen.Taxonomy = MakeTaxonomy(taxonomyRec)

		if taxonomyRec != nil {
			for _, related := range taxonomyRec.GetMaps("relatedspecies") {
				if related != nil && anyEquals(related.GetEncodedStrings("DetPurpose_tab"), config.ImuSpeciesQueryString) {
					specimen.RelatedSpeciesIds = appendUnique(specimen.RelatedSpeciesIds,
						fmt.Sprintf("species/%d", related.Irn()))
				}
			}
		}
	}

	collectionEventRec := rec.GetMap("colevent")
	specimen.CollectionEvent = MakeCollectionEvent(collectionEventRec)

	siteRec := rec.GetMap("site")
	if siteRec == nil && collectionEventRec != nil {
		siteRec = collectionEventRec.GetMap("site")
	}
	specimen.CollectionSite = MakeCollectionSite(siteRec, specimen.Discipline)

	// Discipline specific fields.
	specimen.PalaeontologyDateCollectedFrom = MakeYearSpan(rec.GetEncodedString("LocDateCollectedFrom"))
	specimen.PalaeontologyDateCollectedTo = MakeYearSpan(rec.GetEncodedString("LocDateCollectedTo"))

	specimen.MineralogySpecies = rec.GetEncodedString("MinSpecies")
	specimen.MineralogyVariety = rec.GetEncodedString("MinVariety")
	specimen.MineralogyGroup = rec.GetEncodedString("MinGroup")
	specimen.MineralogyClass = rec.GetEncodedString("MinClass")
	specimen.MineralogyAssociatedMatrix = rec.GetEncodedString("MinAssociatedMatrix")
	specimen.MineralogyType = rec.GetEncodedString("MinType")
	specimen.MineralogyTypeOfType = rec.GetEncodedString("MinTypeType")

	specimen.MeteoritesName = rec.GetEncodedString("MetName")
	specimen.MeteoritesClass = rec.GetEncodedString("MetClass")
	specimen.MeteoritesGroup = rec.GetEncodedString("MetGroup")
	specimen.MeteoritesType = rec.GetEncodedString("MetType")
	specimen.MeteoritesMinerals = rec.GetEncodedString("MetMainMineralsPresent")
	specimen.MeteoritesSpecimenWeight = rec.GetEncodedString("MetSpecimenWeight")
	specimen.MeteoritesTotalWeight = rec.GetEncodedString("MetTotalWeight")
	specimen.MeteoritesDateFell = rec.GetEncodedString("MetDateSpecimenFell")
	specimen.MeteoritesDateFound = rec.GetEncodedString("MetDateSpecimenFound")

	specimen.TektitesName = rec.GetEncodedString("TekName")
	specimen.TektitesClassification = rec.GetEncodedString("TekClassification")
	specimen.TektitesShape = rec.GetEncodedString("TekShape")
	specimen.TektitesLocalStrewnfield = rec.GetEncodedString("TekLocalStrewnfield")
	specimen.TektitesGlobalStrewnfield = rec.GetEncodedString("TekGlobalStrewnfield")

	specimen.PetrologyRockClass = rec.GetEncodedString("RocClass")
	specimen.PetrologyRockGroup = rec.GetEncodedString("RocGroup")
	specimen.PetrologyRockName = rec.GetEncodedString("RocRockName")
	specimen.PetrologyRockDescription = rec.GetEncodedString("RocRockDescription")
	specimen.PetrologyMineralsPresent = rec.GetEncodedString("RocMainMineralsPresent")

	// Media.
	specimen.Media, err = f.media.MakeAll(ctx, rec.GetMaps("media"))
	if err != nil {
		return nil, err
	}
	for _, m := range specimen.Media {
		if m.HasThumbnail() {
			specimen.ThumbnailUri = m.Thumbnail.Uri
			break
		}
	}

	specimen.Licence = MakeSpecimenLicence()

	// Relationships. Direct relations, physical attachment and the parent
	// record all route by dataset membership of the target, not its type.
	for _, related := range rec.GetMaps("relateditemspecimens") {
		routeRelatedRecord(related, specimen)
	}
	routeRelatedRecord(rec.GetMap("attacheditemspecimens"), specimen)
	routeRelatedRecord(rec.GetMap("parentitemspecimens"), specimen)

	for _, related := range rec.GetMaps("relatedarticlespecies") {
		if related == nil {
			continue
		}
		if anyEquals(related.GetEncodedStrings("DetPurpose_tab"), config.ImuArticleQueryString) {
			specimen.RelatedArticleIds = appendUnique(specimen.RelatedArticleIds,
				fmt.Sprintf("articles/%d", related.Irn()))
		}
		if anyEquals(related.GetEncodedStrings("DetPurpose_tab"), config.ImuSpeciesQueryString) {
			specimen.RelatedSpeciesIds = appendUnique(specimen.RelatedSpeciesIds,
				fmt.Sprintf("species/%d", related.Irn()))
		}
	}

	for _, party := range rec.GetMaps("relatedpartyarticles") {
		if party == nil {
			continue
		}
		specimen.RelatedArticleIds = appendRelatedArticles(specimen.RelatedArticleIds, party.GetMaps("relatedarticles"))
	}
	if siteArticles := rec.GetMap("relatedsitearticles"); siteArticles != nil {
		specimen.RelatedArticleIds = appendRelatedArticles(specimen.RelatedArticleIds, siteArticles.GetMaps("relatedarticles"))
	}
	if eventArticles := rec.GetMap("relatedcolleventarticles"); eventArticles != nil {
		specimen.RelatedArticleIds = appendRelatedArticles(specimen.RelatedArticleIds, eventArticles.GetMaps("relatedarticles"))
	}

	specimen.Summary = MakeSummary(specimen.ObjectSummary, specimen.ContentDescription)
	specimen.DisplayTitle = f.makeDisplayTitle(specimen)
	specimen.Slug = MakeSlug(specimen.DisplayTitle)

	return specimen, nil
}

// makeDisplayTitle runs the discipline-first fallback chain: a named
// discipline field, else the composed scientific name, prefixed with the
// object name, defaulting to a generic literal.
func (f *SpecimenFactory) makeDisplayTitle(specimen *entities.Specimen) string {
	var title string
	switch {
	case strings.EqualFold(specimen.Discipline, "Tektites") && strings.TrimSpace(specimen.TektitesName) != "":
		title = specimen.TektitesName
	case strings.EqualFold(specimen.Discipline, "Meteorites") && strings.TrimSpace(specimen.MeteoritesName) != "":
		title = fmt.Sprintf("%s meteorite", specimen.MeteoritesName)
	case strings.EqualFold(specimen.Discipline, "Petrology") && strings.TrimSpace(specimen.PetrologyRockName) != "":
		title = specimen.PetrologyRockName
	case strings.EqualFold(specimen.Discipline, "Mineralogy") && strings.TrimSpace(specimen.MineralogySpecies) != "":
		title = specimen.MineralogySpecies
	case specimen.Taxonomy != nil:
		title = MakeScientificName(specimen.QualifierRank, specimen.Qualifier, specimen.Taxonomy)
	}

	title = concatenate(" ", specimen.ObjectName, title)
	if strings.TrimSpace(title) == "" {
		return "Specimen"
	}
	return title
}

// bestIdentification picks the identification promoted to the document's top
// level: a type designation wins, then the current accepted name, then the
// first one present. Source ordering is preserved by the fetch so the final
// fallback is stable.
func bestIdentification(identifications []emu.Record) emu.Record {
	for _, identification := range identifications {
		if identification == nil {
			continue
		}
		status := strings.ToLower(strings.TrimSpace(identification.GetEncodedString("IdeTypeStatus_tab")))
		for _, typeStatus := range config.TaxonomyTypeStatuses {
			if status == typeStatus {
				return identification
			}
		}
	}
	for _, identification := range identifications {
		if identification == nil {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(identification.GetEncodedString("IdeCurrentNameLocal_tab")), "yes") {
			return identification
		}
	}
	return firstRecord(identifications)
}

func makeQualifierRank(rank string) entities.QualifierRank {
	switch {
	case strings.EqualFold(rank, "Genus"):
		return entities.QualifierRankGenus
	case strings.EqualFold(rank, "Species"):
		return entities.QualifierRankSpecies
	default:
		return entities.QualifierRankNone
	}
}

func makeRegistrationNumber(rec emu.Record) string {
	prefix := rec.GetEncodedString("ColRegPrefix")
	number := rec.GetEncodedString("ColRegNumber")
	if part := rec.GetEncodedString("ColRegPart"); part != "" {
		return strings.TrimSpace(fmt.Sprintf("%s %s.%s", prefix, number, part))
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s", prefix, number))
}

func makeClassifications(rec emu.Record) []string {
	var classifications []string
	for _, field := range []string{"ClaPrimaryClassification", "ClaSecondaryClassification", "ClaTertiaryClassification"} {
		value := rec.GetEncodedString(field)
		if value == "" || containsFold(value, "to be classified") {
			continue
		}
		classifications = append(classifications, sentenceCase(value))
	}
	return classifications
}

// routeRelatedRecord appends the target to the item or specimen id list based
// on which datasets the target belongs to.
func routeRelatedRecord(related emu.Record, specimen *entities.Specimen) {
	if related == nil || related.Irn() == 0 {
		return
	}
	datasets := related.GetEncodedStrings("MdaDataSets_tab")
	if anyEquals(datasets, config.ImuItemQueryString) {
		specimen.RelatedItemIds = appendUnique(specimen.RelatedItemIds, fmt.Sprintf("items/%d", related.Irn()))
	}
	if anyEquals(datasets, config.ImuSpecimenQueryString) {
		specimen.RelatedSpecimenIds = appendUnique(specimen.RelatedSpecimenIds, fmt.Sprintf("specimens/%d", related.Irn()))
	}
}

func appendRelatedArticles(ids []string, articles []emu.Record) []string {
	for _, article := range articles {
		if article != nil && anyEquals(article.GetEncodedStrings("DetPurpose_tab"), config.ImuArticleQueryString) {
			ids = appendUnique(ids, fmt.Sprintf("articles/%d", article.Irn()))
		}
	}
	return ids
}

// MakeSpecimenLicence returns the fixed licence the specimen dataset is
// published under.
func MakeSpecimenLicence() entities.Licence {
	return makeLicenceFromText("cc by")
}
