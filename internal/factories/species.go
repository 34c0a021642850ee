package factories

import (
	"context"
	"fmt"
	"strings"

	"github.com/openmuseum/collections-import/internal/config"
	"github.com/openmuseum/collections-import/internal/emu"
	"github.com/openmuseum/collections-import/internal/entities"
)

// SpeciesFactory builds field guide species documents from the narratives
// module.
type SpeciesFactory struct {
	media *MediaFactory
}

func NewSpeciesFactory(media *MediaFactory) *SpeciesFactory {
	return &SpeciesFactory{media: media}
}

func (f *SpeciesFactory) ModuleName() string { return "enarratives" }

func (f *SpeciesFactory) Terms() emu.Terms {
	var terms emu.Terms
	terms.Add("DetPurpose_tab", config.ImuSpeciesQueryString)
	return terms
}

func (f *SpeciesFactory) Columns() []string {
	return []string{
		"irn",
		"AdmPublishWebNoPassword",
		"AdmDateModified",
		"AdmTimeModified",
		"SpeTaxonGroup",
		"SpeTaxonSubGroup",
		"SpeColour_tab",
		"SpeMaximumSize",
		"SpeUnit",
		"SpeHabitat_tab",
		"SpeWhereToLook_tab",
		"SpeWhenActive_tab",
		"SpeNationalParks_tab",
		"SpeDiet",
		"SpeDietCategories_tab",
		"SpeFastFact",
		"SpeHabitatNotes",
		"SpeDistribution",
		"SpeBiology",
		"SpeIdentifyingCharacters",
		"SpeBriefID",
		"SpeHazards",
		"SpeEndemicity",
		"SpeCommercialSpecies",
		"conservation=[SpeConservationList_tab,SpeStatus_tab]",
		"SpeScientificDiagnosis",
		"SpeWeb",
		"SpePlant_tab",
		"SpeFlightStart",
		"SpeFlightEnd",
		"SpeDepth_tab",
		"SpeWaterColumnLocation_tab",
		"taxa=TaxTaxaRef_tab.(irn,ClaKingdom,ClaPhylum,ClaSubphylum,ClaSuperclass,ClaClass,ClaSubclass,ClaSuperorder,ClaOrder,ClaSuborder,ClaInfraorder,ClaSuperfamily,ClaFamily,ClaSubfamily,ClaGenus,ClaSubgenus,ClaSpecies,ClaSubspecies,AutAuthorString,ClaApplicableCode,comname=[ComName_tab,ComStatus_tab])",
		"specimens=TaxTaxaRef_tab.(specimens=<ecatalogue:TaxTaxonomyRef_tab>.(irn,MdaDataSets_tab))",
		"authors=NarAuthorsRef_tab.(NamFullName,BioLabel,media=MulMultiMediaRef_tab.(irn,MulTitle,MulMimeType,MdaDataSets_tab,metadata=[MdaElement_tab,MdaQualifier_tab,MdaFreeText_tab],DetAlternateText,AdmPublishWebNoPassword,AdmDateModified,AdmTimeModified))",
		"media=MulMultiMediaRef_tab.(irn,MulTitle,MulIdentifier,MulMimeType,MdaDataSets_tab,metadata=[MdaElement_tab,MdaQualifier_tab,MdaFreeText_tab],DetAlternateText,RigCreator_tab,RigSource_tab,RigAcknowledgementCredit,RigCopyrightStatement,RigCopyrightStatus,RigLicence,RigLicenceDetails,ChaRepository_tab,AdmPublishWebNoPassword,AdmDateModified,AdmTimeModified)",
	}
}

func (f *SpeciesFactory) MakeDocument(ctx context.Context, rec emu.Record) (*entities.Species, error) {
	dateModified, err := parseDateModified(rec)
	if err != nil {
		return nil, err
	}

	species := &entities.Species{
		ID:            fmt.Sprintf("species/%d", rec.Irn()),
		IsHidden:      isHidden(rec),
		DateModified:  dateModified,
		AnimalType:    rec.GetString("SpeTaxonGroup"),
		AnimalSubType: rec.GetString("SpeTaxonSubGroup"),

		Colours:     rec.GetStrings("SpeColour_tab"),
		MaximumSize: strings.TrimSpace(concatenate(" ", rec.GetString("SpeMaximumSize"), rec.GetString("SpeUnit"))),

		Habitats:      rec.GetStrings("SpeHabitat_tab"),
		WhereToLook:   rec.GetStrings("SpeWhereToLook_tab"),
		WhenActive:    rec.GetStrings("SpeWhenActive_tab"),
		NationalParks: rec.GetStrings("SpeNationalParks_tab"),

		Diet:           rec.GetString("SpeDiet"),
		DietCategories: rec.GetStrings("SpeDietCategories_tab"),

		FastFact:              rec.GetString("SpeFastFact"),
		Habitat:               rec.GetString("SpeHabitatNotes"),
		Distribution:          rec.GetString("SpeDistribution"),
		Biology:               rec.GetString("SpeBiology"),
		IdentifyingCharacters: rec.GetString("SpeIdentifyingCharacters"),
		BriefId:               rec.GetString("SpeBriefID"),
		Hazards:               rec.GetString("SpeHazards"),
		Endemicity:            rec.GetString("SpeEndemicity"),
		Commercial:            rec.GetString("SpeCommercialSpecies"),

		ScientificDiagnosis: rec.GetString("SpeScientificDiagnosis"),

		Web:                  rec.GetString("SpeWeb"),
		Plants:               rec.GetStrings("SpePlant_tab"),
		FlightStart:          rec.GetString("SpeFlightStart"),
		FlightEnd:            rec.GetString("SpeFlightEnd"),
		Depths:               rec.GetStrings("SpeDepth_tab"),
		WaterColumnLocations: rec.GetStrings("SpeWaterColumnLocation_tab"),
	}

	for _, conservation := range rec.GetMaps("conservation") {
		if conservation == nil {
			continue
		}
		status := concatenate(" ",
			conservation.GetString("SpeConservationList_tab"),
			conservation.GetString("SpeStatus_tab"))
		if status != "" {
			species.ConservationStatuses = append(species.ConservationStatuses, status)
		}
	}

	species.Taxonomy = MakeTaxonomy(firstRecord(rec.GetMaps("taxa")))

	// Specimens carrying this taxon, routed by dataset membership.
	if specimens := firstRecord(rec.GetMaps("specimens")); specimens != nil {
		for _, specimen := range specimens.GetMaps("specimens") {
			if specimen != nil && anyEquals(specimen.GetEncodedStrings("MdaDataSets_tab"), config.ImuSpecimenQueryString) {
				species.SpecimenIds = appendUnique(species.SpecimenIds,
					fmt.Sprintf("specimens/%d", specimen.Irn()))
			}
		}
	}

	// Authors, with portrait thumbnails where one can be materialised.
	for _, authorRec := range rec.GetMaps("authors") {
		if authorRec == nil {
			continue
		}
		author := entities.Author{
			Name:      authorRec.GetString("NamFullName"),
			Biography: authorRec.GetString("BioLabel"),
		}
		for _, mediaRec := range authorRec.GetMaps("media") {
			portrait, err := f.media.MakeAuthorThumbnail(ctx, mediaRec)
			if err != nil {
				return nil, err
			}
			if portrait != nil {
				author.Media = portrait
				break
			}
		}
		if author.Name != "" {
			species.Authors = append(species.Authors, author)
		}
	}

	species.Media, err = f.media.MakeAll(ctx, rec.GetMaps("media"))
	if err != nil {
		return nil, err
	}
	for _, m := range species.Media {
		if m.HasThumbnail() {
			species.ThumbnailUri = m.Thumbnail.Uri
			break
		}
	}

	species.Licence = makeLicenceFromText("cc by-nc")

	species.Summary = MakeSummary(species.IdentifyingCharacters, species.Biology)
	species.DisplayTitle = f.makeDisplayTitle(species)
	species.Slug = MakeSlug(species.DisplayTitle)

	return species, nil
}

func (f *SpeciesFactory) makeDisplayTitle(species *entities.Species) string {
	if species.Taxonomy != nil {
		if species.Taxonomy.CommonName != "" {
			return species.Taxonomy.CommonName
		}
		if name := MakeScientificName(entities.QualifierRankNone, "", species.Taxonomy); name != "" {
			return name
		}
	}
	return "Species"
}
