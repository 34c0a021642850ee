package factories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmuseum/collections-import/internal/emu"
	"github.com/openmuseum/collections-import/internal/entities"
)

func specimenRecord() emu.Record {
	return emu.Record{
		"irn":                        "100",
		"AdmPublishWebNoPassword":    "yes",
		"AdmDateModified":            "15/06/2024",
		"AdmTimeModified":            "14:30",
		"ColRegPrefix":               "NMV",
		"ColRegNumber":               "P12345",
		"ColRegPart":                 "1",
		"ColTypeOfItem":              "Specimen",
		"ColCategory":                "Natural Sciences",
		"ColScientificGroup":         "Vertebrate Zoology",
		"ColDiscipline":              "Herpetology",
		"ClaPrimaryClassification":   "AMPHIBIANS",
		"ClaSecondaryClassification": "To Be Classified",
		"ClaObjectName":              "",
		"identifications": []any{
			map[string]any{
				"IdeTypeStatus_tab":       "",
				"IdeCurrentNameLocal_tab": "yes",
				"identifiers": []any{
					map[string]any{"NamPartyType": "Person", "NamFullName": "Jane Doe"},
				},
				"IdeDateIdentified0": "12/05/1998",
				"taxa": map[string]any{
					"irn":             "9001",
					"ClaGenus":        "Litoria",
					"ClaSpecies":      "raniformis",
					"AutAuthorString": "(Keferstein, 1867)",
					"comname": []any{
						map[string]any{"ComStatus_tab": "preferred", "ComName_tab": "Growling Grass Frog"},
					},
					"relatedspecies": []any{
						map[string]any{"irn": "700", "DetPurpose_tab": []any{"Collections Online: Species"}},
					},
				},
			},
		},
	}
}

func newSpecimenFactory() *SpecimenFactory {
	return NewSpecimenFactory(NewMediaFactory(&fakeStorer{}))
}

func TestSpecimenFactoryMakeDocument(t *testing.T) {
	specimen, err := newSpecimenFactory().MakeDocument(context.Background(), specimenRecord())
	require.NoError(t, err)

	assert.Equal(t, "specimens/100", specimen.ID)
	assert.False(t, specimen.IsHidden)
	assert.Equal(t, time.Date(2024, 6, 15, 4, 30, 0, 0, time.UTC), specimen.DateModified)
	assert.Equal(t, "NMV P12345.1", specimen.RegistrationNumber)
	assert.Equal(t, "Herpetology", specimen.Discipline)

	t.Run("classification filter and sentence case", func(t *testing.T) {
		assert.Equal(t, []string{"Amphibians"}, specimen.Classifications)
	})

	t.Run("current name identification is promoted", func(t *testing.T) {
		assert.Equal(t, "Jane Doe", specimen.IdentifiedBy)
		require.NotNil(t, specimen.Taxonomy)
		assert.Equal(t, "Litoria", specimen.Taxonomy.Genus)
		assert.Equal(t, "Growling Grass Frog", specimen.Taxonomy.CommonName)
	})

	t.Run("related species come from the taxonomy", func(t *testing.T) {
		assert.Equal(t, []string{"species/700"}, specimen.RelatedSpeciesIds)
	})

	t.Run("display title is the scientific name", func(t *testing.T) {
		assert.Equal(t, "Litoria raniformis (Keferstein, 1867)", specimen.DisplayTitle)
	})

	t.Run("specimen dataset licence is open", func(t *testing.T) {
		assert.Equal(t, "CC BY", specimen.Licence.ShortName)
		assert.True(t, specimen.Licence.Open)
	})
}

func TestSpecimenFactoryMakeDocumentIsRepeatable(t *testing.T) {
	factory := newSpecimenFactory()

	first, err := factory.MakeDocument(context.Background(), specimenRecord())
	require.NoError(t, err)
	second, err := factory.MakeDocument(context.Background(), specimenRecord())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSpecimenFactoryHiddenRecord(t *testing.T) {
	rec := specimenRecord()
	rec["AdmPublishWebNoPassword"] = "no"

	specimen, err := newSpecimenFactory().MakeDocument(context.Background(), rec)
	require.NoError(t, err)
	assert.True(t, specimen.IsHidden)
}

func TestSpecimenFactorySparseRecord(t *testing.T) {
	// A record carrying nothing but the contractual fields must still produce
	// a valid document.
	rec := emu.Record{
		"irn":             "42",
		"AdmDateModified": "01/01/2020",
		"AdmTimeModified": "00:01",
	}

	specimen, err := newSpecimenFactory().MakeDocument(context.Background(), rec)
	require.NoError(t, err)

	assert.Equal(t, "specimens/42", specimen.ID)
	assert.Equal(t, "Specimen", specimen.DisplayTitle)
	assert.Empty(t, specimen.Classifications)
	assert.Nil(t, specimen.Taxonomy)
	assert.Empty(t, specimen.Media)
}

func TestSpecimenDisplayTitleChain(t *testing.T) {
	factory := newSpecimenFactory()

	make := func(overrides emu.Record) *entities.Specimen {
		rec := emu.Record{
			"irn":             "1",
			"AdmDateModified": "01/01/2020",
			"AdmTimeModified": "00:01",
		}
		for k, v := range overrides {
			rec[k] = v
		}
		specimen, err := factory.MakeDocument(context.Background(), rec)
		require.NoError(t, err)
		return specimen
	}

	t.Run("tektite name", func(t *testing.T) {
		specimen := make(emu.Record{"ColDiscipline": "Tektites", "TekName": "Port Campbell australite"})
		assert.Equal(t, "Port Campbell australite", specimen.DisplayTitle)
	})

	t.Run("meteorite name gains suffix", func(t *testing.T) {
		specimen := make(emu.Record{"ColDiscipline": "Meteorites", "MetName": "Murchison"})
		assert.Equal(t, "Murchison meteorite", specimen.DisplayTitle)
	})

	t.Run("petrology rock name", func(t *testing.T) {
		specimen := make(emu.Record{"ColDiscipline": "Petrology", "RocRockName": "Basalt"})
		assert.Equal(t, "Basalt", specimen.DisplayTitle)
	})

	t.Run("mineralogy species", func(t *testing.T) {
		specimen := make(emu.Record{"ColDiscipline": "Mineralogy", "MinSpecies": "Quartz"})
		assert.Equal(t, "Quartz", specimen.DisplayTitle)
	})

	t.Run("object name prefixes the discipline title", func(t *testing.T) {
		specimen := make(emu.Record{"ColDiscipline": "Mineralogy", "MinSpecies": "Quartz", "ClaObjectName": "Crystal"})
		assert.Equal(t, "Crystal Quartz", specimen.DisplayTitle)
	})
}

func TestBestIdentification(t *testing.T) {
	typeRec := emu.Record{"IdeTypeStatus_tab": "Holotype"}
	currentRec := emu.Record{"IdeCurrentNameLocal_tab": "yes"}
	plainRec := emu.Record{"IdeDateIdentified0": "1990"}

	t.Run("type designation wins", func(t *testing.T) {
		got := bestIdentification([]emu.Record{plainRec, currentRec, typeRec})
		assert.Equal(t, typeRec, got)
	})

	t.Run("current name beats first", func(t *testing.T) {
		got := bestIdentification([]emu.Record{plainRec, currentRec})
		assert.Equal(t, currentRec, got)
	})

	t.Run("first is the fallback", func(t *testing.T) {
		got := bestIdentification([]emu.Record{plainRec})
		assert.Equal(t, plainRec, got)
	})

	t.Run("no identifications", func(t *testing.T) {
		assert.Nil(t, bestIdentification(nil))
	})
}

func TestRouteRelatedRecord(t *testing.T) {
	specimen := &entities.Specimen{}

	routeRelatedRecord(emu.Record{"irn": "10", "MdaDataSets_tab": []any{"Collections Online: Humanities"}}, specimen)
	routeRelatedRecord(emu.Record{"irn": "20", "MdaDataSets_tab": []any{"Collections Online: Natural Sciences"}}, specimen)
	routeRelatedRecord(emu.Record{"irn": "30", "MdaDataSets_tab": []any{"Unrelated"}}, specimen)
	routeRelatedRecord(nil, specimen)

	assert.Equal(t, []string{"items/10"}, specimen.RelatedItemIds)
	assert.Equal(t, []string{"specimens/20"}, specimen.RelatedSpecimenIds)
}
