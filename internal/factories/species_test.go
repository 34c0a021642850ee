package factories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmuseum/collections-import/internal/emu"
)

func speciesRecord() emu.Record {
	return emu.Record{
		"irn":                      "300",
		"AdmPublishWebNoPassword":  "yes",
		"AdmDateModified":          "01/02/2024",
		"AdmTimeModified":          "11:00",
		"SpeTaxonGroup":            "Frogs",
		"SpeMaximumSize":           "104",
		"SpeUnit":                  "mm",
		"SpeWhenActive_tab":        []any{"Spring", "Summer"},
		"SpeIdentifyingCharacters": "Bright green dorsal stripe.",
		"conservation": []any{
			map[string]any{"SpeConservationList_tab": "EPBC", "SpeStatus_tab": "Vulnerable"},
		},
		"taxa": []any{
			map[string]any{
				"ClaGenus":   "Litoria",
				"ClaSpecies": "raniformis",
				"comname": []any{
					map[string]any{"ComStatus_tab": "preferred", "ComName_tab": "Growling Grass Frog"},
				},
			},
		},
		"specimens": []any{
			map[string]any{
				"specimens": []any{
					map[string]any{"irn": "100", "MdaDataSets_tab": []any{"Collections Online: Natural Sciences"}},
					map[string]any{"irn": "101", "MdaDataSets_tab": []any{"Unpublished"}},
				},
			},
		},
		"authors": []any{
			map[string]any{
				"NamFullName": "Jane Doe",
				"BioLabel":    "Curator of Herpetology",
				"media": []any{
					map[string]any{
						"irn":                     "801",
						"AdmPublishWebNoPassword": "yes",
						"MdaDataSets_tab":         []any{"Collections Online: Multimedia"},
						"MulMimeType":             "image",
						"AdmDateModified":         "01/02/2024",
						"AdmTimeModified":         "11:00",
					},
				},
			},
		},
	}
}

func TestSpeciesFactoryMakeDocument(t *testing.T) {
	factory := NewSpeciesFactory(NewMediaFactory(&fakeStorer{}))

	species, err := factory.MakeDocument(context.Background(), speciesRecord())
	require.NoError(t, err)

	assert.Equal(t, "species/300", species.ID)
	assert.Equal(t, "Frogs", species.AnimalType)
	assert.Equal(t, "104 mm", species.MaximumSize)
	assert.Equal(t, []string{"Spring", "Summer"}, species.WhenActive)
	assert.Equal(t, []string{"EPBC Vulnerable"}, species.ConservationStatuses)

	t.Run("specimen links follow dataset membership", func(t *testing.T) {
		assert.Equal(t, []string{"specimens/100"}, species.SpecimenIds)
	})

	t.Run("authors carry portrait thumbnails", func(t *testing.T) {
		require.Len(t, species.Authors, 1)
		assert.Equal(t, "Jane Doe", species.Authors[0].Name)
		assert.Equal(t, "Curator of Herpetology", species.Authors[0].Biography)
		require.NotNil(t, species.Authors[0].Media)
		assert.Equal(t, int64(801), species.Authors[0].Media.Irn)
	})

	t.Run("common name is the display title", func(t *testing.T) {
		assert.Equal(t, "Growling Grass Frog", species.DisplayTitle)
	})

	t.Run("summary prefers identifying characters", func(t *testing.T) {
		assert.Equal(t, "Bright green dorsal stripe.", species.Summary)
	})

	t.Run("field guide licence is non-commercial", func(t *testing.T) {
		assert.Equal(t, "CC BY-NC", species.Licence.ShortName)
	})
}

func TestSpeciesDisplayTitleFallbacks(t *testing.T) {
	factory := NewSpeciesFactory(NewMediaFactory(&fakeStorer{}))

	t.Run("scientific name when no common name", func(t *testing.T) {
		rec := speciesRecord()
		rec["taxa"] = []any{map[string]any{"ClaGenus": "Litoria", "ClaSpecies": "raniformis"}}

		species, err := factory.MakeDocument(context.Background(), rec)
		require.NoError(t, err)
		assert.Equal(t, "Litoria raniformis", species.DisplayTitle)
	})

	t.Run("generic literal when no taxonomy", func(t *testing.T) {
		rec := speciesRecord()
		delete(rec, "taxa")

		species, err := factory.MakeDocument(context.Background(), rec)
		require.NoError(t, err)
		assert.Equal(t, "Species", species.DisplayTitle)
	})
}
