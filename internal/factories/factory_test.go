package factories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmuseum/collections-import/internal/emu"
	"github.com/openmuseum/collections-import/internal/entities"
)

func TestParseDateModified(t *testing.T) {
	rec := emu.Record{
		"AdmDateModified": "15/06/2024",
		"AdmTimeModified": "14:30",
	}

	got, err := parseDateModified(rec)
	require.NoError(t, err)

	// Melbourne winter is UTC+10.
	assert.Equal(t, time.Date(2024, 6, 15, 4, 30, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())

	t.Run("missing fields fail the record", func(t *testing.T) {
		_, err := parseDateModified(emu.Record{})
		assert.Error(t, err)
	})

	t.Run("american ordering is rejected", func(t *testing.T) {
		_, err := parseDateModified(emu.Record{
			"AdmDateModified": "06/15/2024",
			"AdmTimeModified": "14:30",
		})
		assert.Error(t, err)
	})
}

func TestSetTimezone(t *testing.T) {
	t.Cleanup(func() { sourceTimezone = loadSourceTimezone() })

	require.NoError(t, SetTimezone("UTC"))
	got, err := parseDateModified(emu.Record{
		"AdmDateModified": "15/06/2024",
		"AdmTimeModified": "14:30",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC), got)

	t.Run("unknown zone is rejected", func(t *testing.T) {
		assert.Error(t, SetTimezone("Mars/Olympus_Mons"))
	})
}

func TestIsHidden(t *testing.T) {
	assert.True(t, isHidden(emu.Record{"AdmPublishWebNoPassword": "no"}))
	assert.True(t, isHidden(emu.Record{"AdmPublishWebNoPassword": "No"}))
	assert.False(t, isHidden(emu.Record{"AdmPublishWebNoPassword": "yes"}))

	// Only an explicit "no" hides; absence leaves the record visible.
	assert.False(t, isHidden(emu.Record{}))
}

func TestSentenceCase(t *testing.T) {
	assert.Equal(t, "Mineralogy", sentenceCase("MINERALOGY"))
	assert.Equal(t, "Palaeontology", sentenceCase("palaeontology"))
	assert.Equal(t, "", sentenceCase(""))
}

func TestConcatenate(t *testing.T) {
	assert.Equal(t, "a, b", concatenate(", ", "a", "", "  ", "b"))
	assert.Equal(t, "", concatenate(", "))
}

func TestMakeSummary(t *testing.T) {
	assert.Equal(t, "second", MakeSummary("", "  ", "second", "third"))
	assert.Equal(t, "", MakeSummary("", ""))
}

func TestTruncateAtWord(t *testing.T) {
	assert.Equal(t, "short text", TruncateAtWord("short text", 230))

	t.Run("never cuts mid-word", func(t *testing.T) {
		got := TruncateAtWord("the quick brown fox jumps", 12)
		assert.Equal(t, "the quick...", got)
	})

	t.Run("single long word is cut hard", func(t *testing.T) {
		got := TruncateAtWord("abcdefghijklmnop", 5)
		assert.Equal(t, "abcde...", got)
	})
}

func TestMakeSlug(t *testing.T) {
	assert.Equal(t, "pink-tourmaline-on-quartz", MakeSlug("Pink Tourmaline, on Quartz!"))
	assert.Equal(t, "", MakeSlug("  "))
}

func TestMakeYearSpan(t *testing.T) {
	assert.Equal(t, "1850-1859", MakeYearSpan("185"))
	assert.Equal(t, "1800-1899", MakeYearSpan("18"))
	assert.Equal(t, "1854", MakeYearSpan("1854"))
	assert.Equal(t, "1850-1859", MakeYearSpan("185-?"))
	assert.Equal(t, "circa 1850", MakeYearSpan("circa 1850"))
	assert.Equal(t, "", MakeYearSpan(""))
}

func TestMakePartiesName(t *testing.T) {
	t.Run("person uses full name", func(t *testing.T) {
		rec := emu.Record{"NamPartyType": "Person", "NamFullName": "Jane Doe"}
		assert.Equal(t, "Jane Doe", MakePartiesName(rec))
	})

	t.Run("organisation joins branch and department", func(t *testing.T) {
		rec := emu.Record{
			"NamPartyType":    "Organisation",
			"NamOrganisation": "Geological Survey",
			"NamBranch":       "Victoria",
		}
		assert.Equal(t, "Geological Survey - Victoria", MakePartiesName(rec))
	})

	t.Run("collaboration uses collaboration name", func(t *testing.T) {
		rec := emu.Record{"NamPartyType": "Collaboration", "ColCollaborationName": "Field Naturalists Club"}
		assert.Equal(t, "Field Naturalists Club", MakePartiesName(rec))
	})

	t.Run("nil record is safe", func(t *testing.T) {
		assert.Equal(t, "", MakePartiesName(nil))
	})
}

func TestMakeScientificName(t *testing.T) {
	taxonomy := MakeTaxonomy(emu.Record{
		"ClaGenus":        "Litoria",
		"ClaSubgenus":     "Dryopsophus",
		"ClaSpecies":      "raniformis",
		"AutAuthorString": "(Keferstein, 1867)",
	})
	require.NotNil(t, taxonomy)

	assert.Equal(t, "Litoria (Dryopsophus) raniformis (Keferstein, 1867)",
		MakeScientificName(entities.QualifierRankNone, "", taxonomy))

	t.Run("genus qualifier precedes genus", func(t *testing.T) {
		got := MakeScientificName(entities.QualifierRankGenus, "cf.", taxonomy)
		assert.Equal(t, "cf. Litoria (Dryopsophus) raniformis (Keferstein, 1867)", got)
	})

	t.Run("species qualifier precedes species", func(t *testing.T) {
		got := MakeScientificName(entities.QualifierRankSpecies, "aff.", taxonomy)
		assert.Equal(t, "Litoria (Dryopsophus) aff. raniformis (Keferstein, 1867)", got)
	})

	t.Run("nil taxonomy yields empty name", func(t *testing.T) {
		assert.Equal(t, "", MakeScientificName(entities.QualifierRankNone, "", nil))
	})
}

func TestMakeTaxonomyCommonNames(t *testing.T) {
	taxonomy := MakeTaxonomy(emu.Record{
		"ClaGenus": "Litoria",
		"comname": []any{
			map[string]any{"ComStatus_tab": "Preferred", "ComName_tab": "Growling Grass Frog"},
			map[string]any{"ComStatus_tab": "", "ComName_tab": "Southern Bell Frog"},
		},
	})
	require.NotNil(t, taxonomy)

	assert.Equal(t, "Growling Grass Frog", taxonomy.CommonName)
	assert.Equal(t, []string{"Southern Bell Frog"}, taxonomy.OtherCommonNames)
}

func TestMakeAcquisitionInformation(t *testing.T) {
	rec := emu.Record{
		"accession": map[string]any{
			"AdmPublishWebNoPassword": "yes",
			"AcqAcquisitionMethod":    "Donation",
			"AcqDateReceived":         "01/01/2000",
			"source": []any{
				map[string]any{
					"AcqSourceRole_tab": "donor",
					"name":              map[string]any{"NamPartyType": "Person", "NamFullName": "Jane Doe"},
				},
				map[string]any{
					"AcqSourceRole_tab": "Vendor details",
					"name":              map[string]any{"NamPartyType": "Person", "NamFullName": "Hidden Seller"},
				},
			},
		},
	}

	information, _ := makeAcquisitionInformation(rec)
	assert.Equal(t, "Donation from Jane Doe, 01/01/2000", information)

	t.Run("unpublished accession contributes nothing", func(t *testing.T) {
		rec := emu.Record{
			"accession": map[string]any{
				"AdmPublishWebNoPassword": "no",
				"AcqAcquisitionMethod":    "Purchase",
			},
		}
		information, acknowledgement := makeAcquisitionInformation(rec)
		assert.Empty(t, information)
		assert.Empty(t, acknowledgement)
	})

	t.Run("method stands alone when every source is excluded", func(t *testing.T) {
		rec := emu.Record{
			"accession": map[string]any{
				"AdmPublishWebNoPassword": "yes",
				"AcqAcquisitionMethod":    "Purchase",
				"source": []any{
					map[string]any{
						"AcqSourceRole_tab": "Confidential source",
						"name":              map[string]any{"NamFullName": "Secret"},
					},
				},
			},
		}
		information, _ := makeAcquisitionInformation(rec)
		assert.Equal(t, "Purchase", information)
	})

	t.Run("credit line wins over rights text", func(t *testing.T) {
		rec := emu.Record{
			"RigText0": []any{"Rights statement"},
			"accession": map[string]any{
				"AdmPublishWebNoPassword": "yes",
				"AcqCreditLine":           "Donated by the Smith family",
			},
		}
		_, acknowledgement := makeAcquisitionInformation(rec)
		assert.Equal(t, "Donated by the Smith family", acknowledgement)
	})
}

func TestMakeLicence(t *testing.T) {
	assert.Equal(t, "CC BY", makeLicenceFromText("cc by").ShortName)
	assert.Equal(t, "CC BY-NC", makeLicenceFromText(" CC BY-NC ").ShortName)
	assert.Equal(t, "ARR", makeLicenceFromText("unrecognised").ShortName)
	assert.Equal(t, "ARR", MakeLicence(nil).ShortName)
	assert.False(t, MakeLicence(nil).Open)
}
