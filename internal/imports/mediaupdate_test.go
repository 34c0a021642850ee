package imports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/openmuseum/collections-import/internal/emu"
	"github.com/openmuseum/collections-import/internal/entities"
	"github.com/openmuseum/collections-import/internal/factories"
	"github.com/openmuseum/collections-import/internal/store"
)

func sourceMultimedia(irn int64, title string) emu.Record {
	return emu.Record{
		"irn":                     irn,
		"AdmPublishWebNoPassword": "yes",
		"MdaDataSets_tab":         []any{"Collections Online: Multimedia"},
		"MulMimeType":             "image",
		"MulIdentifier":           "photo.jpg",
		"MulTitle":                title,
		"AdmDateModified":         "14/06/2024",
		"AdmTimeModified":         "08:00",
	}
}

func mediaUpdate(deps Deps) *MediaUpdateImport {
	return NewMediaUpdateImport(factories.NewMediaFactory(nopStorer{}), deps)
}

func finishPrimaryImport(t *testing.T, checkpoints *store.Checkpoints, completedAt time.Time) {
	t.Helper()
	status, err := checkpoints.Get("emu import specimens")
	require.NoError(t, err)
	require.NoError(t, checkpoints.Finish(status, completedAt))
}

func TestMediaUpdateSkipsUntilDocumentImportsComplete(t *testing.T) {
	st, checkpoints, cleanup := setupTestStore(t)
	defer cleanup()

	source := &fakeSource{}
	multimedia := source.Module("emultimedia").(*fakeModule)

	job := mediaUpdate(testDeps(source, st, checkpoints))
	require.NoError(t, job.Run(context.Background()))

	assert.Zero(t, multimedia.findTermsCalls)
}

func TestMediaUpdateFanOut(t *testing.T) {
	st, checkpoints, cleanup := setupTestStore(t)
	defer cleanup()

	previousRun := time.Date(2024, 6, 13, 2, 0, 0, 0, time.UTC)
	finishPrimaryImport(t, checkpoints, previousRun)

	oldMedia := entities.Media{Irn: 501, Kind: entities.MediaKindImage, Caption: "Old caption"}
	otherMedia := entities.Media{Irn: 502, Kind: entities.MediaKindImage, Caption: "Untouched"}

	specimenOne := &entities.Specimen{ID: "specimens/1", Media: []entities.Media{oldMedia, otherMedia}}
	specimenTwo := &entities.Specimen{ID: "specimens/2", Media: []entities.Media{oldMedia}}
	species := &entities.Species{
		ID: "species/3",
		Authors: []entities.Author{
			{Name: "Jane Doe", Media: &entities.Media{Irn: 501, Kind: entities.MediaKindImage, Caption: "Old caption"}},
		},
	}

	require.NoError(t, st.InTransaction(func(tx *gorm.DB) error {
		for _, doc := range []entities.Document{specimenOne, specimenTwo, species} {
			if err := store.SaveDocument(tx, doc); err != nil {
				return err
			}
		}
		return nil
	}))

	source := &fakeSource{}
	multimedia := source.Module("emultimedia").(*fakeModule)
	multimedia.searchKeys = []int64{501}
	multimedia.records = map[int64]emu.Record{501: sourceMultimedia(501, "New caption")}

	job := mediaUpdate(testDeps(source, st, checkpoints))
	require.NoError(t, job.Run(context.Background()))

	t.Run("incremental search uses the earliest completion", func(t *testing.T) {
		assert.Contains(t, multimedia.lastTerms, emu.Term{Field: "AdmDateModified", Value: "Jun 13 2024", Op: ">="})
	})

	t.Run("every referencing document is refreshed", func(t *testing.T) {
		one, err := store.FindDocument[entities.Specimen](st.DB(), "specimens/1")
		require.NoError(t, err)
		require.NotNil(t, one)
		assert.Equal(t, "New caption", one.Media[0].Caption)
		assert.Equal(t, "Untouched", one.Media[1].Caption)

		two, err := store.FindDocument[entities.Specimen](st.DB(), "specimens/2")
		require.NoError(t, err)
		require.NotNil(t, two)
		assert.Equal(t, "New caption", two.Media[0].Caption)
	})

	t.Run("author portraits are refreshed too", func(t *testing.T) {
		loaded, err := store.FindDocument[entities.Species](st.DB(), "species/3")
		require.NoError(t, err)
		require.NotNil(t, loaded)
		require.NotNil(t, loaded.Authors[0].Media)
		assert.Equal(t, "New caption", loaded.Authors[0].Media.Caption)
	})

	t.Run("checkpoint completes", func(t *testing.T) {
		status, err := checkpoints.Get(job.Name())
		require.NoError(t, err)
		assert.True(t, status.IsFinished)
	})
}

func TestReplaceMedia(t *testing.T) {
	updated := entities.Media{Irn: 10, Caption: "new"}

	t.Run("no match leaves the document untouched", func(t *testing.T) {
		specimen := &entities.Specimen{Media: []entities.Media{{Irn: 99}}}
		assert.False(t, replaceMedia(specimen, updated))
	})

	t.Run("matching media is swapped in place", func(t *testing.T) {
		specimen := &entities.Specimen{Media: []entities.Media{{Irn: 10, Caption: "old"}}}
		assert.True(t, replaceMedia(specimen, updated))
		assert.Equal(t, "new", specimen.Media[0].Caption)
	})

	t.Run("author media counts as a match", func(t *testing.T) {
		article := &entities.Article{
			Authors: []entities.Author{{Media: &entities.Media{Irn: 10, Caption: "old"}}},
		}
		assert.True(t, replaceMedia(article, updated))
		assert.Equal(t, "new", article.Authors[0].Media.Caption)
	})
}
