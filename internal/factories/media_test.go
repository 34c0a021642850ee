package factories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmuseum/collections-import/internal/emu"
	"github.com/openmuseum/collections-import/internal/entities"
	"github.com/openmuseum/collections-import/internal/media"
)

// fakeStorer records derivative saves without touching the filesystem.
type fakeStorer struct {
	saves   []string
	missing bool
	err     error
}

func (f *fakeStorer) Save(_ context.Context, irn int64, format media.Format, _ *media.ResizeSpec, derivative string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.missing {
		return false, nil
	}
	name := derivative
	if name == "" {
		name = "original"
	}
	f.saves = append(f.saves, name)
	return true, nil
}

func imageRecord() emu.Record {
	return emu.Record{
		"irn":                     "5001",
		"AdmPublishWebNoPassword": "yes",
		"MdaDataSets_tab":         []any{"Collections Online: Multimedia"},
		"MulMimeType":             "image",
		"MulIdentifier":           "specimen.jpg",
		"MulTitle":                "Emerald on matrix",
		"AdmDateModified":         "01/03/2024",
		"AdmTimeModified":         "09:15",
	}
}

func TestMediaFactoryMakeImage(t *testing.T) {
	storer := &fakeStorer{}
	factory := NewMediaFactory(storer)

	m, err := factory.Make(context.Background(), imageRecord())
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, entities.MediaKindImage, m.Kind)
	assert.Equal(t, int64(5001), m.Irn)
	assert.Equal(t, "Emerald on matrix", m.Caption)
	assert.Equal(t, []string{"thumb", "medium", "large"}, storer.saves)

	require.NotNil(t, m.Thumbnail)
	assert.Equal(t, 365, m.Thumbnail.Width)
	assert.Equal(t, "/media/1/5001-thumb.jpg", m.Thumbnail.Uri)
	require.NotNil(t, m.Large)
	assert.Equal(t, 1600, m.Large.Width)
}

func TestMediaFactoryGating(t *testing.T) {
	t.Run("unpublished record is skipped without storage calls", func(t *testing.T) {
		storer := &fakeStorer{}
		rec := imageRecord()
		rec["AdmPublishWebNoPassword"] = "no"

		m, err := NewMediaFactory(storer).Make(context.Background(), rec)
		require.NoError(t, err)
		assert.Nil(t, m)
		assert.Empty(t, storer.saves)
	})

	t.Run("record outside the multimedia dataset is skipped", func(t *testing.T) {
		storer := &fakeStorer{}
		rec := imageRecord()
		rec["MdaDataSets_tab"] = []any{"Some Other Dataset"}

		m, err := NewMediaFactory(storer).Make(context.Background(), rec)
		require.NoError(t, err)
		assert.Nil(t, m)
		assert.Empty(t, storer.saves)
	})

	t.Run("unknown mime type is skipped", func(t *testing.T) {
		rec := imageRecord()
		rec["MulMimeType"] = "model"

		m, err := NewMediaFactory(&fakeStorer{}).Make(context.Background(), rec)
		require.NoError(t, err)
		assert.Nil(t, m)
	})

	t.Run("missing resolution skips the whole image", func(t *testing.T) {
		m, err := NewMediaFactory(&fakeStorer{missing: true}).Make(context.Background(), imageRecord())
		require.NoError(t, err)
		assert.Nil(t, m)
	})

	t.Run("storage failure is an error", func(t *testing.T) {
		m, err := NewMediaFactory(&fakeStorer{err: assert.AnError}).Make(context.Background(), imageRecord())
		assert.Error(t, err)
		assert.Nil(t, m)
	})
}

func TestMediaFactoryMakeVideo(t *testing.T) {
	storer := &fakeStorer{}
	rec := imageRecord()
	rec["MulMimeType"] = "video"
	rec["MulIdentifier"] = "https://youtu.be/abc123"
	rec["ChaRepository_tab"] = []any{"Online Video"}

	m, err := NewMediaFactory(storer).Make(context.Background(), rec)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, entities.MediaKindVideo, m.Kind)
	assert.Equal(t, "https://youtu.be/abc123", m.Uri)

	// External hosting means nothing is fetched or written.
	assert.Empty(t, storer.saves)
}

func TestMediaFactoryMakeFile(t *testing.T) {
	storer := &fakeStorer{}
	rec := imageRecord()
	rec["MulMimeType"] = "application"
	rec["MulIdentifier"] = "fieldnotes.pdf"

	m, err := NewMediaFactory(storer).Make(context.Background(), rec)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, entities.MediaKindFile, m.Kind)
	assert.Equal(t, "/media/1/5001.pdf", m.Uri)
	assert.Equal(t, []string{"original"}, storer.saves)
}

func TestMakeCaption(t *testing.T) {
	rec := imageRecord()
	rec["metadata"] = []any{
		map[string]any{"MdaElement_tab": "dcTitle", "MdaQualifier_tab": "Caption.COL", "MdaFreeText_tab": "Curated caption"},
	}

	assert.Equal(t, "Curated caption", makeCaption(rec))

	t.Run("falls back to the raw title", func(t *testing.T) {
		assert.Equal(t, "Emerald on matrix", makeCaption(imageRecord()))
	})
}

func TestMakeAuthorThumbnail(t *testing.T) {
	storer := &fakeStorer{}
	m, err := NewMediaFactory(storer).MakeAuthorThumbnail(context.Background(), imageRecord())
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, []string{"thumb"}, storer.saves)
	require.NotNil(t, m.Thumbnail)
	assert.Nil(t, m.Medium)
	assert.Nil(t, m.Large)

	t.Run("non-image portraits are skipped", func(t *testing.T) {
		rec := imageRecord()
		rec["MulMimeType"] = "application"
		m, err := NewMediaFactory(&fakeStorer{}).MakeAuthorThumbnail(context.Background(), rec)
		require.NoError(t, err)
		assert.Nil(t, m)
	})
}
