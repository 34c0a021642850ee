package media

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDestPath(t *testing.T) {
	got := DestPath("/data/media", 12345, FormatJpg, "thumb")
	assert.Equal(t, filepath.Join("/data/media", "45", "12345-thumb.jpg"), got)

	t.Run("no derivative suffix for originals", func(t *testing.T) {
		got := DestPath("/data/media", 50, FormatPdf, "")
		assert.Equal(t, filepath.Join("/data/media", "0", "50.pdf"), got)
	})
}

func TestURLPath(t *testing.T) {
	assert.Equal(t, "/media/45/12345-thumb.jpg", URLPath(12345, FormatJpg, "thumb"))
	assert.Equal(t, "/media/3/53.mp3", URLPath(53, FormatMp3, ""))
}

func TestSetBaseURL(t *testing.T) {
	t.Cleanup(func() { baseURL = "/media" })

	SetBaseURL("https://cdn.example.org/collections/")
	assert.Equal(t, "https://cdn.example.org/collections/45/12345-thumb.jpg",
		URLPath(12345, FormatJpg, "thumb"))

	t.Run("blank keeps the default", func(t *testing.T) {
		baseURL = "/media"
		SetBaseURL("")
		assert.Equal(t, "/media/3/53.mp3", URLPath(53, FormatMp3, ""))
	})
}

func TestPathsAgree(t *testing.T) {
	// The website maps URL paths straight onto the filesystem layout, so the
	// two schemes must stay in lockstep.
	irn := int64(98765)
	assert.Equal(t,
		filepath.Join("/root", "15", "98765-medium.jpg"),
		DestPath("/root", irn, FormatJpg, "medium"))
	assert.Equal(t, "/media/15/98765-medium.jpg", URLPath(irn, FormatJpg, "medium"))
}
