package entities

import (
	"time"
)

// MediaKind is the closed set of media variants. Code that renders or merges
// media switches exhaustively over these values.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindFile  MediaKind = "file"
	MediaKindVideo MediaKind = "video"
	MediaKindAudio MediaKind = "audio"
	MediaKindUri   MediaKind = "uri"
)

// MediaFile describes one generated derivative of a media asset.
type MediaFile struct {
	Uri    string `json:"uri"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Size   int64  `json:"size,omitempty"`
}

// Media is an asset owned by exactly one parent document (or by an author
// sub-object within one), keyed by the source media irn.
type Media struct {
	Irn             int64     `json:"irn"`
	Kind            MediaKind `json:"kind"`
	DateModified    time.Time `json:"dateModified"`
	Caption         string    `json:"caption,omitempty"`
	AlternativeText string    `json:"alternativeText,omitempty"`
	Creators        []string  `json:"creators,omitempty"`
	Sources         []string  `json:"sources,omitempty"`
	Credit          string    `json:"credit,omitempty"`
	RightsStatement string    `json:"rightsStatement,omitempty"`
	RightsStatus    string    `json:"rightsStatus,omitempty"`
	Licence         string    `json:"licence,omitempty"`
	LicenceDetails  string    `json:"licenceDetails,omitempty"`

	// Uri holds the external location for video and uri variants.
	Uri string `json:"uri,omitempty"`

	// Derivatives generated by the media helper. Nil when the variant has
	// none (video, uri) or generation was skipped.
	Thumbnail *MediaFile `json:"thumbnail,omitempty"`
	Medium    *MediaFile `json:"medium,omitempty"`
	Large     *MediaFile `json:"large,omitempty"`
}

// HasThumbnail reports whether this media can supply a document thumbnail.
func (m Media) HasThumbnail() bool {
	return m.Thumbnail != nil && m.Thumbnail.Uri != ""
}

// Author is a person sub-object (narrative author) that may carry its own
// portrait media.
type Author struct {
	Name      string `json:"name"`
	Biography string `json:"biography,omitempty"`
	Media     *Media `json:"media,omitempty"`
}

// Licence is the reuse licence resolved for a document.
type Licence struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName,omitempty"`
	Uri       string `json:"uri,omitempty"`
	Open      bool   `json:"open"`
}
