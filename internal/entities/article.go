package entities

import (
	"time"
)

// Article is an editorial narrative about the collection.
type Article struct {
	ID           string    `gorm:"primaryKey;size:128" json:"id"`
	IsHidden     bool      `json:"isHidden"`
	DateModified time.Time `json:"dateModified"`

	Title          string   `json:"title,omitempty"`
	ContentText    string   `json:"contentText,omitempty"`
	ContentSummary string   `json:"contentSummary,omitempty"`
	Types          []string `gorm:"serializer:json" json:"types,omitempty"`
	Keywords       []string `gorm:"serializer:json" json:"keywords,omitempty"`

	Authors      []Author `gorm:"serializer:json" json:"authors,omitempty"`
	Media        []Media  `gorm:"serializer:json" json:"media,omitempty"`
	ThumbnailUri string   `json:"thumbnailUri,omitempty"`
	Licence      Licence  `gorm:"serializer:json" json:"licence"`

	ParentArticleId    string   `json:"parentArticleId,omitempty"`
	ChildArticleIds    []string `gorm:"serializer:json" json:"childArticleIds,omitempty"`
	RelatedItemIds     []string `gorm:"serializer:json" json:"relatedItemIds,omitempty"`
	RelatedSpecimenIds []string `gorm:"serializer:json" json:"relatedSpecimenIds,omitempty"`
	RelatedArticleIds  []string `gorm:"serializer:json" json:"relatedArticleIds,omitempty"`

	DisplayTitle string `json:"displayTitle,omitempty"`
	Slug         string `json:"slug,omitempty"`
	Summary      string `json:"summary,omitempty"`

	// Locally owned, never overwritten by imports.
	Comments    []Comment `gorm:"serializer:json" json:"comments,omitempty"`
	IsModerated bool      `json:"isModerated"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Article) TableName() string { return "articles" }

func (a *Article) DocumentID() string    { return a.ID }
func (a *Article) ModifiedAt() time.Time { return a.DateModified }
func (a *Article) Hidden() bool          { return a.IsHidden }

func (a *Article) MediaIrns() []int64 {
	return mediaIrns(a.Media, a.Authors)
}

func (a *Article) Merge(existing Document) {
	prev, ok := existing.(*Article)
	if !ok {
		return
	}
	a.Comments = prev.Comments
	a.IsModerated = prev.IsModerated
	a.CreatedAt = prev.CreatedAt
}
