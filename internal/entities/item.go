package entities

import (
	"time"
)

// Item is a humanities collection record. It carries the subset of fields the
// import writes; the remainder of the humanities schema stays in the source
// system.
type Item struct {
	ID           string    `gorm:"primaryKey;size:128" json:"id"`
	IsHidden     bool      `json:"isHidden"`
	DateModified time.Time `json:"dateModified"`

	Category           string   `json:"category,omitempty"`
	Discipline         string   `json:"discipline,omitempty"`
	RegistrationNumber string   `json:"registrationNumber,omitempty"`
	CollectionNames    []string `gorm:"serializer:json" json:"collectionNames,omitempty"`
	Type               string   `json:"type,omitempty"`
	Classifications    []string `gorm:"serializer:json" json:"classifications,omitempty"`
	ObjectName         string   `json:"objectName,omitempty"`
	ObjectSummary      string   `json:"objectSummary,omitempty"`
	Description        string   `json:"description,omitempty"`
	Significance       string   `json:"significance,omitempty"`
	Keywords           []string `gorm:"serializer:json" json:"keywords,omitempty"`
	CollectingAreas    []string `gorm:"serializer:json" json:"collectingAreas,omitempty"`

	Associations           []Association `gorm:"serializer:json" json:"associations,omitempty"`
	AcquisitionInformation string        `json:"acquisitionInformation,omitempty"`
	Acknowledgement        string        `json:"acknowledgement,omitempty"`

	MuseumLocation *MuseumLocation `gorm:"serializer:json" json:"museumLocation,omitempty"`

	Media        []Media `gorm:"serializer:json" json:"media,omitempty"`
	ThumbnailUri string  `json:"thumbnailUri,omitempty"`
	Licence      Licence `gorm:"serializer:json" json:"licence"`

	RelatedItemIds     []string `gorm:"serializer:json" json:"relatedItemIds,omitempty"`
	RelatedSpecimenIds []string `gorm:"serializer:json" json:"relatedSpecimenIds,omitempty"`
	RelatedSpeciesIds  []string `gorm:"serializer:json" json:"relatedSpeciesIds,omitempty"`
	RelatedArticleIds  []string `gorm:"serializer:json" json:"relatedArticleIds,omitempty"`

	DisplayTitle string `json:"displayTitle,omitempty"`
	Slug         string `json:"slug,omitempty"`
	Summary      string `json:"summary,omitempty"`

	// Locally owned, never overwritten by imports.
	Comments    []Comment `gorm:"serializer:json" json:"comments,omitempty"`
	IsModerated bool      `json:"isModerated"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Item) TableName() string { return "items" }

func (i *Item) DocumentID() string    { return i.ID }
func (i *Item) ModifiedAt() time.Time { return i.DateModified }
func (i *Item) Hidden() bool          { return i.IsHidden }

func (i *Item) MediaIrns() []int64 {
	return mediaIrns(i.Media, nil)
}

func (i *Item) Merge(existing Document) {
	prev, ok := existing.(*Item)
	if !ok {
		return
	}
	i.Comments = prev.Comments
	i.IsModerated = prev.IsModerated
	i.CreatedAt = prev.CreatedAt
}
