package entities

// MediaRef is one row of the media reference index: document DocumentID embeds
// media MediaIrn. Rows are rewritten whenever the document is saved, in the
// same transaction, and the media-update import pages them to find every
// document touched by a changed asset.
type MediaRef struct {
	DocumentID string `gorm:"primaryKey;size:128"`
	MediaIrn   int64  `gorm:"primaryKey;autoIncrement:false;index"`
}

func (MediaRef) TableName() string { return "media_refs" }
