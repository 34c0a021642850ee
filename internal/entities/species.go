package entities

import (
	"time"
)

// Species is a field guide narrative describing a living species.
type Species struct {
	ID           string    `gorm:"primaryKey;size:128" json:"id"`
	IsHidden     bool      `json:"isHidden"`
	DateModified time.Time `json:"dateModified"`

	AnimalType    string `json:"animalType,omitempty"`
	AnimalSubType string `json:"animalSubType,omitempty"`

	Colours     []string `gorm:"serializer:json" json:"colours,omitempty"`
	MaximumSize string   `json:"maximumSize,omitempty"`

	Habitats      []string `gorm:"serializer:json" json:"habitats,omitempty"`
	WhereToLook   []string `gorm:"serializer:json" json:"whereToLook,omitempty"`
	WhenActive    []string `gorm:"serializer:json" json:"whenActive,omitempty"`
	NationalParks []string `gorm:"serializer:json" json:"nationalParks,omitempty"`

	Diet           string   `json:"diet,omitempty"`
	DietCategories []string `gorm:"serializer:json" json:"dietCategories,omitempty"`

	FastFact              string `json:"fastFact,omitempty"`
	Habitat               string `json:"habitat,omitempty"`
	Distribution          string `json:"distribution,omitempty"`
	Biology               string `json:"biology,omitempty"`
	IdentifyingCharacters string `json:"identifyingCharacters,omitempty"`
	BriefId               string `json:"briefId,omitempty"`
	Hazards               string `json:"hazards,omitempty"`
	Endemicity            string `json:"endemicity,omitempty"`
	Commercial            string `json:"commercial,omitempty"`

	ConservationStatuses []string `gorm:"serializer:json" json:"conservationStatuses,omitempty"`
	ScientificDiagnosis  string   `json:"scientificDiagnosis,omitempty"`

	// Animal specific fields (spiders, butterflies, marine species).
	Web                  string   `json:"web,omitempty"`
	Plants               []string `gorm:"serializer:json" json:"plants,omitempty"`
	FlightStart          string   `json:"flightStart,omitempty"`
	FlightEnd            string   `json:"flightEnd,omitempty"`
	Depths               []string `gorm:"serializer:json" json:"depths,omitempty"`
	WaterColumnLocations []string `gorm:"serializer:json" json:"waterColumnLocations,omitempty"`

	Taxonomy *Taxonomy `gorm:"serializer:json" json:"taxonomy,omitempty"`

	SpecimenIds []string `gorm:"serializer:json" json:"specimenIds,omitempty"`

	Authors      []Author `gorm:"serializer:json" json:"authors,omitempty"`
	Media        []Media  `gorm:"serializer:json" json:"media,omitempty"`
	ThumbnailUri string   `json:"thumbnailUri,omitempty"`
	Licence      Licence  `gorm:"serializer:json" json:"licence"`

	DisplayTitle string `json:"displayTitle,omitempty"`
	Slug         string `json:"slug,omitempty"`
	Summary      string `json:"summary,omitempty"`

	// Locally owned, never overwritten by imports.
	Comments    []Comment `gorm:"serializer:json" json:"comments,omitempty"`
	IsModerated bool      `json:"isModerated"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Species) TableName() string { return "species" }

func (s *Species) DocumentID() string    { return s.ID }
func (s *Species) ModifiedAt() time.Time { return s.DateModified }
func (s *Species) Hidden() bool          { return s.IsHidden }

func (s *Species) MediaIrns() []int64 {
	return mediaIrns(s.Media, s.Authors)
}

func (s *Species) Merge(existing Document) {
	prev, ok := existing.(*Species)
	if !ok {
		return
	}
	s.Comments = prev.Comments
	s.IsModerated = prev.IsModerated
	s.CreatedAt = prev.CreatedAt
}
