package entities

import (
	"time"
)

// Specimen is a natural sciences collection record.
type Specimen struct {
	ID           string    `gorm:"primaryKey;size:128" json:"id"`
	IsHidden     bool      `json:"isHidden"`
	DateModified time.Time `json:"dateModified"`

	Category           string   `json:"category,omitempty"`
	ScientificGroup    string   `json:"scientificGroup,omitempty"`
	Discipline         string   `json:"discipline,omitempty"`
	RegistrationNumber string   `json:"registrationNumber,omitempty"`
	CollectionNames    []string `gorm:"serializer:json" json:"collectionNames,omitempty"`
	Type               string   `json:"type,omitempty"`
	Classifications    []string `gorm:"serializer:json" json:"classifications,omitempty"`
	ObjectName         string   `json:"objectName,omitempty"`
	ObjectSummary      string   `json:"objectSummary,omitempty"`
	ContentDescription string   `json:"contentDescription,omitempty"`
	Significance       string   `json:"significance,omitempty"`
	Keywords           []string `gorm:"serializer:json" json:"keywords,omitempty"`
	CollectingAreas    []string `gorm:"serializer:json" json:"collectingAreas,omitempty"`

	Associations           []Association `gorm:"serializer:json" json:"associations,omitempty"`
	AcquisitionInformation string        `json:"acquisitionInformation,omitempty"`
	Acknowledgement        string        `json:"acknowledgement,omitempty"`

	MuseumLocation *MuseumLocation `gorm:"serializer:json" json:"museumLocation,omitempty"`

	NumberOfSpecimens string    `json:"numberOfSpecimens,omitempty"`
	ClutchSize        string    `json:"clutchSize,omitempty"`
	Sex               string    `json:"sex,omitempty"`
	StageOrAge        string    `json:"stageOrAge,omitempty"`
	Storages          []Storage `gorm:"serializer:json" json:"storages,omitempty"`

	TypeStatus     string        `json:"typeStatus,omitempty"`
	IdentifiedBy   string        `json:"identifiedBy,omitempty"`
	DateIdentified string        `json:"dateIdentified,omitempty"`
	Qualifier      string        `json:"qualifier,omitempty"`
	QualifierRank  QualifierRank `json:"qualifierRank,omitempty"`
	Taxonomy       *Taxonomy     `gorm:"serializer:json" json:"taxonomy,omitempty"`

	CollectionEvent *CollectionEvent `gorm:"serializer:json" json:"collectionEvent,omitempty"`
	CollectionSite  *CollectionSite  `gorm:"serializer:json" json:"collectionSite,omitempty"`

	// Palaeontology
	PalaeontologyDateCollectedFrom string `json:"palaeontologyDateCollectedFrom,omitempty"`
	PalaeontologyDateCollectedTo   string `json:"palaeontologyDateCollectedTo,omitempty"`

	// Mineralogy
	MineralogySpecies          string `json:"mineralogySpecies,omitempty"`
	MineralogyVariety          string `json:"mineralogyVariety,omitempty"`
	MineralogyGroup            string `json:"mineralogyGroup,omitempty"`
	MineralogyClass            string `json:"mineralogyClass,omitempty"`
	MineralogyAssociatedMatrix string `json:"mineralogyAssociatedMatrix,omitempty"`
	MineralogyType             string `json:"mineralogyType,omitempty"`
	MineralogyTypeOfType       string `json:"mineralogyTypeOfType,omitempty"`

	// Meteorites
	MeteoritesName           string `json:"meteoritesName,omitempty"`
	MeteoritesClass          string `json:"meteoritesClass,omitempty"`
	MeteoritesGroup          string `json:"meteoritesGroup,omitempty"`
	MeteoritesType           string `json:"meteoritesType,omitempty"`
	MeteoritesMinerals       string `json:"meteoritesMinerals,omitempty"`
	MeteoritesSpecimenWeight string `json:"meteoritesSpecimenWeight,omitempty"`
	MeteoritesTotalWeight    string `json:"meteoritesTotalWeight,omitempty"`
	MeteoritesDateFell       string `json:"meteoritesDateFell,omitempty"`
	MeteoritesDateFound      string `json:"meteoritesDateFound,omitempty"`

	// Tektites
	TektitesName              string `json:"tektitesName,omitempty"`
	TektitesClassification    string `json:"tektitesClassification,omitempty"`
	TektitesShape             string `json:"tektitesShape,omitempty"`
	TektitesLocalStrewnfield  string `json:"tektitesLocalStrewnfield,omitempty"`
	TektitesGlobalStrewnfield string `json:"tektitesGlobalStrewnfield,omitempty"`

	// Petrology
	PetrologyRockClass       string `json:"petrologyRockClass,omitempty"`
	PetrologyRockGroup       string `json:"petrologyRockGroup,omitempty"`
	PetrologyRockName        string `json:"petrologyRockName,omitempty"`
	PetrologyRockDescription string `json:"petrologyRockDescription,omitempty"`
	PetrologyMineralsPresent string `json:"petrologyMineralsPresent,omitempty"`

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

func (Specimen) TableName() string { return "specimens" }

func (s *Specimen) DocumentID() string    { return s.ID }
func (s *Specimen) ModifiedAt() time.Time { return s.DateModified }
func (s *Specimen) Hidden() bool          { return s.IsHidden }

func (s *Specimen) MediaIrns() []int64 {
	return mediaIrns(s.Media, nil)
}

func (s *Specimen) Merge(existing Document) {
	prev, ok := existing.(*Specimen)
	if !ok {
		return
	}
	s.Comments = prev.Comments
	s.IsModerated = prev.IsModerated
	s.CreatedAt = prev.CreatedAt
}

// mediaIrns collects the irns of top-level media plus any author media.
func mediaIrns(media []Media, authors []Author) []int64 {
	irns := make([]int64, 0, len(media)+len(authors))
	for _, m := range media {
		irns = append(irns, m.Irn)
	}
	for _, a := range authors {
		if a.Media != nil {
			irns = append(irns, a.Media.Irn)
		}
	}
	return irns
}
