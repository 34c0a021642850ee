package entities

// Taxonomy is one taxonomic determination resolved from the source taxonomy
// table. Rank fields are stored verbatim; empty means unrecorded.
type Taxonomy struct {
	Irn              int64    `json:"irn"`
	Kingdom          string   `json:"kingdom,omitempty"`
	Phylum           string   `json:"phylum,omitempty"`
	Subphylum        string   `json:"subphylum,omitempty"`
	Superclass       string   `json:"superclass,omitempty"`
	Class            string   `json:"class,omitempty"`
	Subclass         string   `json:"subclass,omitempty"`
	Superorder       string   `json:"superorder,omitempty"`
	Order            string   `json:"order,omitempty"`
	Suborder         string   `json:"suborder,omitempty"`
	Infraorder       string   `json:"infraorder,omitempty"`
	Superfamily      string   `json:"superfamily,omitempty"`
	Family           string   `json:"family,omitempty"`
	Subfamily        string   `json:"subfamily,omitempty"`
	Genus            string   `json:"genus,omitempty"`
	Subgenus         string   `json:"subgenus,omitempty"`
	Species          string   `json:"species,omitempty"`
	Subspecies       string   `json:"subspecies,omitempty"`
	Author           string   `json:"author,omitempty"`
	Code             string   `json:"code,omitempty"`
	CommonName       string   `json:"commonName,omitempty"`
	OtherCommonNames []string `json:"otherCommonNames,omitempty"`
}

// Association links a party (person or organisation) to a document with a
// role and optional place/date context.
type Association struct {
	Type     string `json:"type,omitempty"`
	Name     string `json:"name,omitempty"`
	Country  string `json:"country,omitempty"`
	State    string `json:"state,omitempty"`
	Region   string `json:"region,omitempty"`
	Locality string `json:"locality,omitempty"`
	Street   string `json:"street,omitempty"`
	Date     string `json:"date,omitempty"`
	Comments string `json:"comments,omitempty"`
}

// Storage describes how a specimen is preserved.
type Storage struct {
	Nature            string `json:"nature,omitempty"`
	Form              string `json:"form,omitempty"`
	FixativeTreatment string `json:"fixativeTreatment,omitempty"`
	Medium            string `json:"medium,omitempty"`
}

// CollectionEvent is the field event a specimen was collected on.
type CollectionEvent struct {
	Irn             int64  `json:"irn"`
	ExpeditionName  string `json:"expeditionName,omitempty"`
	EventCode       string `json:"eventCode,omitempty"`
	SamplingMethod  string `json:"samplingMethod,omitempty"`
	DateVisitedFrom string `json:"dateVisitedFrom,omitempty"`
	DateVisitedTo   string `json:"dateVisitedTo,omitempty"`
	TimeVisitedFrom string `json:"timeVisitedFrom,omitempty"`
	TimeVisitedTo   string `json:"timeVisitedTo,omitempty"`
	DepthFromMetres string `json:"depthFromMetres,omitempty"`
	DepthToMetres   string `json:"depthToMetres,omitempty"`
	CollectedBy     string `json:"collectedBy,omitempty"`
}

// LatLong is one georeference determination for a collection site.
type LatLong struct {
	Latitude      string `json:"latitude,omitempty"`
	Longitude     string `json:"longitude,omitempty"`
	Datum         string `json:"datum,omitempty"`
	DeterminedBy  string `json:"determinedBy,omitempty"`
	Determination string `json:"determination,omitempty"`
	Source        string `json:"source,omitempty"`
}

// CollectionSite is the place a specimen was collected.
type CollectionSite struct {
	Irn               int64     `json:"irn"`
	SiteCode          string    `json:"siteCode,omitempty"`
	Ocean             string    `json:"ocean,omitempty"`
	Continent         string    `json:"continent,omitempty"`
	Country           string    `json:"country,omitempty"`
	State             string    `json:"state,omitempty"`
	District          string    `json:"district,omitempty"`
	Town              string    `json:"town,omitempty"`
	NearestNamedPlace string    `json:"nearestNamedPlace,omitempty"`
	PreciseLocation   string    `json:"preciseLocation,omitempty"`
	MinimumElevation  string    `json:"minimumElevation,omitempty"`
	MaximumElevation  string    `json:"maximumElevation,omitempty"`
	LatLongs          []LatLong `json:"latLongs,omitempty"`
	GeologyEra        string    `json:"geologyEra,omitempty"`
	GeologyPeriod     string    `json:"geologyPeriod,omitempty"`
	GeologyEpoch      string    `json:"geologyEpoch,omitempty"`
	GeologyStage      string    `json:"geologyStage,omitempty"`
	GeologyGroup      []string  `json:"geologyGroup,omitempty"`
	GeologyRockUnit   []string  `json:"geologyRockUnit,omitempty"`
	GeologyMember     []string  `json:"geologyMember,omitempty"`
	GeologyLithology  []string  `json:"geologyLithology,omitempty"`
}

// MuseumLocation is where an object currently sits on display, resolved from
// the nested holder-location chain.
type MuseumLocation struct {
	Venue   string `json:"venue,omitempty"`
	Gallery string `json:"gallery,omitempty"`
}
