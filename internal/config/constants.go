package config

// Default paths and tunables
const (
	// DefaultDatabasePath is the default path for the document store database
	DefaultDatabasePath = "./collections.db"

	// DataBatchSize is the number of records written per transaction.
	// Tunable via IMPORT_DATA_BATCH_SIZE.
	DataBatchSize = 100

	// CacheBatchSize is the page size used while caching search result keys.
	CacheBatchSize = 10000

	// DefaultOfflineCutoff is the local time EMu goes offline each night.
	DefaultOfflineCutoff = "19:00"

	// DefaultTimezone is the zone EMu record timestamps are expressed in.
	DefaultTimezone = "Australia/Melbourne"
)

// EMu field value contract. These strings must match the source system
// exactly; they gate which records and media qualify for each document type.
const (
	// EmuDateFormat is the layout of AdmDateModified ("dd/MM/yyyy").
	EmuDateFormat = "02/01/2006"

	// EmuDateTimeFormat combines AdmDateModified and AdmTimeModified.
	EmuDateTimeFormat = "02/01/2006 15:04"

	// EmuSearchDateFormat is the layout accepted by AdmDateModified search
	// terms ("MMM dd yyyy").
	EmuSearchDateFormat = "Jan 02 2006"

	ImuSpecimenQueryString   = "Collections Online: Natural Sciences"
	ImuItemQueryString       = "Collections Online: Humanities"
	ImuSpeciesQueryString    = "Collections Online: Species"
	ImuArticleQueryString    = "Collections Online: Articles"
	ImuMultimediaQueryString = "Collections Online: Multimedia"
	ImuVideoQueryString      = "Online Video"
)

// TaxonomyTypeStatuses are the identification type designations that win the
// best-identification tie-break, ahead of the current accepted name.
var TaxonomyTypeStatuses = []string{
	"holotype",
	"lectotype",
	"neotype",
	"paralectotype",
	"paratype",
	"syntype",
	"type",
}
