package entities

import (
	"time"
)

// ImportStatus is the persisted checkpoint for one import job. One row per
// import type; the job updates it inside the same transaction as the batch it
// covers, so a crash can never lose committed progress.
type ImportStatus struct {
	ID         uint   `gorm:"primaryKey"`
	ImportType string `gorm:"uniqueIndex;size:128"`

	// CurrentOffset is the index into CachedResult of the next unimported irn.
	CurrentOffset int

	// CachedResult is the frozen key set for the run in progress. Refetched
	// only when empty, so a resumed run works the exact snapshot the original
	// run started from.
	CachedResult     []int64 `gorm:"serializer:json"`
	CachedResultDate *time.Time

	IsFinished      bool
	PreviousDateRun *time.Time

	UpdatedAt time.Time
}

func (ImportStatus) TableName() string { return "import_statuses" }

// Remaining reports how many cached keys are still to import.
func (s *ImportStatus) Remaining() int {
	if s.CurrentOffset >= len(s.CachedResult) {
		return 0
	}
	return len(s.CachedResult) - s.CurrentOffset
}
