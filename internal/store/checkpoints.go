package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/openmuseum/collections-import/internal/entities"
)

// Checkpoints persists per-job import progress.
type Checkpoints struct {
	db *gorm.DB
}

func NewCheckpoints(db *gorm.DB) *Checkpoints {
	return &Checkpoints{db: db}
}

// Get loads the checkpoint for an import type, creating a fresh one on the
// first ever run.
func (c *Checkpoints) Get(importType string) (*entities.ImportStatus, error) {
	var status entities.ImportStatus
	err := c.db.Where(entities.ImportStatus{ImportType: importType}).FirstOrCreate(&status).Error
	if err != nil {
		return nil, fmt.Errorf("load checkpoint %s: %w", importType, err)
	}
	return &status, nil
}

// Save persists the checkpoint outside a batch transaction (used after the
// caching phase).
func (c *Checkpoints) Save(status *entities.ImportStatus) error {
	return c.SaveTx(c.db, status)
}

// SaveTx persists the checkpoint within the caller's transaction so offset
// advances commit atomically with the batch's document writes.
func (c *Checkpoints) SaveTx(tx *gorm.DB, status *entities.ImportStatus) error {
	if err := tx.Save(status).Error; err != nil {
		return fmt.Errorf("save checkpoint %s: %w", status.ImportType, err)
	}
	return nil
}

// Finish marks the run complete: records the completion time as the next
// cycle's incremental watermark and clears the cached key set.
func (c *Checkpoints) Finish(status *entities.ImportStatus, completedAt time.Time) error {
	status.IsFinished = true
	status.PreviousDateRun = &completedAt
	status.CachedResult = nil
	status.CachedResultDate = nil
	status.CurrentOffset = 0
	return c.Save(status)
}

// List returns every checkpoint, oldest import type first.
func (c *Checkpoints) List() ([]entities.ImportStatus, error) {
	var statuses []entities.ImportStatus
	if err := c.db.Order("import_type").Find(&statuses).Error; err != nil {
		return nil, fmt.Errorf("list checkpoints: %w", err)
	}
	return statuses, nil
}

// EarliestPreviousRun returns the oldest completion time across all import
// types sharing the prefix. Returns nil when any matching checkpoint has
// never completed a full cycle, or none match.
func (c *Checkpoints) EarliestPreviousRun(prefix string) (*time.Time, error) {
	var statuses []entities.ImportStatus
	err := c.db.Where("import_type LIKE ?", prefix+"%").Find(&statuses).Error
	if err != nil {
		return nil, fmt.Errorf("load checkpoints with prefix %s: %w", prefix, err)
	}
	if len(statuses) == 0 {
		return nil, nil
	}

	var earliest *time.Time
	for _, status := range statuses {
		if status.PreviousDateRun == nil {
			return nil, nil
		}
		if earliest == nil || status.PreviousDateRun.Before(*earliest) {
			run := *status.PreviousDateRun
			earliest = &run
		}
	}
	return earliest, nil
}

// BeginCycle ensures a checkpoint row exists for every import type and, when
// every one of them finished the previous cycle, resets them all so a new
// cycle starts. Mid-cycle (some unfinished) the finished flags stay put and
// unfinished jobs resume.
func (c *Checkpoints) BeginCycle(importTypes []string) error {
	statuses := make([]*entities.ImportStatus, 0, len(importTypes))
	allFinished := true
	for _, importType := range importTypes {
		status, err := c.Get(importType)
		if err != nil {
			return err
		}
		if !status.IsFinished {
			allFinished = false
		}
		statuses = append(statuses, status)
	}

	if !allFinished {
		return nil
	}
	for _, status := range statuses {
		status.IsFinished = false
		if err := c.Save(status); err != nil {
			return err
		}
	}
	return nil
}
