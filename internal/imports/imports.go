package imports

import (
	"context"
	"log"
	"time"

	"github.com/openmuseum/collections-import/internal/config"
	"github.com/openmuseum/collections-import/internal/emu"
	"github.com/openmuseum/collections-import/internal/store"
)

// Job is one import in the nightly run.
type Job interface {
	Name() string
	Order() int
	Run(ctx context.Context) error
}

// Clock supplies the current time; swapped out in cancellation tests.
type Clock func() time.Time

// primaryImportPrefix names the document imports whose completion gates the
// media update import.
const primaryImportPrefix = "emu import"

// Deps carries the collaborators shared by every import job.
type Deps struct {
	Source      emu.ModuleProvider
	Store       *store.Store
	Checkpoints *store.Checkpoints

	Clock          Clock
	DataBatchSize  int
	CacheBatchSize int

	// OfflineCutoff is the local "HH:MM" time the source system goes offline
	// each day. Imports stop cleanly at the first batch boundary past it.
	OfflineCutoff string
}

func (d Deps) withDefaults() Deps {
	if d.Clock == nil {
		d.Clock = time.Now
	}
	if d.DataBatchSize <= 0 {
		d.DataBatchSize = config.DataBatchSize
	}
	if d.CacheBatchSize <= 0 {
		d.CacheBatchSize = config.CacheBatchSize
	}
	if d.OfflineCutoff == "" {
		d.OfflineCutoff = config.DefaultOfflineCutoff
	}
	return d
}

// canceled reports whether the run should stop: either the run context was
// canceled or the source system's nightly offline window has started. Checked
// at batch and page boundaries only.
func (d Deps) canceled(ctx context.Context) bool {
	if ctx.Err() != nil {
		log.Printf("WARN: import run canceled, stopping at batch boundary")
		return true
	}
	if pastOfflineCutoff(d.Clock(), d.OfflineCutoff) {
		log.Printf("WARN: source system about to go offline, stopping imports")
		return true
	}
	return false
}

func pastOfflineCutoff(now time.Time, cutoff string) bool {
	t, err := time.Parse("15:04", cutoff)
	if err != nil {
		return false
	}
	cutoffToday := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	return now.After(cutoffToday)
}
