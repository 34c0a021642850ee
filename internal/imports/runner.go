package imports

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/openmuseum/collections-import/internal/store"
)

// Runner executes import jobs sequentially in a fixed order. Jobs never run
// concurrently; they contend on the same checkpoints and media files.
type Runner struct {
	jobs        []Job
	checkpoints *store.Checkpoints
}

func NewRunner(checkpoints *store.Checkpoints, jobs ...Job) *Runner {
	sorted := make([]Job, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Order() < sorted[b].Order()
	})
	return &Runner{jobs: sorted, checkpoints: checkpoints}
}

// Run executes all jobs once. When the previous cycle completed in full a new
// cycle is started; otherwise unfinished jobs resume from their checkpoints.
// The first job error aborts the run, leaving checkpoints at the last
// committed batch for the next scheduled pass.
func (r *Runner) Run(ctx context.Context) error {
	names := make([]string, 0, len(r.jobs))
	for _, job := range r.jobs {
		names = append(names, job.Name())
	}
	if err := r.checkpoints.BeginCycle(names); err != nil {
		return err
	}

	started := time.Now()
	log.Printf("Import run started with %d jobs", len(r.jobs))

	for _, job := range r.jobs {
		if ctx.Err() != nil {
			log.Printf("Import run canceled before %s", job.Name())
			return nil
		}
		if err := job.Run(ctx); err != nil {
			return fmt.Errorf("import job %s: %w", job.Name(), err)
		}
	}

	log.Printf("Import run finished in %s", time.Since(started).Round(time.Second))
	return nil
}
