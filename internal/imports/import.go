package imports

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/openmuseum/collections-import/internal/config"
	"github.com/openmuseum/collections-import/internal/factories"
	"github.com/openmuseum/collections-import/internal/store"
)

// EmuImport pulls one document type from the source system into the store.
// Progress is checkpointed per committed batch, so a crashed or canceled run
// resumes at the last committed offset with the key set it started from.
type EmuImport[T any, P store.DocumentPtr[T]] struct {
	docType string
	order   int
	factory factories.DocumentFactory[P]
	deps    Deps
}

// NewEmuImport creates the import job for one document type. docType is the
// plural document name ("specimens") and becomes part of the checkpoint key.
func NewEmuImport[T any, P store.DocumentPtr[T]](docType string, order int, factory factories.DocumentFactory[P], deps Deps) *EmuImport[T, P] {
	return &EmuImport[T, P]{
		docType: docType,
		order:   order,
		factory: factory,
		deps:    deps.withDefaults(),
	}
}

func (i *EmuImport[T, P]) Name() string {
	return fmt.Sprintf("%s %s", primaryImportPrefix, i.docType)
}

func (i *EmuImport[T, P]) Order() int { return i.order }

func (i *EmuImport[T, P]) Run(ctx context.Context) error {
	status, err := i.deps.Checkpoints.Get(i.Name())
	if err != nil {
		return err
	}
	if status.IsFinished {
		log.Printf("%s already finished this cycle, skipping", i.Name())
		return nil
	}

	log.Printf("Starting %s", i.Name())
	module := i.deps.Source.Module(i.factory.ModuleName())

	// Caching phase: freeze the key set for this run. A resumed run keeps the
	// snapshot the original run started from.
	if len(status.CachedResult) == 0 {
		terms := i.factory.Terms()
		if status.PreviousDateRun != nil {
			terms.AddWithOp("AdmDateModified", status.PreviousDateRun.Format(config.EmuSearchDateFormat), ">=")
		}

		hits, err := module.FindTerms(ctx, terms)
		if err != nil {
			return fmt.Errorf("%s: %w", i.Name(), err)
		}
		log.Printf("%s caching %d search results", i.Name(), hits)

		var keys []int64
		for {
			if i.deps.canceled(ctx) {
				return nil
			}

			results, err := module.Fetch(ctx, "start", len(keys), i.deps.CacheBatchSize, []string{"irn"})
			if err != nil {
				return fmt.Errorf("%s: %w", i.Name(), err)
			}
			if len(results.Rows) == 0 {
				break
			}
			for _, row := range results.Rows {
				keys = append(keys, row.Irn())
			}
			log.Printf("%s cache progress... %d/%d", i.Name(), len(keys), hits)
		}

		now := i.deps.Clock()
		status.CachedResult = keys
		status.CachedResultDate = &now
		status.CurrentOffset = 0
		if err := i.deps.Checkpoints.Save(status); err != nil {
			return err
		}
	} else {
		log.Printf("%s resuming with %d cached keys at offset %d", i.Name(), len(status.CachedResult), status.CurrentOffset)
	}

	// Importing phase: one transaction per batch covering document upserts
	// and the checkpoint advance.
	for {
		if i.deps.canceled(ctx) {
			return nil
		}

		batch := sliceBatch(status.CachedResult, status.CurrentOffset, i.deps.DataBatchSize)
		if len(batch) == 0 {
			break
		}

		if _, err := module.FindKeys(ctx, batch); err != nil {
			return fmt.Errorf("%s: %w", i.Name(), err)
		}
		results, err := module.Fetch(ctx, "start", 0, -1, i.factory.Columns())
		if err != nil {
			return fmt.Errorf("%s: %w", i.Name(), err)
		}

		docs := make([]P, 0, len(results.Rows))
		for _, row := range results.Rows {
			doc, err := i.factory.MakeDocument(ctx, row)
			if err != nil {
				return fmt.Errorf("%s: %w", i.Name(), err)
			}
			docs = append(docs, doc)
		}

		// Advance by rows actually returned so a short page cannot skip
		// unprocessed keys. An empty page still advances past the batch or
		// the run would stall on keys the source no longer returns.
		advance := len(results.Rows)
		if advance == 0 {
			advance = len(batch)
		}

		err = i.deps.Store.InTransaction(func(tx *gorm.DB) error {
			for _, doc := range docs {
				existing, err := store.FindDocument[T, P](tx, doc.DocumentID())
				if err != nil {
					return err
				}
				if existing != nil {
					doc.Merge(existing)
				}
				if err := store.SaveDocument(tx, doc); err != nil {
					return err
				}
			}
			status.CurrentOffset += advance
			return i.deps.Checkpoints.SaveTx(tx, status)
		})
		if err != nil {
			return fmt.Errorf("%s: %w", i.Name(), err)
		}

		log.Printf("%s import progress... %d/%d", i.Name(), status.CurrentOffset, len(status.CachedResult))
	}

	imported := len(status.CachedResult)
	if err := i.deps.Checkpoints.Finish(status, i.deps.Clock()); err != nil {
		return err
	}
	log.Printf("%s complete, %d documents imported", i.Name(), imported)
	return nil
}

func sliceBatch(keys []int64, offset, size int) []int64 {
	if offset >= len(keys) {
		return nil
	}
	end := offset + size
	if end > len(keys) {
		end = len(keys)
	}
	return keys[offset:end]
}
