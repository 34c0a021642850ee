package imports

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/openmuseum/collections-import/internal/config"
	"github.com/openmuseum/collections-import/internal/emu"
	"github.com/openmuseum/collections-import/internal/entities"
	"github.com/openmuseum/collections-import/internal/factories"
	"github.com/openmuseum/collections-import/internal/store"
)

// mediaUpdateColumns is the projection re-fetched for changed multimedia
// records. It mirrors the media sub-projection the document imports request.
var mediaUpdateColumns = []string{
	"irn",
	"MulTitle",
	"MulIdentifier",
	"MulMimeType",
	"MdaDataSets_tab",
	"metadata=[MdaElement_tab,MdaQualifier_tab,MdaFreeText_tab]",
	"DetAlternateText",
	"RigCreator_tab",
	"RigSource_tab",
	"RigAcknowledgementCredit",
	"RigCopyrightStatement",
	"RigCopyrightStatus",
	"RigLicence",
	"RigLicenceDetails",
	"ChaRepository_tab",
	"AdmPublishWebNoPassword",
	"AdmDateModified",
	"AdmTimeModified",
}

// MediaUpdateImport re-fetches multimedia records modified since the last
// full import cycle and replaces the embedded media in every document
// referencing them. It never creates documents; one changed asset fans out to
// every parent holding it.
type MediaUpdateImport struct {
	media *factories.MediaFactory
	deps  Deps
}

func NewMediaUpdateImport(media *factories.MediaFactory, deps Deps) *MediaUpdateImport {
	return &MediaUpdateImport{media: media, deps: deps.withDefaults()}
}

func (i *MediaUpdateImport) Name() string { return "emu media update" }

// Order places the media update after every document import.
func (i *MediaUpdateImport) Order() int { return 10 }

func (i *MediaUpdateImport) Run(ctx context.Context) error {
	// Gate on the earliest completion across the document imports; until all
	// of them have finished a full cycle there is nothing to refresh.
	previousRun, err := i.deps.Checkpoints.EarliestPreviousRun(primaryImportPrefix)
	if err != nil {
		return err
	}
	if previousRun == nil {
		log.Printf("%s skipped, document imports have not completed a full cycle", i.Name())
		return nil
	}

	status, err := i.deps.Checkpoints.Get(i.Name())
	if err != nil {
		return err
	}
	if status.IsFinished {
		log.Printf("%s already finished this cycle, skipping", i.Name())
		return nil
	}

	log.Printf("Starting %s", i.Name())
	module := i.deps.Source.Module("emultimedia")

	if len(status.CachedResult) == 0 {
		var terms emu.Terms
		terms.Add("MdaDataSets_tab", config.ImuMultimediaQueryString)
		terms.AddWithOp("AdmDateModified", previousRun.Format(config.EmuSearchDateFormat), ">=")

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

	updated := 0
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
		results, err := module.Fetch(ctx, "start", 0, -1, mediaUpdateColumns)
		if err != nil {
			return fmt.Errorf("%s: %w", i.Name(), err)
		}

		// Remake the media entities before opening the transaction; the
		// derivative file writes are not transactional anyway.
		medias := make([]*entities.Media, 0, len(results.Rows))
		for _, row := range results.Rows {
			m, err := i.media.Make(ctx, row)
			if err != nil {
				return fmt.Errorf("%s: %w", i.Name(), err)
			}
			medias = append(medias, m)
		}

		advance := len(results.Rows)
		if advance == 0 {
			advance = len(batch)
		}

		err = i.deps.Store.InTransaction(func(tx *gorm.DB) error {
			for _, m := range medias {
				if m == nil {
					continue
				}
				count, err := i.updateReferencingDocuments(tx, *m)
				if err != nil {
					return err
				}
				updated += count
			}
			status.CurrentOffset += advance
			return i.deps.Checkpoints.SaveTx(tx, status)
		})
		if err != nil {
			return fmt.Errorf("%s: %w", i.Name(), err)
		}

		log.Printf("%s progress... %d/%d", i.Name(), status.CurrentOffset, len(status.CachedResult))
	}

	if err := i.deps.Checkpoints.Finish(status, i.deps.Clock()); err != nil {
		return err
	}
	log.Printf("%s complete, updated %d associated documents", i.Name(), updated)
	return nil
}

// updateReferencingDocuments pages through every document embedding the media
// and swaps the entity in place, including author portraits.
func (i *MediaUpdateImport) updateReferencingDocuments(tx *gorm.DB, m entities.Media) (int, error) {
	updated := 0
	for skip := 0; ; skip += i.deps.DataBatchSize {
		ids, err := store.DocumentIDsReferencingMedia(tx, m.Irn, skip, i.deps.DataBatchSize)
		if err != nil {
			return updated, err
		}
		if len(ids) == 0 {
			return updated, nil
		}

		for _, id := range ids {
			doc, err := store.LoadAnyDocument(tx, id)
			if err != nil {
				return updated, err
			}
			if doc == nil {
				continue
			}
			if replaceMedia(doc, m) {
				if err := store.SaveDocument(tx, doc); err != nil {
					return updated, err
				}
				updated++
			}
		}
	}
}

// replaceMedia swaps the media matched by irn wherever the document embeds
// it. The switch is exhaustive over the document types the store holds.
func replaceMedia(doc entities.Document, m entities.Media) bool {
	switch d := doc.(type) {
	case *entities.Specimen:
		return replaceInMediaList(d.Media, m)
	case *entities.Species:
		replaced := replaceInMediaList(d.Media, m)
		return replaceAuthorMedia(d.Authors, m) || replaced
	case *entities.Item:
		return replaceInMediaList(d.Media, m)
	case *entities.Article:
		replaced := replaceInMediaList(d.Media, m)
		return replaceAuthorMedia(d.Authors, m) || replaced
	default:
		return false
	}
}

func replaceInMediaList(medias []entities.Media, m entities.Media) bool {
	replaced := false
	for idx := range medias {
		if medias[idx].Irn == m.Irn {
			medias[idx] = m
			replaced = true
		}
	}
	return replaced
}

func replaceAuthorMedia(authors []entities.Author, m entities.Media) bool {
	replaced := false
	for idx := range authors {
		if authors[idx].Media != nil && authors[idx].Media.Irn == m.Irn {
			portrait := m
			authors[idx].Media = &portrait
			replaced = true
		}
	}
	return replaced
}
