package store

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openmuseum/collections-import/internal/entities"
)

// DocumentPtr constrains a pointer to a document entity, letting generic
// helpers allocate and load concrete documents.
type DocumentPtr[T any] interface {
	*T
	entities.Document
}

// Store wraps the document database. Documents are rows keyed by their
// "{type}/{irn}" id with nested objects serialized to JSON columns.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the sqlite database at path and migrates
// the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		return nil, err
	}

	log.Printf("Database initialized at %s", path)
	return store, nil
}

func (s *Store) migrate() error {
	err := s.db.AutoMigrate(
		&entities.Specimen{},
		&entities.Species{},
		&entities.Item{},
		&entities.Article{},
		&entities.ImportStatus{},
		&entities.MediaRef{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// DB exposes the underlying handle for repositories built on the store.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// InTransaction runs fn inside one transaction. Batch commits use this so a
// checkpoint advance and its document writes land atomically.
func (s *Store) InTransaction(fn func(tx *gorm.DB) error) error {
	return s.db.Transaction(fn)
}

// FindDocument loads one document by id. Returns nil without error when the
// document does not exist.
func FindDocument[T any, P DocumentPtr[T]](db *gorm.DB, id string) (P, error) {
	doc := P(new(T))
	err := db.First(doc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load document %s: %w", id, err)
	}
	return doc, nil
}

// SaveDocument upserts a document and rewrites its media reference index rows
// within the caller's transaction.
func SaveDocument(tx *gorm.DB, doc entities.Document) error {
	if err := tx.Save(doc).Error; err != nil {
		return fmt.Errorf("save document %s: %w", doc.DocumentID(), err)
	}

	if err := tx.Where("document_id = ?", doc.DocumentID()).Delete(&entities.MediaRef{}).Error; err != nil {
		return fmt.Errorf("clear media refs for %s: %w", doc.DocumentID(), err)
	}

	irns := doc.MediaIrns()
	if len(irns) == 0 {
		return nil
	}
	refs := make([]entities.MediaRef, 0, len(irns))
	seen := make(map[int64]bool, len(irns))
	for _, irn := range irns {
		if irn == 0 || seen[irn] {
			continue
		}
		seen[irn] = true
		refs = append(refs, entities.MediaRef{DocumentID: doc.DocumentID(), MediaIrn: irn})
	}
	if len(refs) == 0 {
		return nil
	}
	if err := tx.Create(&refs).Error; err != nil {
		return fmt.Errorf("index media refs for %s: %w", doc.DocumentID(), err)
	}
	return nil
}

// DocumentIDsReferencingMedia pages through the ids of documents embedding
// the given media irn, ordered by id for stable pagination.
func DocumentIDsReferencingMedia(db *gorm.DB, irn int64, skip, take int) ([]string, error) {
	var ids []string
	err := db.Model(&entities.MediaRef{}).
		Where("media_irn = ?", irn).
		Order("document_id").
		Offset(skip).
		Limit(take).
		Pluck("document_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("find documents referencing media %d: %w", irn, err)
	}
	return ids, nil
}

// LoadAnyDocument loads a document of any type by its prefixed id. Returns
// nil without error when the id's type is unknown or the row is missing.
func LoadAnyDocument(db *gorm.DB, id string) (entities.Document, error) {
	prefix, _, ok := strings.Cut(id, "/")
	if !ok {
		return nil, fmt.Errorf("malformed document id %q", id)
	}

	switch prefix {
	case "specimens":
		doc, err := FindDocument[entities.Specimen](db, id)
		if doc == nil {
			return nil, err
		}
		return doc, err
	case "species":
		doc, err := FindDocument[entities.Species](db, id)
		if doc == nil {
			return nil, err
		}
		return doc, err
	case "items":
		doc, err := FindDocument[entities.Item](db, id)
		if doc == nil {
			return nil, err
		}
		return doc, err
	case "articles":
		doc, err := FindDocument[entities.Article](db, id)
		if doc == nil {
			return nil, err
		}
		return doc, err
	default:
		return nil, nil
	}
}
