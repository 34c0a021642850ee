package entities

import (
	"time"
)

// Document is implemented by every imported aggregate root. Ids are
// deterministic ("{type}/{irn}") and stable across re-imports.
type Document interface {
	// DocumentID returns the store id, e.g. "specimens/12345".
	DocumentID() string

	// ModifiedAt is the source-side modification timestamp. It is the
	// authoritative staleness marker for incremental imports.
	ModifiedAt() time.Time

	// Hidden reports whether the record is unpublished. Hidden documents are
	// still imported and stored but excluded from public relationship
	// aggregation.
	Hidden() bool

	// MediaIrns lists every media irn embedded in the document, including
	// media nested inside author sub-objects. The store indexes these for
	// the media-update import.
	MediaIrns() []int64

	// Merge carries locally-owned fields (comments, moderation state,
	// creation time) from an existing stored document onto this freshly
	// transformed one. Import-owned fields are left untouched so the save
	// overwrites them.
	Merge(existing Document)
}

// Comment is visitor-contributed content attached to a document by the
// website. Comments are locally owned: imports must never overwrite them.
type Comment struct {
	Author  string    `json:"author"`
	Content string    `json:"content"`
	Created time.Time `json:"created"`
}

// QualifierRank states which part of a scientific name an identification
// qualifier applies to, governing how the name is displayed.
type QualifierRank string

const (
	QualifierRankNone    QualifierRank = ""
	QualifierRankGenus   QualifierRank = "Genus"
	QualifierRankSpecies QualifierRank = "Species"
)
