package factories

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/openmuseum/collections-import/internal/config"
	"github.com/openmuseum/collections-import/internal/emu"
	"github.com/openmuseum/collections-import/internal/entities"
)

// DocumentFactory turns one source record into one aggregate root. ModuleName,
// Columns and Terms together form the query specification an import job runs
// against the source system; MakeDocument is pure apart from media file
// writes performed through the media helper.
type DocumentFactory[T entities.Document] interface {
	ModuleName() string
	Columns() []string
	Terms() emu.Terms
	MakeDocument(ctx context.Context, rec emu.Record) (T, error)
}

// sourceTimezone is the timezone record timestamps are recorded in.
var sourceTimezone = loadSourceTimezone()

func loadSourceTimezone() *time.Location {
	loc, err := time.LoadLocation(config.DefaultTimezone)
	if err != nil {
		return time.FixedZone("AEST", 10*60*60)
	}
	return loc
}

// SetTimezone changes the timezone record timestamps are interpreted in.
// Called once during wiring, before any import runs.
func SetTimezone(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", name, err)
	}
	sourceTimezone = loc
	return nil
}

// parseDateModified combines the separate date and time fields into a UTC
// timestamp. These fields are contractually present on every record; a parse
// failure is fatal to the record's import.
func parseDateModified(rec emu.Record) (time.Time, error) {
	combined := fmt.Sprintf("%s %s", rec.GetEncodedString("AdmDateModified"), rec.GetEncodedString("AdmTimeModified"))
	t, err := time.ParseInLocation(config.EmuDateTimeFormat, combined, sourceTimezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse modified date %q: %w", combined, err)
	}
	return t.UTC(), nil
}

// isHidden reports the publish gating: only an explicit "no" hides a record.
func isHidden(rec emu.Record) bool {
	return strings.EqualFold(rec.GetEncodedString("AdmPublishWebNoPassword"), "no")
}

func isPublished(rec emu.Record) bool {
	return strings.EqualFold(rec.GetEncodedString("AdmPublishWebNoPassword"), "yes")
}

// concatenate joins the non-blank parts with sep.
func concatenate(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// sentenceCase upper-cases the first letter and lower-cases the remainder.
func sentenceCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func anyEquals(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}

// cleanForMultiFacets strips characters that break multi-select facet values.
func cleanForMultiFacets(s string) string {
	return strings.NewReplacer(",", "", ";", "").Replace(s)
}

func appendUnique(ids []string, newIds ...string) []string {
	for _, id := range newIds {
		seen := false
		for _, existing := range ids {
			if existing == id {
				seen = true
				break
			}
		}
		if !seen {
			ids = append(ids, id)
		}
	}
	return ids
}
