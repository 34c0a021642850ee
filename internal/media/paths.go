package media

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Derivative files are spread over 50 buckets so no single directory
// accumulates the whole collection.
const pathBuckets = 50

// Format is the target file format of a stored derivative.
type Format string

const (
	FormatJpg Format = "jpg"
	FormatMp3 Format = "mp3"
	FormatPdf Format = "pdf"
)

// baseURL is the URL prefix the website serves derivatives from.
var baseURL = "/media"

// SetBaseURL changes the URL prefix derivative URLs are built with. Called
// once during wiring, before any import runs.
func SetBaseURL(u string) {
	if u = strings.TrimRight(u, "/"); u != "" {
		baseURL = u
	}
}

// DestPath returns the filesystem path a derivative is written to. The scheme
// is deterministic: the website maps URL paths onto it without a lookup table.
func DestPath(root string, irn int64, format Format, derivative string) string {
	return filepath.Join(root, fmt.Sprintf("%d", irn%pathBuckets), fileName(irn, format, derivative))
}

// URLPath returns the URL the website serves the derivative under.
func URLPath(irn int64, format Format, derivative string) string {
	return fmt.Sprintf("%s/%d/%s", baseURL, irn%pathBuckets, fileName(irn, format, derivative))
}

func fileName(irn int64, format Format, derivative string) string {
	if derivative == "" {
		return fmt.Sprintf("%d.%s", irn, format)
	}
	return fmt.Sprintf("%d-%s.%s", irn, derivative, format)
}
