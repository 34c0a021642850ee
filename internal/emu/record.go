package emu

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Record is one row of nested field data returned by EMu. Field values are
// scalars, lists of scalars, nested records or lists of nested records,
// depending on the column expression that requested them.
//
// Every accessor tolerates a nil record and a missing or mistyped field by
// returning an empty value. Factories rely on this: absence of an optional
// field must never fail a record.
type Record map[string]any

// GetString returns the named field as a string, or "" if absent.
func (r Record) GetString(name string) string {
	if r == nil {
		return ""
	}
	return scalarString(r[name])
}

// GetEncodedString is the variant of GetString that repairs text EMu stores
// with UTF-8 bytes mis-decoded as Windows-1252. Callers choose per-field
// which variant is correct; newer EMu tables need the encoded form.
func (r Record) GetEncodedString(name string) string {
	return decodeEmuText(r.GetString(name))
}

// GetStrings returns the named field as a list of strings. A scalar value
// degrades to a single-element list; absence degrades to an empty list.
func (r Record) GetStrings(name string) []string {
	if r == nil {
		return []string{}
	}
	switch v := r[name].(type) {
	case nil:
		return []string{}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := scalarString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := scalarString(v); s != "" {
			return []string{s}
		}
		return []string{}
	}
}

// GetEncodedStrings is GetStrings with EMu text decoding applied per element.
func (r Record) GetEncodedStrings(name string) []string {
	values := r.GetStrings(name)
	for i, v := range values {
		values[i] = decodeEmuText(v)
	}
	return values
}

// GetMap returns the named field as a nested record, or nil if absent.
func (r Record) GetMap(name string) Record {
	if r == nil {
		return nil
	}
	switch v := r[name].(type) {
	case Record:
		return v
	case map[string]any:
		return Record(v)
	default:
		return nil
	}
}

// GetMaps returns the named field as a list of nested records. Absent or
// mistyped fields degrade to an empty list; nil elements are dropped.
func (r Record) GetMaps(name string) []Record {
	if r == nil {
		return []Record{}
	}
	switch v := r[name].(type) {
	case []Record:
		return v
	case []any:
		out := make([]Record, 0, len(v))
		for _, item := range v {
			switch m := item.(type) {
			case Record:
				out = append(out, m)
			case map[string]any:
				out = append(out, Record(m))
			}
		}
		return out
	case map[string]any:
		return []Record{Record(v)}
	default:
		return []Record{}
	}
}

// Irn returns the record's irn field as an integer, or 0 when missing.
func (r Record) Irn() int64 {
	irn, _ := strconv.ParseInt(r.GetString("irn"), 10, 64)
	return irn
}

func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		// JSON numbers arrive as float64; irn and similar fields are integral
		return strconv.FormatInt(int64(s), 10)
	case int64:
		return strconv.FormatInt(s, 10)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// decodeEmuText repairs the classic mojibake produced when the source stores
// UTF-8 bytes and re-reads them as Windows-1252. Encoding the runes back to
// Windows-1252 recovers the original bytes; if those bytes form valid UTF-8
// the repaired text is returned, otherwise the input is assumed clean.
func decodeEmuText(s string) string {
	if s == "" || isASCII(s) {
		return s
	}
	b, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return s
	}
	if !utf8.Valid(b) {
		return s
	}
	return string(b)
}

func isASCII(s string) bool {
	return !strings.ContainsFunc(s, func(r rune) bool { return r > 127 })
}
