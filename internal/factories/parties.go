package factories

import (
	"strings"

	"github.com/openmuseum/collections-import/internal/emu"
)

// MakePartiesName resolves the display name for a party record. The shape of
// the name depends on the party type recorded at the source.
func MakePartiesName(rec emu.Record) string {
	if rec == nil {
		return ""
	}

	switch strings.ToLower(rec.GetEncodedString("NamPartyType")) {
	case "collaboration":
		return rec.GetEncodedString("ColCollaborationName")
	case "organisation":
		return concatenate(" - ",
			rec.GetEncodedString("NamOrganisation"),
			rec.GetEncodedString("NamBranch"),
			rec.GetEncodedString("NamDepartment"))
	case "position":
		return concatenate(" - ",
			rec.GetEncodedString("NamFullName"),
			rec.GetEncodedString("NamOrganisation"))
	default:
		if name := rec.GetEncodedString("NamFullName"); name != "" {
			return name
		}
		return rec.GetEncodedString("NamOrganisation")
	}
}

// MakePartiesNames resolves and joins names for a list of party records.
func MakePartiesNames(recs []emu.Record, sep string) string {
	names := make([]string, 0, len(recs))
	for _, rec := range recs {
		if rec == nil {
			continue
		}
		if name := MakePartiesName(rec); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, sep)
}
