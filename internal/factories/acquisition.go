package factories

import (
	"fmt"
	"strings"

	"github.com/openmuseum/collections-import/internal/emu"
)

// Source roles that must never appear in public acquisition text.
var excludedSourceRoles = []string{"confidential", "contact", "vendor"}

// makeAcquisitionInformation composes the public acquisition sentence and the
// acknowledgement line from the accession sub-record. Unpublished accession
// lots contribute nothing.
func makeAcquisitionInformation(rec emu.Record) (information, acknowledgement string) {
	accession := rec.GetMap("accession")
	if accession == nil || !isPublished(accession) {
		return "", ""
	}

	if method := accession.GetEncodedString("AcqAcquisitionMethod"); strings.TrimSpace(method) != "" {
		sources := make([]string, 0)
		for _, source := range accession.GetMaps("source") {
			if source == nil || !sourceRoleAllowed(source.GetEncodedString("AcqSourceRole_tab")) {
				continue
			}
			if name := MakePartiesName(source.GetMap("name")); name != "" {
				sources = append(sources, name)
			}
		}

		if len(sources) > 0 {
			if received := accession.GetEncodedString("AcqDateReceived"); strings.TrimSpace(received) != "" {
				sources = append(sources, received)
			} else if ownership := accession.GetEncodedString("AcqDateOwnership"); strings.TrimSpace(ownership) != "" {
				sources = append(sources, ownership)
			}
			information = fmt.Sprintf("%s from %s", method, strings.Join(sources, ", "))
		} else {
			information = method
		}
	}

	if credit := accession.GetEncodedString("AcqCreditLine"); strings.TrimSpace(credit) != "" {
		acknowledgement = credit
	} else if rights := rec.GetEncodedStrings("RigText0"); len(rights) > 0 && strings.TrimSpace(rights[0]) != "" {
		acknowledgement = rights[0]
	}

	return information, acknowledgement
}

func sourceRoleAllowed(role string) bool {
	if strings.TrimSpace(role) == "" {
		return true
	}
	for _, excluded := range excludedSourceRoles {
		if containsFold(role, excluded) {
			return false
		}
	}
	return true
}
