package factories

import (
	"strings"

	"github.com/openmuseum/collections-import/internal/emu"
	"github.com/openmuseum/collections-import/internal/entities"
)

var (
	licenceAllRightsReserved = entities.Licence{
		Name:      "All Rights Reserved",
		ShortName: "ARR",
		Open:      false,
	}

	knownLicences = map[string]entities.Licence{
		"cc by": {
			Name:      "Creative Commons Attribution 4.0",
			ShortName: "CC BY",
			Uri:       "https://creativecommons.org/licenses/by/4.0",
			Open:      true,
		},
		"cc by-nc": {
			Name:      "Creative Commons Attribution-NonCommercial 4.0",
			ShortName: "CC BY-NC",
			Uri:       "https://creativecommons.org/licenses/by-nc/4.0",
			Open:      true,
		},
		"cc by-sa": {
			Name:      "Creative Commons Attribution-ShareAlike 4.0",
			ShortName: "CC BY-SA",
			Uri:       "https://creativecommons.org/licenses/by-sa/4.0",
			Open:      true,
		},
		"cc by-nc-sa": {
			Name:      "Creative Commons Attribution-NonCommercial-ShareAlike 4.0",
			ShortName: "CC BY-NC-SA",
			Uri:       "https://creativecommons.org/licenses/by-nc-sa/4.0",
			Open:      true,
		},
		"cc0": {
			Name:      "Creative Commons Zero",
			ShortName: "CC0",
			Uri:       "https://creativecommons.org/publicdomain/zero/1.0",
			Open:      true,
		},
		"public domain": {
			Name:      "Public Domain",
			ShortName: "PD",
			Uri:       "https://creativecommons.org/publicdomain/mark/1.0",
			Open:      true,
		},
	}
)

// MakeLicence resolves the reuse licence recorded on a record. Unknown or
// absent licence text resolves to all rights reserved.
func MakeLicence(rec emu.Record) entities.Licence {
	if rec == nil {
		return licenceAllRightsReserved
	}
	return makeLicenceFromText(rec.GetEncodedString("RigLicence"))
}

func makeLicenceFromText(text string) entities.Licence {
	if licence, ok := knownLicences[strings.ToLower(strings.TrimSpace(text))]; ok {
		return licence
	}
	return licenceAllRightsReserved
}
