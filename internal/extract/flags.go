// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"github.com/Informasjonsforvaltning/fdk-parser-service/pkg/types"
)

// Controlled-vocabulary codes behind the derived flags.
const (
	AccessRightPublic  = "PUBLIC"
	ProvenanceNational = "NASJONAL"
	DataThemeTransport = "TRAN"
)

const losTransportPrefix = "psi.norge.no/los/tema/mobilitet-og-transport"

// openLicenses holds known open licence IRIs, normalized by normalizeIRI.
var openLicenses = map[string]bool{
	"data.norge.no/nlod/no/1.0":                                     true,
	"data.norge.no/nlod/no/2.0":                                     true,
	"data.norge.no/nlod/en/2.0":                                     true,
	"creativecommons.org/publicdomain/zero/1.0":                     true,
	"creativecommons.org/licenses/by/4.0":                           true,
	"creativecommons.org/licenses/by/4.0/deed.no":                   true,
	"publications.europa.eu/resource/authority/licence/cc0":         true,
	"publications.europa.eu/resource/authority/licence/cc_by_4_0":   true,
	"publications.europa.eu/resource/authority/licence/nlod_2_0":    true,
	"publications.europa.eu/resource/authority/licence/cc_byl_4_0":  true,
	"publications.europa.eu/resource/authority/licence/odc_by":      true,
	"publications.europa.eu/resource/authority/licence/odc_pddl":    true,
	"publications.europa.eu/resource/authority/licence/cc_bysa_4_0": true,
}

func normalizeIRI(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")
	return strings.TrimRight(s, "/")
}

// codeOf returns the code of a reference, falling back to the last path
// segment of its IRI.
func codeOf(ref types.Reference) string {
	if ref.Code != nil && *ref.Code != "" {
		return *ref.Code
	}
	if ref.URI == nil {
		return ""
	}
	u := strings.TrimRight(*ref.URI, "/")
	return u[strings.LastIndexAny(u, "/#")+1:]
}

// HasCode reports whether ref carries code, matching case-insensitively.
// A nil ref yields nil.
func HasCode(ref *types.Reference, code string) *bool {
	if ref == nil {
		return nil
	}
	return ptr(strings.EqualFold(codeOf(*ref), code))
}

// IsOpenLicense reports whether uri names a known open licence.
func IsOpenLicense(uri string) bool {
	return openLicenses[normalizeIRI(uri)]
}

// AnyOpenLicense reports whether one of refs is an open licence. It returns
// nil when refs is empty.
func AnyOpenLicense(refs []types.Reference) *bool {
	if len(refs) == 0 {
		return nil
	}
	for _, r := range refs {
		if r.URI != nil && IsOpenLicense(*r.URI) {
			return ptr(true)
		}
	}
	return ptr(false)
}

// IsTransportTheme reports whether a theme reference belongs to the
// transport domain, either as the EU data theme or a LOS transport term.
func IsTransportTheme(ref types.Reference) bool {
	if ref.URI != nil {
		u := normalizeIRI(*ref.URI)
		if strings.HasPrefix(u, losTransportPrefix) {
			return true
		}
		if strings.Contains(u, "/data-theme/") {
			return strings.EqualFold(codeOf(ref), DataThemeTransport)
		}
	}
	return ref.Code != nil && strings.EqualFold(*ref.Code, DataThemeTransport)
}
