package services

import "strings"

// CaseTypeUnknown is returned for unmapped or empty raw case type codes.
const CaseTypeUnknown = "Unknown"

// NormalizeCaseType maps a raw source case-type code (e.g. "WP(MD)") to its
// canonical category label. The mapping table lives in the reference data
// file and can be extended without a code change.
func NormalizeCaseType(rawCaseType string) string {
	rawCaseType = strings.TrimSpace(rawCaseType)
	if rawCaseType == "" {
		return CaseTypeUnknown
	}
	if normalized, ok := reference().CaseTypes[rawCaseType]; ok {
		return normalized
	}
	return CaseTypeUnknown
}
