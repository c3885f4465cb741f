package services

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

const similarityThreshold = 0.7

var (
	nameDelimitersRe = regexp.MustCompile(`[,\s&.]+`)
	nonAlnumSpaceRe  = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
)

// MatchesAnyName reports whether a subscribed search name matches any of the
// candidate name fields from a court record. Candidates are noisy free text
// ("DR.R.ALAGUMANI S.RAMESH KUMARMS,2757,2012,B. DHANASEKARAN..."), so after
// normalization the check runs two strategies: direct substring containment,
// then pairwise token comparison allowing exact, substring, or Levenshtein
// similarity at or above the threshold.
func MatchesAnyName(searchName string, nameFields ...string) bool {
	normalizedSearch := normalizeSearchName(searchName)
	if normalizedSearch == "" {
		return false
	}

	for _, nameField := range nameFields {
		if matchesSingleName(normalizedSearch, nameField) {
			return true
		}
	}
	return false
}

func matchesSingleName(normalizedSearch, targetName string) bool {
	normalizedTarget := normalizeTargetName(targetName)
	if normalizedTarget == "" {
		return false
	}

	// Strategy 1: direct containment.
	if strings.Contains(normalizedTarget, normalizedSearch) {
		return true
	}

	// Strategy 2: token-based matching.
	for _, searchToken := range extractNameTokens(normalizedSearch) {
		for _, targetToken := range extractNameTokens(normalizedTarget) {
			if isTokenMatch(searchToken, targetToken) {
				return true
			}
		}
	}
	return false
}

// normalizeSearchName lower-cases and strips punctuation from the name a user
// subscribed with.
func normalizeSearchName(name string) string {
	name = strings.ToLower(name)
	name = nonAlnumSpaceRe.ReplaceAllString(name, "")
	return strings.TrimSpace(multipleSpacesRe.ReplaceAllString(name, " "))
}

// normalizeTargetName cleans the court-data side more aggressively: on top of
// the search normalization it removes procedural filler words ("learned",
// "advocate", "public prosecutor" and so on) as whole words.
func normalizeTargetName(name string) string {
	normalized := normalizeSearchName(name)
	if normalized == "" {
		return ""
	}
	if re := reference().noiseRe; re != nil {
		normalized = re.ReplaceAllString(normalized, "")
	}
	return strings.TrimSpace(multipleSpacesRe.ReplaceAllString(normalized, " "))
}

// extractNameTokens splits a normalized name on delimiters, dropping short
// tokens and noise words.
func extractNameTokens(name string) []string {
	noise := reference().noiseSet
	var tokens []string
	for _, part := range nameDelimitersRe.Split(strings.ToLower(name), -1) {
		part = strings.TrimSpace(part)
		if len(part) > 2 && !noise[part] {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

func isTokenMatch(token1, token2 string) bool {
	if token1 == token2 {
		return true
	}
	if strings.Contains(token1, token2) || strings.Contains(token2, token1) {
		return true
	}

	distance := levenshtein.ComputeDistance(token1, token2)
	maxLength := len(token1)
	if len(token2) > maxLength {
		maxLength = len(token2)
	}
	similarity := 1.0 - float64(distance)/float64(maxLength)
	return similarity >= similarityThreshold
}
