package services

import (
	"regexp"
	"strings"

	"court_watch_go/models"
)

var nonAlnumRe = regexp.MustCompile(`[^a-zA-Z0-9]`)

// MatchesSubscription evaluates a subscription's criteria against a case.
// Blank criteria are wildcards; every present criterion must hold. The
// matcher is total: it never errors, it only answers yes or no.
func MatchesSubscription(sub *models.UserSubscription, c *models.CourtCase) bool {
	// Case number: flexible partial matching against both the case number
	// and the derived case identity.
	if sub.CaseNo != "" && !isFlexibleCaseNumberMatch(sub.CaseNo, c.CaseNo, c.CaseID) {
		return false
	}

	// Advocate name: fuzzy match against either side's advocates.
	if sub.AdvocateName != "" &&
		!MatchesAnyName(sub.AdvocateName, c.PetitionerAdvocateNames, c.RespondentAdvocateNames) {
		return false
	}

	// Litigant name: fuzzy match against either side's parties.
	if sub.LitigantName != "" &&
		!MatchesAnyName(sub.LitigantName, c.PetitionerNames, c.RespondentNames) {
		return false
	}

	if sub.CaseYear != nil && *sub.CaseYear != c.CaseYear {
		return false
	}

	if sub.CourtLevel != "" && sub.CourtLevel != c.CourtLevel {
		return false
	}

	// Location and classification criteria: case-insensitive exact equality.
	if !equalsIgnoreCaseWhenSet(sub.State, c.State) ||
		!equalsIgnoreCaseWhenSet(sub.District, c.District) ||
		!equalsIgnoreCaseWhenSet(sub.CourtComplex, c.CourtComplex) ||
		!equalsIgnoreCaseWhenSet(sub.CourtName, c.CourtName) ||
		!equalsIgnoreCaseWhenSet(sub.CaseType, c.CaseType) {
		return false
	}

	return true
}

// isFlexibleCaseNumberMatch compares case numbers after stripping everything
// but letters and digits, so a bare "26954" matches both caseNo "26954" and
// an identity like "TN-HC-Madurai-26954-2025". Containment is deliberate:
// "26954" also matches "269540".
func isFlexibleCaseNumberMatch(subscriptionCaseNo, courtCaseNo, courtCaseID string) bool {
	normalizedSub := foldAlnum(subscriptionCaseNo)
	if normalizedSub == "" {
		return false
	}

	if courtCaseNo != "" && strings.Contains(foldAlnum(courtCaseNo), normalizedSub) {
		return true
	}
	if courtCaseID != "" && strings.Contains(foldAlnum(courtCaseID), normalizedSub) {
		return true
	}
	return false
}

func foldAlnum(s string) string {
	return strings.ToLower(nonAlnumRe.ReplaceAllString(s, ""))
}

func equalsIgnoreCaseWhenSet(criterion, value string) bool {
	if strings.TrimSpace(criterion) == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(criterion), strings.TrimSpace(value))
}
