package services

import (
	"testing"

	"court_watch_go/models"

	"github.com/stretchr/testify/assert"
)

func matcherTestCase() *models.CourtCase {
	return &models.CourtCase{
		CaseID:                  "TN-HC-Madurai-26954-2025",
		CourtLevel:              models.CourtLevelHigh,
		State:                   "Tamil Nadu",
		District:                "Madurai",
		CourtComplex:            "Madurai Bench of Madras High Court",
		CaseType:                "Writ Petitions",
		CaseNo:                  "26954",
		CaseYear:                2025,
		PetitionerNames:         "RAMESH KUMAR",
		RespondentNames:         "STATE OF TAMIL NADU",
		PetitionerAdvocateNames: "B. DHANASEKARAN",
		RespondentAdvocateNames: NotAvailable,
	}
}

func TestMatchesSubscriptionCaseNumber(t *testing.T) {
	c := matcherTestCase()

	assert.True(t, MatchesSubscription(&models.UserSubscription{CaseNo: "26954"}, c))
	// Formatted references resolve through the case identity.
	assert.True(t, MatchesSubscription(&models.UserSubscription{CaseNo: "TN-HC-Madurai-26954-2025"}, c))
	assert.True(t, MatchesSubscription(&models.UserSubscription{CaseNo: "26954/2025"}, c))
	assert.False(t, MatchesSubscription(&models.UserSubscription{CaseNo: "99999"}, c))
}

func TestMatchesSubscriptionCaseNumberContainment(t *testing.T) {
	c := matcherTestCase()
	c.CaseNo = "269540"
	c.CaseID = "TN-HC-Madurai-269540-2025"

	// Containment is intentional: a shorter number matches a longer one.
	assert.True(t, MatchesSubscription(&models.UserSubscription{CaseNo: "26954"}, c))
}

func TestMatchesSubscriptionAdvocateName(t *testing.T) {
	c := matcherTestCase()

	assert.True(t, MatchesSubscription(&models.UserSubscription{AdvocateName: "Dhanasekaran"}, c))
	assert.False(t, MatchesSubscription(&models.UserSubscription{AdvocateName: "Murugan"}, c))
}

func TestMatchesSubscriptionLitigantName(t *testing.T) {
	c := matcherTestCase()

	assert.True(t, MatchesSubscription(&models.UserSubscription{LitigantName: "Ramesh Kumar"}, c))
	assert.False(t, MatchesSubscription(&models.UserSubscription{LitigantName: "Palanisamy"}, c))
}

func TestMatchesSubscriptionCriteriaAreANDCombined(t *testing.T) {
	c := matcherTestCase()
	year := 2025
	wrongYear := 2024

	assert.True(t, MatchesSubscription(&models.UserSubscription{
		AdvocateName: "Dhanasekaran",
		CaseYear:     &year,
		CourtLevel:   models.CourtLevelHigh,
		District:     "madurai",
	}, c))

	// One failing criterion rejects the whole subscription.
	assert.False(t, MatchesSubscription(&models.UserSubscription{
		AdvocateName: "Dhanasekaran",
		CaseYear:     &wrongYear,
	}, c))
	assert.False(t, MatchesSubscription(&models.UserSubscription{
		AdvocateName: "Dhanasekaran",
		CourtLevel:   models.CourtLevelDistrict,
	}, c))
	assert.False(t, MatchesSubscription(&models.UserSubscription{
		AdvocateName: "Dhanasekaran",
		District:     "Chennai",
	}, c))
}

func TestMatchesSubscriptionBlankCriteriaAreWildcards(t *testing.T) {
	c := matcherTestCase()

	assert.True(t, MatchesSubscription(&models.UserSubscription{}, c))
}

func TestMatchesSubscriptionLocationIsCaseInsensitive(t *testing.T) {
	c := matcherTestCase()

	assert.True(t, MatchesSubscription(&models.UserSubscription{State: "TAMIL NADU", CaseType: "writ petitions"}, c))
	assert.False(t, MatchesSubscription(&models.UserSubscription{State: "Kerala"}, c))
}
