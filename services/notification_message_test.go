package services

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"court_watch_go/models"

	"github.com/stretchr/testify/assert"
)

func messageTestFixtures() (*models.CourtCase, *models.CourtHearing) {
	c := &models.CourtCase{
		CaseID:                  "TN-HC-Madurai-26954-2025",
		CourtComplex:            "Madurai Bench of Madras High Court",
		CaseNo:                  "26954",
		CaseYear:                2025,
		PetitionerNames:         "RAMESH KUMAR",
		RespondentNames:         "STATE OF TAMIL NADU",
		PetitionerAdvocateNames: "B. DHANASEKARAN",
		RespondentAdvocateNames: NotAvailable,
	}
	h := &models.CourtHearing{
		HearingID:       "TN-HC-Madurai-26954-2025-123",
		CaseID:          c.CaseID,
		Stage:           "FOR ORDERS",
		HearingDatetime: time.Date(2025, 9, 15, 10, 30, 0, 0, time.UTC),
	}
	return c, h
}

func TestBuildNotificationMessage(t *testing.T) {
	c, h := messageTestFixtures()

	msg := BuildNotificationMessage(c, h, &models.UserSubscription{AdvocateName: "Dhanasekaran"})

	assert.Equal(t, "26954/2025", msg.CaseRef)
	assert.Equal(t, SubscriptionTypeAdvocate, msg.SubscriptionType)
	assert.Equal(t, "Petitioner: RAMESH KUMAR | Respondent: STATE OF TAMIL NADU", msg.Parties)
	assert.Equal(t, "Pet Advocate: B. DHANASEKARAN", msg.Advocates)
}

func TestBuildNotificationMessageSubscriptionType(t *testing.T) {
	c, h := messageTestFixtures()

	assert.Equal(t, SubscriptionTypeLitigant,
		BuildNotificationMessage(c, h, &models.UserSubscription{LitigantName: "Ramesh"}).SubscriptionType)
	assert.Equal(t, SubscriptionTypeCase,
		BuildNotificationMessage(c, h, &models.UserSubscription{CaseNo: "26954"}).SubscriptionType)
}

func TestFormattedMessageBody(t *testing.T) {
	c, h := messageTestFixtures()

	body := BuildNotificationMessage(c, h, &models.UserSubscription{CaseNo: "26954"}).Formatted()

	assert.Contains(t, body, "Court Hearing Notification (CASE)")
	assert.Contains(t, body, "Case: 26954/2025")
	assert.Contains(t, body, "Date: Monday, 15 September 2025")
	assert.Contains(t, body, "Time: 10:30 AM")
	assert.Contains(t, body, "automated notification from CourtWatch")
}

func TestSMSTextAbbreviatesLongFields(t *testing.T) {
	c, h := messageTestFixtures()
	h.Stage = "FOR FINAL DISPOSAL AFTER NOTICE"

	sms := BuildNotificationMessage(c, h, &models.UserSubscription{CaseNo: "26954"}).SMSText()

	assert.Contains(t, sms, "Hearing: 26954/2025 on 2025-09-15 at 10:30 AM")
	assert.Contains(t, sms, "Madurai Bench of Madra...")
	assert.Contains(t, sms, "FOR FINAL DISPOSA...")
}

func TestFormatPartiesTruncation(t *testing.T) {
	long := strings.Repeat("A", 80)

	formatted := formatParties(long, "")

	assert.Equal(t, "Petitioner: "+strings.Repeat("A", 47)+"...", formatted)
}

func TestAbbreviateKeepsMultibyteRunesIntact(t *testing.T) {
	// Stage and court text can arrive in Tamil; byte slicing would split a rune.
	stage := strings.Repeat("த", 30)

	abbreviated := abbreviate(stage, 20)

	assert.True(t, utf8.ValidString(abbreviated))
	assert.Equal(t, strings.Repeat("த", 17)+"...", abbreviated)
}

func TestFormatPartiesSentinels(t *testing.T) {
	assert.Equal(t, "Parties information not available", formatParties(NotAvailable, ""))
	assert.Equal(t, "Advocate information not available", formatAdvocates("", "  "))
	assert.Equal(t, "Respondent: STATE", formatParties(NotAvailable, "STATE"))
}
