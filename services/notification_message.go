package services

import (
	"fmt"
	"strings"
	"time"

	"court_watch_go/models"
)

// Subscription match kinds, recorded on the outgoing message.
const (
	SubscriptionTypeAdvocate = "ADVOCATE"
	SubscriptionTypeLitigant = "LITIGANT"
	SubscriptionTypeCase     = "CASE"
)

const maxPartyFieldLength = 50

// NotificationMessage is the formatted payload for one (user, hearing) alert,
// shared by the push, email and SMS channels and snapshotted into the
// Notification audit record.
type NotificationMessage struct {
	CaseRef          string
	HearingDatetime  time.Time
	Court            string
	Stage            string
	HearingID        string
	Parties          string
	Advocates        string
	SubscriptionType string
}

// BuildNotificationMessage assembles the payload from a matched case, its
// hearing, and the subscription that matched.
func BuildNotificationMessage(c *models.CourtCase, h *models.CourtHearing, sub *models.UserSubscription) NotificationMessage {
	subType := SubscriptionTypeCase
	if sub.AdvocateName != "" {
		subType = SubscriptionTypeAdvocate
	} else if sub.LitigantName != "" {
		subType = SubscriptionTypeLitigant
	}

	return NotificationMessage{
		CaseRef:          fmt.Sprintf("%s/%d", c.CaseNo, c.CaseYear),
		HearingDatetime:  h.HearingDatetime,
		Court:            c.CourtComplex,
		Stage:            h.Stage,
		HearingID:        h.HearingID,
		Parties:          formatParties(c.PetitionerNames, c.RespondentNames),
		Advocates:        formatAdvocates(c.PetitionerAdvocateNames, c.RespondentAdvocateNames),
		SubscriptionType: subType,
	}
}

// Formatted renders the long-form message body used for push and email.
func (m NotificationMessage) Formatted() string {
	return fmt.Sprintf(
		"Court Hearing Notification (%s)\n\n"+
			"Case: %s\n"+
			"Date: %s\n"+
			"Time: %s\n"+
			"Court: %s\n"+
			"Stage: %s\n\n"+
			"Parties:\n%s\n\n"+
			"Advocates:\n%s\n\n"+
			"---\n"+
			"This is an automated notification from CourtWatch",
		m.SubscriptionType,
		m.CaseRef,
		m.HearingDatetime.Format("Monday, 2 January 2006"),
		m.HearingDatetime.Format("3:04 PM"),
		m.Court,
		m.Stage,
		m.Parties,
		m.Advocates,
	)
}

// SMSText renders the short message for the SMS channel.
func (m NotificationMessage) SMSText() string {
	return fmt.Sprintf("Hearing: %s on %s at %s. Court: %s. %s",
		m.CaseRef,
		m.HearingDatetime.Format("2006-01-02"),
		m.HearingDatetime.Format("3:04 PM"),
		abbreviate(m.Court, 25),
		abbreviate(m.Stage, 20),
	)
}

func formatParties(petitionerNames, respondentNames string) string {
	var sb strings.Builder
	if isUsableName(petitionerNames) {
		sb.WriteString("Petitioner: ")
		sb.WriteString(cleanAndTruncate(petitionerNames, maxPartyFieldLength))
	}
	if isUsableName(respondentNames) {
		if sb.Len() > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString("Respondent: ")
		sb.WriteString(cleanAndTruncate(respondentNames, maxPartyFieldLength))
	}
	if sb.Len() == 0 {
		return "Parties information not available"
	}
	return sb.String()
}

func formatAdvocates(petitionerAdvocates, respondentAdvocates string) string {
	var sb strings.Builder
	if isUsableName(petitionerAdvocates) {
		sb.WriteString("Pet Advocate: ")
		sb.WriteString(cleanAndTruncate(petitionerAdvocates, maxPartyFieldLength))
	}
	if isUsableName(respondentAdvocates) {
		if sb.Len() > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString("Res Advocate: ")
		sb.WriteString(cleanAndTruncate(respondentAdvocates, maxPartyFieldLength))
	}
	if sb.Len() == 0 {
		return "Advocate information not available"
	}
	return sb.String()
}

func cleanAndTruncate(text string, maxLength int) string {
	if !isUsableName(text) {
		return NotAvailable
	}
	return abbreviate(strings.TrimSpace(text), maxLength)
}

// abbreviate truncates on runes: court and stage fields arrive straight from
// the source document and may carry multibyte text.
func abbreviate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength-3]) + "..."
}

func isUsableName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return trimmed != "" && !strings.EqualFold(trimmed, NotAvailable)
}
