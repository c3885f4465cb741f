package services

import (
	"log"
	"time"

	"court_watch_go/models"

	"gorm.io/gorm"
)

// Channel senders consumed by the dispatcher. Real implementations live in
// services/contact; tests substitute recorders.
type PushSender interface {
	Send(deviceToken, title, body string) error
}

type EmailSender interface {
	Send(toAddress, subject, body string) error
}

type SMSSender interface {
	Send(toPhoneNumber, text string) error
}

// NotificationDispatcher resolves matching subscribers for each hearing of a
// target date, sends through the available channels, and persists one audit
// Notification per (user, hearing). Dedup is scoped per hearing: a user who
// matches both a parent case and a linked child case of the same hearing is
// notified once.
type NotificationDispatcher struct {
	DB    *gorm.DB
	Store *CaseStore
	Push  PushSender
	Email EmailSender
	SMS   SMSSender
}

func NewNotificationDispatcher(db *gorm.DB, store *CaseStore, push PushSender, email EmailSender, sms SMSSender) *NotificationDispatcher {
	return &NotificationDispatcher{DB: db, Store: store, Push: push, Email: email, SMS: sms}
}

// ProcessHearingsForDate dispatches notifications for every hearing listed on
// the target calendar date and returns the number of notifications sent.
func (d *NotificationDispatcher) ProcessHearingsForDate(date time.Time) (int, error) {
	startTime := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endTime := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, date.Location())

	log.Printf("[NOTIFY] Starting notification processing for date: %s", date.Format("2006-01-02"))

	hearings, err := d.Store.FindHearingsBetween(startTime, endTime)
	if err != nil {
		return 0, err
	}
	log.Printf("[NOTIFY] Found %d hearings on %s", len(hearings), date.Format("2006-01-02"))
	if len(hearings) == 0 {
		return 0, nil
	}

	var subscriptions []models.UserSubscription
	if err := d.DB.Preload("User").Find(&subscriptions).Error; err != nil {
		return 0, err
	}
	log.Printf("[NOTIFY] Total subscriptions in system: %d", len(subscriptions))

	totalSent := 0
	for i := range hearings {
		totalSent += d.processSingleHearing(&hearings[i], subscriptions)
	}

	log.Printf("[NOTIFY] Processing complete: sent %d notifications for date %s", totalSent, date.Format("2006-01-02"))
	return totalSent, nil
}

func (d *NotificationDispatcher) processSingleHearing(hearing *models.CourtHearing, subscriptions []models.UserSubscription) int {
	mainCase := hearing.CourtCase
	relatedCases := []models.CourtCase{mainCase}

	children, err := d.Store.FindCasesByParent(mainCase.CaseID)
	if err != nil {
		log.Printf("[NOTIFY] Failed to load linked cases for %s: %v", mainCase.CaseID, err)
	} else {
		relatedCases = append(relatedCases, children...)
	}

	sent := 0
	// Dedup state is scoped to this hearing only.
	notifiedUsers := make(map[string]bool)

	for i := range relatedCases {
		courtCase := &relatedCases[i]
		for j := range subscriptions {
			sub := &subscriptions[j]
			if !MatchesSubscription(sub, courtCase) {
				continue
			}

			user := sub.User
			if user.ID == "" {
				log.Printf("[NOTIFY] Skipping subscription %s with missing user for case %s", sub.ID, courtCase.CaseID)
				continue
			}
			if notifiedUsers[user.ID] {
				continue
			}

			if d.notifyUser(&user, courtCase, hearing, sub) {
				notifiedUsers[user.ID] = true
				sent++
			}
		}
	}
	return sent
}

// notifyUser attempts every channel the user can receive, then persists the
// audit record. A channel failure is logged and never blocks the other
// channels or the record.
func (d *NotificationDispatcher) notifyUser(user *models.User, courtCase *models.CourtCase, hearing *models.CourtHearing, sub *models.UserSubscription) bool {
	msg := BuildNotificationMessage(courtCase, hearing, sub)

	var tokens []models.DeviceToken
	if err := d.DB.Where("user_id = ?", user.ID).Find(&tokens).Error; err != nil {
		log.Printf("[NOTIFY] Failed to load device tokens for user %s: %v", user.ID, err)
	}
	for _, token := range tokens {
		if token.Token == "" {
			continue
		}
		if err := d.Push.Send(token.Token, "Court Hearing Alert", msg.Formatted()); err != nil {
			log.Printf("[NOTIFY] Failed to push to user %s: %v", user.ID, err)
		}
	}

	if user.Email != "" {
		subject := "Court Hearing Alert: " + msg.CaseRef
		if err := d.Email.Send(user.Email, subject, msg.Formatted()); err != nil {
			log.Printf("[NOTIFY] Failed to send email to %s: %v", user.Email, err)
		}
	}

	if user.MobileNo != "" {
		if err := d.SMS.Send(user.MobileNo, msg.SMSText()); err != nil {
			log.Printf("[NOTIFY] Failed to send SMS to %s: %v", user.MobileNo, err)
		}
	}

	notification := models.Notification{
		UserID:      user.ID,
		CaseID:      courtCase.CaseID,
		HearingID:   hearing.HearingID,
		CaseRef:     msg.CaseRef,
		HearingDate: msg.HearingDatetime.Format("2006-01-02"),
		HearingTime: msg.HearingDatetime.Format("3:04 PM"),
		Court:       msg.Court,
		Stage:       msg.Stage,
		Parties:     msg.Parties,
		Advocates:   msg.Advocates,
		IsRead:      false,
		IsSent:      true,
	}
	if err := d.DB.Create(&notification).Error; err != nil {
		log.Printf("[NOTIFY] Failed to save notification for user %s: %v", user.ID, err)
	}
	return true
}
