package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is the audit record of one dispatched hearing alert. Exactly
// one row exists per (user, hearing) dispatch; the snapshot fields are
// denormalized so the record stays readable after cleanup removes the case.
type Notification struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`

	CaseID    string `gorm:"size:191;not null" json:"case_id"`
	HearingID string `gorm:"size:191;not null;index:idx_notification_user_hearing" json:"hearing_id"`

	// Snapshot fields
	CaseRef     string `gorm:"not null" json:"case_ref"` // "caseNo/caseYear"
	HearingDate string `gorm:"not null" json:"hearing_date"`
	HearingTime string `gorm:"not null" json:"hearing_time"`
	Court       string `gorm:"not null" json:"court"`
	Stage       string `gorm:"not null" json:"stage"`
	Parties     string `gorm:"type:text;not null" json:"parties"`
	Advocates   string `gorm:"type:text;not null" json:"advocates"`

	IsRead bool `gorm:"not null;default:false" json:"is_read"`
	IsSent bool `gorm:"not null;default:false" json:"is_sent"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}

func (Notification) TableName() string {
	return "notifications"
}
