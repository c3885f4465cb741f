package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSubscription is a user's standing interest in hearing notifications.
// Every criterion is optional; blank fields act as wildcards and present
// fields are AND-combined by the matcher. A subscription without advocate or
// litigant name is a pure case-details subscription.
type UserSubscription struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CourtLevel   string `json:"court_level,omitempty"`
	State        string `json:"state,omitempty"`
	District     string `json:"district,omitempty"`
	CourtComplex string `json:"court_complex,omitempty"`
	CourtName    string `json:"court_name,omitempty"`
	CaseType     string `json:"case_type,omitempty"`
	CaseNo       string `json:"case_no,omitempty"`
	CaseYear     *int   `json:"case_year,omitempty"`
	AdvocateName string `json:"advocate_name,omitempty"`
	LitigantName string `json:"litigant_name,omitempty"`
}

func (s *UserSubscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

func (UserSubscription) TableName() string {
	return "user_subscriptions"
}

// HasCriteria reports whether at least one criterion is set.
func (s *UserSubscription) HasCriteria() bool {
	return s.CourtLevel != "" || s.State != "" || s.District != "" ||
		s.CourtComplex != "" || s.CourtName != "" || s.CaseType != "" ||
		s.CaseNo != "" || s.CaseYear != nil || s.AdvocateName != "" || s.LitigantName != ""
}
