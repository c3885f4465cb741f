package models

import (
	"time"

	"gorm.io/gorm"
)

// CourtHearing is one listing of a case on a cause list. The primary key is
// derived from the owning case identity plus either a hash of the raw remarks
// or the listing date, depending on the configured identity mode.
type CourtHearing struct {
	HearingID string    `gorm:"primarykey;size:191" json:"hearing_id"`
	CreatedAt time.Time `json:"created_at"`

	CaseID    string    `gorm:"size:191;not null;index" json:"case_id"`
	CourtCase CourtCase `gorm:"foreignKey:CaseID" json:"court_case,omitempty"`

	CourtNo         string    `gorm:"not null" json:"court_no"`
	Stage           string    `gorm:"not null" json:"stage"`
	HearingDatetime time.Time `gorm:"not null;index" json:"hearing_datetime"`
	CourtRemarks    string    `gorm:"type:text" json:"court_remarks"`
}

func (h *CourtHearing) BeforeCreate(tx *gorm.DB) error {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}
	return nil
}

func (CourtHearing) TableName() string {
	return "court_hearings"
}
