package models

import (
	"time"

	"gorm.io/gorm"
)

// Court level constants
const (
	CourtLevelSupreme  = "SUPREME_COURT"
	CourtLevelHigh     = "HIGH_COURT"
	CourtLevelDistrict = "DISTRICT_COURT"
	CourtLevelTaluk    = "TALUK_COURT"
)

// CourtCase represents a court matter imported from a cause list. The primary
// key is a deterministic identity derived from (source prefix, district, case
// number, case year), so re-importing the same record updates in place.
type CourtCase struct {
	CaseID    string    `gorm:"primarykey;size:191" json:"case_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CourtLevel   string `gorm:"not null" json:"court_level"`
	State        string `gorm:"not null" json:"state"`
	District     string `gorm:"not null" json:"district"`
	CourtComplex string `gorm:"not null" json:"court_complex"`
	CourtName    string `json:"court_name,omitempty"`

	CaseType string `gorm:"not null" json:"case_type"`
	CaseNo   string `gorm:"not null;index" json:"case_no"`
	CaseYear int    `gorm:"not null" json:"case_year"`

	// Party and advocate fields hold cleaned name strings ("Not Available"
	// when the source had nothing usable).
	PetitionerNames         string `gorm:"type:text" json:"petitioner_names"`
	RespondentNames         string `gorm:"type:text" json:"respondent_names"`
	PetitionerAdvocateNames string `gorm:"type:text" json:"petitioner_advocate_names"`
	RespondentAdvocateNames string `gorm:"type:text" json:"respondent_advocate_names"`

	// Linked cases listed alongside a main case reference it as parent,
	// forming a flat tree keyed by identity strings.
	ParentCaseID *string    `gorm:"size:191;index" json:"parent_case_id,omitempty"`
	ParentCase   *CourtCase `gorm:"foreignKey:ParentCaseID" json:"parent_case,omitempty"`

	Hearings []CourtHearing `gorm:"foreignKey:CaseID" json:"hearings,omitempty"`
}

func (c *CourtCase) BeforeCreate(tx *gorm.DB) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	return nil
}

// TableName specifies the table name for CourtCase model
func (CourtCase) TableName() string {
	return "court_cases"
}

// IsValidCourtLevel checks if the court level is valid
func IsValidCourtLevel(level string) bool {
	switch level {
	case CourtLevelSupreme, CourtLevelHigh, CourtLevelDistrict, CourtLevelTaluk:
		return true
	}
	return false
}
