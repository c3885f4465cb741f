package services

import (
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"court_watch_go/config"
	"court_watch_go/models"

	"gorm.io/gorm"
)

// CaseStore owns the Case and Hearing lifecycle: deterministic identity
// derivation and get/save/query access for the import and dispatch pipelines.
type CaseStore struct {
	DB *gorm.DB

	// HearingIdentityMode selects how hearing identities are derived, see
	// config.HearingIdentityRemarksHash / config.HearingIdentityCaseDate.
	HearingIdentityMode string
}

func NewCaseStore(db *gorm.DB, hearingIdentityMode string) *CaseStore {
	if hearingIdentityMode == "" {
		hearingIdentityMode = config.HearingIdentityRemarksHash
	}
	return &CaseStore{DB: db, HearingIdentityMode: hearingIdentityMode}
}

// GenerateCaseID derives the reproducible case identity, e.g.
// "TN-HC-Madurai-26954-2025". The same source record always yields the same
// identity, which is what makes re-ingestion an update instead of a duplicate.
func GenerateCaseID(sourcePrefix, district, caseNo, caseYear string) string {
	return fmt.Sprintf("%s-%s-%s-%s", sourcePrefix, district, caseNo, caseYear)
}

// HearingIdentity derives the hearing key for a case listing. In remarks-hash
// mode any change to the remarks text yields a new hearing row
// (remarks-versioned hearings); in case-date mode the key is stable per
// listing day and remarks become a mutable field.
func (s *CaseStore) HearingIdentity(caseID, courtRemarks string, hearingDatetime time.Time) string {
	if s.HearingIdentityMode == config.HearingIdentityCaseDate {
		return fmt.Sprintf("%s-%s", caseID, hearingDatetime.Format("20060102"))
	}
	h := fnv.New32a()
	h.Write([]byte(courtRemarks))
	return fmt.Sprintf("%s-%d", caseID, h.Sum32())
}

// GetCaseByID returns the case or nil when absent.
func (s *CaseStore) GetCaseByID(caseID string) (*models.CourtCase, error) {
	var c models.CourtCase
	err := s.DB.Where("case_id = ?", caseID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CaseStore) SaveCase(c *models.CourtCase) error {
	return s.DB.Save(c).Error
}

// GetHearingByID returns the hearing or nil when absent.
func (s *CaseStore) GetHearingByID(hearingID string) (*models.CourtHearing, error) {
	var h models.CourtHearing
	err := s.DB.Where("hearing_id = ?", hearingID).First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *CaseStore) SaveHearing(h *models.CourtHearing) error {
	return s.DB.Save(h).Error
}

// FindCasesByParent returns the linked child cases of a case.
func (s *CaseStore) FindCasesByParent(caseID string) ([]models.CourtCase, error) {
	var children []models.CourtCase
	err := s.DB.Where("parent_case_id = ?", caseID).Find(&children).Error
	return children, err
}

// FindHearingsBetween returns hearings listed in [start, end], with their
// cases preloaded.
func (s *CaseStore) FindHearingsBetween(start, end time.Time) ([]models.CourtHearing, error) {
	var hearings []models.CourtHearing
	err := s.DB.Preload("CourtCase").
		Where("hearing_datetime >= ? AND hearing_datetime <= ?", start, end).
		Find(&hearings).Error
	return hearings, err
}
