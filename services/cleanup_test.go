package services

import (
	"testing"
	"time"

	"court_watch_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func backdateCase(t *testing.T, db *gorm.DB, caseID string, to time.Time) {
	err := db.Model(&models.CourtCase{}).Where("case_id = ?", caseID).
		UpdateColumn("updated_at", to).Error
	require.NoError(t, err)
}

func TestCleanUpExpiredDataRemovesPastHearings(t *testing.T) {
	db := setupServicesTestDB(t)
	store := NewCaseStore(db, "")
	cutoff := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)

	caseID := GenerateCaseID("TN-HC", "Madurai", "1", "2025")
	require.NoError(t, store.SaveCase(&models.CourtCase{CaseID: caseID, CourtLevel: models.CourtLevelHigh, CaseNo: "1", CaseYear: 2025}))
	require.NoError(t, store.SaveHearing(&models.CourtHearing{
		HearingID: caseID + "-old", CaseID: caseID, HearingDatetime: cutoff.AddDate(0, 0, -2),
	}))
	require.NoError(t, store.SaveHearing(&models.CourtHearing{
		HearingID: caseID + "-upcoming", CaseID: caseID, HearingDatetime: cutoff.AddDate(0, 0, 1),
	}))

	require.NoError(t, CleanUpExpiredData(db, cutoff))

	var hearings []models.CourtHearing
	require.NoError(t, db.Find(&hearings).Error)
	require.Len(t, hearings, 1)
	assert.Equal(t, caseID+"-upcoming", hearings[0].HearingID)

	// The case still has an upcoming hearing and survives.
	kept, err := store.GetCaseByID(caseID)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestCleanUpExpiredDataRemovesOrphanedCases(t *testing.T) {
	db := setupServicesTestDB(t)
	store := NewCaseStore(db, "")
	cutoff := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)

	staleID := GenerateCaseID("TN-HC", "Madurai", "2", "2025")
	require.NoError(t, store.SaveCase(&models.CourtCase{CaseID: staleID, CourtLevel: models.CourtLevelHigh, CaseNo: "2", CaseYear: 2025}))
	require.NoError(t, store.SaveHearing(&models.CourtHearing{
		HearingID: staleID + "-old", CaseID: staleID, HearingDatetime: cutoff.AddDate(0, 0, -5),
	}))
	backdateCase(t, db, staleID, cutoff.AddDate(0, 0, -5))

	freshID := GenerateCaseID("TN-HC", "Madurai", "3", "2025")
	require.NoError(t, store.SaveCase(&models.CourtCase{CaseID: freshID, CourtLevel: models.CourtLevelHigh, CaseNo: "3", CaseYear: 2025}))

	require.NoError(t, CleanUpExpiredData(db, cutoff))

	stale, err := store.GetCaseByID(staleID)
	require.NoError(t, err)
	assert.Nil(t, stale, "case with no hearings left should be removed")

	// Recently touched cases are kept even without hearings.
	fresh, err := store.GetCaseByID(freshID)
	require.NoError(t, err)
	assert.NotNil(t, fresh)
}

func TestCleanUpExpiredDataKeepsLinkedCasesOfActiveParent(t *testing.T) {
	db := setupServicesTestDB(t)
	store := NewCaseStore(db, "")
	cutoff := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)

	parentID := GenerateCaseID("TN-HC", "Madurai", "4", "2025")
	require.NoError(t, store.SaveCase(&models.CourtCase{CaseID: parentID, CourtLevel: models.CourtLevelHigh, CaseNo: "4", CaseYear: 2025}))
	require.NoError(t, store.SaveHearing(&models.CourtHearing{
		HearingID: parentID + "-upcoming", CaseID: parentID, HearingDatetime: cutoff.AddDate(0, 0, 1),
	}))

	childID := GenerateCaseID("TN-HC", "Madurai", "5", "2025")
	require.NoError(t, store.SaveCase(&models.CourtCase{CaseID: childID, CourtLevel: models.CourtLevelHigh, CaseNo: "5", CaseYear: 2025, ParentCaseID: &parentID}))
	backdateCase(t, db, childID, cutoff.AddDate(0, 0, -10))

	require.NoError(t, CleanUpExpiredData(db, cutoff))

	// Linked cases never get their own hearings; they live as long as their
	// parent's listing is still upcoming.
	child, err := store.GetCaseByID(childID)
	require.NoError(t, err)
	assert.NotNil(t, child)
}

func TestCleanUpExpiredDataKeepsParentsOfSurvivingChildren(t *testing.T) {
	db := setupServicesTestDB(t)
	store := NewCaseStore(db, "")
	cutoff := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)

	parentID := GenerateCaseID("TN-HC", "Madurai", "6", "2025")
	require.NoError(t, store.SaveCase(&models.CourtCase{CaseID: parentID, CourtLevel: models.CourtLevelHigh, CaseNo: "6", CaseYear: 2025}))
	childID := GenerateCaseID("TN-HC", "Madurai", "7", "2025")
	require.NoError(t, store.SaveCase(&models.CourtCase{CaseID: childID, CourtLevel: models.CourtLevelHigh, CaseNo: "7", CaseYear: 2025, ParentCaseID: &parentID}))
	backdateCase(t, db, parentID, cutoff.AddDate(0, 0, -10))

	require.NoError(t, CleanUpExpiredData(db, cutoff))

	parent, err := store.GetCaseByID(parentID)
	require.NoError(t, err)
	assert.NotNil(t, parent, "a case that still parents another case is kept")
}
