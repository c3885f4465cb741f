package services

import (
	"log"
	"time"

	"court_watch_go/models"

	"gorm.io/gorm"
)

// CleanUpExpiredData removes hearings listed before the cutoff and the cases
// left with no hearings afterwards. Cases that still parent other cases are
// kept so the linkage tree stays resolvable. Notification audit records are
// untouched; their snapshot fields keep them readable on their own.
func CleanUpExpiredData(db *gorm.DB, cutoff time.Time) error {
	result := db.Where("hearing_datetime < ?", cutoff).Delete(&models.CourtHearing{})
	if result.Error != nil {
		return result.Error
	}
	log.Printf("[CLEANUP] Deleted %d hearings before %s", result.RowsAffected, cutoff.Format("2006-01-02"))

	// A case survives while it has hearings, parents another case, or is
	// linked to a case that still has hearings.
	result = db.Where(
		"case_id NOT IN (SELECT case_id FROM court_hearings)"+
			" AND (parent_case_id IS NULL OR parent_case_id NOT IN (SELECT case_id FROM court_hearings))"+
			" AND case_id NOT IN (SELECT parent_case_id FROM court_cases WHERE parent_case_id IS NOT NULL)"+
			" AND updated_at < ?", cutoff,
	).Delete(&models.CourtCase{})
	if result.Error != nil {
		return result.Error
	}
	log.Printf("[CLEANUP] Deleted %d cases with no remaining hearings", result.RowsAffected)

	return nil
}
