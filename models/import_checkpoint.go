package models

import "time"

// ImportCheckpoint records the last calendar day a named batch job completed.
// It is persisted so a process restart mid-day neither repeats nor skips a
// cycle.
type ImportCheckpoint struct {
	Name        string    `gorm:"primarykey;size:100" json:"name"`
	LastRunDate string    `gorm:"not null" json:"last_run_date"` // "2006-01-02"
	CompletedAt time.Time `gorm:"not null" json:"completed_at"`
}

func (ImportCheckpoint) TableName() string {
	return "import_checkpoints"
}
