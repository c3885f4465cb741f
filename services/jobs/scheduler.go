package jobs

import (
	"errors"
	"log"
	"sync"
	"time"

	"court_watch_go/models"
	"court_watch_go/services"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const dailyCycleCheckpoint = "daily-court-cycle"

var cycleMu sync.Mutex

// StartScheduler wires the periodic jobs: an hourly check that runs the
// ingest+dispatch cycle once per calendar day, and a midnight cleanup of
// expired hearing data.
func StartScheduler(database *gorm.DB, timezone string, importer *services.CourtDataImporter, dispatcher *services.NotificationDispatcher) *cron.Cron {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		log.Printf("[CRON] Unknown timezone %q, using local time: %v", timezone, err)
		loc = time.Local
	}
	c := cron.New(cron.WithLocation(loc))

	_, err = c.AddFunc("0 * * * *", func() {
		log.Println("[CRON] Running hourly court data cycle check...")
		if err := RunDailyCycle(database, importer, dispatcher, time.Now().In(loc)); err != nil {
			log.Printf("[CRON] Daily cycle failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("[CRON] Failed to schedule daily cycle: %v", err)
	}

	_, err = c.AddFunc("0 0 * * *", func() {
		log.Println("[CRON] Running midnight data cleanup...")
		if err := services.CleanUpExpiredData(database, time.Now().In(loc)); err != nil {
			log.Printf("[CRON] Data cleanup failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("[CRON] Failed to schedule cleanup: %v", err)
	}

	c.Start()
	log.Println("[CRON] Scheduler started")
	return c
}

// RunDailyCycle runs ingest then dispatch for tomorrow's cause lists, gated
// to at most one completed run per calendar day. The gate is a persisted
// checkpoint row, so a restarted process neither repeats nor skips a day.
// The checkpoint is written only after the whole cycle completes; a failed
// cycle is retried on the next tick.
func RunDailyCycle(database *gorm.DB, importer *services.CourtDataImporter, dispatcher *services.NotificationDispatcher, now time.Time) error {
	if !cycleMu.TryLock() {
		log.Println("[JOB] Previous cycle still running, skipping this tick")
		return nil
	}
	defer cycleMu.Unlock()

	today := now.Format("2006-01-02")

	var checkpoint models.ImportCheckpoint
	err := database.Where("name = ?", dailyCycleCheckpoint).First(&checkpoint).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil && checkpoint.LastRunDate == today {
		log.Printf("[JOB] Data already processed for today (%s). Skipping until next day.", today)
		return nil
	}

	targetDate := now.AddDate(0, 0, 1)
	log.Printf("[JOB] Starting daily court data cycle for date: %s", targetDate.Format("2006-01-02"))
	startedAt := time.Now()

	result := importer.ImportForDate(targetDate)
	log.Printf("[JOB] Court data import completed: %s", result)

	sent, err := dispatcher.ProcessHearingsForDate(targetDate)
	if err != nil {
		return err
	}
	log.Printf("[JOB] Notification processing completed: %d sent", sent)

	checkpoint.Name = dailyCycleCheckpoint
	checkpoint.LastRunDate = today
	checkpoint.CompletedAt = time.Now()
	if err := database.Save(&checkpoint).Error; err != nil {
		return err
	}

	log.Printf("[JOB] Cycle completed in %s. Next run after midnight.", time.Since(startedAt))
	return nil
}
