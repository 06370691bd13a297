package jobs

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// JobManager coordinates the scheduled jobs with a unified start/stop
// interface.
type JobManager struct {
	dailySummaryJob *DailySummaryJob
}

// NewJobManager creates a job manager with all jobs wired up.
func NewJobManager(db *gorm.DB, logger *slog.Logger) *JobManager {
	return &JobManager{
		dailySummaryJob: NewDailySummaryJob(db, logger),
	}
}

// StartAll starts every scheduled job.
func (jm *JobManager) StartAll() error {
	if err := jm.dailySummaryJob.Start(); err != nil {
		return fmt.Errorf("failed to start daily summary job: %w", err)
	}
	return nil
}

// StopAll stops every scheduled job.
func (jm *JobManager) StopAll() {
	jm.dailySummaryJob.Stop()
}
