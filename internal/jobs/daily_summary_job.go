// Package jobs provides the scheduled background tasks of the pizzeria,
// built on github.com/robfig/cron/v3 and managed through JobManager.
package jobs

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/robfig/cron/v3"
)

// dailySummarySchedule fires shortly after midnight, once the previous
// business day is over.
const dailySummarySchedule = "5 0 * * *"

// DailySummaryJob logs a nightly summary of the previous day's orders per
// status. It is purely operational: the log line is the report.
type DailySummaryJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewDailySummaryJob creates the nightly summary job.
func NewDailySummaryJob(db *gorm.DB, logger *slog.Logger) *DailySummaryJob {
	return &DailySummaryJob{
		db:     db,
		cron:   cron.New(),
		logger: logger.With("component", "daily_summary_job"),
	}
}

// Start schedules the job to run shortly after midnight.
func (j *DailySummaryJob) Start() error {
	_, err := j.cron.AddFunc(dailySummarySchedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily summary job started")
	return nil
}

// Stop stops the job.
func (j *DailySummaryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily summary job stopped")
}

// Run computes and logs the summary for the last 24 hours. Exposed so the
// schedule callback and tests share the same code path.
func (j *DailySummaryJob) Run(ctx context.Context) {
	rows, err := j.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		WHERE created_at >= NOW() - INTERVAL '1 day'
		GROUP BY status
	`).Rows()
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily summary query failed", "error", err)
		return
	}
	defer rows.Close()

	total := 0
	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err = rows.Scan(&status, &count); err != nil {
			j.logger.ErrorContext(ctx, "Daily summary scan failed", "error", err)
			return
		}
		counts[status] = count
		total += count
	}
	if err = rows.Err(); err != nil {
		j.logger.ErrorContext(ctx, "Daily summary read failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Daily order summary",
		"total", total,
		"novo", counts["novo"],
		"aceito", counts["aceito"],
		"producao", counts["producao"],
		"entrega", counts["entrega"],
		"finalizado", counts["finalizado"],
		"cancelado", counts["cancelado"],
	)
}
