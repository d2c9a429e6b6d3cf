package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/indiansabroad/indians-abroad-api/model"
)

// GenerateDailyDigest runs the digest pipeline once. Scheduled daily; a
// failed run is logged and retried only by the next day's schedule (or a
// manual trigger through the admin endpoint or CLI).
func (m *CronManager) GenerateDailyDigest() {
	jobName := "generate_daily_digest"

	if m.digest == nil {
		m.logJobError(jobName, fmt.Errorf("digest service not configured (missing OpenRouter API key?)"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	article, err := m.digest.Run(ctx)
	if err != nil {
		m.logJobError(jobName, err)
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Published digest article %d: %s", article.ID, article.Title))
}

// CleanupOldLogs removes cron job logs older than 30 days
func (m *CronManager) CleanupOldLogs() {
	jobName := "cleanup_cron_logs"

	cutoff := time.Now().AddDate(0, 0, -30)
	result := m.db.Unscoped().
		Where("started_at < ?", cutoff).
		Delete(&model.CronJobLog{})

	if result.Error != nil {
		m.logJobError(jobName, result.Error)
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Deleted %d old cron logs", result.RowsAffected))
}
