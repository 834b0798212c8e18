package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"production/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	hiddenOrderPurgeJob *HiddenOrderPurgeJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	purgeHiddenOrdersHandler commands.PurgeHiddenOrdersCommandHandler,
	hiddenOrderRetention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		hiddenOrderPurgeJob: NewHiddenOrderPurgeJob(purgeHiddenOrdersHandler, hiddenOrderRetention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.hiddenOrderPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start hidden order purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.hiddenOrderPurgeJob.Stop()
}
