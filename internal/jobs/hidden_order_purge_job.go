package jobs

import (
	"context"
	"log/slog"
	"time"

	"production/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// HiddenOrderPurgeJob removes hidden orders whose retention period expired.
// Runs once an hour; the actual cutoff is computed per run from the
// configured retention window.
type HiddenOrderPurgeJob struct {
	handler   commands.PurgeHiddenOrdersCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewHiddenOrderPurgeJob creates a job that purges hidden orders older than retention.
func NewHiddenOrderPurgeJob(
	handler commands.PurgeHiddenOrdersCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *HiddenOrderPurgeJob {
	return &HiddenOrderPurgeJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "hidden_order_purge_job"),
	}
}

// Start begins the purge job to run at the top of every hour.
func (j *HiddenOrderPurgeJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeHiddenOrdersCommand(time.Now().Add(-j.retention))
		if err != nil {
			j.logger.ErrorContext(ctx, "Hidden order purge job misconfigured", "error", err)
			return
		}

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Hidden order purge job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Purged hidden orders", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Hidden order purge job started (running hourly)",
		"retention", j.retention.String())
	return nil
}

// Stop stops the purge job.
func (j *HiddenOrderPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Hidden order purge job stopped")
}
