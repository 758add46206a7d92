package jobs

import (
	"fmt"
	"log/slog"

	"atelier/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueMilestoneJob *OverdueMilestoneJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	overdueMilestonesHandler queries.GetOverdueMilestonesQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueMilestoneJob: NewOverdueMilestoneJob(overdueMilestonesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueMilestoneJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue milestone job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueMilestoneJob.Stop()
}
