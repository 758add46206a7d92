package jobs

import (
	"context"
	"log/slog"
	"time"

	"atelier/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueMilestoneJob scans for unpaid milestones past their due date and
// reports them. Overdue is a read-time property: nothing transitions, the job
// only surfaces milestones that need chasing.
type OverdueMilestoneJob struct {
	handler queries.GetOverdueMilestonesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueMilestoneJob creates a job that checks for overdue milestones
// every minute.
func NewOverdueMilestoneJob(handler queries.GetOverdueMilestonesQueryHandler, logger *slog.Logger) *OverdueMilestoneJob {
	return &OverdueMilestoneJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_milestone_job"),
	}
}

// Start begins the overdue milestone scan on a minute schedule.
func (j *OverdueMilestoneJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetOverdueMilestonesQuery(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build overdue milestone query", "error", err)
			return
		}

		overdue, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue milestone scan failed", "error", err)
			return
		}

		for _, m := range overdue {
			j.logger.WarnContext(ctx, "Payment milestone is overdue",
				"order_id", m.OrderID,
				"order_number", m.OrderNumber,
				"milestone_id", m.MilestoneID,
				"kind", m.Kind,
				"amount_cents", m.AmountCents,
				"due_date", m.DueDate,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue milestone job started (running every minute)")
	return nil
}

// Stop stops the overdue milestone job.
func (j *OverdueMilestoneJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue milestone job stopped")
}
