// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the order lifecycle needs.
//
// # Available Jobs
//
// 1. OverdueMilestoneJob - Runs every minute to find unpaid payment milestones
// past their due date on live orders and log them for follow-up
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(overdueMilestonesHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The overdue scan logs failures and retries on the next tick; a broken scan
// never takes the service down.
package jobs
