package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	profitReportJob *ProfitReportJob
	logger          *slog.Logger
}

// NewJobManager creates a job manager. An empty profitReportSchedule
// disables the profit report.
func NewJobManager(profitReporter ProfitReporter, profitReportSchedule string, logger *slog.Logger) *JobManager {
	jm := &JobManager{logger: logger.With("component", "job_manager")}
	if profitReportSchedule != "" {
		jm.profitReportJob = NewProfitReportJob(profitReporter, profitReportSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.profitReportJob == nil {
		jm.logger.Info("Profit report job disabled")
		return nil
	}

	if err := jm.profitReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start profit report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.profitReportJob != nil {
		jm.profitReportJob.Stop()
	}
}
