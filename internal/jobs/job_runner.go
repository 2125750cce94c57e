package jobs

import (
	"rentmate-backend/internal/config"
	"rentmate-backend/internal/logger"
	"rentmate-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	rentalSvc service.RentalService
	config    *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(rentalSvc service.RentalService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		rentalSvc: rentalSvc,
		config:    cfg,
	}
}

// Config exposes the runner's configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Debug("Starting job", "job", jobName)
	jobFunc()
	logger.Debug("Job completed", "job", jobName)
}
