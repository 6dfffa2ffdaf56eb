package jobs

import (
	"rentaldesk-backend/internal/config"
	"rentaldesk-backend/internal/logger"
	"rentaldesk-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	equipmentSvc service.EquipmentService
	rentalSvc    service.RentalService
	config       *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(equipmentSvc service.EquipmentService, rentalSvc service.RentalService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		equipmentSvc: equipmentSvc,
		rentalSvc:    rentalSvc,
		config:       cfg,
	}
}

// Config returns the loaded configuration
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

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ReportOverdueRentals()
	jr.ReportOverCommittedEquipment()
}
