package jobs

import (
	"database/sql"

	"givehope-backend/internal/config"
	"givehope-backend/internal/logger"
	"givehope-backend/internal/repository"
	"givehope-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	db       *sql.DB
	store    repository.Store
	emailSvc service.EmailService
	config   *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(db *sql.DB, store repository.Store, emailSvc service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:       db,
		store:    store,
		emailSvc: emailSvc,
		config:   cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
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

// RunJob executes a single job by name (for manual execution via cmd/cronjob)
func (jr *JobRunner) RunJob(name string) bool {
	switch name {
	case "pending_approvals_reminder":
		jr.SendPendingApprovalsReminder()
	case "weekly_digest":
		jr.SendWeeklyDigest()
	default:
		return false
	}
	return true
}
