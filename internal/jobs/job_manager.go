package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	ndrEscalationJob *NDREscalationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	escalateHandler commands.EscalateOverdueNDRsCommandHandler,
	escalationSchedule string,
	escalationGracePeriod time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		ndrEscalationJob: NewNDREscalationJob(escalateHandler, escalationSchedule, escalationGracePeriod, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.ndrEscalationJob.Start(); err != nil {
		return fmt.Errorf("failed to start ndr escalation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.ndrEscalationJob.Stop()
}
