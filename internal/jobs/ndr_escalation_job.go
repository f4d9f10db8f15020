package jobs

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NDREscalationJob escalates NDR reports that were never acted on. Any open,
// never-contacted report older than the configured grace period is moved to
// RTO so stock stops aging at the delivery hub.
type NDREscalationJob struct {
	handler     commands.EscalateOverdueNDRsCommandHandler
	cron        *cron.Cron
	schedule    string
	gracePeriod time.Duration
	logger      *slog.Logger
}

// NewNDREscalationJob creates a job escalating overdue NDR reports on the
// given cron schedule. Reports opened more than gracePeriod ago and still
// without customer contact are escalated.
func NewNDREscalationJob(
	handler commands.EscalateOverdueNDRsCommandHandler,
	schedule string,
	gracePeriod time.Duration,
	logger *slog.Logger,
) *NDREscalationJob {
	return &NDREscalationJob{
		handler:     handler,
		cron:        cron.New(),
		schedule:    schedule,
		gracePeriod: gracePeriod,
		logger:      logger.With("component", "ndr_escalation_job"),
	}
}

// Start schedules the escalation job.
func (j *NDREscalationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewEscalateOverdueNDRsCommand(time.Now().UTC().Add(-j.gracePeriod))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "NDR escalation job misconfigured", "error", cmdErr)
			return
		}

		escalated, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "NDR escalation job failed", "error", handleErr)
			return
		}

		if escalated > 0 {
			j.logger.InfoContext(ctx, "Escalated overdue NDR reports to RTO", "count", escalated)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "NDR escalation job started",
		"schedule", j.schedule, "gracePeriod", j.gracePeriod.String())
	return nil
}

// Stop stops the escalation job.
func (j *NDREscalationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "NDR escalation job stopped")
}
