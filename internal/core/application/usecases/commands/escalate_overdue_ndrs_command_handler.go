package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/ndr"
	"logistics/internal/core/domain/model/shipment"
)

// EscalateOverdueNDRsCommandHandler is the job-driven sweep of the NDR
// workflow. Open reports whose customer was never reached and that aged past
// the deadline escalate to return-to-origin through the same state machine
// paths an operator would use.
type EscalateOverdueNDRsCommandHandler struct {
	uowFactory NDRUoWFactory
}

// NewEscalateOverdueNDRsCommandHandler creates a handler for the overdue
// sweep. Requires an NDRUoWFactory for transactional persistence.
func NewEscalateOverdueNDRsCommandHandler(uowFactory NDRUoWFactory) EscalateOverdueNDRsCommandHandler {
	return EscalateOverdueNDRsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle escalates every overdue, never-contacted open report and returns
// the number escalated. The whole sweep commits as one transaction.
func (h EscalateOverdueNDRsCommandHandler) Handle(ctx context.Context, cmd EscalateOverdueNDRsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reports, err := uow.NDRRepository().GetOverdueOpen(ctx, cmd.Deadline())
	if err != nil {
		return 0, err
	}

	escalated := 0
	for _, report := range reports {
		if report.CustomerContacted() {
			continue
		}
		if err = h.escalate(ctx, uow, report); err != nil {
			return 0, err
		}
		escalated++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return escalated, nil
}

func (h EscalateOverdueNDRsCommandHandler) escalate(ctx context.Context, uow NDRUoW, report *ndr.Report) error {
	if err := report.InitiateRTO(); err != nil {
		return err
	}
	if err := uow.NDRRepository().Update(ctx, report); err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, report.ShipmentID())
	if err != nil {
		return err
	}

	previousStatus := aggregate.Status()
	if err = aggregate.TransitionTo(shipment.RTOInitiated, shipment.RoleSystem); err != nil {
		return err
	}
	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := shipment.NewStatusEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		previousStatus,
		shipment.RTOInitiated,
		shipment.RoleSystem,
		"ndr-escalation-job",
		"ndr overdue without customer contact, initiating return",
		nil,
		nil,
		map[string]string{"ndrReportId": report.ID().String()},
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	return uow.StatusEventRepository().Append(ctx, event)
}
