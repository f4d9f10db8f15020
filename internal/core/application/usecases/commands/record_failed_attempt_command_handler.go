package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/ndr"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

// RecordFailedAttemptCommandHandler opens the NDR workflow for a shipment.
// A shipment carries at most one unresolved report: a second failed attempt
// without an intervening resolution reuses the open report instead of
// creating a duplicate.
type RecordFailedAttemptCommandHandler struct {
	uowFactory NDRUoWFactory
}

// NewRecordFailedAttemptCommandHandler creates a handler for failed delivery
// attempts. Requires an NDRUoWFactory for transactional persistence.
func NewRecordFailedAttemptCommandHandler(uowFactory NDRUoWFactory) RecordFailedAttemptCommandHandler {
	return RecordFailedAttemptCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one failed delivery attempt. The shipment transitions
// OUT_FOR_DELIVERY to NDR through the state machine unless it already sits
// in NDR from an earlier attempt of the same cycle.
func (h RecordFailedAttemptCommandHandler) Handle(ctx context.Context, cmd RecordFailedAttemptCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	ndrRepo := uow.NDRRepository()
	report, err := ndrRepo.GetOpenByShipment(ctx, cmd.ShipmentID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		report, err = ndr.NewReport(kernel.NewUUID(), cmd.ShipmentID(), cmd.ReasonCode(), time.Now().UTC())
		if err != nil {
			return err
		}
		if err = ndrRepo.Add(ctx, report); err != nil {
			return err
		}
	case err != nil:
		return err
	}

	if aggregate.Status() != shipment.NDR {
		previousStatus := aggregate.Status()
		if err = aggregate.TransitionTo(shipment.NDR, shipment.RoleSystem); err != nil {
			return err
		}
		if err = shipmentRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		event, eventErr := shipment.NewStatusEvent(
			kernel.NewUUID(),
			aggregate.ID(),
			previousStatus,
			shipment.NDR,
			shipment.RoleSystem,
			"ndr-workflow",
			"delivery attempt failed: "+cmd.ReasonCode(),
			nil,
			cmd.Remarks(),
			map[string]string{"reasonCode": cmd.ReasonCode(), "ndrReportId": report.ID().String()},
			time.Now().UTC(),
		)
		if eventErr != nil {
			return eventErr
		}
		if err = uow.StatusEventRepository().Append(ctx, event); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
