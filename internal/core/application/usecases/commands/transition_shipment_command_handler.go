package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// TransitionShipmentCommandHandler drives validated lifecycle transitions.
// The status change and its audit event land in the same transaction: a
// transition is never recorded without the status change, or vice versa.
type TransitionShipmentCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewTransitionShipmentCommandHandler creates a handler for lifecycle transitions.
// Requires a LifecycleUoWFactory for transactional persistence.
func NewTransitionShipmentCommandHandler(uowFactory LifecycleUoWFactory) TransitionShipmentCommandHandler {
	return TransitionShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one transition request. An AWB carried by the command is
// applied before validation so the in-motion AWB invariant can pass in the
// same call that dispatches the shipment. The aggregate enforces role gating
// and table legality; the handler only orchestrates persistence.
func (h TransitionShipmentCommandHandler) Handle(ctx context.Context, cmd TransitionShipmentCommand) error {
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

	if awb := cmd.AWBNumber(); awb != nil {
		if current := aggregate.AWBNumber(); current == nil || *current != *awb {
			if err = aggregate.AssignAWB(*awb); err != nil {
				return err
			}
		}
	}

	previousStatus := aggregate.Status()
	if err = aggregate.TransitionTo(cmd.NewStatus(), cmd.ActorRole()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := shipment.NewStatusEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		previousStatus,
		cmd.NewStatus(),
		cmd.ActorRole(),
		cmd.SourceRef(),
		cmd.StatusText(),
		cmd.Location(),
		cmd.Remarks(),
		cmd.Metadata(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.StatusEventRepository().Append(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
