package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/ndr"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

// ResolveNDRCommandHandler closes NDR reports. The report resolution and the
// matching shipment transition (NDR to DELIVERED or CANCELLED) always go
// through the state machine and land in one transaction, keeping the audit
// trail consistent with the report state.
type ResolveNDRCommandHandler struct {
	uowFactory NDRUoWFactory
}

// NewResolveNDRCommandHandler creates a handler for NDR resolution.
// Requires an NDRUoWFactory for transactional persistence.
func NewResolveNDRCommandHandler(uowFactory NDRUoWFactory) ResolveNDRCommandHandler {
	return ResolveNDRCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resolution. The shipment must still sit in NDR
// status; a concurrent resolution surfaces as errs.VersionIsInvalidError.
func (h ResolveNDRCommandHandler) Handle(ctx context.Context, cmd ResolveNDRCommand) error {
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

	ndrRepo := uow.NDRRepository()
	report, err := ndrRepo.Get(ctx, cmd.ReportID())
	if err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, report.ShipmentID())
	if err != nil {
		return err
	}
	if aggregate.Status() != shipment.NDR {
		return errs.NewVersionIsInvalidError("shipmentStatus",
			shipment.NewInvalidTransitionError(aggregate.Status(), shipment.NDR))
	}

	now := time.Now().UTC()
	if err = report.Resolve(cmd.ResolutionType(), now); err != nil {
		return err
	}
	if err = ndrRepo.Update(ctx, report); err != nil {
		return err
	}

	targetStatus := shipment.Delivered
	if cmd.ResolutionType() == ndr.ResolutionCancelled {
		targetStatus = shipment.Cancelled
	}

	previousStatus := aggregate.Status()
	if err = aggregate.TransitionTo(targetStatus, shipment.RoleSystem); err != nil {
		return err
	}
	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := shipment.NewStatusEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		previousStatus,
		targetStatus,
		shipment.RoleSystem,
		"ndr-workflow",
		"ndr resolved as "+cmd.ResolutionType().String(),
		nil,
		nil,
		map[string]string{"ndrReportId": report.ID().String()},
		now,
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
