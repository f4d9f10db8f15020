package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/ndr"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

// LogNDRContactCommandHandler records customer contact attempts on open NDR
// reports. Every attempt appends an immutable call log; only a connected call
// mutates the report, and only a reattempt booking or a cancellation request
// moves the shipment.
type LogNDRContactCommandHandler struct {
	uowFactory NDRUoWFactory
}

// NewLogNDRContactCommandHandler creates a handler for contact attempt
// logging. Requires an NDRUoWFactory for transactional persistence.
func NewLogNDRContactCommandHandler(uowFactory NDRUoWFactory) LogNDRContactCommandHandler {
	return LogNDRContactCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one contact attempt. The shipment must still sit in NDR
// status; a concurrent resolution surfaces as errs.VersionIsInvalidError so
// the caller can reload instead of silently overwriting newer state.
func (h LogNDRContactCommandHandler) Handle(ctx context.Context, cmd LogNDRContactCommand) error {
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
	callLog, err := ndr.NewCallLog(
		kernel.NewUUID(),
		report.ID(),
		cmd.CallStatus(),
		cmd.CallOutcome(),
		cmd.CustomerResponse(),
		cmd.NewAddress(),
		cmd.NewPhone(),
		cmd.PreferredDate(),
		cmd.PreferredSlot(),
		cmd.Metadata(),
		now,
	)
	if err != nil {
		return err
	}
	if err = ndrRepo.AppendCallLog(ctx, callLog); err != nil {
		return err
	}

	if cmd.CallStatus() == ndr.CallConnected {
		if err = h.applyConnectedCall(ctx, uow, report, aggregate, cmd, now); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// applyConnectedCall applies the customer's wishes: contact fields always,
// then either a reattempt window or an escalation to return-to-origin.
func (h LogNDRContactCommandHandler) applyConnectedCall(
	ctx context.Context,
	uow NDRUoW,
	report *ndr.Report,
	aggregate *shipment.Shipment,
	cmd LogNDRContactCommand,
	now time.Time,
) error {
	if err := report.RegisterContact(cmd.CallStatus(), now, cmd.NewAddress(), cmd.NewPincode(), cmd.NewPhone()); err != nil {
		return err
	}

	var (
		targetStatus shipment.Status
		statusText   string
	)
	switch {
	case cmd.CallOutcome() == ndr.OutcomeCancelRequested:
		if err := report.InitiateRTO(); err != nil {
			return err
		}
		targetStatus = shipment.RTOInitiated
		statusText = "customer requested cancellation, initiating return"
	case cmd.PreferredDate() != nil:
		slot := ""
		if cmd.PreferredSlot() != nil {
			slot = *cmd.PreferredSlot()
		}
		if err := report.ScheduleReattempt(*cmd.PreferredDate(), slot); err != nil {
			return err
		}
		targetStatus = shipment.OutForDelivery
		statusText = "reattempt scheduled after customer contact"
	}

	if err := uow.NDRRepository().Update(ctx, report); err != nil {
		return err
	}
	if targetStatus == shipment.Unknown {
		return nil
	}

	previousStatus := aggregate.Status()
	if err := aggregate.TransitionTo(targetStatus, shipment.RoleSystem); err != nil {
		return err
	}
	if err := uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := shipment.NewStatusEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		previousStatus,
		targetStatus,
		shipment.RoleSystem,
		"ndr-workflow",
		statusText,
		nil,
		nil,
		map[string]string{"ndrReportId": report.ID().String()},
		now,
	)
	if err != nil {
		return err
	}
	return uow.StatusEventRepository().Append(ctx, event)
}
