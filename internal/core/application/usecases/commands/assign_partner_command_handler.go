package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// ErrNoPartnerServiceable is returned when no active partner covers the
// shipment's route with compatible COD terms.
var ErrNoPartnerServiceable = errors.New("no partner serviceable for route")

// AssignPartnerCommandHandler orchestrates partner selection for a shipment.
// Reads the serviceability index, runs the selection engine, assigns the
// recommended partner and transitions the shipment to PARTNER_ASSIGNED with
// one audit event, all in a single transaction.
type AssignPartnerCommandHandler struct {
	uowFactory     LifecycleUoWFactory
	serviceability ports.ServiceabilityProvider
	selector       services.PartnerSelector
}

// NewAssignPartnerCommandHandler creates a handler for partner assignment.
// Requires a LifecycleUoWFactory and a ServiceabilityProvider.
func NewAssignPartnerCommandHandler(
	uowFactory LifecycleUoWFactory,
	serviceability ports.ServiceabilityProvider,
) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory:     uowFactory,
		serviceability: serviceability,
		selector:       services.NewPartnerSelector(),
	}
}

// Handle processes the partner assignment command.
// Returns ErrNoPartnerServiceable when the selection engine finds no
// coverage; the shipment is left untouched in that case.
func (h AssignPartnerCommandHandler) Handle(ctx context.Context, cmd AssignPartnerCommand) error {
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

	isCOD := aggregate.PaymentMode() == shipment.COD
	entries, err := h.serviceability.GetServiceableEntries(
		ctx, aggregate.OriginPincode(), aggregate.DestinationPincode(), isCOD)
	if err != nil {
		return err
	}

	result, err := h.selector.Select(
		entries, aggregate.ChargeableWeight(), isCOD, aggregate.CODAmount(), cmd.Weights())
	if err != nil {
		return err
	}
	if result.Recommended == nil {
		return ErrNoPartnerServiceable
	}

	if err = aggregate.AssignTransporter(result.Recommended.PartnerID); err != nil {
		return err
	}

	previousStatus := aggregate.Status()
	if err = aggregate.TransitionTo(shipment.PartnerAssigned, shipment.RoleSystem); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := shipment.NewStatusEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		previousStatus,
		shipment.PartnerAssigned,
		shipment.RoleSystem,
		"partner-selection",
		fmt.Sprintf("partner %s assigned", result.Recommended.PartnerCode),
		nil,
		nil,
		map[string]string{
			"partnerCode": result.Recommended.PartnerCode,
			"rate":        strconv.FormatFloat(result.Recommended.Rate, 'f', 2, 64),
			"tatDays":     strconv.Itoa(result.Recommended.EstimatedTATDays),
		},
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
