package commands

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

// CreateShipmentCommandHandler handles the business logic for shipment
// registration. Computes the chargeable weight from the supplied dimensions
// and persists the shipment in CREATED status.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	rates      services.RateCalculator
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		rates:      services.NewRateCalculator(),
	}
}

// Handle processes the shipment registration command.
// The chargeable weight is the greater of the actual weight and the
// volumetric weight derived from the dimensions.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	volumetricKg := 0.0
	if dims := cmd.Dimensions(); !dims.IsZero() {
		var err error
		volumetricKg, err = h.rates.VolumetricWeight(dims.LengthCm, dims.WidthCm, dims.HeightCm)
		if err != nil {
			return err
		}
	}

	chargeableWeight, err := h.rates.ChargeableWeight(cmd.WeightKg(), volumetricKg)
	if err != nil {
		return err
	}

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.OrderNumber(),
		cmd.OriginPincode(),
		cmd.DestinationPincode(),
		cmd.PaymentMode(),
		cmd.CODAmount(),
		cmd.WeightKg(),
		chargeableWeight,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
