package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"
)

var ErrAssignPartnerCommandIsNotConstructed = errors.New(
	"AssignPartnerCommand must be created via NewAssignPartnerCommand constructor",
)

// AssignPartnerCommand represents a request to pick and assign the best
// shipping partner for a confirmed shipment. Weights are optional; when nil
// the default cost-heavy weighting applies.
type AssignPartnerCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	weights    services.SelectionWeights

	guard guard.ConstructorGuard
}

// NewAssignPartnerCommand creates a command to run partner selection for a
// shipment. Pass nil weights to use the defaults.
func NewAssignPartnerCommand(shipmentID kernel.UUID, weights *services.SelectionWeights) (AssignPartnerCommand, error) {
	command := AssignPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setShipmentID(shipmentID); err != nil {
		return AssignPartnerCommand{}, err
	}

	if weights == nil {
		command.weights = services.DefaultSelectionWeights()
	} else {
		if err := weights.Validate(); err != nil {
			return AssignPartnerCommand{}, err
		}
		command.weights = *weights
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartnerCommandIsNotConstructed)
}

// ShipmentID returns the shipment to assign a partner to.
func (c AssignPartnerCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Weights returns the scoring axis weights for this selection.
func (c AssignPartnerCommand) Weights() services.SelectionWeights {
	return c.weights
}

func (c *AssignPartnerCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
