package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrTransitionShipmentCommandIsNotConstructed = errors.New(
	"TransitionShipmentCommand must be created via NewTransitionShipmentCommand constructor",
)

// TransitionShipmentCommand represents a request to move a shipment to a new
// lifecycle status. statusText, location, remarks, awbNumber and metadata are
// optional; an AWB supplied here is applied to the shipment before the
// transition is validated.
type TransitionShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	newStatus  shipment.Status
	actorRole  shipment.Role
	sourceRef  string
	statusText string
	location   *string
	remarks    *string
	awbNumber  *string
	metadata   map[string]string

	guard guard.ConstructorGuard
}

// NewTransitionShipmentCommand creates a command to request one lifecycle
// transition. sourceRef identifies the concrete actor behind the role.
func NewTransitionShipmentCommand(
	shipmentID kernel.UUID,
	newStatus shipment.Status,
	actorRole shipment.Role,
	sourceRef string,
	statusText string,
	location *string,
	remarks *string,
	awbNumber *string,
	metadata map[string]string,
) (TransitionShipmentCommand, error) {
	command := TransitionShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setNewStatus(newStatus),
		command.setActorRole(actorRole),
		command.setAWBNumber(awbNumber),
	); err != nil {
		return TransitionShipmentCommand{}, err
	}

	command.sourceRef = sourceRef
	command.statusText = statusText
	command.location = location
	command.remarks = remarks

	if len(metadata) > 0 {
		command.metadata = make(map[string]string, len(metadata))
		for k, v := range metadata {
			command.metadata[k] = v
		}
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionShipmentCommand) Validate() error {
	return c.guard.Validate(ErrTransitionShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to transition.
func (c TransitionShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// NewStatus returns the requested target status.
func (c TransitionShipmentCommand) NewStatus() shipment.Status {
	return c.newStatus
}

// ActorRole returns the role of the requesting actor.
func (c TransitionShipmentCommand) ActorRole() shipment.Role {
	return c.actorRole
}

// SourceRef identifies the concrete actor behind ActorRole.
func (c TransitionShipmentCommand) SourceRef() string {
	return c.sourceRef
}

// StatusText returns the free-text description for the audit event.
func (c TransitionShipmentCommand) StatusText() string {
	return c.statusText
}

// Location returns the scan location, if any.
func (c TransitionShipmentCommand) Location() *string {
	return c.location
}

// Remarks returns operator remarks, if any.
func (c TransitionShipmentCommand) Remarks() *string {
	return c.remarks
}

// AWBNumber returns the airway bill to apply before the transition, if any.
func (c TransitionShipmentCommand) AWBNumber() *string {
	return c.awbNumber
}

// Metadata returns the structured audit detail for the event.
func (c TransitionShipmentCommand) Metadata() map[string]string {
	return c.metadata
}

func (c *TransitionShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *TransitionShipmentCommand) setNewStatus(newStatus shipment.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *TransitionShipmentCommand) setActorRole(actorRole shipment.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *TransitionShipmentCommand) setAWBNumber(awbNumber *string) error {
	if awbNumber != nil && *awbNumber == "" {
		return errs.NewValueIsRequiredError("awbNumber")
	}

	c.awbNumber = awbNumber
	return nil
}
