package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRecordFailedAttemptCommandIsNotConstructed = errors.New(
	"RecordFailedAttemptCommand must be created via NewRecordFailedAttemptCommand constructor",
)

// RecordFailedAttemptCommand represents a failed delivery attempt reported by
// the shipping partner. Remarks are optional.
type RecordFailedAttemptCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	reasonCode string
	remarks    *string

	guard guard.ConstructorGuard
}

// NewRecordFailedAttemptCommand creates a command to record one failed
// delivery attempt.
func NewRecordFailedAttemptCommand(shipmentID kernel.UUID, reasonCode string, remarks *string) (RecordFailedAttemptCommand, error) {
	command := RecordFailedAttemptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setReasonCode(reasonCode),
	); err != nil {
		return RecordFailedAttemptCommand{}, err
	}

	command.remarks = remarks
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordFailedAttemptCommand) Validate() error {
	return c.guard.Validate(ErrRecordFailedAttemptCommandIsNotConstructed)
}

// ShipmentID returns the shipment whose delivery failed.
func (c RecordFailedAttemptCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ReasonCode returns the partner-supplied failure reason.
func (c RecordFailedAttemptCommand) ReasonCode() string {
	return c.reasonCode
}

// Remarks returns the optional free-text remarks.
func (c RecordFailedAttemptCommand) Remarks() *string {
	return c.remarks
}

func (c *RecordFailedAttemptCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *RecordFailedAttemptCommand) setReasonCode(reasonCode string) error {
	if reasonCode == "" {
		return errs.NewValueIsRequiredError("reasonCode")
	}

	c.reasonCode = reasonCode
	return nil
}
