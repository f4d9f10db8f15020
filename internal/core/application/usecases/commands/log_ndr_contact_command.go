package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/ndr"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrLogNDRContactCommandIsNotConstructed = errors.New(
	"LogNDRContactCommand must be created via NewLogNDRContactCommand constructor",
)

// LogNDRContactCommand represents one customer contact attempt on an open
// NDR report. callOutcome is optional and only meaningful for connected
// calls; the remaining detail fields are optional.
type LogNDRContactCommand struct { //nolint:recvcheck //using for validation
	reportID         kernel.UUID
	callStatus       ndr.CallStatus
	callOutcome      ndr.CallOutcome
	customerResponse *string
	newAddress       *string
	newPincode       *kernel.Pincode
	newPhone         *string
	preferredDate    *time.Time
	preferredSlot    *string
	metadata         map[string]string

	guard guard.ConstructorGuard
}

// NewLogNDRContactCommand creates a command to log one contact attempt.
// Pass ndr.CallOutcomeUnknown as the outcome for unconnected calls.
func NewLogNDRContactCommand(
	reportID kernel.UUID,
	callStatus ndr.CallStatus,
	callOutcome ndr.CallOutcome,
	customerResponse *string,
	newAddress *string,
	newPincode *kernel.Pincode,
	newPhone *string,
	preferredDate *time.Time,
	preferredSlot *string,
	metadata map[string]string,
) (LogNDRContactCommand, error) {
	command := LogNDRContactCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setReportID(reportID),
		command.setCall(callStatus, callOutcome),
		command.setNewPincode(newPincode),
	); err != nil {
		return LogNDRContactCommand{}, err
	}

	command.customerResponse = customerResponse
	command.newAddress = newAddress
	command.newPhone = newPhone
	command.preferredDate = preferredDate
	command.preferredSlot = preferredSlot

	if len(metadata) > 0 {
		command.metadata = make(map[string]string, len(metadata))
		for k, v := range metadata {
			command.metadata[k] = v
		}
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c LogNDRContactCommand) Validate() error {
	return c.guard.Validate(ErrLogNDRContactCommandIsNotConstructed)
}

// ReportID returns the report the attempt belongs to.
func (c LogNDRContactCommand) ReportID() kernel.UUID {
	return c.reportID
}

// CallStatus returns whether the attempt reached the customer.
func (c LogNDRContactCommand) CallStatus() ndr.CallStatus {
	return c.callStatus
}

// CallOutcome returns what a connected customer asked for.
func (c LogNDRContactCommand) CallOutcome() ndr.CallOutcome {
	return c.callOutcome
}

// CustomerResponse returns the free-text customer response, if any.
func (c LogNDRContactCommand) CustomerResponse() *string {
	return c.customerResponse
}

// NewAddress returns the corrected address supplied during the call, if any.
func (c LogNDRContactCommand) NewAddress() *string {
	return c.newAddress
}

// NewPincode returns the corrected destination pincode supplied during the
// call, if any.
func (c LogNDRContactCommand) NewPincode() *kernel.Pincode {
	return c.newPincode
}

// NewPhone returns the corrected phone supplied during the call, if any.
func (c LogNDRContactCommand) NewPhone() *string {
	return c.newPhone
}

// PreferredDate returns the requested reattempt date, if any.
func (c LogNDRContactCommand) PreferredDate() *time.Time {
	return c.preferredDate
}

// PreferredSlot returns the requested reattempt window, if any.
func (c LogNDRContactCommand) PreferredSlot() *string {
	return c.preferredSlot
}

// Metadata returns the structured call detail for the log entry.
func (c LogNDRContactCommand) Metadata() map[string]string {
	return c.metadata
}

func (c *LogNDRContactCommand) setReportID(reportID kernel.UUID) error {
	if err := reportID.Validate(); err != nil {
		return err
	}

	c.reportID = reportID
	return nil
}

func (c *LogNDRContactCommand) setNewPincode(newPincode *kernel.Pincode) error {
	if newPincode == nil {
		return nil
	}
	if err := newPincode.Validate(); err != nil {
		return err
	}

	c.newPincode = newPincode
	return nil
}

func (c *LogNDRContactCommand) setCall(callStatus ndr.CallStatus, callOutcome ndr.CallOutcome) error {
	if err := callStatus.Validate(); err != nil {
		return err
	}
	if callOutcome != ndr.CallOutcomeUnknown {
		if callStatus != ndr.CallConnected {
			return errs.NewValueIsInvalidError("callOutcome requires a connected call")
		}
		if err := callOutcome.Validate(); err != nil {
			return err
		}
	}

	c.callStatus = callStatus
	c.callOutcome = callOutcome
	return nil
}
