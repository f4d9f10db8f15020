package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/ndr"
	"logistics/internal/pkg/guard"
)

var ErrResolveNDRCommandIsNotConstructed = errors.New(
	"ResolveNDRCommand must be created via NewResolveNDRCommand constructor",
)

// ResolveNDRCommand represents a request to close an open NDR report with a
// final resolution.
type ResolveNDRCommand struct { //nolint:recvcheck //using for validation
	reportID       kernel.UUID
	resolutionType ndr.ResolutionType

	guard guard.ConstructorGuard
}

// NewResolveNDRCommand creates a command to resolve an NDR report.
func NewResolveNDRCommand(reportID kernel.UUID, resolutionType ndr.ResolutionType) (ResolveNDRCommand, error) {
	command := ResolveNDRCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setReportID(reportID),
		command.setResolutionType(resolutionType),
	); err != nil {
		return ResolveNDRCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveNDRCommand) Validate() error {
	return c.guard.Validate(ErrResolveNDRCommandIsNotConstructed)
}

// ReportID returns the report to resolve.
func (c ResolveNDRCommand) ReportID() kernel.UUID {
	return c.reportID
}

// ResolutionType returns how the exception ended.
func (c ResolveNDRCommand) ResolutionType() ndr.ResolutionType {
	return c.resolutionType
}

func (c *ResolveNDRCommand) setReportID(reportID kernel.UUID) error {
	if err := reportID.Validate(); err != nil {
		return err
	}

	c.reportID = reportID
	return nil
}

func (c *ResolveNDRCommand) setResolutionType(resolutionType ndr.ResolutionType) error {
	if err := resolutionType.Validate(); err != nil {
		return err
	}

	c.resolutionType = resolutionType
	return nil
}
