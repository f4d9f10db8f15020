package commands

import (
	"errors"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrEscalateOverdueNDRsCommandIsNotConstructed = errors.New(
	"EscalateOverdueNDRsCommand must be created via NewEscalateOverdueNDRsCommand constructor",
)

// EscalateOverdueNDRsCommand represents a sweep over open NDR reports that
// were never contacted successfully and have aged past the deadline. Matching
// reports escalate to return-to-origin.
type EscalateOverdueNDRsCommand struct { //nolint:recvcheck //using for validation
	deadline time.Time

	guard guard.ConstructorGuard
}

// NewEscalateOverdueNDRsCommand creates a command to escalate reports opened
// before the given deadline.
func NewEscalateOverdueNDRsCommand(deadline time.Time) (EscalateOverdueNDRsCommand, error) {
	command := EscalateOverdueNDRsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDeadline(deadline); err != nil {
		return EscalateOverdueNDRsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c EscalateOverdueNDRsCommand) Validate() error {
	return c.guard.Validate(ErrEscalateOverdueNDRsCommandIsNotConstructed)
}

// Deadline returns the cutoff: reports opened before it are overdue.
func (c EscalateOverdueNDRsCommand) Deadline() time.Time {
	return c.deadline
}

func (c *EscalateOverdueNDRsCommand) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("deadline")
	}

	c.deadline = deadline
	return nil
}
