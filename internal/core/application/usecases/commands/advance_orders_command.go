package commands

import (
	"errors"

	"pizzashop/internal/pkg/guard"
)

var (
	ErrAdvanceOrdersCommandIsNotConstructed = errors.New(
		"AdvanceOrdersCommand must be created via NewAdvanceOrdersCommand constructor",
	)
)

// AdvanceOrdersCommand moves every order that is not yet Ready by one phase.
// The kitchen job issues it on a schedule.
type AdvanceOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvanceOrdersCommand creates the parameterless command.
func NewAdvanceOrdersCommand() AdvanceOrdersCommand {
	return AdvanceOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AdvanceOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrdersCommandIsNotConstructed)
}
