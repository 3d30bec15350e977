package commands

import (
	"errors"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/pkg/guard"
)

var (
	ErrProcessOrderCommandIsNotConstructed = errors.New(
		"ProcessOrderCommand must be created via NewProcessOrderCommand constructor",
	)
)

// ProcessOrderCommand advances one order by a single fulfillment phase.
type ProcessOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewProcessOrderCommand(orderID kernel.UUID) (ProcessOrderCommand, error) {
	cmd := ProcessOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ProcessOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderCommandIsNotConstructed)
}

func (c ProcessOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ProcessOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
