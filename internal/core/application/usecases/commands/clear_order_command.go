package commands

import (
	"errors"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/pkg/guard"
)

var (
	ErrClearOrderCommandIsNotConstructed = errors.New(
		"ClearOrderCommand must be created via NewClearOrderCommand constructor",
	)
)

// ClearOrderCommand empties an order and resets its discount and phase.
type ClearOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewClearOrderCommand(orderID kernel.UUID) (ClearOrderCommand, error) {
	cmd := ClearOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ClearOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearOrderCommand) Validate() error {
	return c.guard.Validate(ErrClearOrderCommandIsNotConstructed)
}

func (c ClearOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ClearOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
