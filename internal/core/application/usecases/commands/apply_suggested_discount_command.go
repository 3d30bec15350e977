package commands

import (
	"errors"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/pkg/guard"
)

var (
	ErrApplySuggestedDiscountCommandIsNotConstructed = errors.New(
		"ApplySuggestedDiscountCommand must be created via NewApplySuggestedDiscountCommand constructor",
	)
)

// ApplySuggestedDiscountCommand sets the discount policy the order qualifies for by pizza count.
type ApplySuggestedDiscountCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewApplySuggestedDiscountCommand(orderID kernel.UUID) (ApplySuggestedDiscountCommand, error) {
	cmd := ApplySuggestedDiscountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ApplySuggestedDiscountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplySuggestedDiscountCommand) Validate() error {
	return c.guard.Validate(ErrApplySuggestedDiscountCommandIsNotConstructed)
}

func (c ApplySuggestedDiscountCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ApplySuggestedDiscountCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
