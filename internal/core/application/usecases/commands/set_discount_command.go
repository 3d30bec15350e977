package commands

import (
	"errors"

	"pizzashop/internal/core/domain/model/discount"
	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/pkg/guard"
)

var (
	ErrSetDiscountCommandIsNotConstructed = errors.New(
		"SetDiscountCommand must be created via NewSetDiscountCommand constructor",
	)
)

// SetDiscountCommand replaces the discount policy of an order.
type SetDiscountCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	kind    discount.Kind

	guard guard.ConstructorGuard
}

func NewSetDiscountCommand(orderID kernel.UUID, kind discount.Kind) (SetDiscountCommand, error) {
	cmd := SetDiscountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setKind(kind),
	); err != nil {
		return SetDiscountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDiscountCommand) Validate() error {
	return c.guard.Validate(ErrSetDiscountCommandIsNotConstructed)
}

func (c SetDiscountCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetDiscountCommand) Kind() discount.Kind {
	return c.kind
}

func (c *SetDiscountCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetDiscountCommand) setKind(kind discount.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}
