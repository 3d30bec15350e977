package commands

import (
	"context"

	"pizzashop/internal/core/domain/model/discount"
	"pizzashop/internal/core/domain/model/order"
)

// SetDiscountCommandHandler switches an order to the requested discount policy.
// The new policy applies from the next total calculation.
type SetDiscountCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewSetDiscountCommandHandler(uowFactory OrderUoWFactory) SetDiscountCommandHandler {
	return SetDiscountCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *SetDiscountCommandHandler) Handle(ctx context.Context, cmd SetDiscountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	policy, err := discount.New(cmd.Kind())
	if err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.SetDiscount(policy)
	})
}
