package commands

import (
	"context"

	"pizzashop/internal/core/domain/model/order"
)

// ClearOrderCommandHandler releases every item of an order and returns it to
// regular pricing in the Started phase.
type ClearOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewClearOrderCommandHandler(uowFactory OrderUoWFactory) ClearOrderCommandHandler {
	return ClearOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ClearOrderCommandHandler) Handle(ctx context.Context, cmd ClearOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		o.Clear()
		return nil
	})
}
