package commands

import (
	"context"

	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/domain/services"
)

// ApplySuggestedDiscountCommandHandler asks the discount advisor for the best
// policy and applies it to the order.
type ApplySuggestedDiscountCommandHandler struct {
	uowFactory OrderUoWFactory
	advisor    services.DiscountAdvisor
}

func NewApplySuggestedDiscountCommandHandler(
	uowFactory OrderUoWFactory,
	advisor services.DiscountAdvisor,
) ApplySuggestedDiscountCommandHandler {
	return ApplySuggestedDiscountCommandHandler{
		uowFactory: uowFactory,
		advisor:    advisor,
	}
}

func (h *ApplySuggestedDiscountCommandHandler) Handle(ctx context.Context, cmd ApplySuggestedDiscountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		policy, err := h.advisor.Suggest(o)
		if err != nil {
			return err
		}
		return o.SetDiscount(policy)
	})
}
