package commands

import (
	"context"
	"strings"

	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/domain/model/pricing"
)

// AddCustomPizzaCommandHandler assembles a customer pizza and adds it to an order.
type AddCustomPizzaCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAddCustomPizzaCommandHandler(uowFactory OrderUoWFactory) AddCustomPizzaCommandHandler {
	return AddCustomPizzaCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *AddCustomPizzaCommandHandler) Handle(ctx context.Context, cmd AddCustomPizzaCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	base := pricing.NewGroup(cmd.Name())
	for _, t := range cmd.Toppings() {
		if err := base.Add(pricing.NewTopping(t.Price, strings.TrimSpace(t.Name))); err != nil {
			return err
		}
	}

	pizza, err := pricing.Decorate(base, cmd.Surcharges()...)
	if err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.AddItem(pizza)
	})
}
