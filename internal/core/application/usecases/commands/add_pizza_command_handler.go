package commands

import (
	"context"

	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/domain/model/pricing"
)

// AddPizzaCommandHandler builds a pizza from the recipe book and adds it to an order.
type AddPizzaCommandHandler struct {
	uowFactory OrderUoWFactory
	recipes    RecipeBook
}

func NewAddPizzaCommandHandler(uowFactory OrderUoWFactory, recipes RecipeBook) AddPizzaCommandHandler {
	return AddPizzaCommandHandler{
		uowFactory: uowFactory,
		recipes:    recipes,
	}
}

// Handle builds the pizza before opening the transaction, so an unknown recipe
// never touches the order.
func (h *AddPizzaCommandHandler) Handle(ctx context.Context, cmd AddPizzaCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	base, err := h.recipes.Build(cmd.Recipe())
	if err != nil {
		return err
	}

	pizza, err := pricing.Decorate(base, cmd.Surcharges()...)
	if err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.AddItem(pizza)
	})
}
