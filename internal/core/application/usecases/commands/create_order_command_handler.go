package commands

import (
	"context"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
)

// CreateOrderCommandHandler opens new orders in the Started phase with regular pricing.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	random     kernel.Randomizer
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// random is handed to every new order and must be safe for concurrent use.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, random kernel.Randomizer) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		random:     random,
	}
}

// Handle creates the order and persists it in a single transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), h.random)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
