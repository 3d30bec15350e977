package commands

import (
	"context"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/ports"
)

// AdvanceOrdersCommandHandler processes all unready orders in a single transaction.
//
// Example:
//
//	handler := NewAdvanceOrdersCommandHandler(uowFactory, observer)
//	cmd := NewAdvanceOrdersCommand()
//
//	// Typically called periodically by the kitchen job
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("kitchen round failed: %w", err)
//	}
type AdvanceOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	observer   ports.PhaseObserver
}

// NewAdvanceOrdersCommandHandler creates the handler. observer may be nil.
func NewAdvanceOrdersCommandHandler(uowFactory OrderUoWFactory, observer ports.PhaseObserver) AdvanceOrdersCommandHandler {
	return AdvanceOrdersCommandHandler{
		uowFactory: uowFactory,
		observer:   observer,
	}
}

type transition struct {
	orderID  kernel.UUID
	from, to order.Phase
}

// Handle advances each unready order once. Nothing is saved if any order fails.
func (h *AdvanceOrdersCommandHandler) Handle(ctx context.Context, cmd AdvanceOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAllUnready(ctx)
	if err != nil {
		return err
	}

	transitions := make([]transition, 0, len(orders))
	for _, o := range orders {
		from := o.Phase()

		to, processErr := o.Process()
		if processErr != nil {
			return processErr
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}

		transitions = append(transitions, transition{orderID: o.ID(), from: from, to: to})
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.observer != nil {
		for _, t := range transitions {
			h.observer.PhaseChanged(ctx, t.orderID, t.from, t.to)
		}
	}
	return nil
}
