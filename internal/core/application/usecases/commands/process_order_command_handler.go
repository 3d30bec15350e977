package commands

import (
	"context"

	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/ports"
)

// ProcessOrderCommandHandler moves an order to its next fulfillment phase.
// Preparing orders may fall back to Pending; Ready orders stay Ready.
//
// Example:
//
//	handler := NewProcessOrderCommandHandler(uowFactory, observer)
//	cmd, _ := NewProcessOrderCommand(orderID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("processing failed: %w", err)
//	}
type ProcessOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	observer   ports.PhaseObserver
}

// NewProcessOrderCommandHandler creates the handler. observer is told about the
// transition once it is committed and may be nil.
func NewProcessOrderCommandHandler(uowFactory OrderUoWFactory, observer ports.PhaseObserver) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{
		uowFactory: uowFactory,
		observer:   observer,
	}
}

func (h *ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var from, to order.Phase
	err := updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		from = o.Phase()

		next, err := o.Process()
		if err != nil {
			return err
		}

		to = next
		return nil
	})
	if err != nil {
		return err
	}

	if h.observer != nil {
		h.observer.PhaseChanged(ctx, cmd.OrderID(), from, to)
	}
	return nil
}
