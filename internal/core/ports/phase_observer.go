package ports

import (
	"context"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
)

// PhaseObserver is told about every committed phase change.
// Implementations must be safe for concurrent use and must not block.
type PhaseObserver interface {
	PhaseChanged(ctx context.Context, orderID kernel.UUID, from, to order.Phase)
}

// PhaseObservers fans a change out to several observers.
type PhaseObservers []PhaseObserver

func (o PhaseObservers) PhaseChanged(ctx context.Context, orderID kernel.UUID, from, to order.Phase) {
	for _, observer := range o {
		observer.PhaseChanged(ctx, orderID, from, to)
	}
}
