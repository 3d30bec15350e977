// Package ports defines the contracts between the pizza shop core and its adapters.
// Repositories and observers are implemented in internal/adapters.
package ports

import (
	"context"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no order has that identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUnready retrieves every order that has not reached the Ready phase,
	// in the order they were placed.
	GetAllUnready(ctx context.Context) ([]*order.Order, error)
}

// OrderReader gives queries read-only access to committed orders.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
