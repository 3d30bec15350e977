// Package queries contains read operations over committed orders and the menu.
// Queries return read models shaped for the HTTP adapter and never mutate state.
package queries

import (
	"errors"

	"pizzashop/internal/core/domain/model/discount"
	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves the priced view of a single order.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order: %w", err)
//	}
//	fmt.Println(view.Summary)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the order with the given identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// OrderItemView is one root item of an order.
type OrderItemView struct {
	Name  string
	Price float64
}

// GetOrderQueryResponse is the read model of an order.
// Total is computed from the items at query time.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	Items         []OrderItemView
	ItemCount     int
	Subtotal      float64
	Discount      discount.Kind
	DiscountLabel string
	Total         float64
	Status        string
	Summary       string
}
