// Package orderrepo maps order aggregates to the records held by the in-memory store
// and implements ports.OrderRepository on top of a store transaction.
package orderrepo

import (
	"pizzashop/internal/core/domain/model/discount"
	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// Record is the stored form of an order. Items are shared with the aggregate
// they came from; priced items are never mutated once they are on an order.
type Record struct {
	ID       uuid.UUID
	Items    []pricing.Item
	Discount discount.Kind
	Phase    order.Phase
}

// FromDomain converts an order aggregate to its stored representation.
func FromDomain(aggregate *order.Order) Record {
	return Record{
		ID:       aggregate.ID().Bytes(),
		Items:    aggregate.Items(),
		Discount: aggregate.Discount().Kind(),
		Phase:    aggregate.Phase(),
	}
}

// ToDomain rebuilds the aggregate through order.RestoreOrder. random drives
// the restored order's fulfillment draws.
func ToDomain(record Record, random kernel.Randomizer) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(record.ID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, record.Items, record.Discount, record.Phase, random)
}
