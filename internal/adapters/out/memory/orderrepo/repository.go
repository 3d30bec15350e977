package orderrepo

import (
	"context"
	"errors"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderAlreadyExists is returned by Add for an identifier that is already stored.
var ErrOrderAlreadyExists = errors.New("order already exists")

// RecordTx is the transactional view of the store the repository works on.
type RecordTx interface {
	// Find returns the record visible to the transaction.
	Find(id uuid.UUID) (Record, bool, error)

	// Save stages record for commit.
	Save(record Record) error

	// All returns every visible record in placement order.
	All() ([]Record, error)
}

// MemoryOrderRepository implements ports.OrderRepository over a RecordTx.
type MemoryOrderRepository struct {
	tx     RecordTx
	random kernel.Randomizer
}

// NewMemoryOrderRepository creates a repository bound to tx.
func NewMemoryOrderRepository(tx RecordTx, random kernel.Randomizer) *MemoryOrderRepository {
	return &MemoryOrderRepository{
		tx:     tx,
		random: random,
	}
}

// Add stages a new order.
func (r *MemoryOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	record := FromDomain(aggregate)
	_, found, err := r.tx.Find(record.ID)
	if err != nil {
		return err
	}
	if found {
		return ErrOrderAlreadyExists
	}

	return r.tx.Save(record)
}

// Update stages changes to an existing order.
func (r *MemoryOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	record := FromDomain(aggregate)
	_, found, err := r.tx.Find(record.ID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return r.tx.Save(record)
}

// Get retrieves an order by ID.
func (r *MemoryOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	record, found, err := r.tx.Find(id.Bytes())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return ToDomain(record, r.random)
}

// GetAllUnready retrieves every order that is not Ready, oldest first.
func (r *MemoryOrderRepository) GetAllUnready(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := r.tx.All()
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(records))
	for _, record := range records {
		if record.Phase == order.Ready {
			continue
		}

		o, restoreErr := ToDomain(record, r.random)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}
