package memory

import (
	"context"
	"errors"

	"pizzashop/internal/adapters/out/memory/orderrepo"
	"pizzashop/internal/core/ports"

	"github.com/google/uuid"
)

// ErrTransactionIsNotActive is returned when a unit of work is used outside Begin/Commit.
var ErrTransactionIsNotActive = errors.New("transaction is not active")

// UnitOfWorkFactory creates units of work over a shared Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for units of work bound to store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork. Each instance belongs to a single goroutine.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages order writes and publishes them to the store on Commit.
// It holds the store's writer slot from Begin until Commit or Rollback.
type UnitOfWork struct {
	store  *Store
	active bool
	staged map[uuid.UUID]orderrepo.Record
	added  []uuid.UUID
}

// Begin waits for the writer slot. Calling Begin on an active unit of work is a no-op.
// Returns ctx.Err() if ctx ends first.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}

	if err := uow.store.acquire(ctx); err != nil {
		return err
	}

	uow.active = true
	uow.staged = make(map[uuid.UUID]orderrepo.Record)
	uow.added = nil
	return nil
}

// Commit publishes every staged write and releases the writer slot.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrTransactionIsNotActive
	}

	uow.store.apply(uow.staged, uow.added)
	uow.finish()
	return nil
}

// Rollback discards staged writes and releases the writer slot.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrTransactionIsNotActive
	}

	uow.finish()
	return nil
}

// OrderRepository returns a repository bound to this unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewMemoryOrderRepository(uow, uow.store.random)
}

// Find returns the staged record if any, otherwise the committed one.
func (uow *UnitOfWork) Find(id uuid.UUID) (orderrepo.Record, bool, error) {
	if !uow.active {
		return orderrepo.Record{}, false, ErrTransactionIsNotActive
	}

	if record, found := uow.staged[id]; found {
		return record, true, nil
	}

	record, found := uow.store.find(id)
	return record, found, nil
}

// Save stages record. Records unknown to the store are appended on commit.
func (uow *UnitOfWork) Save(record orderrepo.Record) error {
	if !uow.active {
		return ErrTransactionIsNotActive
	}

	_, staged := uow.staged[record.ID]
	_, committed := uow.store.find(record.ID)
	if !staged && !committed {
		uow.added = append(uow.added, record.ID)
	}

	uow.staged[record.ID] = record
	return nil
}

// All returns committed records overlaid with staged ones, in placement order.
func (uow *UnitOfWork) All() ([]orderrepo.Record, error) {
	if !uow.active {
		return nil, ErrTransactionIsNotActive
	}

	records := uow.store.snapshot()
	for i, record := range records {
		if staged, found := uow.staged[record.ID]; found {
			records[i] = staged
		}
	}
	for _, id := range uow.added {
		records = append(records, uow.staged[id])
	}

	return records, nil
}

func (uow *UnitOfWork) finish() {
	uow.active = false
	uow.staged = nil
	uow.added = nil
	uow.store.release()
}
