// Package memory provides an in-process implementation of the Unit of Work pattern
// for order aggregates.
//
// A Store holds committed order records. Units of work created by a
// UnitOfWorkFactory stage their writes and publish them on Commit. Only one unit
// of work is active per store at a time: Begin waits until the previous one has
// committed or rolled back, so read-modify-write sequences on an order never
// interleave.
//
// Usage:
//
//	store, _ := memory.NewStore(kernel.NewLockedRandomizer(kernel.NewRandomizer(0)))
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"sync"

	"pizzashop/internal/adapters/out/memory/orderrepo"
	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/pkg/errs"

	"github.com/google/uuid"
)

// Store keeps committed order records in placement order.
type Store struct {
	// writer is held by the active unit of work
	writer chan struct{}

	mu       sync.RWMutex
	records  map[uuid.UUID]orderrepo.Record
	sequence []uuid.UUID

	random kernel.Randomizer
}

// NewStore creates an empty store. random is handed to every order the store
// restores and must be safe for concurrent use.
func NewStore(random kernel.Randomizer) (*Store, error) {
	if random == nil {
		return nil, errs.NewValueIsRequiredError("randomizer")
	}

	return &Store{
		writer:  make(chan struct{}, 1),
		records: make(map[uuid.UUID]orderrepo.Record),
		random:  random,
	}, nil
}

// Get returns the committed state of an order. Writes staged by an active unit
// of work are not visible.
func (s *Store) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	record, found := s.find(id.Bytes())
	if !found {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return orderrepo.ToDomain(record, s.random)
}

// Len returns the number of committed orders.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.writer <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.writer
}

func (s *Store) find(id uuid.UUID) (orderrepo.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, found := s.records[id]
	return record, found
}

func (s *Store) snapshot() []orderrepo.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]orderrepo.Record, 0, len(s.sequence))
	for _, id := range s.sequence {
		records = append(records, s.records[id])
	}
	return records
}

func (s *Store) apply(staged map[uuid.UUID]orderrepo.Record, added []uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sequence = append(s.sequence, added...)
	for id, record := range staged {
		s.records[id] = record
	}
}
