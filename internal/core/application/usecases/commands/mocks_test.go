package commands_test

import (
	"context"
	"testing"

	"pizzashop/internal/core/application/usecases/commands"
	"pizzashop/internal/core/domain/model/discount"
	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/domain/model/pricing"
	"pizzashop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllUnready(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if orders := args.Get(0); orders != nil {
		return orders.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPhaseObserver struct{ mock.Mock }

func (m *MockPhaseObserver) PhaseChanged(ctx context.Context, orderID kernel.UUID, from, to order.Phase) {
	m.Called(ctx, orderID, from, to)
}

type MockRecipeBook struct{ mock.Mock }

func (m *MockRecipeBook) Build(key string) (*pricing.Group, error) {
	args := m.Called(key)
	if g := args.Get(0); g != nil {
		return g.(*pricing.Group), args.Error(1)
	}
	return nil, args.Error(1)
}

// sequence is a deterministic draw source for fulfillment tests.
type sequence struct {
	draws []int
}

func (s *sequence) IntN(_ int) int {
	if len(s.draws) == 0 {
		return 99
	}
	next := s.draws[0]
	s.draws = s.draws[1:]
	return next
}

// newMocks wires a factory returning a unit of work that hands out repo.
func newMocks() (*MockOrderUoWFactory, *MockOrderUoW, *MockOrderRepository) {
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	return factory, uow, repo
}

func newOrder(t *testing.T, phase order.Phase, draws ...int) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(kernel.NewUUID(), nil, discount.Regular, phase, &sequence{draws: draws})
	require.NoError(t, err)
	return o
}
