package orderrepo_test

import (
	"context"
	"testing"

	"pizzashop/internal/adapters/out/memory"
	"pizzashop/internal/adapters/out/memory/orderrepo"
	"pizzashop/internal/core/domain/model/discount"
	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/domain/model/pricing"
	"pizzashop/internal/core/ports"
	"pizzashop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type OrderRepositoryTestSuite struct {
	suite.Suite
	ctx        context.Context
	uow        ports.UnitOfWork
	repository ports.OrderRepository
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	store, err := memory.NewStore(kernel.NewLockedRandomizer(kernel.NewRandomizer(21)))
	suite.Require().NoError(err)

	suite.ctx = context.Background()
	suite.uow = memory.NewUnitOfWorkFactory(store).Create()
	suite.Require().NoError(suite.uow.Begin(suite.ctx))
	suite.repository = suite.uow.OrderRepository()
}

func (suite *OrderRepositoryTestSuite) TearDownTest() {
	_ = suite.uow.Rollback(suite.ctx)
}

func (suite *OrderRepositoryTestSuite) createTestOrder(phase order.Phase) *order.Order {
	group := pricing.NewGroup("Pepperoni Pizza")
	suite.Require().NoError(group.Add(pricing.NewTopping(10, "Dough")))
	suite.Require().NoError(group.Add(pricing.NewTopping(40, "Pepperoni")))
	withCheese, err := pricing.NewExtraCheese(group)
	suite.Require().NoError(err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		[]pricing.Item{withCheese},
		discount.Bulk,
		phase,
		kernel.NewRandomizer(1),
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryTestSuite) TestAdd_RoundTripsEveryField() {
	o := suite.createTestOrder(order.Preparing)

	suite.Require().NoError(suite.repository.Add(suite.ctx, o))

	loaded, err := suite.repository.Get(suite.ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(o))
	suite.Equal(order.Preparing, loaded.Phase())
	suite.Equal(discount.Bulk, loaded.Discount().Kind())
	suite.Equal(o.Summary(), loaded.Summary())
}

func (suite *OrderRepositoryTestSuite) TestAdd_Duplicate() {
	o := suite.createTestOrder(order.Started)
	suite.Require().NoError(suite.repository.Add(suite.ctx, o))

	err := suite.repository.Add(suite.ctx, o)

	suite.Require().ErrorIs(err, orderrepo.ErrOrderAlreadyExists)
}

func (suite *OrderRepositoryTestSuite) TestAdd_UnconstructedOrder() {
	err := suite.repository.Add(suite.ctx, &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
}

func (suite *OrderRepositoryTestSuite) TestUpdate_MissingOrder() {
	err := suite.repository.Update(suite.ctx, suite.createTestOrder(order.Started))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestGet_MissingOrder() {
	_, err := suite.repository.Get(suite.ctx, kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestGet_InvalidID() {
	_, err := suite.repository.Get(suite.ctx, kernel.UUID{})

	suite.Require().ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
}

func (suite *OrderRepositoryTestSuite) TestGet_CancelledContext() {
	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().ErrorIs(err, context.Canceled)
}

func (suite *OrderRepositoryTestSuite) TestGetAllUnready_SkipsReadyInPlacementOrder() {
	first := suite.createTestOrder(order.Started)
	ready := suite.createTestOrder(order.Ready)
	second := suite.createTestOrder(order.Preparing)
	for _, o := range []*order.Order{first, ready, second} {
		suite.Require().NoError(suite.repository.Add(suite.ctx, o))
	}

	unready, err := suite.repository.GetAllUnready(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(unready, 2)
	suite.True(unready[0].IsEqual(first))
	suite.True(unready[1].IsEqual(second))
}

func (suite *OrderRepositoryTestSuite) TestGetAllUnready_Empty() {
	unready, err := suite.repository.GetAllUnready(suite.ctx)

	suite.Require().NoError(err)
	suite.Empty(unready)
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}
