package commands_test

import (
	"errors"
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type aggregateFixture struct {
	aggregate *order.Order
	customer  kernel.Actor
	fulfiller kernel.Actor
}

func newAggregateFixture(t *testing.T) aggregateFixture {
	t.Helper()

	customer, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	require.NoError(t, err)
	fulfiller, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleFulfiller)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), "ORD-3001",
		customer.ID(), fulfiller.ID(),
		"overcoat", "bespoke", 1,
		kernel.NewMoney(120000), kernel.NewMoney(30000), kernel.NewMoney(0), kernel.NewMoney(0),
	)
	require.NoError(t, err)

	return aggregateFixture{aggregate: aggregate, customer: customer, fulfiller: fulfiller}
}

func TestAdvanceStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	fx := newAggregateFixture(t)
	cmd, err := commands.NewAdvanceStatusCommand(fx.aggregate.ID(), fx.fulfiller, order.ConsultationScheduled, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, fx.aggregate.ID()).Return(fx.aggregate, nil).Once(),
		repo.On("Update", mock.Anything, fx.aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, mock.MatchedBy(func(e ports.OrderChangedEvent) bool {
		return e.Step == "consultation_scheduled" && e.ActorRole == "fulfiller"
	})).Return(nil).Once()

	h := commands.NewAdvanceStatusCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.ConsultationScheduled, fx.aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAdvanceStatusCommandHandler_Handle_UnauthorizedSkipsUpdate(t *testing.T) {
	ctx := t.Context()
	fx := newAggregateFixture(t)
	cmd, err := commands.NewAdvanceStatusCommand(fx.aggregate.ID(), fx.customer, order.ConsultationScheduled, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, fx.aggregate.ID()).Return(fx.aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceStatusCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrUnauthorized))
	assert.Equal(t, order.Pending, fx.aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceStatusCommandHandler_Handle_GetNotFound(t *testing.T) {
	ctx := t.Context()
	fx := newAggregateFixture(t)
	cmd, err := commands.NewAdvanceStatusCommand(fx.aggregate.ID(), fx.fulfiller, order.ConsultationScheduled, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, fx.aggregate.ID()).
			Return(nil, errs.NewObjectNotFoundError("order id", fx.aggregate.ID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceStatusCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
}

func TestAdvanceStatusCommandHandler_Handle_ConflictFromUpdate(t *testing.T) {
	ctx := t.Context()
	fx := newAggregateFixture(t)
	cmd, err := commands.NewAdvanceStatusCommand(fx.aggregate.ID(), fx.fulfiller, order.ConsultationScheduled, "")
	require.NoError(t, err)

	conflict := errs.NewConflictError("order", fx.aggregate.ID().String(), fx.aggregate.Version())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, fx.aggregate.ID()).Return(fx.aggregate, nil).Once(),
		repo.On("Update", mock.Anything, fx.aggregate).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceStatusCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrConflict))
}
