package queries_test

import (
	"context"
	"errors"
	"testing"

	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type fixture struct {
	aggregate *order.Order
	customer  kernel.Actor
	fulfiller kernel.Actor
	admin     kernel.Actor
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	customer, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	require.NoError(t, err)
	fulfiller, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleFulfiller)
	require.NoError(t, err)
	admin, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdmin)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), "ORD-4001",
		customer.ID(), fulfiller.ID(),
		"waistcoat", "made_to_measure", 2,
		kernel.NewMoney(15000), kernel.NewMoney(4000), kernel.NewMoney(0), kernel.NewMoney(1000),
	)
	require.NoError(t, err)
	require.NoError(t, aggregate.UpdateEmergencyContact(customer, order.EmergencyContact{
		Name: "Ada", Phone: "+44 20 7946 0001", Relation: "sibling",
	}))

	return fixture{aggregate: aggregate, customer: customer, fulfiller: fulfiller, admin: admin}
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	t.Run("should return the full view to the customer", func(t *testing.T) {
		fx := newFixture(t)
		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, fx.aggregate.ID()).Return(fx.aggregate, nil).Once()
		h := queries.NewGetOrderQueryHandler(repo)
		q, err := queries.NewGetOrderQuery(fx.aggregate.ID(), fx.customer)
		require.NoError(t, err)

		resp, err := h.Handle(t.Context(), q)

		require.NoError(t, err)
		assert.Equal(t, "ORD-4001", resp.OrderNumber)
		assert.Equal(t, "pending", resp.Status)
		// 15000*2 + 4000 - 1000
		assert.Equal(t, int64(33000), resp.TotalPriceCents)
		require.NotNil(t, resp.EmergencyContact)
		assert.Equal(t, "Ada", resp.EmergencyContact.Name)
		require.Len(t, resp.Timeline, 1)
		assert.Equal(t, "pending", resp.Timeline[0].Step)
	})

	t.Run("should redact the emergency contact from the fulfiller", func(t *testing.T) {
		fx := newFixture(t)
		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, fx.aggregate.ID()).Return(fx.aggregate, nil).Once()
		h := queries.NewGetOrderQueryHandler(repo)
		q, err := queries.NewGetOrderQuery(fx.aggregate.ID(), fx.fulfiller)
		require.NoError(t, err)

		resp, err := h.Handle(t.Context(), q)

		require.NoError(t, err)
		assert.Nil(t, resp.EmergencyContact)
		assert.Equal(t, "ORD-4001", resp.OrderNumber)
	})

	t.Run("should give admins the full view", func(t *testing.T) {
		fx := newFixture(t)
		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, fx.aggregate.ID()).Return(fx.aggregate, nil).Once()
		h := queries.NewGetOrderQueryHandler(repo)
		q, err := queries.NewGetOrderQuery(fx.aggregate.ID(), fx.admin)
		require.NoError(t, err)

		resp, err := h.Handle(t.Context(), q)

		require.NoError(t, err)
		assert.NotNil(t, resp.EmergencyContact)
	})

	t.Run("should refuse a party of another order", func(t *testing.T) {
		fx := newFixture(t)
		stranger, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
		require.NoError(t, err)
		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, fx.aggregate.ID()).Return(fx.aggregate, nil).Once()
		h := queries.NewGetOrderQueryHandler(repo)
		q, err := queries.NewGetOrderQuery(fx.aggregate.ID(), stranger)
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), q)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrUnauthorized))
	})

	t.Run("should propagate not found", func(t *testing.T) {
		fx := newFixture(t)
		missing := kernel.NewUUID()
		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, missing).
			Return(nil, errs.NewObjectNotFoundError("order id", missing.String())).Once()
		h := queries.NewGetOrderQueryHandler(repo)
		q, err := queries.NewGetOrderQuery(missing, fx.customer)
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), q)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	})

	t.Run("should reject an unconstructed query", func(t *testing.T) {
		h := queries.NewGetOrderQueryHandler(new(MockOrderRepository))

		_, err := h.Handle(t.Context(), queries.GetOrderQuery{})

		require.Error(t, err)
	})
}
