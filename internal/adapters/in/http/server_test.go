package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "atelier/internal/adapters/in/http"
	"atelier/internal/adapters/out/kafka"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderRepository keeps aggregates in memory so the full HTTP stack can be
// exercised without a database.
type fakeOrderRepository struct {
	orders map[kernel.UUID]*order.Order
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{orders: make(map[kernel.UUID]*order.Order)}
}

func (r *fakeOrderRepository) Add(_ context.Context, o *order.Order) error {
	r.orders[o.ID()] = o
	return nil
}

func (r *fakeOrderRepository) Update(_ context.Context, o *order.Order) error {
	if _, ok := r.orders[o.ID()]; !ok {
		return errs.NewObjectNotFoundError("order id", o.ID().String())
	}
	r.orders[o.ID()] = o
	return nil
}

func (r *fakeOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order id", id.String())
	}
	return o, nil
}

type fakeOrderUoW struct {
	repo *fakeOrderRepository
}

func (u *fakeOrderUoW) Begin(context.Context) error            { return nil }
func (u *fakeOrderUoW) Commit(context.Context) error           { return nil }
func (u *fakeOrderUoW) Rollback(context.Context) error         { return nil }
func (u *fakeOrderUoW) OrderRepository() ports.OrderRepository { return u.repo }

type fakeOrderUoWFactory struct {
	repo *fakeOrderRepository
}

func (f *fakeOrderUoWFactory) Create() commands.OrderUoW { return &fakeOrderUoW{repo: f.repo} }

type testAPI struct {
	echo      *echo.Echo
	repo      *fakeOrderRepository
	customer  kernel.Actor
	fulfiller kernel.Actor
}

func newTestAPI(t *testing.T) testAPI {
	t.Helper()

	repo := newFakeOrderRepository()
	factory := &fakeOrderUoWFactory{repo: repo}
	publisher := kafka.NopOrderEventPublisher{}

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:            commands.NewCreateOrderCommandHandler(factory, publisher),
		AdvanceStatus:          commands.NewAdvanceStatusCommandHandler(factory, publisher),
		UpdateConsultation:     commands.NewUpdateConsultationCommandHandler(factory),
		UpdateDelivery:         commands.NewUpdateDeliveryCommandHandler(factory),
		UpdateEmergencyContact: commands.NewUpdateEmergencyContactCommandHandler(factory),
		OpenRevision:           commands.NewOpenRevisionCommandHandler(factory, publisher),
		ReviewRevision:         commands.NewReviewRevisionCommandHandler(factory, publisher),
		AddMilestone:           commands.NewAddMilestoneCommandHandler(factory, publisher),
		MarkMilestonePaid:      commands.NewMarkMilestonePaidCommandHandler(factory, publisher),
		OpenDispute:            commands.NewOpenDisputeCommandHandler(factory, publisher),
		ResolveDispute:         commands.NewResolveDisputeCommandHandler(factory, publisher),
		RequestAlteration:      commands.NewRequestAlterationCommandHandler(factory, publisher),
		ReviewAlteration:       commands.NewReviewAlterationCommandHandler(factory, publisher),
		RequestRefund:          commands.NewRequestRefundCommandHandler(factory, publisher),
		ProcessRefund:          commands.NewProcessRefundCommandHandler(factory, publisher),
		GetOrder:               queries.NewGetOrderQueryHandler(repo),
	})

	e := echo.New()
	server.RegisterRoutes(e)

	customer, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	require.NoError(t, err)
	fulfiller, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleFulfiller)
	require.NoError(t, err)

	return testAPI{echo: e, repo: repo, customer: customer, fulfiller: fulfiller}
}

func (api testAPI) do(method, path string, actor *kernel.Actor, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if actor != nil {
		req.Header.Set(httpadapter.HeaderActorID, actor.ID().String())
		req.Header.Set(httpadapter.HeaderActorRole, actor.Role().String())
	}

	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)
	return rec
}

func (api testAPI) createOrder(t *testing.T) string {
	t.Helper()

	rec := api.do(http.MethodPost, "/api/v1/orders", &api.customer, httpadapter.CreateOrderRequest{
		OrderNumber:     "ORD-9001",
		CustomerID:      api.customer.ID().String(),
		FulfillerID:     api.fulfiller.ID().String(),
		Garment:         "overcoat",
		ServiceType:     "bespoke",
		Quantity:        1,
		BasePriceCents:  120000,
		FabricCostCents: 30000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created httpadapter.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created.ID
}

func TestServer_CreateAndGetOrder(t *testing.T) {
	api := newTestAPI(t)

	orderID := api.createOrder(t)

	rec := api.do(http.MethodGet, "/api/v1/orders/"+orderID, &api.customer, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp queries.GetOrderQueryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ORD-9001", resp.OrderNumber)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, int64(150000), resp.TotalPriceCents)
	require.Len(t, resp.Timeline, 1)
	assert.Equal(t, "pending", resp.Timeline[0].Step)
}

func TestServer_CreateOrder_InvalidBody(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/v1/orders", &api.customer, httpadapter.CreateOrderRequest{
		OrderNumber: "ORD-9002",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_MissingActorHeaders(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String(), nil, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_GetOrder_NotFound(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String(), &api.customer, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_AdvanceStatus(t *testing.T) {
	api := newTestAPI(t)
	orderID := api.createOrder(t)
	statusPath := fmt.Sprintf("/api/v1/orders/%s/status", orderID)

	t.Run("should advance to the next step for the fulfiller", func(t *testing.T) {
		rec := api.do(http.MethodPost, statusPath, &api.fulfiller,
			httpadapter.AdvanceStatusRequest{Target: "consultation_scheduled"})

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("should refuse an illegal transition with 422", func(t *testing.T) {
		rec := api.do(http.MethodPost, statusPath, &api.fulfiller,
			httpadapter.AdvanceStatusRequest{Target: "completed"})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("should refuse a customer advancing the workflow with 403", func(t *testing.T) {
		rec := api.do(http.MethodPost, statusPath, &api.customer,
			httpadapter.AdvanceStatusRequest{Target: "consultation_completed"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("should require a reason for cancellation", func(t *testing.T) {
		rec := api.do(http.MethodPost, statusPath, &api.customer,
			httpadapter.AdvanceStatusRequest{Target: "cancelled"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_MilestoneFlow(t *testing.T) {
	api := newTestAPI(t)
	orderID := api.createOrder(t)

	rec := api.do(http.MethodPost, fmt.Sprintf("/api/v1/orders/%s/milestones", orderID),
		&api.fulfiller, httpadapter.AddMilestoneRequest{
			Kind:          "deposit",
			AmountCents:   50000,
			DueDate:       mustParseTime(t, "2026-10-01T00:00:00Z"),
			PaymentMethod: "card",
		})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created httpadapter.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	payPath := fmt.Sprintf("/api/v1/orders/%s/milestones/%s/pay", orderID, created.ID)
	rec = api.do(http.MethodPost, payPath, &api.customer,
		httpadapter.PayMilestoneRequest{TransactionID: "tx-42"})
	require.Equal(t, http.StatusNoContent, rec.Code)

	// A second payment attempt must surface as a conflict.
	rec = api.do(http.MethodPost, payPath, &api.customer,
		httpadapter.PayMilestoneRequest{TransactionID: "tx-43"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/orders/"+orderID, &api.customer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp queries.GetOrderQueryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(50000), resp.TotalPaidCents)
}

func TestServer_PayMilestoneWithoutTransactionID(t *testing.T) {
	api := newTestAPI(t)
	orderID := api.createOrder(t)

	rec := api.do(http.MethodPost, fmt.Sprintf("/api/v1/orders/%s/milestones", orderID),
		&api.fulfiller, httpadapter.AddMilestoneRequest{
			Kind:          "deposit",
			AmountCents:   25000,
			DueDate:       mustParseTime(t, "2026-10-01T00:00:00Z"),
			PaymentMethod: "cash",
		})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created httpadapter.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Cash payments carry no transaction id; an empty body must still settle.
	payPath := fmt.Sprintf("/api/v1/orders/%s/milestones/%s/pay", orderID, created.ID)
	rec = api.do(http.MethodPost, payPath, &api.customer, httpadapter.PayMilestoneRequest{})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/orders/"+orderID, &api.customer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp queries.GetOrderQueryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(25000), resp.TotalPaidCents)
	require.Len(t, resp.Milestones, 1)
	assert.True(t, resp.Milestones[0].Paid)
	assert.Empty(t, resp.Milestones[0].TransactionID)
}

func TestServer_EmergencyContactRedaction(t *testing.T) {
	api := newTestAPI(t)
	orderID := api.createOrder(t)

	rec := api.do(http.MethodPut, fmt.Sprintf("/api/v1/orders/%s/emergency-contact", orderID),
		&api.customer, httpadapter.UpdateEmergencyContactRequest{
			Name: "Nadia", Phone: "+44 20 7946 0042", Relation: "spouse",
		})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/orders/"+orderID, &api.fulfiller, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp queries.GetOrderQueryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.EmergencyContact)

	rec = api.do(http.MethodGet, "/api/v1/orders/"+orderID, &api.customer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.EmergencyContact)
	assert.Equal(t, "Nadia", resp.EmergencyContact.Name)
}

func mustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestServer_Health(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
