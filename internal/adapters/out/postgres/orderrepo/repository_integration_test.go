package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"atelier/internal/adapters/out/postgres/orderrepo"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence behavior,
// including the optimistic concurrency guard.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository

	customer  kernel.Actor
	fulfiller kernel.Actor
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(orderrepo.MigrateSchema(db))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_timeline, revisions, payment_milestones, disputes, alteration_requests, refund_requests",
	).Error)

	suite.repository = orderrepo.NewGormOrderRepository(suite.db)

	customer, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	suite.Require().NoError(err)
	suite.customer = customer

	fulfiller, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleFulfiller)
	suite.Require().NoError(err)
	suite.fulfiller = fulfiller
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// createTestOrder creates a basic aggregate owned by the suite's parties.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), "ORD-7001",
		suite.customer.ID(), suite.fulfiller.ID(),
		"dinner jacket", "bespoke", 1,
		kernel.NewMoney(80000), kernel.NewMoney(22000), kernel.NewMoney(3000), kernel.NewMoney(5000),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	aggregate := suite.createTestOrder()

	err := suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAggregate() {
	ctx := context.Background()

	aggregate := suite.createTestOrder()
	suite.Require().NoError(aggregate.UpdateDelivery(suite.customer, order.DeliveryDetails{
		Address: "12 Savile Row", City: "London", PostalCode: "W1S 3PQ", Phone: "+44 20 7946 0123",
	}))
	suite.Require().NoError(aggregate.AddMilestone(
		suite.fulfiller, kernel.NewUUID(), order.MilestoneDeposit,
		kernel.NewMoney(25000), time.Now().UTC().AddDate(0, 0, 7), "card",
	))
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Equal(aggregate.ID(), retrieved.ID())
	suite.Equal("ORD-7001", retrieved.OrderNumber())
	suite.Equal(suite.customer.ID(), retrieved.CustomerID())
	suite.Equal(suite.fulfiller.ID(), retrieved.FulfillerID())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal(int64(100000), retrieved.TotalPrice().Cents())
	suite.Equal("London", retrieved.Delivery().City)
	suite.Equal(1, retrieved.Version())

	suite.Require().Len(retrieved.Milestones(), 1)
	suite.Equal(order.MilestoneDeposit, retrieved.Milestones()[0].Kind())
	suite.Equal(int64(25000), retrieved.Milestones()[0].Amount().Cents())
	suite.False(retrieved.Milestones()[0].Paid())

	timeline := retrieved.Timeline()
	suite.Require().Len(timeline, 2)
	suite.Equal("pending", timeline[0].Step())
	suite.Equal("milestone_added", timeline[1].Step())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MutatedAggregate_PersistsAndBumpsVersion() {
	ctx := context.Background()

	aggregate := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.AdvanceStatus(suite.fulfiller, order.ConsultationScheduled, ""))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ConsultationScheduled, retrieved.Status())
	suite.Equal(2, retrieved.Version())

	timeline := retrieved.Timeline()
	suite.Require().Len(timeline, 2)
	suite.Equal("pending", timeline[0].Step())
	suite.Equal("consultation_scheduled", timeline[1].Step())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ChildStatusTransition_Persists() {
	ctx := context.Background()

	aggregate := suite.createTestOrder()
	milestoneID := kernel.NewUUID()
	suite.Require().NoError(aggregate.AddMilestone(
		suite.fulfiller, milestoneID, order.MilestoneDeposit,
		kernel.NewMoney(25000), time.Now().UTC().AddDate(0, 0, 7), "card",
	))
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.MarkMilestonePaid(suite.customer, milestoneID, "tx-001"))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.Milestones(), 1)
	suite.True(retrieved.Milestones()[0].Paid())
	suite.Equal("tx-001", retrieved.Milestones()[0].TransactionID())
	suite.NotNil(retrieved.Milestones()[0].PaidAt())
	suite.Equal(int64(25000), retrieved.TotalPaid().Cents())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflictError() {
	ctx := context.Background()

	aggregate := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	first, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.AdvanceStatus(suite.fulfiller, order.ConsultationScheduled, ""))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.UpdateConsultation(suite.customer, order.Consultation{
		Location: "atelier", Notes: "first fitting",
	}))
	err = suite.repository.Update(ctx, second)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	// The loser's write must not be visible.
	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ConsultationScheduled, retrieved.Status())
	suite.Empty(retrieved.Consultation().Location)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	aggregate := suite.createTestOrder()

	err := suite.repository.Update(ctx, aggregate)

	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_RepeatedSaves_DoNotDuplicateTimeline() {
	ctx := context.Background()

	aggregate := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.AdvanceStatus(suite.fulfiller, order.ConsultationScheduled, ""))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	again, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(again.UpdateConsultation(suite.customer, order.Consultation{Location: "atelier"}))
	suite.Require().NoError(suite.repository.Update(ctx, again))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.TimelineEntryDTO{}).Count(&count).Error)
	suite.Equal(int64(2), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRevisionLifecycle_SurvivesRoundTrips() {
	ctx := context.Background()

	aggregate := suite.createTestOrder()
	for _, target := range []order.Status{
		order.ConsultationScheduled, order.ConsultationCompleted,
		order.FabricSelected, order.InProgress,
	} {
		suite.Require().NoError(aggregate.AdvanceStatus(suite.fulfiller, target, ""))
	}
	revisionID := kernel.NewUUID()
	suite.Require().NoError(aggregate.OpenRevision(
		suite.customer, revisionID, "shorten sleeves", []string{"https://img.example/1.jpg"},
	))
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.RevisionRequested, loaded.Status())
	suite.Require().Len(loaded.Revisions(), 1)
	suite.Equal(order.RevisionPending, loaded.Revisions()[0].Status())
	suite.Equal([]string{"https://img.example/1.jpg"}, loaded.Revisions()[0].Images())

	suite.Require().NoError(loaded.ApproveRevision(suite.fulfiller, revisionID))
	suite.Require().NoError(loaded.StartRevision(suite.fulfiller, revisionID))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, retrieved.Status())
	suite.Require().Len(retrieved.Revisions(), 1)
	suite.Equal(order.RevisionInProgress, retrieved.Revisions()[0].Status())
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
