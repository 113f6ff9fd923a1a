package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence, including
// the exclusive pending-to-en_route claim, against a real PostgreSQL
// container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{})
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newPendingOrder(mode order.DeliveryMode) *order.Order {
	lineA, err := order.NewLine(7, 2, 2.5)
	suite.Require().NoError(err)
	lineB, err := order.NewLine(9, 1, 1.5)
	suite.Require().NoError(err)

	o, err := order.NewOrder(11, mode, "card", []order.Line{lineA, lineB})
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsOrderWithLines() {
	ctx := context.Background()
	o := suite.newPendingOrder(order.Ship)

	err := suite.repository.Add(ctx, o)

	suite.Require().NoError(err)
	suite.Positive(o.ID())

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), loaded.ID())
	suite.Equal(int64(11), loaded.BuyerID())
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal(order.Ship, loaded.Mode())
	suite.Len(loaded.Lines(), 2)
	suite.InDelta(6.5, loaded.Total(), 0.001)
	suite.Nil(loaded.Courier())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, 404)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaimPending_Succeeds() {
	ctx := context.Background()
	o := suite.newPendingOrder(order.Ship)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	err := suite.repository.ClaimPending(ctx, o.ID(), 21)

	suite.Require().NoError(err)

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.EnRoute, loaded.Status())
	suite.Require().NotNil(loaded.Courier())
	suite.Equal(int64(21), *loaded.Courier())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaimPending_SecondClaimLoses() {
	ctx := context.Background()
	o := suite.newPendingOrder(order.Ship)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(suite.repository.ClaimPending(ctx, o.ID(), 21))

	err := suite.repository.ClaimPending(ctx, o.ID(), 33)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrInvalidState)

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.Courier())
	suite.Equal(int64(21), *loaded.Courier(), "first claim must stand")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaimPending_NonExistent_ReturnsNotFound() {
	ctx := context.Background()

	err := suite.repository.ClaimPending(ctx, 404, 21)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_CompletesDelivery() {
	ctx := context.Background()
	o := suite.newPendingOrder(order.Ship)
	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.Require().NoError(suite.repository.ClaimPending(ctx, o.ID(), 21))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Complete(21))

	err = suite.repository.Update(ctx, loaded)
	suite.Require().NoError(err)

	final, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, final.Status())
	suite.Len(final.Lines(), 2, "lines survive status updates")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsNotFound() {
	ctx := context.Background()
	courierID := int64(21)
	line, err := order.NewLine(7, 1, 2.5)
	suite.Require().NoError(err)
	ghost, err := order.RestoreOrder(
		404, 11, &courierID, order.EnRoute, order.Ship, "card", 2.5, time.Now().UTC(), []order.Line{line})
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, ghost)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
