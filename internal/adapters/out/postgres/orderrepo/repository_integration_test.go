package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for the
// purchase order repository using PostgreSQL containers to verify database
// persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(2)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var orderCount, itemCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&itemCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(2), itemCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrip() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(3)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.BuyerID(), retrieved.BuyerID())
	suite.Equal(testOrder.SupplierID(), retrieved.SupplierID())
	suite.Len(retrieved.Items(), 3)
	suite.Equal(order.OverallStatusNotYet, retrieved.OverallStatus())
	suite.Nil(retrieved.DeliveredAt())

	for i, item := range retrieved.Items() {
		expected := testOrder.Items()[i]
		suite.Equal(expected.ID(), item.ID())
		suite.Equal(expected.ProductID(), item.ProductID())
		suite.Equal(expected.Quantity(), item.Quantity())
		suite.True(expected.UnitPrice().IsEqual(item.UnitPrice()))
		suite.Equal(order.ItemStatusPending, item.Status())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ItemDecisionsPersisted() {
	testCases := []struct {
		name      string
		decisions []order.ItemStatus
		expected  order.OverallStatus
	}{
		{
			name:      "all approved",
			decisions: []order.ItemStatus{order.ItemStatusApproved, order.ItemStatusApproved},
			expected:  order.OverallStatusAllApproved,
		},
		{
			name:      "all rejected",
			decisions: []order.ItemStatus{order.ItemStatusRejected, order.ItemStatusRejected},
			expected:  order.OverallStatusRejected,
		},
		{
			name:      "mixed decisions",
			decisions: []order.ItemStatus{order.ItemStatusApproved, order.ItemStatusRejected},
			expected:  order.OverallStatusSomeApproved,
		},
		{
			name:      "approval with an open line",
			decisions: []order.ItemStatus{order.ItemStatusApproved, order.ItemStatusPending},
			expected:  order.OverallStatusSomeApproved,
		},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			testOrder := suite.createTestOrder(len(tc.decisions))

			suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)
			suite.Require().NoError(suite.repository.Add(ctx, testOrder))

			for i, decision := range tc.decisions {
				if decision == order.ItemStatusPending {
					continue
				}
				err := testOrder.SetItemStatus(testOrder.Items()[i].ID(), decision)
				suite.Require().NoError(err)
			}

			suite.Require().NoError(suite.repository.Update(ctx, testOrder))

			retrieved, err := suite.repository.Get(ctx, testOrder.ID())
			suite.Require().NoError(err)
			suite.Equal(tc.expected, retrieved.OverallStatus())

			for i, decision := range tc.decisions {
				suite.Equal(decision, retrieved.Items()[i].Status())
			}

			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_IssuedQuantityPersisted() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(1)
	item := testOrder.Items()[0]

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.IssueItem(item.ID(), 3))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(3, retrieved.Items()[0].QuantityIssued())
	suite.Equal(3, retrieved.Items()[0].RequiredQuantity())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DeliveredTimestampPersisted() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(1)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	deliveredAt := time.Now().UTC().Truncate(time.Millisecond)
	testOrder.MarkDelivered(deliveredAt)
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.DeliveredAt())
	suite.WithinDuration(deliveredAt, *retrieved.DeliveredAt(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	nonExistentOrder := suite.createTestOrder(1)

	// No expectations on tracker since operation should fail
	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a valid order with the given number of lines.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(lines int) *order.Order {
	unitPrice, err := kernel.NewMoney(decimal.NewFromFloat(9.99), "USD")
	suite.Require().NoError(err)

	items := make([]*order.Item, 0, lines)
	for range lines {
		item, itemErr := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 5, unitPrice, "", nil)
		suite.Require().NoError(itemErr)
		items = append(items, item)
	}

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), items)
	suite.Require().NoError(err)
	return testOrder
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
