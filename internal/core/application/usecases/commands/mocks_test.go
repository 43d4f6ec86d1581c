package commands_test

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) AddReceipt(ctx context.Context, receipt *stock.Receipt, units []*stock.Unit) error {
	args := m.Called(ctx, receipt, units)
	return args.Error(0)
}

func (m *MockStockRepository) GetReceipt(ctx context.Context, id kernel.UUID) (*stock.Receipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Receipt), args.Error(1)
}

func (m *MockStockRepository) CountAvailable(ctx context.Context, productID, companyID kernel.UUID) (int, error) {
	args := m.Called(ctx, productID, companyID)
	return args.Int(0), args.Error(1)
}

func (m *MockStockRepository) CountAvailableByProduct(ctx context.Context, companyID kernel.UUID) ([]ports.AvailableCount, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.AvailableCount), args.Error(1)
}

func (m *MockStockRepository) ReserveAvailable(ctx context.Context, productID, companyID kernel.UUID, quantity int, deliveryItemID kernel.UUID) error {
	args := m.Called(ctx, productID, companyID, quantity, deliveryItemID)
	return args.Error(0)
}

func (m *MockStockRepository) TransitionForDeliveryItems(ctx context.Context, deliveryItemIDs []kernel.UUID, fromAllowed []stock.UnitStatus, to stock.UnitStatus) (int, error) {
	args := m.Called(ctx, deliveryItemIDs, fromAllowed, to)
	return args.Int(0), args.Error(1)
}

func (m *MockStockRepository) ReleaseForDeliveryItems(ctx context.Context, deliveryItemIDs []kernel.UUID) (int, error) {
	args := m.Called(ctx, deliveryItemIDs)
	return args.Int(0), args.Error(1)
}

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

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockOutbox struct{ mock.Mock }

func (m *MockOutbox) Enqueue(ctx context.Context, event ports.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface in the package, so the same
// mock backs handlers with narrow and wide dependencies alike.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) NotificationOutbox() ports.NotificationOutbox {
	args := m.Called()
	return args.Get(0).(ports.NotificationOutbox)
}

type MockStockUoWFactory struct{ mock.Mock }

func (m *MockStockUoWFactory) Create() commands.StockUoW {
	args := m.Called()
	return args.Get(0).(commands.StockUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDeliveryAutoCreator struct{ mock.Mock }

func (m *MockDeliveryAutoCreator) AutoCreateForOrder(ctx context.Context, orderID kernel.UUID) (kernel.UUID, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(kernel.UUID), args.Error(1)
}
