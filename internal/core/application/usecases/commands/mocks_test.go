package commands_test

import (
	"context"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/item"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations shared by the handler tests.

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id int64) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Add(ctx context.Context, aggregate *item.Item) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, aggregate *item.Item) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockItemRepository) Get(ctx context.Context, id int64) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockItemRepository) GetByStore(ctx context.Context, storeID int64) ([]*item.Item, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*item.Item), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ClaimPending(ctx context.Context, orderID, courierID int64) error {
	args := m.Called(ctx, orderID, courierID)
	return args.Error(0)
}

// txManagerMock provides the shared Begin/Commit/Rollback expectations.
type txManagerMock struct {
	mock.Mock
}

func (m *txManagerMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txManagerMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txManagerMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockAccountUoW struct {
	txManagerMock
}

func (m *MockAccountUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockAccountUoWFactory struct {
	mock.Mock
}

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockItemUoW struct {
	txManagerMock
}

func (m *MockItemUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

type MockItemUoWFactory struct {
	mock.Mock
}

func (m *MockItemUoWFactory) Create() commands.ItemUoW {
	args := m.Called()
	return args.Get(0).(commands.ItemUoW)
}

type MockOrderUoW struct {
	txManagerMock
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAccountItemUoW struct {
	txManagerMock
}

func (m *MockAccountItemUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockAccountItemUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

type MockAccountItemUoWFactory struct {
	mock.Mock
}

func (m *MockAccountItemUoWFactory) Create() commands.AccountItemUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountItemUoW)
}

type MockAccountOrderUoW struct {
	txManagerMock
}

func (m *MockAccountOrderUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockAccountOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockAccountOrderUoWFactory struct {
	mock.Mock
}

func (m *MockAccountOrderUoWFactory) Create() commands.AccountOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountOrderUoW)
}

type MockUoW struct {
	txManagerMock
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCartStore struct {
	mock.Mock
}

func (m *MockCartStore) Append(ctx context.Context, sessionID string, itemID int64) error {
	args := m.Called(ctx, sessionID, itemID)
	return args.Error(0)
}

func (m *MockCartStore) Remove(ctx context.Context, sessionID string, itemID int64) error {
	args := m.Called(ctx, sessionID, itemID)
	return args.Error(0)
}

func (m *MockCartStore) Items(ctx context.Context, sessionID string) ([]int64, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockCartStore) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
