package handlers_test

import (
	"OrderKeeper/internal/config"
	"OrderKeeper/internal/handlers"
	"OrderKeeper/internal/model"
	"OrderKeeper/internal/repo"
	"OrderKeeper/internal/service"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Minimal mocks

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) GetOrders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Order); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) GetArchivedOrders(ctx context.Context) ([]model.ArchivedOrder, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.ArchivedOrder); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) AddOrder(ctx context.Context, order model.Order) (*model.Order, error) {
	args := m.Called(ctx, order)
	if v, ok := args.Get(0).(*model.Order); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) UpdateOrder(ctx context.Context, orderID string, updates map[string]any) (*model.Order, error) {
	args := m.Called(ctx, orderID, updates)
	if v, ok := args.Get(0).(*model.Order); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.OrderRepository = (*mockOrderRepo)(nil)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) GetConstructionItems(ctx context.Context) ([]model.ConstructionItem, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.ConstructionItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) GetOrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if v, ok := args.Get(0).([]model.OrderItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) UpdateUser(ctx context.Context, user model.User) (*model.User, string, error) {
	args := m.Called(ctx, user)
	var u *model.User
	if v, ok := args.Get(0).(*model.User); ok {
		u = v
	}
	return u, args.String(1), args.Error(2)
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockStatsRepo struct{ mock.Mock }

func (m *mockStatsRepo) GetStatistics(ctx context.Context) (model.Statistics, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).(model.Statistics); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.StatsRepository = (*mockStatsRepo)(nil)

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) CreateKeyStatusChangeNotification(ctx context.Context, orderID, propertyName string) error {
	return m.Called(ctx, orderID, propertyName).Error(0)
}

var _ repo.Notifier = (*mockNotifier)(nil)

// testMocks собирает дубли всех репозиториев для роутера.
type testMocks struct {
	orders   *mockOrderRepo
	items    *mockItemRepo
	users    *mockUserRepo
	stats    *mockStatsRepo
	notifier *mockNotifier
}

// newTestRouter поднимает полный роутер поверх моков хранилища.
func newTestRouter(t *testing.T) (http.Handler, *testMocks) {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()

	m := &testMocks{
		orders:   &mockOrderRepo{},
		items:    &mockItemRepo{},
		users:    &mockUserRepo{},
		stats:    &mockStatsRepo{},
		notifier: &mockNotifier{},
	}

	orderSvc := service.NewOrderService(m.orders, m.notifier, logger)
	itemSvc := service.NewItemService(m.items)
	userSvc := service.NewUserService(m.users)
	statsSvc := service.NewStatsService(m.stats)

	h := handlers.NewHandler(orderSvc, itemSvc, userSvc, statsSvc, logger, cfg)
	return h.Router, m
}
