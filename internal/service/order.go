package service

import (
	"OrderKeeper/internal/model"
	"OrderKeeper/internal/repo"
	"context"

	"go.uber.org/zap"
)

// OrderService отвечает за жизненный цикл заказа: создание, списки
// и переходы статуса ключа с уведомлением о его прибытии.
type OrderService struct {
	orders   repo.OrderRepository
	notifier repo.Notifier
	logger   *zap.SugaredLogger
}

// NewOrderService создаёт сервис заказов.
func NewOrderService(orders repo.OrderRepository, notifier repo.Notifier, logger *zap.SugaredLogger) *OrderService {
	return &OrderService{orders: orders, notifier: notifier, logger: logger}
}

// CreateOrderRequest — вход создания заказа. Необязательные поля остаются
// пустыми строками, если клиент их не прислал.
type CreateOrderRequest struct {
	UserID           string
	PropertyName     string
	RoomNumber       string
	Address          string
	ConstructionDate string
	KeyLocation      string
	KeyReturn        string
	Notes            string
}

// Create проверяет обязательные поля и сохраняет заказ.
// Начальный статус ключа выставляет хранилище, не этот слой.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*model.Order, error) {
	required := []struct {
		name  string
		value string
	}{
		{"userId", req.UserID},
		{"propertyName", req.PropertyName},
		{"address", req.Address},
		{"constructionDate", req.ConstructionDate},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, &ValidationError{Field: f.name, Message: f.name + "は必須です"}
		}
	}

	order := model.Order{
		UserID:           req.UserID,
		PropertyName:     req.PropertyName,
		RoomNumber:       req.RoomNumber,
		Address:          req.Address,
		ConstructionDate: req.ConstructionDate,
		KeyLocation:      req.KeyLocation,
		KeyReturn:        req.KeyReturn,
		Notes:            req.Notes,
	}
	return s.orders.AddOrder(ctx, order)
}

// List возвращает все заказы как есть.
func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	return s.orders.GetOrders(ctx)
}

// ListArchived возвращает архивные заказы.
func (s *OrderService) ListArchived(ctx context.Context) ([]model.ArchivedOrder, error) {
	return s.orders.GetArchivedOrders(ctx)
}

// UpdateKeyStatus переводит статус ключа. Запись в хранилище — авторитетный
// результат операции; уведомление после неё отправляется по возможности,
// его сбой логируется и не выходит за пределы этого метода.
func (s *OrderService) UpdateKeyStatus(ctx context.Context, orderID string, status model.KeyStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, &ValidationError{Field: "keyStatus", Message: "有効な鍵ステータスを指定してください"}
	}

	updated, err := s.orders.UpdateOrder(ctx, orderID, map[string]any{"keyStatus": status})
	if err != nil {
		return nil, err
	}

	// pending означает «ключ прибыл и ждёт передачи» — именно тогда шлём уведомление.
	if status == model.KeyStatusPending {
		if err := s.notifier.CreateKeyStatusChangeNotification(ctx, orderID, updated.PropertyName); err != nil {
			s.logger.Errorw("key arrival notification failed",
				"order_id", orderID,
				"property_name", updated.PropertyName,
				"error", err,
			)
		}
	}

	return updated, nil
}
