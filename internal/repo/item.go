package repo

import (
	"OrderKeeper/internal/model"
	"context"
	"encoding/json"
	"fmt"
)

// ItemRepository — контракт доступа к каталогу работ и строкам заказов.
type ItemRepository interface {
	// GetConstructionItems возвращает весь каталог, включая неактивные позиции.
	GetConstructionItems(ctx context.Context) ([]model.ConstructionItem, error)

	// GetOrderItems возвращает строки заказа в порядке хранения.
	GetOrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error)
}

type itemRepo struct {
	client *Client
}

// NewItemRepository создаёт реализацию репозитория каталога поверх табличного API.
func NewItemRepository(c *Client) ItemRepository {
	return &itemRepo{client: c}
}

func (r *itemRepo) GetConstructionItems(ctx context.Context) ([]model.ConstructionItem, error) {
	data, _, err := r.client.call(ctx, "getConstructionItems", nil)
	if err != nil {
		return nil, err
	}
	var items []model.ConstructionItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode construction items: %w", err)
	}
	return items, nil
}

func (r *itemRepo) GetOrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	data, _, err := r.client.call(ctx, "getOrderItems", map[string]any{"orderId": orderID})
	if err != nil {
		return nil, err
	}
	var items []model.OrderItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	return items, nil
}
