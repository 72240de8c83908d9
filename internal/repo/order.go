package repo

import (
	"OrderKeeper/internal/model"
	"context"
	"encoding/json"
	"fmt"
)

// OrderRepository — контракт доступа к заказам в табличном хранилище.
type OrderRepository interface {
	// GetOrders возвращает все заказы как есть, без фильтрации.
	GetOrders(ctx context.Context) ([]model.Order, error)

	// GetArchivedOrders возвращает заказы, перенесённые хранилищем в архив.
	GetArchivedOrders(ctx context.Context) ([]model.ArchivedOrder, error)

	// AddOrder сохраняет новый заказ и возвращает запись с присвоенным ID.
	AddOrder(ctx context.Context, order model.Order) (*model.Order, error)

	// UpdateOrder применяет частичное обновление и возвращает итоговую запись.
	UpdateOrder(ctx context.Context, orderID string, updates map[string]any) (*model.Order, error)
}

type orderRepo struct {
	client *Client
}

// NewOrderRepository создаёт реализацию репозитория заказов поверх табличного API.
func NewOrderRepository(c *Client) OrderRepository {
	return &orderRepo{client: c}
}

func (r *orderRepo) GetOrders(ctx context.Context) ([]model.Order, error) {
	data, _, err := r.client.call(ctx, "getOrders", nil)
	if err != nil {
		return nil, err
	}
	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepo) GetArchivedOrders(ctx context.Context) ([]model.ArchivedOrder, error) {
	data, _, err := r.client.call(ctx, "getArchivedOrders", nil)
	if err != nil {
		return nil, err
	}
	var orders []model.ArchivedOrder
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("decode archived orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepo) AddOrder(ctx context.Context, order model.Order) (*model.Order, error) {
	data, _, err := r.client.call(ctx, "addOrder", order)
	if err != nil {
		return nil, err
	}
	var created model.Order
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("decode created order: %w", err)
	}
	return &created, nil
}

func (r *orderRepo) UpdateOrder(ctx context.Context, orderID string, updates map[string]any) (*model.Order, error) {
	payload := map[string]any{
		"orderId": orderID,
		"updates": updates,
	}
	data, _, err := r.client.call(ctx, "updateOrder", payload)
	if err != nil {
		return nil, err
	}
	var updated model.Order
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, fmt.Errorf("decode updated order: %w", err)
	}
	return &updated, nil
}
