package service

import (
	"OrderKeeper/internal/model"
	"OrderKeeper/internal/repo"
	"context"
)

// ItemService — обогащение строк заказа каталогом и выдача активного каталога.
type ItemService struct {
	items repo.ItemRepository
}

// NewItemService создаёт сервис каталога.
func NewItemService(items repo.ItemRepository) *ItemService {
	return &ItemService{items: items}
}

// ActiveItems возвращает только активные позиции каталога, сохраняя порядок источника.
func (s *ItemService) ActiveItems(ctx context.Context) ([]model.ConstructionItem, error) {
	all, err := s.items.GetConstructionItems(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]model.ConstructionItem, 0, len(all))
	for _, it := range all {
		if it.Active {
			active = append(active, it)
		}
	}
	return active, nil
}

// OrderItems возвращает строки заказа, дополненные позициями каталога.
// Соединение нестрогое: строка без совпадения по itemId остаётся без Item.
// Фильтра по active здесь нет — неактивные позиции тоже подставляются.
func (s *ItemService) OrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	refs, err := s.items.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.items.GetConstructionItems(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.ConstructionItem, len(catalog))
	for _, it := range catalog {
		byID[it.ID] = it
	}
	for i := range refs {
		if it, ok := byID[refs[i].ItemID]; ok {
			entry := it
			refs[i].Item = &entry
		}
	}
	return refs, nil
}
