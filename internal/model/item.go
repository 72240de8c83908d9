package model

// ConstructionItem — позиция каталога видов работ.
type ConstructionItem struct {
	ID        string  `json:"id"`
	Active    bool    `json:"active"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Unit      string  `json:"unit,omitempty"`
	Category  string  `json:"category,omitempty"`
}

// OrderItem — строка заказа со ссылкой на позицию каталога.
type OrderItem struct {
	ItemID   string  `json:"itemId"`
	Quantity float64 `json:"quantity"`
	Note     string  `json:"note,omitempty"`

	// Item заполняется при обогащении. nil, если позиция каталога не найдена.
	Item *ConstructionItem `json:"item,omitempty"`
}
