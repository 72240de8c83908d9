package model

// KeyStatus — состояние передачи физического ключа по заказу.
type KeyStatus string

const (
	// KeyStatusPending — ключ прибыл и ожидает передачи.
	KeyStatusPending KeyStatus = "pending"
	// KeyStatusHanded — ключ передан.
	KeyStatusHanded KeyStatus = "handed"
)

// Valid сообщает, входит ли значение в допустимый набор статусов.
func (s KeyStatus) Valid() bool {
	return s == KeyStatusPending || s == KeyStatusHanded
}

// Order — заказ на обслуживание объекта. Идентификатор присваивает хранилище.
type Order struct {
	OrderID          string    `json:"orderId"`
	UserID           string    `json:"userId"`
	PropertyName     string    `json:"propertyName"`
	RoomNumber       string    `json:"roomNumber"`
	Address          string    `json:"address"`
	ConstructionDate string    `json:"constructionDate"`
	KeyLocation      string    `json:"keyLocation"`
	KeyReturn        string    `json:"keyReturn"`
	Notes            string    `json:"notes"`
	KeyStatus        KeyStatus `json:"keyStatus,omitempty"`
}

// ArchivedOrder — заказ, перенесённый хранилищем в архив.
type ArchivedOrder struct {
	Order
	ArchivedAt string `json:"archivedAt,omitempty"`
}
