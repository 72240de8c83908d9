package handlers

import (
	"encoding/json"
	"net/http"

	"OrderKeeper/internal/model"
	"OrderKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderHandler обрабатывает заказы и переходы статуса ключа.
type OrderHandler struct {
	OrderService *service.OrderService
	Logger       *zap.SugaredLogger
}

// NewOrderHandler создаёт хендлер заказов.
func NewOrderHandler(orderService *service.OrderService, logger *zap.SugaredLogger) *OrderHandler {
	return &OrderHandler{OrderService: orderService, Logger: logger}
}

type createOrderRequest struct {
	UserID           string `json:"userId"`
	PropertyName     string `json:"propertyName"`
	RoomNumber       string `json:"roomNumber"`
	Address          string `json:"address"`
	ConstructionDate string `json:"constructionDate"`
	KeyLocation      string `json:"keyLocation"`
	KeyReturn        string `json:"keyReturn"`
	Notes            string `json:"notes"`
}

type updateKeyStatusRequest struct {
	KeyStatus string `json:"keyStatus"`
}

// Create создание заказа
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "リクエストの形式が正しくありません")
		return
	}

	order, err := h.OrderService.Create(r.Context(), service.CreateOrderRequest{
		UserID:           req.UserID,
		PropertyName:     req.PropertyName,
		RoomNumber:       req.RoomNumber,
		Address:          req.Address,
		ConstructionDate: req.ConstructionDate,
		KeyLocation:      req.KeyLocation,
		KeyReturn:        req.KeyReturn,
		Notes:            req.Notes,
	})
	if err != nil {
		respondError(w, h.Logger, "Create", err)
		return
	}
	writeData(w, http.StatusOK, order)
}

// List все заказы
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.OrderService.List(r.Context())
	if err != nil {
		respondError(w, h.Logger, "List", err)
		return
	}
	writeData(w, http.StatusOK, orders)
}

// ListArchived архивные заказы
func (h *OrderHandler) ListArchived(w http.ResponseWriter, r *http.Request) {
	orders, err := h.OrderService.ListArchived(r.Context())
	if err != nil {
		respondError(w, h.Logger, "ListArchived", err)
		return
	}
	writeData(w, http.StatusOK, orders)
}

// UpdateKeyStatus перевод статуса ключа
func (h *OrderHandler) UpdateKeyStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var req updateKeyStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UpdateKeyStatus: invalid request body", "order_id", orderID, "error", err)
		writeError(w, http.StatusBadRequest, "リクエストの形式が正しくありません")
		return
	}

	order, err := h.OrderService.UpdateKeyStatus(r.Context(), orderID, model.KeyStatus(req.KeyStatus))
	if err != nil {
		respondError(w, h.Logger, "UpdateKeyStatus", err)
		return
	}
	writeData(w, http.StatusOK, order)
}
