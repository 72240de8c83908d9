package handlers

import (
	"net/http"

	"OrderKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler отдаёт каталог работ и обогащённые строки заказа.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
}

// NewItemHandler создаёт хендлер каталога.
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger}
}

// ActiveItems список активных позиций каталога
func (h *ItemHandler) ActiveItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.ActiveItems(r.Context())
	if err != nil {
		respondError(w, h.Logger, "ActiveItems", err)
		return
	}
	writeData(w, http.StatusOK, items)
}

// OrderItems строки заказа с данными каталога
func (h *ItemHandler) OrderItems(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	items, err := h.ItemService.OrderItems(r.Context(), orderID)
	if err != nil {
		respondError(w, h.Logger, "OrderItems", err)
		return
	}
	writeData(w, http.StatusOK, items)
}
