package handlers

import (
	"net/http"

	"OrderKeeper/internal/service"

	"go.uber.org/zap"
)

// StatsHandler отдаёт агрегаты хранилища.
type StatsHandler struct {
	StatsService *service.StatsService
	Logger       *zap.SugaredLogger
}

// NewStatsHandler создаёт хендлер статистики.
func NewStatsHandler(statsService *service.StatsService, logger *zap.SugaredLogger) *StatsHandler {
	return &StatsHandler{StatsService: statsService, Logger: logger}
}

// Get готовая статистика
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsService.Get(r.Context())
	if err != nil {
		respondError(w, h.Logger, "Get", err)
		return
	}
	writeData(w, http.StatusOK, stats)
}
