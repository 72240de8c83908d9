package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"OrderKeeper/internal/repo"
	"OrderKeeper/internal/service"

	"go.uber.org/zap"
)

// Единый конверт ответа: {success, data|error}, у операций над
// пользователями дополнительно message.

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, code int, data any) {
	writeJSON(w, code, map[string]any{"success": true, "data": data})
}

func writeMessage(w http.ResponseWriter, code int, message string, data any) {
	body := map[string]any{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	writeJSON(w, code, body)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]any{"success": false, "error": message})
}

// respondError мапит ошибку сервиса на статус контракта: ошибки проверки —
// 400 с сообщением по полю, отказ хранилища — 500 с его сообщением,
// всё остальное — 500 с общим текстом (детали только в лог).
func respondError(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		logger.Warnw(op+": validation failed", "field", ve.Field, "error", ve.Message)
		writeError(w, http.StatusBadRequest, ve.Message)
		return
	}
	var se *repo.StoreError
	if errors.As(err, &se) {
		logger.Errorw(op+": store rejected request", "error", se.Message)
		writeError(w, http.StatusInternalServerError, se.Message)
		return
	}
	logger.Errorw(op+": internal error", "error", err)
	writeError(w, http.StatusInternalServerError, "サーバーエラーが発生しました")
}
