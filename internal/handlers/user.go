package handlers

import (
	"encoding/json"
	"net/http"

	"OrderKeeper/internal/model"
	"OrderKeeper/internal/service"

	"go.uber.org/zap"
)

// UserHandler обрабатывает обновление и удаление учётных записей.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
}

// NewUserHandler создаёт хендлер пользователей.
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger}
}

type deleteUserRequest struct {
	UserID string `json:"userId"`
}

// Update обновление учётной записи
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.Logger.Warnw("Update: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "リクエストの形式が正しくありません")
		return
	}

	updated, message, err := h.UserService.Update(r.Context(), user)
	if err != nil {
		respondError(w, h.Logger, "Update", err)
		return
	}
	if message == "" {
		message = "ユーザー情報を更新しました"
	}
	if updated != nil {
		writeMessage(w, http.StatusOK, message, updated)
		return
	}
	writeMessage(w, http.StatusOK, message, nil)
}

// Delete удаление учётной записи
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Delete: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "リクエストの形式が正しくありません")
		return
	}

	message, err := h.UserService.Delete(r.Context(), req.UserID)
	if err != nil {
		respondError(w, h.Logger, "Delete", err)
		return
	}
	if message == "" {
		message = "ユーザーを削除しました"
	}
	writeMessage(w, http.StatusOK, message, nil)
}
