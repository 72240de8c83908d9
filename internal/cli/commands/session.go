package commands

import (
	"OrderKeeper/internal/auth"
	"OrderKeeper/internal/config"
	"OrderKeeper/internal/model"
	"errors"
	"fmt"
)

// requireSession проверяет сохранённую сессию перед командой, ходящей на
// сервер. Возвращает токен; при отказе — ошибка для пользователя.
func requireSession(cfg *config.Config, required model.Role) (string, error) {
	store := auth.FileTokenStore{Dir: cfg.TokenDir}
	res := auth.CheckSession(store, cfg.AuthSecret, required)
	switch res.State {
	case auth.StateAuthenticated:
		return store.Load()
	case auth.StateUnauthorized:
		return "", fmt.Errorf("user %s lacks the required role %q", res.User.UserID, required)
	default:
		return "", errors.New("not authenticated: run \"login <token>\" first")
	}
}
