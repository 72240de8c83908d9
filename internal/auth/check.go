package auth

import "OrderKeeper/internal/model"

// State — исход проверки сессии.
type State int

const (
	// StateUnauthenticated — токена нет либо он не прошёл проверку.
	StateUnauthenticated State = iota
	// StateUnauthorized — токен валиден, но роли недостаточно.
	StateUnauthorized
	// StateAuthenticated — токен валиден, роль подходит.
	StateAuthenticated
)

// Result — размеченный результат проверки. User заполнен для
// StateAuthenticated и StateUnauthorized.
type Result struct {
	State State
	User  *Session
}

// TokenStore — источник сохранённого токена сессии.
type TokenStore interface {
	Load() (string, error)
}

// CheckSession читает токен из переданного хранилища и сверяет роль.
// Побочных эффектов нет: что делать при отказе, решает вызывающая сторона.
func CheckSession(store TokenStore, secret string, required model.Role) Result {
	tok, err := store.Load()
	if err != nil || tok == "" {
		return Result{State: StateUnauthenticated}
	}
	sess, err := ParseToken(tok, secret)
	if err != nil {
		return Result{State: StateUnauthenticated}
	}
	if required == model.RoleAdmin && sess.Role != model.RoleAdmin {
		return Result{State: StateUnauthorized, User: sess}
	}
	return Result{State: StateAuthenticated, User: sess}
}
