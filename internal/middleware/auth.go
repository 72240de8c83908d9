package middleware

import (
	"OrderKeeper/internal/auth"
	"context"
	"net/http"
	"strings"
)

type contextKey string

const sessionContextKey contextKey = "session"

const authCookieName = "auth_token"

// WithAuth извлекает сессию из bearer‑заголовка или cookie и кладёт её в
// контекст запроса. Запрос не отклоняется: анонимный доступ разрешён,
// решение о правах принимает вызывающая сторона.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tok := tokenFromRequest(r); tok != "" {
				if sess, err := auth.ParseToken(tok, secret); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), sessionContextKey, sess))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c, err := r.Cookie(authCookieName); err == nil {
		return c.Value
	}
	return ""
}

// SetLoginCookie выставляет cookie сессии для указанного пользователя.
func SetLoginCookie(w http.ResponseWriter, sess auth.Session, secret string) error {
	tok, err := auth.NewToken(sess, secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
	})
	return nil
}

// GetSessionFromContext возвращает сессию запроса, если она установлена.
func GetSessionFromContext(ctx context.Context) (*auth.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(*auth.Session)
	return sess, ok
}
