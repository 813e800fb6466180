package middleware

import (
	"context"
	"net/http"
	"strings"
)

// HeaderToken заголовок с токеном сессии пользователя (как во внешнем API)
const HeaderToken = "token"

type tokenKey struct{}

// SessionToken переносит токен сессии из заголовка в контекст
// Токен не проверяется: его валидирует внешний API при обращении
func SessionToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(HeaderToken))
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), tokenKey{}, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetToken возвращает токен сессии из контекста ("" - пользователь не вошел)
func GetToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
