package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-DoctorBooking/internal/api/handlers"
)

// HeaderAdminToken заголовок с токеном администратора
const HeaderAdminToken = "atoken"

// AdminAuth пропускает только запросы с верным токеном администратора
// Пустой настроенный токен закрывает маршруты полностью
func AdminAuth(adminToken string, log Logger) func(http.Handler) http.Handler {
	expected := []byte(adminToken)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(HeaderAdminToken)
			if provided == "" {
				handlers.RespondUnauthorized(w, "admin token required")
				return
			}

			if len(expected) == 0 || subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
				log.Warn("AdminAuth: rejected admin token for %s %s", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, "")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
