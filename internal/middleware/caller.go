package middleware

import (
	"bingo_backend/internal/service"
	"bingo_backend/pkg/resp"
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// RequireCaller Пускает к пульту только с токеном ведущего.
// Грубая проверка присутствия, а не граница безопасности
func RequireCaller(auth service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				resp.WriteError(w, http.StatusUnauthorized, "caller login required")
				return
			}

			if err := auth.Verify(strings.TrimPrefix(header, bearerPrefix)); err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "caller login required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
