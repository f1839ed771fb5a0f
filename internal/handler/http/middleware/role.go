package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/techmire/payroll-backend-go/internal/domain/user"
	"github.com/techmire/payroll-backend-go/internal/handler/http/response"
)

// RequireHR restricts a route to HR accounts.
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleHR) {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
