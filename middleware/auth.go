package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/jessism/Fridgy-Backend-sub003/config"
	"github.com/jessism/Fridgy-Backend-sub003/util"
)

type contextKey string

const UserContextKey contextKey = "user_id"

// AuthMiddleware validates the "Authorization: Bearer <token>" header and puts
// the authenticated user's id into the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Unauthorized: No Authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Unauthorized: Invalid Authorization format", http.StatusUnauthorized)
			return
		}

		claims, err := util.ValidateJWT(parts[1], config.JWTSecret())
		if err != nil {
			http.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext extracts the authenticated user id set by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserContextKey).(uint)
	return id, ok
}
