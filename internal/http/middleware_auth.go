package http

import (
	"context"
	"net/http"
	"strings"

	"bookshelf/internal/auth"
)

type contextKey string

const usernameKey contextKey = "username"

// AuthMiddleware gates mutating routes behind a Bearer token and
// attaches the resolved username to the request context.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				JSONError(w, http.StatusUnauthorized, "Missing Authorization header")
				return
			}
			parts := strings.Split(header, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				JSONError(w, http.StatusUnauthorized, "Invalid Authorization format")
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil || claims.Username == "" {
				JSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := ContextWithUsername(r.Context(), claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UsernameFrom returns the authenticated username, or "" on public routes.
func UsernameFrom(r *http.Request) string {
	if v, ok := r.Context().Value(usernameKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithUsername stamps an authenticated identity onto a context.
func ContextWithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}
