package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fintrack-server/src/auth"
	db "fintrack-server/src/db/sql"
)

// ParseTokenFromRequest extracts the bearer token and returns the email it
// was issued for.
func ParseTokenFromRequest(r *http.Request, secret []byte) (string, error) {
	tokenString := r.Header.Get("Authorization")
	if tokenString == "" {
		return "", errors.New("missing token")
	}

	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	return auth.ParseToken(tokenString, secret)
}

// JWTAuthMiddleware verifies the bearer token and resolves the caller.
// Every failure mode collapses to the same 401 so nothing leaks about which
// check tripped.
func JWTAuthMiddleware(pool db.Querier, secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, err := ParseTokenFromRequest(r, secret)
			if err != nil {
				http.Error(w, "unauthenticated", http.StatusUnauthorized)
				return
			}

			user, err := db.GetUserByEmail(r.Context(), pool, email)
			if err != nil || !user.IsActive {
				http.Error(w, "unauthenticated", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), "user_id", user.ID)
			ctx = context.WithValue(ctx, "email", user.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
