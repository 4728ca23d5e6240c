package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tomatino/tomatino-api/internal/token"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "token"

type contextKey string

const claimsKey contextKey = "sessionClaims"

// RequireSession returns middleware that extracts the session token from the
// request's cookie jar and verifies it. A missing, malformed, or expired
// token is rejected with 401 before the handler runs; on success the verified
// claims are attached to the request context.
func RequireSession(issuer *token.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				writeAuthError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			claims, err := issuer.Verify(cookie.Value)
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts the verified session claims from the request
// context.
func ClaimsFromContext(ctx context.Context) (jwt.MapClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(jwt.MapClaims)
	return claims, ok
}

// Forbidden writes the identity-mismatch rejection used by guarded handlers.
func Forbidden(w http.ResponseWriter) {
	writeAuthError(w, http.StatusForbidden, "forbidden access")
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
