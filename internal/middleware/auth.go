package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"artisan-service/pkg/response"
)

type contextKey string

// ContextAuthSubject carries the external auth provider's subject id for
// the authenticated caller.
const ContextAuthSubject contextKey = "authSubject"

// GetAuthSubject pulls the caller's auth subject out of the request context.
func GetAuthSubject(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(ContextAuthSubject).(string)
	return val, ok
}

type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret)}
}

// Require verifies the bearer token issued by the auth provider and puts
// its subject id on the request context. Identity is all this service needs
// from the token; sessions and roles stay the provider's problem.
func (am *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return am.secret, nil
		})
		if err != nil || !token.Valid {
			response.Error(w, http.StatusUnauthorized, "invalid token")
			return
		}

		subject, err := claims.GetSubject()
		if err != nil || subject == "" {
			response.Error(w, http.StatusUnauthorized, "token has no subject")
			return
		}

		ctx := context.WithValue(r.Context(), ContextAuthSubject, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
