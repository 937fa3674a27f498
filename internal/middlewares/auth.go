package middlewares

import (
	"context"
	"net/http"

	"github.com/hardcore/accounting/internal/apperrors"
	"github.com/hardcore/accounting/internal/jwt"
	"github.com/hardcore/accounting/internal/logger"
	"github.com/hardcore/accounting/internal/responses"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type userIDKey struct{}

// AuthMiddleware rejects requests without a valid bearer token and puts
// the token's user id into the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				responses.Error(w, apperrors.NewUnauthorizedError())
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				responses.Error(w, apperrors.NewUnauthorizedError())
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, userIDKey{}, claims.UserID)))
		})
	}
}

// UserIDFromContext returns the user id stored by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}
