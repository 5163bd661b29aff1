package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/taskpost-api/internal/api/shared"
	"github.com/phrazzld/taskpost-api/internal/platform/logger"
	"github.com/phrazzld/taskpost-api/internal/service/auth"
	"github.com/phrazzld/taskpost-api/internal/store"
)

// AuthMiddleware provides bearer token authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
	tokenStore store.TokenStore
}

// NewAuthMiddleware creates a new AuthMiddleware. tokenStore may be nil, in
// which case revocation is not checked.
func NewAuthMiddleware(jwtService auth.JWTService, tokenStore store.TokenStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Authenticate validates the bearer token from the Authorization header and
// adds the user ID and claims to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthenticated.")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
					"An unexpected error occurred", err)
			}
			return
		}

		if m.tokenStore != nil {
			revoked, err := m.tokenStore.IsRevoked(r.Context(), claims.ID)
			if err != nil {
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
					"An unexpected error occurred", err)
				return
			}
			if revoked {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token revoked")
				return
			}
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)
		ctx = context.WithValue(ctx, shared.ClaimsContextKey, claims)
		ctx = logger.WithLogger(ctx, logger.FromContext(ctx).With(slog.String("user_id", claims.UserID.String())))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is case-insensitive.
func bearerToken(r *http.Request) (string, bool) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
