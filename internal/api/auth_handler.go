package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/taskpost-api/internal/api/shared"
	"github.com/phrazzld/taskpost-api/internal/domain"
	"github.com/phrazzld/taskpost-api/internal/platform/logger"
	"github.com/phrazzld/taskpost-api/internal/service"
	"github.com/phrazzld/taskpost-api/internal/service/auth"
	"github.com/phrazzld/taskpost-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userService service.UserService
	jwtService  auth.JWTService
	tokenStore  store.TokenStore
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userService service.UserService,
	jwtService auth.JWTService,
	tokenStore store.TokenStore,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		tokenStore:  tokenStore,
		logger:      logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !parseAndValidateRequest(w, r, &req) {
		return
	}

	user, err := h.userService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.respondWithToken(w, r, http.StatusCreated, user)
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !parseAndValidateRequest(w, r, &req) {
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.respondWithToken(w, r, http.StatusOK, user)
}

// Logout handles POST /api/logout. The token presented with the request is
// revoked until it would have expired.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(shared.ClaimsContextKey).(*auth.Claims)
	if !ok || claims == nil {
		HandleAPIError(w, r, auth.ErrMissingToken, "")
		return
	}

	if err := h.tokenStore.Revoke(r.Context(), claims.ID, claims.ExpiresAt); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("user logged out", slog.String("user_id", claims.UserID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Logged out"})
}

// Me handles GET /api/user and returns the authenticated account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.GetUserID(r.Context())
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, userToResponse(user))
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, r *http.Request, status int, user *domain.User) {
	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, status, AuthResponse{
		User:      userToResponse(user),
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
