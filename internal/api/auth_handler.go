package api

import (
	"errors"
	"net/http"

	"github.com/gabrielgomes/localguide-api/internal/api/middleware"
	"github.com/gabrielgomes/localguide-api/internal/api/shared"
	"github.com/gabrielgomes/localguide-api/internal/domain"
	"github.com/gabrielgomes/localguide-api/internal/platform/logger"
	"github.com/gabrielgomes/localguide-api/internal/service/auth"
	"github.com/gabrielgomes/localguide-api/internal/store"
)

// Validation failures on the auth endpoints answer 401, not 422. The API
// has always behaved this way and clients depend on it.
const authValidationStatus = http.StatusUnauthorized

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore    store.UserStore
	tokenService auth.TokenService
	passwords    interface {
		auth.PasswordHasher
		auth.PasswordVerifier
	}
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	tokenService auth.TokenService,
	passwords *auth.BcryptHasher,
) *AuthHandler {
	return &AuthHandler{
		userStore:    userStore,
		tokenService: tokenService,
		passwords:    passwords,
	}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationErrors(w, r, authValidationStatus, "Validation Errors",
			map[string][]string{"body": {"invalid request body"}})
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationErrors(w, r, authValidationStatus, "Validation Errors",
			shared.ValidationMessages(err))
		return
	}

	user, err := domain.NewUser(req.Name, req.Email, req.Password)
	if err != nil {
		shared.RespondWithValidationErrors(w, r, authValidationStatus, "Validation Errors",
			map[string][]string{"body": {err.Error()}})
		return
	}

	hashed, err := h.passwords.Hash(req.Password)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithValidationErrors(w, r, authValidationStatus, "Validation Errors",
				map[string][]string{"email": {"The email has already been taken"}})
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	token, err := h.tokenService.IssueToken(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	log.Info("user registered", "user_id", user.ID)

	shared.RespondWithJSON(w, r, http.StatusOK, shared.StatusResponse{
		Status:  "success",
		Message: "User created successfully",
		Token:   token,
		Data:    user,
	})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationErrors(w, r, authValidationStatus, "Validation Errors",
			map[string][]string{"body": {"invalid request body"}})
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationErrors(w, r, authValidationStatus, "Validation Errors",
			shared.ValidationMessages(err))
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Email or Password is incorrect")
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	if err := h.passwords.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Email or Password is incorrect")
		return
	}

	// Each login issues a fresh token; earlier tokens stay live until logout.
	token, err := h.tokenService.IssueToken(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	log.Info("user logged in", "user_id", user.ID)

	shared.RespondWithJSON(w, r, http.StatusOK, shared.StatusResponse{
		Status:  "success",
		Message: "User logged in successfully",
		Token:   token,
		Data:    user,
	})
}

// Profile handles GET /api/profile.
// The auth middleware has already resolved the caller's identity.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.StatusResponse{
		Status:  "success",
		Message: "User profile",
		Data:    user,
		ID:      user.ID,
	})
}

// Logout handles POST /api/logout.
// It revokes ALL of the caller's tokens, not just the presented one,
// ending every session at once.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	revoked, err := h.tokenService.RevokeAll(r.Context(), userID)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	log.Info("user logged out", "user_id", userID, "tokens_revoked", revoked)

	shared.RespondWithJSON(w, r, http.StatusOK, shared.StatusResponse{
		Status:  "success",
		Message: "User logged out successfully",
	})
}
