// Package api provides HTTP handlers for the API.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/savori/savory-api/internal/api/shared"
	"github.com/savori/savory-api/internal/domain"
	"github.com/savori/savory-api/internal/service/auth"
	"github.com/savori/savory-api/internal/store"
)

// User list whitelists. Field names a list request may filter or sort by;
// anything else in client input is ignored.
var (
	userFilterFields = []string{"username", "email", "first_name", "last_name"}
	userSortFields   = []string{"id", "username", "email", "created_at"}
)

// UserHandler handles user and authentication API requests.
type UserHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		logger:           logger.With(slog.String("component", "user_handler")),
	}
}

// Register handles POST /users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := domain.NewUser(req.Username, req.Email, req.FirstName, req.LastName, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	hashed, err := h.passwordHasher.Hash(user.Password)
	if err != nil {
		h.logger.Error("failed to hash password", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to register user")
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "User already exists")
			return
		}
		h.logger.Error("failed to create user", "error", err, "email", req.Email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to register user")
		return
	}

	accessToken, refreshToken, err := h.issueTokenPair(r, user)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token")
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, AuthResponse{
		User:         userToResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "User registered successfully")
}

// Login handles POST /users/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("failed to get user by email", "error", err, "email", req.Email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	accessToken, refreshToken, err := h.issueTokenPair(r, user)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, AuthResponse{
		User:         userToResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "User logged in successfully")
}

// Refresh handles POST /users/refresh. It validates a refresh token,
// confirms the user still exists and rotates the token pair.
func (h *UserHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	user, err := h.userStore.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Token is valid but the subject is gone; treat as unauthenticated.
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid refresh token")
			return
		}
		h.logger.Error("failed to load user for refresh", "error", err, "user_id", claims.UserID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to refresh token")
		return
	}

	accessToken, refreshToken, err := h.issueTokenPair(r, user)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "Token refreshed successfully")
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBodyMap(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	query, page := BuildListQuery(userFilterFields, userSortFields, body, r.URL.Query())

	users, total, err := h.userStore.List(r.Context(), query)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to retrieve users", err)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, userToResponse(user))
	}

	shared.RespondWithPage(w, r, responses, store.NewPagination(total, query.Limit, page))
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, userToResponse(user), "User retrieved successfully")
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.userStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, userToResponse(user), "User deleted successfully")
}

func (h *UserHandler) issueTokenPair(r *http.Request, user *domain.User) (string, string, error) {
	accessToken, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("failed to generate access token", "error", err, "user_id", user.ID)
		return "", "", err
	}

	refreshToken, err := h.jwtService.GenerateRefreshToken(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("failed to generate refresh token", "error", err, "user_id", user.ID)
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
