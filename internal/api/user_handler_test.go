package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savori/savory-api/internal/domain"
	"github.com/savori/savory-api/internal/mocks"
	"github.com/savori/savory-api/internal/service/auth"
	"github.com/savori/savory-api/internal/store"
)

func newTestUser(t *testing.T) *domain.User {
	t.Helper()

	user, err := domain.NewUser("chef", "chef@example.com", "Sam", "Cook", "password123")
	require.NoError(t, err)
	user.HashedPassword = "hashed:password123"
	user.Password = ""
	return user
}

func newUserHandler(userStore *mocks.MockUserStore, hasher *mocks.MockPasswordHasher) *UserHandler {
	return NewUserHandler(userStore, &mocks.MockJWTService{}, hasher, hasher, nil)
}

func TestUserHandler_Register(t *testing.T) {
	t.Parallel()

	registerBody := map[string]any{
		"username":   "chef",
		"email":      "chef@example.com",
		"first_name": "Sam",
		"last_name":  "Cook",
		"password":   "password123",
	}

	t.Run("success returns user and token pair", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{}
		hasher := &mocks.MockPasswordHasher{}
		handler := newUserHandler(userStore, hasher)

		req := newJSONRequest(t, http.MethodPost, "/api/users", registerBody)
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 1, userStore.CreateCalls)
		assert.Equal(t, 1, hasher.HashCalls)

		env := decodeEnvelope(t, rec)
		assert.False(t, env.Error)

		data, err := json.Marshal(env.Data)
		require.NoError(t, err)
		var resp AuthResponse
		require.NoError(t, json.Unmarshal(data, &resp))
		assert.Equal(t, "chef", resp.User.Username)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
	})

	t.Run("duplicate email yields conflict", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				return store.ErrUserExists
			},
		}
		handler := newUserHandler(userStore, &mocks.MockPasswordHasher{})

		req := newJSONRequest(t, http.MethodPost, "/api/users", registerBody)
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "User already exists", env.Message)
	})

	t.Run("short password rejected", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{}
		handler := newUserHandler(userStore, &mocks.MockPasswordHasher{})

		body := map[string]any{
			"username":   "chef",
			"email":      "chef@example.com",
			"first_name": "Sam",
			"last_name":  "Cook",
			"password":   "short",
		}
		req := newJSONRequest(t, http.MethodPost, "/api/users", body)
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, userStore.CreateCalls)
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Parallel()

	loginBody := map[string]any{
		"email":    "chef@example.com",
		"password": "password123",
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{User: newTestUser(t)}
		handler := newUserHandler(userStore, &mocks.MockPasswordHasher{})

		req := newJSONRequest(t, http.MethodPost, "/api/users/login", loginBody)
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown email yields not found", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{Err: store.ErrUserNotFound}
		handler := newUserHandler(userStore, &mocks.MockPasswordHasher{})

		req := newJSONRequest(t, http.MethodPost, "/api/users/login", loginBody)
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "User not found", env.Message)
	})

	t.Run("wrong password yields unauthorized", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{User: newTestUser(t)}
		hasher := &mocks.MockPasswordHasher{CompareErr: assert.AnError}
		handler := newUserHandler(userStore, hasher)

		req := newJSONRequest(t, http.MethodPost, "/api/users/login", loginBody)
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "Invalid credentials", env.Message)
	})
}

func TestUserHandler_Refresh(t *testing.T) {
	t.Parallel()

	refreshBody := map[string]any{"refresh_token": "some-refresh-token"}

	t.Run("success rotates the pair", func(t *testing.T) {
		t.Parallel()

		user := newTestUser(t)
		userStore := &mocks.MockUserStore{User: user}
		jwtService := &mocks.MockJWTService{
			Claims: &auth.Claims{UserID: user.ID, TokenType: "refresh"},
		}
		handler := NewUserHandler(userStore, jwtService, &mocks.MockPasswordHasher{}, &mocks.MockPasswordHasher{}, nil)

		req := newJSONRequest(t, http.MethodPost, "/api/users/refresh", refreshBody)
		rec := httptest.NewRecorder()

		handler.Refresh(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, jwtService.ValidateRefreshTokenCalls)
		assert.Equal(t, 1, jwtService.GenerateTokenCalls)
		assert.Equal(t, 1, jwtService.GenerateRefreshTokenCalls)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{Err: auth.ErrInvalidRefreshToken}
		handler := NewUserHandler(&mocks.MockUserStore{}, jwtService, &mocks.MockPasswordHasher{}, &mocks.MockPasswordHasher{}, nil)

		req := newJSONRequest(t, http.MethodPost, "/api/users/refresh", refreshBody)
		rec := httptest.NewRecorder()

		handler.Refresh(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "Invalid refresh token", env.Message)
	})

	t.Run("token subject no longer exists", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{
			Claims: &auth.Claims{UserID: uuid.New(), TokenType: "refresh"},
		}
		userStore := &mocks.MockUserStore{Err: store.ErrUserNotFound}
		handler := NewUserHandler(userStore, jwtService, &mocks.MockPasswordHasher{}, &mocks.MockPasswordHasher{}, nil)

		req := newJSONRequest(t, http.MethodPost, "/api/users/refresh", refreshBody)
		rec := httptest.NewRecorder()

		handler.Refresh(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserHandler_Delete_ReturnsRemovedUser(t *testing.T) {
	t.Parallel()

	user := newTestUser(t)
	userStore := &mocks.MockUserStore{User: user}
	handler := newUserHandler(userStore, &mocks.MockPasswordHasher{})

	req := newJSONRequest(t, http.MethodDelete, "/api/users/"+user.ID.String(), nil)
	req = withPathParam(req, "id", user.ID.String())
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, userStore.DeleteCalls)
	assert.Equal(t, user.ID, userStore.LastDeleteID)
}
