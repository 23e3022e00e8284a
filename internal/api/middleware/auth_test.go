package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savori/savory-api/internal/api/shared"
	"github.com/savori/savory-api/internal/domain"
	"github.com/savori/savory-api/internal/mocks"
	"github.com/savori/savory-api/internal/service/auth"
	"github.com/savori/savory-api/internal/store"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("chef", "chef@example.com", "Sam", "Cook", "password123")
	require.NoError(t, err)
	user.HashedPassword = "hash"
	user.Password = ""

	newRequest := func(header string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/todos/"+uuid.NewString(), nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		return req
	}

	t.Run("valid token sets user ID in context", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{
			Claims: &auth.Claims{UserID: user.ID, TokenType: "access"},
		}
		userStore := &mocks.MockUserStore{User: user}
		mw := NewAuthMiddleware(jwtService, userStore)

		var gotUserID uuid.UUID
		var called bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			gotUserID, _ = GetUserID(r)
		})

		rec := httptest.NewRecorder()
		mw.Authenticate(next).ServeHTTP(rec, newRequest("Bearer some-token"))

		require.True(t, called)
		assert.Equal(t, user.ID, gotUserID)
		assert.Equal(t, 1, userStore.GetByIDCalls)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()

		mw := NewAuthMiddleware(&mocks.MockJWTService{}, &mocks.MockUserStore{})
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler should not run")
		})

		rec := httptest.NewRecorder()
		mw.Authenticate(next).ServeHTTP(rec, newRequest(""))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		t.Parallel()

		mw := NewAuthMiddleware(&mocks.MockJWTService{}, &mocks.MockUserStore{})
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler should not run")
		})

		for _, header := range []string{"some-token", "Basic abc", "Bearer a b"} {
			rec := httptest.NewRecorder()
			mw.Authenticate(next).ServeHTTP(rec, newRequest(header))
			assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{Err: auth.ErrExpiredToken}
		mw := NewAuthMiddleware(jwtService, &mocks.MockUserStore{})
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler should not run")
		})

		rec := httptest.NewRecorder()
		mw.Authenticate(next).ServeHTTP(rec, newRequest("Bearer expired"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token subject deleted since issuance", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{
			Claims: &auth.Claims{UserID: uuid.New(), TokenType: "access"},
		}
		userStore := &mocks.MockUserStore{Err: store.ErrUserNotFound}
		mw := NewAuthMiddleware(jwtService, userStore)
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler should not run")
		})

		rec := httptest.NewRecorder()
		mw.Authenticate(next).ServeHTTP(rec, newRequest("Bearer orphaned"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetUserID(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := GetUserID(req)
	assert.False(t, ok)

	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	got, ok := GetUserID(req.WithContext(ctx))
	assert.True(t, ok)
	assert.Equal(t, userID, got)
}
