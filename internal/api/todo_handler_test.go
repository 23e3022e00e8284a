package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savori/savory-api/internal/domain"
	"github.com/savori/savory-api/internal/mocks"
)

func newTestTodo(t *testing.T, ownerID uuid.UUID) *domain.Todo {
	t.Helper()

	todo, err := domain.NewTodo(ownerID, "Buy groceries", "milk and bread", false)
	require.NoError(t, err)
	return todo
}

func TestTodoHandler_Create(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("stamps the authenticated user as owner", func(t *testing.T) {
		t.Parallel()

		todoStore := &mocks.MockTodoStore{}
		handler := NewTodoHandler(todoStore, nil)

		req := asUser(newJSONRequest(t, http.MethodPost, "/api/todos", map[string]any{
			"name":        "Buy groceries",
			"description": "milk and bread",
		}), userID)
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, 1, todoStore.CreateCalls)
		assert.Equal(t, userID, todoStore.LastCreated.UserID)
		assert.Equal(t, "Buy groceries", todoStore.LastCreated.Name)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		t.Parallel()

		todoStore := &mocks.MockTodoStore{}
		handler := NewTodoHandler(todoStore, nil)

		req := asUser(newJSONRequest(t, http.MethodPost, "/api/todos", map[string]any{
			"description": "no name given",
		}), userID)
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, todoStore.CreateCalls)
	})

	t.Run("rejects unauthenticated request", func(t *testing.T) {
		t.Parallel()

		todoStore := &mocks.MockTodoStore{}
		handler := NewTodoHandler(todoStore, nil)

		req := newJSONRequest(t, http.MethodPost, "/api/todos", map[string]any{
			"name":        "Buy groceries",
			"description": "milk and bread",
		})
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Zero(t, todoStore.CreateCalls)
	})
}

func TestTodoHandler_List_ScopesToCaller(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	todoStore := &mocks.MockTodoStore{
		Todos: []*domain.Todo{newTestTodo(t, userID)},
		Total: 1,
	}
	handler := NewTodoHandler(todoStore, nil)

	// The body tries to list someone else's todos; the handler must
	// overwrite the filter with the caller's own ID.
	req := asUser(newJSONRequest(t, http.MethodPost, "/api/todos/get?page=2&limit=5", map[string]any{
		"user_id":   uuid.New().String(),
		"completed": true,
	}), userID)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, todoStore.ListCalls)
	assert.Equal(t, userID, todoStore.LastListQuery.Filters["user_id"])
	assert.Equal(t, true, todoStore.LastListQuery.Filters["completed"])
	assert.Equal(t, 5, todoStore.LastListQuery.Limit)
	assert.Equal(t, 5, todoStore.LastListQuery.Offset)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(1), env.Pagination.TotalItems)
	assert.Equal(t, 2, env.Pagination.CurrentPage)
}

func TestTodoHandler_Update(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("applies whitelisted fields", func(t *testing.T) {
		t.Parallel()

		todo := newTestTodo(t, ownerID)
		todoStore := &mocks.MockTodoStore{Todo: todo}
		handler := NewTodoHandler(todoStore, nil)

		req := asUser(newJSONRequest(t, http.MethodPut, "/api/todos/"+todo.ID.String(), map[string]any{
			"completed": true,
		}), ownerID)
		req = withPathParam(req, "id", todo.ID.String())
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 1, todoStore.UpdateCalls)
		assert.True(t, todoStore.LastUpdated.Completed)
		assert.Equal(t, "Buy groceries", todoStore.LastUpdated.Name)
	})

	t.Run("empty patch is rejected before any store call", func(t *testing.T) {
		t.Parallel()

		todoStore := &mocks.MockTodoStore{}
		handler := NewTodoHandler(todoStore, nil)

		req := asUser(newJSONRequest(t, http.MethodPut, "/api/todos/"+uuid.NewString(), map[string]any{}), ownerID)
		req = withPathParam(req, "id", uuid.NewString())
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, todoStore.UpdateCalls)

		env := decodeEnvelope(t, rec)
		assert.True(t, env.Error)
		assert.Equal(t, "Invalid request body", env.Message)
	})

	t.Run("non-whitelisted fields only is rejected", func(t *testing.T) {
		t.Parallel()

		todoStore := &mocks.MockTodoStore{}
		handler := NewTodoHandler(todoStore, nil)

		req := asUser(newJSONRequest(t, http.MethodPut, "/api/todos/"+uuid.NewString(), map[string]any{
			"user_id": uuid.NewString(),
			"id":      uuid.NewString(),
		}), ownerID)
		req = withPathParam(req, "id", uuid.NewString())
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, todoStore.UpdateCalls)
	})

	t.Run("non-owner gets forbidden and nothing is written", func(t *testing.T) {
		t.Parallel()

		todo := newTestTodo(t, ownerID)
		todoStore := &mocks.MockTodoStore{Todo: todo}
		handler := NewTodoHandler(todoStore, nil)

		req := asUser(newJSONRequest(t, http.MethodPut, "/api/todos/"+todo.ID.String(), map[string]any{
			"name": "hijacked",
		}), uuid.New())
		req = withPathParam(req, "id", todo.ID.String())
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Zero(t, todoStore.UpdateCalls)

		env := decodeEnvelope(t, rec)
		assert.Equal(t, "You are not permitted to modify this resource", env.Message)
	})

	t.Run("invalid path id", func(t *testing.T) {
		t.Parallel()

		todoStore := &mocks.MockTodoStore{}
		handler := NewTodoHandler(todoStore, nil)

		req := asUser(newJSONRequest(t, http.MethodPut, "/api/todos/not-a-uuid", map[string]any{
			"name": "x",
		}), ownerID)
		req = withPathParam(req, "id", "not-a-uuid")
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTodoHandler_Delete(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("owner deletes and receives the removed todo", func(t *testing.T) {
		t.Parallel()

		todo := newTestTodo(t, ownerID)
		todoStore := &mocks.MockTodoStore{Todo: todo}
		handler := NewTodoHandler(todoStore, nil)

		req := asUser(newJSONRequest(t, http.MethodDelete, "/api/todos/"+todo.ID.String(), nil), ownerID)
		req = withPathParam(req, "id", todo.ID.String())
		rec := httptest.NewRecorder()

		handler.Delete(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 1, todoStore.DeleteCalls)
		assert.Equal(t, todo.ID, todoStore.LastDeleteID)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		t.Parallel()

		todo := newTestTodo(t, ownerID)
		todoStore := &mocks.MockTodoStore{Todo: todo}
		handler := NewTodoHandler(todoStore, nil)

		req := asUser(newJSONRequest(t, http.MethodDelete, "/api/todos/"+todo.ID.String(), nil), uuid.New())
		req = withPathParam(req, "id", todo.ID.String())
		rec := httptest.NewRecorder()

		handler.Delete(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Zero(t, todoStore.DeleteCalls)
	})
}
