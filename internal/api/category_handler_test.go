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
	"github.com/savori/savory-api/internal/store"
)

func newTestCategory(t *testing.T, ownerID uuid.UUID) *domain.Category {
	t.Helper()

	category, err := domain.NewCategory(ownerID, "Pizzas")
	require.NoError(t, err)
	return category
}

func TestCategoryHandler_Create(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	categoryStore := &mocks.MockCategoryStore{}
	handler := NewCategoryHandler(categoryStore, nil)

	req := asUser(newJSONRequest(t, http.MethodPost, "/api/categories", map[string]any{
		"name": "Pizzas",
	}), userID)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 1, categoryStore.CreateCalls)
	assert.Equal(t, userID, categoryStore.LastCreated.UserID)
	assert.Equal(t, "Pizzas", categoryStore.LastCreated.Name)
}

func TestCategoryHandler_Get_NotFound(t *testing.T) {
	t.Parallel()

	categoryStore := &mocks.MockCategoryStore{Err: store.ErrCategoryNotFound}
	handler := NewCategoryHandler(categoryStore, nil)

	id := uuid.NewString()
	req := newJSONRequest(t, http.MethodGet, "/api/categories/"+id, nil)
	req = withPathParam(req, "id", id)
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Category not found", env.Message)
}

func TestCategoryHandler_Update_NonOwnerForbidden(t *testing.T) {
	t.Parallel()

	category := newTestCategory(t, uuid.New())
	categoryStore := &mocks.MockCategoryStore{Category: category}
	handler := NewCategoryHandler(categoryStore, nil)

	req := asUser(newJSONRequest(t, http.MethodPut, "/api/categories/"+category.ID.String(), map[string]any{
		"name": "Taken over",
	}), uuid.New())
	req = withPathParam(req, "id", category.ID.String())
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, categoryStore.UpdateCalls)
}

func TestCategoryHandler_List_Public(t *testing.T) {
	t.Parallel()

	categoryStore := &mocks.MockCategoryStore{
		Categories: []*domain.Category{newTestCategory(t, uuid.New())},
		Total:      1,
	}
	handler := NewCategoryHandler(categoryStore, nil)

	req := newJSONRequest(t, http.MethodPost, "/api/categories/get", map[string]any{
		"name": "Pizzas",
		"id":   "ignored",
	})
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, categoryStore.ListCalls)
	assert.Equal(t, "Pizzas", categoryStore.LastListQuery.Filters["name"])
	assert.NotContains(t, categoryStore.LastListQuery.Filters, "id")
}
