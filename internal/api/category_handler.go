package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/savori/savory-api/internal/api/shared"
	"github.com/savori/savory-api/internal/domain"
	"github.com/savori/savory-api/internal/service/ownership"
	"github.com/savori/savory-api/internal/store"
)

// Category list whitelists.
var (
	categoryFilterFields = []string{"name"}
	categorySortFields   = []string{"name", "id"}
)

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	categoryStore store.CategoryStore
	logger        *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler with the given dependencies.
func NewCategoryHandler(categoryStore store.CategoryStore, logger *slog.Logger) *CategoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryHandler{
		categoryStore: categoryStore,
		logger:        logger.With(slog.String("component", "category_handler")),
	}
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateCategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	category, err := domain.NewCategory(userID, req.Name)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid category data: "+err.Error())
		return
	}

	if err := h.categoryStore.Create(r.Context(), category); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to create category", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, category, "Category created successfully")
}

// List handles POST /categories/get. Listing is public.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBodyMap(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	query, page := BuildListQuery(categoryFilterFields, categorySortFields, body, r.URL.Query())

	categories, total, err := h.categoryStore.List(r.Context(), query)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to retrieve categories", err)
		return
	}

	shared.RespondWithPage(w, r, categories, store.NewPagination(total, query.Limit, page))
}

// Get handles GET /categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	category, err := h.categoryStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, category, "Category retrieved successfully")
}

// Update handles PUT /categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requireUserAndPathID(w, r, "id")
	if !ok {
		return
	}

	var patch CategoryPatch
	if err := shared.DecodeJSON(r, &patch); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if patch.IsEmpty() {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.categoryStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := ownership.Check(category, userID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if patch.Name != nil {
		category.Name = *patch.Name
	}
	category.UpdatedAt = time.Now().UTC()

	if err := h.categoryStore.Update(r.Context(), category); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to update category", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, category, "Category updated successfully")
}

// Delete handles DELETE /categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requireUserAndPathID(w, r, "id")
	if !ok {
		return
	}

	category, err := h.categoryStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := ownership.Check(category, userID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.categoryStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to delete category", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, category, "Category deleted successfully")
}
