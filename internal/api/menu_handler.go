package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/savori/savory-api/internal/api/shared"
	"github.com/savori/savory-api/internal/domain"
	"github.com/savori/savory-api/internal/service/ownership"
	"github.com/savori/savory-api/internal/store"
)

// Menu list whitelists.
var (
	menuFilterFields = []string{"name", "price", "description", "category_id"}
	menuSortFields   = []string{"id", "name", "price"}
)

// MenuHandler handles menu-related HTTP requests.
type MenuHandler struct {
	menuStore store.MenuStore
	logger    *slog.Logger
}

// NewMenuHandler creates a new MenuHandler with the given dependencies.
func NewMenuHandler(menuStore store.MenuStore, logger *slog.Logger) *MenuHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MenuHandler{
		menuStore: menuStore,
		logger:    logger.With(slog.String("component", "menu_handler")),
	}
}

// Create handles POST /menus.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateMenuRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid category_id")
		return
	}

	menu, err := domain.NewMenu(userID, categoryID, req.Name, req.Description, req.Price)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid menu data: "+err.Error())
		return
	}

	if err := h.menuStore.Create(r.Context(), menu); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to create menu", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, menu, "Menu created successfully")
}

// List handles POST /menus/get. Listing is public.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBodyMap(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	query, page := BuildListQuery(menuFilterFields, menuSortFields, body, r.URL.Query())

	menus, total, err := h.menuStore.List(r.Context(), query)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to retrieve menus", err)
		return
	}

	shared.RespondWithPage(w, r, menus, store.NewPagination(total, query.Limit, page))
}

// Get handles GET /menus/{menuID}.
func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "menuID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	menu, err := h.menuStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, menu, "Menu retrieved successfully")
}

// Update handles PUT /menus/{id}.
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requireUserAndPathID(w, r, "id")
	if !ok {
		return
	}

	var patch MenuPatch
	if err := shared.DecodeJSON(r, &patch); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if patch.IsEmpty() {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	menu, err := h.menuStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := ownership.Check(menu, userID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if patch.Name != nil {
		menu.Name = *patch.Name
	}
	if patch.Description != nil {
		menu.Description = *patch.Description
	}
	if patch.Price != nil {
		menu.Price = *patch.Price
	}
	if patch.CategoryID != nil {
		categoryID, err := uuid.Parse(*patch.CategoryID)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid category_id")
			return
		}
		menu.CategoryID = categoryID
	}
	menu.UpdatedAt = time.Now().UTC()

	if err := h.menuStore.Update(r.Context(), menu); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to update menu", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, menu, "Menu updated successfully")
}

// Delete handles DELETE /menus/{id}.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requireUserAndPathID(w, r, "id")
	if !ok {
		return
	}

	menu, err := h.menuStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := ownership.Check(menu, userID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.menuStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to delete menu", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, menu, "Menu deleted successfully")
}
