package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/savori/savory-api/internal/api/shared"
	"github.com/savori/savory-api/internal/domain"
	"github.com/savori/savory-api/internal/store"
)

// MenuOptionHandler handles menu option HTTP requests.
type MenuOptionHandler struct {
	menuOptionStore store.MenuOptionStore
	menuStore       store.MenuStore
	logger          *slog.Logger
}

// NewMenuOptionHandler creates a new MenuOptionHandler with the given
// dependencies.
func NewMenuOptionHandler(
	menuOptionStore store.MenuOptionStore,
	menuStore store.MenuStore,
	logger *slog.Logger,
) *MenuOptionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MenuOptionHandler{
		menuOptionStore: menuOptionStore,
		menuStore:       menuStore,
		logger:          logger.With(slog.String("component", "menu_option_handler")),
	}
}

// Create handles POST /menu-options. The referenced menu must exist.
func (h *MenuOptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateMenuOptionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	menuID, err := uuid.Parse(req.MenuID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid menu_id")
		return
	}

	if _, err := h.menuStore.GetByID(r.Context(), menuID); err != nil {
		if errors.Is(err, store.ErrMenuNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Menu not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create menu option", err)
		return
	}

	option, err := domain.NewMenuOption(
		userID,
		menuID,
		req.Name,
		req.MaxSelection,
		req.Required,
		req.MultipleSelection,
	)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid menu option data: "+err.Error())
		return
	}

	if err := h.menuOptionStore.Create(r.Context(), option); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to create menu option", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, option, "Menu option created successfully")
}
