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

// Todo list whitelists. Listing is always scoped to the authenticated
// user, so user_id is not a client-settable filter here.
var (
	todoFilterFields = []string{"name", "description", "completed", "created_at", "updated_at"}
	todoSortFields   = []string{"id", "name", "created_at", "updated_at"}
)

// TodoHandler handles todo-related HTTP requests.
type TodoHandler struct {
	todoStore store.TodoStore
	logger    *slog.Logger
}

// NewTodoHandler creates a new TodoHandler with the given dependencies.
func NewTodoHandler(todoStore store.TodoStore, logger *slog.Logger) *TodoHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TodoHandler{
		todoStore: todoStore,
		logger:    logger.With(slog.String("component", "todo_handler")),
	}
}

// Create handles POST /todos.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateTodoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	todo, err := domain.NewTodo(userID, req.Name, req.Description, req.Completed)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid todo data: "+err.Error())
		return
	}

	if err := h.todoStore.Create(r.Context(), todo); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to create todo", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, todo, "Todo created successfully")
}

// List handles POST /todos/get. Filters arrive in the body; pagination and
// sort in the query string. Results are always scoped to the caller's own
// todos.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	body, err := decodeBodyMap(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	query, page := BuildListQuery(todoFilterFields, todoSortFields, body, r.URL.Query())
	query.Filters["user_id"] = userID

	todos, total, err := h.todoStore.List(r.Context(), query)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to retrieve todos", err)
		return
	}

	shared.RespondWithPage(w, r, todos, store.NewPagination(total, query.Limit, page))
}

// Get handles GET /todos/{id}. Reads are not ownership-gated.
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	todo, err := h.todoStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, todo, "Todo retrieved successfully")
}

// Update handles PUT /todos/{id}.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requireUserAndPathID(w, r, "id")
	if !ok {
		return
	}

	var patch TodoPatch
	if err := shared.DecodeJSON(r, &patch); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if patch.IsEmpty() {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	todo, err := h.todoStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := ownership.Check(todo, userID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if patch.Name != nil {
		todo.Name = *patch.Name
	}
	if patch.Description != nil {
		todo.Description = *patch.Description
	}
	if patch.Completed != nil {
		todo.Completed = *patch.Completed
	}
	todo.UpdatedAt = time.Now().UTC()

	if err := h.todoStore.Update(r.Context(), todo); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to update todo", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, todo, "Todo updated successfully")
}

// Delete handles DELETE /todos/{id}.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requireUserAndPathID(w, r, "id")
	if !ok {
		return
	}

	todo, err := h.todoStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := ownership.Check(todo, userID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.todoStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to delete todo", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, todo, "Todo deleted successfully")
}
