package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/savori/savory-api/internal/api/shared"
	"github.com/savori/savory-api/internal/domain"
	"github.com/savori/savory-api/internal/service/address"
	"github.com/savori/savory-api/internal/service/ownership"
	"github.com/savori/savory-api/internal/store"
)

// Address list whitelists.
var (
	addressFilterFields = []string{"street", "city", "state", "zip", "country", "user_id"}
	addressSortFields   = []string{"id", "street", "city", "state", "zip", "country", "current"}
)

// AddressHandler handles address-related HTTP requests.
type AddressHandler struct {
	addressStore store.AddressStore
	creator      address.CurrentAddressCreator
	logger       *slog.Logger
}

// NewAddressHandler creates a new AddressHandler with the given dependencies.
func NewAddressHandler(
	addressStore store.AddressStore,
	creator address.CurrentAddressCreator,
	logger *slog.Logger,
) *AddressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AddressHandler{
		addressStore: addressStore,
		creator:      creator,
		logger:       logger.With(slog.String("component", "address_handler")),
	}
}

// Create handles POST /addresses. The new address becomes the caller's
// current one; any prior current address is demoted in the same
// transaction.
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateAddressRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	addr, err := domain.NewAddress(userID, req.Street, req.City, req.State, req.Zip, req.Country)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid address data: "+err.Error())
		return
	}

	if err := h.creator.CreateCurrent(r.Context(), addr); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to create address", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, addr, "New address created successfully")
}

// List handles POST /addresses/get.
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBodyMap(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	query, page := BuildListQuery(addressFilterFields, addressSortFields, body, r.URL.Query())

	addresses, total, err := h.addressStore.List(r.Context(), query)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to retrieve addresses", err)
		return
	}

	shared.RespondWithPage(w, r, addresses, store.NewPagination(total, query.Limit, page))
}

// Get handles GET /addresses/{id}. Reads are not ownership-gated.
func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	addr, err := h.addressStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, addr, "Address retrieved successfully")
}

// Update handles PUT /addresses/{id}.
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requireUserAndPathID(w, r, "id")
	if !ok {
		return
	}

	var patch AddressPatch
	if err := shared.DecodeJSON(r, &patch); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if patch.IsEmpty() {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	addr, err := h.addressStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := ownership.Check(addr, userID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if patch.Street != nil {
		addr.Street = *patch.Street
	}
	if patch.City != nil {
		addr.City = *patch.City
	}
	if patch.State != nil {
		addr.State = *patch.State
	}
	if patch.Zip != nil {
		addr.Zip = *patch.Zip
	}
	if patch.Country != nil {
		addr.Country = *patch.Country
	}
	addr.UpdatedAt = time.Now().UTC()

	if err := h.addressStore.Update(r.Context(), addr); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to update address", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, addr, "Address updated successfully")
}

// Delete handles DELETE /addresses/{id}.
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requireUserAndPathID(w, r, "id")
	if !ok {
		return
	}

	addr, err := h.addressStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := ownership.Check(addr, userID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.addressStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to delete address", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, addr, "Address deleted successfully")
}
