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
	"github.com/savori/savory-api/internal/service/address"
)

// Compile-time check kept out of the mocks package to avoid an import
// cycle with the address service's in-package tests.
var _ address.CurrentAddressCreator = (*mocks.MockCurrentAddressCreator)(nil)

func newTestAddress(t *testing.T, ownerID uuid.UUID) *domain.Address {
	t.Helper()

	addr, err := domain.NewAddress(ownerID, "1 Main St", "Springfield", "IL", "62701", "USA")
	require.NoError(t, err)
	return addr
}

func TestAddressHandler_Create(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("new address goes through the current-address path", func(t *testing.T) {
		t.Parallel()

		creator := &mocks.MockCurrentAddressCreator{}
		handler := NewAddressHandler(&mocks.MockAddressStore{}, creator, nil)

		req := asUser(newJSONRequest(t, http.MethodPost, "/api/addresses", map[string]any{
			"street":  "1 Main St",
			"city":    "Springfield",
			"state":   "IL",
			"zip":     "62701",
			"country": "USA",
		}), userID)
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, 1, creator.CreateCurrentCalls)
		assert.Equal(t, userID, creator.LastCreated.UserID)
		assert.True(t, creator.LastCreated.Current)

		env := decodeEnvelope(t, rec)
		assert.Equal(t, "New address created successfully", env.Message)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		t.Parallel()

		creator := &mocks.MockCurrentAddressCreator{}
		handler := NewAddressHandler(&mocks.MockAddressStore{}, creator, nil)

		req := asUser(newJSONRequest(t, http.MethodPost, "/api/addresses", map[string]any{
			"street": "1 Main St",
		}), userID)
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, creator.CreateCurrentCalls)
	})
}

func TestAddressHandler_Update(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("current flag cannot be patched", func(t *testing.T) {
		t.Parallel()

		// A body touching only the current flag carries no whitelisted
		// field, so the request is rejected outright.
		addressStore := &mocks.MockAddressStore{Address: newTestAddress(t, ownerID)}
		handler := NewAddressHandler(addressStore, &mocks.MockCurrentAddressCreator{}, nil)

		id := uuid.NewString()
		req := asUser(newJSONRequest(t, http.MethodPut, "/api/addresses/"+id, map[string]any{
			"current": false,
		}), ownerID)
		req = withPathParam(req, "id", id)
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, addressStore.UpdateCalls)
	})

	t.Run("owner updates whitelisted fields", func(t *testing.T) {
		t.Parallel()

		addr := newTestAddress(t, ownerID)
		addressStore := &mocks.MockAddressStore{Address: addr}
		handler := NewAddressHandler(addressStore, &mocks.MockCurrentAddressCreator{}, nil)

		req := asUser(newJSONRequest(t, http.MethodPut, "/api/addresses/"+addr.ID.String(), map[string]any{
			"city": "Chicago",
		}), ownerID)
		req = withPathParam(req, "id", addr.ID.String())
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 1, addressStore.UpdateCalls)
		assert.Equal(t, "Chicago", addressStore.LastUpdated.City)
		assert.Equal(t, "1 Main St", addressStore.LastUpdated.Street)
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		t.Parallel()

		addr := newTestAddress(t, ownerID)
		addressStore := &mocks.MockAddressStore{Address: addr}
		handler := NewAddressHandler(addressStore, &mocks.MockCurrentAddressCreator{}, nil)

		req := asUser(newJSONRequest(t, http.MethodPut, "/api/addresses/"+addr.ID.String(), map[string]any{
			"city": "Chicago",
		}), uuid.New())
		req = withPathParam(req, "id", addr.ID.String())
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Zero(t, addressStore.UpdateCalls)
	})
}

func TestAddressHandler_Delete_NonOwnerForbidden(t *testing.T) {
	t.Parallel()

	addr := newTestAddress(t, uuid.New())
	addressStore := &mocks.MockAddressStore{Address: addr}
	handler := NewAddressHandler(addressStore, &mocks.MockCurrentAddressCreator{}, nil)

	req := asUser(newJSONRequest(t, http.MethodDelete, "/api/addresses/"+addr.ID.String(), nil), uuid.New())
	req = withPathParam(req, "id", addr.ID.String())
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, addressStore.DeleteCalls)
}
