package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akmalmp/go-contacts/internal/logger"
	"github.com/akmalmp/go-contacts/internal/utils"
	"github.com/akmalmp/go-contacts/models"
)

// addressScope bundles the two path ids every address handler needs.
type addressScope struct {
	contactID int64
	addressID int64
}

// addressPathIDs resolves {contactID} and, when withAddress is set,
// {addressID} from the route. A malformed id is reported as a missing
// resource, matching the repository's not-found behaviour.
func addressPathIDs(r *http.Request, withAddress bool) (addressScope, error) {
	var scope addressScope
	var err error

	if scope.contactID, err = pathID(r, "contactID"); err != nil {
		return scope, err
	}
	if withAddress {
		if scope.addressID, err = pathID(r, "addressID"); err != nil {
			return scope, err
		}
	}

	return scope, nil
}

func (h *Handler) createAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeMessageError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	scope, err := addressPathIDs(r, false)
	if err != nil {
		writeMessageError(w, http.StatusNotFound, msgNotFound)
		return
	}

	var req models.AddressRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessageError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	address, err := h.services.AddressService.Create(ctx, user, scope.contactID, req)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			log.Err(err).Msg("invalid data provided")
			writeValidationErrors(w, verrs)
			return
		}
		h.writeStoreError(w, r, err)
		return
	}

	writeData(w, address, http.StatusCreated)
}

func (h *Handler) getAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeMessageError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	scope, err := addressPathIDs(r, true)
	if err != nil {
		writeMessageError(w, http.StatusNotFound, msgNotFound)
		return
	}

	address, err := h.services.AddressService.Get(ctx, user, scope.contactID, scope.addressID)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	writeData(w, address, http.StatusOK)
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeMessageError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	scope, err := addressPathIDs(r, false)
	if err != nil {
		writeMessageError(w, http.StatusNotFound, msgNotFound)
		return
	}

	addresses, err := h.services.AddressService.List(ctx, user, scope.contactID)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	// contacts without addresses serialize as [], not null
	if addresses == nil {
		addresses = []models.Address{}
	}

	writeData(w, addresses, http.StatusOK)
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeMessageError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	scope, err := addressPathIDs(r, true)
	if err != nil {
		writeMessageError(w, http.StatusNotFound, msgNotFound)
		return
	}

	var req models.AddressRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessageError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	address, err := h.services.AddressService.Update(ctx, user, scope.contactID, scope.addressID, req)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			log.Err(err).Msg("invalid data provided")
			writeValidationErrors(w, verrs)
			return
		}
		h.writeStoreError(w, r, err)
		return
	}

	writeData(w, address, http.StatusOK)
}

func (h *Handler) deleteAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeMessageError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	scope, err := addressPathIDs(r, true)
	if err != nil {
		writeMessageError(w, http.StatusNotFound, msgNotFound)
		return
	}

	if err = h.services.AddressService.Delete(ctx, user, scope.contactID, scope.addressID); err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	writeData(w, true, http.StatusOK)
}
