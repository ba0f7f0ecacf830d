package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/akmalmp/go-contacts/internal/logger"
	"github.com/akmalmp/go-contacts/internal/utils"
	"github.com/akmalmp/go-contacts/models"
	"github.com/go-chi/chi/v5"
)

// pathID parses a numeric path parameter. Route values that are not valid
// int64s behave exactly like missing resources.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// queryInt parses an optional numeric query parameter, falling back to zero
// when the parameter is absent or malformed. Zero values are later replaced
// by pagination defaults.
func queryInt(r *http.Request, name string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return value
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeMessageError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessageError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	contact, err := h.services.ContactService.Create(ctx, user, req)
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

	writeData(w, contact, http.StatusCreated)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeMessageError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	contactID, err := pathID(r, "contactID")
	if err != nil {
		writeMessageError(w, http.StatusNotFound, msgNotFound)
		return
	}

	contact, err := h.services.ContactService.Get(ctx, user, contactID)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	writeData(w, contact, http.StatusOK)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeMessageError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	contactID, err := pathID(r, "contactID")
	if err != nil {
		writeMessageError(w, http.StatusNotFound, msgNotFound)
		return
	}

	var req models.ContactRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessageError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	contact, err := h.services.ContactService.Update(ctx, user, contactID, req)
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

	writeData(w, contact, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeMessageError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	contactID, err := pathID(r, "contactID")
	if err != nil {
		writeMessageError(w, http.StatusNotFound, msgNotFound)
		return
	}

	if err = h.services.ContactService.Delete(ctx, user, contactID); err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	writeData(w, true, http.StatusOK)
}

func (h *Handler) searchContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeMessageError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	query := r.URL.Query()
	filter := models.ContactFilter{
		Name:  query.Get("name"),
		Email: query.Get("email"),
		Phone: query.Get("phone"),
	}
	page := models.PageRequest{
		Page: queryInt(r, "page"),
		Size: queryInt(r, "size"),
	}

	contacts, meta, err := h.services.ContactService.Search(ctx, user, filter, page)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	// empty pages serialize as [], not null
	if contacts == nil {
		contacts = []models.Contact{}
	}

	writePage(w, contacts, meta)
}
