package http

import (
	"errors"
	"net/http"

	"github.com/akmalmp/go-contacts/internal/logger"
	"github.com/akmalmp/go-contacts/internal/store"
)

// writeStoreError maps repository sentinels that every resource handler
// shares. Missing rows become a generic 404 regardless of whether the row
// does not exist or belongs to another user; everything else is a 500.
func (h *Handler) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, store.ErrContactNotFound),
		errors.Is(err, store.ErrAddressNotFound),
		errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Msg("requested resource was not found")
		writeMessageError(w, http.StatusNotFound, msgNotFound)
	default:
		log.Err(err).Msg("unexpected error occurred")
		writeMessageError(w, http.StatusInternalServerError, msgInternal)
	}
}
