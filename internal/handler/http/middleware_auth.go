package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/akmalmp/go-contacts/internal/logger"
	"github.com/akmalmp/go-contacts/internal/store"
	"github.com/akmalmp/go-contacts/internal/utils"
)

// auth is an HTTP middleware that enforces token-based authentication.
//
// The "Authorization" header carries the opaque token verbatim, with no
// scheme prefix. The token is resolved against the users table via
// [service.UserService.Authenticate] and — on success — the authenticated
// user is stored in the request context under [utils.UserCtxKey] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent or the token does not resolve to a user (unknown or revoked).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token := r.Header.Get("Authorization")
		if token == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeMessageError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.UserService.Authenticate(ctx, token)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNoUserWasFound):
				log.Err(err).Msg("token does not resolve to a user")
				writeMessageError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during token lookup")
				writeMessageError(w, http.StatusInternalServerError, msgInternal)
				return
			}
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-resolving the token.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
