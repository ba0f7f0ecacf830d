package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akmalmp/go-contacts/internal/logger"
	"github.com/akmalmp/go-contacts/internal/service"
	"github.com/akmalmp/go-contacts/internal/store"
	"github.com/akmalmp/go-contacts/internal/utils"
	"github.com/akmalmp/go-contacts/models"
)

// loginResponse extends the public user view with the freshly issued token.
// Login is the only place the token ever appears in a response body.
type loginResponse struct {
	models.UserView
	Token string `json:"token"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessageError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	registeredUser, err := h.services.UserService.Register(ctx, req)
	if err != nil {
		var verrs models.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			log.Err(err).Msg("invalid data provided")
			writeValidationErrors(w, verrs)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			writeFieldError(w, http.StatusBadRequest, "username", msgUsernameTaken)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeMessageError(w, http.StatusInternalServerError, msgInternal)
			return
		}
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user successfully registered")

	writeData(w, registeredUser.View(), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessageError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	foundUser, err := h.services.UserService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("no user was found/wrong password")
			writeMessageError(w, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeMessageError(w, http.StatusInternalServerError, msgInternal)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	writeData(w, loginResponse{
		UserView: foundUser.View(),
		Token:    foundUser.Token.String,
	}, http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeMessageError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	writeData(w, user.View(), http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeMessageError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessageError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	updatedUser, err := h.services.UserService.UpdateCurrent(ctx, user, req)
	if err != nil {
		var verrs models.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			log.Err(err).Msg("invalid data provided")
			writeValidationErrors(w, verrs)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during profile update")
			writeMessageError(w, http.StatusInternalServerError, msgInternal)
			return
		}
	}

	writeData(w, updatedUser.View(), http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeMessageError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	if err := h.services.UserService.Logout(ctx, user); err != nil {
		log.Err(err).Msg("unexpected error occurred during logout")
		writeMessageError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeData(w, true, http.StatusOK)
}
