package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/akmalmp/go-contacts/internal/logger"
	"github.com/akmalmp/go-contacts/internal/store"
	"github.com/akmalmp/go-contacts/internal/utils"
	"github.com/akmalmp/go-contacts/models"
)

// userService is the concrete implementation of UserService.
// It handles user registration, credential verification, and the opaque
// session-token lifecycle using a UserRepository for persistence and bcrypt
// for password hashing.
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenGenerator produces the opaque bearer tokens issued on login.
	tokenGenerator *utils.TokenGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a new UserService wired to the given
// UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		tokenGenerator: utils.NewTokenGenerator(),
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates the request fields, hashes the password with bcrypt, and
// delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - [models.ValidationErrors] if a field is missing or malformed.
//   - [store.ErrUsernameAlreadyExists] if the username is taken.
func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateRegisterRequest(req); err != nil {
		log.Error().Str("username", req.Username).Msg("invalid registration data provided")
		return models.User{}, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := s.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a fresh session token.
//
// The username lookup and the bcrypt comparison both collapse into the same
// [ErrInvalidCredentials] so that a caller cannot tell which check failed.
// On success a new opaque token is generated and persisted on the user row,
// overwriting (and thereby revoking) any previous session.
func (s *userService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := s.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("username", req.Username).Msg("login with unknown username")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, req.Password) {
		log.Debug().Int64("id", foundUser.UserID).Msg("login with wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	token := s.tokenGenerator.Generate()
	if err = s.userRepository.SetToken(ctx, foundUser.UserID, token); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("persisting session token failed")
		return models.User{}, fmt.Errorf("persisting session token failed: %w", err)
	}

	foundUser.Token.String = token
	foundUser.Token.Valid = true

	return foundUser, nil
}

// Authenticate resolves an opaque bearer token to the user that owns it.
//
// Returns [store.ErrNoUserWasFound] for an empty, unknown, or revoked token.
func (s *userService) Authenticate(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, store.ErrNoUserWasFound
	}

	return s.userRepository.FindUserByToken(ctx, token)
}

// UpdateCurrent applies a partial profile update: name and/or password, each
// independently optional. A supplied password is re-hashed before storage.
func (s *userService) UpdateCurrent(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateUpdateUserRequest(req); err != nil {
		log.Error().Int64("id", user.UserID).Msg("invalid profile update data provided")
		return models.User{}, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		user.PasswordHash = hash
	}

	updatedUser, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("profile update ended with error")
		return models.User{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return updatedUser, nil
}

// Logout revokes the user's session by clearing the stored token.
func (s *userService) Logout(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.ClearToken(ctx, user.UserID); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("clearing session token failed")
		return fmt.Errorf("clearing session token failed: %w", err)
	}

	return nil
}
