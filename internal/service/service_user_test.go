package service

import (
	"context"
	"errors"
	"testing"

	"github.com/akmalmp/go-contacts/internal/logger"
	"github.com/akmalmp/go-contacts/internal/store"
	"github.com/akmalmp/go-contacts/internal/utils"
	"github.com/akmalmp/go-contacts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService(repo *mockUserRepository) *userService {
	return &userService{
		userRepository: repo,
		tokenGenerator: utils.NewTokenGenerator(),
		logger:         logger.Nop(),
	}
}

func TestRegister_Success(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestUserService(repo)

	registered, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "akmal",
		Password: "eekmu241",
		Name:     "Akmal Muhammad Pridianto",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, "akmal", registered.Username)
	// the stored credential is a bcrypt hash, never the plaintext
	assert.NotEqual(t, "eekmu241", persisted.PasswordHash)
	assert.True(t, utils.CheckPassword(persisted.PasswordHash, "eekmu241"))
	assert.False(t, registered.Token.Valid)
}

func TestRegister_ValidationErrors(t *testing.T) {
	svc := newTestUserService(&mockUserRepository{})

	_, err := svc.Register(context.Background(), models.RegisterRequest{})
	require.Error(t, err)

	var verrs models.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "username")
	assert.Contains(t, verrs, "password")
	assert.Contains(t, verrs, "name")
	assert.Equal(t, []string{"The username field is required."}, verrs["username"])
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}
	svc := newTestUserService(repo)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "akmal",
		Password: "eekmu241",
		Name:     "Akmal Muhammad Pridianto",
	})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestLogin_Success_PersistsFreshToken(t *testing.T) {
	hash, err := utils.HashPassword("test12345")
	require.NoError(t, err)

	var storedToken string
	repo := &mockUserRepository{
		findByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{UserID: 7, Username: username, Name: "test", PasswordHash: hash}, nil
		},
		setTokenFn: func(_ context.Context, userID int64, token string) error {
			storedToken = token
			return nil
		},
	}
	svc := newTestUserService(repo)

	loggedIn, err := svc.Login(context.Background(), models.LoginRequest{Username: "test", Password: "test12345"})
	require.NoError(t, err)

	require.True(t, loggedIn.Token.Valid)
	assert.NotEmpty(t, loggedIn.Token.String)
	assert.Equal(t, storedToken, loggedIn.Token.String)
}

func TestLogin_UnknownUserAndWrongPassword_SameError(t *testing.T) {
	hash, err := utils.HashPassword("test12345")
	require.NoError(t, err)

	unknownRepo := &mockUserRepository{
		findByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	wrongPasswordRepo := &mockUserRepository{
		findByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{UserID: 7, Username: username, PasswordHash: hash}, nil
		},
	}

	_, errUnknown := newTestUserService(unknownRepo).
		Login(context.Background(), models.LoginRequest{Username: "missing", Password: "test12345"})
	_, errWrong := newTestUserService(wrongPasswordRepo).
		Login(context.Background(), models.LoginRequest{Username: "test", Password: "wrong"})

	// both failure modes must be indistinguishable
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestLogin_EmptyFields(t *testing.T) {
	svc := newTestUserService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.LoginRequest{})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_EmptyToken(t *testing.T) {
	called := false
	repo := &mockUserRepository{
		findByTokenFn: func(_ context.Context, _ string) (models.User, error) {
			called = true
			return models.User{}, nil
		},
	}
	svc := newTestUserService(repo)

	_, err := svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
	assert.False(t, called, "repository must not be queried for an empty token")
}

func TestAuthenticate_RevokedToken(t *testing.T) {
	repo := &mockUserRepository{
		findByTokenFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestUserService(repo)

	_, err := svc.Authenticate(context.Background(), "revoked")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestUpdateCurrent_NameOnly(t *testing.T) {
	var updated models.User
	repo := &mockUserRepository{
		updateFn: func(_ context.Context, user models.User) (models.User, error) {
			updated = user
			return user, nil
		},
	}
	svc := newTestUserService(repo)

	name := "Akmmp"
	user := models.User{UserID: 7, Username: "test", Name: "test", PasswordHash: "$2a$10$oldhash"}

	result, err := svc.UpdateCurrent(context.Background(), user, models.UpdateUserRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Akmmp", result.Name)
	assert.Equal(t, "$2a$10$oldhash", updated.PasswordHash, "password must stay untouched")
}

func TestUpdateCurrent_PasswordRehashed(t *testing.T) {
	var updated models.User
	repo := &mockUserRepository{
		updateFn: func(_ context.Context, user models.User) (models.User, error) {
			updated = user
			return user, nil
		},
	}
	svc := newTestUserService(repo)

	password := "baru12345"
	user := models.User{UserID: 7, Username: "test", Name: "test", PasswordHash: "$2a$10$oldhash"}

	_, err := svc.UpdateCurrent(context.Background(), user, models.UpdateUserRequest{Password: &password})
	require.NoError(t, err)

	assert.NotEqual(t, "$2a$10$oldhash", updated.PasswordHash)
	assert.True(t, utils.CheckPassword(updated.PasswordHash, "baru12345"))
}

func TestUpdateCurrent_NameTooLong(t *testing.T) {
	svc := newTestUserService(&mockUserRepository{})

	longName := make([]byte, 101)
	for i := range longName {
		longName[i] = 'A'
	}
	name := string(longName)

	_, err := svc.UpdateCurrent(context.Background(), models.User{UserID: 7}, models.UpdateUserRequest{Name: &name})
	require.Error(t, err)

	var verrs models.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{"The name field must not be greater than 100 characters."}, verrs["name"])
}

func TestLogout_ClearsToken(t *testing.T) {
	var clearedID int64
	repo := &mockUserRepository{
		clearTokenFn: func(_ context.Context, userID int64) error {
			clearedID = userID
			return nil
		},
	}
	svc := newTestUserService(repo)

	require.NoError(t, svc.Logout(context.Background(), models.User{UserID: 7}))
	assert.Equal(t, int64(7), clearedID)
}

func TestLogout_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		clearTokenFn: func(_ context.Context, _ int64) error {
			return errors.New("db down")
		},
	}
	svc := newTestUserService(repo)

	assert.Error(t, svc.Logout(context.Background(), models.User{UserID: 7}))
}
