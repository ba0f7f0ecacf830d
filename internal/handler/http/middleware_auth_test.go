package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akmalmp/go-contacts/internal/store"
	"github.com/akmalmp/go-contacts/internal/utils"
	"github.com/akmalmp/go-contacts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authMiddlewareHandler(t *testing.T, users *mockUserService, next http.Handler) http.Handler {
	t.Helper()
	h := newTestHandler(t, users, nil, nil)
	return h.auth(next)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		nextCalled = true
	})

	handler := authMiddlewareHandler(t, &mockUserService{}, next)

	req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, []string{msgUnauthorized}, env.Errors["message"])
}

func TestAuthMiddleware_UnknownToken(t *testing.T) {
	users := &mockUserService{
		authenticateFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	handler := authMiddlewareHandler(t, users, http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
	req.Header.Set("Authorization", "revoked-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, []string{msgUnauthorized}, env.Errors["message"])
}

func TestAuthMiddleware_RawTokenPassedVerbatim(t *testing.T) {
	var gotToken string
	users := &mockUserService{
		authenticateFn: func(_ context.Context, token string) (models.User, error) {
			gotToken = token
			return authedUser, nil
		},
	}

	var userInContext models.User
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		userInContext, _ = utils.GetUserFromContext(r.Context())
	})

	handler := authMiddlewareHandler(t, users, next)

	// no scheme prefix: the header value IS the token
	req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
	req.Header.Set("Authorization", "Bearer something")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer something", gotToken)
	assert.Equal(t, authedUser, userInContext)
}
