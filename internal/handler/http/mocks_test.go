package http

import (
	"context"
	"testing"

	"github.com/akmalmp/go-contacts/internal/logger"
	"github.com/akmalmp/go-contacts/internal/service"
	"github.com/akmalmp/go-contacts/models"
)

// ─────────────────────────────────────────────
// Mock: service.UserService
// ─────────────────────────────────────────────

// mockUserService implements service.UserService for unit tests.
// Each method field can be overridden per test case.
type mockUserService struct {
	registerFn      func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn         func(ctx context.Context, req models.LoginRequest) (models.User, error)
	authenticateFn  func(ctx context.Context, token string) (models.User, error)
	updateCurrentFn func(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.User, error)
	logoutFn        func(ctx context.Context, user models.User) error
}

func (m *mockUserService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockUserService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockUserService) Authenticate(ctx context.Context, token string) (models.User, error) {
	return m.authenticateFn(ctx, token)
}

func (m *mockUserService) UpdateCurrent(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.User, error) {
	return m.updateCurrentFn(ctx, user, req)
}

func (m *mockUserService) Logout(ctx context.Context, user models.User) error {
	return m.logoutFn(ctx, user)
}

// ─────────────────────────────────────────────
// Mock: service.ContactService
// ─────────────────────────────────────────────

type mockContactService struct {
	createFn func(ctx context.Context, user models.User, req models.ContactRequest) (models.Contact, error)
	getFn    func(ctx context.Context, user models.User, contactID int64) (models.Contact, error)
	updateFn func(ctx context.Context, user models.User, contactID int64, req models.ContactRequest) (models.Contact, error)
	deleteFn func(ctx context.Context, user models.User, contactID int64) error
	searchFn func(ctx context.Context, user models.User, filter models.ContactFilter, page models.PageRequest) ([]models.Contact, *models.PageMeta, error)
}

func (m *mockContactService) Create(ctx context.Context, user models.User, req models.ContactRequest) (models.Contact, error) {
	return m.createFn(ctx, user, req)
}

func (m *mockContactService) Get(ctx context.Context, user models.User, contactID int64) (models.Contact, error) {
	return m.getFn(ctx, user, contactID)
}

func (m *mockContactService) Update(ctx context.Context, user models.User, contactID int64, req models.ContactRequest) (models.Contact, error) {
	return m.updateFn(ctx, user, contactID, req)
}

func (m *mockContactService) Delete(ctx context.Context, user models.User, contactID int64) error {
	return m.deleteFn(ctx, user, contactID)
}

func (m *mockContactService) Search(ctx context.Context, user models.User, filter models.ContactFilter, page models.PageRequest) ([]models.Contact, *models.PageMeta, error) {
	return m.searchFn(ctx, user, filter, page)
}

// ─────────────────────────────────────────────
// Mock: service.AddressService
// ─────────────────────────────────────────────

type mockAddressService struct {
	createFn func(ctx context.Context, user models.User, contactID int64, req models.AddressRequest) (models.Address, error)
	getFn    func(ctx context.Context, user models.User, contactID, addressID int64) (models.Address, error)
	listFn   func(ctx context.Context, user models.User, contactID int64) ([]models.Address, error)
	updateFn func(ctx context.Context, user models.User, contactID, addressID int64, req models.AddressRequest) (models.Address, error)
	deleteFn func(ctx context.Context, user models.User, contactID, addressID int64) error
}

func (m *mockAddressService) Create(ctx context.Context, user models.User, contactID int64, req models.AddressRequest) (models.Address, error) {
	return m.createFn(ctx, user, contactID, req)
}

func (m *mockAddressService) Get(ctx context.Context, user models.User, contactID, addressID int64) (models.Address, error) {
	return m.getFn(ctx, user, contactID, addressID)
}

func (m *mockAddressService) List(ctx context.Context, user models.User, contactID int64) ([]models.Address, error) {
	return m.listFn(ctx, user, contactID)
}

func (m *mockAddressService) Update(ctx context.Context, user models.User, contactID, addressID int64, req models.AddressRequest) (models.Address, error) {
	return m.updateFn(ctx, user, contactID, addressID, req)
}

func (m *mockAddressService) Delete(ctx context.Context, user models.User, contactID, addressID int64) error {
	return m.deleteFn(ctx, user, contactID, addressID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler around the provided service mocks. Nil
// mocks are fine for tests that never reach the corresponding service.
func newTestHandler(t *testing.T, users service.UserService, contacts service.ContactService, addresses service.AddressService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{
		UserService:    users,
		ContactService: contacts,
		AddressService: addresses,
	}, logger.Nop())
}
