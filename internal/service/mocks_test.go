package service

import (
	"context"

	"github.com/akmalmp/go-contacts/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn         func(ctx context.Context, user models.User) (models.User, error)
	findByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findByTokenFn    func(ctx context.Context, token string) (models.User, error)
	updateFn         func(ctx context.Context, user models.User) (models.User, error)
	setTokenFn       func(ctx context.Context, userID int64, token string) error
	clearTokenFn     func(ctx context.Context, userID int64) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByToken(ctx context.Context, token string) (models.User, error) {
	if m.findByTokenFn != nil {
		return m.findByTokenFn(ctx, token)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) SetToken(ctx context.Context, userID int64, token string) error {
	if m.setTokenFn != nil {
		return m.setTokenFn(ctx, userID, token)
	}
	return nil
}

func (m *mockUserRepository) ClearToken(ctx context.Context, userID int64) error {
	if m.clearTokenFn != nil {
		return m.clearTokenFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ContactRepository
// ─────────────────────────────────────────────

type mockContactRepository struct {
	createFn func(ctx context.Context, contact models.Contact) (models.Contact, error)
	findFn   func(ctx context.Context, userID, contactID int64) (models.Contact, error)
	updateFn func(ctx context.Context, contact models.Contact) (models.Contact, error)
	deleteFn func(ctx context.Context, userID, contactID int64) error
	searchFn func(ctx context.Context, userID int64, filter models.ContactFilter, page models.PageRequest) ([]models.Contact, int64, error)
}

func (m *mockContactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if m.createFn != nil {
		return m.createFn(ctx, contact)
	}
	return contact, nil
}

func (m *mockContactRepository) FindContact(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	if m.findFn != nil {
		return m.findFn(ctx, userID, contactID)
	}
	return models.Contact{ContactID: contactID, UserID: userID}, nil
}

func (m *mockContactRepository) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, contact)
	}
	return contact, nil
}

func (m *mockContactRepository) DeleteContact(ctx context.Context, userID, contactID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, contactID)
	}
	return nil
}

func (m *mockContactRepository) SearchContacts(ctx context.Context, userID int64, filter models.ContactFilter, page models.PageRequest) ([]models.Contact, int64, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, userID, filter, page)
	}
	return nil, 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.AddressRepository
// ─────────────────────────────────────────────

type mockAddressRepository struct {
	createFn        func(ctx context.Context, address models.Address) (models.Address, error)
	findFn          func(ctx context.Context, contactID, addressID int64) (models.Address, error)
	findByContactFn func(ctx context.Context, contactID int64) ([]models.Address, error)
	updateFn        func(ctx context.Context, address models.Address) (models.Address, error)
	deleteFn        func(ctx context.Context, contactID, addressID int64) error
}

func (m *mockAddressRepository) CreateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	if m.createFn != nil {
		return m.createFn(ctx, address)
	}
	return address, nil
}

func (m *mockAddressRepository) FindAddress(ctx context.Context, contactID, addressID int64) (models.Address, error) {
	if m.findFn != nil {
		return m.findFn(ctx, contactID, addressID)
	}
	return models.Address{}, nil
}

func (m *mockAddressRepository) FindAddressesByContact(ctx context.Context, contactID int64) ([]models.Address, error) {
	if m.findByContactFn != nil {
		return m.findByContactFn(ctx, contactID)
	}
	return nil, nil
}

func (m *mockAddressRepository) UpdateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, address)
	}
	return address, nil
}

func (m *mockAddressRepository) DeleteAddress(ctx context.Context, contactID, addressID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, contactID, addressID)
	}
	return nil
}
