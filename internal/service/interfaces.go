package service

import (
	"context"

	"github.com/akmalmp/go-contacts/models"
)

// UserService covers the account lifecycle: registration, credential
// verification with token issuance, token-based authentication, profile
// updates, and logout.
type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	Authenticate(ctx context.Context, token string) (models.User, error)
	UpdateCurrent(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.User, error)
	Logout(ctx context.Context, user models.User) error
}

// ContactService covers contact CRUD and paginated search, always scoped to
// the authenticated user.
type ContactService interface {
	Create(ctx context.Context, user models.User, req models.ContactRequest) (models.Contact, error)
	Get(ctx context.Context, user models.User, contactID int64) (models.Contact, error)
	Update(ctx context.Context, user models.User, contactID int64, req models.ContactRequest) (models.Contact, error)
	Delete(ctx context.Context, user models.User, contactID int64) error
	Search(ctx context.Context, user models.User, filter models.ContactFilter, page models.PageRequest) ([]models.Contact, *models.PageMeta, error)
}

// AddressService covers address CRUD and listing. Every operation resolves
// the containing contact under the authenticated user before touching the
// address, completing the user → contact → address ownership chain.
type AddressService interface {
	Create(ctx context.Context, user models.User, contactID int64, req models.AddressRequest) (models.Address, error)
	Get(ctx context.Context, user models.User, contactID, addressID int64) (models.Address, error)
	List(ctx context.Context, user models.User, contactID int64) ([]models.Address, error)
	Update(ctx context.Context, user models.User, contactID, addressID int64, req models.AddressRequest) (models.Address, error)
	Delete(ctx context.Context, user models.User, contactID, addressID int64) error
}
