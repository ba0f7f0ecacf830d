// Package adapter provides client-side access to the contacts API over HTTP.
// It mirrors the server's REST surface and envelope format, translating
// non-2xx responses into sentinel errors callers can match with errors.Is.
package adapter

import (
	"context"

	"github.com/akmalmp/go-contacts/models"
)

// ServerAdapter is the client-side view of the contacts API. Login and
// Register store the issued token on the adapter; all other operations send
// it in the Authorization header.
type ServerAdapter interface {
	// SetToken stores the opaque token used for authenticated requests.
	SetToken(token string)

	// Token returns the token currently held by the adapter, or an empty
	// string if none has been set.
	Token() string

	Register(ctx context.Context, req models.RegisterRequest) (models.UserView, error)
	Login(ctx context.Context, req models.LoginRequest) (models.UserView, error)
	CurrentUser(ctx context.Context) (models.UserView, error)
	UpdateCurrentUser(ctx context.Context, req models.UpdateUserRequest) (models.UserView, error)
	Logout(ctx context.Context) error

	CreateContact(ctx context.Context, req models.ContactRequest) (models.Contact, error)
	GetContact(ctx context.Context, contactID int64) (models.Contact, error)
	UpdateContact(ctx context.Context, contactID int64, req models.ContactRequest) (models.Contact, error)
	DeleteContact(ctx context.Context, contactID int64) error
	SearchContacts(ctx context.Context, filter models.ContactFilter, page models.PageRequest) ([]models.Contact, *models.PageMeta, error)

	CreateAddress(ctx context.Context, contactID int64, req models.AddressRequest) (models.Address, error)
	GetAddress(ctx context.Context, contactID, addressID int64) (models.Address, error)
	ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error)
	UpdateAddress(ctx context.Context, contactID, addressID int64, req models.AddressRequest) (models.Address, error)
	DeleteAddress(ctx context.Context, contactID, addressID int64) error
}
