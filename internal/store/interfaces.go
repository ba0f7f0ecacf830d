package store

import (
	"context"

	"github.com/akmalmp/go-contacts/models"
)

// UserRepository is the data-access contract for user accounts and their
// session tokens.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByToken(ctx context.Context, token string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	SetToken(ctx context.Context, userID int64, token string) error
	ClearToken(ctx context.Context, userID int64) error
}

// ContactRepository is the data-access contract for contacts. Every method
// takes the owning user's ID; a contact of another user behaves exactly like
// a missing row.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	FindContact(ctx context.Context, userID, contactID int64) (models.Contact, error)
	UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, userID, contactID int64) error
	SearchContacts(ctx context.Context, userID int64, filter models.ContactFilter, page models.PageRequest) ([]models.Contact, int64, error)
}

// AddressRepository is the data-access contract for addresses, scoped by the
// owning contact's ID. The contact itself must already be resolved under the
// authenticated user by the caller.
type AddressRepository interface {
	CreateAddress(ctx context.Context, address models.Address) (models.Address, error)
	FindAddress(ctx context.Context, contactID, addressID int64) (models.Address, error)
	FindAddressesByContact(ctx context.Context, contactID int64) ([]models.Address, error)
	UpdateAddress(ctx context.Context, address models.Address) (models.Address, error)
	DeleteAddress(ctx context.Context, contactID, addressID int64) error
}
