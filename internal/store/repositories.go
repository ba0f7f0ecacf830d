// Package store implements the persistence layer of the application:
// PostgreSQL-backed repositories for users, contacts, and addresses.
// Ownership scoping lives here — every contact/address query carries the
// owner's ID, so cross-user lookups are indistinguishable from misses.
package store

import (
	"github.com/akmalmp/go-contacts/internal/logger"
)

// Storages aggregates all repository implementations behind their
// interfaces. It is the single dependency handed to the service layer.
type Storages struct {
	UserRepository    UserRepository
	ContactRepository ContactRepository
	AddressRepository AddressRepository
}

// NewStorages wires all repositories to the shared database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	logger.Info().Msg("creating storages...")

	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ContactRepository: NewContactRepository(db, logger),
		AddressRepository: NewAddressRepository(db, logger),
	}
}
