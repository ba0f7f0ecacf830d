package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akmalmp/go-contacts/internal/logger"
	"github.com/akmalmp/go-contacts/models"
)

// addressRepository is the PostgreSQL-backed implementation of
// [AddressRepository]. Queries are scoped by contact_id; the service layer
// is responsible for resolving the contact under the authenticated user
// first, completing the user → contact → address ownership chain.
type addressRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAddressRepository constructs an [AddressRepository] backed by the
// provided database connection and logger.
func NewAddressRepository(db *DB, logger *logger.Logger) AddressRepository {
	logger.Debug().Msg("creating address repository")
	return &addressRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAddress persists a new address owned by address.ContactID and
// returns the record with its server-assigned AddressID.
func (r *addressRepository) CreateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAddress,
		address.ContactID, address.Street, address.City, address.Province, address.Country, address.PostalCode)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*addressRepository.CreateAddress").Msg("error: row is nil")
		return models.Address{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var created models.Address
	if err := scanAddress(row, &created); err != nil {
		log.Err(err).Str("func", "*addressRepository.CreateAddress").Msg("error: scanning error")
		return models.Address{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindAddress retrieves a single address by ID, scoped to the owning
// contact. Returns [ErrAddressNotFound] if no row matches both predicates.
func (r *addressRepository) FindAddress(ctx context.Context, contactID, addressID int64) (models.Address, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findAddress, addressID, contactID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*addressRepository.FindAddress").Msg("error: row is nil")
		return models.Address{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var found models.Address
	if err := scanAddress(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Address{}, ErrAddressNotFound
		}
		log.Err(err).Str("func", "*addressRepository.FindAddress").Msg("error: scanning error")
		return models.Address{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// FindAddressesByContact returns all addresses of one contact, ordered by
// ID. The listing is unpaginated.
func (r *addressRepository) FindAddressesByContact(ctx context.Context, contactID int64) ([]models.Address, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAddressesByContact, contactID)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.FindAddressesByContact").Msg("error listing addresses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	addresses := make([]models.Address, 0)
	for rows.Next() {
		var address models.Address
		if err = scanAddress(rows, &address); err != nil {
			log.Err(err).Str("func", "*addressRepository.FindAddressesByContact").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		addresses = append(addresses, address)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return addresses, nil
}

// UpdateAddress overwrites all mutable fields of the address identified by
// (AddressID, ContactID) and returns the updated record.
// Returns [ErrAddressNotFound] if no row matches.
func (r *addressRepository) UpdateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateAddress,
		address.Street, address.City, address.Province, address.Country, address.PostalCode,
		address.AddressID, address.ContactID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*addressRepository.UpdateAddress").Msg("error: row is nil")
		return models.Address{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var updated models.Address
	if err := scanAddress(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Address{}, ErrAddressNotFound
		}
		log.Err(err).Str("func", "*addressRepository.UpdateAddress").Msg("error: scanning error")
		return models.Address{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteAddress removes the address identified by (addressID, contactID).
// Returns [ErrAddressNotFound] if no row was deleted.
func (r *addressRepository) DeleteAddress(ctx context.Context, contactID, addressID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAddress, addressID, contactID)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.DeleteAddress").Msg("error deleting address")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAddressNotFound
	}

	return nil
}

func scanAddress(row rowScanner, address *models.Address) error {
	return row.Scan(
		&address.AddressID,
		&address.ContactID,
		&address.Street,
		&address.City,
		&address.Province,
		&address.Country,
		&address.PostalCode,
	)
}
