package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akmalmp/go-contacts/internal/logger"
	"github.com/akmalmp/go-contacts/models"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository].
//
// Every query carries a user_id predicate next to the contact_id one, so a
// contact belonging to another user produces the same [ErrContactNotFound]
// as a contact that does not exist at all. That property is what keeps the
// API from leaking the existence of other users' data.
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// CreateContact persists a new contact owned by contact.UserID and returns
// the record with its server-assigned ContactID.
func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createContact,
		contact.UserID, contact.FirstName, contact.LastName, contact.Email, contact.Phone)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error: row is nil")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var created models.Contact
	if err := scanContact(row, &created); err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error: scanning error")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindContact retrieves a single contact by ID, scoped to the owning user.
// Returns [ErrContactNotFound] if no row matches both predicates.
func (r *contactRepository) FindContact(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findContact, contactID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*contactRepository.FindContact").Msg("error: row is nil")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var found models.Contact
	if err := scanContact(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}
		log.Err(err).Str("func", "*contactRepository.FindContact").Msg("error: scanning error")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// UpdateContact overwrites all mutable fields of the contact identified by
// (ContactID, UserID) and returns the updated record.
// Returns [ErrContactNotFound] if no row matches.
func (r *contactRepository) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateContact,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone,
		contact.ContactID, contact.UserID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*contactRepository.UpdateContact").Msg("error: row is nil")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var updated models.Contact
	if err := scanContact(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}
		log.Err(err).Str("func", "*contactRepository.UpdateContact").Msg("error: scanning error")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteContact removes the contact identified by (contactID, userID).
// Dependent addresses are removed by the ON DELETE CASCADE constraint.
// Returns [ErrContactNotFound] if no row was deleted.
func (r *contactRepository) DeleteContact(ctx context.Context, userID, contactID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteContact, contactID, userID)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("error deleting contact")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

// SearchContacts runs the filtered, paginated contact search for one user.
// It executes two queries built from the same squirrel predicate set: a
// COUNT(*) for the total and a LIMIT/OFFSET SELECT for the page rows.
// An empty result is not an error: it returns an empty slice and total 0.
func (r *contactRepository) SearchContacts(ctx context.Context, userID int64, filter models.ContactFilter, page models.PageRequest) ([]models.Contact, int64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildSearchCountQuery(userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("error counting contacts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	listQuery, listArgs, err := buildSearchQuery(userID, filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("error searching contacts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0, page.Size)
	for rows.Next() {
		var contact models.Contact
		if err = scanContact(rows, &contact); err != nil {
			log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("error: scanning error")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		contacts = append(contacts, contact)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, total, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner, contact *models.Contact) error {
	return row.Scan(
		&contact.ContactID,
		&contact.UserID,
		&contact.FirstName,
		&contact.LastName,
		&contact.Email,
		&contact.Phone,
	)
}
