package service

import (
	"context"
	"fmt"

	"github.com/akmalmp/go-contacts/internal/config"
	"github.com/akmalmp/go-contacts/internal/logger"
	"github.com/akmalmp/go-contacts/internal/store"
	"github.com/akmalmp/go-contacts/models"
)

// contactService is the concrete implementation of ContactService.
// All repository calls carry the authenticated user's ID, so a contact of
// another user surfaces as [store.ErrContactNotFound] — never as a
// "forbidden" condition.
type contactService struct {
	contactRepository store.ContactRepository
	defaultPageSize   int
	logger            *logger.Logger
}

// NewContactService constructs a ContactService wired to the given
// ContactRepository. The default search page size comes from cfg.
func NewContactService(contactRepository store.ContactRepository, cfg config.App, logger *logger.Logger) ContactService {
	pageSize := cfg.PageSize
	if pageSize < 1 {
		pageSize = models.DefaultPageSize
	}

	return &contactService{
		contactRepository: contactRepository,
		defaultPageSize:   pageSize,
		logger:            logger,
	}
}

// Create validates the request and persists a new contact owned by user.
func (s *contactService) Create(ctx context.Context, user models.User, req models.ContactRequest) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if err := validateContactRequest(req); err != nil {
		log.Error().Int64("user_id", user.UserID).Msg("invalid contact data provided")
		return models.Contact{}, err
	}

	created, err := s.contactRepository.CreateContact(ctx, models.Contact{
		UserID:    user.UserID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("contact creation ended with error")
		return models.Contact{}, fmt.Errorf("contact creation ended with error: %w", err)
	}

	return created, nil
}

// Get fetches one contact owned by user.
func (s *contactService) Get(ctx context.Context, user models.User, contactID int64) (models.Contact, error) {
	return s.contactRepository.FindContact(ctx, user.UserID, contactID)
}

// Update validates the request and overwrites all contact fields. Fields
// absent from the request body become empty — update is a full replace.
func (s *contactService) Update(ctx context.Context, user models.User, contactID int64, req models.ContactRequest) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if err := validateContactRequest(req); err != nil {
		log.Error().Int64("user_id", user.UserID).Int64("contact_id", contactID).Msg("invalid contact data provided")
		return models.Contact{}, err
	}

	return s.contactRepository.UpdateContact(ctx, models.Contact{
		ContactID: contactID,
		UserID:    user.UserID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
}

// Delete removes one contact owned by user; dependent addresses go with it
// via the cascade constraint.
func (s *contactService) Delete(ctx context.Context, user models.User, contactID int64) error {
	return s.contactRepository.DeleteContact(ctx, user.UserID, contactID)
}

// Search runs the filtered, paginated contact search and computes the page
// metadata. An empty result yields an empty slice with total 0, not an error.
func (s *contactService) Search(ctx context.Context, user models.User, filter models.ContactFilter, page models.PageRequest) ([]models.Contact, *models.PageMeta, error) {
	if page.Size < 1 {
		page.Size = s.defaultPageSize
	}
	page = page.Normalize()

	contacts, total, err := s.contactRepository.SearchContacts(ctx, user.UserID, filter, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.UserID).Msg("contact search ended with error")
		return nil, nil, fmt.Errorf("contact search ended with error: %w", err)
	}

	return contacts, models.NewPageMeta(page, total), nil
}
