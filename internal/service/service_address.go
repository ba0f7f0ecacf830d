package service

import (
	"context"
	"fmt"

	"github.com/akmalmp/go-contacts/internal/logger"
	"github.com/akmalmp/go-contacts/internal/store"
	"github.com/akmalmp/go-contacts/models"
)

// addressService is the concrete implementation of AddressService.
// Every operation resolves the containing contact under the authenticated
// user first; only then is the address repository consulted, scoped by the
// resolved contact's ID. A broken link at either step yields the
// corresponding not-found error.
type addressService struct {
	contactRepository store.ContactRepository
	addressRepository store.AddressRepository
	logger            *logger.Logger
}

// NewAddressService constructs an AddressService wired to the given
// repositories.
func NewAddressService(contactRepository store.ContactRepository, addressRepository store.AddressRepository, logger *logger.Logger) AddressService {
	return &addressService{
		contactRepository: contactRepository,
		addressRepository: addressRepository,
		logger:            logger,
	}
}

// Create validates the request and persists a new address under the
// contact, which must itself resolve under user.
func (s *addressService) Create(ctx context.Context, user models.User, contactID int64, req models.AddressRequest) (models.Address, error) {
	log := logger.FromContext(ctx)

	contact, err := s.contactRepository.FindContact(ctx, user.UserID, contactID)
	if err != nil {
		return models.Address{}, err
	}

	if err = validateAddressRequest(req); err != nil {
		log.Error().Int64("contact_id", contact.ContactID).Msg("invalid address data provided")
		return models.Address{}, err
	}

	created, err := s.addressRepository.CreateAddress(ctx, models.Address{
		ContactID:  contact.ContactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		log.Err(err).Int64("contact_id", contact.ContactID).Msg("address creation ended with error")
		return models.Address{}, fmt.Errorf("address creation ended with error: %w", err)
	}

	return created, nil
}

// Get fetches one address through the user → contact → address chain.
func (s *addressService) Get(ctx context.Context, user models.User, contactID, addressID int64) (models.Address, error) {
	contact, err := s.contactRepository.FindContact(ctx, user.UserID, contactID)
	if err != nil {
		return models.Address{}, err
	}

	return s.addressRepository.FindAddress(ctx, contact.ContactID, addressID)
}

// List returns all addresses of one contact owned by user, unpaginated.
func (s *addressService) List(ctx context.Context, user models.User, contactID int64) ([]models.Address, error) {
	contact, err := s.contactRepository.FindContact(ctx, user.UserID, contactID)
	if err != nil {
		return nil, err
	}

	return s.addressRepository.FindAddressesByContact(ctx, contact.ContactID)
}

// Update validates the request and overwrites all address fields.
func (s *addressService) Update(ctx context.Context, user models.User, contactID, addressID int64, req models.AddressRequest) (models.Address, error) {
	log := logger.FromContext(ctx)

	contact, err := s.contactRepository.FindContact(ctx, user.UserID, contactID)
	if err != nil {
		return models.Address{}, err
	}

	if err = validateAddressRequest(req); err != nil {
		log.Error().Int64("contact_id", contact.ContactID).Int64("address_id", addressID).Msg("invalid address data provided")
		return models.Address{}, err
	}

	return s.addressRepository.UpdateAddress(ctx, models.Address{
		AddressID:  addressID,
		ContactID:  contact.ContactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
}

// Delete removes one address through the ownership chain.
func (s *addressService) Delete(ctx context.Context, user models.User, contactID, addressID int64) error {
	contact, err := s.contactRepository.FindContact(ctx, user.UserID, contactID)
	if err != nil {
		return err
	}

	return s.addressRepository.DeleteAddress(ctx, contact.ContactID, addressID)
}
