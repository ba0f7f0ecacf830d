// Package service implements the business logic of the application: input
// validation, password and token handling, and ownership-scoped access to
// contacts and addresses. Services return sentinel errors and field-keyed
// [models.ValidationErrors]; the HTTP layer maps them onto status codes.
package service

import (
	"github.com/akmalmp/go-contacts/internal/config"
	"github.com/akmalmp/go-contacts/internal/logger"
	"github.com/akmalmp/go-contacts/internal/store"
)

type Services struct {
	UserService    UserService
	ContactService ContactService
	AddressService AddressService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		UserService:    NewUserService(storages.UserRepository, logger),
		ContactService: NewContactService(storages.ContactRepository, cfg, logger),
		AddressService: NewAddressService(storages.ContactRepository, storages.AddressRepository, logger),
	}
}
