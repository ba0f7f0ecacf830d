package service

import (
	"net/mail"
	"unicode/utf8"

	"github.com/akmalmp/go-contacts/models"
)

// Field length limits applied by the request validators.
const (
	maxUsernameLen  = 100
	maxNameLen      = 100
	maxPasswordLen  = 100
	minPasswordLen  = 6
	maxFirstNameLen = 100
	maxLastNameLen  = 100
	maxEmailLen     = 200
	maxPhoneLen     = 20
	maxStreetLen    = 200
	maxCityLen      = 100
	maxProvinceLen  = 100
	maxCountryLen   = 100
	maxPostalLen    = 10
)

func validateRegisterRequest(req models.RegisterRequest) error {
	errs := models.ValidationErrors{}

	switch {
	case req.Username == "":
		errs.Add("username", "The username field is required.")
	case utf8.RuneCountInString(req.Username) > maxUsernameLen:
		errs.Add("username", "The username field must not be greater than 100 characters.")
	}

	switch {
	case req.Password == "":
		errs.Add("password", "The password field is required.")
	case utf8.RuneCountInString(req.Password) < minPasswordLen:
		errs.Add("password", "The password field must be at least 6 characters.")
	case utf8.RuneCountInString(req.Password) > maxPasswordLen:
		errs.Add("password", "The password field must not be greater than 100 characters.")
	}

	switch {
	case req.Name == "":
		errs.Add("name", "The name field is required.")
	case utf8.RuneCountInString(req.Name) > maxNameLen:
		errs.Add("name", "The name field must not be greater than 100 characters.")
	}

	if errs.Empty() {
		return nil
	}
	return errs
}

func validateUpdateUserRequest(req models.UpdateUserRequest) error {
	errs := models.ValidationErrors{}

	if req.Name != nil {
		switch {
		case *req.Name == "":
			errs.Add("name", "The name field is required.")
		case utf8.RuneCountInString(*req.Name) > maxNameLen:
			errs.Add("name", "The name field must not be greater than 100 characters.")
		}
	}

	if req.Password != nil {
		switch {
		case *req.Password == "":
			errs.Add("password", "The password field is required.")
		case utf8.RuneCountInString(*req.Password) < minPasswordLen:
			errs.Add("password", "The password field must be at least 6 characters.")
		case utf8.RuneCountInString(*req.Password) > maxPasswordLen:
			errs.Add("password", "The password field must not be greater than 100 characters.")
		}
	}

	if errs.Empty() {
		return nil
	}
	return errs
}

func validateContactRequest(req models.ContactRequest) error {
	errs := models.ValidationErrors{}

	switch {
	case req.FirstName == "":
		errs.Add("first_name", "The first name field is required.")
	case utf8.RuneCountInString(req.FirstName) > maxFirstNameLen:
		errs.Add("first_name", "The first name field must not be greater than 100 characters.")
	}

	if utf8.RuneCountInString(req.LastName) > maxLastNameLen {
		errs.Add("last_name", "The last name field must not be greater than 100 characters.")
	}

	if req.Email != "" {
		if utf8.RuneCountInString(req.Email) > maxEmailLen {
			errs.Add("email", "The email field must not be greater than 200 characters.")
		} else if !isValidEmail(req.Email) {
			errs.Add("email", "The email field must be a valid email address.")
		}
	}

	if utf8.RuneCountInString(req.Phone) > maxPhoneLen {
		errs.Add("phone", "The phone field must not be greater than 20 characters.")
	}

	if errs.Empty() {
		return nil
	}
	return errs
}

func validateAddressRequest(req models.AddressRequest) error {
	errs := models.ValidationErrors{}

	switch {
	case req.Country == "":
		errs.Add("country", "The country field is required.")
	case utf8.RuneCountInString(req.Country) > maxCountryLen:
		errs.Add("country", "The country field must not be greater than 100 characters.")
	}

	if utf8.RuneCountInString(req.Street) > maxStreetLen {
		errs.Add("street", "The street field must not be greater than 200 characters.")
	}
	if utf8.RuneCountInString(req.City) > maxCityLen {
		errs.Add("city", "The city field must not be greater than 100 characters.")
	}
	if utf8.RuneCountInString(req.Province) > maxProvinceLen {
		errs.Add("province", "The province field must not be greater than 100 characters.")
	}
	if utf8.RuneCountInString(req.PostalCode) > maxPostalLen {
		errs.Add("postal_code", "The postal code field must not be greater than 10 characters.")
	}

	if errs.Empty() {
		return nil
	}
	return errs
}

// isValidEmail accepts plain addr-spec addresses ("user@example.com") and
// rejects the display-name form that net/mail would otherwise tolerate.
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
