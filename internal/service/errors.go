package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login when the username does not
	// exist or the password does not match. The two cases are deliberately
	// indistinguishable to prevent username enumeration.
	ErrInvalidCredentials = errors.New("username or password wrong")
)
