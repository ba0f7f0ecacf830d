package utils

import "github.com/google/uuid"

// TokenGenerator produces opaque bearer tokens for authenticated sessions.
// Tokens are uuid-v7 strings: random enough to be unguessable, time-ordered
// for index locality. They carry no claims; the users table is the single
// source of truth for session validity.
type TokenGenerator struct {
}

func NewTokenGenerator() *TokenGenerator {
	return &TokenGenerator{}
}

func (g *TokenGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
