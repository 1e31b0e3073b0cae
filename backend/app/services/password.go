package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Hasher derives and checks salted credential hashes.
type Hasher interface {
	Hash(password string) (string, error)
	// Matches reports whether password produced hash. Malformed hashes do not match.
	Matches(hash, password string) (bool, error)
}

type BcryptHasher struct{ Cost int }

func NewBcryptHasher(cost int) BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{Cost: cost}
}

func (h BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h BcryptHasher) Matches(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword), errors.Is(err, bcrypt.ErrHashTooShort):
		return false, nil
	}
	return false, err
}
