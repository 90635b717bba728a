package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyPassword             = errors.New("empty password")
	ErrMismatchedHashAndPassword = errors.New("password does not match hash")
)

// HashPassword returns a bcrypt hash of password at the given cost.
// A cost of 0 selects bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// ComparePasswordAndHash reports whether password matches the bcrypt hash.
// A wrong password yields ErrMismatchedHashAndPassword; a malformed hash
// yields the underlying bcrypt error.
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatchedHashAndPassword
		}
		return err
	}
	return nil
}
