package security

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 8

var (
	ErrPasswordTooShort    = errors.New("password too short")
	ErrInvalidPasswordHash = errors.New("invalid password hash")
)

// HashPassword returns a bcrypt hash suitable for API_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash string, password string) bool {
	if hash == "" || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordHash accepts an empty value, which disables password login.
func ValidatePasswordHash(raw string) (string, error) {
	hash := strings.TrimSpace(raw)
	if hash == "" {
		return "", nil
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return "", ErrInvalidPasswordHash
	}
	return hash, nil
}
