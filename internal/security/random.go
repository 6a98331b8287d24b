package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	secretAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	tokenIDAlphabet   = "abcdefghijklmnopqrstuvwxyz0123456789"
	DefaultSecretSize = 48
	tokenIDSize       = 20
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString draws length characters uniformly from alphabet using
// crypto/rand.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if alphabet == "" {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}
	return string(value), nil
}

// NewSecretKey returns a value suitable for SECRET_KEY.
func NewSecretKey(length int) (string, error) {
	if length < DefaultSecretSize {
		length = DefaultSecretSize
	}
	return RandomString(length, secretAlphabet)
}

// NewTokenID returns a random identifier for the jti claim.
func NewTokenID() (string, error) {
	return RandomString(tokenIDSize, tokenIDAlphabet)
}
