package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/terraincognita07/cyclelens/internal/api"
	"github.com/terraincognita07/cyclelens/internal/security"
)

var ErrSecretKeyRequired = errors.New("SECRET_KEY is not set")

func RunTokenCommand(secretKey string, subject string, ttl time.Duration, now time.Time, out io.Writer) error {
	if strings.TrimSpace(secretKey) == "" {
		return ErrSecretKeyRequired
	}
	if strings.TrimSpace(subject) == "" {
		subject = "owner"
	}

	token, err := api.IssueToken([]byte(secretKey), subject, ttl, now)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}
	_, err = fmt.Fprintln(out, token)
	return err
}

func RunSecretCommand(length int, out io.Writer) error {
	secret, err := security.NewSecretKey(length)
	if err != nil {
		return fmt.Errorf("generate secret: %w", err)
	}
	_, err = fmt.Fprintln(out, secret)
	return err
}
