package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/terraincognita07/cyclelens/internal/security"
)

var ErrPasswordRequired = errors.New("password is required")

// RunHashPasswordCommand reads one line from in and prints its bcrypt hash.
func RunHashPasswordCommand(in io.Reader, out io.Writer) error {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return ErrPasswordRequired
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = fmt.Fprintln(out, hash)
	return err
}
