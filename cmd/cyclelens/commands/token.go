package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/cyclelens/internal/api"
	"github.com/terraincognita07/cyclelens/internal/cli"
	"github.com/terraincognita07/cyclelens/internal/security"
)

var (
	tokenTTL     time.Duration
	tokenSubject string
	secretLength int
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token signed with SECRET_KEY",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cli.RunTokenCommand(cfg.SecretKey, tokenSubject, tokenTTL, time.Now(), os.Stdout)
	},
}

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Generate a random value for SECRET_KEY",
	// Skips config loading so an insecure SECRET_KEY can still be replaced.
	PersistentPreRunE: func(*cobra.Command, []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cli.RunSecretCommand(secretLength, os.Stdout)
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Read a password from stdin and print a value for API_PASSWORD_HASH",
	PersistentPreRunE: func(*cobra.Command, []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprint(os.Stderr, "Password: ")
		return cli.RunHashPasswordCommand(os.Stdin, os.Stdout)
	},
}

func init() {
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", api.DefaultTokenTTL, "token lifetime")
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "owner", "token subject")
	secretCmd.Flags().IntVar(&secretLength, "length", security.DefaultSecretSize, "secret length")
}
