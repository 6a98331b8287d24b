package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/cyclelens/internal/config"
	"github.com/terraincognita07/cyclelens/internal/logging"
)

var (
	// Version and Commit are set at build time via ldflags.
	Version = "dev"
	Commit  = "none"

	configFile string
	verbose    bool
	cfg        *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:           "cyclelens",
	Short:         "Cycle analytics and prediction service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		if err := logging.Init(level, cfg.LogsFolder); err != nil {
			return err
		}

		log.Debug().
			Str("version", Version).
			Str("commit", Commit).
			Str("command", cmd.Name()).
			Msg("cyclelens starting")
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "optional config file (yaml, json, toml or env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd, reportCmd, importCmd, tokenCmd, secretCmd, hashPasswordCmd)
}
