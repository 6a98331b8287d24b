package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/cyclelens/internal/cli"
	"github.com/terraincognita07/cyclelens/internal/db"
	"github.com/terraincognita07/cyclelens/internal/services"
)

var (
	reportWindow string
	reportDate   string
	reportFile   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print an analytics report as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		options := cli.ReportOptions{
			Window:    reportWindow,
			Date:      reportDate,
			Analytics: cfg.AnalyticsOptions(),
			Location:  cfg.Location,
		}

		if path := strings.TrimSpace(reportFile); path != "" {
			source, err := cli.FileSource(path)
			if err != nil {
				return err
			}
			return cli.RunReportCommand(cmd.Context(), source, options, time.Now(), os.Stdout, log.Logger)
		}

		database, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("database init failed: %w", err)
		}
		defer db.Close(database)

		return cli.RunReportCommand(cmd.Context(), db.NewRepositories(database), options, time.Now(), os.Stdout, log.Logger)
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportWindow, "window", "w", string(services.DefaultWindow), "analysis window: 3m, 6m, 1y or all")
	reportCmd.Flags().StringVarP(&reportDate, "date", "d", "", "evaluate as of YYYY-MM-DD (default today)")
	reportCmd.Flags().StringVarP(&reportFile, "file", "f", "", "read records from an import file instead of the database")
}
