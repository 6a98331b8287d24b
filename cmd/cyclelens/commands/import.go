package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/cyclelens/internal/cli"
	"github.com/terraincognita07/cyclelens/internal/db"
)

var importFile string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load records and cycle config from a JSON file into the database",
	RunE: func(cmd *cobra.Command, _ []string) error {
		database, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("database init failed: %w", err)
		}
		defer db.Close(database)

		repos := db.NewRepositories(database)
		return cli.RunImportCommand(cmd.Context(), repos.DailyLogs, repos.CycleConfigs, importFile, os.Stdout)
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "path to the JSON import file")
	_ = importCmd.MarkFlagRequired("file")
}
