package commands

import (
	"kcisum/internal/cli"
	"kcisum/internal/config"
	"kcisum/internal/migration"
	"kcisum/internal/storage"
	"kcisum/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Summary *SummaryCommand
	List    *ListCommand
	View    *ViewCommand
	Migrate *MigrateCommand
	Import  *ImportCommand
}

// OpenStore opens the store selected by the config
type OpenStore func(cfg *config.Config) (storage.Store, func() error, error)

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	formatter := ui.NewFormatter(nil)
	viewer := ui.NewFailureViewer()
	dbManager := migration.NewDatabaseManager(cfg)
	migrator := migration.NewSchemaMigrator(cfg, dbManager)

	return &Commands{
		Summary: NewSummaryCommand(cfg, storage.Open, formatter),
		List:    NewListCommand(cfg, storage.Open, formatter),
		View:    NewViewCommand(cfg, storage.Open, viewer),
		Migrate: NewMigrateCommand(cfg, migrator),
		Import:  NewImportCommand(cfg, formatter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Config file (default .kcisum.toml if present)")
	rootCmd.PersistentFlags().StringVar(&flags.Store, "store", "", "Store backend: json or mysql (default json)")
	rootCmd.PersistentFlags().StringVarP(&flags.RecordsPath, "records", "r", "", "JSON records file or directory for the json store (default boot-results.json)")

	// Update config with flags after parsing
	loadConfig := func(cmd *cobra.Command, args []string) error {
		flags.WindowSet = cmd.Flags().Changed("window")
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		return nil
	}

	queryFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&flags.Status, "status", "", "Status label to report (default FAIL)")
		cmd.Flags().DurationVarP(&flags.Window, "window", "w", 0, "Report records published within this window (default 24h)")
		cmd.Flags().StringVarP(&flags.Board, "board", "b", "", "Filter boards by name pattern (supports wildcards, e.g., 'rpi*' or '*beagle*')")
	}

	// Summary command
	summaryCmd := &cobra.Command{
		Use:     "summary",
		Short:   "Write the HTML summary of recent boot failures",
		Long:    "Query the store for failed boots published within the window and write a static HTML summary page",
		RunE:    c.Summary.Execute,
		PreRunE: loadConfig,
	}
	queryFlags(summaryCmd)
	summaryCmd.Flags().StringVarP(&flags.OutputPath, "output", "o", "", "Output HTML file (default summary.html)")
	summaryCmd.Flags().StringVar(&flags.Title, "title", "", "Page title (default \"KCI summary\")")
	rootCmd.AddCommand(summaryCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List recent boot failures",
		Long:    "Print the boot failures that would appear in the summary, without writing it",
		RunE:    c.List.Execute,
		PreRunE: loadConfig,
	}
	queryFlags(listCmd)
	rootCmd.AddCommand(listCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:     "view",
		Short:   "Browse recent boot failures interactively",
		Long:    "Display the boot failures that would appear in the summary in an interactive viewer",
		RunE:    c.View.Execute,
		PreRunE: loadConfig,
	}
	queryFlags(viewCmd)
	rootCmd.AddCommand(viewCmd)

	// Migrate command
	migrateCmd := &cobra.Command{
		Use:     "migrate",
		Short:   "Create the boot results database and table",
		Long:    "Create the MySQL database and boot results table used by the mysql store (settings from .env or DB_* variables)",
		RunE:    c.Migrate.Execute,
		PreRunE: loadConfig,
	}
	rootCmd.AddCommand(migrateCmd)

	// Import command
	importCmd := &cobra.Command{
		Use:     "import [records]",
		Short:   "Import JSON boot results into MySQL",
		Long:    "Read boot results from a JSON file or directory and insert them into the MySQL boot results table",
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.Import.Execute,
		PreRunE: loadConfig,
	}
	rootCmd.AddCommand(importCmd)
}
