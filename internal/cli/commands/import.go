package commands

import (
	"github.com/spf13/cobra"
	"kcisum/internal/config"
	"kcisum/internal/migration"
	"kcisum/internal/storage"
	"kcisum/internal/ui"
)

// ImportCommand handles the import command
type ImportCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewImportCommand creates a new ImportCommand
func NewImportCommand(cfg *config.Config, formatter *ui.Formatter) *ImportCommand {
	return &ImportCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (ic *ImportCommand) Execute(cmd *cobra.Command, args []string) error {
	path := ic.config.RecordsPath
	if len(args) == 1 {
		path = args[0]
	}

	db, err := storage.OpenMySQL(ic.config.GetDatabaseSettings(), ic.config.Table)
	if err != nil {
		return err
	}
	defer db.Close()

	source := storage.NewJSONStore(path, ic.config.PathsToIgnore)
	n, err := migration.NewImporter(source, db).Import()
	if err != nil {
		return err
	}

	if n == 0 {
		ic.formatter.Warn("No records to import from %s", path)
		return nil
	}
	ic.formatter.Success("Imported %d record(s) from %s into %s", n, path, ic.config.Table)
	return nil
}
