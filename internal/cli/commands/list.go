package commands

import (
	"github.com/spf13/cobra"
	"kcisum/internal/config"
	"kcisum/internal/render"
	"kcisum/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	openStore OpenStore
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, openStore OpenStore, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		openStore: openStore,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	st, closeStore, err := lc.openStore(lc.config)
	if err != nil {
		return err
	}
	defer closeStore()

	summary, err := render.New(lc.config, st).Collect()
	if err != nil {
		return err
	}

	lc.formatter.PrintFailureList(summary)
	return nil
}
