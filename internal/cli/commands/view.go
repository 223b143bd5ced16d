package commands

import (
	"github.com/spf13/cobra"
	"kcisum/internal/config"
	"kcisum/internal/render"
	"kcisum/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config    *config.Config
	openStore OpenStore
	viewer    ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, openStore OpenStore, viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{
		config:    cfg,
		openStore: openStore,
		viewer:    viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	st, closeStore, err := vc.openStore(vc.config)
	if err != nil {
		return err
	}
	defer closeStore()

	summary, err := render.New(vc.config, st).Collect()
	if err != nil {
		return err
	}

	return vc.viewer.View(summary)
}
