package commands

import (
	"github.com/spf13/cobra"
	"kcisum/internal/config"
	"kcisum/internal/render"
	"kcisum/internal/ui"
)

// SummaryCommand handles the summary command
type SummaryCommand struct {
	config    *config.Config
	openStore OpenStore
	formatter *ui.Formatter
}

// NewSummaryCommand creates a new SummaryCommand
func NewSummaryCommand(cfg *config.Config, openStore OpenStore, formatter *ui.Formatter) *SummaryCommand {
	return &SummaryCommand{
		config:    cfg,
		openStore: openStore,
		formatter: formatter,
	}
}

// Execute runs the command
func (sc *SummaryCommand) Execute(cmd *cobra.Command, args []string) error {
	st, closeStore, err := sc.openStore(sc.config)
	if err != nil {
		return err
	}
	defer closeStore()

	renderer := render.New(sc.config, st)
	summary, err := renderer.Collect()
	if err != nil {
		return err
	}
	if err := renderer.Write(summary); err != nil {
		return err
	}

	sc.formatter.PrintSummaryStats(summary, sc.config.GetOutputPath())
	return nil
}
