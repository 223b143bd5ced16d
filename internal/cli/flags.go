package cli

import (
	"time"

	"kcisum/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	ConfigFile  string
	OutputPath  string
	Title       string
	Status      string
	Window      time.Duration
	WindowSet   bool
	Store       string
	RecordsPath string
	Board       string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile:  f.ConfigFile,
		OutputPath:  f.OutputPath,
		Title:       f.Title,
		Status:      f.Status,
		Window:      f.Window,
		WindowSet:   f.WindowSet,
		Store:       f.Store,
		RecordsPath: f.RecordsPath,
		Board:       f.Board,
	}
}
