package migration

import (
	"fmt"

	"github.com/fatih/color"
	"kcisum/internal/config"
)

// Migrator prepares the store schema
type Migrator interface {
	Run() error
}

// SchemaMigrator creates the database and the boot results table
type SchemaMigrator struct {
	config          *config.Config
	databaseManager *DatabaseManager
}

// NewSchemaMigrator creates a new SchemaMigrator
func NewSchemaMigrator(cfg *config.Config, dbManager *DatabaseManager) *SchemaMigrator {
	return &SchemaMigrator{
		config:          cfg,
		databaseManager: dbManager,
	}
}

// Run ensures the database and table exist
func (sm *SchemaMigrator) Run() error {
	created, err := sm.databaseManager.EnsureDatabase()
	if err != nil {
		return fmt.Errorf("failed to check database: %w", err)
	}

	name := sm.config.GetDatabaseSettings().Name
	if created {
		color.Green("✓ Created database %s", name)
	} else {
		color.White("Database %s already exists", name)
	}

	if err := sm.databaseManager.EnsureTable(); err != nil {
		return err
	}
	color.Green("✓ Table %s is ready", sm.config.Table)
	return nil
}
