package migration

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"kcisum/internal/config"
	"kcisum/internal/storage"
)

// DatabaseManager manages the boot results database
type DatabaseManager struct {
	config *config.Config
}

// NewDatabaseManager creates a new DatabaseManager
func NewDatabaseManager(cfg *config.Config) *DatabaseManager {
	return &DatabaseManager{config: cfg}
}

// EnsureDatabase creates the configured database if it does not exist.
// It reports whether the database had to be created.
func (dm *DatabaseManager) EnsureDatabase() (bool, error) {
	settings := dm.config.GetDatabaseSettings()
	if !storage.ValidIdentifier(settings.Name) {
		return false, fmt.Errorf("invalid database name: %s", settings.Name)
	}

	// Connect to MySQL server (without specifying database)
	db, err := sql.Open("mysql", storage.DSN(settings, false))
	if err != nil {
		return false, fmt.Errorf("failed to connect to database server: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return false, fmt.Errorf("failed to ping database server: %w", err)
	}

	exists, err := dm.databaseExists(db, settings.Name)
	if err != nil {
		return false, fmt.Errorf("failed to check database %s: %w", settings.Name, err)
	}
	if exists {
		return false, nil
	}

	if _, err := db.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", settings.Name)); err != nil {
		return false, fmt.Errorf("failed to create database %s: %w", settings.Name, err)
	}
	return true, nil
}

// EnsureTable creates the boot results table if it does not exist
func (dm *DatabaseManager) EnsureTable() error {
	if !storage.ValidIdentifier(dm.config.Table) {
		return fmt.Errorf("invalid table name: %s", dm.config.Table)
	}

	db, err := sql.Open("mysql", storage.DSN(dm.config.GetDatabaseSettings(), true))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(CreateTableStatement(dm.config.Table)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", dm.config.Table, err)
	}
	return nil
}

// databaseExists checks if a database exists
func (dm *DatabaseManager) databaseExists(db *sql.DB, dbName string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?)"
	err := db.QueryRow(query, dbName).Scan(&exists)
	return exists, err
}

// CreateTableStatement returns the DDL of the boot results table.
// published is kept as the string the lab reported; the renderer parses it.
func CreateTableStatement(table string) string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` (\n"+
		"  id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,\n"+
		"  board VARCHAR(128) NOT NULL,\n"+
		"  tree VARCHAR(128) NOT NULL,\n"+
		"  branch VARCHAR(128) NOT NULL,\n"+
		"  version VARCHAR(255) NOT NULL,\n"+
		"  arch VARCHAR(32) NOT NULL,\n"+
		"  config VARCHAR(255) NOT NULL,\n"+
		"  lab VARCHAR(128) NOT NULL,\n"+
		"  kci_board VARCHAR(128) NOT NULL,\n"+
		"  link TEXT NOT NULL,\n"+
		"  status VARCHAR(16) NOT NULL,\n"+
		"  published VARCHAR(64) NOT NULL,\n"+
		"  INDEX idx_status (status)\n"+
		") DEFAULT CHARSET=utf8mb4", table)
}
