package config

import (
	"time"

	"kcisum/internal/domain"
)

const (
	// DefaultOutputPath is where the summary page is written
	DefaultOutputPath = "summary.html"
	// DefaultTitle is the title of the summary page
	DefaultTitle = "KCI summary"
	// DefaultStatus is the status label queried from the store
	DefaultStatus = domain.StatusFail
	// DefaultWindow is how far back a record may be published and still be reported
	DefaultWindow = 24 * time.Hour
	// DefaultStorageURL is the root of the kernelci log storage
	DefaultStorageURL = "https://storage.kernelci.org"
	// DefaultStore is the store backend
	DefaultStore = StoreJSON
	// DefaultRecordsPath is the JSON records file (or directory) read by the json store
	DefaultRecordsPath = "boot-results.json"
	// DefaultConfigFile is the optional config file looked up in the working directory
	DefaultConfigFile = ".kcisum.toml"
	// DefaultEnvFile holds database settings for the mysql store
	DefaultEnvFile = ".env"
	// DefaultTable is the mysql table holding boot results
	DefaultTable = "boot_results"
)

// Store backends
const (
	StoreJSON  = "json"
	StoreMySQL = "mysql"
)

// DefaultPathsToIgnore are directories skipped when scanning a records directory
var DefaultPathsToIgnore = []string{
	"node_modules",
	"vendor",
	"tmp",
}
