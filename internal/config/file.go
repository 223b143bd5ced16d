package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// ReadFile merges settings from a TOML config file.
// An empty path looks for DefaultConfigFile and silently skips it when absent.
func (c *Config) ReadFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	if v.IsSet("summary.output") {
		c.OutputPath = v.GetString("summary.output")
	}
	if v.IsSet("summary.title") {
		c.Title = v.GetString("summary.title")
	}
	if v.IsSet("summary.status") {
		c.Status = v.GetString("summary.status")
	}
	if v.IsSet("summary.window") {
		window := v.GetDuration("summary.window")
		if window <= 0 {
			return fmt.Errorf("invalid summary.window %q in %s", v.GetString("summary.window"), path)
		}
		c.Window = window
	}
	if v.IsSet("summary.storage_url") {
		c.StorageURL = v.GetString("summary.storage_url")
	}

	if v.IsSet("store.backend") {
		c.Store = v.GetString("store.backend")
	}
	if v.IsSet("store.records") {
		c.RecordsPath = v.GetString("store.records")
	}
	if v.IsSet("store.table") {
		c.Table = v.GetString("store.table")
	}
	if v.IsSet("store.env_file") {
		c.EnvFile = v.GetString("store.env_file")
	}
	if v.IsSet("store.ignore") {
		c.PathsToIgnore = v.GetStringSlice("store.ignore")
	}

	return nil
}
