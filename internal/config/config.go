// Package config holds run configuration for chrome-rescue.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls one recovery run. Defaults mirror Chrome's on-disk
// conventions; a YAML file can override individual fields.
type Config struct {
	// HistoryLimit caps how many history rows are read, newest first.
	HistoryLimit int `yaml:"history_limit"`

	// ExcludedRoots are bookmark root names kept for internal sync
	// bookkeeping rather than real bookmark groups. They are skipped by
	// both renderers.
	ExcludedRoots []string `yaml:"excluded_roots"`

	// InternalScheme is the URL prefix of browser-internal pages, which
	// are excluded from recovered tabs.
	InternalScheme string `yaml:"internal_scheme"`

	// IndentCap limits visual indentation depth in the dashboard without
	// altering logical depth.
	IndentCap int `yaml:"indent_cap"`

	// DashboardTitle and DashboardSubtitle head the HTML dashboard.
	DashboardTitle    string `yaml:"dashboard_title"`
	DashboardSubtitle string `yaml:"dashboard_subtitle"`

	// Output file names, written into the chosen output directory.
	DashboardFile string `yaml:"dashboard_file"`
	BookmarksFile string `yaml:"bookmarks_file"`
}

// Default returns the configuration matching Chrome's conventions.
func Default() Config {
	return Config{
		HistoryLimit:      5000,
		ExcludedRoots:     []string{"synced", "sync_transaction_version"},
		InternalScheme:    "chrome://",
		IndentCap:         5,
		DashboardTitle:    "Chrome Recovery",
		DashboardSubtitle: "Recovered from Chrome profile data",
		DashboardFile:     "Chrome Recovery.html",
		BookmarksFile:     "Chrome Bookmarks.html",
	}
}

// Load reads a YAML config file over the defaults. An empty path means
// no file was requested and the defaults are returned; a path that was
// given but cannot be read is an error so typos don't pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = Default().HistoryLimit
	}
	if cfg.IndentCap <= 0 {
		cfg.IndentCap = Default().IndentCap
	}
	return cfg, nil
}

// RootExcluded reports whether a bookmark root name is internal
// bookkeeping and must be skipped.
func (c Config) RootExcluded(name string) bool {
	for _, excluded := range c.ExcludedRoots {
		if name == excluded {
			return true
		}
	}
	return false
}
