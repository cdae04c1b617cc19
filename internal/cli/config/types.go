// Package config provides configuration management for the sqlpad CLI.
//
// Configuration is layered: built-in defaults, then an optional
// sqlpad.yaml/sqlpad.yml file, then SQLPAD_* environment variables, then
// explicitly set CLI flags.
package config

// Default values applied before any other configuration source.
const (
	DefaultOutput       = "auto"
	DefaultHistoryLimit = 50
	DefaultLatencyMs    = 150
)

// LayoutConfig holds the workbench layout bounds. All sizes are terminal
// cells.
type LayoutConfig struct {
	// Direction is the initial editor/results arrangement:
	// vertical, horizontal or tabbed.
	Direction string `koanf:"direction"`
	// MinPaneVertical is the per-pane row floor for the stacked layout.
	MinPaneVertical int `koanf:"min_pane_vertical"`
	// MinPaneHorizontal is the per-pane column floor for the side-by-side
	// layout.
	MinPaneHorizontal int `koanf:"min_pane_horizontal"`
	// SidebarWidth is the initial explorer width, clamped to the min/max.
	SidebarWidth int `koanf:"sidebar_width"`
	SidebarMin   int `koanf:"sidebar_min"`
	SidebarMax   int `koanf:"sidebar_max"`
}

// Config holds all CLI configuration options.
type Config struct {
	// OutputFormat selects how non-interactive commands render results:
	// auto, text, json, csv or markdown.
	OutputFormat string `koanf:"output"`
	// Verbose enables diagnostic chatter on stderr.
	Verbose bool `koanf:"verbose"`
	// HistoryLimit bounds the query history log.
	HistoryLimit int `koanf:"history_limit"`
	// LatencyMs is the simulated execution delay of the mock adapter.
	LatencyMs int `koanf:"latency_ms"`

	Layout LayoutConfig `koanf:"layout"`
}

// DefaultConfig returns a Config populated with built-in defaults only.
func DefaultConfig() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		HistoryLimit: DefaultHistoryLimit,
		LatencyMs:    DefaultLatencyMs,
		Layout:       LayoutConfig{Direction: "vertical"},
	}
}
