package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Package-level koanf instance and config file tracking.
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config
)

// findConfigFile finds the config file to use.
// Priority: explicit path > sqlpad.yaml > sqlpad.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"sqlpad.yaml", "sqlpad.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// LoadConfig loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Reset koanf for fresh load
	k = koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output":                     DefaultOutput,
		"verbose":                    false,
		"history_limit":              DefaultHistoryLimit,
		"latency_ms":                 DefaultLatencyMs,
		"layout.direction":           "vertical",
		"layout.min_pane_vertical":   0,
		"layout.min_pane_horizontal": 0,
		"layout.sidebar_width":       0,
		"layout.sidebar_min":         0,
		"layout.sidebar_max":         0,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load config file, if present
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Load environment variables (SQLPAD_ prefix)
	// Transform: SQLPAD_HISTORY_LIMIT -> history_limit,
	// SQLPAD_LAYOUT__SIDEBAR_WIDTH -> layout.sidebar_width
	if err := k.Load(env.Provider("SQLPAD_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "SQLPAD_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			// Transform kebab-case to snake_case for config keys
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	currentConfig = &cfg
	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the most recently loaded config, or nil if
// LoadConfig has not run.
func GetCurrentConfig() *Config {
	return currentConfig
}

func validate(cfg *Config) error {
	switch cfg.OutputFormat {
	case "auto", "text", "json", "csv", "md", "markdown":
	default:
		return fmt.Errorf("invalid output format %q (want auto|text|json|csv|markdown)", cfg.OutputFormat)
	}
	switch cfg.Layout.Direction {
	case "", "vertical", "horizontal", "tabbed":
	default:
		return fmt.Errorf("invalid layout direction %q (want vertical|horizontal|tabbed)", cfg.Layout.Direction)
	}
	if cfg.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative, got %d", cfg.HistoryLimit)
	}
	if cfg.LatencyMs < 0 {
		return fmt.Errorf("latency_ms must not be negative, got %d", cfg.LatencyMs)
	}
	if min, max := cfg.Layout.SidebarMin, cfg.Layout.SidebarMax; min > 0 && max > 0 && min > max {
		return fmt.Errorf("layout.sidebar_min %d exceeds layout.sidebar_max %d", min, max)
	}
	return nil
}
