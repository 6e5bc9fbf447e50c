// Package config loads tilemux settings from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/odvcencio/tilemux/pkg/logging"
	"github.com/odvcencio/tilemux/pkg/mux"
	"github.com/odvcencio/tilemux/pkg/ui/theme"
)

// Default configuration values exported for documentation and validation
const (
	DefaultTheme     = "default"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config represents the complete tilemux configuration
type Config struct {
	HistoryCapacity int               `yaml:"history_capacity"`
	MinExtent       int               `yaml:"min_extent"`
	SplitRatio      float64           `yaml:"split_ratio"`
	Theme           string            `yaml:"theme"`
	Bindings        map[string]string `yaml:"bindings"` // action name -> key pattern, "" unbinds
	Layout          []PaneConfig      `yaml:"layout"`
	Log             LogConfig         `yaml:"log"`
	Metrics         MetricsConfig     `yaml:"metrics"`
}

// PaneConfig describes one pane of the startup layout. Path selects the
// leaf to split, e.g. "right/down"; the first entry becomes the root.
type PaneConfig struct {
	Title       string `yaml:"title"`
	Path        string `yaml:"path"`
	Orientation string `yaml:"orientation"` // horizontal or vertical
}

// LogConfig controls logging output
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Addr string `yaml:"addr"` // empty disables the endpoint
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	bindings := make(map[string]string)
	for action, pattern := range mux.DefaultBindings() {
		bindings[action.String()] = pattern.String()
	}
	return &Config{
		HistoryCapacity: mux.DefaultHistoryCapacity,
		MinExtent:       mux.DefaultMinExtent,
		SplitRatio:      mux.DefaultSplitRatio,
		Theme:           DefaultTheme,
		Bindings:        bindings,
		Layout: []PaneConfig{
			{Title: "center"},
			{Title: "right", Orientation: "horizontal"},
			{Title: "bottom", Path: "right", Orientation: "vertical"},
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// DefaultPath returns ~/.config/tilemux/config.yaml, or "" when the home
// directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, "tilemux", "config.yaml")
}

// Load builds the configuration from defaults, the file at path and the
// environment. An empty path reads DefaultPath if it exists.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		if def := DefaultPath(); def != "" {
			if err := loadAndMerge(cfg, def); err != nil && !os.IsNotExist(err) {
				return nil, fmt.Errorf("loading user config: %w", err)
			}
		}
	} else if err := loadAndMerge(cfg, path); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TILEMUX_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TILEMUX_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("TILEMUX_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("TILEMUX_METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	if v := os.Getenv("TILEMUX_THEME"); v != "" {
		cfg.Theme = v
	}
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.HistoryCapacity < 0 {
		return fmt.Errorf("history_capacity must be >= 0, got %d", c.HistoryCapacity)
	}
	if c.MinExtent < 1 {
		return fmt.Errorf("min_extent must be >= 1, got %d", c.MinExtent)
	}
	if c.SplitRatio <= 0 || c.SplitRatio >= 1 {
		return fmt.Errorf("split_ratio must be between 0 and 1 exclusive, got %g", c.SplitRatio)
	}
	if _, ok := theme.ByName(c.Theme); !ok {
		return fmt.Errorf("unknown theme: %s (must be default, dark, mono or monochrome)", c.Theme)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return err
	}
	if _, err := c.KeyBindings(); err != nil {
		return err
	}
	for i, p := range c.Layout {
		if _, err := mux.ParsePath(p.Path); err != nil {
			return fmt.Errorf("layout[%d]: %w", i, err)
		}
		if _, err := parseOrientation(p.Orientation); err != nil {
			return fmt.Errorf("layout[%d]: %w", i, err)
		}
	}
	return nil
}

// KeyBindings parses the binding strings. Two actions may not share a key.
func (c *Config) KeyBindings() (mux.Bindings, error) {
	bindings := make(mux.Bindings, len(c.Bindings))
	owner := make(map[mux.KeyPattern]string)
	for name, raw := range c.Bindings {
		action, ok := mux.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("bindings: unknown action %q", name)
		}
		if strings.TrimSpace(raw) == "" {
			continue
		}
		pattern, err := mux.ParseKeyPattern(raw)
		if err != nil {
			return nil, fmt.Errorf("bindings.%s: %w", name, err)
		}
		if other, dup := owner[pattern]; dup {
			return nil, fmt.Errorf("bindings: %s and %s both use %s", other, name, pattern)
		}
		owner[pattern] = name
		bindings[action] = pattern
	}
	return bindings, nil
}

// MuxOptions translates the engine settings into mux options. The config
// must be valid.
func (c *Config) MuxOptions() []mux.Option {
	opts := []mux.Option{
		mux.WithHistoryCapacity(c.HistoryCapacity),
		mux.WithMinExtent(c.MinExtent),
		mux.WithDefaultSplitRatio(c.SplitRatio),
	}
	if b, err := c.KeyBindings(); err == nil {
		opts = append(opts, mux.WithBindings(b))
	}
	return opts
}

// BuildLayout inserts the configured startup panes into m, creating each
// through newPane. It returns the new pane IDs in order.
func (c *Config) BuildLayout(m *mux.Mux, newPane func(PaneConfig) mux.Pane) ([]mux.ID, error) {
	ids := make([]mux.ID, 0, len(c.Layout))
	for i, p := range c.Layout {
		path, err := mux.ParsePath(p.Path)
		if err != nil {
			return ids, fmt.Errorf("layout[%d]: %w", i, err)
		}
		o, err := parseOrientation(p.Orientation)
		if err != nil {
			return ids, fmt.Errorf("layout[%d]: %w", i, err)
		}
		id, err := m.InsertAtPath(newPane(p), o, path)
		if err != nil {
			return ids, fmt.Errorf("layout[%d] %q: %w", i, p.Title, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseOrientation(s string) (mux.Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal", "h":
		return mux.Horizontal, nil
	case "vertical", "v":
		return mux.Vertical, nil
	default:
		return mux.Horizontal, fmt.Errorf("unknown orientation %q", s)
	}
}
