package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// loadAndMerge loads a YAML file and merges it into the config.
func loadAndMerge(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	mergeConfigs(cfg, &override, raw)
	return nil
}

// mergeConfigs merges override into base. Fields absent from the file keep
// their base value; raw records which fields were present.
func mergeConfigs(base, override *Config, raw map[string]any) {
	if override == nil {
		return
	}

	if fieldSet(raw, "history_capacity") {
		base.HistoryCapacity = override.HistoryCapacity
	}
	if fieldSet(raw, "min_extent") {
		base.MinExtent = override.MinExtent
	}
	if fieldSet(raw, "split_ratio") {
		base.SplitRatio = override.SplitRatio
	}
	if override.Theme != "" {
		base.Theme = override.Theme
	}

	for action, pattern := range override.Bindings {
		if base.Bindings == nil {
			base.Bindings = make(map[string]string)
		}
		base.Bindings[action] = pattern
	}

	if fieldSet(raw, "layout") {
		base.Layout = append([]PaneConfig(nil), override.Layout...)
	}

	if override.Log.Level != "" {
		base.Log.Level = override.Log.Level
	}
	if override.Log.Format != "" {
		base.Log.Format = override.Log.Format
	}
	if override.Log.File != "" {
		base.Log.File = override.Log.File
	}
	if override.Metrics.Addr != "" {
		base.Metrics.Addr = override.Metrics.Addr
	}
}

func fieldSet(raw map[string]any, path ...string) bool {
	if len(path) == 0 || raw == nil {
		return false
	}
	current := any(raw)
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return false
		}
		val, ok := m[key]
		if !ok {
			return false
		}
		current = val
	}
	return true
}
