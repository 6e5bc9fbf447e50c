package config_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/odvcencio/tilemux/pkg/config"
	"github.com/odvcencio/tilemux/pkg/mux"
	"github.com/odvcencio/tilemux/pkg/ui/terminal"
	"github.com/odvcencio/tilemux/pkg/ui/widgets"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.HistoryCapacity != mux.DefaultHistoryCapacity {
		t.Fatalf("history capacity = %d", cfg.HistoryCapacity)
	}
	b, err := cfg.KeyBindings()
	if err != nil {
		t.Fatalf("default bindings: %v", err)
	}
	if len(b) != len(mux.DefaultBindings()) {
		t.Fatalf("expected %d bindings, got %d", len(mux.DefaultBindings()), len(b))
	}
	for action, pattern := range mux.DefaultBindings() {
		if b[action] != pattern {
			t.Errorf("%s: got %v, want %v", action, b[action], pattern)
		}
	}
}

func TestLoadMergesFile(t *testing.T) {
	path := writeConfig(t, `
history_capacity: 0
min_extent: 5
bindings:
  focus-left: ctrl+h
  zoom: ""
log:
  level: debug
layout:
  - title: only
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HistoryCapacity != 0 {
		t.Errorf("explicit zero history capacity should be kept, got %d", cfg.HistoryCapacity)
	}
	if cfg.MinExtent != 5 {
		t.Errorf("min_extent = %d", cfg.MinExtent)
	}
	if cfg.SplitRatio != mux.DefaultSplitRatio {
		t.Errorf("split_ratio should keep its default, got %g", cfg.SplitRatio)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != config.DefaultLogFormat {
		t.Errorf("log = %+v", cfg.Log)
	}
	if len(cfg.Layout) != 1 || cfg.Layout[0].Title != "only" {
		t.Errorf("layout = %+v", cfg.Layout)
	}

	b, err := cfg.KeyBindings()
	if err != nil {
		t.Fatalf("bindings: %v", err)
	}
	if _, ok := b[mux.ActionZoom]; ok {
		t.Error("an empty binding should unbind zoom")
	}
	want := mux.KeyPattern{Key: terminal.KeyRune, Rune: 'h', Ctrl: true}
	if b[mux.ActionFocusLeft] != want {
		t.Errorf("focus-left = %v", b[mux.ActionFocusLeft])
	}
	if b[mux.ActionFocusRight] != mux.DefaultBindings()[mux.ActionFocusRight] {
		t.Error("unlisted bindings keep their defaults")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "log:\n  level: warn\n")
	t.Setenv("TILEMUX_LOG_LEVEL", "error")
	t.Setenv("TILEMUX_METRICS_ADDR", "127.0.0.1:9400")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("env should override file, got %q", cfg.Log.Level)
	}
	if cfg.Metrics.Addr != "127.0.0.1:9400" {
		t.Errorf("metrics addr = %q", cfg.Metrics.Addr)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.Theme != config.DefaultTheme {
		t.Errorf("theme = %q", cfg.Theme)
	}

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("an explicit missing path should fail")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := map[string]string{
		"negative history": "history_capacity: -1",
		"zero min extent":  "min_extent: 0",
		"ratio":            "split_ratio: 1.5",
		"theme":            "theme: neon",
		"log level":        "log:\n  level: loud",
		"log format":       "log:\n  format: xml",
		"action":           "bindings:\n  explode: ctrl+e",
		"pattern":          "bindings:\n  zoom: hyper+z",
		"duplicate":        "bindings:\n  zoom: alt+left",
		"layout path":      "layout:\n  - path: sideways",
		"orientation":      "layout:\n  - orientation: diagonal",
		"yaml":             "history_capacity: [",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := config.Load(writeConfig(t, body)); err == nil {
				t.Fatalf("expected %s to be rejected", name)
			}
		})
	}
}

func TestMuxOptionsAndLayout(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.HistoryCapacity = 0
	m := mux.New(cfg.MuxOptions()...)

	ids, err := cfg.BuildLayout(m, func(p config.PaneConfig) mux.Pane { return widgets.NewTextPane(p.Title) })
	if err != nil {
		t.Fatalf("build layout: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 panes, got %d", len(ids))
	}
	if got := m.Leaves(); got[0] != ids[0] || got[1] != ids[1] || got[2] != ids[2] {
		t.Fatalf("leaves %v, ids %v", got, ids)
	}
	p, _ := m.Pane(ids[2])
	if p.(*widgets.TextPane).Title() != "bottom" {
		t.Errorf("third pane should be bottom")
	}
	parent, _ := m.Parent(ids[2])
	if o, _ := m.Orientation(parent); o != mux.Vertical {
		t.Errorf("bottom pane should sit in a vertical split")
	}

	// History is disabled, so moving back right picks the top pane.
	m.MoveFocus(mux.Left)
	m.MoveFocus(mux.Right)
	if m.FocusedID() != ids[1] {
		t.Errorf("focus = %s, want %s", m.FocusedID(), ids[1])
	}
}

func TestWatchReloads(t *testing.T) {
	path := writeConfig(t, "min_extent: 3\n")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *config.Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- config.Watch(ctx, path, nil, func(c *config.Config) { changes <- c })
	}()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()
	for {
		// The watcher may not be registered yet; keep writing until it sees one.
		if err := os.WriteFile(path, []byte("min_extent: 7\n"), 0o644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
		select {
		case cfg := <-changes:
			if cfg.MinExtent != 7 {
				t.Fatalf("min_extent = %d", cfg.MinExtent)
			}
			cancel()
			if err := <-done; err != nil {
				t.Fatalf("watch: %v", err)
			}
			return
		case <-tick.C:
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}

func TestWatchSkipsInvalidFile(t *testing.T) {
	path := writeConfig(t, "min_extent: 3\n")
	ctx, cancel := context.WithTimeout(context.Background(), 700*time.Millisecond)
	defer cancel()

	var calls int
	go func() {
		time.Sleep(150 * time.Millisecond)
		_ = os.WriteFile(path, []byte("min_extent: 0\n"), 0o644)
	}()
	if err := config.Watch(ctx, path, nil, func(*config.Config) { calls++ }); err != nil {
		t.Fatalf("watch: %v", err)
	}
	if calls != 0 {
		t.Fatalf("invalid config should not be delivered, got %d calls", calls)
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := config.Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "config.yaml"), nil, func(*config.Config) {})
	if err == nil || !strings.Contains(err.Error(), "watch") {
		t.Fatalf("expected watch error, got %v", err)
	}
}
