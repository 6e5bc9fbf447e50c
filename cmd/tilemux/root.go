package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/odvcencio/tilemux/pkg/config"
	"github.com/odvcencio/tilemux/pkg/logging"
	"github.com/odvcencio/tilemux/pkg/mux"
	"github.com/odvcencio/tilemux/pkg/telemetry"
	"github.com/odvcencio/tilemux/pkg/ui/backend"
	tcellbackend "github.com/odvcencio/tilemux/pkg/ui/backend/tcell"
	"github.com/odvcencio/tilemux/pkg/ui/runtime"
	"github.com/odvcencio/tilemux/pkg/ui/theme"
	"github.com/odvcencio/tilemux/pkg/ui/widgets"
)

// newBackend lets tests substitute a simulated terminal.
var newBackend = func() (backend.Backend, error) {
	return tcellbackend.New()
}

type options struct {
	configPath  string
	logFile     string
	metricsAddr string
	theme       string
	verbose     bool
	noWatch     bool
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "tilemux",
		Short: "Tiling pane multiplexer for the terminal",
		Long: `tilemux splits the terminal into tiled panes. Split with ctrl+n and ctrl+b,
close with ctrl+w, move focus with alt+arrows and resize with ctrl+arrows.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("tilemux %s\ncommit: %s\nbuilt: %s\n", version, commit, buildDate))

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	root.Flags().StringVar(&opts.theme, "theme", "", "color theme (default, mono)")
	root.Flags().BoolVar(&opts.noWatch, "no-watch", false, "do not reload the config file on change")

	root.AddCommand(newConfigCmd(&opts))
	return root
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*opts)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return enc.Close()
		},
	}
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config, opts options) {
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.metricsAddr != "" {
		cfg.Metrics.Addr = opts.metricsAddr
	}
	if opts.theme != "" {
		cfg.Theme = opts.theme
	}
}

func newLogger(cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	format, err := logging.ParseFormat(cfg.Format)
	if err != nil {
		return nil, nil, err
	}
	// The terminal belongs to the panes; logs only go to a file.
	w, err := logging.OpenFile(cfg.File)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(w, logging.Options{Level: level, Format: format, Prefix: "tilemux"}), w, nil
}

func run(ctx context.Context, opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()
	ctx = logging.WithLogger(ctx, logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	muxOpts := append(cfg.MuxOptions(), mux.WithLogger(logger))
	if cfg.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		muxOpts = append(muxOpts, mux.WithObserver(telemetry.NewMetrics(reg)))
		g.Go(func() error {
			return telemetry.Serve(ctx, cfg.Metrics.Addr, telemetry.NewRouter(reg), logger)
		})
	}

	m := mux.New(muxOpts...)
	if _, err := cfg.BuildLayout(m, func(p config.PaneConfig) mux.Pane {
		return widgets.NewTextPane(p.Title)
	}); err != nil {
		return err
	}

	th, _ := theme.ByName(cfg.Theme)
	be, err := newBackend()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	sh := newShell(m, th)
	app := runtime.NewApp(runtime.AppConfig{
		Backend: be,
		Root:    sh,
		Theme:   th,
		Logger:  logger,
	})

	if path := watchPath(opts.configPath); path != "" && !opts.noWatch {
		g.Go(func() error {
			watchConfig(ctx, app, sh, path, opts, logger)
			return nil
		})
	}

	logger.Info("tilemux starting", "version", version, "panes", m.Len())
	g.Go(func() error {
		// Quitting the app stops the metrics server and watcher.
		defer cancel()
		return app.Run(ctx)
	})
	return g.Wait()
}

func watchPath(path string) string {
	if path != "" {
		return path
	}
	return config.DefaultPath()
}

// watchConfig applies reloaded bindings and theme on the event loop.
func watchConfig(ctx context.Context, app *runtime.App, sh *shell, path string, opts options, logger *slog.Logger) {
	err := config.Watch(ctx, path, logger, func(cfg *config.Config) {
		applyFlags(cfg, opts)
		bindings, err := cfg.KeyBindings()
		if err != nil {
			logger.Warn("ignoring reloaded bindings", "error", err)
			return
		}
		th, ok := theme.ByName(cfg.Theme)
		if !ok {
			logger.Warn("ignoring unknown theme", "theme", cfg.Theme)
		}
		app.Post(runtime.CallMsg{Fn: func() bool {
			sh.mux.SetBindings(bindings)
			if ok {
				sh.setTheme(th)
				if s := app.Screen(); s != nil {
					s.SetTheme(th)
				}
			}
			return true
		}})
	})
	if err != nil {
		logger.Warn("config watch disabled", "path", path, "error", err)
	}
}
