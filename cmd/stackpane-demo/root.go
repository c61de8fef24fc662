package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/stackpane/stackpane/internal/config"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
	}
	logger *slog.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "stackpane-demo",
	Short: "Interactive tour of stackpane's overlay handles",
	Long: `stackpane-demo is a small terminal application exercising the
stackpane overlay library: capability-typed handles inserted through a
per-screen registry and composited over the base view.

Key bindings:
  t           Pop a toast (auto-dismissed after the configured timeout)
  m           Toggle a modal that knows its own handle
  s           Toggle a spinner overlay driven by Update()
  y           Toggle a dump of the registry's tracked overlays
  c           Clear removable toasts
  ?           Toggle help
  q           Quit`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
	RunE: runDemo,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/stackpane/demo.toml)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	a := newApp(cfg, logger)
	p := tea.NewProgram(a, tea.WithAltScreen())

	// Apply config edits live while the demo runs.
	watchPath := globalOpts.configPath
	if watchPath == "" {
		watchPath = config.ConfigPath()
	}
	if watchPath != "" {
		w, err := config.NewWatcher(watchPath, func(c *config.Config) {
			p.Send(configReloadedMsg{cfg: c})
		}, logger)
		if err != nil {
			logger.Warn("config watcher unavailable", "error", err)
		} else if err := w.Start(); err != nil {
			logger.Warn("config watcher failed to start", "error", err)
		} else {
			defer w.Stop()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo exited: %w", err)
	}
	return nil
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	// Log to stderr so the alternate screen stays clean.
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
