package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/san-kum/helix/internal/config"
	"github.com/san-kum/helix/internal/gui"
	"github.com/san-kum/helix/internal/helix"
	"github.com/san-kum/helix/internal/viz"
)

var (
	dataDir    string
	configFile string
	verbose    bool
	watch      bool
	preset     string

	logger *zap.Logger
)

// main registers the commands and flags and executes the root command,
// which opens the window when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "helix",
		Short: "rotating double helix",
		Long: `helix builds a parametric DNA double helix and spins it in real time.

Run without arguments to open the window. Segment count, radius, height
and rotation speed are editable live from the slider panel.`,
		PersistentPreRunE: initLogger,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".helix", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&watch, "watch", false, "reload the config file when it changes")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "start from a named preset")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the 3D window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "render the helix in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, newSnapshotCmd(), newListCmd(), newPlotCmd(),
		newExportSVGCmd(), newExportCSVCmd(), newPresetsCmd(), newConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initLogger builds the zap logger. The terminal front end owns the
// screen, so its log goes to a file in the data directory.
func initLogger(cmd *cobra.Command, args []string) error {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if cmd.Name() == "tui" {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return err
		}
		path := filepath.Join(dataDir, "helix.log")
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}
	}
	var err error
	logger, err = cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// loadConfig resolves the config file and preset flags into one config.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Params = p.Clamp(cfg.Bounds)
	}
	return cfg, nil
}

// startWatcher returns the reload channel and a stop func. Without --watch
// or --config the channel is nil.
func startWatcher(ctx context.Context) (<-chan *config.Config, func(), error) {
	if !watch || configFile == "" {
		return nil, func() {}, nil
	}
	w, err := config.NewWatcher(configFile, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := w.Start(ctx); err != nil {
		return nil, nil, err
	}
	return w.Updates(), w.Stop, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	reloads, stop, err := startWatcher(ctx)
	if err != nil {
		return err
	}
	defer stop()

	logger.Info("opening window",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("segments", cfg.Params.SegmentCount))
	gui.Run(ctx, cfg, gui.Options{Logger: logger, Reloads: reloads})
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	reloads, stop, err := startWatcher(ctx)
	if err != nil {
		return err
	}
	defer stop()

	return viz.Run(viz.Options{Config: cfg, Reloads: reloads})
}

// applyOverrides sets name=value pairs onto p through a store so values
// are clamped the same way the panel clamps them.
func applyOverrides(cfg *config.Config, overrides map[string]string) (helix.Params, error) {
	store := helix.NewStore(cfg.Params, cfg.Bounds)
	for name, raw := range overrides {
		f, err := helix.ParseField(name)
		if err != nil {
			return helix.Params{}, err
		}
		var v float64
		if _, err := fmt.Sscanf(raw, "%g", &v); err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return helix.Params{}, fmt.Errorf("invalid value for %s: %q", name, raw)
		}
		if !cfg.Bounds.For(f).Contains(v) {
			logger.Warn("value clamped", zap.String("field", f.String()), zap.Float64("value", v))
		}
		store.Set(f, v)
	}
	return store.Params(), nil
}
