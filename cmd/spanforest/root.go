package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spanforest/internal/config"
	"github.com/katalvlaran/spanforest/internal/logging"
	"github.com/katalvlaran/spanforest/pointio"
	"github.com/katalvlaran/spanforest/spatial"
)

// flags holds every command-line value. Flags only override the config
// file when set explicitly.
type flags struct {
	configPath string
	logLevel   string
	logFile    string
	strategy   string
	cutoff     int
	top        int
	combiner   string
}

// newRootCmd builds the command tree. Without a subcommand the mode comes
// from the config file.
func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "spanforest [file]",
		Short: "Cluster 3-D points along their shortest connections",
		Long: `spanforest reads one "x,y,z" point per line (from a file or stdin), joins
points along the complete Euclidean graph in ascending distance order and
prints one unsigned number:

  bounded  product of the largest cluster sizes after the first K edges
  connect  combination of the endpoints of the last edge that merged clusters`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, "", args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML config file")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&f.logFile, "log-file", "", "log file (default stderr)")
	pf.StringVar(&f.strategy, "strategy", "", "edge ordering: sorted or lazy")

	root.AddCommand(newBoundedCmd(f), newConnectCmd(f))

	return root
}

// loadConfig merges defaults, the config file and explicitly set flags.
func loadConfig(cmd *cobra.Command, f *flags, mode string) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	if mode != "" {
		cfg.Mode = mode
	}
	set := func(name string, apply func()) {
		if fl := cmd.Flags().Lookup(name); fl != nil && fl.Changed {
			apply()
		}
	}
	set("log-level", func() { cfg.Logging.Level = f.logLevel })
	set("log-file", func() { cfg.Logging.Path = f.logFile })
	set("strategy", func() { cfg.Strategy = f.strategy })
	set("cutoff", func() { cfg.Cutoff = f.cutoff })
	set("top", func() { cfg.Top = f.top })
	set("combiner", func() { cfg.Combiner = f.combiner })

	return cfg, cfg.Validate()
}

// readPoints reads from the named file, or from stdin when args is empty or
// names "-".
func readPoints(cmd *cobra.Command, args []string) ([]spatial.Point, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}

	return pointio.Parse(r)
}

// run resolves configuration and dispatches to the selected mode.
func run(cmd *cobra.Command, f *flags, mode string, args []string) error {
	cfg, err := loadConfig(cmd, f, mode)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(cfg.Logging.Path, cfg.Logging.Level, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()
	logger = logger.With("run_id", uuid.NewString(), "mode", cfg.Mode)

	points, err := readPoints(cmd, args)
	if err != nil {
		logger.Error("reading points failed", "err", err)
		return err
	}
	logger.Info("points loaded", "count", len(points), "edges", spatial.EdgeCount(len(points)))

	var result uint64
	switch cfg.Mode {
	case config.ModeConnect:
		result, err = runConnect(cfg, points, logger)
	default:
		result, err = runBounded(cfg, points, logger)
	}
	if err != nil {
		logger.Error("run failed", "err", err)
		return err
	}

	logger.Info("run finished", "result", result)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)

	return err
}
