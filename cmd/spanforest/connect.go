package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spanforest/internal/config"
	"github.com/katalvlaran/spanforest/kruskal"
	"github.com/katalvlaran/spanforest/spatial"
)

func newConnectCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connect [file]",
		Short: "Combine the endpoints of the last merge until all points connect",
		Long: `Join points until they form one cluster and combine the endpoints of the
last connection that merged two clusters.

Combiners: product-x, product-y, product-z, sum-x, sum-y, sum-z.

Examples:
  spanforest connect points.txt
  spanforest connect --combiner sum-z < points.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, config.ModeConnect, args)
		},
	}
	cmd.Flags().StringVarP(&f.combiner, "combiner", "c", "product-x", "combiner applied to the last merge edge")

	return cmd
}

func runConnect(cfg config.Config, points []spatial.Point, logger *slog.Logger) (uint64, error) {
	combine, err := kruskal.CombinerByName(cfg.Combiner)
	if err != nil {
		return 0, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return 0, err
	}
	res, err := kruskal.Connect(points, combine, append(opts, kruskal.WithLogger(logger))...)
	if err != nil {
		return 0, err
	}
	logger.Debug("last merge", "edge", res.Last.String(), "merges", res.Merges)

	return res.Value, nil
}
