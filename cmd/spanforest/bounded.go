package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spanforest/internal/config"
	"github.com/katalvlaran/spanforest/kruskal"
	"github.com/katalvlaran/spanforest/spatial"
)

func newBoundedCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bounded [file]",
		Short: "Multiply the largest cluster sizes after the first K edges",
		Long: `Process only the K shortest connections, then multiply the sizes of the
largest clusters left.

Examples:
  spanforest bounded points.txt
  spanforest bounded --cutoff 10 --top 3 < points.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, config.ModeBounded, args)
		},
	}
	cmd.Flags().IntVarP(&f.cutoff, "cutoff", "k", kruskal.DefaultCutoff, "number of edges to process")
	cmd.Flags().IntVarP(&f.top, "top", "t", kruskal.DefaultTop, "number of largest clusters to multiply")

	return cmd
}

func runBounded(cfg config.Config, points []spatial.Point, logger *slog.Logger) (uint64, error) {
	opts, err := cfg.Options()
	if err != nil {
		return 0, err
	}
	res, err := kruskal.Bounded(points, append(opts, kruskal.WithLogger(logger))...)
	if err != nil {
		return 0, err
	}
	logger.Debug("cluster sizes", "sizes", res.Sizes, "processed", res.Processed, "merges", res.Merges)

	return res.Product, nil
}
