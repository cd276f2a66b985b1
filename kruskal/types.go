// Package kruskal defines options, strategies, results and sentinel errors
// for the clustering runs.
package kruskal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/spanforest/spatial"
)

// ErrInvalidInput indicates a point set or option value a mode cannot run
// with: no points for Bounded, fewer than two for Connect, a negative
// cutoff, a non-positive top count, or a nil combiner.
var ErrInvalidInput = errors.New("kruskal: invalid input")

// ErrOverflow indicates a size product or combiner result that does not fit
// into uint64. It is the same sentinel as spatial.ErrOverflow.
var ErrOverflow = spatial.ErrOverflow

// Method names used as error context.
const (
	MethodBounded  = "Bounded"
	MethodConnect  = "Connect"
	MethodSpanning = "Spanning"
)

// DefaultCutoff is the number of edges Bounded processes unless WithCutoff
// says otherwise.
const DefaultCutoff = 1000

// DefaultTop is the number of largest clusters whose sizes Bounded
// multiplies.
const DefaultTop = 3

// Strategy selects how the ascending edge order is produced.
type Strategy int

const (
	// StrategySorted materializes and stable-sorts the whole edge set.
	StrategySorted Strategy = iota

	// StrategyLazy heapifies the edge set and pops edges on demand.
	// It yields the same order as StrategySorted.
	StrategyLazy
)

// String returns the lowercase name used by configs and flags.
func (s Strategy) String() string {
	switch s {
	case StrategySorted:
		return "sorted"
	case StrategyLazy:
		return "lazy"
	default:
		return "unknown"
	}
}

// ParseStrategy maps "sorted" or "lazy" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "sorted", "":
		return StrategySorted, nil
	case "lazy":
		return StrategyLazy, nil
	default:
		return 0, fmt.Errorf("ParseStrategy(%q): unknown strategy: %w", name, ErrInvalidInput)
	}
}

// Options configures a run. Use DefaultOptions and Option functions.
type Options struct {
	// Cutoff is the number of edges Bounded processes. Ignored by Connect.
	Cutoff int

	// Top is how many of the largest clusters Bounded multiplies.
	Top int

	// Strategy picks sorted or lazy edge ordering.
	Strategy Strategy

	// Logger receives a Debug summary of each run.
	Logger *slog.Logger
}

// Option configures Options.
type Option func(*Options)

// WithCutoff sets the number of edges Bounded processes.
func WithCutoff(k int) Option {
	return func(o *Options) { o.Cutoff = k }
}

// WithTop sets how many of the largest clusters Bounded multiplies.
func WithTop(n int) Option {
	return func(o *Options) { o.Top = n }
}

// WithStrategy selects the edge ordering strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Cutoff=DefaultCutoff, Top=DefaultTop, sorted
// strategy and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Cutoff:   DefaultCutoff,
		Top:      DefaultTop,
		Strategy: StrategySorted,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// BoundedResult is the outcome of Bounded.
type BoundedResult struct {
	// Product of the Top largest cluster sizes (fewer if fewer clusters).
	Product uint64

	// Sizes of all clusters after the scan, largest first.
	Sizes []int

	// Processed is the number of edges consumed, min(Cutoff, |E|).
	Processed int

	// Merges is the number of processed edges that joined two clusters.
	Merges int

	// Clusters is the cluster count after the scan.
	Clusters int
}

// ConnectResult is the outcome of Connect.
type ConnectResult struct {
	// Value is the combiner applied to Last's endpoints.
	Value uint64

	// Last is the most recent edge whose union merged two clusters. It is
	// the first edge in order when no edge merged anything.
	Last spatial.Edge

	// Merges is the number of successful unions, d−1 for d distinct points.
	Merges int

	// Clusters is the final cluster count.
	Clusters int
}
