package opf

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/ift"
	"github.com/katalvlaran/ift/bucketqueue"
	"github.com/katalvlaran/ift/engine"
	"github.com/katalvlaran/ift/stats"
)

// ErrBadFraction indicates an intensity fraction outside [0, 1].
var ErrBadFraction = fmt.Errorf("%w: opf: intensity fraction must lie in [0, 1]", ift.ErrConfiguration)

// plateauSteps is the number of δ steps the density spread is divided into.
const plateauSteps = 10000

// Options configures SpatialClustering.
//
// Logger   – debug events, also handed to the engine. Default zap.NewNop().
// TieBreak – scheduler order among equal densities. Default FIFO.
// Stats    – options for the density scans.
type Options struct {
	Logger   *zap.Logger
	TieBreak bucketqueue.TieBreak
	Stats    []stats.Option
}

// Option represents a functional option for SpatialClustering.
type Option func(*Options)

// WithLogger sets the logging handle.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithTieBreak sets the scheduler order among equal densities.
func WithTieBreak(t bucketqueue.TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = t
	}
}

// WithStatsOptions forwards options to the density scans.
func WithStatsOptions(opts ...stats.Option) Option {
	return func(o *Options) {
		o.Stats = append(o.Stats, opts...)
	}
}

// DefaultOptions returns a no-op logger and FIFO ties.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop(), TieBreak: bucketqueue.FIFO}
}

// Result is a clustering.
//
// Label    – cluster per node, 0 … Clusters-1 in root settle order.
// Clusters – number of clusters.
// Density  – density per node.
// Sigma    – density bandwidth.
// Forest   – the optimum-path forest; its costs are negated path strengths.
type Result struct {
	Label    []int32
	Clusters int
	Density  []float64
	Sigma    float64
	Forest   *engine.Forest
}
