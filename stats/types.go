package stats

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/ift"
)

// Sentinel errors for statistics scans.
var (
	// ErrBadShards indicates a shard count below one.
	ErrBadShards = fmt.Errorf("%w: stats: shard count must be positive", ift.ErrConfiguration)
	// ErrBadWorkers indicates a worker limit below one.
	ErrBadWorkers = fmt.Errorf("%w: stats: worker limit must be positive", ift.ErrConfiguration)
	// ErrBadSigma indicates a Gaussian bandwidth that is not finite and positive.
	ErrBadSigma = fmt.Errorf("%w: stats: sigma must be finite and positive", ift.ErrConfiguration)
)

// DefaultShards is the number of node ranges a scan is cut into.
const DefaultShards = 12

// Options configures a scan.
//
// Shards  – number of contiguous node ranges. Default 12.
// Workers – goroutines scanning shards at once. Default GOMAXPROCS.
type Options struct {
	Shards  int
	Workers int
}

// Option represents a functional option for scans.
type Option func(*Options)

// WithShards sets the number of node ranges.
func WithShards(n int) Option {
	return func(o *Options) {
		o.Shards = n
	}
}

// WithWorkers bounds the goroutines scanning at once.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// DefaultOptions returns 12 shards scanned by GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{
		Shards:  DefaultShards,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Summary describes a per-node map.
type Summary struct {
	Min, Max     float64
	Mean, StdDev float64
}
