package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/ift"
	"github.com/katalvlaran/ift/bucketqueue"
	"github.com/katalvlaran/ift/grid"
)

// Sentinel errors returned by the Engine and the Forest.
var (
	// ErrNilFunction indicates an engine built without a connectivity function.
	ErrNilFunction = fmt.Errorf("%w: engine: connectivity function is nil", ift.ErrConfiguration)
	// ErrEmptySeeds indicates a run without seeds.
	ErrEmptySeeds = fmt.Errorf("%w: engine: seed set is empty", ift.ErrConfiguration)
	// ErrSeedRange indicates a seed outside the domain.
	ErrSeedRange = fmt.Errorf("%w: engine: seed out of domain", ift.ErrConfiguration)
	// ErrDuplicateSeed indicates the same node seeded twice.
	ErrDuplicateSeed = fmt.Errorf("%w: engine: duplicated seed", ift.ErrConfiguration)
	// ErrSeedCost indicates a NaN or infinite seed cost.
	ErrSeedCost = fmt.Errorf("%w: engine: seed cost must be finite", ift.ErrConfiguration)
	// ErrSeedMasked indicates a seed outside the mask.
	ErrSeedMasked = fmt.Errorf("%w: engine: seed lies outside the mask", ift.ErrConfiguration)
	// ErrMaskSize indicates a mask whose length differs from the domain.
	ErrMaskSize = fmt.Errorf("%w: engine: mask does not cover the domain", ift.ErrConfiguration)
	// ErrTargetRange indicates a stop target outside the domain.
	ErrTargetRange = fmt.Errorf("%w: engine: target out of domain", ift.ErrConfiguration)
	// ErrMemoryLimit indicates run arrays larger than the configured limit.
	ErrMemoryLimit = fmt.Errorf("%w: engine: run arrays exceed the memory limit", ift.ErrResource)
	// ErrRunning indicates Run while a run is in progress.
	ErrRunning = fmt.Errorf("%w: engine: run in progress", ift.ErrLogic)
	// ErrSettled indicates Run on a settled engine without Reset.
	ErrSettled = fmt.Errorf("%w: engine: engine already settled, call Reset", ift.ErrLogic)
	// ErrNodeRange indicates a Forest query outside the domain.
	ErrNodeRange = fmt.Errorf("%w: engine: node out of domain", ift.ErrConfiguration)
	// ErrUnreached indicates a path query for a node no seed reached.
	ErrUnreached = fmt.Errorf("%w: engine: node not reached by any seed", ift.ErrConfiguration)
	// ErrCycle indicates a predecessor chain longer than the node count.
	ErrCycle = fmt.Errorf("%w: engine: predecessor chain does not terminate", ift.ErrLogic)
)

// NoLabel marks nodes that no seed reached.
const NoLabel int32 = -1

// Phase is the engine lifecycle state.
type Phase int32

const (
	// Initialized engines accept Run.
	Initialized Phase = iota
	// Running engines are inside Run.
	Running
	// Settled engines finished a run and need Reset.
	Settled
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case Initialized:
		return "initialized"
	case Running:
		return "running"
	case Settled:
		return "settled"
	}

	return fmt.Sprintf("Phase(%d)", int32(p))
}

// Seed is a root candidate: a node, its initial cost and its label.
type Seed struct {
	Node  grid.Node
	Cost  float64
	Label int32
}

// Options configures an Engine.
//
// Logger           – debug events per run. Default zap.NewNop().
// BucketSize       – scheduler bucket width. Default 1.
// TieBreak         – scheduler order within a bucket. Default FIFO.
// MaxBuckets       – widest live cost range, in buckets.
// OrderedBuckets   – keep buckets sorted by exact cost.
//
//	Without it nodes sharing a bucket settle in TieBreak order, and
//	the forest is optimal only up to BucketSize: exact when every
//	cost in a bucket is equal (integer costs at width 1), or when
//	each arc adds at least BucketSize to the cost.
// SequentialLabels – roots are labeled 0, 1, 2, … in settle order and
//
//	seed labels are ignored.
//
// CompetingSeeds   – seeds may be conquered by cheaper paths from other
//
//	seeds. By default seeds keep their cost and label.
//
// Mask             – nodes with mask[n] == false are never conquered.
// Target           – stop once this node settles. Default grid.NoNode (none).
// MemoryLimit      – upper bound in bytes for the run arrays; 0 = unlimited.
type Options struct {
	Logger           *zap.Logger
	BucketSize       float64
	TieBreak         bucketqueue.TieBreak
	MaxBuckets       int
	OrderedBuckets   bool
	SequentialLabels bool
	CompetingSeeds   bool
	Mask             []bool
	Target           grid.Node
	MemoryLimit      int64
}

// Option represents a functional option for New.
type Option func(*Options)

// WithLogger sets the logging handle.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithBucketSize sets the scheduler bucket width.
func WithBucketSize(size float64) Option {
	return func(o *Options) {
		o.BucketSize = size
	}
}

// WithTieBreak sets the scheduler order within a bucket.
func WithTieBreak(t bucketqueue.TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = t
	}
}

// WithMaxBuckets bounds the live cost range of the scheduler.
func WithMaxBuckets(n int) Option {
	return func(o *Options) {
		o.MaxBuckets = n
	}
}

// WithOrderedBuckets settles nodes in exact cost order whatever the
// bucket width.
func WithOrderedBuckets() Option {
	return func(o *Options) {
		o.OrderedBuckets = true
	}
}

// WithSequentialLabels labels roots in settle order.
func WithSequentialLabels() Option {
	return func(o *Options) {
		o.SequentialLabels = true
	}
}

// WithCompetingSeeds lets seeds be conquered by other seeds.
func WithCompetingSeeds() Option {
	return func(o *Options) {
		o.CompetingSeeds = true
	}
}

// WithMask restricts the run to nodes with mask[n] == true.
func WithMask(mask []bool) Option {
	return func(o *Options) {
		o.Mask = mask
	}
}

// WithTarget stops the run once n settles.
func WithTarget(n grid.Node) Option {
	return func(o *Options) {
		o.Target = n
	}
}

// WithMemoryLimit bounds the bytes allocated per run.
func WithMemoryLimit(bytes int64) Option {
	return func(o *Options) {
		o.MemoryLimit = bytes
	}
}

// DefaultOptions returns a no-op logger, unit unordered FIFO buckets, the
// scheduler's bucket budget, inherited labels, fixed seeds, no mask, no target and no
// memory limit.
func DefaultOptions() Options {
	return Options{
		Logger:     zap.NewNop(),
		BucketSize: 1,
		TieBreak:   bucketqueue.FIFO,
		MaxBuckets: bucketqueue.DefaultMaxBuckets,
		Target:     grid.NoNode,
	}
}

// bytesPerNode approximates the run footprint of one node: cost, predecessor,
// label, settle order, seed flag and the scheduler record.
const bytesPerNode = 8 + 4 + 4 + 4 + 1 + 24
