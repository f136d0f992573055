package segmentation

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/ift"
	"github.com/katalvlaran/ift/adjacency"
	"github.com/katalvlaran/ift/bucketqueue"
	"github.com/katalvlaran/ift/engine"
	"github.com/katalvlaran/ift/stats"
)

// Sentinel errors returned by the segmentation methods.
var (
	// ErrNoObjectSeeds indicates a seeded method called without object seeds.
	ErrNoObjectSeeds = fmt.Errorf("%w: segmentation: object seed set is empty", ift.ErrConfiguration)
	// ErrNoBackgroundSeeds indicates a seeded method called without background seeds.
	ErrNoBackgroundSeeds = fmt.Errorf("%w: segmentation: background seed set is empty", ift.ErrConfiguration)
	// ErrBadRegions indicates a region count outside [1, N].
	ErrBadRegions = fmt.Errorf("%w: segmentation: region count must lie in [1, N]", ift.ErrConfiguration)
	// ErrDisconnected indicates an adjacency that does not connect the domain.
	ErrDisconnected = fmt.Errorf("%w: segmentation: adjacency does not connect every node", ift.ErrConfiguration)
)

// Label values of the binary segmentations.
const (
	Background int32 = 0
	Object     int32 = 1
)

// spanBuckets is the number of scheduler buckets one maximal arc may span
// before the buckets widen and switch to exact in-bucket ordering.
const spanBuckets = 1 << 20

// Options configures the segmentation methods.
//
// Logger   – debug events, also handed to every engine run. Default zap.NewNop().
// Relation – adjacency; nil selects HyperSpheric(1.5) in the image's dimensionality.
// TieBreak – scheduler order within a bucket. Default FIFO.
// Stats    – options for the gradient scan.
type Options struct {
	Logger   *zap.Logger
	Relation *adjacency.Relation
	TieBreak bucketqueue.TieBreak
	Stats    []stats.Option
}

// Option represents a functional option for the segmentation methods.
type Option func(*Options)

// WithLogger sets the logging handle.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithRelation sets the adjacency relation.
func WithRelation(rel *adjacency.Relation) Option {
	return func(o *Options) {
		o.Relation = rel
	}
}

// WithTieBreak sets the scheduler order within a bucket.
func WithTieBreak(t bucketqueue.TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = t
	}
}

// WithStatsOptions forwards options to the gradient scan.
func WithStatsOptions(opts ...stats.Option) Option {
	return func(o *Options) {
		o.Stats = append(o.Stats, opts...)
	}
}

// DefaultOptions returns a no-op logger, the default adjacency and FIFO ties.
func DefaultOptions() Options {
	return Options{
		Logger:   zap.NewNop(),
		TieBreak: bucketqueue.FIFO,
	}
}

// Result is a binary segmentation.
//
// Label  – Object or Background per node, engine.NoLabel where unreached.
// Object – the nodes labeled Object.
// Forest – the forest of the final run.
type Result struct {
	Label  []int32
	Object *roaring.Bitmap
	Forest *engine.Forest
}

// Partition is a segmentation into numbered regions.
//
// Label   – region per node, 0 … Count-1.
// Count   – number of regions.
// Forest  – the spanning forest after the cuts; cut nodes are roots.
type Partition struct {
	Label  []int32
	Count  int
	Forest *engine.Forest
}

// Regions groups nodes by region.
func (p *Partition) Regions() map[int32]*roaring.Bitmap {
	out := make(map[int32]*roaring.Bitmap, p.Count)
	for n, l := range p.Label {
		bm, ok := out[l]
		if !ok {
			bm = roaring.New()
			out[l] = bm
		}
		bm.Add(uint32(n))
	}

	return out
}
