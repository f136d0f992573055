package bucketqueue

import (
	"fmt"

	"github.com/katalvlaran/ift"
	"github.com/katalvlaran/ift/grid"
)

// Sentinel errors returned by the Queue.
var (
	// ErrBadSize indicates a negative node count.
	ErrBadSize = fmt.Errorf("%w: bucketqueue: node count must be non-negative", ift.ErrConfiguration)
	// ErrTooManyNodes indicates a node count a grid.Node cannot address.
	ErrTooManyNodes = fmt.Errorf("%w: bucketqueue: node count exceeds addressable range", ift.ErrResource)
	// ErrBadBucketSize indicates a bucket width that is not finite and positive.
	ErrBadBucketSize = fmt.Errorf("%w: bucketqueue: bucket size must be finite and positive", ift.ErrConfiguration)
	// ErrBadMaxBuckets indicates a bucket budget below one.
	ErrBadMaxBuckets = fmt.Errorf("%w: bucketqueue: bucket budget must be positive", ift.ErrConfiguration)
	// ErrBadCost indicates a NaN or infinite cost.
	ErrBadCost = fmt.Errorf("%w: bucketqueue: cost must be finite", ift.ErrConfiguration)
	// ErrNodeRange indicates a node outside [0, size).
	ErrNodeRange = fmt.Errorf("%w: bucketqueue: node out of range", ift.ErrConfiguration)
	// ErrDuplicate indicates Insert of a node that is already queued; use DecreaseKey.
	ErrDuplicate = fmt.Errorf("%w: bucketqueue: node already queued, use DecreaseKey", ift.ErrLogic)
	// ErrSettled indicates Insert or DecreaseKey of a node that already left the queue.
	ErrSettled = fmt.Errorf("%w: bucketqueue: node already settled", ift.ErrLogic)
	// ErrIncrease indicates DecreaseKey with a cost above the recorded one.
	ErrIncrease = fmt.Errorf("%w: bucketqueue: DecreaseKey cannot raise a cost", ift.ErrLogic)
	// ErrEmpty indicates RemoveMin on an empty queue.
	ErrEmpty = fmt.Errorf("%w: bucketqueue: queue is empty", ift.ErrLogic)
	// ErrRange indicates a live cost range wider than the bucket budget, or a
	// cost whose bucket index does not fit the key range.
	ErrRange = fmt.Errorf("%w: bucketqueue: cost range exceeds bucket budget", ift.ErrResource)
)

// Status is the per-node lifecycle state. A node moves
// NotVisited → InQueue → Settled, and never leaves Settled until Reset.
type Status uint8

const (
	// NotVisited nodes have never been queued.
	NotVisited Status = iota
	// InQueue nodes wait in some bucket.
	InQueue
	// Settled nodes were removed by RemoveMin; their cost is final.
	Settled
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case NotVisited:
		return "not-visited"
	case InQueue:
		return "in-queue"
	case Settled:
		return "settled"
	}

	return fmt.Sprintf("Status(%d)", uint8(s))
}

// TieBreak selects the order of nodes sharing a bucket.
type TieBreak int

const (
	// FIFO removes equal-bucket nodes in insertion order.
	FIFO TieBreak = iota
	// LIFO removes the most recently inserted equal-bucket node first.
	LIFO
)

// String implements fmt.Stringer.
func (t TieBreak) String() string {
	if t == LIFO {
		return "lifo"
	}

	return "fifo"
}

const (
	// DefaultInitialBuckets is the ring size allocated up front.
	DefaultInitialBuckets = 256
	// DefaultMaxBuckets bounds the live cost range, in buckets.
	DefaultMaxBuckets = 10_000_000
	// MaxKey bounds |cost/BucketSize|; larger quotients fail with ErrRange.
	MaxKey = 1 << 62
)

// Options configures a Queue.
//
// BucketSize     – cost width of one bucket; costs c and c' share a bucket
//
//	iff ⌊c/BucketSize⌋ == ⌊c'/BucketSize⌋. Default 1.
//
// TieBreak       – FIFO (default) or LIFO inside a bucket.
// InitialBuckets – initial ring size. Default 256.
// MaxBuckets     – widest live key range before ErrRange. Default 10,000,000.
// Ordered        – keep every bucket sorted by exact cost, so RemoveMin
//
//	returns a minimum-cost node even when a bucket holds
//	different costs. Equal costs still follow TieBreak.
//	Inserting into a bucket of mixed costs costs O(bucket).
type Options struct {
	BucketSize     float64
	TieBreak       TieBreak
	InitialBuckets int
	MaxBuckets     int
	Ordered        bool
}

// Option represents a functional option for New.
type Option func(*Options)

// WithBucketSize sets the cost width of one bucket.
func WithBucketSize(size float64) Option {
	return func(o *Options) {
		o.BucketSize = size
	}
}

// WithTieBreak sets the in-bucket order.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = t
	}
}

// WithInitialBuckets sets the initial ring size.
func WithInitialBuckets(n int) Option {
	return func(o *Options) {
		o.InitialBuckets = n
	}
}

// WithMaxBuckets bounds the live key range.
func WithMaxBuckets(n int) Option {
	return func(o *Options) {
		o.MaxBuckets = n
	}
}

// WithOrdered keeps buckets sorted by exact cost.
func WithOrdered() Option {
	return func(o *Options) {
		o.Ordered = true
	}
}

// DefaultOptions returns unit buckets, FIFO ties, 256 initial buckets and a
// 10,000,000 bucket budget, unordered buckets.
func DefaultOptions() Options {
	return Options{
		BucketSize:     1,
		TieBreak:       FIFO,
		InitialBuckets: DefaultInitialBuckets,
		MaxBuckets:     DefaultMaxBuckets,
	}
}

// record is the arena entry of one node: its bucket-list links, its
// recorded cost and its status.
type record struct {
	prev, next grid.Node
	cost       float64
	status     Status
}

// bucket is the head of one doubly linked node list.
type bucket struct {
	first, last grid.Node
}

var emptyBucket = bucket{first: grid.NoNode, last: grid.NoNode}
