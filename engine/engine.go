package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/ift/adjacency"
	"github.com/katalvlaran/ift/bucketqueue"
	"github.com/katalvlaran/ift/grid"
	"github.com/katalvlaran/ift/pathfunc"
)

// Engine builds optimum-path forests over one domain, one adjacency
// relation and one connectivity function. An Engine is not safe for
// concurrent use; independent engines may run in parallel.
type Engine struct {
	dom     grid.Domain
	it      *adjacency.Iterator
	fn      pathfunc.Function
	relabel pathfunc.Relabeler
	rooter  pathfunc.RootCoster
	opts    Options
	log     *zap.Logger
	queue   *bucketqueue.Queue
	phase   Phase
}

// New validates the configuration, prepares fn and allocates the scheduler.
// Returns ErrNilFunction, adjacency.ErrDimensionMismatch, ErrMaskSize,
// ErrTargetRange, ErrMemoryLimit, the scheduler's configuration errors, or
// the error of fn's Prepare.
func New(dom grid.Domain, rel *adjacency.Relation, fn pathfunc.Function, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if fn == nil {
		return nil, ErrNilFunction
	}
	it, err := adjacency.NewIterator(dom, rel)
	if err != nil {
		return nil, err
	}
	if cfg.Mask != nil && len(cfg.Mask) != dom.Len() {
		return nil, fmt.Errorf("%w: %d entries for %d nodes", ErrMaskSize, len(cfg.Mask), dom.Len())
	}
	if cfg.Target != grid.NoNode && !dom.Contains(cfg.Target) {
		return nil, fmt.Errorf("%w: %d", ErrTargetRange, cfg.Target)
	}
	if need := int64(dom.Len()) * bytesPerNode; cfg.MemoryLimit > 0 && need > cfg.MemoryLimit {
		return nil, fmt.Errorf("%w: %d bytes needed, limit %d", ErrMemoryLimit, need, cfg.MemoryLimit)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	qopts := []bucketqueue.Option{
		bucketqueue.WithBucketSize(cfg.BucketSize),
		bucketqueue.WithTieBreak(cfg.TieBreak),
		bucketqueue.WithMaxBuckets(cfg.MaxBuckets),
	}
	if cfg.OrderedBuckets {
		qopts = append(qopts, bucketqueue.WithOrdered())
	}
	queue, err := bucketqueue.New(dom.Len(), qopts...)
	if err != nil {
		return nil, err
	}
	if p, ok := fn.(pathfunc.Preparer); ok {
		if err := p.Prepare(dom, rel); err != nil {
			return nil, err
		}
	}
	relabel, _ := fn.(pathfunc.Relabeler)
	rooter, _ := fn.(pathfunc.RootCoster)

	return &Engine{
		dom:     dom,
		it:      it,
		fn:      fn,
		relabel: relabel,
		rooter:  rooter,
		opts:    cfg,
		log:     cfg.Logger,
		queue:   queue,
	}, nil
}

// Transform builds an engine and runs it once.
func Transform(dom grid.Domain, rel *adjacency.Relation, fn pathfunc.Function, seeds []Seed, opts ...Option) (*Forest, error) {
	e, err := New(dom, rel, fn, opts...)
	if err != nil {
		return nil, err
	}

	return e.Run(seeds)
}

// Phase returns the lifecycle state.
func (e *Engine) Phase() Phase { return e.phase }

// Domain returns the node domain.
func (e *Engine) Domain() grid.Domain { return e.dom }

// Reset returns a settled engine to Initialized. It does nothing while a
// run is in progress. Forests returned by earlier runs stay valid; they
// own their arrays.
func (e *Engine) Reset() {
	if e.phase == Running {
		return
	}
	e.phase = Initialized
}

// Run seeds the scheduler and relaxes until it is empty, or until the
// target settles. Seeds are validated before anything is allocated.
//
// Returns ErrSettled or ErrRunning when the engine is not Initialized;
// ErrEmptySeeds, ErrSeedRange, ErrDuplicateSeed, ErrSeedCost or
// ErrSeedMasked for bad seeds; bucketqueue.ErrRange when costs spread over
// more buckets than allowed. On error no forest is returned and the engine
// stays Initialized.
//
// Complexity: O(N·|A|) relaxations plus O(N + C/BucketSize) scheduling,
// where C is the cost range. Memory: O(N).
func (e *Engine) Run(seeds []Seed) (*Forest, error) {
	switch e.phase {
	case Running:
		return nil, ErrRunning
	case Settled:
		return nil, ErrSettled
	}
	seeded, err := e.validate(seeds)
	if err != nil {
		return nil, err
	}

	e.phase = Running
	start := time.Now()
	f, err := e.run(seeds, seeded)
	if err != nil {
		e.phase = Initialized
		e.log.Debug("ift run failed", zap.Int("seeds", len(seeds)), zap.Error(err))
		return nil, err
	}
	e.phase = Settled
	e.log.Debug("ift run settled",
		zap.Int("nodes", e.dom.Len()),
		zap.Int("seeds", len(seeds)),
		zap.Int("settled", len(f.Order)),
		zap.Int("buckets", e.queue.Buckets()),
		zap.Int("grows", e.queue.Grows()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return f, nil
}

// validate checks seeds against the domain and the mask and returns the
// seeded node set.
func (e *Engine) validate(seeds []Seed) (*roaring.Bitmap, error) {
	if len(seeds) == 0 {
		return nil, ErrEmptySeeds
	}
	seeded := roaring.New()
	for i, s := range seeds {
		if !e.dom.Contains(s.Node) {
			return nil, fmt.Errorf("%w: seed %d is node %d of %d", ErrSeedRange, i, s.Node, e.dom.Len())
		}
		if math.IsNaN(s.Cost) || math.IsInf(s.Cost, 0) {
			return nil, fmt.Errorf("%w: seed %d cost %g", ErrSeedCost, i, s.Cost)
		}
		if e.opts.Mask != nil && !e.opts.Mask[s.Node] {
			return nil, fmt.Errorf("%w: node %d", ErrSeedMasked, s.Node)
		}
		if !seeded.CheckedAdd(uint32(s.Node)) {
			return nil, fmt.Errorf("%w: node %d", ErrDuplicateSeed, s.Node)
		}
	}

	return seeded, nil
}

func (e *Engine) run(seeds []Seed, seeded *roaring.Bitmap) (*Forest, error) {
	n := e.dom.Len()
	q := e.queue
	q.Reset()
	r := &run{
		cost:  make([]float64, n),
		pred:  make([]grid.Node, n),
		label: make([]int32, n),
		seed:  make([]bool, n),
		queue: q,
	}
	for i := range r.cost {
		r.cost[i] = math.Inf(1)
		r.pred[i] = grid.NoNode
		r.label[i] = NoLabel
	}
	seeded.Iterate(func(x uint32) bool {
		r.seed[x] = true
		return true
	})
	for i, in := range e.opts.Mask {
		if !in {
			if err := q.Finish(grid.Node(i)); err != nil {
				return nil, err
			}
		}
	}
	for _, s := range seeds {
		r.cost[s.Node] = s.Cost
		if !e.opts.SequentialLabels {
			r.label[s.Node] = s.Label
		}
		if err := q.Insert(s.Node, s.Cost); err != nil {
			return nil, fmt.Errorf("engine: seed node %d: %w", s.Node, err)
		}
	}

	order := make([]grid.Node, 0, n)
	var next int32
	for !q.Empty() {
		s, err := q.RemoveMin()
		if err != nil {
			return nil, err
		}
		order = append(order, s)
		if r.pred[s] == grid.NoNode {
			if e.opts.SequentialLabels {
				r.label[s] = next
				next++
			}
			if e.rooter != nil {
				r.cost[s] = math.Min(r.cost[s], e.rooter.RootCost(s))
			}
		}
		if s == e.opts.Target {
			break
		}
		if err := e.relax(r, s); err != nil {
			return nil, err
		}
	}

	return &Forest{
		Cost:        r.cost,
		Predecessor: r.pred,
		Label:       r.label,
		Order:       order,
		dom:         e.dom,
	}, nil
}

// relax offers s to every neighbor that is still open.
func (e *Engine) relax(r *run, s grid.Node) error {
	q := r.queue
	for k, t := range e.it.Neighbors(s) {
		if q.Status(t) == bucketqueue.Settled {
			continue
		}
		if r.seed[t] && !e.opts.CompetingSeeds {
			continue
		}
		cand, improved := e.fn.Propagate(s, t, k, r)
		if !improved {
			continue
		}
		if err := q.DecreaseKey(t, cand); err != nil {
			return fmt.Errorf("engine: relax %d→%d: %w", s, t, err)
		}
		r.cost[t] = cand
		r.pred[t] = s
		if e.relabel != nil {
			r.label[t] = e.relabel.Relabel(s, t, r)
		} else {
			r.label[t] = r.label[s]
		}
	}

	return nil
}

// run holds the arrays of one run and serves as the pathfunc.State view.
type run struct {
	cost  []float64
	pred  []grid.Node
	label []int32
	seed  []bool
	queue *bucketqueue.Queue
}

func (r *run) Cost(n grid.Node) float64 { return r.cost[n] }
func (r *run) Label(n grid.Node) int32 { return r.label[n] }
func (r *run) Predecessor(n grid.Node) grid.Node { return r.pred[n] }
func (r *run) Status(n grid.Node) bucketqueue.Status { return r.queue.Status(n) }
