// Package engine runs the Image Foresting Transform: a Dijkstra-family
// relaxation that grows an optimum-path forest from a set of seeds over the
// implicit adjacency graph of an N-dimensional image.
//
// What:
//
//   - Engine composes a grid.Domain, an adjacency.Relation, a
//     pathfunc.Function and a bucketqueue.Queue.
//   - Run seeds the queue, then repeatedly settles the cheapest node s and
//     offers it to every open neighbor t. An offer the function reports as
//     improved sets cost[t], predecessor[t] = s and label[t] (inherited from
//     s unless the function relabels), and moves t in the queue.
//   - A node that settles without a predecessor is a root. Functions that
//     implement pathfunc.RootCoster may lower its cost at that moment.
//   - Forest is the owned result: cost, predecessor and label arrays, the
//     settle order, path reconstruction and the label partition.
//
// Lifecycle:
//
//	Initialized --Run--> Running --> Settled --Reset--> Initialized
//	                        \--error--> Initialized
//
// Run on a Settled engine fails with ErrSettled until Reset. A failed run
// returns no forest.
//
// Guarantees:
//
//   - Every reached node has a finite cost and a predecessor chain ending at
//     exactly one root. Chains are acyclic because a node settles once and
//     settled nodes are never relaxed.
//   - Seeds keep their cost and label unless WithCompetingSeeds is set.
//   - Identical inputs give identical forests.
//   - Costs are optimal when nodes sharing a bucket have equal costs, when
//     every arc adds at least the bucket width, or with
//     WithOrderedBuckets. Otherwise they are optimal up to the bucket
//     width: fractional costs at the default width 1 may settle out of
//     order.
//
// Options:
//
//   - WithLogger, WithBucketSize, WithTieBreak, WithMaxBuckets,
//     WithOrderedBuckets.
//   - WithSequentialLabels, WithCompetingSeeds (clustering).
//   - WithMask, WithTarget, WithMemoryLimit.
//
// Errors:
//
//   - Configuration: ErrNilFunction, ErrEmptySeeds, ErrSeedRange,
//     ErrDuplicateSeed, ErrSeedCost, ErrSeedMasked, ErrMaskSize,
//     ErrTargetRange, ErrNodeRange, ErrUnreached.
//   - Resource: ErrMemoryLimit, bucketqueue.ErrRange.
//   - Logic: ErrRunning, ErrSettled, ErrCycle.
package engine
