// Package stats computes the image statistics some connectivity functions
// need before a run: the maximum arc weight, per-node gradients and
// Gaussian densities.
//
// What:
//
//   - The node range is cut into contiguous shards. Workers scan their shard
//     against the read-only image with a private adjacency.Iterator and
//     write either one scalar per shard or a disjoint slice of a per-node
//     map. Scalars are reduced once every worker returned.
//   - Workers run in an errgroup bounded by Options.Workers and stop early
//     when the context is cancelled.
//
// Complexity:
//
//   - Every scan is O(N·|A|) work spread over the workers, O(N) memory for
//     per-node maps and O(Shards) for scalar reductions.
//
// Errors:
//
//   - ErrBadShards, ErrBadWorkers, ErrBadSigma wrap ift.ErrConfiguration.
//   - Dimension mismatches surface as adjacency.ErrDimensionMismatch.
//   - Cancellation surfaces as the context's error.
package stats
