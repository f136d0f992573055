// Package pathfunc provides the connectivity functions of the Image
// Foresting Transform: strategies that price the extension of an optimum
// path from a settled node s to a neighbor t.
//
// What:
//
//   - MinPath:      max(cost(s), w(s,t)); max-arc paths, used for clustering.
//   - SumPath:      additive geodesic star cost with orientation bias α and
//     exponent β.
//   - Oriented:     additive cost whose arcs are penalized or rejected by
//     the direction of the intensity transition (Extern or Intern).
//   - ArcPath:      w(s,t) alone; the engine then runs Prim's algorithm.
//   - GeodesicPath: cost(s) plus the physical arc length.
//
// Contract:
//
//   - Propagate is pure with respect to the engine: it reads the State view
//     and returns a proposal. It never writes cost, label or predecessor.
//   - improved is true only for a strictly lower cost, which keeps seeds
//     and settled nodes stable under ties.
//   - Functions that precompute offset lengths implement Preparer and must
//     be prepared before Propagate is called; the engine does this.
//   - Functions that give roots a cost of their own implement RootCoster.
//     The engine keeps the lower of the seed cost and RootCost when a node
//     settles without a predecessor.
//
// Errors:
//
//   - ErrBadAlpha, ErrBadBeta, ErrBadStrength, ErrBadOrientation,
//     ErrNilWeight and ErrSizeMismatch wrap ift.ErrConfiguration.
package pathfunc
