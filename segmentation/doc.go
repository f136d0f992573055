// Package segmentation builds seeded image segmentations on top of the IFT
// engine.
//
// What:
//
//   - GeodesicStar: two runs. A SumPath run from the object seeds grows the
//     geodesic star forest; an oriented run from object and background
//     seeds then competes for every node, with the arcs of the star forest
//     free of charge for the side that follows them.
//   - OrientedWatershed: a single oriented run over the gradient, object
//     label 1 against background label 0.
//   - MinimumSpanningForest: Prim's tree over feature distances, cut at its
//     heaviest arcs into the requested number of regions.
//
// Every run settles nodes in exact cost order: bucket widths follow the
// smallest cost step of the path function, and wide cost ranges fall back
// to ordered buckets. The spanning tree is grown over weight ranks.
//
// The handicap map of the seeded methods is the neighborhood gradient
// computed by stats.Gradient. The default adjacency is HyperSpheric(1.5)
// in the image's dimensionality.
//
// Errors:
//
//   - ErrNoObjectSeeds, ErrNoBackgroundSeeds, ErrBadRegions, ErrDisconnected.
//   - engine and pathfunc errors for bad seeds or parameters, unwrapped.
package segmentation
