// Package ift is an in-memory toolkit for the Image Foresting Transform: a
// Dijkstra-family relaxation that grows an optimum-path forest over the
// implicit pixel-adjacency graph of an N-dimensional image.
//
// What is in the box?
//
//	• grid/          node domain (dims, strides, pixel sizes) and generic Image[T]
//	• adjacency/     neighbor shapes (hyper-spheres, boxes, directional stencils) and bounded iteration
//	• bucketqueue/   growing ring bucket queue with FIFO/LIFO tie-break
//	• pathfunc/      connectivity functions: MinPath, SumPath, OrientedExtern, OrientedIntern, ArcPath
//	• engine/        the IFT orchestrator and the resulting Forest
//	• stats/         sharded parallel pre-processing (max arc weight, gradient, density)
//	• segmentation/  geodesic star, oriented watershed, minimum spanning forest
//	• opf/           optimum-path forest spatial clustering
//
// Every application is a thin layer: build an adjacency relation, pick a
// connectivity function, seed the engine, read labels and costs back.
//
// Quick ASCII example (1-D, MinPath, seed at 0):
//
//	image: 0 0 0 5 5 5 0 0 0
//	cost:  0 0 0 5 5 5 5 5 5
//
// The package itself only declares the error kinds shared by the subpackages.
//
//	go get github.com/katalvlaran/ift
package ift
