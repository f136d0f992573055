// Package opf clusters images with the unsupervised optimum-path forest.
//
// What:
//
//	Every node is a candidate root whose strength is its local density.
//	Dense nodes conquer their neighborhood along paths whose weakest
//	density is as high as possible; each density maximum that no denser
//	region reaches becomes a cluster.
//
// How:
//
//  1. stats.MaxArcWeight scales the density bandwidth σ = 2·(f·w_max)/9.
//  2. stats.Density estimates a Gaussian density per node.
//  3. One engine run over negated densities with competing seeds and
//     sequential labels. A root settles one plateau step δ below its seed
//     cost, which lets it absorb neighbors of equal density.
//
// δ is the density spread over 10000. The scheduler buckets are δ/2 wide.
package opf
