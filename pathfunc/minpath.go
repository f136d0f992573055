package pathfunc

import (
	"math"

	"github.com/katalvlaran/ift/adjacency"
	"github.com/katalvlaran/ift/grid"
)

// MinPath is the classic max-arc connectivity: a path costs its heaviest
// arc, and the forest minimizes that cost.
//
//	cand(t) = max(cost(s), w(s, t))
type MinPath struct {
	w Weight
}

// NewMinPath returns a MinPath over w. Returns ErrNilWeight if w is nil.
func NewMinPath(w Weight) (*MinPath, error) {
	if w == nil {
		return nil, ErrNilWeight
	}

	return &MinPath{w: w}, nil
}

// Propagate implements Function.
func (p *MinPath) Propagate(s, t grid.Node, _ int, st State) (float64, bool) {
	cand := math.Max(st.Cost(s), p.w(s, t))

	return cand, cand < st.Cost(t)
}

// ArcPath prices a path by its last arc alone, which turns the engine into
// Prim's algorithm: the forest is a minimum spanning forest of the arc
// weights.
//
//	cand(t) = w(s, t)
type ArcPath struct {
	w Weight
}

// NewArcPath returns an ArcPath over w. Returns ErrNilWeight if w is nil.
func NewArcPath(w Weight) (*ArcPath, error) {
	if w == nil {
		return nil, ErrNilWeight
	}

	return &ArcPath{w: w}, nil
}

// Propagate implements Function.
func (p *ArcPath) Propagate(s, t grid.Node, _ int, st State) (float64, bool) {
	cand := p.w(s, t)

	return cand, cand < st.Cost(t)
}

// GeodesicPath accumulates the physical length of the arcs, producing
// the geodesic distance from the seeds inside the domain.
//
//	cand(t) = cost(s) + ‖offset k‖
type GeodesicPath struct {
	dist []float64
}

// NewGeodesicPath returns a GeodesicPath. Offset lengths are taken from
// the domain's pixel sizes when the engine prepares it.
func NewGeodesicPath() *GeodesicPath { return &GeodesicPath{} }

// Prepare implements Preparer.
func (p *GeodesicPath) Prepare(dom grid.Domain, rel *adjacency.Relation) error {
	p.dist = rel.Distances(dom.PixelSizes())

	return nil
}

// Propagate implements Function.
func (p *GeodesicPath) Propagate(s, t grid.Node, k int, st State) (float64, bool) {
	cand := st.Cost(s) + p.dist[k]

	return cand, cand < st.Cost(t)
}
