package pathfunc

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ift/adjacency"
	"github.com/katalvlaran/ift/grid"
)

// SumPath is the geodesic star connectivity. Arcs are weighed by the
// handicap h of both ends, biased by the intensity transition and raised
// to beta; the physical arc length is added on top.
//
//	w    = round((h(s) + h(t))·(1 + f)) + 1
//	cand = cost(s) + w^β − 1 + ‖offset k‖
//
// f is +|α| when (I(s) − I(t))·α > 0, −|α| when it is < 0 and 0 otherwise.
// β = 0 gives the pure geodesic distance.
type SumPath struct {
	handicap  []float64
	intensity []float64
	alpha     float64
	beta      float64
	dist      []float64
}

// NewSumPath returns a SumPath over the given per-node handicap and
// intensity maps. Returns ErrBadAlpha, ErrBadBeta or ErrSizeMismatch.
func NewSumPath(handicap, intensity []float64, alpha, beta float64) (*SumPath, error) {
	if !(alpha >= -1 && alpha <= 1) {
		return nil, fmt.Errorf("%w: %g", ErrBadAlpha, alpha)
	}
	if !(beta >= 0 && beta <= 4) {
		return nil, fmt.Errorf("%w: %g", ErrBadBeta, beta)
	}
	if len(handicap) != len(intensity) {
		return nil, fmt.Errorf("%w: handicap %d, intensity %d", ErrSizeMismatch, len(handicap), len(intensity))
	}

	return &SumPath{handicap: handicap, intensity: intensity, alpha: alpha, beta: beta}, nil
}

// Alpha returns the orientation bias.
func (p *SumPath) Alpha() float64 { return p.alpha }

// Beta returns the sum exponent.
func (p *SumPath) Beta() float64 { return p.beta }

// Prepare implements Preparer.
func (p *SumPath) Prepare(dom grid.Domain, rel *adjacency.Relation) error {
	if len(p.handicap) != dom.Len() {
		return fmt.Errorf("%w: %d values for %d nodes", ErrSizeMismatch, len(p.handicap), dom.Len())
	}
	p.dist = rel.Distances(dom.PixelSizes())

	return nil
}

// Propagate implements Function.
func (p *SumPath) Propagate(s, t grid.Node, k int, st State) (float64, bool) {
	var f float64
	switch d := (p.intensity[s] - p.intensity[t]) * p.alpha; {
	case d > 0:
		f = math.Abs(p.alpha)
	case d < 0:
		f = -math.Abs(p.alpha)
	}
	w := math.Round((p.handicap[s]+p.handicap[t])*(1+f)) + 1
	cand := st.Cost(s) + math.Pow(w, p.beta) - 1 + p.dist[k]

	return cand, cand < st.Cost(t)
}
