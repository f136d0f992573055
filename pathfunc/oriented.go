package pathfunc

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ift/adjacency"
	"github.com/katalvlaran/ift/grid"
)

// Oriented is the additive oriented connectivity used by OrientedExtern and
// OrientedIntern. Labels other than 0 are object labels; 0 is background.
//
//	w    = h(s) + h(t)
//	cand = cost(s) + round(w·(1 + f)) + 1
//
// f is +strength on arcs against the orientation and −strength on arcs
// along it. At strength 1 arcs against the orientation are rejected.
// Arcs of the restriction forest, if any, cost nothing.
type Oriented struct {
	orient      Orientation
	handicap    []float64
	intensity   []float64
	strength    float64
	restriction []grid.Node
}

// NewOriented returns an Oriented function of the given orientation.
// Returns ErrBadOrientation, ErrBadStrength or ErrSizeMismatch.
func NewOriented(orient Orientation, handicap, intensity []float64, strength float64, opts ...OrientedOption) (*Oriented, error) {
	var cfg OrientedOptions
	for _, opt := range opts {
		opt(&cfg)
	}
	if orient != Extern && orient != Intern {
		return nil, fmt.Errorf("%w: %d", ErrBadOrientation, int(orient))
	}
	if !(strength >= 0 && strength <= 1) {
		return nil, fmt.Errorf("%w: %g", ErrBadStrength, strength)
	}
	if len(handicap) != len(intensity) {
		return nil, fmt.Errorf("%w: handicap %d, intensity %d", ErrSizeMismatch, len(handicap), len(intensity))
	}
	if cfg.Restriction != nil && len(cfg.Restriction) != len(handicap) {
		return nil, fmt.Errorf("%w: restriction %d, handicap %d", ErrSizeMismatch, len(cfg.Restriction), len(handicap))
	}

	return &Oriented{
		orient:      orient,
		handicap:    handicap,
		intensity:   intensity,
		strength:    strength,
		restriction: cfg.Restriction,
	}, nil
}

// NewOrientedExtern returns an Extern oriented function.
func NewOrientedExtern(handicap, intensity []float64, strength float64, opts ...OrientedOption) (*Oriented, error) {
	return NewOriented(Extern, handicap, intensity, strength, opts...)
}

// NewOrientedIntern returns an Intern oriented function.
func NewOrientedIntern(handicap, intensity []float64, strength float64, opts ...OrientedOption) (*Oriented, error) {
	return NewOriented(Intern, handicap, intensity, strength, opts...)
}

// Orientation returns Extern or Intern.
func (p *Oriented) Orientation() Orientation { return p.orient }

// Strength returns the orientation strength.
func (p *Oriented) Strength() float64 { return p.strength }

// Prepare implements Preparer.
func (p *Oriented) Prepare(dom grid.Domain, _ *adjacency.Relation) error {
	if len(p.handicap) != dom.Len() {
		return fmt.Errorf("%w: %d values for %d nodes", ErrSizeMismatch, len(p.handicap), dom.Len())
	}

	return nil
}

// Propagate implements Function.
func (p *Oriented) Propagate(s, t grid.Node, _ int, st State) (float64, bool) {
	object := st.Label(s) != 0
	if p.restricted(s, t, object) {
		cand := st.Cost(s)
		return cand, cand < st.Cost(t)
	}
	var f float64
	switch p.Direction(s, t, object) {
	case 1:
		if p.strength >= 1 {
			return math.Inf(1), false
		}
		f = p.strength
	case -1:
		f = -p.strength
	}
	cand := st.Cost(s) + math.Round((p.handicap[s]+p.handicap[t])*(1+f)) + 1

	return cand, cand < st.Cost(t)
}

// Direction classifies the arc (s, t) for a path of the given kind:
// 1 against the orientation, -1 along it, 0 for flat arcs.
func (p *Oriented) Direction(s, t grid.Node, object bool) int {
	dir := 0
	switch d := p.intensity[s] - p.intensity[t]; {
	case d > 0:
		dir = 1
	case d < 0:
		dir = -1
	}
	if !object {
		dir = -dir
	}
	if p.orient == Intern {
		dir = -dir
	}

	return dir
}

func (p *Oriented) restricted(s, t grid.Node, object bool) bool {
	if p.restriction == nil {
		return false
	}
	if object {
		return p.restriction[s] == t
	}

	return p.restriction[t] == s
}
