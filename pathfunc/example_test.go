package pathfunc_test

import (
	"fmt"

	"github.com/katalvlaran/ift/grid"
	"github.com/katalvlaran/ift/pathfunc"
)

// ExampleOriented_Direction shows how Extern and Intern read the same arc.
func ExampleOriented_Direction() {
	handicap := []float64{0, 0}
	intensity := []float64{200, 40} // node 0 is brighter than node 1
	ext, _ := pathfunc.NewOrientedExtern(handicap, intensity, 0.5)
	in, _ := pathfunc.NewOrientedIntern(handicap, intensity, 0.5)

	describe := func(d int) string {
		switch d {
		case 1:
			return "against"
		case -1:
			return "along"
		}
		return "flat"
	}
	var s, t grid.Node = 0, 1
	fmt.Println("extern object:", describe(ext.Direction(s, t, true)))
	fmt.Println("extern background:", describe(ext.Direction(s, t, false)))
	fmt.Println("intern object:", describe(in.Direction(s, t, true)))
	// Output:
	// extern object: against
	// extern background: along
	// intern object: along
}
