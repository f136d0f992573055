package engine_test

import (
	"fmt"

	"github.com/katalvlaran/ift/adjacency"
	"github.com/katalvlaran/ift/engine"
	"github.com/katalvlaran/ift/grid"
	"github.com/katalvlaran/ift/pathfunc"
)

// ExampleTransform grows two labeled regions across a 1-D profile with a
// barrier in the middle. Each node joins the seed it can reach over the
// lowest maximum step.
func ExampleTransform() {
	img, _ := grid.From1D([]int{1, 1, 2, 9, 3, 3})
	rel, _ := adjacency.HyperSpheric(1, 1)
	fn, _ := pathfunc.NewMinPath(pathfunc.AbsDiff(img))

	f, err := engine.Transform(img.Domain(), rel, fn, []engine.Seed{
		{Node: 0, Label: 1},
		{Node: 5, Label: 2},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost: ", f.Cost)
	fmt.Println("label:", f.Label)
	path, _ := f.ReconstructPath(2)
	fmt.Println("path to 2:", path)
	// Output:
	// cost:  [0 0 1 6 0 0]
	// label: [1 1 1 2 2 2]
	// path to 2: [0 1 2]
}
