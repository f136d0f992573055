package segmentation_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ift/grid"
	"github.com/katalvlaran/ift/segmentation"
)

// ExampleGeodesicStar separates a bright object from a dark background on
// a 1-D profile.
func ExampleGeodesicStar() {
	img, _ := grid.From1D([]int{0, 0, 0, 9, 9, 9})

	res, err := segmentation.GeodesicStar(context.Background(), img, []grid.Node{5}, []grid.Node{0}, 0, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("label: ", res.Label)
	fmt.Println("object:", res.Object.ToArray())
	// Output:
	// label:  [0 0 0 1 1 1]
	// object: [3 4 5]
}

// ExampleMinimumSpanningForest cuts a profile at its two largest steps.
func ExampleMinimumSpanningForest() {
	img, _ := grid.From1D([]int{0, 0, 5, 5, 20, 20})

	p, err := segmentation.MinimumSpanningForest(context.Background(), img, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Count, p.Label)
	// Output:
	// 3 [0 0 1 1 2 2]
}
