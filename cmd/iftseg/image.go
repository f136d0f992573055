package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/katalvlaran/ift/engine"
	"github.com/katalvlaran/ift/grid"
)

var (
	errNoInput  = errors.New("iftseg: --in is required")
	errNoOutput = errors.New("iftseg: --out is required")
	errOddSeeds = errors.New("iftseg: seeds must come as x,y pairs")
)

// loadGray decodes path, shrinks it to fit maxSide when maxSide > 0 and
// converts it to an 8-bit grayscale image over a 2-D domain.
func loadGray(path string, maxSide int) (*grid.Image[uint8], error) {
	if path == "" {
		return nil, errNoInput
	}
	src, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("iftseg: open %s: %w", path, err)
	}
	if maxSide > 0 {
		src = imaging.Fit(src, maxSide, maxSide, imaging.Lanczos)
	}
	gray := imaging.Grayscale(src)
	b := gray.Bounds()
	dom, err := grid.NewDomain([]int{b.Dx(), b.Dy()})
	if err != nil {
		return nil, err
	}
	values := make([]uint8, dom.Len())
	for y := range b.Dy() {
		for x := range b.Dx() {
			values[y*b.Dx()+x] = gray.Pix[y*gray.Stride+x*4]
		}
	}

	return grid.FromValues(dom, 1, values)
}

// saveLabels writes one gray level per label, spread over [0, 255].
// Unlabeled nodes are black.
func saveLabels(path string, dom grid.Domain, label []int32, count int) error {
	if path == "" {
		return errNoOutput
	}
	w, h := dom.Size(0), dom.Size(1)
	out := image.NewGray(image.Rect(0, 0, w, h))
	step := 255.0
	if count > 1 {
		step = 255.0 / float64(count-1)
	}
	for n, l := range label {
		if l == engine.NoLabel {
			continue
		}
		out.SetGray(n%w, n/w, color.Gray{Y: uint8(float64(l)*step + 0.5)})
	}
	if err := imaging.Save(out, path); err != nil {
		return fmt.Errorf("iftseg: save %s: %w", path, err)
	}

	return nil
}

// parseSeeds turns "x,y" values into nodes of dom. Values may hold several
// pairs; viper hands environment lists over as single strings.
func parseSeeds(dom grid.Domain, values []string) ([]grid.Node, error) {
	var coords []int
	for _, v := range values {
		for _, field := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' }) {
			c, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("iftseg: seed coordinate %q: %w", field, err)
			}
			coords = append(coords, c)
		}
	}
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("%w: %d coordinates", errOddSeeds, len(coords))
	}
	nodes := make([]grid.Node, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		n, err := dom.Index(coords[i], coords[i+1])
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}

	return nodes, nil
}
