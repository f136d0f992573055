package main

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ift/engine"
	"github.com/katalvlaran/ift/grid"
	"github.com/katalvlaran/ift/pathfunc"
	"github.com/katalvlaran/ift/segmentation"
)

// writeStep writes a w×h PNG, dark left of edge and bright from edge on.
func writeStep(t *testing.T, w, h, edge int) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h {
		for x := edge; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: 200})
		}
	}
	path := filepath.Join(t.TempDir(), "step.png")
	require.NoError(t, imaging.Save(img, path))
	return path
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCommand()
	root.SetArgs(args)
	return root.Execute()
}

// readGray returns the gray level of every pixel, row-major.
func readGray(t *testing.T, path string) []uint8 {
	t.Helper()
	img, err := loadGray(path, 0)
	require.NoError(t, err)
	return img.Values()
}

// ------------------------------------------------------------------------
// 1. Helpers
// ------------------------------------------------------------------------

func TestParseSeeds(t *testing.T) {
	dom := grid.MustDomain(8, 4)

	nodes, err := parseSeeds(dom, []string{"1", "2", "7,3"})
	require.NoError(t, err)
	assert.Equal(t, []grid.Node{17, 31}, nodes)

	nodes, err = parseSeeds(dom, []string{"0,0 7,3"})
	require.NoError(t, err)
	assert.Equal(t, []grid.Node{0, 31}, nodes)

	nodes, err = parseSeeds(dom, nil)
	require.NoError(t, err)
	assert.Empty(t, nodes)

	_, err = parseSeeds(dom, []string{"1"})
	assert.ErrorIs(t, err, errOddSeeds)
	_, err = parseSeeds(dom, []string{"a,1"})
	assert.Error(t, err)
	_, err = parseSeeds(dom, []string{"8,0"})
	assert.ErrorIs(t, err, grid.ErrCoordinate)
}

func TestParseOrientation(t *testing.T) {
	o, err := parseOrientation("extern")
	require.NoError(t, err)
	assert.Equal(t, pathfunc.Extern, o)
	o, err = parseOrientation("intern")
	require.NoError(t, err)
	assert.Equal(t, pathfunc.Intern, o)
	_, err = parseOrientation("sideways")
	assert.ErrorIs(t, err, pathfunc.ErrBadOrientation)
}

func TestSaveLabels_SpreadsGrayLevels(t *testing.T) {
	dom := grid.MustDomain(4, 1)
	path := filepath.Join(t.TempDir(), "labels.png")
	require.NoError(t, saveLabels(path, dom, []int32{0, 1, 2, engine.NoLabel}, 3))
	assert.Equal(t, []uint8{0, 128, 255, 0}, readGray(t, path))

	assert.ErrorIs(t, saveLabels("", dom, nil, 1), errNoOutput)
	_, err := loadGray("", 0)
	assert.ErrorIs(t, err, errNoInput)
}

func TestLoadGray_Fits(t *testing.T) {
	path := writeStep(t, 40, 20, 20)
	img, err := loadGray(path, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 5}, img.Domain().Shape())
}

// ------------------------------------------------------------------------
// 2. Commands
// ------------------------------------------------------------------------

func TestCommands_Step(t *testing.T) {
	in := writeStep(t, 12, 8, 6)
	dir := t.TempDir()

	cases := []struct {
		name string
		args []string
	}{
		{"segment", []string{"segment", "--obj", "9,4", "--bkg", "2,4", "--alpha", "0.5", "--beta", "2"}},
		{"watershed", []string{"watershed", "--obj", "9,4", "--bkg", "2,4", "--strength", "0.5", "--orientation", "intern"}},
		{"msf", []string{"msf", "--regions", "2"}},
		{"cluster", []string{"cluster", "--fraction", "1", "--workers", "2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := filepath.Join(dir, tc.name+".png")
			require.NoError(t, run(t, append(tc.args, "--in", in, "--out", out)...))
			got := readGray(t, out)
			require.Len(t, got, 12*8)
			for n, v := range got {
				want := uint8(0)
				if n%12 >= 6 {
					want = 255
				}
				require.Equalf(t, want, v, "pixel %d,%d", n%12, n/12)
			}
		})
	}
}

func TestCommands_EnvFillsFlags(t *testing.T) {
	in := writeStep(t, 12, 8, 6)
	out := filepath.Join(t.TempDir(), "env.png")
	t.Setenv("IFTSEG_OBJ", "10,1")
	t.Setenv("IFTSEG_BKG", "1,1")
	t.Setenv("IFTSEG_STRENGTH", "0.25")

	require.NoError(t, run(t, "watershed", "--in", in, "--out", out))
	got := readGray(t, out)
	assert.Equal(t, uint8(255), got[11])
	assert.Equal(t, uint8(0), got[0])
}

func TestCommands_Errors(t *testing.T) {
	in := writeStep(t, 6, 4, 3)
	out := filepath.Join(t.TempDir(), "x.png")

	assert.ErrorIs(t, run(t, "msf", "--out", out), errNoInput)
	assert.ErrorIs(t, run(t, "msf", "--in", in), errNoOutput)
	assert.ErrorIs(t, run(t, "msf", "--in", in, "--out", out, "--regions", "0"), segmentation.ErrBadRegions)
	assert.Error(t, run(t, "segment", "--in", in, "--out", out, "--obj", "1,1"))
	assert.Error(t, run(t, "watershed", "--in", in, "--out", out, "--obj", "5,1", "--bkg", "0,0", "--orientation", "up"))
	assert.Error(t, run(t, "msf", "--in", filepath.Join(t.TempDir(), "missing.png"), "--out", out))
}
