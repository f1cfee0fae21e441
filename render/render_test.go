package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/render"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/search"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/terrain"
)

func TestCellColor(t *testing.T) {
	cases := []struct {
		name    string
		cell    search.CellView
		onTrail bool
		want    color.RGBA
	}{
		{"black lowland", cell(0, false), false, color.RGBA{0, 0, 0, 255}},
		{"white peak", cell(1, false), false, color.RGBA{255, 255, 255, 255}},
		{"mid gray", cell(0.5, false), false, color.RGBA{127, 127, 127, 255}},
		{"visited tint", cell(1, true), false, color.RGBA{204, 255, 229, 255}},
		{"trail beats visited", cell(1, true), true, render.TrailColor},
		{"start beats trail", withFlags(cell(0.3, true), true, false), true, render.StartColor},
		{"goal beats trail", withFlags(cell(0.3, true), false, true), true, render.GoalColor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render.CellColor(tc.cell, tc.onTrail))
		})
	}
}

func cell(elevation float64, visited bool) search.CellView {
	return search.CellView{
		Node:      terrain.Node{Elevation: elevation},
		NodeState: search.NodeState{Visited: visited},
	}
}

func withFlags(c search.CellView, start, goal bool) search.CellView {
	c.IsStart, c.IsGoal = start, goal
	return c
}

// solved returns a controller that has finished the 3×3 diagonal search.
func solved(t *testing.T) *search.Controller {
	t.Helper()
	g, err := terrain.NewGridFromElevations([][]float64{
		{0, 0.5, 1},
		{0, 0, 0.5},
		{0, 0, 0},
	})
	require.NoError(t, err)
	c, err := search.New(g)
	require.NoError(t, err)
	start, _ := g.NodeAt(0, 0)
	goal, _ := g.NodeAt(2, 2)
	require.NoError(t, c.Setup(start, goal))
	out, err := c.RunToCompletion()
	require.NoError(t, err)
	require.Equal(t, search.ReachedGoal, out)
	return c
}

// centerOf returns the color at the middle pixel of cell (x,y).
func centerOf(img image.Image, x, y, scale int) color.RGBA {
	r, g, b, a := img.At(x*scale+scale/2, y*scale+scale/2).RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestImage(t *testing.T) {
	c := solved(t)
	img, err := render.Image(c, 4)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 12, 12), img.Bounds())

	assert.Equal(t, render.StartColor, centerOf(img, 0, 0, 4))
	assert.Equal(t, render.GoalColor, centerOf(img, 2, 2, 4))
	assert.Equal(t, render.TrailColor, centerOf(img, 1, 1, 4))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, centerOf(img, 2, 0, 4))
}

func TestPNG(t *testing.T) {
	c := solved(t)
	var buf bytes.Buffer
	require.NoError(t, render.PNG(&buf, c, 2))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 6, 6), img.Bounds())
	assert.Equal(t, render.StartColor, centerOf(img, 0, 0, 2))
}

func TestSavePNG(t *testing.T) {
	c := solved(t)
	path := filepath.Join(t.TempDir(), "terrain.png")
	require.NoError(t, render.SavePNG(path, c, 3))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, render.GoalColor, centerOf(img, 2, 2, 3))
}

func TestErrors(t *testing.T) {
	c := solved(t)
	_, err := render.Image(c, 0)
	require.ErrorIs(t, err, render.ErrInvalidScale)
	require.ErrorIs(t, render.PNG(&bytes.Buffer{}, nil, 1), render.ErrNilView)
}

func TestTrailSet(t *testing.T) {
	set := render.TrailSet(solved(t))
	assert.Equal(t, 3, set.Size())
	for _, xy := range [][2]int{{0, 0}, {1, 1}, {2, 2}} {
		assert.True(t, set.Has(xy), "missing %v", xy)
	}
}
