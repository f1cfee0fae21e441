package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/zyedidia/generic/mapset"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/search"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/terrain"
)

var (
	// ErrNilView indicates a nil View was passed.
	ErrNilView = errors.New("render: view is nil")

	// ErrInvalidScale indicates a pixel scale below 1.
	ErrInvalidScale = errors.New("render: scale must be at least 1")
)

// Fixed marker colors.
var (
	StartColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	GoalColor  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	TrailColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

// View is the state a renderer reads. *search.Controller implements it.
type View interface {
	Dimensions() (width, height int)
	Cell(x, y int) (search.CellView, error)
	Trail() []terrain.Node
}

// CellColor returns the color of one cell. onTrail reports whether the cell
// lies on the current trail.
func CellColor(c search.CellView, onTrail bool) color.RGBA {
	switch {
	case c.IsStart:
		return StartColor
	case c.IsGoal:
		return GoalColor
	case onTrail:
		return TrailColor
	}

	gray := uint8(clamp01(c.Elevation) * 255)
	col := color.RGBA{R: gray, G: gray, B: gray, A: 255}
	if c.Visited {
		col.R = uint8(float64(col.R) * 0.8)
		col.B = uint8(float64(col.B) * 0.9)
	}
	return col
}

// TrailSet collects the coordinates of v.Trail() for O(1) membership tests.
func TrailSet(v View) mapset.Set[[2]int] {
	set := mapset.New[[2]int]()
	for _, n := range v.Trail() {
		set.Put([2]int{n.X, n.Y})
	}
	return set
}

// Image rasterizes v with scale×scale pixels per cell.
func Image(v View, scale int) (image.Image, error) {
	dc, err := draw(v, scale)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// PNG writes v as a PNG image to w.
func PNG(w io.Writer, v View, scale int) error {
	dc, err := draw(v, scale)
	if err != nil {
		return err
	}
	if err = dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes v as a PNG file at path.
func SavePNG(path string, v View, scale int) error {
	dc, err := draw(v, scale)
	if err != nil {
		return err
	}
	if err = dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

func draw(v View, scale int) (*gg.Context, error) {
	if v == nil {
		return nil, ErrNilView
	}
	if scale < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}

	w, h := v.Dimensions()
	dc := gg.NewContext(w*scale, h*scale)
	trail := TrailSet(v)
	s := float64(scale)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell, err := v.Cell(x, y)
			if err != nil {
				return nil, fmt.Errorf("render: cell (%d,%d): %w", x, y, err)
			}
			dc.SetColor(CellColor(cell, trail.Has([2]int{x, y})))
			dc.DrawRectangle(float64(x)*s, float64(y)*s, s, s)
			dc.Fill()
		}
	}
	return dc, nil
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
