// Package render turns the state of a search into pixels.
//
// What:
//
//   - View is the read-only surface a renderer needs: grid size, one
//     CellView per coordinate and the current trail.
//     *search.Controller satisfies it.
//   - CellColor is the palette shared by every driver (PNG export here, the
//     terminal viewer in package viewer).
//   - PNG and SavePNG rasterize a View with fogleman/gg, one scale×scale
//     square per cell.
//
// Palette (first match wins):
//
//	start            green
//	goal             red
//	on the trail     blue
//	visited          elevation gray with red×0.8 and blue×0.9
//	otherwise        elevation gray, 0 = black, 1 = white
//
// Errors:
//
//   - ErrNilView if v is nil.
//   - ErrInvalidScale if scale < 1.
package render
