package core

import "math"

// Canvas is the render sink games draw into, in world pixels.
// Only shapes that signal game state are part of the contract; styling is
// left to the implementation.
type Canvas interface {
	// Bounds returns the drawable area in world pixels.
	Bounds() RectF
	// FillRect fills a rectangle with a glyph.
	FillRect(r RectF, glyph rune, c Color)
	// FillCircle fills a disc centred at (cx, cy).
	FillCircle(cx, cy, radius float64, glyph rune, c Color)
	// Text draws a string whose first character sits at (x, y).
	Text(x, y float64, text string, c Color)
	// TextCentered draws a string centred horizontally at height y.
	TextCentered(y float64, text string, c Color)
}

// Raster implements Canvas on top of a Screen by scaling world pixels to
// character cells.
type Raster struct {
	dst    *Screen
	world  RectF
	scaleX float64 // cells per world pixel
	scaleY float64
}

// NewRaster maps a world of worldW x worldH pixels onto the whole screen.
func NewRaster(dst *Screen, worldW, worldH float64) *Raster {
	r := &Raster{dst: dst, world: NewRectF(0, 0, worldW, worldH)}
	if worldW > 0 {
		r.scaleX = float64(dst.Width()) / worldW
	}
	if worldH > 0 {
		r.scaleY = float64(dst.Height()) / worldH
	}
	return r
}

// Bounds returns the world rectangle.
func (r *Raster) Bounds() RectF {
	return r.world
}

func (r *Raster) cellX(x float64) int {
	return int(math.Floor(x * r.scaleX))
}

func (r *Raster) cellY(y float64) int {
	return int(math.Floor(y * r.scaleY))
}

// FillRect fills every cell whose centre lies inside rect. Rectangles thinner
// than a cell still cover at least one cell so small objects stay visible.
func (r *Raster) FillRect(rect RectF, glyph rune, c Color) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	x0, x1 := r.span(rect.X, rect.Right(), r.scaleX)
	y0, y1 := r.span(rect.Y, rect.Bottom(), r.scaleY)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.dst.SetCell(x, y, glyph, c)
		}
	}
}

// span returns the inclusive cell range covered by [a, b] at the given scale.
func (r *Raster) span(a, b, scale float64) (int, int) {
	lo := int(math.Round(a * scale))
	hi := int(math.Round(b*scale)) - 1
	if hi < lo {
		mid := int(math.Floor((a + b) / 2 * scale))
		return mid, mid
	}
	return lo, hi
}

// FillCircle fills the cells whose centre lies within the disc, falling back
// to the single cell containing the centre for discs smaller than a cell.
func (r *Raster) FillCircle(cx, cy, radius float64, glyph rune, c Color) {
	if r.scaleX == 0 || r.scaleY == 0 {
		return
	}
	x0, x1 := r.cellX(cx-radius), r.cellX(cx+radius)
	y0, y1 := r.cellY(cy-radius), r.cellY(cy+radius)
	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px := (float64(x) + 0.5) / r.scaleX
			py := (float64(y) + 0.5) / r.scaleY
			if math.Hypot(px-cx, py-cy) <= radius {
				r.dst.SetCell(x, y, glyph, c)
				drawn = true
			}
		}
	}
	if !drawn {
		r.dst.SetCell(r.cellX(cx), r.cellY(cy), glyph, c)
	}
}

// Text draws text starting at the cell containing (x, y).
func (r *Raster) Text(x, y float64, text string, c Color) {
	r.dst.DrawText(r.cellX(x), r.cellY(y), text, c)
}

// TextCentered draws text centred on the row containing y.
func (r *Raster) TextCentered(y float64, text string, c Color) {
	r.dst.DrawTextCentered(r.cellY(y), text, c)
}
