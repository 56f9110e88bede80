// Package breakout implements the Breakout mini-game played with the
// click-wheel: a pyramid of bricks, one ball and a paddle steered by wheel
// rotation or the keyboard.
package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/clickwheel/internal/config"
	"github.com/vovakirdan/clickwheel/internal/core"
)

// Brick is a single brick of the grid, in world pixels.
type Brick struct {
	Rect  core.RectF
	Row   int
	Col   int
	HP    int  // Hit points remaining
	Alive bool // Whether the brick is still present
}

// Level is the brick grid of one session.
type Level struct {
	Rows   int
	Bricks []Brick
}

// Clone creates a deep copy of the level.
func (l *Level) Clone() *Level {
	clone := &Level{Rows: l.Rows, Bricks: make([]Brick, len(l.Bricks))}
	copy(clone.Bricks, l.Bricks)
	return clone
}

// CountAlive returns the number of bricks still standing.
func (l *Level) CountAlive() int {
	count := 0
	for _, b := range l.Bricks {
		if b.Alive {
			count++
		}
	}
	return count
}

// Total returns the number of bricks the level was built with.
func (l *Level) Total() int {
	return len(l.Bricks)
}

// BuildPyramid lays out the brick pyramid for a w x h canvas.
//
// Row r holds BrickMaxColumns-r bricks, centred, and starts with
// BrickRows-r hit points, so the top row is the widest and hardest. Brick
// width is derived from the widest row. Rows are spaced brick height plus
// padding apart, or one character cell when that is taller. A layout whose brick width is not
// positive returns an empty level and an error; the caller keeps playing
// without bricks.
func BuildPyramid(w, h float64, l config.BreakoutLayout) (*Level, error) {
	level := &Level{Rows: l.BrickRows}
	if l.BrickRows <= 0 || l.BrickMaxColumns <= 0 {
		return level, nil
	}

	margin := l.SideMarginRatio * w
	pad := l.BrickPaddingRatio * w
	cols := float64(l.BrickMaxColumns)
	brickW := (w - 2*margin - (cols-1)*pad) / cols
	if brickW <= 0 {
		return level, fmt.Errorf("breakout: degenerate brick layout: width %.2f on a %.0fx%.0f canvas", brickW, w, h)
	}
	brickH := l.BrickHeightRatio * h
	top := l.TopOffsetRatio * h
	// Rows sit at least one character cell apart so each stays visible on
	// short canvases.
	pitch := math.Max(brickH+pad, core.CellPxH)

	for row := range l.BrickRows {
		n := l.BrickMaxColumns - row
		if n <= 0 {
			break
		}
		rowW := float64(n)*brickW + float64(n-1)*pad
		x0 := (w - rowW) / 2
		y := top + float64(row)*pitch
		for col := range n {
			level.Bricks = append(level.Bricks, Brick{
				Rect:  core.NewRectF(x0+float64(col)*(brickW+pad), y, brickW, brickH),
				Row:   row,
				Col:   col,
				HP:    l.BrickRows - row,
				Alive: true,
			})
		}
	}
	return level, nil
}
