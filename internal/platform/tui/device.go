package tui

import (
	"math"

	"github.com/vovakirdan/clickwheel/internal/core"
	"github.com/vovakirdan/clickwheel/internal/wheel"
)

const (
	footerRows     = 2  // Status line and help
	maxDeviceWidth = 44 // Columns
	maxWheelRows   = 13
	minWheelRows   = 5
	minBoxRows     = 12
)

// Device is the placement of the player on the terminal. Cell fields are in
// terminal cells; Wheel is in terminal pixels (see CellCenter).
type Device struct {
	Left, Width  int // Columns used by the device
	BoxH         int // Screen frame height, borders included
	PaneW, PaneH int // Screen pane inside the frame
	WheelTop     int
	WheelRows    int
	Wheel        wheel.Layout
}

// NewDevice lays the screen and the wheel out in a terminal of the given size.
// The wheel shrinks before the screen does.
func NewDevice(termW, termH int, innerRatio float64) Device {
	rows := max(termH-footerRows, minBoxRows+minWheelRows+1)
	width := core.Clamp(termW, 2*minWheelRows+2, maxDeviceWidth)

	wheelRows := maxWheelRows
	for wheelRows > minWheelRows && (rows-wheelRows-1 < minBoxRows || 2*wheelRows > width) {
		wheelRows -= 2
	}

	d := Device{
		Left:      max((termW-width)/2, 0),
		Width:     width,
		BoxH:      rows - wheelRows - 1,
		WheelRows: wheelRows,
	}
	d.PaneW = d.Width - 2
	d.PaneH = d.BoxH - 2
	d.WheelTop = d.BoxH + 1

	outer := float64(wheelRows) * core.CellPxH / 2
	d.Wheel = wheel.Layout{
		Center: core.Vec{
			X: (float64(d.Left) + float64(d.Width)/2) * core.CellPxW,
			Y: float64(d.WheelTop)*core.CellPxH + outer,
		},
		Outer: outer,
		Inner: outer * innerRatio,
	}
	return d
}

// Rows returns the number of rows the device and its footer take.
func (d Device) Rows() int {
	return d.WheelTop + d.WheelRows + footerRows
}

// CellCenter returns the pixel at the centre of a terminal cell.
func CellCenter(col, row int) core.Vec {
	return core.Vec{
		X: (float64(col) + 0.5) * core.CellPxW,
		Y: (float64(row) + 0.5) * core.CellPxH,
	}
}

// PixelCell returns the terminal cell containing pixel p.
func PixelCell(p core.Vec) (col, row int) {
	return int(math.Floor(p.X / core.CellPxW)), int(math.Floor(p.Y / core.CellPxH))
}

// wheel button captions, placed at the middle of the ring.
var wheelLabels = []struct {
	text   string
	dx, dy float64 // Direction from the centre
}{
	{"MENU", 0, -1},
	{"▶▶|", 1, 0},
	{"▶❚❚", 0, 1},
	{"|◀◀", -1, 0},
}

// DrawWheel draws the ring, the centre button and the captions.
func DrawWheel(s *core.Screen, d Device) {
	l := d.Wheel
	for row := d.WheelTop; row < d.WheelTop+d.WheelRows; row++ {
		for col := d.Left; col < d.Left+d.Width; col++ {
			p := CellCenter(col, row)
			dist := math.Hypot(p.X-l.Center.X, p.Y-l.Center.Y)
			switch {
			case dist <= l.Inner:
				s.SetCell(col, row, '█', core.ColorWheelCenter)
			case dist <= l.Outer:
				s.SetCell(col, row, '▓', core.ColorWheel)
			}
		}
	}

	mid := (l.Outer + l.Inner) / 2
	for _, lb := range wheelLabels {
		col, row := PixelCell(core.Vec{X: l.Center.X + lb.dx*mid, Y: l.Center.Y + lb.dy*mid})
		n := len([]rune(lb.text))
		s.DrawText(col-n/2, row, lb.text, core.ColorWheelLabel)
	}
}
