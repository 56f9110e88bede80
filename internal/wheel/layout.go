package wheel

import (
	"math"

	"github.com/vovakirdan/clickwheel/internal/core"
)

// Layout is the geometry of the wheel: a ring of four buttons around a
// centre select button.
type Layout struct {
	Center core.Vec
	Outer  float64 // Ring outer radius
	Inner  float64 // Centre button radius
}

// Contains reports whether p is on the wheel at all.
func (l Layout) Contains(p core.Vec) bool {
	return math.Hypot(p.X-l.Center.X, p.Y-l.Center.Y) <= l.Outer
}

// OnRing reports whether p is on the ring, outside the centre button.
func (l Layout) OnRing(p core.Vec) bool {
	d := math.Hypot(p.X-l.Center.X, p.Y-l.Center.Y)
	return d > l.Inner && d <= l.Outer
}

// HitTest returns the button under p. The ring is split into quarters
// centred on the four compass points.
func (l Layout) HitTest(p core.Vec) core.Button {
	d := math.Hypot(p.X-l.Center.X, p.Y-l.Center.Y)
	switch {
	case d > l.Outer:
		return core.ButtonNone
	case d <= l.Inner:
		return core.ButtonSelect
	}

	a := AngleOf(l.Center.X, l.Center.Y, p.X, p.Y)
	switch {
	case a >= 315 || a < 45:
		return core.ButtonMenu
	case a < 135:
		return core.ButtonForward
	case a < 225:
		return core.ButtonPlayPause
	default:
		return core.ButtonBack
	}
}
