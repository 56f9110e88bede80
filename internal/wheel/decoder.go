package wheel

import (
	"math"

	"github.com/vovakirdan/clickwheel/internal/core"
)

// Mode selects what a drag on the wheel controls.
type Mode int

const (
	ModeMenu   Mode = iota // Rotation steps a list cursor
	ModePaddle             // Rotation slides the game paddle
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	if m == ModePaddle {
		return "paddle"
	}
	return "menu"
}

// Direction is a discrete menu step.
type Direction int

const (
	DirNone Direction = iota
	DirNext
	DirPrevious
)

// Settings tunes the decoder.
type Settings struct {
	SectorDegrees   float64 // Width of one menu step
	Sensitivity     float64 // Paddle pixels per radian of rotation
	ReanchorDegrees float64 // Paddle re-anchors once the swing exceeds this
}

// DefaultSettings returns 45° sectors and a 150 px/rad paddle.
func DefaultSettings() Settings {
	return Settings{
		SectorDegrees:   45,
		Sensitivity:     150,
		ReanchorDegrees: 45,
	}
}

// Paddle is the target of paddle-mode gestures.
type Paddle interface {
	PaddleX() float64
	PaddleRange() (min, max float64)
}

// Result is what one move sample produced.
type Result struct {
	Steps   int     // Menu mode: signed step count, positive is next
	PaddleX float64 // Paddle mode: clamped paddle position
	Paddle  bool    // Whether PaddleX is set
}

// Directions expands Steps into individual events.
func (r Result) Directions() []Direction {
	n := r.Steps
	dir := DirNext
	if n < 0 {
		n = -n
		dir = DirPrevious
	}
	out := make([]Direction, n)
	for i := range out {
		out[i] = dir
	}
	return out
}

// Decoder turns a stream of pointer positions into menu steps or paddle
// positions. It is Idle until Begin and returns to Idle on End; only one
// gesture is live at a time.
type Decoder struct {
	settings Settings
	center   core.Vec
	mode     Mode
	paddle   Paddle

	active    bool
	rotated   bool
	refAngle  float64
	refSector int
	refX      float64
	minX      float64
	maxX      float64
}

// NewDecoder creates an idle decoder in menu mode.
func NewDecoder(s Settings) *Decoder {
	if s.SectorDegrees <= 0 {
		s.SectorDegrees = DefaultSettings().SectorDegrees
	}
	return &Decoder{settings: s}
}

// Settings returns the decoder's tuning.
func (d *Decoder) Settings() Settings {
	return d.settings
}

// SetCenter sets the wheel centre in the same coordinate space as the
// positions passed to Begin and Move.
func (d *Decoder) SetCenter(c core.Vec) {
	d.center = c
}

// Mode returns the current mode.
func (d *Decoder) Mode() Mode {
	return d.mode
}

// SetMode switches between menu and paddle control. Switching is refused
// while a gesture is in progress.
func (d *Decoder) SetMode(m Mode, p Paddle) bool {
	if d.active {
		return false
	}
	d.mode = m
	d.paddle = p
	if m == ModeMenu {
		d.paddle = nil
	}
	return true
}

// Active reports whether a gesture is in progress.
func (d *Decoder) Active() bool {
	return d.active
}

// Begin starts a gesture at position p.
func (d *Decoder) Begin(p core.Vec) {
	d.active = true
	d.rotated = false
	d.refAngle = d.angle(p)
	d.refSector = SectorOf(d.refAngle, d.settings.SectorDegrees)

	if d.mode == ModePaddle && d.paddle != nil {
		d.refX = d.paddle.PaddleX()
		d.minX, d.maxX = d.paddle.PaddleRange()
	}
}

// Rebase re-reads the paddle position and range mid-gesture, keeping the
// current angle reference. It does nothing outside a paddle gesture.
func (d *Decoder) Rebase() {
	if !d.active || d.mode != ModePaddle || d.paddle == nil {
		return
	}
	d.refX = d.paddle.PaddleX()
	d.minX, d.maxX = d.paddle.PaddleRange()
}

// Move feeds the next pointer sample. Samples outside a gesture are ignored.
func (d *Decoder) Move(p core.Vec) Result {
	if !d.active {
		return Result{}
	}
	current := d.angle(p)
	if d.mode == ModePaddle {
		return d.movePaddle(current)
	}
	return d.moveMenu(current)
}

// End finishes the gesture and reports whether it produced any rotation.
func (d *Decoder) End() (rotated bool) {
	rotated = d.active && d.rotated
	d.active = false
	d.rotated = false
	return rotated
}

func (d *Decoder) angle(p core.Vec) float64 {
	return AngleOf(d.center.X, d.center.Y, p.X, p.Y)
}

// moveMenu emits one step per sector boundary crossed, following the shorter
// way round. A jump to the diametrically opposite sector has no defined
// direction and only re-anchors.
func (d *Decoder) moveMenu(current float64) Result {
	n := sectorCount(d.settings.SectorDegrees)
	sector := SectorOf(current, d.settings.SectorDegrees)
	diff := ((sector-d.refSector)%n + n) % n
	d.refSector = sector
	d.refAngle = current

	switch {
	case diff == 0:
		return Result{}
	case n%2 == 0 && diff == n/2:
		return Result{}
	case diff > n/2:
		diff -= n
	}
	d.rotated = true
	return Result{Steps: diff}
}

func (d *Decoder) movePaddle(current float64) Result {
	if d.paddle == nil {
		return Result{}
	}
	delta := ShortestDelta(d.refAngle, current)
	x := d.refX + Radians(delta)*d.settings.Sensitivity
	clamped := core.ClampF(x, d.minX, d.maxX)

	if math.Abs(delta) > d.settings.ReanchorDegrees || clamped != x {
		d.refAngle = current
		d.refX = clamped
	}
	if delta != 0 {
		d.rotated = true
	}
	return Result{PaddleX: clamped, Paddle: true}
}
