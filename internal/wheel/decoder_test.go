package wheel

import (
	"math"
	"testing"

	"github.com/vovakirdan/clickwheel/internal/core"
)

// pointAt returns the point at angle deg on a circle of radius 100 around the origin.
func pointAt(deg float64) core.Vec {
	rad := Radians(deg)
	return core.Vec{X: 100 * math.Sin(rad), Y: -100 * math.Cos(rad)}
}

type fakePaddle struct {
	x        float64
	min, max float64
}

func (p *fakePaddle) PaddleX() float64                 { return p.x }
func (p *fakePaddle) PaddleRange() (float64, float64) { return p.min, p.max }

func countDirections(results []Result) (next, prev int) {
	for _, r := range results {
		for _, d := range r.Directions() {
			switch d {
			case DirNext:
				next++
			case DirPrevious:
				prev++
			}
		}
	}
	return next, prev
}

func TestDecoderSectorCrossingClockwise(t *testing.T) {
	d := NewDecoder(DefaultSettings())
	d.Begin(pointAt(10))

	var results []Result
	for _, a := range []float64{50, 100, 140} {
		results = append(results, d.Move(pointAt(a)))
	}

	next, prev := countDirections(results)
	if next != 3 || prev != 0 {
		t.Errorf("clockwise sweep emitted next=%d prev=%d, expected 3/0", next, prev)
	}
}

func TestDecoderSectorCrossingCounterClockwise(t *testing.T) {
	d := NewDecoder(DefaultSettings())
	d.Begin(pointAt(140))

	var results []Result
	for _, a := range []float64{100, 50, 10} {
		results = append(results, d.Move(pointAt(a)))
	}

	next, prev := countDirections(results)
	if next != 0 || prev != 3 {
		t.Errorf("counter-clockwise sweep emitted next=%d prev=%d, expected 0/3", next, prev)
	}
}

func TestDecoderWrapsAcrossTop(t *testing.T) {
	d := NewDecoder(DefaultSettings())
	d.Begin(pointAt(350)) // sector 7

	r := d.Move(pointAt(10)) // sector 0
	if r.Steps != 1 {
		t.Errorf("7 -> 0 produced %d steps, expected +1", r.Steps)
	}

	r = d.Move(pointAt(340)) // back to sector 7
	if r.Steps != -1 {
		t.Errorf("0 -> 7 produced %d steps, expected -1", r.Steps)
	}
}

func TestDecoderFastRotationCountsEverySector(t *testing.T) {
	d := NewDecoder(DefaultSettings())
	d.Begin(pointAt(10))

	r := d.Move(pointAt(130)) // sector 0 -> 2 in one sample
	if r.Steps != 2 {
		t.Errorf("skipping a sector produced %d steps, expected 2", r.Steps)
	}
}

func TestDecoderOppositeSectorIsAmbiguous(t *testing.T) {
	d := NewDecoder(DefaultSettings())
	d.Begin(pointAt(10))

	if r := d.Move(pointAt(190)); r.Steps != 0 {
		t.Errorf("opposite jump produced %d steps, expected 0", r.Steps)
	}
	// Re-anchored at sector 4, so one more sector is a single step
	if r := d.Move(pointAt(230)); r.Steps != 1 {
		t.Errorf("after re-anchor produced %d steps, expected 1", r.Steps)
	}
}

func TestDecoderJitterWithinSector(t *testing.T) {
	d := NewDecoder(DefaultSettings())
	d.Begin(pointAt(50))

	for _, a := range []float64{52, 48, 60, 46, 89} {
		if r := d.Move(pointAt(a)); r.Steps != 0 {
			t.Errorf("Move(%v) = %d steps, expected 0 inside one sector", a, r.Steps)
		}
	}
	if d.End() {
		t.Error("End() should report no rotation for a jitter-only gesture")
	}
}

func TestDecoderIgnoresStrayMove(t *testing.T) {
	d := NewDecoder(DefaultSettings())

	if r := d.Move(pointAt(90)); r != (Result{}) {
		t.Errorf("Move without Begin = %+v, expected empty result", r)
	}
	if d.Active() {
		t.Error("stray Move should not start a gesture")
	}
}

func TestDecoderModeLockedDuringGesture(t *testing.T) {
	d := NewDecoder(DefaultSettings())
	d.Begin(pointAt(0))

	if d.SetMode(ModePaddle, &fakePaddle{}) {
		t.Error("SetMode should be refused mid-gesture")
	}
	if d.Mode() != ModeMenu {
		t.Errorf("Mode() = %v, expected menu", d.Mode())
	}

	d.End()
	if !d.SetMode(ModePaddle, &fakePaddle{}) {
		t.Error("SetMode should succeed when idle")
	}
}

func TestDecoderPaddleFollowsRotation(t *testing.T) {
	p := &fakePaddle{x: 100, min: 0, max: 225}
	d := NewDecoder(Settings{SectorDegrees: 45, Sensitivity: 150, ReanchorDegrees: 45})
	d.SetMode(ModePaddle, p)

	d.Begin(pointAt(0))
	r := d.Move(pointAt(20))

	expected := 100 + Radians(20)*150
	if !r.Paddle || !approx(r.PaddleX, expected) {
		t.Errorf("Move(20°) = %+v, expected PaddleX %v", r, expected)
	}

	r = d.Move(pointAt(340))
	expected = 100 - Radians(20)*150
	if !approx(r.PaddleX, expected) {
		t.Errorf("Move(-20°) PaddleX = %v, expected %v", r.PaddleX, expected)
	}
}

func TestDecoderPaddleClampsAtZero(t *testing.T) {
	p := &fakePaddle{x: 0, min: 0, max: 225}
	d := NewDecoder(Settings{SectorDegrees: 45, Sensitivity: 200, ReanchorDegrees: 45})
	d.SetMode(ModePaddle, p)

	d.Begin(pointAt(90))
	r := d.Move(pointAt(0)) // -90° swing

	if r.PaddleX != 0 {
		t.Errorf("PaddleX = %v, expected clamp at 0", r.PaddleX)
	}
}

func TestDecoderPaddleStaysInBounds(t *testing.T) {
	p := &fakePaddle{x: 50, min: 0, max: 225}
	d := NewDecoder(Settings{SectorDegrees: 45, Sensitivity: 200, ReanchorDegrees: 45})
	d.SetMode(ModePaddle, p)

	d.Begin(pointAt(0))
	for a := 0.0; a < 1080; a += 7 {
		r := d.Move(pointAt(a))
		if r.PaddleX < 0 || r.PaddleX > 225 {
			t.Fatalf("PaddleX = %v at %v°, out of [0, 225]", r.PaddleX, a)
		}
	}
	for a := 1080.0; a > 0; a -= 11 {
		r := d.Move(pointAt(a))
		if r.PaddleX < 0 || r.PaddleX > 225 {
			t.Fatalf("PaddleX = %v at %v°, out of [0, 225]", r.PaddleX, a)
		}
	}
}

func TestDecoderPaddleReanchorsAfterClamp(t *testing.T) {
	p := &fakePaddle{x: 200, min: 0, max: 225}
	d := NewDecoder(Settings{SectorDegrees: 45, Sensitivity: 150, ReanchorDegrees: 45})
	d.SetMode(ModePaddle, p)

	d.Begin(pointAt(0))
	d.Move(pointAt(30)) // overshoots 225, clamps and re-anchors there

	// Reversing immediately moves away from the wall
	r := d.Move(pointAt(20))
	expected := 225 - Radians(10)*150
	if !approx(r.PaddleX, expected) {
		t.Errorf("PaddleX after reversal = %v, expected %v", r.PaddleX, expected)
	}
}

func TestDecoderPaddleReanchorsOnLargeSwing(t *testing.T) {
	p := &fakePaddle{x: 0, min: 0, max: 10000}
	d := NewDecoder(Settings{SectorDegrees: 45, Sensitivity: 100, ReanchorDegrees: 45})
	d.SetMode(ModePaddle, p)

	d.Begin(pointAt(0))
	d.Move(pointAt(60)) // > 45°, re-anchors at 60° / x(60°)
	r := d.Move(pointAt(120))

	expected := Radians(120) * 100
	if !approx(r.PaddleX, expected) {
		t.Errorf("PaddleX after two swings = %v, expected %v", r.PaddleX, expected)
	}
}

func TestDecoderRebaseFollowsMovedPaddle(t *testing.T) {
	p := &fakePaddle{x: 200, min: 0, max: 225}
	d := NewDecoder(Settings{SectorDegrees: 45, Sensitivity: 150, ReanchorDegrees: 45})
	d.SetMode(ModePaddle, p)

	d.Begin(pointAt(0))
	p.x, p.max = 40, 100 // the game was rebuilt smaller
	d.Rebase()

	r := d.Move(pointAt(10))
	expected := 40 + Radians(10)*150
	if !approx(r.PaddleX, expected) {
		t.Errorf("PaddleX after Rebase = %v, expected %v", r.PaddleX, expected)
	}

	r = d.Move(pointAt(40))
	if r.PaddleX != 100 {
		t.Errorf("PaddleX = %v, expected clamp at the new max 100", r.PaddleX)
	}
}

func TestDecoderRebaseIdle(t *testing.T) {
	p := &fakePaddle{x: 10, min: 0, max: 225}
	d := NewDecoder(DefaultSettings())
	d.SetMode(ModePaddle, p)

	d.Rebase()
	if d.Active() {
		t.Error("Rebase() should not start a gesture")
	}
}
