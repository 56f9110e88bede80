package breakout

import (
	"math"

	"github.com/vovakirdan/clickwheel/internal/core"
)

// Ball is the ball state in world pixels.
type Ball struct {
	Pos    core.Vec
	Vel    core.Vec // Pixels per 60 Hz frame
	Radius float64
}

// Move advances the ball by its velocity scaled by timeScale frames.
func (b *Ball) Move(timeScale float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(timeScale))
}

// Paddle is the player's paddle.
type Paddle struct {
	Rect core.RectF
}

// CenterX returns the horizontal centre of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.Rect.X + p.Rect.W/2
}

// CollisionSide describes which velocity axes a collision reflects.
type CollisionSide int

const (
	CollisionNone       CollisionSide = iota
	CollisionHorizontal               // Left or right face: reflect X
	CollisionVertical                 // Top or bottom face: reflect Y
	CollisionCorner                   // Ambiguous: reflect both
)

// frameMs is the length of the reference 60 Hz frame velocities are tuned for.
const frameMs = 1000.0 / 60.0

// TimeScale converts an elapsed time into reference frames.
func TimeScale(dtMs float64) float64 {
	return dtMs / frameMs
}

// CheckWallCollision reflects the ball off the left, right and top walls of
// a w-wide world, clamping its position back inside the bound. It reports
// whether any wall was hit.
func CheckWallCollision(ball *Ball, w float64) bool {
	hit := false
	r := ball.Radius
	if ball.Pos.X-r < 0 {
		ball.Pos.X = r
		ball.Vel.X = math.Abs(ball.Vel.X)
		hit = true
	} else if ball.Pos.X+r > w {
		ball.Pos.X = w - r
		ball.Vel.X = -math.Abs(ball.Vel.X)
		hit = true
	}
	if ball.Pos.Y-r < 0 {
		ball.Pos.Y = r
		ball.Vel.Y = math.Abs(ball.Vel.Y)
		hit = true
	}
	return hit
}

// BounceAngle maps a hit point in [0, 1] along the paddle to an angle from
// vertical in radians. spread is the full range as a fraction of π.
func BounceAngle(hit, spread float64) float64 {
	return (core.ClampF(hit, 0, 1) - 0.5) * spread * math.Pi
}

// CheckPaddleCollision bounces a descending ball whose lower edge is inside
// the paddle band and whose centre is within the paddle's extent. The new
// velocity always points upward with the given speed.
func CheckPaddleCollision(ball *Ball, paddle *Paddle, speed, spread float64) bool {
	if ball.Vel.Y <= 0 {
		return false
	}
	p := paddle.Rect
	bottom := ball.Pos.Y + ball.Radius
	if bottom < p.Y || ball.Pos.Y-ball.Radius > p.Bottom() {
		return false
	}
	if ball.Pos.X < p.X || ball.Pos.X > p.Right() {
		return false
	}

	angle := BounceAngle((ball.Pos.X-p.X)/p.W, spread)
	ball.Vel = core.Vec{X: speed * math.Sin(angle), Y: -speed * math.Cos(angle)}
	ball.Pos.Y = p.Y - ball.Radius
	return true
}

// NearestBrick returns the index of the alive brick closest to the ball
// among those within one radius of it, or -1.
func NearestBrick(level *Level, ball *Ball) int {
	best := -1
	bestDist := math.Inf(1)
	for i := range level.Bricks {
		b := &level.Bricks[i]
		if !b.Alive {
			continue
		}
		d := b.Rect.ClosestPoint(ball.Pos).Sub(ball.Pos).Len()
		if d <= ball.Radius && d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// HitSide decides which face of rect the ball came through, from its
// centre before the move.
func HitSide(prev core.Vec, rect core.RectF) CollisionSide {
	outsideX := prev.X < rect.X || prev.X > rect.Right()
	outsideY := prev.Y < rect.Y || prev.Y > rect.Bottom()
	switch {
	case outsideY && !outsideX:
		return CollisionVertical
	case outsideX && !outsideY:
		return CollisionHorizontal
	default:
		return CollisionCorner
	}
}

// ApplyBrickBounce points the reflected velocity axes away from rect and
// restores the ball speed.
func ApplyBrickBounce(ball *Ball, rect core.RectF, side CollisionSide, speed float64) {
	c := rect.Center()
	if side == CollisionHorizontal || side == CollisionCorner {
		if ball.Pos.X < c.X {
			ball.Vel.X = -math.Abs(ball.Vel.X)
		} else {
			ball.Vel.X = math.Abs(ball.Vel.X)
		}
	}
	if side == CollisionVertical || side == CollisionCorner {
		if ball.Pos.Y < c.Y {
			ball.Vel.Y = -math.Abs(ball.Vel.Y)
		} else {
			ball.Vel.Y = math.Abs(ball.Vel.Y)
		}
	}
	ball.Vel = ball.Vel.WithLen(speed)
}

// EaseOutBack is the overshooting ease used by the win banner.
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	t = core.ClampF(t, 0, 1)
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}
