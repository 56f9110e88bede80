package breakout

import "math"

// Snapshot contains the complete session state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Phase      string
	Paused     bool
	Launched   bool
	WinElapsed float64

	PaddleX float64
	BallX   float64
	BallY   float64
	BallVX  float64
	BallVY  float64

	// Brick hit points in layout order, 0 for destroyed bricks
	BrickHP         []int
	BricksRemaining int
}

// Snapshot returns the current session state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	hp := make([]int, len(g.level.Bricks))
	for i, b := range g.level.Bricks {
		if b.Alive {
			hp[i] = b.HP
		}
	}

	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Phase:      g.phase,
		Paused:     g.paused,
		Launched:   g.launched,
		WinElapsed: g.winElapsed,

		PaddleX: g.paddle.Rect.X,
		BallX:   g.ball.Pos.X,
		BallY:   g.ball.Pos.Y,
		BallVX:  g.ball.Vel.X,
		BallVY:  g.ball.Vel.Y,

		BrickHP:         hp,
		BricksRemaining: g.level.CountAlive(),
	}
}

// ApplySnapshot restores session state from a snapshot taken on a session
// of the same canvas size.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.phase = snap.Phase
	g.paused = snap.Paused
	g.launched = snap.Launched
	g.winElapsed = snap.WinElapsed

	g.paddle.Rect.X = snap.PaddleX
	g.ball.Pos.X, g.ball.Pos.Y = snap.BallX, snap.BallY
	g.ball.Vel.X, g.ball.Vel.Y = snap.BallVX, snap.BallVY

	if len(snap.BrickHP) == len(g.level.Bricks) {
		for i, hp := range snap.BrickHP {
			g.level.Bricks[i].HP = hp
			g.level.Bricks[i].Alive = hp > 0
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.Phase {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + boolBit(snap.Launched)
	h = h*31 + math.Float64bits(snap.WinElapsed)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation

	for _, v := range snap.BrickHP {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
