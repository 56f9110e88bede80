package breakout

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/clickwheel/internal/config"
	"github.com/vovakirdan/clickwheel/internal/core"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

// newSession starts a default session on a 300x500 canvas.
func newSession(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultBreakoutConfig())
	g.StartSession(300, 500)
	return g
}

func TestStartSessionLayout(t *testing.T) {
	g := newSession(t)

	if g.Phase() != PhaseAttached {
		t.Errorf("Phase() = %s, expected %s", g.Phase(), PhaseAttached)
	}
	if !approx(g.paddle.Rect.W, 75) || !approx(g.paddle.Rect.X, 112.5) {
		t.Errorf("paddle = %+v, expected width 75 centred at 112.5", g.paddle.Rect)
	}
	if !approx(g.paddle.Rect.Y, 483) {
		t.Errorf("paddle Y = %v, expected 483", g.paddle.Rect.Y)
	}
	if !approx(g.ball.Radius, 6) || !approx(g.speed, 2.4) {
		t.Errorf("ball radius/speed = %v/%v, expected 6/2.4", g.ball.Radius, g.speed)
	}
	if !approx(g.ball.Pos.X, 150) || !approx(g.ball.Pos.Y, 474) {
		t.Errorf("ball = %+v, expected attached at (150, 474)", g.ball.Pos)
	}

	perRow := map[int]int{}
	for _, b := range g.level.Bricks {
		perRow[b.Row]++
		if b.HP != 3-b.Row {
			t.Errorf("brick row %d col %d HP = %d, expected %d", b.Row, b.Col, b.HP, 3-b.Row)
		}
		if b.Rect.X < 0 || b.Rect.Right() > 300 {
			t.Errorf("brick %+v outside the canvas", b.Rect)
		}
	}
	for row, want := range []int{6, 5, 4} {
		if perRow[row] != want {
			t.Errorf("row %d has %d bricks, expected %d", row, perRow[row], want)
		}
	}
	if g.level.CountAlive() != 15 {
		t.Errorf("CountAlive() = %d, expected 15", g.level.CountAlive())
	}
}

func TestLaunchStraightUpOneFrame(t *testing.T) {
	g := newSession(t)
	before := g.Snapshot()

	g.LaunchOrRestart()
	if g.Phase() != PhaseRunning {
		t.Fatalf("Phase() = %s, expected %s", g.Phase(), PhaseRunning)
	}

	g.Advance(16)

	wantY := 474 - 2.4*16/(1000.0/60.0)
	if !approx(g.ball.Pos.Y, wantY) {
		t.Errorf("ball Y = %v, expected %v", g.ball.Pos.Y, wantY)
	}
	if !approx(g.ball.Pos.X, 150) {
		t.Errorf("ball X = %v, expected 150", g.ball.Pos.X)
	}
	after := g.Snapshot()
	for i := range before.BrickHP {
		if before.BrickHP[i] != after.BrickHP[i] {
			t.Errorf("brick %d HP changed from %d to %d", i, before.BrickHP[i], after.BrickHP[i])
		}
	}
}

func TestLaunchIgnoredWhileRunning(t *testing.T) {
	g := newSession(t)
	g.LaunchOrRestart()
	g.Advance(16)
	g.ball.Vel = core.Vec{X: 1, Y: -2}.WithLen(g.speed)
	vel := g.ball.Vel

	g.LaunchOrRestart()

	if g.Phase() != PhaseRunning {
		t.Errorf("Phase() = %s, expected %s", g.Phase(), PhaseRunning)
	}
	if g.ball.Vel != vel {
		t.Errorf("velocity = %+v, expected unchanged %+v", g.ball.Vel, vel)
	}
}

func TestAttachedBallIgnoresAdvance(t *testing.T) {
	g := newSession(t)
	pos := g.ball.Pos

	for range 10 {
		g.Advance(16)
	}

	if g.ball.Pos != pos {
		t.Errorf("attached ball moved from %+v to %+v", pos, g.ball.Pos)
	}
}

func TestSpeedConservation(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42} {
		g := newSession(t)
		rng := rand.New(rand.NewPCG(seed, 99))
		lo, hi := g.PaddleRange()

		for frame := range 4000 {
			if rng.IntN(3) == 0 {
				g.SetPaddleX(rng.Float64()*400 - 50)
			}
			g.Advance(1 + rng.Float64()*30)

			if x := g.PaddleX(); x < lo || x > hi {
				t.Fatalf("seed %d frame %d: PaddleX() = %v outside [%v, %v]", seed, frame, x, lo, hi)
			}

			switch g.Phase() {
			case PhaseAttached, PhaseWon:
				g.LaunchOrRestart()
			case PhaseRunning:
				if got := g.ball.Vel.Len(); math.Abs(got-g.speed) > eps {
					t.Fatalf("seed %d frame %d: |velocity| = %v, expected %v", seed, frame, got, g.speed)
				}
			}
		}
	}
}

func TestPaddleBounds(t *testing.T) {
	g := newSession(t)
	lo, hi := g.PaddleRange()
	if lo != 0 || !approx(hi, 225) {
		t.Fatalf("PaddleRange() = %v, %v; expected 0, 225", lo, hi)
	}

	tests := []struct {
		in, want float64
	}{
		{-1e9, 0},
		{-0.1, 0},
		{100, 100},
		{225, 225},
		{1e9, 225},
	}
	for _, tt := range tests {
		g.SetPaddleX(tt.in)
		if !approx(g.PaddleX(), tt.want) {
			t.Errorf("SetPaddleX(%v): PaddleX() = %v, expected %v", tt.in, g.PaddleX(), tt.want)
		}
		if !approx(g.ball.Pos.X, g.PaddleX()+37.5) {
			t.Errorf("attached ball X = %v, expected paddle centre %v", g.ball.Pos.X, g.PaddleX()+37.5)
		}
	}

	g.SetPaddleX(math.NaN())
	if math.IsNaN(g.PaddleX()) {
		t.Error("SetPaddleX(NaN) should be ignored")
	}

	for range 100 {
		g.NudgePaddle(-1)
	}
	if g.PaddleX() != 0 {
		t.Errorf("PaddleX() after nudging left = %v, expected 0", g.PaddleX())
	}
	for range 100 {
		g.NudgePaddle(1)
	}
	if !approx(g.PaddleX(), 225) {
		t.Errorf("PaddleX() after nudging right = %v, expected 225", g.PaddleX())
	}
}

func TestWallReflection(t *testing.T) {
	tests := []struct {
		name    string
		pos     core.Vec
		vel     core.Vec
		wantPos core.Vec
		wantVel core.Vec
	}{
		{"left", core.Vec{X: 2, Y: 100}, core.Vec{X: -1, Y: 1}, core.Vec{X: 5, Y: 100}, core.Vec{X: 1, Y: 1}},
		{"right", core.Vec{X: 299, Y: 100}, core.Vec{X: 1, Y: -1}, core.Vec{X: 295, Y: 100}, core.Vec{X: -1, Y: -1}},
		{"top", core.Vec{X: 100, Y: 1}, core.Vec{X: 1, Y: -1}, core.Vec{X: 100, Y: 5}, core.Vec{X: 1, Y: 1}},
		{"top left corner", core.Vec{X: 0, Y: 0}, core.Vec{X: -1, Y: -1}, core.Vec{X: 5, Y: 5}, core.Vec{X: 1, Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := Ball{Pos: tt.pos, Vel: tt.vel, Radius: 5}
			if !CheckWallCollision(&ball, 300) {
				t.Fatal("CheckWallCollision() = false, expected true")
			}
			if ball.Pos != tt.wantPos || ball.Vel != tt.wantVel {
				t.Errorf("ball = %+v / %+v, expected %+v / %+v", ball.Pos, ball.Vel, tt.wantPos, tt.wantVel)
			}
		})
	}

	ball := Ball{Pos: core.Vec{X: 100, Y: 100}, Vel: core.Vec{X: 1, Y: 1}, Radius: 5}
	if CheckWallCollision(&ball, 300) {
		t.Error("CheckWallCollision() in open space = true, expected false")
	}
}

func TestPaddleBounceShaping(t *testing.T) {
	paddle := Paddle{Rect: core.NewRectF(100, 400, 80, 10)}
	speed := 3.0

	tests := []struct {
		name  string
		x     float64
		angle float64
	}{
		{"left edge", 100, -0.35 * math.Pi},
		{"centre", 140, 0},
		{"right edge", 180, 0.35 * math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := Ball{Pos: core.Vec{X: tt.x, Y: 396}, Vel: core.Vec{X: 0, Y: speed}, Radius: 5}
			if !CheckPaddleCollision(&ball, &paddle, speed, 0.7) {
				t.Fatal("CheckPaddleCollision() = false, expected true")
			}
			if !approx(ball.Vel.X, speed*math.Sin(tt.angle)) || !approx(ball.Vel.Y, -speed*math.Cos(tt.angle)) {
				t.Errorf("velocity = %+v, expected angle %v", ball.Vel, tt.angle)
			}
			if !approx(ball.Vel.Len(), speed) {
				t.Errorf("|velocity| = %v, expected %v", ball.Vel.Len(), speed)
			}
			if ball.Pos.Y != 395 {
				t.Errorf("ball Y = %v, expected 395 (on the paddle)", ball.Pos.Y)
			}
		})
	}

	rising := Ball{Pos: core.Vec{X: 140, Y: 396}, Vel: core.Vec{X: 0, Y: -speed}, Radius: 5}
	if CheckPaddleCollision(&rising, &paddle, speed, 0.7) {
		t.Error("rising ball should pass through the paddle band")
	}
	wide := Ball{Pos: core.Vec{X: 181, Y: 396}, Vel: core.Vec{X: 0, Y: speed}, Radius: 5}
	if CheckPaddleCollision(&wide, &paddle, speed, 0.7) {
		t.Error("ball outside the paddle extent should miss")
	}
}

func TestBrickSideHit(t *testing.T) {
	g := newSession(t)
	g.phase = PhaseRunning

	// Leftmost brick of the top row spans x 15..57.5, y 50..75
	target := &g.level.Bricks[0]
	if target.Row != 0 || target.Col != 0 || !approx(target.Rect.X, 15) {
		t.Fatalf("unexpected first brick %+v", target)
	}
	g.ball.Pos = core.Vec{X: 8, Y: 62.5}
	g.ball.Vel = core.Vec{X: g.speed, Y: 0}

	g.Advance(16)

	if target.HP != 2 || !target.Alive {
		t.Errorf("brick HP/alive = %d/%v, expected 2/true", target.HP, target.Alive)
	}
	if g.ball.Vel.X >= 0 {
		t.Errorf("velocity X = %v, expected reflected to negative", g.ball.Vel.X)
	}
	if !approx(g.ball.Vel.Len(), g.speed) {
		t.Errorf("|velocity| = %v, expected %v", g.ball.Vel.Len(), g.speed)
	}
}

func TestBrickCornerHitReflectsBothAxes(t *testing.T) {
	g := newSession(t)
	g.phase = PhaseRunning

	// First brick of the bottom row spans x 60.5..103, y 106..131
	idx := -1
	for i, b := range g.level.Bricks {
		if b.Row == 2 && b.Col == 0 {
			idx = i
		}
	}
	target := &g.level.Bricks[idx]
	if !approx(target.Rect.X, 60.5) || !approx(target.Rect.Bottom(), 131) {
		t.Fatalf("unexpected brick rect %+v", target.Rect)
	}

	g.ball.Pos = core.Vec{X: 55.5, Y: 136}
	g.ball.Vel = core.Vec{X: 1, Y: -1}.WithLen(g.speed)

	g.Advance(16)

	if target.Alive {
		t.Error("1 HP brick should be destroyed")
	}
	if g.ball.Vel.X >= 0 || g.ball.Vel.Y <= 0 {
		t.Errorf("velocity = %+v, expected both axes reflected", g.ball.Vel)
	}
	if !approx(g.ball.Vel.Len(), g.speed) {
		t.Errorf("|velocity| = %v, expected %v", g.ball.Vel.Len(), g.speed)
	}
}

func TestOneBrickPerTick(t *testing.T) {
	g := newSession(t)
	g.phase = PhaseRunning

	// Centred in the padding gap between two bottom-row bricks
	a, b := &g.level.Bricks[11], &g.level.Bricks[12]
	gap := (a.Rect.Right() + b.Rect.X) / 2
	g.ball.Pos = core.Vec{X: gap, Y: a.Rect.Bottom() + 8}
	g.ball.Vel = core.Vec{X: 0, Y: -g.speed}

	g.Advance(16)

	if hit := 2 - boolCount(a.Alive, b.Alive); hit != 1 {
		t.Errorf("%d bricks destroyed in one tick, expected 1", hit)
	}
}

func boolCount(bs ...bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}

func TestLastBrickWinsAndFreezes(t *testing.T) {
	g := newSession(t)
	g.phase = PhaseRunning
	g.launched = true

	last := len(g.level.Bricks) - 1
	for i := range g.level.Bricks[:last] {
		g.level.Bricks[i].Alive = false
		g.level.Bricks[i].HP = 0
	}
	target := &g.level.Bricks[last]
	if target.HP != 1 {
		t.Fatalf("last brick HP = %d, expected 1", target.HP)
	}

	g.ball.Pos = core.Vec{X: target.Rect.Center().X, Y: target.Rect.Bottom() + g.ball.Radius + 1}
	g.ball.Vel = core.Vec{X: 0, Y: -g.speed}

	g.Advance(16)

	if g.Phase() != PhaseWon || !g.State().Won {
		t.Fatalf("Phase() = %s, expected %s", g.Phase(), PhaseWon)
	}

	ball, paddle := g.ball.Pos, g.PaddleX()
	g.SetPaddleX(paddle + 40)
	g.Advance(16)

	if g.ball.Pos != ball {
		t.Errorf("ball moved after win: %+v -> %+v", ball, g.ball.Pos)
	}
	if g.PaddleX() != paddle {
		t.Errorf("paddle moved after win: %v -> %v", paddle, g.PaddleX())
	}
}

func TestFallThroughReattaches(t *testing.T) {
	g := newSession(t)
	g.SetPaddleX(0)
	g.LaunchOrRestart()

	g.ball.Pos = core.Vec{X: 250, Y: 500 - g.ball.Radius - 1}
	g.ball.Vel = core.Vec{X: 0, Y: g.speed}

	g.Advance(16)

	if g.Phase() != PhaseAttached {
		t.Fatalf("Phase() = %s, expected %s", g.Phase(), PhaseAttached)
	}
	if g.PaddleX() != 0 {
		t.Errorf("PaddleX() = %v, paddle should not reset", g.PaddleX())
	}
	if !approx(g.ball.Pos.X, 37.5) || !approx(g.ball.Vel.Y, -g.speed) || g.ball.Vel.X != 0 {
		t.Errorf("ball = %+v / %+v, expected re-centred and aimed straight up", g.ball.Pos, g.ball.Vel)
	}
	if g.level.CountAlive() != 15 {
		t.Errorf("CountAlive() = %d, bricks should survive a miss", g.level.CountAlive())
	}
}

func TestDegenerateLayoutKeepsPlaying(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Layout.SideMarginRatio = 0.6
	g := NewWithConfig(cfg)
	g.StartSession(300, 500)

	if g.level.Total() != 0 {
		t.Fatalf("Total() = %d, expected empty grid", g.level.Total())
	}

	g.LaunchOrRestart()
	for range 60 {
		g.Advance(16)
	}
	if g.Phase() == PhaseWon {
		t.Error("an empty grid must not count as a win")
	}
}

func TestBuildPyramidDegenerate(t *testing.T) {
	l := config.DefaultBreakoutConfig().Layout
	l.BrickPaddingRatio = 0.5

	level, err := BuildPyramid(300, 500, l)
	if err == nil {
		t.Error("BuildPyramid() error = nil, expected degenerate layout error")
	}
	if level == nil || level.Total() != 0 {
		t.Errorf("BuildPyramid() level = %+v, expected empty level", level)
	}
}

func TestWinAnimation(t *testing.T) {
	if !approx(EaseOutBack(0), 0) || !approx(EaseOutBack(1), 1) {
		t.Errorf("EaseOutBack(0), EaseOutBack(1) = %v, %v; expected 0, 1", EaseOutBack(0), EaseOutBack(1))
	}
	if EaseOutBack(0.8) <= 1 {
		t.Errorf("EaseOutBack(0.8) = %v, expected overshoot above 1", EaseOutBack(0.8))
	}

	g := newSession(t)
	g.phase = PhaseWon

	for range 10 {
		g.Advance(50)
	}
	if !approx(g.WinProgress(), 0.5) {
		t.Errorf("WinProgress() = %v, expected 0.5", g.WinProgress())
	}

	alphas := []struct {
		t, want float64
	}{
		{0.5, 0}, {0.7, 0}, {0.85, 0.5}, {1, 1},
	}
	for _, a := range alphas {
		if got := g.labelAlpha(a.t); !approx(got, a.want) {
			t.Errorf("labelAlpha(%v) = %v, expected %v", a.t, got, a.want)
		}
	}

	for range 30 {
		g.Advance(50)
	}
	if g.WinProgress() != 1 {
		t.Errorf("WinProgress() = %v, expected clamped to 1", g.WinProgress())
	}
}

func TestWinAnimationIgnoresFrameCap(t *testing.T) {
	g := newSession(t)
	g.phase = PhaseWon

	for range 5 {
		g.Advance(200)
	}
	if g.WinProgress() != 1 {
		t.Errorf("WinProgress() = %v after 1s of slow frames, expected 1", g.WinProgress())
	}
}

func TestSlowFrameStillCapsPhysics(t *testing.T) {
	fast, slow := newSession(t), newSession(t)
	for _, g := range []*Game{fast, slow} {
		g.LaunchOrRestart()
	}

	fast.Advance(fast.cfg.Physics.MaxFrameMs)
	slow.Advance(fast.cfg.Physics.MaxFrameMs * 4)

	if fast.ball.Pos != slow.ball.Pos {
		t.Errorf("ball after slow frame = %+v, expected capped %+v", slow.ball.Pos, fast.ball.Pos)
	}
}

func TestBuildPyramidShortCanvasRowsCellApart(t *testing.T) {
	l := config.DefaultBreakoutConfig().Layout

	level, err := BuildPyramid(336, 160, l)
	if err != nil {
		t.Fatalf("BuildPyramid() error = %v", err)
	}

	tops := map[int]float64{}
	for _, b := range level.Bricks {
		tops[b.Row] = b.Rect.Y
	}
	for row := 1; row < l.BrickRows; row++ {
		if gap := tops[row] - tops[row-1]; gap < core.CellPxH {
			t.Errorf("row %d starts %v px below row %d, expected at least %v", row, gap, row-1, core.CellPxH)
		}
	}
}

func TestRestartAfterWin(t *testing.T) {
	g := newSession(t)
	for i := range g.level.Bricks {
		g.level.Bricks[i].Alive = false
	}
	g.phase = PhaseWon
	g.paddle.Rect.X = 0

	g.LaunchOrRestart()

	if g.Phase() != PhaseAttached {
		t.Errorf("Phase() = %s, expected %s", g.Phase(), PhaseAttached)
	}
	if g.level.CountAlive() != 15 {
		t.Errorf("CountAlive() = %d, expected a fresh grid of 15", g.level.CountAlive())
	}
	if !approx(g.PaddleX(), 112.5) {
		t.Errorf("PaddleX() = %v, expected re-centred 112.5", g.PaddleX())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newSession(t)

	g.TogglePause()
	if g.State().Paused {
		t.Error("pause should be ignored while attached")
	}

	g.LaunchOrRestart()
	g.Advance(16)
	g.TogglePause()
	if !g.State().Paused {
		t.Fatal("State().Paused = false, expected true")
	}

	snap := g.Snapshot()
	g.Advance(16)
	g.SetPaddleX(0)
	after := g.Snapshot()
	if snap.Hash() != after.Hash() {
		t.Error("paused session changed state")
	}

	g.TogglePause()
	g.Advance(16)
	if g.ball.Pos == (core.Vec{X: snap.BallX, Y: snap.BallY}) {
		t.Error("ball should move again after resuming")
	}
}

func TestStepMapsActions(t *testing.T) {
	g := newSession(t)

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.Step(right, 16*time.Millisecond)
	if !approx(g.PaddleX(), 112.5+12) {
		t.Errorf("PaddleX() = %v, expected one 12 px step right", g.PaddleX())
	}

	launch := core.NewInputFrame()
	launch.Set(core.ActionLaunch)
	res := g.Step(launch, 16*time.Millisecond)
	if res.State.Phase != PhaseRunning {
		t.Errorf("Step(launch).State.Phase = %s, expected %s", res.State.Phase, PhaseRunning)
	}
	if g.ball.Pos.Y >= 474 {
		t.Errorf("ball Y = %v, expected the launch frame to move it", g.ball.Pos.Y)
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	if res := g.Step(pause, 16*time.Millisecond); !res.State.Paused {
		t.Error("Step(pause).State.Paused = false, expected true")
	}
}

func TestResizeRebuildsOnlyBeforeLaunch(t *testing.T) {
	g := NewWithConfig(config.DefaultBreakoutConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 16, TickRate: 60})
	if w, h := g.Size(); w != 320 || h != 256 {
		t.Fatalf("Size() = %v, %v; expected 320, 256", w, h)
	}

	g.Resize(core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60})
	if w, h := g.Size(); w != 480 || h != 320 {
		t.Errorf("Size() after resize = %v, %v; expected 480, 320", w, h)
	}

	g.LaunchOrRestart()
	g.Resize(core.RuntimeConfig{ScreenW: 40, ScreenH: 16, TickRate: 60})
	if w, _ := g.Size(); w != 480 {
		t.Errorf("Size() width = %v, a launched session must keep its world", w)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newSession(t)
		g.LaunchOrRestart()
		for i := range 600 {
			if i%7 == 0 {
				g.SetPaddleX(float64(i % 225))
			}
			g.Advance(16)
			if g.Phase() == PhaseAttached {
				g.LaunchOrRestart()
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := newSession(t)
	g.LaunchOrRestart()
	for range 200 {
		g.Advance(16)
		if g.Phase() == PhaseAttached {
			g.LaunchOrRestart()
		}
	}
	snap := g.Snapshot()

	restored := newSession(t)
	restored.ApplySnapshot(snap)
	again := restored.Snapshot()

	if snap.Hash() != again.Hash() {
		t.Errorf("ApplySnapshot() hash = %d, expected %d", again.Hash(), snap.Hash())
	}
}

func TestRenderPhases(t *testing.T) {
	g := NewWithConfig(config.DefaultBreakoutConfig())
	g.Reset(core.DefaultConfig())
	screen := core.NewScreen(40, 16)

	g.Render(core.NewRaster(screen, 320, 256))
	out := screen.String()
	if !strings.ContainsRune(out, BallChar) || !strings.ContainsRune(out, PaddleChar) {
		t.Errorf("attached render missing ball or paddle:\n%s", out)
	}
	if !strings.ContainsRune(out, BrickGlyphs[2]) {
		t.Errorf("attached render missing 3 HP bricks:\n%s", out)
	}

	g.phase = PhaseWon
	g.winElapsed = 1000
	screen.Clear()
	g.Render(core.NewRaster(screen, 320, 256))
	out = screen.String()
	if !strings.Contains(out, "YOU WIN!") || !strings.Contains(out, restartLabel) {
		t.Errorf("win render missing banner or label:\n%s", out)
	}
	if strings.ContainsRune(out, BallChar) {
		t.Error("win render should hide the ball")
	}
}
