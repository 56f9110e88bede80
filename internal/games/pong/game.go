// Package pong implements Pong against a CPU opponent, played on the
// click-wheel. The player's paddle runs along the bottom edge and follows the
// wheel; the CPU defends the top edge.
package pong

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/clickwheel/internal/core"
	"github.com/vovakirdan/clickwheel/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	NetChar    = '╌'
)

// Default game settings, as ratios of the canvas where a size is involved.
const (
	PaddleWidthRatio  = 0.22
	PaddleHeightRatio = 0.03
	PaddleEdgeGap     = 2.0 // Pixels between a paddle and its edge
	BallRadiusRatio   = 0.02
	BallSpeedRatio    = 0.007 // Per 60 Hz frame
	MaxSpeedFactor    = 1.6   // Rally speed-up cap
	HitSpeedUp        = 1.04
	KeyStepRatio      = 0.04
	BounceSpread      = 0.6 * math.Pi
	ServeDelayMs      = 1000.0
	MaxFrameMs        = 50.0
	WinScore          = 5
	CPUSkillMin       = 0.6
	CPUSkillMax       = 0.9
)

// Phases
const (
	PhaseServing = "serving" // Ball parked in the centre
	PhasePlaying = "playing"
	PhaseOver    = "over" // A side reached WinScore
)

const frameMs = 1000.0 / 60.0

// Game implements the Pong game logic.
type Game struct {
	w, h float64

	player core.RectF // Bottom paddle
	cpu    core.RectF // Top paddle

	ballPos core.Vec
	ballVel core.Vec // Pixels per 60 Hz frame
	radius  float64

	baseSpeed float64
	speed     float64
	keyStep   float64

	scorePlayer int
	scoreCPU    int
	winner      int // 1 player, 2 CPU

	phase     string
	paused    bool
	serveLeft float64 // ms until the ball is served
	serveDown bool    // Serve towards the player
	cpuSkill  float64
	tickCount int
}

// New creates a new Pong game instance.
func New() *Game {
	return &Game{phase: PhaseServing, cpuSkill: CPUSkillMin}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset starts a new match sized to the runtime screen pane.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	w, h := runtime.CanvasSize()
	g.StartMatch(w, h)
}

// StartMatch starts a new match on a w×h canvas.
func (g *Game) StartMatch(w, h float64) {
	g.w, g.h = w, h
	g.radius = BallRadiusRatio * w
	g.baseSpeed = BallSpeedRatio * w
	g.keyStep = KeyStepRatio * w

	pw, ph := PaddleWidthRatio*w, PaddleHeightRatio*h
	g.player = core.NewRectF((w-pw)/2, h-ph-PaddleEdgeGap, pw, ph)
	g.cpu = core.NewRectF((w-pw)/2, PaddleEdgeGap, pw, ph)

	g.scorePlayer, g.scoreCPU, g.winner = 0, 0, 0
	g.paused = false
	g.cpuSkill = CPUSkillMin
	g.tickCount = 0
	g.startServe(true)
}

// Resize restarts the match at the new size while nobody has scored.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	if g.phase == PhaseServing && g.scorePlayer == 0 && g.scoreCPU == 0 {
		g.Reset(runtime)
	}
}

// startServe parks the ball and aims the next serve at the side that
// conceded the last point.
func (g *Game) startServe(down bool) {
	g.phase = PhaseServing
	g.serveLeft = ServeDelayMs
	g.serveDown = down
	g.speed = g.baseSpeed
	g.ballPos = core.Vec{X: g.w / 2, Y: g.h / 2}
	g.ballVel = core.Vec{}
}

// serve launches the parked ball. The angle alternates with the rally count
// so serves are deterministic but not straight.
func (g *Game) serve() {
	angle := 0.25
	if (g.scorePlayer+g.scoreCPU)%2 == 1 {
		angle = -angle
	}
	vy := g.speed * math.Cos(angle)
	if !g.serveDown {
		vy = -vy
	}
	g.ballVel = core.Vec{X: g.speed * math.Sin(angle), Y: vy}
	g.phase = PhasePlaying
}

// Step applies input and advances the match by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	switch {
	case in.Has(core.ActionLaunch):
		g.launch()
	case in.Has(core.ActionPause):
		if g.phase != PhaseOver {
			g.paused = !g.paused
		}
	}
	if in.Has(core.ActionLeft) {
		g.NudgePaddle(-1)
	}
	if in.Has(core.ActionRight) {
		g.NudgePaddle(1)
	}

	g.Advance(float64(dt) / float64(time.Millisecond))
	return core.StepResult{State: g.State()}
}

// launch serves immediately, or starts a new match once one is over.
func (g *Game) launch() {
	switch g.phase {
	case PhaseServing:
		if !g.paused {
			g.serve()
		}
	case PhaseOver:
		g.StartMatch(g.w, g.h)
	}
}

// Advance moves the match forward by dtMs milliseconds.
func (g *Game) Advance(dtMs float64) {
	if dtMs <= 0 || g.paused || g.phase == PhaseOver {
		return
	}
	dtMs = math.Min(dtMs, MaxFrameMs)
	g.tickCount++
	scale := dtMs / frameMs

	g.moveCPU(scale)

	if g.phase == PhaseServing {
		g.serveLeft -= dtMs
		if g.serveLeft <= 0 {
			g.serve()
		}
		return
	}

	g.ballPos = g.ballPos.Add(g.ballVel.Scale(scale))
	g.bounceWalls()

	if g.ballVel.Y > 0 {
		g.hitPaddle(g.player, -1)
	} else {
		g.hitPaddle(g.cpu, 1)
	}

	switch {
	case g.ballPos.Y-g.radius > g.h:
		g.point(2)
	case g.ballPos.Y+g.radius < 0:
		g.point(1)
	}

	if g.tickCount%600 == 0 && g.cpuSkill < CPUSkillMax {
		g.cpuSkill = math.Min(g.cpuSkill+0.03, CPUSkillMax)
	}
}

func (g *Game) bounceWalls() {
	r := g.radius
	if g.ballPos.X-r < 0 {
		g.ballPos.X = r
		g.ballVel.X = math.Abs(g.ballVel.X)
	} else if g.ballPos.X+r > g.w {
		g.ballPos.X = g.w - r
		g.ballVel.X = -math.Abs(g.ballVel.X)
	}
}

// hitPaddle bounces the ball off paddle p, sending it in direction dir
// (-1 up, +1 down). The exit angle depends on where the ball hit.
func (g *Game) hitPaddle(p core.RectF, dir float64) {
	face := p.Y
	if dir > 0 {
		face = p.Bottom()
	}
	if math.Abs(g.ballPos.Y-face) > g.radius+p.H {
		return
	}
	if g.ballPos.X < p.X || g.ballPos.X > p.Right() {
		return
	}

	hit := (g.ballPos.X - p.X) / p.W
	angle := (hit - 0.5) * BounceSpread
	g.speed = math.Min(g.speed*HitSpeedUp, g.baseSpeed*MaxSpeedFactor)
	g.ballVel = core.Vec{X: g.speed * math.Sin(angle), Y: dir * g.speed * math.Cos(angle)}
	g.ballPos.Y = face + dir*g.radius
}

// moveCPU tracks the ball with limited speed while it comes towards the CPU.
func (g *Game) moveCPU(scale float64) {
	if g.ballVel.Y >= 0 {
		return
	}
	target := g.ballPos.X - g.cpu.W/2
	step := g.baseSpeed * g.cpuSkill * scale
	diff := target - g.cpu.X
	if math.Abs(diff) > step {
		diff = math.Copysign(step, diff)
	}
	g.cpu.X = core.ClampF(g.cpu.X+diff, 0, g.w-g.cpu.W)
}

// point awards a point to side (1 player, 2 CPU).
func (g *Game) point(side int) {
	if side == 1 {
		g.scorePlayer++
	} else {
		g.scoreCPU++
	}
	switch {
	case g.scorePlayer >= WinScore:
		g.winner, g.phase = 1, PhaseOver
	case g.scoreCPU >= WinScore:
		g.winner, g.phase = 2, PhaseOver
	default:
		g.startServe(side == 2)
	}
}

// PaddleX returns the player's paddle left edge.
func (g *Game) PaddleX() float64 {
	return g.player.X
}

// PaddleRange returns the bounds of the player's paddle left edge.
func (g *Game) PaddleRange() (min, max float64) {
	return 0, math.Max(0, g.w-g.player.W)
}

// SetPaddleX moves the player's paddle, clamped to PaddleRange.
func (g *Game) SetPaddleX(x float64) {
	if g.paused || g.phase == PhaseOver || math.IsNaN(x) {
		return
	}
	lo, hi := g.PaddleRange()
	g.player.X = core.ClampF(x, lo, hi)
}

// NudgePaddle steps the player's paddle by one keyboard step in direction dir.
func (g *Game) NudgePaddle(dir int) {
	g.SetPaddleX(g.player.X + float64(dir)*g.keyStep)
}

// Score returns the player's and the CPU's points.
func (g *Game) Score() (player, cpu int) {
	return g.scorePlayer, g.scoreCPU
}

// Size returns the canvas size in world pixels.
func (g *Game) Size() (w, h float64) {
	return g.w, g.h
}

// Render draws the current state of the match.
func (g *Game) Render(dst core.Canvas) {
	for x := 0.0; x < g.w; x += 3 * core.CellPxW {
		dst.FillRect(core.NewRectF(x, g.h/2, core.CellPxW, 1), NetChar, core.ColorDim)
	}

	dst.FillRect(g.cpu, PaddleChar, core.ColorBrickHard)
	dst.FillRect(g.player, PaddleChar, core.ColorPaddle)

	// Blink while serving
	if g.phase != PhaseServing || int(g.serveLeft/150)%2 == 0 {
		dst.FillCircle(g.ballPos.X, g.ballPos.Y, g.radius, BallChar, core.ColorBall)
	}

	dst.Text(core.CellPxW, g.h*0.1, fmt.Sprintf("CPU %d", g.scoreCPU), core.ColorDim)
	dst.Text(core.CellPxW, g.h*0.85, fmt.Sprintf("YOU %d", g.scorePlayer), core.ColorDim)

	switch {
	case g.phase == PhaseOver:
		msg := "CPU WINS!"
		if g.winner == 1 {
			msg = "YOU WIN!"
		}
		dst.TextCentered(g.h*0.35, msg, core.ColorWin)
		dst.TextCentered(g.h*0.65, fmt.Sprintf("%d - %d  SELECT to play again", g.scorePlayer, g.scoreCPU), core.ColorText)
	case g.paused:
		dst.TextCentered(g.h*0.35, "PAUSED", core.ColorHighlight)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:  g.phase,
		Paused: g.paused,
		Won:    g.phase == PhaseOver && g.winner == 1,
	}
}

// Register the game with the registry
func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}
