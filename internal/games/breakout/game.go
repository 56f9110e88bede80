package breakout

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clickwheel/internal/config"
	"github.com/vovakirdan/clickwheel/internal/core"
	"github.com/vovakirdan/clickwheel/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	BannerChar = '█'
)

// BrickGlyphs by hit points (index hp-1).
var BrickGlyphs = []rune{'░', '▓', '█'}

// Game phases
const (
	PhaseAttached = "attached" // Ball rides on the paddle, waiting for launch
	PhaseRunning  = "running"  // Ball in play
	PhaseWon      = "won"      // Every brick destroyed, win overlay showing
)

const restartLabel = "Press SELECT to play again"

var (
	gameConfig = config.DefaultBreakoutConfig()
	logger     = log.New(io.Discard)
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.BreakoutConfig) {
	gameConfig = cfg
}

// SetLogger sets the logger games report layout errors to.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game is one Breakout session: a canvas size, a brick grid, the paddle and
// the ball. LaunchOrRestart after a win starts a fresh session in place.
type Game struct {
	cfg config.BreakoutConfig

	// Canvas in world pixels
	w, h float64

	// Sizes derived from the canvas
	speed   float64 // Ball speed in px per reference frame
	keyStep float64

	paddle Paddle
	ball   Ball
	level  *Level

	phase      string
	paused     bool
	launched   bool    // Ball has left the paddle at least once this session
	winElapsed float64 // ms since the last brick fell
	tickCount  int
}

// New creates a Breakout game with the configuration set by SetConfig.
func New() *Game {
	return NewWithConfig(gameConfig)
}

// NewWithConfig creates a Breakout game with an explicit configuration.
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	return &Game{cfg: cfg, level: &Level{}, phase: PhaseAttached}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset starts a session sized to the runtime screen pane.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	w, h := runtime.CanvasSize()
	g.StartSession(w, h)
}

// StartSession builds a fresh session on a w x h pixel canvas. Every size is
// a fixed fraction of the canvas, so the game plays the same at any size.
func (g *Game) StartSession(w, h float64) {
	l := g.cfg.Layout
	g.w, g.h = w, h
	g.speed = g.cfg.Physics.BallSpeedRatio * w
	g.keyStep = g.cfg.Physics.KeyStepRatio * w

	pw := l.PaddleWidthRatio * w
	ph := l.PaddleHeightRatio * h
	g.paddle = Paddle{Rect: core.NewRectF((w-pw)/2, h-ph-l.PaddleBottomGap, pw, ph)}
	g.ball = Ball{Radius: l.BallRadiusRatio * w}

	level, err := BuildPyramid(w, h, l)
	if err != nil {
		logger.Error("brick layout skipped", "err", err)
	}
	g.level = level

	g.phase = PhaseAttached
	g.paused = false
	g.launched = false
	g.winElapsed = 0
	g.tickCount = 0
	g.attachBall()
}

// Resize adapts the session to a new screen pane. Before the first launch the
// session is rebuilt at the new size; afterwards the world keeps its size.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	if g.phase == PhaseAttached && !g.launched {
		g.Reset(runtime)
	}
}

// attachBall centres the ball just above the paddle, aimed straight up.
func (g *Game) attachBall() {
	g.ball.Pos = core.Vec{
		X: g.paddle.CenterX(),
		Y: g.paddle.Rect.Y - g.ball.Radius - g.cfg.Layout.AttachGap,
	}
	g.ball.Vel = core.Vec{X: 0, Y: -g.speed}
}

// Step applies one frame of input and advances the simulation by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if in.Has(core.ActionLaunch) {
		g.LaunchOrRestart()
	}
	if in.Has(core.ActionPause) {
		g.TogglePause()
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

// Advance moves the simulation forward by dtMs milliseconds.
func (g *Game) Advance(dtMs float64) {
	if dtMs <= 0 {
		return
	}
	switch g.phase {
	case PhaseWon:
		g.winElapsed += dtMs
		return
	case PhaseAttached:
		return
	}
	if g.paused {
		return
	}
	// Only the physics step is capped; the win animation runs on wall time.
	if limit := g.cfg.Physics.MaxFrameMs; limit > 0 && dtMs > limit {
		dtMs = limit
	}

	g.tickCount++
	prev := g.ball.Pos
	g.ball.Move(TimeScale(dtMs))

	if CheckWallCollision(&g.ball, g.w) {
		g.ball.Vel = g.ball.Vel.WithLen(g.speed)
	}

	if !CheckPaddleCollision(&g.ball, &g.paddle, g.speed, g.cfg.Physics.BounceSpread) {
		if i := NearestBrick(g.level, &g.ball); i >= 0 {
			g.hitBrick(i, prev)
		}
	}

	if g.level.Total() > 0 && g.level.CountAlive() == 0 {
		g.phase = PhaseWon
		g.winElapsed = 0
		return
	}

	if g.ball.Pos.Y+g.ball.Radius > g.h {
		g.phase = PhaseAttached
		g.attachBall()
	}
}

// hitBrick bounces the ball off brick i and takes one hit point from it.
func (g *Game) hitBrick(i int, prev core.Vec) {
	brick := &g.level.Bricks[i]
	ApplyBrickBounce(&g.ball, brick.Rect, HitSide(prev, brick.Rect), g.speed)

	brick.HP--
	if brick.HP <= 0 {
		brick.Alive = false
	}
}

// LaunchOrRestart launches an attached ball or starts over after a win.
// It does nothing while the ball is in play.
func (g *Game) LaunchOrRestart() {
	switch g.phase {
	case PhaseWon:
		g.StartSession(g.w, g.h)
	case PhaseAttached:
		g.phase = PhaseRunning
		g.launched = true
		g.ball.Vel = core.Vec{X: 0, Y: -g.speed}
	}
}

// TogglePause pauses or resumes a running session.
func (g *Game) TogglePause() {
	if g.phase == PhaseRunning {
		g.paused = !g.paused
	}
}

// PaddleX returns the paddle's left edge.
func (g *Game) PaddleX() float64 {
	return g.paddle.Rect.X
}

// PaddleRange returns the bounds of the paddle's left edge.
func (g *Game) PaddleRange() (min, max float64) {
	return 0, math.Max(0, g.w-g.paddle.Rect.W)
}

// SetPaddleX moves the paddle, clamped to the canvas. An attached ball
// follows it. The paddle is frozen once the session is won or paused.
func (g *Game) SetPaddleX(x float64) {
	if g.phase == PhaseWon || g.paused || math.IsNaN(x) {
		return
	}
	lo, hi := g.PaddleRange()
	g.paddle.Rect.X = core.ClampF(x, lo, hi)
	if g.phase == PhaseAttached {
		g.attachBall()
	}
}

// NudgePaddle moves the paddle one keyboard step; dir is -1 or +1.
func (g *Game) NudgePaddle(dir int) {
	g.SetPaddleX(g.paddle.Rect.X + float64(dir)*g.keyStep)
}

// WinProgress returns the win animation progress in [0, 1].
func (g *Game) WinProgress() float64 {
	if g.phase != PhaseWon {
		return 0
	}
	return core.ClampF(g.winElapsed/g.cfg.Win.DurationMs, 0, 1)
}

// Size returns the canvas size in world pixels.
func (g *Game) Size() (w, h float64) {
	return g.w, g.h
}

// Phase returns the current phase.
func (g *Game) Phase() string {
	return g.phase
}

// Render draws the current session into dst.
func (g *Game) Render(dst core.Canvas) {
	if g.phase == PhaseWon {
		g.renderWin(dst)
		return
	}

	for _, b := range g.level.Bricks {
		if !b.Alive {
			continue
		}
		glyph := BrickGlyphs[core.Clamp(b.HP, 1, len(BrickGlyphs))-1]
		dst.FillRect(b.Rect, glyph, core.BrickColor(b.HP))
	}
	dst.FillRect(g.paddle.Rect, PaddleChar, core.ColorPaddle)
	dst.FillCircle(g.ball.Pos.X, g.ball.Pos.Y, g.ball.Radius, BallChar, core.ColorBall)

	switch {
	case g.paused:
		dst.TextCentered(g.h/2, "PAUSED", core.ColorHighlight)
	case g.phase == PhaseAttached:
		dst.TextCentered(g.h*0.6, "SELECT to launch", core.ColorDim)
	}
}

// renderWin draws the win banner scaled by the eased progress and fades in
// the restart label over the tail of the animation.
func (g *Game) renderWin(dst core.Canvas) {
	t := g.WinProgress()
	scale := EaseOutBack(t)

	bw, bh := g.w*0.7*scale, g.h*0.12*scale
	if bw > 0 && bh > 0 {
		dst.FillRect(core.NewRectF((g.w-bw)/2, g.h*0.4-bh/2, bw, bh), BannerChar, core.ColorWin)
	}
	if scale >= 0.5 {
		dst.TextCentered(g.h*0.4, " YOU WIN! ", core.ColorText)
	}

	if alpha := g.labelAlpha(t); alpha > 0 {
		runes := []rune(restartLabel)
		n := int(math.Ceil(alpha * float64(len(runes))))
		c := core.ColorDim
		if alpha >= 1 {
			c = core.ColorText
		}
		dst.TextCentered(g.h*0.65, string(runes[:n]), c)
	}
}

// labelAlpha is the restart label opacity for progress t.
func (g *Game) labelAlpha(t float64) float64 {
	start := g.cfg.Win.LabelFadeStart
	if t <= start {
		return 0
	}
	if start >= 1 {
		return 1
	}
	return core.ClampF((t-start)/(1-start), 0, 1)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:  g.phase,
		Paused: g.paused,
		Won:    g.phase == PhaseWon,
	}
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
