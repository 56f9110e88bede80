package router

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clickwheel/internal/config"
	"github.com/vovakirdan/clickwheel/internal/core"
	"github.com/vovakirdan/clickwheel/internal/registry"
	"github.com/vovakirdan/clickwheel/internal/selection"
	"github.com/vovakirdan/clickwheel/internal/wheel"
)

// Options configures a Router.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig // Game pane size
	Theme   string             // Initial theme; empty picks the first configured
	Logger  *log.Logger
}

// press tracks a button press on the wheel until release.
type press struct {
	down   bool
	button core.Button
}

// Router is the mode router. It is not safe for concurrent use; the platform
// drives it from a single event loop.
type Router struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	logger  *log.Logger

	decoder *wheel.Decoder
	layout  wheel.Layout
	press   press

	state     State
	sel       *selection.Selection
	savedMain int // Main menu index pushed when entering a submenu
	games     []registry.GameInfo
	gameIndex int
	game      registry.Game

	info    string // Label of the open placeholder screen
	preview string
	status  string
	theme   string
}

// New creates a router showing the main menu.
func New(opts Options) *Router {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	runtime := opts.Runtime
	if runtime.ScreenW == 0 || runtime.ScreenH == 0 {
		runtime = core.DefaultConfig()
	}

	r := &Router{
		cfg:     opts.Config,
		runtime: runtime,
		logger:  logger,
		decoder: wheel.NewDecoder(wheel.Settings{
			SectorDegrees:   opts.Config.Wheel.SectorDegrees,
			Sensitivity:     opts.Config.Wheel.PaddleSensitivity,
			ReanchorDegrees: opts.Config.Wheel.ReanchorDegrees,
		}),
		theme: opts.Theme,
	}
	if r.theme == "" && len(r.cfg.Menus.Themes) > 0 {
		r.theme = r.cfg.Menus.Themes[0]
	}
	r.enter(StateMainMenu, 0)
	return r
}

// SetLayout places the wheel. Pointer events use the layout's coordinates.
func (r *Router) SetLayout(l wheel.Layout) {
	r.layout = l
	r.decoder.SetCenter(l.Center)
}

// Layout returns the current wheel placement.
func (r *Router) Layout() wheel.Layout {
	return r.layout
}

// State returns the current screen state.
func (r *Router) State() State {
	return r.state
}

// Theme returns the active theme name.
func (r *Router) Theme() string {
	return r.theme
}

// Game returns the running game, or nil outside InGame.
func (r *Router) Game() registry.Game {
	return r.game
}

// Decoder exposes the gesture decoder for inspection.
func (r *Router) Decoder() *wheel.Decoder {
	return r.decoder
}

// Index returns the active entry of the current list.
func (r *Router) Index() int {
	return r.sel.Index()
}

// HandleButton applies a wheel button or its keyboard equivalent.
func (r *Router) HandleButton(b core.Button) Effect {
	if r.state == StateInGame {
		return r.handleGameButton(b)
	}

	if r.info != "" {
		if b == core.ButtonMenu || b == core.ButtonBack {
			r.info = ""
		}
		return Effect{}
	}

	switch b {
	case core.ButtonMenu:
		if r.state != StateMainMenu {
			r.back()
		}
	case core.ButtonForward:
		r.sel.Next()
	case core.ButtonBack:
		r.sel.Previous()
	case core.ButtonSelect:
		return r.activate()
	case core.ButtonPlayPause:
		r.logger.Debug("play/pause ignored outside a game", "state", r.state)
	}
	return Effect{}
}

func (r *Router) handleGameButton(b core.Button) Effect {
	switch b {
	case core.ButtonMenu:
		return r.exitGame()
	case core.ButtonSelect:
		r.gameAction(core.ActionLaunch)
	case core.ButtonPlayPause:
		r.gameAction(core.ActionPause)
	default:
		r.logger.Debug("button ignored in game", "button", b)
	}
	return Effect{}
}

// gameAction applies one action immediately, without advancing time.
func (r *Router) gameAction(a core.Action) {
	in := core.NewInputFrame()
	in.Set(a)
	r.game.Step(in, 0)
}

// HandlePaddleKey steps the paddle one keyboard increment; dir is -1 or +1.
// It is ignored outside a game and while a wheel gesture owns the paddle.
func (r *Router) HandlePaddleKey(dir int) bool {
	if r.state != StateInGame || r.decoder.Active() || dir == 0 {
		return false
	}
	if dir < 0 {
		r.gameAction(core.ActionLeft)
	} else {
		r.gameAction(core.ActionRight)
	}
	return true
}

// HandlePointer feeds one pointer sample. A press on the ring starts a
// rotation gesture; a press and release on the same button without any
// rotation counts as a click of that button.
func (r *Router) HandlePointer(ev PointerEvent) Effect {
	p := core.Vec{X: ev.X, Y: ev.Y}

	switch ev.Kind {
	case PointerDown:
		if !r.layout.Contains(p) {
			return Effect{}
		}
		b := r.layout.HitTest(p)
		r.press = press{down: true, button: b}
		if b != core.ButtonSelect {
			r.decoder.Begin(p)
		}

	case PointerMove:
		if !r.decoder.Active() {
			return Effect{}
		}
		res := r.decoder.Move(p)
		switch {
		case res.Paddle && r.game != nil:
			r.game.SetPaddleX(res.PaddleX)
		case res.Steps != 0 && r.info == "" && r.state != StateInGame:
			r.sel.Step(res.Steps)
		}

	case PointerUp:
		rotated := r.decoder.End()
		pr := r.press
		r.press = press{}
		if pr.down && !rotated && r.layout.Contains(p) && r.layout.HitTest(p) == pr.button {
			return r.HandleButton(pr.button)
		}
	}
	return Effect{}
}

// Tick advances the running game by dt. It reports whether a game is
// running, so the platform knows to keep scheduling frames.
func (r *Router) Tick(dt time.Duration) bool {
	if r.state != StateInGame || r.game == nil {
		return false
	}
	r.game.Step(core.NewInputFrame(), dt)
	return true
}

// Resize updates the game pane size. A rotation in progress continues from
// wherever the resized game put the paddle.
func (r *Router) Resize(runtime core.RuntimeConfig) {
	r.runtime = runtime
	if r.game != nil {
		r.game.Resize(runtime)
		r.decoder.Rebase()
	}
}

// StartGame jumps straight into a game as if it had been picked from the
// Games menu.
func (r *Router) StartGame(id string) (Effect, error) {
	if !registry.Exists(id) {
		return Effect{}, fmt.Errorf("router: unknown game %q", id)
	}
	if r.state == StateInGame {
		r.exitGame()
	}
	r.savedMain = r.mainIndexOf(config.TargetGames)
	r.enter(StateGamesList, 0)
	for i, g := range r.games {
		if g.ID == id {
			r.sel.Select(i)
		}
	}
	return r.activate(), nil
}

// activate runs the selected entry of the current list.
func (r *Router) activate() Effect {
	i := r.sel.Index()
	if r.sel.Count() == 0 {
		return Effect{}
	}

	switch r.state {
	case StateMainMenu:
		r.savedMain = i
		return r.activateEntry(r.cfg.Menus.Main[i])
	case StateSettings:
		return r.activateEntry(r.cfg.Menus.Settings[i])
	case StateThemeSelect:
		return r.setTheme(r.cfg.Menus.Themes[i])
	case StateGamesList:
		return r.startGame(i)
	}
	return Effect{}
}

func (r *Router) activateEntry(e config.MenuEntry) Effect {
	switch e.Kind {
	case config.KindSubmenu:
		switch e.Target {
		case config.TargetGames:
			r.enter(StateGamesList, 0)
		case config.TargetSettings:
			r.enter(StateSettings, 0)
		case config.TargetThemes:
			r.enter(StateThemeSelect, r.themeIndex())
		}
	case config.KindLink:
		r.status = "Opening " + e.Target
		r.logger.Info("dispatching link", "label", e.Label, "target", e.Target)
		return Effect{Kind: EffectOpenLink, Target: e.Target}
	case config.KindInfo:
		r.info = e.Label
	}
	return Effect{}
}

func (r *Router) setTheme(name string) Effect {
	if name == r.theme {
		return Effect{}
	}
	r.theme = name
	r.status = "Theme: " + name
	r.logger.Info("theme changed", "theme", name)
	return Effect{Kind: EffectThemeChanged, Target: name}
}

func (r *Router) startGame(i int) Effect {
	info := r.games[i]
	g, err := registry.Create(info.ID)
	if err != nil {
		r.logger.Error("cannot start game", "id", info.ID, "err", err)
		r.status = err.Error()
		return Effect{}
	}
	g.Reset(r.runtime)

	r.gameIndex = i
	r.game = g
	r.setState(StateInGame)
	r.setDecoderMode(wheel.ModePaddle, g)
	return Effect{Kind: EffectGameStarted, Target: info.ID}
}

func (r *Router) exitGame() Effect {
	r.game = nil
	r.enter(StateGamesList, r.gameIndex)
	return Effect{Kind: EffectGameExited}
}

// back pops to the parent state, restoring the pushed main menu index.
func (r *Router) back() {
	switch parent := r.state.parent(); parent {
	case StateMainMenu:
		r.enter(StateMainMenu, r.savedMain)
	case StateSettings:
		r.enter(StateSettings, r.settingsIndexOf(config.TargetThemes))
	default:
		r.enter(parent, 0)
	}
}

// enter shows a menu state with the cursor at index.
func (r *Router) enter(s State, index int) {
	r.setState(s)
	r.info = ""
	r.setDecoderMode(wheel.ModeMenu, nil)

	switch s {
	case StateMainMenu:
		r.sel = selection.NewAt(len(r.cfg.Menus.Main), index, r.onMainSelect)
		r.onMainSelect(r.sel.Index())
	case StateSettings:
		r.sel = selection.NewAt(len(r.cfg.Menus.Settings), index, nil)
	case StateThemeSelect:
		r.sel = selection.NewAt(len(r.cfg.Menus.Themes), index, nil)
	case StateGamesList:
		r.games = registry.List()
		r.sel = selection.NewAt(len(r.games), index, nil)
	}
}

func (r *Router) setState(s State) {
	if s != r.state {
		r.logger.Debug("mode transition", "from", r.state, "to", s)
	}
	r.state = s
}

// setDecoderMode switches the decoder, abandoning any gesture in flight so
// the new owner starts clean.
func (r *Router) setDecoderMode(m wheel.Mode, p wheel.Paddle) {
	if r.decoder.Active() {
		r.decoder.End()
		r.press = press{}
	}
	r.decoder.SetMode(m, p)
}

func (r *Router) onMainSelect(i int) {
	if i < 0 || i >= len(r.cfg.Menus.Main) {
		r.preview = ""
		return
	}
	e := r.cfg.Menus.Main[i]
	r.preview = e.Preview
	if r.preview == "" {
		r.preview = e.Label
	}
}

func (r *Router) themeIndex() int {
	for i, t := range r.cfg.Menus.Themes {
		if t == r.theme {
			return i
		}
	}
	return 0
}

func (r *Router) mainIndexOf(target string) int {
	for i, e := range r.cfg.Menus.Main {
		if e.Kind == config.KindSubmenu && e.Target == target {
			return i
		}
	}
	return 0
}

func (r *Router) settingsIndexOf(target string) int {
	for i, e := range r.cfg.Menus.Settings {
		if e.Kind == config.KindSubmenu && e.Target == target {
			return i
		}
	}
	return 0
}
