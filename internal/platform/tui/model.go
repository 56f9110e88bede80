package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clickwheel/internal/config"
	"github.com/vovakirdan/clickwheel/internal/core"
	"github.com/vovakirdan/clickwheel/internal/router"
	"github.com/vovakirdan/clickwheel/internal/storage"
)

// Options configures a player Model.
type Options struct {
	Config   config.Config
	Width    int // Terminal size in cells
	Height   int
	TickRate int
	Store    *storage.Store // Optional; nil disables theme persistence
	User     string         // Preference owner, storage.LocalUser when empty
	Game     string         // Start inside this game when set
	Logger   *log.Logger
}

// Model is the Bubble Tea model for the click-wheel player.
type Model struct {
	router  *router.Router
	store   *storage.Store
	user    string
	logger  *log.Logger
	keys    KeyMap
	help    help.Model
	device  Device
	screen  *core.Screen
	pane    *core.Screen
	runtime core.RuntimeConfig
	inner   float64
	width   int
	notice  string

	gen      int       // Current frame loop; stale ticks carry an older value
	lastTick time.Time // Zero when no frame has run in this loop
	quitting bool
}

// NewModel creates a player showing the main menu, or the game named in opts.
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	user := opts.User
	if user == "" {
		user = storage.LocalUser
	}

	m := Model{
		store:  opts.Store,
		user:   user,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		inner:  opts.Config.Wheel.InnerRatio,
		runtime: core.RuntimeConfig{
			TickRate: opts.TickRate,
		},
		screen: core.NewScreen(0, 0),
		pane:   core.NewScreen(0, 0),
	}
	if m.runtime.TickRate <= 0 {
		m.runtime.TickRate = core.DefaultConfig().TickRate
	}
	m.layout(opts.Width, opts.Height)

	m.router = router.New(router.Options{
		Config:  opts.Config,
		Runtime: m.runtime,
		Theme:   m.storedTheme(),
		Logger:  logger,
	})
	m.router.SetLayout(m.device.Wheel)

	if opts.Game != "" {
		eff, err := m.router.StartGame(opts.Game)
		if err != nil {
			return Model{}, err
		}
		m.applyEffect(eff)
	}
	return m, nil
}

// Router returns the mode router driving this model.
func (m Model) Router() *router.Router {
	return m.router
}

func (m Model) storedTheme() string {
	if m.store == nil {
		return ""
	}
	theme, err := m.store.Theme(m.user)
	if err != nil {
		m.logger.Warn("could not load theme preference", "user", m.user, "error", err)
		return ""
	}
	return theme
}

// layout recomputes the device for a terminal size and resizes the buffers.
func (m *Model) layout(width, height int) {
	if width <= 0 || height <= 0 {
		d := core.DefaultConfig()
		width, height = d.ScreenW+2, d.ScreenH+maxWheelRows+footerRows+3
	}
	m.width = width
	m.device = NewDevice(width, height, m.inner)
	m.screen.Resize(max(width, m.device.Left+m.device.Width), m.device.WheelTop+m.device.WheelRows)
	m.pane.Resize(m.device.PaneW, m.device.PaneH)
	m.runtime.ScreenW = m.device.PaneW
	m.runtime.ScreenH = m.device.PaneH
	m.help.Width = width
}

// Init starts the frame loop when the player opens inside a game.
func (m Model) Init() tea.Cmd {
	if m.router.State() == router.StateInGame {
		return tickCmd(m.runtime.TickRate, m.gen)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		m.router.SetLayout(m.device.Wheel)
		m.router.Resize(m.runtime)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	in := m.keys.MapKey(msg, m.router.State() == router.StateInGame)
	if in.Paddle != 0 {
		m.router.HandlePaddleKey(in.Paddle)
		return m, nil
	}
	if in.Button == core.ButtonNone {
		return m, nil
	}

	m.notice = ""
	m.router.ClearStatus()
	cmd := m.applyEffect(m.router.HandleButton(in.Button))
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var kind router.PointerKind
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		kind = router.PointerDown
		m.notice = ""
		m.router.ClearStatus()
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		kind = router.PointerMove
	case msg.Action == tea.MouseActionRelease:
		kind = router.PointerUp
	default:
		return m, nil
	}

	p := CellCenter(msg.X, msg.Y)
	cmd := m.applyEffect(m.router.HandlePointer(router.PointerEvent{Kind: kind, X: p.X, Y: p.Y}))
	return m, cmd
}

// applyEffect carries out what the router asked for and returns the command
// that keeps the frame loop in step with it.
func (m *Model) applyEffect(eff router.Effect) tea.Cmd {
	switch eff.Kind {
	case router.EffectGameStarted:
		m.gen++
		m.lastTick = time.Time{}
		return tickCmd(m.runtime.TickRate, m.gen)

	case router.EffectGameExited:
		m.gen++

	case router.EffectThemeChanged:
		if m.store == nil {
			return nil
		}
		if err := m.store.SetTheme(m.user, eff.Target); err != nil {
			m.logger.Warn("could not save theme preference", "user", m.user, "error", err)
		}

	case router.EffectOpenLink:
		// The router shows the target in the status line.
		m.logger.Debug("link left to the terminal", "target", eff.Target)
	}
	return nil
}

func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}

	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = msg.Time.Sub(m.lastTick)
	}
	m.lastTick = msg.Time

	if !m.router.Tick(dt) {
		return m, nil
	}
	return m, tickCmd(m.runtime.TickRate, m.gen)
}

// compose draws the device into the screen buffer.
func (m Model) compose() {
	d := m.device
	m.screen.Clear()
	m.screen.DrawBox(d.Left, 0, d.Width, d.BoxH, core.ColorDim)

	DrawPane(m.pane, m.router.View())
	m.screen.Blit(m.pane, d.Left+1, 1)

	DrawWheel(m.screen, d)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.compose()

	home, err := os.UserHomeDir()
	if err != nil {
		m.notice = "screenshot failed: " + err.Error()
		return
	}
	dir := filepath.Join(home, ".clickwheel", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.notice = "screenshot failed: " + err.Error()
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	name := strings.ToLower(m.router.State().String())
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", name, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.notice = "screenshot failed: " + err.Error()
		return
	}
	m.notice = "Saved " + path
	m.logger.Info("screenshot saved", "path", path)
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.compose()

	v := m.router.View()
	status := m.notice
	if status == "" {
		status = v.Status
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen, PaletteFor(v.Theme)))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(clip(status, m.width)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
