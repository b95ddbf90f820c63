package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/spooky-captcha/internal/core"
	"github.com/vovakirdan/spooky-captcha/internal/games/captcha"
)

// footerRows is the space reserved below the playfield for key hints.
const footerRows = 1

// Model is the Bubble Tea model running one captcha session.
//
// Frame ticks, countdown ticks and key presses all arrive through Update,
// which Bubble Tea calls from a single goroutine, so the game is never
// touched concurrently.
type Model struct {
	game      *captcha.Game
	screen    *core.Screen
	surface   *CellSurface
	config    core.RuntimeConfig
	input     core.InputFrame
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	attempt   string
	countdown int // generation of the armed countdown timer
	quitting  bool
}

// NewModel creates a model and starts the first attempt. The countdown
// timer is armed by Init.
func NewModel(game *captcha.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 1))
	m := Model{
		game:    game,
		screen:  screen,
		surface: NewCellSurface(screen, captcha.SurfaceWidth, captcha.SurfaceHeight),
		config:  cfg,
		input:   core.NewInputFrame(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
	}
	m.help.Width = cfg.ScreenW

	game.Reset(cfg)
	m.beginAttempt()
	return m
}

// beginAttempt assigns a fresh attempt id and moves the game into its
// countdown.
func (m *Model) beginAttempt() {
	m.attempt = uuid.NewString()
	m.logger.Info("attempt started", "attempt", m.attempt, "game", m.game.ID())
	m.logTransitions(m.game.StartCountdown())
}

// Init starts the frame task and the countdown task.
func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.config.TickRate), countdownCmd(m.countdown))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-footerRows, 1))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame()

	case CountdownMsg:
		return m.handleCountdown(msg)
	}

	return m, nil
}

// handleKey queues the key's action for the next cycle.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("session closed", "attempt", m.attempt, "phase", m.game.Phase())
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleFrame runs one cycle. A restart re-arms the countdown under a new
// generation so that ticks of the old timer are ignored.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	res := m.game.Step(m.input)
	m.input.Clear()
	m.logTransitions(res.Transitions)

	if res.Restarted() {
		m.countdown++
		m.beginAttempt()
		return m, tea.Batch(frameCmd(m.config.TickRate), countdownCmd(m.countdown))
	}
	return m, frameCmd(m.config.TickRate)
}

// handleCountdown decrements the countdown and re-arms the timer until the
// game leaves its countdown phase.
func (m Model) handleCountdown(msg CountdownMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.countdown {
		m.logger.Debug("stale countdown tick dropped", "gen", msg.Gen, "current", m.countdown)
		return m, nil
	}

	m.logTransitions(m.game.CountdownTick())
	if m.game.Phase() == captcha.PhaseCountdown {
		return m, countdownCmd(m.countdown)
	}
	return m, nil
}

func (m Model) logTransitions(ts []captcha.Transition) {
	for _, t := range ts {
		kv := []any{"attempt", m.attempt, "from", t.From, "to", t.To, "score", t.Score, "cycle", t.Cycle}
		switch t.To {
		case captcha.PhasePassed:
			m.logger.Info("captcha passed", kv...)
		case captcha.PhaseFailed:
			m.logger.Warn("captcha failed", kv...)
		default:
			m.logger.Debug("phase changed", kv...)
		}
	}
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.surface)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game.
func Run(game *captcha.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
