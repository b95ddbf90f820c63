package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/spooky-captcha/internal/core"
	"github.com/vovakirdan/spooky-captcha/internal/games/captcha"
)

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	retryKey = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
	quitKey  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func newTestModel(t *testing.T) (Model, *captcha.Game) {
	t.Helper()
	game := captcha.New(captcha.Options{EvictPassed: true})
	cfg := core.DefaultConfig()
	cfg.Seed = 99
	return NewModel(game, cfg, log.New(io.Discard)), game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// activate drains the countdown of the current attempt.
func activate(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < captcha.CountdownStart; i++ {
		m, _ = update(t, m, CountdownMsg{Gen: m.countdown})
	}
	return m
}

func TestNewModelArmsCountdown(t *testing.T) {
	m, game := newTestModel(t)

	assert.Equal(t, captcha.PhaseCountdown, game.Phase())
	assert.NotEmpty(t, m.attempt)
	assert.NotNil(t, m.Init())
	assert.Equal(t, 80, m.screen.Width())
	assert.Equal(t, 23, m.screen.Height())
}

func TestCountdownRearmsUntilActive(t *testing.T) {
	m, game := newTestModel(t)

	m, cmd := update(t, m, CountdownMsg{Gen: 0})
	assert.NotNil(t, cmd, "timer re-arms while counting down")
	m, cmd = update(t, m, CountdownMsg{Gen: 0})
	assert.NotNil(t, cmd)
	_, cmd = update(t, m, CountdownMsg{Gen: 0})
	assert.Nil(t, cmd, "timer stops once active")
	assert.Equal(t, captcha.PhaseActive, game.Phase())
}

func TestStaleCountdownIgnored(t *testing.T) {
	m, game := newTestModel(t)

	for i := 0; i < 5; i++ {
		m, _ = update(t, m, CountdownMsg{Gen: 7})
	}
	assert.Equal(t, captcha.PhaseCountdown, game.Phase())
	assert.Equal(t, captcha.CountdownStart, game.Snapshot().Countdown)
}

func TestJumpAppliedOnNextFrame(t *testing.T) {
	m, game := newTestModel(t)
	m = activate(t, m)

	m, cmd := update(t, m, spaceKey)
	assert.Nil(t, cmd)
	assert.Equal(t, 0.0, game.Snapshot().Player.Velocity, "input waits for the next cycle")

	_, cmd = update(t, m, FrameMsg{})
	assert.NotNil(t, cmd, "next frame is scheduled")
	assert.InDelta(t, captcha.JumpVelocity+captcha.Gravity, game.Snapshot().Player.Velocity, 1e-9)
}

func TestRetryRestartsWithNewCountdown(t *testing.T) {
	m, game := newTestModel(t)
	m = activate(t, m)
	first := m.attempt

	// Retry is ignored while active
	m, _ = update(t, m, retryKey)
	m, _ = update(t, m, FrameMsg{})
	require.Equal(t, captcha.PhaseActive, game.Phase())

	// Fall to the floor
	for i := 0; i < 200 && game.Phase() == captcha.PhaseActive; i++ {
		m, _ = update(t, m, FrameMsg{})
	}
	require.Equal(t, captcha.PhaseFailed, game.Phase())

	m, _ = update(t, m, retryKey)
	m, _ = update(t, m, FrameMsg{})

	assert.Equal(t, captcha.PhaseCountdown, game.Phase())
	assert.Equal(t, 1, m.countdown)
	assert.NotEqual(t, first, m.attempt)

	// Old timer ticks no longer count
	m, _ = update(t, m, CountdownMsg{Gen: 0})
	assert.Equal(t, captcha.CountdownStart, game.Snapshot().Countdown)
	m = activate(t, m)
	assert.Equal(t, captcha.PhaseActive, game.Phase())
}

func TestViewShowsInstructions(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	assert.NotEmpty(t, view)
	assert.Contains(t, m.screen.String(), "Countdown: 3")
	assert.Contains(t, m.screen.String(), captcha.MsgJumpHint)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, quitKey)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, "", m.View())
}

func TestWindowResize(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.screen.Width())
	assert.Equal(t, 39, m.screen.Height())
	assert.Equal(t, 120, m.help.Width)
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, core.ActionJump, km.Action(spaceKey))
	assert.Equal(t, core.ActionJump, km.Action(tea.KeyMsg{Type: tea.KeyUp}))
	assert.Equal(t, core.ActionRetry, km.Action(retryKey))
	assert.Equal(t, core.ActionQuit, km.Action(quitKey))
	assert.Equal(t, core.ActionQuit, km.Action(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.Equal(t, core.ActionNone, km.Action(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}))
}
