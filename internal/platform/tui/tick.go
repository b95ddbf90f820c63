// Package tui drives the captcha in a terminal with Bubble Tea. It owns the
// two timers, maps keys to game actions and paints the game's surface into
// a styled cell buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spooky-captcha/internal/games/captcha"
)

// FrameMsg asks for one update-and-render cycle.
type FrameMsg time.Time

// CountdownMsg is one countdown interval elapsing. Gen identifies the
// attempt that armed it; messages from earlier attempts are dropped.
type CountdownMsg struct {
	Gen int
}

// frameCmd schedules the next cycle. It is re-issued after every cycle, so
// cycles never overlap.
func frameCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// countdownCmd schedules the next countdown interval for attempt gen.
func countdownCmd(gen int) tea.Cmd {
	return tea.Tick(captcha.CountdownInterval, func(time.Time) tea.Msg {
		return CountdownMsg{Gen: gen}
	})
}
