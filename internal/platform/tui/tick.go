// Package tui provides the Bubble Tea front end for blockfall.
// It runs the frame loop, maps keys to actions and draws session snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/config"
)

// TickMsg is sent once per frame.
type TickMsg time.Time

// gameOverMsg is sent when the game-over screen has been shown long enough.
type gameOverMsg struct{}

// ConfigChangedMsg carries a reloaded configuration.
type ConfigChangedMsg config.Change

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 30
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// gameOverCmd ends the program after delay.
func gameOverCmd(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return gameOverMsg{} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return gameOverMsg{}
	})
}

// waitForChange blocks on the watcher channel and forwards the next change.
// A nil or closed channel produces no further messages.
func waitForChange(changes <-chan config.Change) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		change, ok := <-changes
		if !ok {
			return nil
		}
		return ConfigChangedMsg(change)
	}
}
