package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
)

// Model is the Bubble Tea model for one blockfall session.
type Model struct {
	session *engine.Session
	config  config.Config
	theme   Theme
	keys    KeyMap
	help    help.Model
	screen  *core.Screen
	snap    engine.Snapshot
	changes <-chan config.Change
	logger  *log.Logger

	reloadErr error
	over      bool // Game-over screen is showing
	quitting  bool
}

// NewModel creates a model around a started session. changes may be nil
// when live reload is off; logger may be nil.
func NewModel(session *engine.Session, cfg config.Config, changes <-chan config.Change, logger *log.Logger) Model {
	h := help.New()
	h.ShowAll = false

	snap := session.Snapshot()
	return Model{
		session: session,
		config:  cfg,
		theme:   NewTheme(cfg.Theme),
		keys:    NewKeyMap(cfg.Keys),
		help:    h,
		screen:  core.NewScreen(snap.Width, snap.Height),
		snap:    snap,
		changes: changes,
		logger:  logger,
	}
}

// Init starts the frame loop and, if enabled, the config listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.Display.FPS), waitForChange(m.changes))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case gameOverMsg:
		m.quitting = true
		return m, tea.Quit

	case ConfigChangedMsg:
		return m.handleConfig(config.Change(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.session.Quit()
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone && m.session.Apply(action) {
		m.snap = m.session.Snapshot()
	}
	return m, nil
}

// handleTick runs one frame: lock-in and clearing, then a fresh snapshot.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.over || m.quitting {
		return m, nil
	}

	state := m.session.Advance()
	m.snap = m.session.Snapshot()

	switch state {
	case engine.StateGameOver:
		m.over = true
		return m, gameOverCmd(m.config.GameOverDelay())
	case engine.StateQuit:
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.Display.FPS)
}

// handleConfig applies a reloaded theme and key map. Gravity and seed only
// take effect for the next session.
func (m Model) handleConfig(change config.Change) (tea.Model, tea.Cmd) {
	if change.Err != nil {
		m.reloadErr = change.Err
		if m.logger != nil {
			m.logger.Warn("config reload failed", "err", change.Err)
		}
		return m, waitForChange(m.changes)
	}

	m.reloadErr = nil
	m.config.Theme = change.Config.Theme
	m.config.Keys = change.Config.Keys
	m.config.Display = change.Config.Display
	m.theme = NewTheme(m.config.Theme)
	m.keys = NewKeyMap(m.config.Keys)
	if m.logger != nil {
		m.logger.Info("config reloaded")
	}
	return m, waitForChange(m.changes)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	DrawSnapshot(m.screen, m.snap, m.theme)

	lines := []string{
		m.theme.Title.Render("BLOCKFALL"),
		RenderScreen(m.screen),
		m.theme.Status.Render(m.status()),
	}
	if m.reloadErr != nil {
		lines = append(lines, m.theme.ErrorMsg.Render(firstLine(m.reloadErr.Error())))
	}
	lines = append(lines, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) status() string {
	if m.snap.State == engine.StateGameOver {
		return "game over"
	}
	p := m.snap.Piece
	return fmt.Sprintf("piece %s  rot %d", p.Shape, p.Rotation)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Run starts the session and the Bubble Tea program, and blocks until the
// player quits or the game-over screen has been shown. The session is
// closed on return.
func Run(ctx context.Context, session *engine.Session, cfg config.Config, changes <-chan config.Change, logger *log.Logger) error {
	defer session.Close()

	if err := session.Start(ctx); err != nil {
		return fmt.Errorf("tui: cannot start session: %w", err)
	}

	p := tea.NewProgram(
		NewModel(session, cfg, changes, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
