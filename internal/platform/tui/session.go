package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/mini2d/internal/core"
	"github.com/vovakirdan/mini2d/internal/registry"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewScores
	viewDemo
)

// SessionModel drives a full session: menu, scoreboard and demos, returning
// to the menu whenever a demo or the scoreboard is left with Back. It is the
// top-level model for both local and SSH play.
type SessionModel struct {
	deps      Deps
	opts      registry.Options
	config    core.RuntimeConfig
	sessionID uuid.UUID
	user      string

	view     sessionView
	menu     MenuModel
	scores   ScoreboardModel
	demo     Model
	loops    int
	quitting bool
}

// NewSessionModel creates a session for user. opts supplies the config path
// for every demo; the difficulty is picked in the menu.
func NewSessionModel(deps Deps, opts registry.Options, cfg core.RuntimeConfig, user string) SessionModel {
	return SessionModel{
		deps:      deps,
		opts:      opts,
		config:    cfg,
		sessionID: uuid.New(),
		user:      user,
		menu:      NewMenuModel(deps.Store, cfg),
	}
}

// ID returns the unique session identifier.
func (m SessionModel) ID() uuid.UUID {
	return m.sessionID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	m.deps.logger().Debug("session opened", "session", m.sessionID, "user", m.user)
	return m.menu.Init()
}

// Update routes messages to the active view.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewDemo:
		return m.updateDemo(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.deps.Store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		return m.startDemo(m.menu.Selected().ID)
	}

	return m, cmd
}

func (m SessionModel) startDemo(id string) (tea.Model, tea.Cmd) {
	opts := m.opts
	opts.Difficulty = string(m.menu.Difficulty())

	demo, err := registry.Create(id, opts)
	if err != nil {
		m.deps.logger().Warn("could not start demo", "demo", id, "session", m.sessionID, "error", err)
		m.menu.reopen(m.deps.Store, err)
		return m, nil
	}

	m.loops++
	m.demo = NewModel(demo, m.deps, m.config)
	m.demo.embedded = true
	m.demo.loop = m.loops
	m.view = viewDemo
	return m, m.demo.Init()
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateDemo(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.demo.Update(msg)
	if demo, ok := next.(Model); ok {
		m.demo = demo
	}

	switch {
	case m.demo.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.demo.BackToMenu():
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.menu.config = m.config
	m.menu.width, m.menu.height = m.config.ScreenW, m.config.ScreenH
	m.menu.reopen(m.deps.Store, nil)
	return m, m.menu.Init()
}

// View renders the active view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewDemo:
		return m.demo.View()
	case viewScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the interactive menu locally until the user quits.
func RunSession(deps Deps, opts registry.Options, cfg core.RuntimeConfig, user string) error {
	p := tea.NewProgram(
		NewSessionModel(deps, opts, cfg, user),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
