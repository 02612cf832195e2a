package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/mini2d/internal/core"
	"github.com/vovakirdan/mini2d/internal/logging"
	"github.com/vovakirdan/mini2d/internal/metrics"
	"github.com/vovakirdan/mini2d/internal/registry"
	"github.com/vovakirdan/mini2d/internal/storage"
)

// Deps are the shared services a demo runs with. Every field may be nil.
type Deps struct {
	Store   *storage.Store
	Logger  *log.Logger
	Metrics *metrics.Metrics
}

func (d Deps) logger() *log.Logger {
	if d.Logger == nil {
		return logging.Discard()
	}
	return d.Logger
}

// Model is the Bubble Tea model that runs one demo at a fixed tick rate.
type Model struct {
	demo       registry.Demo
	screen     *core.Screen
	deps       Deps
	config     core.RuntimeConfig
	fixedSeed  bool
	inputFrame core.InputFrame
	state      core.GameState
	keyMapper  *KeyMapper

	runID   uuid.UUID
	started time.Time
	saved   bool

	loop       int
	embedded   bool // Back returns to the session menu instead of quitting
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for demo. A zero seed is replaced with the clock
// and re-rolled on every restart; any other seed is kept for reproducible
// runs.
func NewModel(demo registry.Demo, deps Deps, cfg core.RuntimeConfig) Model {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		demo:       demo,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		deps:       deps,
		config:     cfg,
		fixedSeed:  fixed,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		runID:      uuid.New(),
		started:    time.Now(),
	}
}

// Init resets the demo and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.demo.Reset(m.config)
	m.deps.logger().Debug("demo started", "demo", m.demo.ID(), "run", m.runID, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.finishRun()
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.finishRun()
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize rebuilds the demo for the new terminal size. The unfinished
// run is dropped.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.state.GameOver {
		m.demo.Reset(m.config)
		m.state = m.demo.State()
		m.newRun()
	}

	return m, nil
}

// handleTick steps the simulation once.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.state.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.demo.Reset(m.config)
		m.state = m.demo.State()
		m.newRun()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	prev := m.state.Collisions
	start := time.Now()
	result := m.demo.Step(m.inputFrame)
	m.deps.Metrics.ObserveStep(m.demo.ID(), time.Since(start), result.State.Collisions-prev)
	m.state = result.State

	if m.state.GameOver {
		m.finishRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

func (m *Model) newRun() {
	m.runID = uuid.New()
	m.started = time.Now()
	m.saved = false
}

// finishRun records the current run once. Runs that scored nothing are not
// stored.
func (m *Model) finishRun() {
	if m.saved {
		return
	}
	m.saved = true

	logger := m.deps.logger()
	if m.state.Score <= 0 {
		return
	}
	m.deps.Metrics.RunFinished(m.demo.ID())

	run := storage.Run{
		ID:         m.runID,
		DemoID:     m.demo.ID(),
		Score:      m.state.Score,
		Collisions: m.state.Collisions,
		Duration:   time.Since(m.started),
	}
	if m.deps.Store != nil {
		if _, err := m.deps.Store.SaveRun(run); err != nil {
			logger.Warn("could not save run", "demo", run.DemoID, "error", err)
			return
		}
	}
	logger.Info("run finished", "demo", run.DemoID, "run", run.ID, "score", run.Score, "collisions", run.Collisions)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.render()

	dir, err := storage.ExpandPath("~/.mini2d/screenshots")
	if err != nil {
		return
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.demo.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.deps.logger().Warn("could not save screenshot", "error", err)
	}
}

func (m *Model) render() {
	m.screen.Clear()
	m.demo.Render(m.screen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen)
}

// State returns the last reported demo state.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single demo.
func Run(demo registry.Demo, deps Deps, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(demo, deps, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
