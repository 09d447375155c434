package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/game"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

// Model is the Bubble Tea model driving a single game session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	startedAt  time.Time
	quitting   bool
	runSaved   bool // Whether the finished run has been persisted
}

// NewModel creates a new Bubble Tea model for the game.
func NewModel(store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g := game.New()
	g.Reset(cfg)

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		startedAt:  time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize follows the terminal size. The world keeps its own
// coordinates; only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	restarting := m.inputFrame.Has(core.ActionRestart) && m.game.State() != game.StatePlaying

	m.game.Step(m.inputFrame, m.config.Dt())
	m.inputFrame.Clear()

	if restarting {
		m.runSaved = false
		m.startedAt = time.Now()
		return m, tickCmd(m.config.TickRate)
	}

	// Persist the run once when it ends.
	if st := m.game.State(); st != game.StatePlaying && !m.runSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(storage.RunRecord{
				Score:      m.game.Score(),
				Bricks:     m.game.DestroyedBricks(),
				MoneyTotal: m.game.TotalMoney(),
				Outcome:    st.String(),
				Duration:   int(time.Since(m.startedAt).Seconds()),
			})
		}
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	renderGame(m.game, m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local session.
func Run(store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
