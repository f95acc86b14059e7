package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadelab/infestation/internal/config"
	"github.com/arcadelab/infestation/internal/core"
	"github.com/arcadelab/infestation/internal/game"
	"github.com/arcadelab/infestation/internal/levels"
	"github.com/arcadelab/infestation/internal/storage"
)

// Model is the Bubble Tea model for playing a level.
type Model struct {
	registry *levels.Registry
	store    *storage.Store
	cfg      config.Config
	keys     *KeyMapper

	game      *game.Game
	levelName string
	screen    *core.Screen
	quitting  bool
	saved     bool // completion recorded for the current win
	status    string
}

// NewModel creates a play model starting at the given level id.
func NewModel(reg *levels.Registry, store *storage.Store, cfg config.Config, levelID string) (Model, error) {
	m := Model{
		registry: reg,
		store:    store,
		cfg:      cfg,
		keys:     NewKeyMapper(),
		screen:   core.NewScreen(80, 24),
	}
	if err := m.enterLevel(levelID); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m *Model) enterLevel(id string) error {
	lvl, ok := m.registry.Get(id)
	if !ok {
		return fmt.Errorf("unknown level %q", id)
	}
	rules := game.Rules{PlayerSurvivesBlast: m.cfg.Rules.PlayerSurvivesBlast}
	timing := game.Timing{
		Move: m.cfg.Animation.MoveDuration(),
		Wave: m.cfg.Animation.WaveDuration(),
	}
	m.game = game.NewGame(lvl.ID, lvl.Grid, rules, timing)
	m.levelName = lvl.Name
	m.saved = false
	m.status = ""
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.Animation.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if cmd != core.CmdNone {
		m.game.HandleCommand(cmd)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Tick(m.cfg.Animation.TickInterval())

	if !m.game.IsAnimating() {
		state := m.game.State()
		switch state.State() {
		case game.StateWon:
			if !m.saved {
				if m.store != nil {
					//nolint:errcheck // Best-effort save, game continues regardless
					m.store.MarkCompleted(state.LevelID(), state.Moves())
				}
				m.saved = true
			}
		case game.StatePlaying:
			// Portals fire the moment the player comes to rest on one.
			if dest, ok := state.PortalDestination(); ok {
				if err := m.enterLevel(dest); err != nil {
					m.status = err.Error()
				}
			}
		}
	}

	return m, tickCmd(m.cfg.Animation.TickInterval())
}

// View renders the board, the HUD, and any status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()

	state := m.game.State()
	grid := state.Grid()

	m.screen.DrawText(2, 0, fmt.Sprintf("%s — moves: %d", m.levelName, state.Moves()))
	DrawBoard(m.screen, grid, m.game.Animator(), 2, 2)

	infoY := 2 + grid.Height() + 1
	switch state.State() {
	case game.StateWon:
		m.screen.DrawText(2, infoY, "Cleared! r to replay, q for menu")
	case game.StateLost:
		m.screen.DrawText(2, infoY, "You died. u to undo, r to restart")
	default:
		if note, ok := state.Note(); ok {
			m.screen.DrawText(2, infoY, note)
		} else if m.status != "" {
			m.screen.DrawText(2, infoY, m.status)
		} else {
			m.screen.DrawText(2, infoY, "wasd/arrows move · space waits · u undo · r restart · q quit")
		}
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a single level.
func Run(reg *levels.Registry, store *storage.Store, cfg config.Config, levelID string) error {
	model, err := NewModel(reg, store, cfg, levelID)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
