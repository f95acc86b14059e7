package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadelab/infestation/internal/config"
	"github.com/arcadelab/infestation/internal/levels"
	"github.com/arcadelab/infestation/internal/storage"
)

// MenuItem represents a selectable level in the picker.
type MenuItem struct {
	LevelID   string
	Title     string
	Completed bool
	BestMoves int
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	registry *levels.Registry
	store    *storage.Store
	cfg      config.Config
	keys         *KeyMapper
	quitting     bool
	selected     *MenuItem // Set when user picks a level
	openProgress bool      // True if user pressed Tab for the progress board
}

// NewMenuModel creates a level picker over the registry, annotated with
// stored progress.
func NewMenuModel(reg *levels.Registry, store *storage.Store, cfg config.Config) MenuModel {
	names := reg.Names()
	items := make([]MenuItem, 0, reg.Len())
	for _, id := range reg.IDs() {
		item := MenuItem{LevelID: id, Title: names[id]}
		if store != nil {
			if done, err := store.IsCompleted(id); err == nil && done {
				item.Completed = true
				if moves, ok, err := store.BestMoves(id); err == nil && ok {
					item.BestMoves = moves
				}
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:    items,
		registry: reg,
		store:    store,
		cfg:      cfg,
		keys:     NewKeyMapper(),
	}
}

// Selected returns the level the user picked, if any.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles menu navigation.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "tab" {
			m.openProgress = true
			return m, tea.Quit
		}
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			if len(m.items) > 0 {
				item := m.items[m.cursor]
				m.selected = &item
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	menuClearedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true)
)

// View renders the picker.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(menuTitleStyle.Render("INFESTATION"))
	sb.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		title := item.Title
		if i == m.cursor {
			cursor = menuCursorStyle.Render("> ")
			title = menuSelectedStyle.Render(title)
		}
		mark := "  "
		if item.Completed {
			mark = menuClearedStyle.Render(fmt.Sprintf("✓ %d", item.BestMoves))
		}
		sb.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, title, mark))
	}

	sb.WriteString("\n")
	sb.WriteString(menuHelpStyle.Render("↑/↓ navigate · enter play · tab progress · q quit"))
	return sb.String()
}

// RunMenu shows the picker and then plays the chosen level, returning to
// the picker when the play session ends.
func RunMenu(reg *levels.Registry, store *storage.Store, cfg config.Config) error {
	for {
		menu := NewMenuModel(reg, store, cfg)
		p := tea.NewProgram(menu, tea.WithAltScreen())
		final, err := p.Run()
		if err != nil {
			return err
		}
		done := final.(MenuModel)
		if done.openProgress {
			prog := NewProgressModel(reg, store)
			finalProg, err := tea.NewProgram(prog, tea.WithAltScreen()).Run()
			if err != nil {
				return err
			}
			if !finalProg.(ProgressModel).GoingBack() {
				return nil
			}
			continue
		}
		picked := done.Selected()
		if picked == nil {
			return nil
		}
		if err := Run(reg, store, cfg, picked.LevelID); err != nil {
			return err
		}
	}
}
